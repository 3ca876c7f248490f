// internal/app/app.go
package app

import (
	"fmt"
	"sync"

	"github.com/bethropolis/hollow/internal/clipboard"
	"github.com/bethropolis/hollow/internal/config"
	"github.com/bethropolis/hollow/internal/core"
	"github.com/bethropolis/hollow/internal/event"
	"github.com/bethropolis/hollow/internal/historyview"
	"github.com/bethropolis/hollow/internal/input"
	"github.com/bethropolis/hollow/internal/logger"
	"github.com/bethropolis/hollow/internal/mapfile"
	"github.com/bethropolis/hollow/internal/modehandler"
	"github.com/bethropolis/hollow/internal/plugin"
	"github.com/bethropolis/hollow/internal/statusbar"
	"github.com/bethropolis/hollow/internal/theme"
	"github.com/bethropolis/hollow/internal/tui"
	"github.com/bethropolis/hollow/internal/watcher"
	"github.com/gdamore/tcell/v2"
)

// Options configures NewApp.
type Options struct {
	Config   *config.Config
	FilePath string
	// Screen replaces the terminal, for tests.
	Screen tcell.Screen
	// ThemesDir overrides theme.DefaultDir.
	ThemesDir *string
}

// App encapsulates the core components and main loop of the editor.
type App struct {
	cfg           *config.Config
	tuiManager    *tui.TUI
	editor        *core.Editor
	statusBar     *statusbar.StatusBar
	eventManager  *event.Manager
	pluginManager *plugin.Manager
	modeHandler   *modehandler.ModeHandler
	themeManager  *theme.Manager
	editorAPI     *appEditorAPI

	// mu guards the layout shared by the drawing loop and the event loop.
	mu           sync.Mutex
	showHistory  bool
	historyPanel *historyview.Panel
	viewport     tui.Viewport
	watcher      *watcher.Watcher

	quit          chan struct{}
	redrawRequest chan struct{}
}

// NewApp creates and initializes a new application instance.
func NewApp(opts Options) (*App, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.NewDefaultConfig()
	}

	catalog := mapfile.DefaultCatalog()
	if cfg.Editor.Catalog != "" {
		var err error
		if catalog, err = mapfile.LoadCatalog(cfg.Editor.Catalog); err != nil {
			return nil, fmt.Errorf("catalog: %w", err)
		}
	}

	eventManager := event.NewManager()
	editor := core.NewEditor(core.Options{
		Grid:      float64(cfg.Editor.GridSize),
		ScanHints: cfg.History.ScanHints,
		Clipboard: clipboard.NewBackend(cfg.Editor.SystemClipboard),
		Catalog:   catalog,
	})
	editor.SetEventManager(eventManager)
	if opts.FilePath != "" {
		if err := editor.Open(opts.FilePath); err != nil {
			return nil, fmt.Errorf("failed to open '%s': %w", opts.FilePath, err)
		}
	}

	themesDir := theme.DefaultDir()
	if opts.ThemesDir != nil {
		themesDir = *opts.ThemesDir
	}
	themeManager := theme.NewManager(themesDir)
	if cfg.Editor.Theme != "" {
		if err := themeManager.SetTheme(cfg.Editor.Theme); err != nil {
			logger.Warnf("App: %v, keeping %s", err, themeManager.Current().Name)
		}
	}

	defStyle := themeManager.Current().GetStyle("Default")
	var (
		tuiManager *tui.TUI
		err        error
	)
	if opts.Screen != nil {
		tuiManager, err = tui.NewWithScreen(opts.Screen, defStyle)
	} else {
		tuiManager, err = tui.New(defStyle)
	}
	if err != nil {
		return nil, fmt.Errorf("TUI initialization failed: %w", err)
	}

	a := &App{
		cfg:           cfg,
		tuiManager:    tuiManager,
		editor:        editor,
		statusBar:     statusbar.New(statusbar.DefaultConfig()),
		eventManager:  eventManager,
		pluginManager: plugin.NewManager(),
		themeManager:  themeManager,
		showHistory:   cfg.Editor.ShowHistory,
		historyPanel:  historyview.New(),
		quit:          make(chan struct{}),
		redrawRequest: make(chan struct{}, 1),
	}

	a.modeHandler = modehandler.New(modehandler.Config{
		Editor:         editor,
		InputProcessor: input.NewInputProcessor(),
		EventManager:   eventManager,
		StatusBar:      a.statusBar,
		QuitSignal:     a.quit,
		BeforeSave:     a.suppressWatcher,
		ToggleHistory:  a.toggleHistory,
	})
	a.editorAPI = newEditorAPI(a)

	a.subscribeEvents()
	theme.RegisterCommands(a.editorAPI)

	if err := registerPlugins(a.pluginManager); err != nil {
		logger.Warnf("App: %v", err)
	}
	a.pluginManager.InitializePlugins(a.editorAPI)

	a.watch(editor.FilePath())
	return a, nil
}

// Run starts the application's main event and drawing loops.
func (a *App) Run() error {
	defer a.tuiManager.Close()
	defer a.closeWatcher()
	defer a.pluginManager.ShutdownPlugins()

	go a.eventLoop()

	a.eventManager.Dispatch(event.TypeAppReady, event.AppReadyData{})
	a.statusBar.SetTemporaryMessage("%s %s - Space click | Tab toggle | 1-7 tools | :w save | :q quit", config.AppName, config.Version)
	a.requestRedraw()

	for {
		select {
		case <-a.quit:
			a.eventManager.Dispatch(event.TypeAppQuit, event.AppQuitData{})
			if a.editor.Modified() {
				logger.Warnf("Exited with unsaved edits.")
			}
			logger.Infof("Exiting application.")
			return nil
		case <-a.redrawRequest:
			a.drawEditor()
		}
	}
}

// eventLoop handles TUI events, delegating key events to ModeHandler.
func (a *App) eventLoop() {
	for {
		ev := a.tuiManager.PollEvent()
		if ev == nil {
			return
		}

		needsRedraw := false
		switch ev := ev.(type) {
		case *tcell.EventResize:
			a.tuiManager.GetScreen().Sync()
			needsRedraw = true
		case *tcell.EventKey:
			needsRedraw = a.modeHandler.HandleKeyEvent(ev)
		case *tcell.EventMouse:
			needsRedraw = a.handleMouse(ev)
		}
		if needsRedraw {
			a.requestRedraw()
		}
	}
}

// handleMouse jumps through the history when an entry of the history panel
// is clicked, and moves the cursor when the map is clicked.
func (a *App) handleMouse(ev *tcell.EventMouse) bool {
	if ev.Buttons()&tcell.Button1 == 0 {
		return false
	}
	x, y := ev.Position()

	a.mu.Lock()
	k, onHistory := 0, false
	if a.showHistory {
		k, onHistory = a.historyPanel.IndexAt(x, y)
	}
	vp := a.viewport
	a.mu.Unlock()

	if onHistory {
		a.editor.Jump(k)
		return true
	}
	if vp.W > 0 && x >= vp.X && x < vp.X+vp.W && y >= vp.Y && y < vp.Y+vp.H {
		a.editor.SetCursor(vp.ToMap(x, y).Snap(a.editor.Grid()))
		return true
	}
	return false
}

func (a *App) toggleHistory() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.showHistory = !a.showHistory
}

// requestRedraw sends a redraw signal non-blockingly.
func (a *App) requestRedraw() {
	select {
	case a.redrawRequest <- struct{}{}:
	default: // Don't block if a redraw is already pending
	}
}
