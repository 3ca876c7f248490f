package app

import (
	"path/filepath"
	"time"

	"github.com/bethropolis/hollow/internal/event"
	"github.com/bethropolis/hollow/internal/logger"
	"github.com/bethropolis/hollow/internal/watcher"
)

// saveQuietPeriod is how long the watcher ignores the file after the
// editor writes it.
const saveQuietPeriod = 500 * time.Millisecond

// subscribeEvents wires the event bus to the screen and the file watcher.
func (a *App) subscribeEvents() {
	redraw := func(event.Event) bool {
		a.requestRedraw()
		return false
	}
	for _, t := range []event.Type{
		event.TypeMapModified,
		event.TypeHistoryMoved,
		event.TypeToolChanged,
		event.TypeCatalogReloaded,
		event.TypeThemeChanged,
	} {
		a.eventManager.Subscribe(t, redraw)
	}

	a.eventManager.Subscribe(event.TypeMapLoaded, a.handleMapLoaded)
	a.eventManager.Subscribe(event.TypeMapSaved, a.handleMapSaved)
	a.eventManager.Subscribe(event.TypeMapChanged, a.handleMapChanged)
}

// handleMapLoaded follows the opened file with the watcher.
func (a *App) handleMapLoaded(e event.Event) bool {
	if data, ok := e.Data.(event.MapLoadedData); ok {
		a.watch(data.FilePath)
	}
	a.requestRedraw()
	return false
}

// handleMapSaved follows the file after a save under a new name.
func (a *App) handleMapSaved(e event.Event) bool {
	if data, ok := e.Data.(event.MapSavedData); ok {
		a.watch(data.FilePath)
	}
	a.requestRedraw()
	return false
}

func (a *App) handleMapChanged(e event.Event) bool {
	data, ok := e.Data.(event.MapChangedData)
	if !ok {
		return false
	}
	if a.editor.Modified() {
		a.statusBar.SetTemporaryMessage("%s changed on disk! :e! drops your edits and reloads", filepath.Base(data.FilePath))
	} else {
		a.statusBar.SetTemporaryMessage("%s changed on disk, :e! to reload", filepath.Base(data.FilePath))
	}
	a.requestRedraw()
	return false
}

// watch points the file watcher at path. It is a no-op when watching is
// disabled, path is empty or already watched.
func (a *App) watch(path string) {
	if !a.cfg.Editor.WatchFile || path == "" {
		return
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		logger.Warnf("App: cannot watch '%s': %v", path, err)
		return
	}

	a.mu.Lock()
	current := a.watcher
	a.mu.Unlock()
	if current != nil && current.Path() == abs {
		return
	}

	w, err := watcher.New(abs, func(changed string) {
		a.eventManager.Dispatch(event.TypeMapChanged, event.MapChangedData{FilePath: changed})
	})
	if err != nil {
		logger.Warnf("App: %v", err)
		return
	}

	a.mu.Lock()
	old := a.watcher
	a.watcher = w
	a.mu.Unlock()
	if old != nil {
		if err := old.Close(); err != nil {
			logger.Warnf("App: closing watcher: %v", err)
		}
	}
}

// suppressWatcher runs before every save so the editor's own write is
// not reported as an external change.
func (a *App) suppressWatcher() {
	a.mu.Lock()
	w := a.watcher
	a.mu.Unlock()
	if w != nil {
		w.Suppress(saveQuietPeriod)
	}
}

func (a *App) closeWatcher() {
	a.mu.Lock()
	w := a.watcher
	a.watcher = nil
	a.mu.Unlock()
	if w != nil {
		if err := w.Close(); err != nil {
			logger.Warnf("App: closing watcher: %v", err)
		}
	}
}
