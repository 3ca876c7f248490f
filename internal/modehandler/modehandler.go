// internal/modehandler/modehandler.go
package modehandler

import (
	"fmt"
	"sort"

	"github.com/bethropolis/hollow/internal/core"
	"github.com/bethropolis/hollow/internal/event"
	"github.com/bethropolis/hollow/internal/input"
	"github.com/bethropolis/hollow/internal/logger"
	"github.com/bethropolis/hollow/internal/plugin"
	"github.com/bethropolis/hollow/internal/statusbar"
	"github.com/bethropolis/hollow/internal/tool"
	"github.com/bethropolis/hollow/internal/types"
	"github.com/gdamore/tcell/v2"
)

// InputMode defines the different states for user input.
type InputMode int

const (
	ModeNormal InputMode = iota
	ModeCommand
)

func (m InputMode) String() string {
	if m == ModeCommand {
		return "COMMAND"
	}
	return "NORMAL"
}

// ModeHandler manages input modes, command execution, and related state.
type ModeHandler struct {
	editor         *core.Editor
	inputProcessor *input.InputProcessor
	eventManager   *event.Manager
	statusBar      *statusbar.StatusBar
	quitSignal     chan<- struct{}
	beforeSave     func()
	toggleHistory  func()

	currentMode      InputMode
	cmdBuffer        []rune
	commands         map[string]plugin.CommandFunc
	forceQuitPending bool
	quitting         bool
}

// Config holds dependencies for the ModeHandler.
type Config struct {
	Editor         *core.Editor
	InputProcessor *input.InputProcessor
	EventManager   *event.Manager
	StatusBar      *statusbar.StatusBar
	QuitSignal     chan<- struct{} // closed once to make the app exit

	// BeforeSave runs before the editor writes the map.
	BeforeSave func()
	// ToggleHistory shows or hides the history panel.
	ToggleHistory func()
}

// New creates a new ModeHandler with the built-in commands registered.
func New(cfg Config) *ModeHandler {
	if cfg.Editor == nil || cfg.InputProcessor == nil || cfg.EventManager == nil || cfg.StatusBar == nil || cfg.QuitSignal == nil {
		panic("modehandler.New: Missing required dependencies in Config")
	}
	mh := &ModeHandler{
		editor:         cfg.Editor,
		inputProcessor: cfg.InputProcessor,
		eventManager:   cfg.EventManager,
		statusBar:      cfg.StatusBar,
		quitSignal:     cfg.QuitSignal,
		beforeSave:     cfg.BeforeSave,
		toggleHistory:  cfg.ToggleHistory,
		currentMode:    ModeNormal,
		commands:       make(map[string]plugin.CommandFunc),
	}
	mh.registerBuiltins()
	mh.statusBar.SetEditorMode(ModeNormal.String())
	return mh
}

// HandleKeyEvent decides what to do based on current mode and key event.
// Returns true if the event resulted in an action requiring redraw.
func (mh *ModeHandler) HandleKeyEvent(ev *tcell.EventKey) bool {
	mh.eventManager.Dispatch(event.TypeKeyPressed, event.KeyPressedData{KeyEvent: ev})

	actionEvent := mh.inputProcessor.ProcessEvent(ev)
	switch mh.currentMode {
	case ModeCommand:
		return mh.handleActionCommand(actionEvent)
	default:
		return mh.handleActionNormal(actionEvent)
	}
}

func (mh *ModeHandler) setMode(m InputMode) {
	mh.currentMode = m
	mh.statusBar.SetEditorMode(m.String())
	if m == ModeCommand {
		mh.cmdBuffer = mh.cmdBuffer[:0]
		mh.statusBar.SetCommandLine("")
	} else {
		mh.statusBar.ClearCommandLine()
	}
}

func (mh *ModeHandler) quit() {
	if mh.quitting {
		return
	}
	mh.quitting = true
	close(mh.quitSignal)
}

// act runs a tool operation at the cursor as one frame.
func (mh *ModeHandler) act(fn func(t tool.Tool, c *tool.Context, at types.Vec2)) {
	mh.editor.Act(fn)
}

// handleActionNormal handles actions when in ModeNormal.
func (mh *ModeHandler) handleActionNormal(ae input.ActionEvent) bool {
	grid := mh.editor.Grid()
	processed := true

	switch ae.Action {
	case input.ActionEnterCommandMode:
		mh.setMode(ModeCommand)
		logger.DebugTagf("modehandler", "Entering Command Mode")

	case input.ActionQuit:
		if mh.editor.Modified() && !mh.forceQuitPending {
			mh.statusBar.SetTemporaryMessage("Unsaved edits! Press Ctrl+C again or Ctrl+Q to quit without saving.")
			mh.forceQuitPending = true
			return true
		}
		mh.quit()
		return false
	case input.ActionForceQuit:
		mh.quit()
		return false
	case input.ActionSave:
		if err := mh.save(""); err != nil {
			mh.statusBar.SetTemporaryMessage("Save FAILED: %v", err)
		}

	case input.ActionCursorUp:
		mh.editor.MoveCursor(0, 1)
	case input.ActionCursorDown:
		mh.editor.MoveCursor(0, -1)
	case input.ActionCursorLeft:
		mh.editor.MoveCursor(-1, 0)
	case input.ActionCursorRight:
		mh.editor.MoveCursor(1, 0)

	case input.ActionNudgeUp:
		mh.nudge(types.V(0, grid))
	case input.ActionNudgeDown:
		mh.nudge(types.V(0, -grid))
	case input.ActionNudgeLeft:
		mh.nudge(types.V(-grid, 0))
	case input.ActionNudgeRight:
		mh.nudge(types.V(grid, 0))

	case input.ActionClick:
		mh.act(func(t tool.Tool, c *tool.Context, at types.Vec2) { t.Click(c, at) })
	case input.ActionToggle:
		mh.act(func(t tool.Tool, c *tool.Context, at types.Vec2) { t.Toggle(c, at) })
	case input.ActionEnter, input.ActionConfirm:
		mh.act(func(t tool.Tool, c *tool.Context, _ types.Vec2) { t.Confirm(c) })
	case input.ActionDelete:
		mh.act(func(t tool.Tool, c *tool.Context, _ types.Vec2) { t.Delete(c) })
	case input.ActionCancel:
		mh.act(func(t tool.Tool, c *tool.Context, _ types.Vec2) { t.Cancel(c) })
	case input.ActionDrag:
		if mh.editor.Tool() != tool.Entity {
			mh.statusBar.SetTemporaryMessage("Drag needs the entity tool")
		} else if mh.editor.ToggleDrag() {
			mh.statusBar.SetTemporaryMessage("Dragging, press g to drop")
		}
	case input.ActionSides:
		mh.toggleSides()
	case input.ActionTool:
		k := tool.Kind(ae.Rune - '1')
		mh.editor.SwitchTool(k)
		mh.statusBar.SetToolInfo(k.String())

	case input.ActionUndo:
		if !mh.editor.Undo() {
			mh.statusBar.SetTemporaryMessage("Nothing to undo")
		}
	case input.ActionRedo:
		if !mh.editor.Redo() {
			mh.statusBar.SetTemporaryMessage("Nothing to redo")
		}

	case input.ActionCopy:
		n, err := mh.editor.Copy()
		mh.reportClipboard("Copied", n, err)
	case input.ActionCut:
		n, err := mh.editor.Cut()
		mh.reportClipboard("Cut", n, err)
	case input.ActionPaste:
		n, err := mh.editor.Paste()
		switch {
		case err != nil:
			mh.statusBar.SetTemporaryMessage("Paste failed: %v", err)
		case n == 0:
			mh.statusBar.SetTemporaryMessage("Clipboard empty")
		default:
			mh.statusBar.SetTemporaryMessage("Pasted %d entities", n)
		}

	case input.ActionZoomIn:
		mh.editor.ZoomBy(1)
	case input.ActionZoomOut:
		mh.editor.ZoomBy(-1)
	case input.ActionToggleHistory:
		if mh.toggleHistory != nil {
			mh.toggleHistory()
		}

	default:
		processed = false
	}

	if processed {
		mh.forceQuitPending = false
	}
	return processed
}

func (mh *ModeHandler) nudge(delta types.Vec2) {
	mh.act(func(t tool.Tool, c *tool.Context, _ types.Vec2) { t.Nudge(c, delta) })
}

func (mh *ModeHandler) toggleSides() {
	var on, ok bool
	mh.act(func(t tool.Tool, _ *tool.Context, _ types.Vec2) {
		var vt *tool.VertexTool
		if vt, ok = t.(*tool.VertexTool); ok {
			on = !vt.Sides()
			vt.SetSides(on)
		}
	})
	switch {
	case !ok:
		mh.statusBar.SetTemporaryMessage("Sides needs the vertex tool")
	case on:
		mh.statusBar.SetTemporaryMessage("Editing sides")
	default:
		mh.statusBar.SetTemporaryMessage("Editing vertexes")
	}
}

func (mh *ModeHandler) reportClipboard(verb string, n int, err error) {
	switch {
	case err != nil:
		mh.statusBar.SetTemporaryMessage("%s failed: %v", verb, err)
	case n == 0:
		mh.statusBar.SetTemporaryMessage("Nothing selected")
	default:
		mh.statusBar.SetTemporaryMessage("%s %d entities", verb, n)
	}
}

// save writes the map, under path when it is not empty.
func (mh *ModeHandler) save(path string) error {
	if mh.beforeSave != nil {
		mh.beforeSave()
	}
	if err := mh.editor.Save(path); err != nil {
		return err
	}
	mh.statusBar.SetTemporaryMessage("Map saved to %s", mh.editor.FilePath())
	return nil
}

// RegisterCommand adds a command to the registry. Called via EditorAPI.
func (mh *ModeHandler) RegisterCommand(name string, cmdFunc plugin.CommandFunc) error {
	if name == "" {
		return fmt.Errorf("command name cannot be empty")
	}
	if _, exists := mh.commands[name]; exists {
		return fmt.Errorf("command '%s' already registered", name)
	}
	mh.commands[name] = cmdFunc
	logger.DebugTagf("modehandler", "Registered command ':%s'", name)
	return nil
}

// Commands returns the registered command names, sorted.
func (mh *ModeHandler) Commands() []string {
	names := make([]string, 0, len(mh.commands))
	for n := range mh.commands {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// GetCurrentMode returns the current input mode.
func (mh *ModeHandler) GetCurrentMode() InputMode {
	return mh.currentMode
}

// GetCommandBuffer returns the command line being typed.
func (mh *ModeHandler) GetCommandBuffer() string {
	if mh.currentMode == ModeCommand {
		return string(mh.cmdBuffer)
	}
	return ""
}
