package input

// Action represents an operation requested by a key press.
type Action int

const (
	ActionUnknown Action = iota
	ActionQuit
	ActionForceQuit // quit without checking for unsaved edits
	ActionSave

	// Cursor movement over the map, one grid step at a time
	ActionCursorUp
	ActionCursorDown
	ActionCursorLeft
	ActionCursorRight

	// Nudging the selection of the active tool
	ActionNudgeUp
	ActionNudgeDown
	ActionNudgeLeft
	ActionNudgeRight

	// Tool actions at the cursor
	ActionClick
	ActionToggle
	ActionConfirm // Enter outside the command line
	ActionDelete
	ActionCancel
	ActionDrag  // start or finish dragging the selection
	ActionSides // vertex tool: switch between vertexes and sides
	ActionTool  // Rune holds the tool digit

	ActionUndo
	ActionRedo

	ActionCopy
	ActionCut
	ActionPaste

	ActionZoomIn
	ActionZoomOut
	ActionToggleHistory

	// Command line
	ActionEnterCommandMode

	// ActionRune is a plain rune with no binding, for the command line.
	ActionRune
	ActionEnter
	ActionBackspace
)

// ActionEvent is a decoded key press.
type ActionEvent struct {
	Action Action
	Rune   rune
}
