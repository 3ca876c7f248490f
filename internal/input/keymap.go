package input

import (
	"github.com/gdamore/tcell/v2"
)

// Keymap maps special keys to actions.
type Keymap map[tcell.Key]Action

// RuneKeymap maps plain runes to actions.
type RuneKeymap map[rune]Action

// ModKeymap maps keys pressed with modifiers.
type ModKeymap map[tcell.ModMask]Keymap

// InputProcessor translates tcell events into ActionEvents. It does not
// know about modes: the mode handler decides what an action means.
type InputProcessor struct {
	keymap     Keymap
	runeKeymap RuneKeymap
	modKeymap  ModKeymap
}

// NewInputProcessor creates a processor with the default bindings.
func NewInputProcessor() *InputProcessor {
	p := &InputProcessor{
		keymap:     make(Keymap),
		runeKeymap: make(RuneKeymap),
		modKeymap:  make(ModKeymap),
	}
	p.loadDefaultBindings()
	return p
}

func (p *InputProcessor) loadDefaultBindings() {
	p.keymap[tcell.KeyUp] = ActionCursorUp
	p.keymap[tcell.KeyDown] = ActionCursorDown
	p.keymap[tcell.KeyLeft] = ActionCursorLeft
	p.keymap[tcell.KeyRight] = ActionCursorRight
	p.keymap[tcell.KeyEnter] = ActionEnter
	p.keymap[tcell.KeyTab] = ActionToggle
	p.keymap[tcell.KeyBackspace] = ActionBackspace
	p.keymap[tcell.KeyBackspace2] = ActionBackspace
	p.keymap[tcell.KeyDelete] = ActionDelete
	p.keymap[tcell.KeyEscape] = ActionCancel
	p.keymap[tcell.KeyCtrlC] = ActionQuit

	shiftMap := make(Keymap)
	shiftMap[tcell.KeyUp] = ActionNudgeUp
	shiftMap[tcell.KeyDown] = ActionNudgeDown
	shiftMap[tcell.KeyLeft] = ActionNudgeLeft
	shiftMap[tcell.KeyRight] = ActionNudgeRight
	p.modKeymap[tcell.ModShift] = shiftMap

	ctrlMap := make(Keymap)
	ctrlMap[tcell.KeyCtrlS] = ActionSave
	ctrlMap[tcell.KeyCtrlQ] = ActionForceQuit
	ctrlMap[tcell.KeyCtrlZ] = ActionUndo
	ctrlMap[tcell.KeyCtrlR] = ActionRedo
	ctrlMap[tcell.KeyCtrlY] = ActionRedo
	p.modKeymap[tcell.ModCtrl] = ctrlMap

	p.runeKeymap[':'] = ActionEnterCommandMode
	p.runeKeymap[' '] = ActionClick
	p.runeKeymap['u'] = ActionUndo
	p.runeKeymap['g'] = ActionDrag
	p.runeKeymap['s'] = ActionSides
	p.runeKeymap['y'] = ActionCopy
	p.runeKeymap['x'] = ActionCut
	p.runeKeymap['p'] = ActionPaste
	p.runeKeymap['+'] = ActionZoomIn
	p.runeKeymap['-'] = ActionZoomOut
	p.runeKeymap['h'] = ActionToggleHistory
	for r := '1'; r <= '7'; r++ {
		p.runeKeymap[r] = ActionTool
	}
}

// Bind maps a plain rune to an action, replacing the default binding.
func (p *InputProcessor) Bind(r rune, a Action) {
	p.runeKeymap[r] = a
}

// ProcessEvent returns the action bound to ev.
func (p *InputProcessor) ProcessEvent(ev *tcell.EventKey) ActionEvent {
	key := ev.Key()
	mod := ev.Modifiers()
	r := ev.Rune()

	if m, ok := p.modKeymap[mod]; ok {
		if action, ok := m[key]; ok {
			return ActionEvent{Action: action}
		}
	}
	// KeyCtrlS already implies Ctrl.
	if key >= tcell.KeyCtrlA && key <= tcell.KeyCtrlZ {
		mod &^= tcell.ModCtrl
	}

	if mod == tcell.ModNone || mod == tcell.ModShift {
		if action, ok := p.keymap[key]; ok {
			return ActionEvent{Action: action}
		}
	}

	// Shift is part of the rune for '+' and ':'.
	if key == tcell.KeyRune && (mod == tcell.ModNone || mod == tcell.ModShift) {
		if action, ok := p.runeKeymap[r]; ok {
			return ActionEvent{Action: action, Rune: r}
		}
		return ActionEvent{Action: ActionRune, Rune: r}
	}
	return ActionEvent{Action: ActionUnknown}
}
