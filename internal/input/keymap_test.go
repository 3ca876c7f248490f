package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
)

func TestProcessEvent(t *testing.T) {
	p := NewInputProcessor()
	cases := []struct {
		name string
		ev   *tcell.EventKey
		want ActionEvent
	}{
		{"arrow", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), ActionEvent{Action: ActionCursorLeft}},
		{"shift arrow", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModShift), ActionEvent{Action: ActionNudgeLeft}},
		{"ctrl z", tcell.NewEventKey(tcell.KeyCtrlZ, 0, tcell.ModCtrl), ActionEvent{Action: ActionUndo}},
		{"colon", tcell.NewEventKey(tcell.KeyRune, ':', tcell.ModShift), ActionEvent{Action: ActionEnterCommandMode, Rune: ':'}},
		{"tool digit", tcell.NewEventKey(tcell.KeyRune, '3', tcell.ModNone), ActionEvent{Action: ActionTool, Rune: '3'}},
		{"unbound rune", tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone), ActionEvent{Action: ActionRune, Rune: 'z'}},
		{"alt rune", tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModAlt), ActionEvent{Action: ActionUnknown}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, p.ProcessEvent(tc.ev))
		})
	}
}

func TestBind(t *testing.T) {
	p := NewInputProcessor()
	p.Bind('z', ActionUndo)
	got := p.ProcessEvent(tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone))
	assert.Equal(t, ActionUndo, got.Action)
}
