package statusbar

import (
	"strings"
	"testing"
	"time"

	"github.com/bethropolis/hollow/internal/theme"
	"github.com/bethropolis/hollow/internal/types"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	s.SetSize(w, h)
	t.Cleanup(s.Fini)
	return s
}

func lastLine(s tcell.SimulationScreen) string {
	s.Show()
	cells, w, h := s.GetContents()
	var b strings.Builder
	for _, c := range cells[(h-1)*w:] {
		if len(c.Runes) > 0 {
			b.WriteString(string(c.Runes))
		} else {
			b.WriteByte(' ')
		}
	}
	return strings.TrimRight(b.String(), " ")
}

func TestDefaultLine(t *testing.T) {
	s := newScreen(t, 80, 3)
	sb := New(DefaultConfig())
	sb.SetFileInfo("level.toml", true)
	sb.SetToolInfo("vertex")
	sb.SetCursorInfo(types.V(8, -16))
	sb.SetEditorMode("NORMAL")
	sb.SetHistoryInfo(3, 5)

	sb.Draw(s, 80, 3, &theme.HollowDark)
	line := lastLine(s)
	assert.True(t, strings.HasPrefix(line, "level.toml [+] -- vertex -- (8, -16) -- NORMAL"), line)
	assert.True(t, strings.HasSuffix(line, "history 3/5"), line)
}

func TestNoNameAndNoMarker(t *testing.T) {
	s := newScreen(t, 60, 1)
	sb := New(DefaultConfig())
	sb.Draw(s, 60, 1, &theme.HollowDark)
	line := lastLine(s)
	assert.True(t, strings.HasPrefix(line, "[No Name] -- (0, 0)"), line)
	assert.NotContains(t, line, "[+]")
}

func TestMessagesAndCommandLine(t *testing.T) {
	s := newScreen(t, 40, 1)
	sb := New(Config{MessageTimeout: time.Hour})

	sb.SetTemporaryMessage("Saved %s", "a.toml")
	sb.Draw(s, 40, 1, &theme.HollowDark)
	assert.Equal(t, "Saved a.toml", lastLine(s))

	sb.SetCommandLine("w b.toml")
	sb.Draw(s, 40, 1, &theme.HollowDark)
	assert.Equal(t, ":w b.toml", lastLine(s))

	sb.ClearCommandLine()
	sb.ResetTemporaryMessage()
	sb.Draw(s, 40, 1, &theme.HollowDark)
	assert.True(t, strings.HasPrefix(lastLine(s), "[No Name]"))
}

func TestExpiredMessage(t *testing.T) {
	s := newScreen(t, 40, 1)
	sb := New(Config{MessageTimeout: time.Nanosecond})
	sb.SetTemporaryMessage("gone")
	time.Sleep(time.Millisecond)
	sb.Draw(s, 40, 1, &theme.HollowDark)
	assert.NotContains(t, lastLine(s), "gone")
}

func TestTruncatesWideText(t *testing.T) {
	s := newScreen(t, 6, 1)
	sb := New(Config{MessageTimeout: time.Hour})
	sb.SetTemporaryMessage("日本語テキスト")
	sb.Draw(s, 6, 1, &theme.HollowDark)
	s.Show()
	cells, _, _ := s.GetContents()
	assert.Equal(t, []rune{'日'}, cells[0].Runes)
	assert.Equal(t, []rune{'語'}, cells[4].Runes)
}
