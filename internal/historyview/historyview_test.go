package historyview

import (
	"fmt"
	"strings"
	"testing"

	"github.com/bethropolis/hollow/internal/editlog"
	"github.com/bethropolis/hollow/internal/theme"
	"github.com/bethropolis/hollow/internal/types"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ History = (*editlog.Log)(nil)

type fakeHistory struct {
	tags  []string
	index int
}

func (f *fakeHistory) Len() int         { return len(f.tags) }
func (f *fakeHistory) Index() int       { return f.index }
func (f *fakeHistory) Tag(i int) string { return f.tags[i] }

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	s.SetSize(w, h)
	t.Cleanup(s.Fini)
	return s
}

func row(s tcell.SimulationScreen, y int) (string, tcell.Style) {
	s.Show()
	cells, w, _ := s.GetContents()
	var b strings.Builder
	for _, c := range cells[y*w : (y+1)*w] {
		if len(c.Runes) > 0 {
			b.WriteString(string(c.Runes))
		} else {
			b.WriteByte(' ')
		}
	}
	return strings.TrimRight(b.String(), " "), cells[y*w].Style
}

func TestDrawMarksCurrentAndRedoBranch(t *testing.T) {
	s := newScreen(t, 20, 6)
	h := &fakeHistory{tags: []string{"Brush Draw", "Brush Move", "Texture"}, index: 2}
	p := New()
	th := &theme.HollowDark
	p.Draw(s, Rect{X: 0, Y: 0, W: 20, H: 6}, h, th)

	title, _ := row(s, 0)
	assert.Equal(t, "History 2/3", title)

	want := []string{"  Start", "  Brush Draw", "> Brush Move", "  Texture"}
	styles := []tcell.Style{th.GetStyle("History"), th.GetStyle("History"), th.GetStyle("History.current"), th.GetStyle("History.redo")}
	for i, w := range want {
		text, style := row(s, i+1)
		assert.Equal(t, w, text)
		assert.Equal(t, styles[i], style, w)
	}
}

func TestIndexAt(t *testing.T) {
	s := newScreen(t, 40, 10)
	h := &fakeHistory{tags: []string{"a", "b"}, index: 2}
	p := New()
	p.Draw(s, Rect{X: 30, Y: 2, W: 10, H: 6}, h, &theme.HollowDark)

	_, ok := p.IndexAt(31, 2)
	assert.False(t, ok, "title row")
	_, ok = p.IndexAt(5, 3)
	assert.False(t, ok, "outside the panel")

	k, ok := p.IndexAt(31, 3)
	require.True(t, ok)
	assert.Equal(t, 0, k)
	k, ok = p.IndexAt(39, 5)
	require.True(t, ok)
	assert.Equal(t, 2, k)

	_, ok = p.IndexAt(31, 6)
	assert.False(t, ok, "below the last entry")
}

func TestScrollKeepsCurrentVisible(t *testing.T) {
	s := newScreen(t, 20, 5)
	tags := make([]string, 30)
	for i := range tags {
		tags[i] = fmt.Sprintf("Edit %d", i+1)
	}
	h := &fakeHistory{tags: tags, index: 30}
	p := New()
	rect := Rect{W: 20, H: 5}
	p.Draw(s, rect, h, &theme.HollowDark)

	last, _ := row(s, 4)
	assert.Equal(t, "> Edit 30", last)
	k, ok := p.IndexAt(0, 1)
	require.True(t, ok)
	assert.Equal(t, 27, k)

	h.index = 0
	p.Draw(s, rect, h, &theme.HollowDark)
	first, _ := row(s, 1)
	assert.Equal(t, "> Start", first)
	k, _ = p.IndexAt(0, 4)
	assert.Equal(t, 3, k)
}

func TestDrawRealLog(t *testing.T) {
	s := newScreen(t, 30, 4)
	log := editlog.New()
	log.FreeDrawPointInsertion(types.V(1, 1), 0)
	log.CommitFrame()

	p := New()
	p.Draw(s, Rect{W: 30, H: 4}, log, &theme.HollowDark)
	text, _ := row(s, 2)
	assert.Equal(t, "> "+log.Tag(0), text)
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"Brush Move", 20, "Brush Move"},
		{"Brush Move", 10, "Brush Move"},
		{"Brush Move", 6, "Brush…"},
		{"テクスチャ", 5, "テク…"},
		{"abc", 0, ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Truncate(tt.in, tt.width), "%q/%d", tt.in, tt.width)
	}
}
