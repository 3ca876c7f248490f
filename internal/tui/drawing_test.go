package tui

import (
	"testing"

	"github.com/bethropolis/hollow/internal/document"
	"github.com/bethropolis/hollow/internal/editlog"
	"github.com/bethropolis/hollow/internal/theme"
	"github.com/bethropolis/hollow/internal/tool"
	"github.com/bethropolis/hollow/internal/types"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("")
	require.NoError(t, s.Init())
	s.SetSize(w, h)
	t.Cleanup(s.Fini)
	return s
}

func cell(s tcell.Screen, x, y int) (rune, tcell.Style) {
	r, _, style, _ := s.GetContent(x, y)
	return r, style
}

func TestViewportRoundTrip(t *testing.T) {
	v := NewViewport(0, 0, 40, 20, types.V(3, -2), 4, 2)
	for _, p := range []types.Vec2{types.V(3, -2), types.V(7, 2), types.V(-5, 10)} {
		x, y := v.ToScreen(p)
		assert.Equal(t, p, v.ToMap(x, y))
	}

	x, y := v.ToScreen(types.V(3, -2))
	assert.Equal(t, 20, x)
	assert.Equal(t, 10, y)

	// map y grows upwards
	_, above := v.ToScreen(types.V(3, 2))
	assert.Less(t, above, y)
}

func TestDrawMap(t *testing.T) {
	s := newScreen(t, 20, 10)
	th := &theme.HollowDark
	doc := document.New()

	brush := doc.NewID()
	doc.SpawnBrush(brush, types.BrushData{
		Polygon: types.NewPolygon(types.V(0, 0), types.V(2, 0), types.V(2, 2), types.V(0, 2)),
	}, types.BrushSelected)
	thing := doc.NewID()
	doc.SpawnThing(thing, types.ThingInstance{Pos: types.V(-2, -1)}, false)

	tools := tool.NewManager(doc, editlog.New(), 1)
	v := NewViewport(0, 0, 20, 10, types.V(0, 0), 1, 1)
	DrawMap(s, v, doc, Scene{Cursor: types.V(0, 0), Grid: 1, Tools: tools}, th)

	r, _ := cell(s, 14, 3)
	assert.Equal(t, 'o', r)

	r, style := cell(s, 12, 5)
	assert.Equal(t, '.', r)
	assert.Equal(t, th.GetStyle("Brush.selected"), style)

	r, style = cell(s, 6, 6)
	assert.Equal(t, 'T', r)
	assert.Equal(t, th.GetStyle("Thing"), style)

	r, style = cell(s, 10, 5)
	assert.Equal(t, 'o', r, "cursor keeps the rune under it")
	assert.Equal(t, th.GetStyle("Cursor"), style)
}

func TestDrawMapPendingToolState(t *testing.T) {
	s := newScreen(t, 20, 10)
	th := &theme.HollowDark
	doc := document.New()
	tools := tool.NewManager(doc, editlog.New(), 1)
	tools.Switch(tool.Draw)
	tools.Current().Click(tools.Context(), types.V(1, 1))

	v := NewViewport(0, 0, 20, 10, types.V(0, 0), 1, 1)
	DrawMap(s, v, doc, Scene{Cursor: types.V(0, 0), Grid: 1, Tools: tools}, th)

	r, _ := cell(s, 12, 4)
	assert.Equal(t, 'x', r)
}

func TestDrawGridOnlyWhenSparse(t *testing.T) {
	th := &theme.HollowDark
	doc := document.New()

	s := newScreen(t, 20, 10)
	DrawMap(s, NewViewport(0, 0, 20, 10, types.V(0, 0), 1, 1), doc, Scene{Grid: 1}, th)
	r, _ := cell(s, 2, 0)
	assert.Equal(t, ' ', r)

	s = newScreen(t, 20, 10)
	DrawMap(s, NewViewport(0, 0, 20, 10, types.V(0, 0), 1, 2), doc, Scene{Grid: 1, Cursor: types.V(100, 100)}, th)
	r, style := cell(s, 14, 3)
	assert.Equal(t, '·', r)
	assert.Equal(t, th.GetStyle("Grid"), style)
}
