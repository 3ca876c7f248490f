// internal/tui/drawing.go
package tui

import (
	"math"

	"github.com/bethropolis/hollow/internal/document"
	"github.com/bethropolis/hollow/internal/theme"
	"github.com/bethropolis/hollow/internal/tool"
	"github.com/bethropolis/hollow/internal/types"
	"github.com/gdamore/tcell/v2"
)

// cellAspect is how many columns make one row visually.
const cellAspect = 2

const (
	runeGrid     = '·'
	runeEdge     = '.'
	runeVertex   = 'o'
	runeSelected = '@'
	runeThing    = 'T'
	runeNode     = '*'
	runePathEdge = '-'
	runeFreeDraw = '+'
	runeCorner   = 'x'
)

// Viewport maps map space onto a screen area centered on Center. Map y
// grows upwards.
type Viewport struct {
	X, Y, W, H int
	Center     types.Vec2
	// Scale is the number of rows per map unit.
	Scale float64
}

// NewViewport returns a viewport showing zoom cells per grid step.
func NewViewport(x, y, w, h int, center types.Vec2, grid float64, zoom int) Viewport {
	return Viewport{X: x, Y: y, W: w, H: h, Center: center, Scale: float64(zoom) / grid}
}

// ToScreen returns the cell of map point p.
func (v Viewport) ToScreen(p types.Vec2) (int, int) {
	d := p.Sub(v.Center)
	x := v.X + v.W/2 + int(math.Round(d.X*v.Scale*cellAspect))
	y := v.Y + v.H/2 - int(math.Round(d.Y*v.Scale))
	return x, y
}

// ToMap returns the map point at the center of cell x, y.
func (v Viewport) ToMap(x, y int) types.Vec2 {
	dx := float64(x-v.X-v.W/2) / (v.Scale * cellAspect)
	dy := float64(v.Y+v.H/2-y) / v.Scale
	return v.Center.Add(types.V(dx, dy))
}

func (v Viewport) visible(x, y int) bool {
	return x >= v.X && x < v.X+v.W && y >= v.Y && y < v.Y+v.H
}

func (v Viewport) set(screen tcell.Screen, x, y int, r rune, style tcell.Style) {
	if v.visible(x, y) {
		screen.SetContent(x, y, r, nil, style)
	}
}

// line draws a straight segment between two cells.
func (v Viewport) line(screen tcell.Screen, x0, y0, x1, y1 int, r rune, style tcell.Style) {
	dx, dy := abs(x1-x0), -abs(y1-y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for steps := 0; steps <= v.W+v.H+dx-dy; steps++ {
		v.set(screen, x0, y0, r, style)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// Scene is what DrawMap needs besides the document.
type Scene struct {
	Cursor types.Vec2
	Grid   float64
	Tools  *tool.Manager
}

// DrawMap draws the grid, the brushes, the things, their paths, the
// pending tool state and the cursor.
func DrawMap(screen tcell.Screen, v Viewport, doc *document.Document, sc Scene, th *theme.Theme) {
	base := th.GetStyle("Default")
	for y := v.Y; y < v.Y+v.H; y++ {
		for x := v.X; x < v.X+v.W; x++ {
			screen.SetContent(x, y, ' ', nil, base)
		}
	}
	drawGrid(screen, v, sc.Grid, th)

	for _, id := range doc.BrushIDs() {
		b, _ := doc.Brush(id)
		style := th.GetStyle("Brush")
		switch {
		case b.Drawn:
			style = th.GetStyle("Brush.drawn")
		case doc.IsSelected(id):
			style = th.GetStyle("Brush.selected")
		case doc.IsSubtractee(id):
			style = th.GetStyle("Subtractee")
		}
		drawPolygon(screen, v, b.Data.Polygon, style, th)
		if b.Data.Path != nil {
			drawPath(screen, v, b.Data.Polygon.Center(), *b.Data.Path, th)
		}
	}

	for _, id := range doc.ThingIDs() {
		t, _ := doc.Thing(id)
		style := th.GetStyle("Thing")
		if doc.IsSelected(id) {
			style = th.GetStyle("Thing.selected")
		}
		if t.Data.Path != nil {
			drawPath(screen, v, t.Data.Pos, *t.Data.Path, th)
		}
		x, y := v.ToScreen(t.Data.Pos)
		v.set(screen, x, y, runeThing, style)
	}

	freeDraw := th.GetStyle("FreeDraw")
	drawPoints(screen, v, doc.FreeDrawPoints(), freeDraw)
	if sc.Tools != nil {
		switch t := sc.Tools.Current().(type) {
		case *tool.DrawTool:
			if c, ok := t.Corner(); ok {
				x, y := v.ToScreen(c)
				v.set(screen, x, y, runeCorner, freeDraw)
			}
		case *tool.PathTool:
			drawPoints(screen, v, t.Pending(), freeDraw)
		}
	}

	x, y := v.ToScreen(sc.Cursor)
	if v.visible(x, y) {
		r, comb, _, _ := screen.GetContent(x, y)
		screen.SetContent(x, y, r, comb, th.GetStyle("Cursor"))
	}
}

func drawGrid(screen tcell.Screen, v Viewport, grid float64, th *theme.Theme) {
	if grid <= 0 || grid*v.Scale < 2 {
		return
	}
	style := th.GetStyle("Grid")
	lo, hi := v.ToMap(v.X, v.Y+v.H-1), v.ToMap(v.X+v.W-1, v.Y)
	for gx := math.Ceil(lo.X/grid) * grid; gx <= hi.X; gx += grid {
		for gy := math.Ceil(lo.Y/grid) * grid; gy <= hi.Y; gy += grid {
			x, y := v.ToScreen(types.V(gx, gy))
			v.set(screen, x, y, runeGrid, style)
		}
	}
}

func drawPolygon(screen tcell.Screen, v Viewport, p types.Polygon, style tcell.Style, th *theme.Theme) {
	n := p.Len()
	for i := 0; i < n; i++ {
		x0, y0 := v.ToScreen(p.Vertexes[i].Pos)
		x1, y1 := v.ToScreen(p.Vertexes[(i+1)%n].Pos)
		v.line(screen, x0, y0, x1, y1, runeEdge, style)
	}
	for _, vx := range p.Vertexes {
		x, y := v.ToScreen(vx.Pos)
		if vx.Selected {
			v.set(screen, x, y, runeSelected, th.GetStyle("Vertex.selected"))
		} else {
			v.set(screen, x, y, runeVertex, style)
		}
	}
}

func drawPath(screen tcell.Screen, v Viewport, center types.Vec2, p types.Path, th *theme.Theme) {
	style := th.GetStyle("Path")
	for i := 1; i < p.Len(); i++ {
		x0, y0 := v.ToScreen(center.Add(p.Nodes[i-1].Pos))
		x1, y1 := v.ToScreen(center.Add(p.Nodes[i].Pos))
		v.line(screen, x0, y0, x1, y1, runePathEdge, style)
	}
	for _, n := range p.Nodes {
		x, y := v.ToScreen(center.Add(n.Pos))
		if n.Selected {
			v.set(screen, x, y, runeNode, th.GetStyle("Path.selected"))
		} else {
			v.set(screen, x, y, runeNode, style)
		}
	}
}

func drawPoints(screen tcell.Screen, v Viewport, pts []types.Vec2, style tcell.Style) {
	for _, p := range pts {
		x, y := v.ToScreen(p)
		v.set(screen, x, y, runeFreeDraw, style)
	}
}
