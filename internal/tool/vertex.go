package tool

import (
	"github.com/bethropolis/hollow/internal/editlog"
	"github.com/bethropolis/hollow/internal/types"
)

// VertexTool edits the polygons of the selected brushes. In sides mode a
// click selects both ends of the nearest side and deletions are recorded
// as side deletions.
type VertexTool struct {
	base
	sides bool
}

func (*VertexTool) Kind() Kind { return Vertex }

func (t *VertexTool) Target(*Context) editlog.Target {
	if t.sides {
		return editlog.Target{Mode: editlog.TargetSides}
	}
	return editlog.Target{Mode: editlog.TargetVertexes}
}

// Sides reports whether sides mode is on.
func (t *VertexTool) Sides() bool { return t.sides }

// SetSides switches between vertex and sides mode. The manager must be
// synced afterwards.
func (t *VertexTool) SetSides(on bool) { t.sides = on }

// nearestVertex finds the selected brush vertex closest to at within the pick
// radius.
func nearestVertex(c *Context, at types.Vec2) (types.ID, int, bool) {
	var (
		best  types.ID
		index int
		dist  = c.pickRadius()
		found bool
	)
	for _, id := range c.Doc.SelectedBrushes() {
		b, _ := c.Doc.Brush(id)
		i := b.Data.Polygon.Nearest(at)
		if i < 0 {
			continue
		}
		if d := b.Data.Polygon.Vertexes[i].Pos.Dist(at); d <= dist {
			best, index, dist, found = id, i, d, true
		}
	}
	return best, index, found
}

// Click toggles the selection of the vertex, or side, under the cursor.
func (t *VertexTool) Click(c *Context, at types.Vec2) {
	if t.sides {
		t.toggleSide(c, at)
		return
	}
	id, i, ok := nearestVertex(c, at)
	if !ok {
		return
	}
	c.Doc.ToggleVertex(id, i)
	c.Log.VertexesSelection(id, []int{i})
}

func (t *VertexTool) toggleSide(c *Context, at types.Vec2) {
	var (
		best  types.ID
		side  []int
		found bool
		dist  = c.pickRadius()
	)
	for _, id := range c.Doc.SelectedBrushes() {
		b, _ := c.Doc.Brush(id)
		vxs := b.Data.Polygon.Vertexes
		for i := range vxs {
			j := (i + 1) % len(vxs)
			mid := vxs[i].Pos.Add(vxs[j].Pos).Scale(0.5)
			if d := mid.Dist(at); d <= dist {
				best, side, dist, found = id, []int{i, j}, d, true
			}
		}
	}
	if !found {
		return
	}
	for _, i := range side {
		c.Doc.ToggleVertex(best, i)
	}
	c.Log.VertexesSelection(best, side)
}

// Toggle inserts a vertex at the cursor into the first selected brush that
// stays convex.
func (t *VertexTool) Toggle(c *Context, at types.Vec2) {
	for _, id := range c.Doc.SelectedBrushes() {
		b, _ := c.Doc.Brush(id)
		n := b.Data.Polygon.Nearest(at)
		if n < 0 {
			continue
		}
		for _, i := range []int{n + 1, n} {
			if !c.Doc.CanInsertVertex(id, i, at) {
				continue
			}
			v := types.Vertex{Pos: at}
			c.Doc.InsertVertex(id, i, v)
			c.Log.VertexInsertion(id, i, v)
			return
		}
	}
}

// Nudge moves the selected vertexes. Nothing moves if any brush would stop
// being convex.
func (t *VertexTool) Nudge(c *Context, delta types.Vec2) {
	type move struct {
		id  types.ID
		idx []int
	}
	var moves []move
	for _, id := range c.Doc.SelectedBrushes() {
		b, _ := c.Doc.Brush(id)
		idx := b.Data.Polygon.SelectedIndexes()
		if len(idx) == 0 {
			continue
		}
		if !c.Doc.CanMoveVertexes(id, idx, delta) {
			return
		}
		moves = append(moves, move{id, idx})
	}
	for _, m := range moves {
		c.Doc.MoveVertexes(m.id, m.idx, delta)
		c.Log.VertexesMove(m.id, []editlog.IndexedMove{{Indexes: m.idx, Delta: delta}})
	}
}

// Confirm snaps to the grid: the selected vertexes, or whole polygons of
// selected brushes with no vertex selected.
func (t *VertexTool) Confirm(c *Context) {
	for _, id := range c.Doc.SelectedBrushes() {
		b, _ := c.Doc.Brush(id)
		if idx := b.Data.Polygon.SelectedIndexes(); len(idx) > 0 {
			snapVertexes(c, id, b.Data.Polygon.Clone(), idx)
			continue
		}
		p := b.Data.Polygon.Clone()
		changed := false
		for i := range p.Vertexes {
			s := p.Vertexes[i].Pos.Snap(c.Grid)
			changed = changed || s != p.Vertexes[i].Pos
			p.Vertexes[i].Pos = s
		}
		if changed && p.Convex() {
			c.Log.PolygonEdit(id, c.Doc.SwapPolygon(id, p))
		}
	}
}

func snapVertexes(c *Context, id types.ID, p types.Polygon, idx []int) {
	var moves []editlog.IndexedMove
	for _, i := range idx {
		pos := p.Vertexes[i].Pos
		if d := pos.Snap(c.Grid).Sub(pos); !d.IsZero() {
			p.Vertexes[i].Pos = pos.Add(d)
			moves = append(moves, editlog.IndexedMove{Indexes: []int{i}, Delta: d})
		}
	}
	if len(moves) == 0 || !p.Convex() {
		return
	}
	for _, m := range moves {
		c.Doc.MoveVertexes(id, m.Indexes, m.Delta)
	}
	c.Log.VertexesSnap(id, moves)
}

// Delete removes the selected vertexes of every brush that remains valid.
func (t *VertexTool) Delete(c *Context) {
	for _, id := range c.Doc.SelectedBrushes() {
		b, _ := c.Doc.Brush(id)
		idx := b.Data.Polygon.SelectedIndexes()
		if !c.Doc.CanDeleteVertexes(id, idx) {
			continue
		}
		vxs := make([]editlog.IndexedVertex, len(idx))
		for k, i := range idx {
			vxs[k] = editlog.IndexedVertex{Index: i, Vertex: b.Data.Polygon.Vertexes[i]}
		}
		for k := len(idx) - 1; k >= 0; k-- {
			c.Doc.DeleteVertex(id, idx[k])
		}
		if t.sides {
			c.Log.SidesDeletion(id, vxs)
		} else {
			c.Log.VertexesDeletion(id, vxs)
		}
	}
}

// Cancel deselects every vertex.
func (t *VertexTool) Cancel(c *Context) { clearVertexSelection(c, true) }

// leave deselects the vertexes. Their selection records are purged along
// with the tool.
func (t *VertexTool) leave(c *Context) { clearVertexSelection(c, false) }

func clearVertexSelection(c *Context, record bool) {
	for _, id := range c.Doc.SelectedBrushes() {
		b, _ := c.Doc.Brush(id)
		idx := b.Data.Polygon.SelectedIndexes()
		for _, i := range idx {
			c.Doc.ToggleVertex(id, i)
		}
		if record {
			c.Log.VertexesSelection(id, idx)
		}
	}
}
