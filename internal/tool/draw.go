package tool

import (
	"github.com/bethropolis/hollow/internal/editlog"
	"github.com/bethropolis/hollow/internal/types"
)

// DrawTool draws brushes. Two clicks place the corners of a rectangle;
// toggled points build a free-draw shape that Confirm turns into a brush.
// Drawn brushes stay owned by the tool until another tool is picked.
type DrawTool struct {
	base
	corner *types.Vec2
}

func (*DrawTool) Kind() Kind { return Draw }

func (*DrawTool) Target(c *Context) editlog.Target {
	if len(c.Doc.FreeDrawPoints()) == 0 {
		return editlog.Target{Mode: editlog.TargetDraw}
	}
	t := editlog.Target{Mode: editlog.TargetBrushFreeDraw}
	if _, ok := c.Doc.FreeDrawPolygon(); ok {
		t.FreeDraw = editlog.FreeDrawPolygon
	}
	return t
}

// Corner returns the pending rectangle corner, if any.
func (t *DrawTool) Corner() (types.Vec2, bool) {
	if t.corner == nil {
		return types.Vec2{}, false
	}
	return *t.corner, true
}

func (t *DrawTool) Click(c *Context, at types.Vec2) {
	if t.corner == nil {
		t.corner = &at
		return
	}
	a := *t.corner
	t.corner = nil
	if a.X == at.X || a.Y == at.Y {
		return
	}
	lo := types.V(min(a.X, at.X), min(a.Y, at.Y))
	hi := types.V(max(a.X, at.X), max(a.Y, at.Y))
	spawnDrawn(c, types.NewPolygon(lo, types.V(hi.X, lo.Y), hi, types.V(lo.X, hi.Y)))
}

// Toggle appends a free-draw point.
func (t *DrawTool) Toggle(c *Context, at types.Vec2) {
	pts := c.Doc.FreeDrawPoints()
	for _, p := range pts {
		if p == at {
			return
		}
	}
	c.Doc.InsertFreeDrawPoint(len(pts), at)
	c.Log.FreeDrawPointInsertion(at, len(pts))
}

// Confirm turns a convex free-draw shape into a brush.
func (t *DrawTool) Confirm(c *Context) {
	p, ok := c.Doc.FreeDrawPolygon()
	if !ok {
		return
	}
	spawnDrawn(c, p)
	c.Doc.ClearFreeDraw()
}

// Delete removes the last free-draw point, or else the newest drawn brush.
func (t *DrawTool) Delete(c *Context) {
	if pts := c.Doc.FreeDrawPoints(); len(pts) > 0 {
		i := len(pts) - 1
		c.Doc.DeleteFreeDrawPoint(i)
		c.Log.FreeDrawPointDeletion(pts[i], i)
		return
	}
	var last types.ID
	for _, id := range c.Doc.DrawnEntities() {
		if c.Doc.IsBrush(id) {
			last = id
		}
	}
	if last != 0 {
		c.Log.DrawnBrushDespawn(last, c.Doc.DespawnBrush(last, types.BrushDrawn))
	}
}

func (t *DrawTool) Cancel(*Context) { t.corner = nil }

func (t *DrawTool) leave(*Context) { t.corner = nil }

func spawnDrawn(c *Context, p types.Polygon) {
	id := c.Doc.NewID()
	c.Doc.SpawnBrush(id, types.BrushData{Polygon: p, Collision: true}, types.BrushDrawn)
	c.Log.BrushDraw(id)
}
