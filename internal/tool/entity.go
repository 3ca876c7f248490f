package tool

import (
	"github.com/bethropolis/hollow/internal/editlog"
	"github.com/bethropolis/hollow/internal/types"
)

// EntityTool selects and moves whole brushes and things.
type EntityTool struct {
	base
	dragging bool
}

func (*EntityTool) Kind() Kind { return Entity }

func (*EntityTool) Target(*Context) editlog.Target {
	return editlog.Target{Mode: editlog.TargetOther}
}

// Click selects the entity under the cursor alone. Clicking empty space
// clears the selection.
func (t *EntityTool) Click(c *Context, at types.Vec2) {
	id := c.Doc.EntityAt(at, c.pickRadius())
	var drop []types.ID
	for _, s := range c.Doc.Selected() {
		if s != id {
			c.Doc.DeselectEntity(s)
			drop = append(drop, s)
		}
	}
	c.Log.EntityDeselection(drop...)
	if id != 0 && !c.Doc.IsSelected(id) {
		c.Doc.SelectEntity(id)
		c.Log.EntitySelection(id)
	}
}

// Toggle adds the entity under the cursor to the selection or removes it.
func (t *EntityTool) Toggle(c *Context, at types.Vec2) {
	id := c.Doc.EntityAt(at, c.pickRadius())
	switch {
	case id == 0:
	case c.Doc.IsSelected(id):
		c.Doc.DeselectEntity(id)
		c.Log.EntityDeselection(id)
	default:
		c.Doc.SelectEntity(id)
		c.Log.EntitySelection(id)
	}
}

func (t *EntityTool) Nudge(c *Context, delta types.Vec2) { MoveSelected(c, delta) }

func (t *EntityTool) Delete(c *Context) { DespawnSelected(c) }

func (t *EntityTool) Cancel(c *Context) {
	if t.dragging {
		t.EndDrag(c)
		return
	}
	deselectAll(c)
}

func (t *EntityTool) leave(c *Context) {
	if t.dragging {
		t.EndDrag(c)
	}
}

// Dragging reports whether a drag is in progress.
func (t *EntityTool) Dragging() bool { return t.dragging }

// BeginDrag starts moving the selection across frames. The whole drag
// becomes a single history entry. It returns false when nothing is selected.
func (t *EntityTool) BeginDrag(c *Context) bool {
	if t.dragging || len(c.Doc.Selected()) == 0 {
		return false
	}
	c.Log.StartMultiframeEdit()
	t.dragging = true
	return true
}

// DragBy moves the selection during a drag.
func (t *EntityTool) DragBy(c *Context, delta types.Vec2) {
	if t.dragging {
		MoveSelected(c, delta)
	}
}

// EndDrag closes the drag.
func (t *EntityTool) EndDrag(c *Context) {
	if !t.dragging {
		return
	}
	t.dragging = false
	if c.Log.CurrentEditLen() > 0 {
		c.Log.OverrideEditTag("Entities Drag")
	}
	c.Log.EndMultiframeEdit()
}

// MoveSelected moves every selected entity by delta. Textures follow their
// brushes.
func MoveSelected(c *Context, delta types.Vec2) bool {
	brushes, things := c.Doc.SelectedBrushes(), c.Doc.SelectedThings()
	if delta.IsZero() || len(brushes)+len(things) == 0 {
		return false
	}
	for _, id := range brushes {
		c.Doc.MoveBrush(id, delta, true)
	}
	c.Log.BrushMove(brushes, delta, true)
	for _, id := range things {
		c.Doc.MoveThing(id, delta)
	}
	c.Log.ThingMove(things, delta)

	switch {
	case len(brushes) > 0 && len(things) > 0:
		c.Log.OverrideEditTag("Entities Move")
	case len(brushes) > 1:
		c.Log.OverrideEditTag("Brushes Move")
	case len(things) > 1:
		c.Log.OverrideEditTag("Things Move")
	}
	return true
}

// DespawnSelected removes every selected entity and returns how many were
// removed.
func DespawnSelected(c *Context) int {
	brushes, things := c.Doc.SelectedBrushes(), c.Doc.SelectedThings()
	for _, id := range things {
		c.Doc.DeselectEntity(id)
	}
	c.Log.EntityDeselection(things...)
	for _, id := range things {
		c.Log.ThingDespawn(id, c.Doc.DespawnThing(id, false))
	}
	for _, id := range brushes {
		c.Log.BrushDespawn(id, c.Doc.DespawnBrush(id, types.BrushSelected), true)
	}
	if n := len(brushes) + len(things); n > 1 {
		c.Log.OverrideEditTag("Entities Despawn")
	}
	return len(brushes) + len(things)
}

// FlipSelected mirrors the selected brushes so they end up on side dir of
// their bounding box.
func FlipSelected(c *Context, dir types.FlipDir) bool {
	ids := c.Doc.SelectedBrushes()
	lo, hi, ok := entityBounds(c.Doc, ids)
	if !ok {
		return false
	}
	f := types.Flip{Dir: dir}
	switch dir {
	case types.FlipAbove:
		f.Axis = hi.Y
	case types.FlipBelow:
		f.Axis = lo.Y
	case types.FlipLeft:
		f.Axis = lo.X
	default:
		f.Axis = hi.X
	}
	for _, id := range ids {
		c.Doc.FlipBrush(id, f, true)
	}
	c.Log.Flip(ids, f, true)
	return true
}

// ToggleCollision flips the collision flag of the selected brushes.
func ToggleCollision(c *Context) int {
	ids := c.Doc.SelectedBrushes()
	for _, id := range ids {
		b, _ := c.Doc.Brush(id)
		c.Log.Collision(id, c.Doc.SetCollision(id, !b.Data.Collision))
	}
	return len(ids)
}

// Anchor attaches the selected entities to the brush under the cursor.
func Anchor(c *Context, at types.Vec2) int {
	owner, ok := brushAt(c, at)
	if !ok {
		return 0
	}
	b, _ := c.Doc.Brush(owner)
	anchored := make(map[types.ID]bool, len(b.Data.Anchors))
	for _, a := range b.Data.Anchors {
		anchored[a] = true
	}
	n := 0
	for _, id := range c.Doc.Selected() {
		if id == owner || anchored[id] {
			continue
		}
		c.Doc.Attach(owner, id)
		c.Log.Anchor(owner, id)
		n++
	}
	return n
}

// Disanchor detaches the selected entities from the brush under the cursor.
func Disanchor(c *Context, at types.Vec2) int {
	owner, ok := brushAt(c, at)
	if !ok {
		return 0
	}
	b, _ := c.Doc.Brush(owner)
	n := 0
	for _, a := range b.Data.Anchors {
		if c.Doc.IsSelected(a) {
			c.Doc.Detach(owner, a)
			c.Log.Disanchor(owner, a)
			n++
		}
	}
	return n
}

func brushAt(c *Context, at types.Vec2) (types.ID, bool) {
	id := c.Doc.EntityAt(at, 0)
	return id, id != 0 && c.Doc.IsBrush(id)
}

// SetProperty sets key on every selected entity. A nil value removes it.
func SetProperty(c *Context, key string, value types.Value) int {
	ids := c.Doc.Selected()
	changes := make([]editlog.PropertyChange, 0, len(ids))
	for _, id := range ids {
		changes = append(changes, editlog.PropertyChange{ID: id, Prev: c.Doc.SetProperty(id, key, value)})
	}
	c.Log.PushProperty(key, changes)
	return len(ids)
}
