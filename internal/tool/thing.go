package tool

import (
	"github.com/bethropolis/hollow/internal/editlog"
	"github.com/bethropolis/hollow/internal/types"
)

// ThingTool places things of the chosen kind.
type ThingTool struct {
	base
	kind types.ThingKind
}

func (*ThingTool) Kind() Kind { return Thing }

func (*ThingTool) Target(*Context) editlog.Target {
	return editlog.Target{Mode: editlog.TargetThing}
}

// ThingKind returns the kind placed by Click.
func (t *ThingTool) ThingKind() types.ThingKind { return t.kind }

// Use picks the kind placed by Click.
func (t *ThingTool) Use(k types.ThingKind) { t.kind = k }

// Click places a thing at the cursor.
func (t *ThingTool) Click(c *Context, at types.Vec2) {
	id := c.Doc.NewID()
	c.Doc.SpawnThing(id, types.ThingInstance{Kind: t.kind, Pos: at}, true)
	c.Log.ThingDraw(id)
}

// Toggle removes the thing under the cursor.
func (t *ThingTool) Toggle(c *Context, at types.Vec2) {
	id := c.Doc.EntityAt(at, c.pickRadius())
	if id == 0 || !c.Doc.IsThing(id) {
		return
	}
	despawnThing(c, id)
}

// Delete removes the most recently placed thing the tool still owns.
func (t *ThingTool) Delete(c *Context) {
	var last types.ID
	for _, id := range c.Doc.DrawnEntities() {
		if c.Doc.IsThing(id) && id > last {
			last = id
		}
	}
	if last != 0 {
		despawnThing(c, last)
	}
}

func despawnThing(c *Context, id types.ID) {
	th, _ := c.Doc.Thing(id)
	if th.Drawn {
		c.Log.DrawnThingDespawn(id, c.Doc.DespawnThing(id, true))
		return
	}
	if c.Doc.IsSelected(id) {
		c.Doc.DeselectEntity(id)
		c.Log.EntityDeselection(id)
	}
	c.Log.ThingDespawn(id, c.Doc.DespawnThing(id, false))
}

// SetThingKind changes the kind of the selected things.
func SetThingKind(c *Context, kind types.ThingKind) int {
	n := 0
	for _, id := range c.Doc.SelectedThings() {
		if prev := c.Doc.SetThingKind(id, kind); prev != kind {
			c.Log.ThingChange(id, prev)
			n++
		}
	}
	return n
}

// SetThingHeight changes the draw height of the selected things.
func SetThingHeight(c *Context, height int8) int {
	n := 0
	for _, id := range c.Doc.SelectedThings() {
		if prev := c.Doc.SetThingHeight(id, height); prev != height {
			c.Log.ThingHeight(id, prev)
			n++
		}
	}
	return n
}

// SetThingAngle changes the angle of the selected things, in degrees.
func SetThingAngle(c *Context, angle float64) int {
	n := 0
	for _, id := range c.Doc.SelectedThings() {
		if prev := c.Doc.SetThingAngle(id, angle); prev != angle {
			c.Log.ThingAngle(id, prev)
			n++
		}
	}
	return n
}
