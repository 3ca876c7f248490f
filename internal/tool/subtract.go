package tool

import (
	"github.com/bethropolis/hollow/internal/editlog"
	"github.com/bethropolis/hollow/internal/types"
)

// SubtractTool picks the brushes that will be carved out of the selected
// one.
type SubtractTool struct {
	base
}

func (*SubtractTool) Kind() Kind { return Subtract }

func (*SubtractTool) Target(*Context) editlog.Target {
	return editlog.Target{Mode: editlog.TargetSubtractees}
}

// Click toggles the brush under the cursor as a subtractee. Selected
// brushes cannot be subtractees.
func (t *SubtractTool) Click(c *Context, at types.Vec2) {
	id, ok := brushAt(c, at)
	if !ok || c.Doc.IsSelected(id) {
		return
	}
	if c.Doc.IsSubtractee(id) {
		c.Doc.RemoveSubtractee(id)
		c.Log.SubtracteeDeselection(id)
		return
	}
	c.Doc.InsertSubtractee(id)
	c.Log.SubtracteeSelection(id)
}

func (t *SubtractTool) Toggle(c *Context, at types.Vec2) { t.Click(c, at) }

// Cancel clears the subtractees.
func (t *SubtractTool) Cancel(c *Context) {
	c.Log.SubtracteeDeselection(clearSubtractees(c)...)
}

func (t *SubtractTool) leave(c *Context) { clearSubtractees(c) }

func clearSubtractees(c *Context) []types.ID {
	ids := c.Doc.Subtractees()
	for _, id := range ids {
		c.Doc.RemoveSubtractee(id)
	}
	return ids
}
