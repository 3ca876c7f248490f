package tool

import (
	"github.com/bethropolis/hollow/internal/editlog"
	"github.com/bethropolis/hollow/internal/types"
)

// PathTool draws and edits the path of the only selected entity. Clicks
// on empty space collect points; Confirm turns two or more of them into a
// new path.
type PathTool struct {
	base
	pending []types.Vec2
}

func (*PathTool) Kind() Kind { return Path }

func (t *PathTool) Target(*Context) editlog.Target {
	if len(t.pending) > 0 {
		return editlog.Target{Mode: editlog.TargetPathFreeDraw}
	}
	return editlog.Target{Mode: editlog.TargetPath}
}

// Pending returns the points of the path being drawn.
func (t *PathTool) Pending() []types.Vec2 { return t.pending }

// pathOwner returns the only selected entity.
func pathOwner(c *Context) (types.ID, bool) {
	sel := c.Doc.Selected()
	if len(sel) != 1 {
		return 0, false
	}
	return sel[0], true
}

// entityCenter is the origin of path node positions.
func entityCenter(c *Context, id types.ID) types.Vec2 {
	if b, ok := c.Doc.Brush(id); ok {
		return b.Data.Polygon.Center()
	}
	t, _ := c.Doc.Thing(id)
	return t.Data.Pos
}

func nearestNode(c *Context, id types.ID, p types.Path, at types.Vec2) (int, bool) {
	rel := at.Sub(entityCenter(c, id))
	best, dist := -1, c.pickRadius()
	for i, n := range p.Nodes {
		if d := n.Pos.Dist(rel); d <= dist {
			best, dist = i, d
		}
	}
	return best, best >= 0
}

// Click toggles the node under the cursor. Away from nodes, or when the
// entity has no path yet, it adds a point to the path being drawn.
func (t *PathTool) Click(c *Context, at types.Vec2) {
	id, ok := pathOwner(c)
	if !ok {
		return
	}
	p, has := c.Doc.Path(id)
	if has && len(t.pending) == 0 {
		if i, ok := nearestNode(c, id, p, at); ok {
			c.Doc.TogglePathNode(id, i)
			c.Log.PathNodesSelection(id, []int{i})
		}
		return
	}
	if !has {
		t.pending = append(t.pending, at)
	}
}

// Toggle inserts a node after the nearest one.
func (t *PathTool) Toggle(c *Context, at types.Vec2) {
	id, ok := pathOwner(c)
	if !ok {
		return
	}
	p, has := c.Doc.Path(id)
	if !has {
		return
	}
	rel := at.Sub(entityCenter(c, id))
	i := len(p.Nodes)
	best := -1.0
	for k, n := range p.Nodes {
		if d := n.Pos.Dist(rel); best < 0 || d < best {
			i, best = k+1, d
		}
	}
	n := types.Node{Pos: rel, Movement: types.DefaultMovement()}
	c.Doc.InsertPathNode(id, i, n)
	c.Log.PathNodeInsertion(id, i, n)
}

// Nudge moves the selected nodes.
func (t *PathTool) Nudge(c *Context, delta types.Vec2) {
	id, ok := pathOwner(c)
	if !ok || delta.IsZero() {
		return
	}
	p, has := c.Doc.Path(id)
	if !has {
		return
	}
	idx := p.SelectedIndexes()
	if len(idx) == 0 {
		return
	}
	c.Doc.MovePathNodes(id, idx, delta)
	c.Log.PathNodesMove(id, []editlog.IndexedMove{{Indexes: idx, Delta: delta}})
}

// Confirm finishes the path being drawn, or snaps the selected nodes to
// the grid.
func (t *PathTool) Confirm(c *Context) {
	id, ok := pathOwner(c)
	if !ok {
		t.pending = nil
		return
	}
	if len(t.pending) > 0 {
		t.createPath(c, id)
		return
	}
	p, has := c.Doc.Path(id)
	if !has {
		return
	}
	center := entityCenter(c, id)
	var moves []editlog.IndexedMove
	for _, i := range p.SelectedIndexes() {
		abs := p.Nodes[i].Pos.Add(center)
		if d := abs.Snap(c.Grid).Sub(abs); !d.IsZero() {
			c.Doc.MovePathNodes(id, []int{i}, d)
			moves = append(moves, editlog.IndexedMove{Indexes: []int{i}, Delta: d})
		}
	}
	if len(moves) > 0 {
		c.Log.PathNodesSnap(id, moves)
	}
}

func (t *PathTool) createPath(c *Context, id types.ID) {
	points := t.pending
	t.pending = nil
	if len(points) < 2 {
		return
	}
	if _, has := c.Doc.Path(id); has {
		return
	}
	center := entityCenter(c, id)
	p := types.Path{Nodes: make([]types.Node, len(points))}
	for i, pt := range points {
		p.Nodes[i] = types.Node{Pos: pt.Sub(center), Movement: types.DefaultMovement()}
	}
	c.Doc.SetPath(id, p)
	c.Log.PathCreation(id)
}

// Delete removes the selected nodes. A path left with fewer than two nodes
// is removed entirely.
func (t *PathTool) Delete(c *Context) {
	if len(t.pending) > 0 {
		t.pending = t.pending[:len(t.pending)-1]
		return
	}
	id, ok := pathOwner(c)
	if !ok {
		return
	}
	p, has := c.Doc.Path(id)
	if !has {
		return
	}
	idx := p.SelectedIndexes()
	if len(idx) == 0 {
		return
	}
	if len(p.Nodes)-len(idx) < 2 {
		c.Log.PathDeletion(id, c.Doc.RemovePath(id))
		return
	}
	nodes := make([]editlog.IndexedNode, len(idx))
	for k, i := range idx {
		nodes[k] = editlog.IndexedNode{Index: i, Node: p.Nodes[i]}
	}
	for k := len(idx) - 1; k >= 0; k-- {
		c.Doc.DeletePathNode(id, idx[k])
	}
	c.Log.PathNodesDeletion(id, nodes)
}

// Cancel drops the path being drawn, or deselects the nodes.
func (t *PathTool) Cancel(c *Context) {
	if len(t.pending) > 0 {
		t.pending = nil
		return
	}
	clearNodeSelection(c, true)
}

func (t *PathTool) leave(c *Context) {
	t.pending = nil
	clearNodeSelection(c, false)
}

func clearNodeSelection(c *Context, record bool) {
	id, ok := pathOwner(c)
	if !ok {
		return
	}
	p, has := c.Doc.Path(id)
	if !has {
		return
	}
	idx := p.SelectedIndexes()
	for _, i := range idx {
		c.Doc.TogglePathNode(id, i)
	}
	if record {
		c.Log.PathNodesSelection(id, idx)
	}
}

// SetMovement sets a movement parameter on the selected nodes.
func SetMovement(c *Context, field types.MovementField, value float64) int {
	id, ok := pathOwner(c)
	if !ok {
		return 0
	}
	p, has := c.Doc.Path(id)
	if !has {
		return 0
	}
	var prev []editlog.NodeValue
	for _, i := range p.SelectedIndexes() {
		if *p.Nodes[i].Movement.Field(field) == value {
			continue
		}
		prev = append(prev, editlog.NodeValue{Index: i, Value: c.Doc.SetPathNodeMovement(id, i, field, value)})
	}
	c.Log.PathNodesMovement(id, field, prev)
	return len(prev)
}
