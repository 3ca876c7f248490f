package document

import "github.com/bethropolis/hollow/internal/types"

// pathSlot returns where the path of a brush or thing is stored.
func (d *Document) pathSlot(id types.ID) **types.Path {
	if b, ok := d.brushes[id]; ok {
		return &b.Data.Path
	}
	if t, ok := d.things[id]; ok {
		return &t.Data.Path
	}
	return nil
}

// livePath returns the path of id, or nil when the entity has none.
func (d *Document) livePath(op string, id types.ID) *types.Path {
	slot := d.pathSlot(id)
	if slot == nil || *slot == nil {
		missing(op, id)
		return nil
	}
	return *slot
}

// Path returns a copy of the path of id.
func (d *Document) Path(id types.ID) (types.Path, bool) {
	slot := d.pathSlot(id)
	if slot == nil || *slot == nil {
		return types.Path{}, false
	}
	return (*slot).Clone(), true
}

func (d *Document) SetPath(id types.ID, p types.Path) {
	slot := d.pathSlot(id)
	if slot == nil {
		missing("SetPath", id)
		return
	}
	c := p.Clone()
	*slot = &c
}

func (d *Document) RemovePath(id types.ID) types.Path {
	slot := d.pathSlot(id)
	if slot == nil || *slot == nil {
		missing("RemovePath", id)
		return types.Path{}
	}
	p := **slot
	*slot = nil
	return p
}

func (d *Document) InsertPathNode(id types.ID, index int, n types.Node) {
	p := d.livePath("InsertPathNode", id)
	if p == nil {
		return
	}
	index = clamp(index, len(p.Nodes))
	p.Nodes = append(p.Nodes, types.Node{})
	copy(p.Nodes[index+1:], p.Nodes[index:])
	p.Nodes[index] = n
}

func (d *Document) DeletePathNode(id types.ID, index int) {
	p := d.livePath("DeletePathNode", id)
	if p == nil || index < 0 || index >= len(p.Nodes) {
		return
	}
	p.Nodes = append(p.Nodes[:index], p.Nodes[index+1:]...)
}

func (d *Document) MovePathNodes(id types.ID, indexes []int, delta types.Vec2) {
	p := d.livePath("MovePathNodes", id)
	if p == nil {
		return
	}
	for _, i := range indexes {
		if i >= 0 && i < len(p.Nodes) {
			p.Nodes[i].Pos = p.Nodes[i].Pos.Add(delta)
		}
	}
}

func (d *Document) TogglePathNode(id types.ID, index int) {
	p := d.livePath("TogglePathNode", id)
	if p == nil || index < 0 || index >= len(p.Nodes) {
		return
	}
	p.Nodes[index].Selected = !p.Nodes[index].Selected
}

func (d *Document) SetPathNodeMovement(id types.ID, index int, field types.MovementField, value float64) float64 {
	p := d.livePath("SetPathNodeMovement", id)
	if p == nil || index < 0 || index >= len(p.Nodes) {
		return value
	}
	f := p.Nodes[index].Movement.Field(field)
	*f, value = value, *f
	return value
}
