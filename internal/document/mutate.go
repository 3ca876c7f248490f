package document

import (
	"github.com/bethropolis/hollow/internal/editlog"
	"github.com/bethropolis/hollow/internal/types"
)

var _ editlog.Document = (*Document)(nil)

func (d *Document) SelectEntity(id types.ID) {
	if !d.Exists(id) {
		missing("SelectEntity", id)
		return
	}
	d.selected[id] = struct{}{}
}

func (d *Document) DeselectEntity(id types.ID) {
	delete(d.selected, id)
}

func (d *Document) InsertSubtractee(id types.ID) {
	if !d.IsBrush(id) {
		missing("InsertSubtractee", id)
		return
	}
	d.subtractees[id] = struct{}{}
}

func (d *Document) RemoveSubtractee(id types.ID) {
	delete(d.subtractees, id)
}

func (d *Document) SpawnBrush(id types.ID, data types.BrushData, kind types.BrushKind) {
	d.brushes[id] = &Brush{ID: id, Data: data.Clone(), Drawn: kind == types.BrushDrawn}
	d.reserve(id)
	if kind == types.BrushSelected {
		d.selected[id] = struct{}{}
	}
}

func (d *Document) DespawnBrush(id types.ID, _ types.BrushKind) types.BrushData {
	b, ok := d.brushes[id]
	if !ok {
		missing("DespawnBrush", id)
		return types.BrushData{}
	}
	delete(d.brushes, id)
	delete(d.selected, id)
	delete(d.subtractees, id)
	return b.Data
}

func (d *Document) SwapPolygon(id types.ID, p types.Polygon) types.Polygon {
	b, ok := d.brushes[id]
	if !ok {
		missing("SwapPolygon", id)
		return p
	}
	prev := b.Data.Polygon
	b.Data.Polygon = p.Clone()
	return prev
}

// MoveBrush translates a brush. Unless moveTexture is set the texture
// offset compensates, so the texture stays put in map space.
func (d *Document) MoveBrush(id types.ID, delta types.Vec2, moveTexture bool) {
	b, ok := d.brushes[id]
	if !ok {
		missing("MoveBrush", id)
		return
	}
	b.Data.Polygon.Translate(delta)
	if t := b.Data.Texture; t != nil && !moveTexture {
		t.OffsetX -= delta.X
		t.OffsetY -= delta.Y
	}
}

func (d *Document) FlipBrush(id types.ID, flip types.Flip, flipTexture bool) {
	b, ok := d.brushes[id]
	if !ok {
		missing("FlipBrush", id)
		return
	}
	b.Data.Polygon.Flip(flip)
	if t := b.Data.Texture; t != nil && flipTexture {
		if flip.Horizontal() {
			t.ScaleY = -t.ScaleY
		} else {
			t.ScaleX = -t.ScaleX
		}
	}
}

func (d *Document) SetCollision(id types.ID, enabled bool) bool {
	b, ok := d.brushes[id]
	if !ok {
		missing("SetCollision", id)
		return enabled
	}
	prev := b.Data.Collision
	b.Data.Collision = enabled
	return prev
}

func (d *Document) InsertFreeDrawPoint(index int, p types.Vec2) {
	index = clamp(index, len(d.freeDraw))
	d.freeDraw = append(d.freeDraw, types.Vec2{})
	copy(d.freeDraw[index+1:], d.freeDraw[index:])
	d.freeDraw[index] = p
}

func (d *Document) DeleteFreeDrawPoint(index int) {
	if index < 0 || index >= len(d.freeDraw) {
		return
	}
	d.freeDraw = append(d.freeDraw[:index], d.freeDraw[index+1:]...)
}

// ClearFreeDraw drops the free-draw shape without recording anything.
func (d *Document) ClearFreeDraw() {
	d.freeDraw = nil
}

func clamp(i, n int) int {
	if i < 0 {
		return 0
	}
	if i > n {
		return n
	}
	return i
}

func (d *Document) InsertVertex(id types.ID, index int, v types.Vertex) {
	b, ok := d.brushes[id]
	if !ok {
		missing("InsertVertex", id)
		return
	}
	vxs := b.Data.Polygon.Vertexes
	index = clamp(index, len(vxs))
	vxs = append(vxs, types.Vertex{})
	copy(vxs[index+1:], vxs[index:])
	vxs[index] = v
	b.Data.Polygon.Vertexes = vxs
}

func (d *Document) DeleteVertex(id types.ID, index int) {
	b, ok := d.brushes[id]
	if !ok {
		missing("DeleteVertex", id)
		return
	}
	vxs := b.Data.Polygon.Vertexes
	if index < 0 || index >= len(vxs) {
		return
	}
	b.Data.Polygon.Vertexes = append(vxs[:index], vxs[index+1:]...)
}

func (d *Document) MoveVertexes(id types.ID, indexes []int, delta types.Vec2) {
	b, ok := d.brushes[id]
	if !ok {
		missing("MoveVertexes", id)
		return
	}
	for _, i := range indexes {
		if i >= 0 && i < len(b.Data.Polygon.Vertexes) {
			v := &b.Data.Polygon.Vertexes[i]
			v.Pos = v.Pos.Add(delta)
		}
	}
}

func (d *Document) ToggleVertex(id types.ID, index int) {
	b, ok := d.brushes[id]
	if !ok || index < 0 || index >= len(b.Data.Polygon.Vertexes) {
		missing("ToggleVertex", id)
		return
	}
	v := &b.Data.Polygon.Vertexes[index]
	v.Selected = !v.Selected
}

func (d *Document) Attach(owner, attached types.ID) {
	b, ok := d.brushes[owner]
	if !ok {
		missing("Attach", owner)
		return
	}
	for _, a := range b.Data.Anchors {
		if a == attached {
			return
		}
	}
	b.Data.Anchors = append(b.Data.Anchors, attached)
}

func (d *Document) Detach(owner, attached types.ID) {
	b, ok := d.brushes[owner]
	if !ok {
		missing("Detach", owner)
		return
	}
	for i, a := range b.Data.Anchors {
		if a == attached {
			b.Data.Anchors = append(b.Data.Anchors[:i], b.Data.Anchors[i+1:]...)
			return
		}
	}
}

func (d *Document) SpawnThing(id types.ID, data types.ThingInstance, drawn bool) {
	d.things[id] = &Thing{ID: id, Data: data.Clone(), Drawn: drawn}
	d.reserve(id)
}

func (d *Document) DespawnThing(id types.ID, _ bool) types.ThingInstance {
	t, ok := d.things[id]
	if !ok {
		missing("DespawnThing", id)
		return types.ThingInstance{}
	}
	delete(d.things, id)
	delete(d.selected, id)
	return t.Data
}

func (d *Document) MoveThing(id types.ID, delta types.Vec2) {
	t, ok := d.things[id]
	if !ok {
		missing("MoveThing", id)
		return
	}
	t.Data.Pos = t.Data.Pos.Add(delta)
}

func (d *Document) SetThingKind(id types.ID, kind types.ThingKind) types.ThingKind {
	t, ok := d.things[id]
	if !ok {
		missing("SetThingKind", id)
		return kind
	}
	t.Data.Kind, kind = kind, t.Data.Kind
	return kind
}

func (d *Document) SetThingHeight(id types.ID, height int8) int8 {
	t, ok := d.things[id]
	if !ok {
		missing("SetThingHeight", id)
		return height
	}
	t.Data.DrawHeight, height = height, t.Data.DrawHeight
	return height
}

func (d *Document) SetThingAngle(id types.ID, angle float64) float64 {
	t, ok := d.things[id]
	if !ok {
		missing("SetThingAngle", id)
		return angle
	}
	t.Data.Angle, angle = angle, t.Data.Angle
	return angle
}

func (d *Document) SetProperty(id types.ID, key string, value types.Value) types.Value {
	var props *types.Properties
	switch {
	case d.IsBrush(id):
		props = &d.brushes[id].Data.Properties
	case d.IsThing(id):
		props = &d.things[id].Data.Properties
	default:
		missing("SetProperty", id)
		return value
	}
	prev := (*props)[key]
	if value == nil {
		delete(*props, key)
		return prev
	}
	if *props == nil {
		*props = types.Properties{}
	}
	(*props)[key] = value
	return prev
}
