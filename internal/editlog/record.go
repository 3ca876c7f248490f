package editlog

import "github.com/bethropolis/hollow/internal/types"

// Record is one reversible mutation.
//
// apply has no direction. Every application swaps the payload with the live
// state (or negates a delta, or flips an internal phase), so a record that
// was just undone holds exactly what is needed to redo it, and the other way
// round. Records are created after the mutation was applied live, so the
// first application is always an undo.
type Record interface {
	Kind() Kind
	apply(doc Document, ids []types.ID)
}

// promoter is implemented by tool-scoped records that must survive a tool
// purge in a permanent form.
type promoter interface {
	promote()
}

// selectRecord covers entity and subtractee (de)selection.
type selectRecord struct {
	kind   Kind
	undone bool
}

func (r *selectRecord) Kind() Kind { return r.kind }

func (r *selectRecord) apply(doc Document, ids []types.ID) {
	add := r.undone
	if r.kind == KindEntityDeselection || r.kind == KindSubtracteeDeselection {
		add = !add
	}
	subtractee := r.kind == KindSubtracteeSelection || r.kind == KindSubtracteeDeselection
	for _, id := range ids {
		switch {
		case subtractee && add:
			doc.InsertSubtractee(id)
		case subtractee:
			doc.RemoveSubtractee(id)
		case add:
			doc.SelectEntity(id)
		default:
			doc.DeselectEntity(id)
		}
	}
	r.undone = !r.undone
}

// toggleRecord flips the selection of vertexes or path nodes. Toggling is
// its own inverse.
type toggleRecord struct {
	kind    Kind
	indexes []int
}

func (r *toggleRecord) Kind() Kind { return r.kind }

func (r *toggleRecord) apply(doc Document, ids []types.ID) {
	for _, i := range r.indexes {
		if r.kind == KindPathNodesSelection {
			doc.TogglePathNode(ids[0], i)
		} else {
			doc.ToggleVertex(ids[0], i)
		}
	}
}

// brushRecord spawns or despawns a brush. A nil data means the brush is
// live and the next application despawns it.
type brushRecord struct {
	kind     Kind
	data     *types.BrushData
	selected bool
}

func (r *brushRecord) Kind() Kind { return r.kind }

func (r *brushRecord) brushKind() types.BrushKind {
	switch {
	case r.kind == KindBrushDraw || r.kind == KindDrawnBrushDespawn:
		return types.BrushDrawn
	case r.selected:
		return types.BrushSelected
	}
	return types.BrushUnselected
}

func (r *brushRecord) apply(doc Document, ids []types.ID) {
	if r.data == nil {
		d := doc.DespawnBrush(ids[0], r.brushKind())
		r.data = &d
		return
	}
	doc.SpawnBrush(ids[0], *r.data, r.brushKind())
	r.data = nil
}

func (r *brushRecord) promote() {
	switch r.kind {
	case KindBrushDraw:
		r.kind = KindBrushSpawn
	case KindDrawnBrushDespawn:
		r.kind = KindBrushDespawn
	default:
		return
	}
	r.selected = true
}

// thingRecord is brushRecord for things.
type thingRecord struct {
	kind Kind
	data *types.ThingInstance
}

func (r *thingRecord) Kind() Kind { return r.kind }

func (r *thingRecord) apply(doc Document, ids []types.ID) {
	drawn := r.kind == KindThingDraw || r.kind == KindDrawnThingDespawn
	if r.data == nil {
		d := doc.DespawnThing(ids[0], drawn)
		r.data = &d
		return
	}
	doc.SpawnThing(ids[0], *r.data, drawn)
	r.data = nil
}

func (r *thingRecord) promote() {
	switch r.kind {
	case KindThingDraw:
		r.kind = KindThingSpawn
	case KindDrawnThingDespawn:
		r.kind = KindThingDespawn
	}
}

type polygonRecord struct {
	polygon types.Polygon
}

func (r *polygonRecord) Kind() Kind { return KindPolygonEdit }

func (r *polygonRecord) apply(doc Document, ids []types.ID) {
	r.polygon = doc.SwapPolygon(ids[0], r.polygon)
}

// The vertex selection stored in the polygon belongs to the vertex tool.
func (r *polygonRecord) promote() {
	r.polygon.DeselectAll()
}

// moveRecord translates brushes or things by a delta that is negated after
// every application.
type moveRecord struct {
	kind        Kind
	delta       types.Vec2
	moveTexture bool
}

func (r *moveRecord) Kind() Kind { return r.kind }

func (r *moveRecord) apply(doc Document, ids []types.ID) {
	d := r.delta.Neg()
	for _, id := range ids {
		if r.kind == KindThingMove {
			doc.MoveThing(id, d)
		} else {
			doc.MoveBrush(id, d, r.moveTexture)
		}
	}
	r.delta = d
}

type flipRecord struct {
	flip        types.Flip
	flipTexture bool
}

func (r *flipRecord) Kind() Kind { return KindFlip }

func (r *flipRecord) apply(doc Document, ids []types.ID) {
	f := r.flip.Inverse()
	for _, id := range ids {
		doc.FlipBrush(id, f, r.flipTexture)
	}
	r.flip = f
}

type collisionRecord struct {
	enabled bool
}

func (r *collisionRecord) Kind() Kind { return KindCollision }

func (r *collisionRecord) apply(doc Document, ids []types.ID) {
	r.enabled = doc.SetCollision(ids[0], r.enabled)
}

type freeDrawRecord struct {
	kind   Kind
	point  types.Vec2
	index  int
	undone bool
}

func (r *freeDrawRecord) Kind() Kind { return r.kind }

func (r *freeDrawRecord) apply(doc Document, _ []types.ID) {
	insert := r.undone
	if r.kind == KindFreeDrawPointDeletion {
		insert = !insert
	}
	if insert {
		doc.InsertFreeDrawPoint(r.index, r.point)
	} else {
		doc.DeleteFreeDrawPoint(r.index)
	}
	r.undone = !r.undone
}

type anchorRecord struct {
	kind     Kind
	attached types.ID
	undone   bool
}

func (r *anchorRecord) Kind() Kind { return r.kind }

func (r *anchorRecord) apply(doc Document, ids []types.ID) {
	attach := r.undone
	if r.kind == KindDisanchor {
		attach = !attach
	}
	if attach {
		doc.Attach(ids[0], r.attached)
	} else {
		doc.Detach(ids[0], r.attached)
	}
	r.undone = !r.undone
}

// thingValueRecord swaps a single thing attribute.
type thingValueRecord struct {
	kind   Kind
	thing  types.ThingKind
	height int8
	angle  float64
}

func (r *thingValueRecord) Kind() Kind { return r.kind }

func (r *thingValueRecord) apply(doc Document, ids []types.ID) {
	switch r.kind {
	case KindThingChange:
		r.thing = doc.SetThingKind(ids[0], r.thing)
	case KindThingHeight:
		r.height = doc.SetThingHeight(ids[0], r.height)
	default:
		r.angle = doc.SetThingAngle(ids[0], r.angle)
	}
}

type propertyRecord struct {
	key   string
	value types.Value
}

func (r *propertyRecord) Kind() Kind { return KindProperty }

func (r *propertyRecord) apply(doc Document, ids []types.ID) {
	r.value = doc.SetProperty(ids[0], r.key, r.value)
}
