// Package document holds the live state of an open map: brushes, things,
// selection, the free-draw shape and texture defaults. It implements
// editlog.Document so the edit log can replay mutations against it.
package document

import (
	"sort"

	"github.com/bethropolis/hollow/internal/logger"
	"github.com/bethropolis/hollow/internal/types"
)

// Brush is a live brush.
type Brush struct {
	ID    types.ID
	Data  types.BrushData
	Drawn bool // still owned by the drawing tool
}

// Thing is a live thing.
type Thing struct {
	ID    types.ID
	Data  types.ThingInstance
	Drawn bool
}

// Document is an in-memory map.
type Document struct {
	brushes      map[types.ID]*Brush
	things       map[types.ID]*Thing
	selected     map[types.ID]struct{}
	subtractees  map[types.ID]struct{}
	freeDraw     []types.Vec2
	defaultAnims map[string]types.Animation
	nextID       types.ID
}

// New returns an empty document.
func New() *Document {
	return &Document{
		brushes:      make(map[types.ID]*Brush),
		things:       make(map[types.ID]*Thing),
		selected:     make(map[types.ID]struct{}),
		subtractees:  make(map[types.ID]struct{}),
		defaultAnims: make(map[string]types.Animation),
		nextID:       1,
	}
}

// NewID reserves a fresh entity identifier.
func (d *Document) NewID() types.ID {
	id := d.nextID
	d.nextID++
	return id
}

// NextID returns the identifier NewID would hand out next.
func (d *Document) NextID() types.ID { return d.nextID }

func (d *Document) reserve(id types.ID) {
	if id >= d.nextID {
		d.nextID = id + 1
	}
}

func sortedIDs[V any](m map[types.ID]V) []types.ID {
	ids := make([]types.ID, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// BrushIDs lists the live brushes in ascending order.
func (d *Document) BrushIDs() []types.ID { return sortedIDs(d.brushes) }

// ThingIDs lists the live things in ascending order.
func (d *Document) ThingIDs() []types.ID { return sortedIDs(d.things) }

// Brush returns a copy of a brush.
func (d *Document) Brush(id types.ID) (Brush, bool) {
	b, ok := d.brushes[id]
	if !ok {
		return Brush{}, false
	}
	return Brush{ID: b.ID, Data: b.Data.Clone(), Drawn: b.Drawn}, true
}

// Thing returns a copy of a thing.
func (d *Document) Thing(id types.ID) (Thing, bool) {
	t, ok := d.things[id]
	if !ok {
		return Thing{}, false
	}
	return Thing{ID: t.ID, Data: t.Data.Clone(), Drawn: t.Drawn}, true
}

// IsBrush reports whether id is a live brush.
func (d *Document) IsBrush(id types.ID) bool {
	_, ok := d.brushes[id]
	return ok
}

// IsThing reports whether id is a live thing.
func (d *Document) IsThing(id types.ID) bool {
	_, ok := d.things[id]
	return ok
}

// Exists reports whether id is a live entity.
func (d *Document) Exists(id types.ID) bool { return d.IsBrush(id) || d.IsThing(id) }

// Selected lists the selected entities in ascending order.
func (d *Document) Selected() []types.ID { return sortedIDs(d.selected) }

// SelectedBrushes lists the selected brushes in ascending order.
func (d *Document) SelectedBrushes() []types.ID {
	var out []types.ID
	for _, id := range d.Selected() {
		if d.IsBrush(id) {
			out = append(out, id)
		}
	}
	return out
}

// SelectedThings lists the selected things in ascending order.
func (d *Document) SelectedThings() []types.ID {
	var out []types.ID
	for _, id := range d.Selected() {
		if d.IsThing(id) {
			out = append(out, id)
		}
	}
	return out
}

// IsSelected reports whether id is selected.
func (d *Document) IsSelected(id types.ID) bool {
	_, ok := d.selected[id]
	return ok
}

// Subtractees lists the brushes marked as subtractees.
func (d *Document) Subtractees() []types.ID { return sortedIDs(d.subtractees) }

// IsSubtractee reports whether id is marked as a subtractee.
func (d *Document) IsSubtractee(id types.ID) bool {
	_, ok := d.subtractees[id]
	return ok
}

// FreeDrawPoints returns the points of the shape being free drawn.
func (d *Document) FreeDrawPoints() []types.Vec2 {
	return append([]types.Vec2(nil), d.freeDraw...)
}

// DefaultAnimation returns the default animation of a texture.
func (d *Document) DefaultAnimation(texture string) types.Animation {
	return d.defaultAnims[texture].Clone()
}

// DefaultAnimations lists the textures that have a default animation.
func (d *Document) DefaultAnimations() []string {
	names := make([]string, 0, len(d.defaultAnims))
	for n := range d.defaultAnims {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// EntityAt returns the entity under p, preferring things, then the brush
// with the highest identifier. It returns 0 when there is none.
func (d *Document) EntityAt(p types.Vec2, thingRadius float64) types.ID {
	for _, id := range d.ThingIDs() {
		if d.things[id].Data.Pos.Dist(p) <= thingRadius {
			return id
		}
	}
	ids := d.BrushIDs()
	for i := len(ids) - 1; i >= 0; i-- {
		if d.brushes[ids[i]].Data.Polygon.Contains(p) {
			return ids[i]
		}
	}
	return 0
}

// DrawnEntities lists the brushes and things still owned by a drawing tool.
func (d *Document) DrawnEntities() []types.ID {
	var out []types.ID
	for _, id := range d.BrushIDs() {
		if d.brushes[id].Drawn {
			out = append(out, id)
		}
	}
	for _, id := range d.ThingIDs() {
		if d.things[id].Drawn {
			out = append(out, id)
		}
	}
	return out
}

// FinalizeDrawn hands drawn entities over to the map: they stop being owned
// by the drawing tool and become selected.
func (d *Document) FinalizeDrawn() {
	for _, id := range d.DrawnEntities() {
		if b, ok := d.brushes[id]; ok {
			b.Drawn = false
		}
		if t, ok := d.things[id]; ok {
			t.Drawn = false
		}
		d.selected[id] = struct{}{}
	}
}

// missing logs a lookup of an entity that does not exist. The edit log
// never does this; tools might.
func missing(op string, id types.ID) {
	logger.WarnTagf("document", "%s: no entity %d", op, id)
}
