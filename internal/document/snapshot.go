package document

import (
	"math"

	"github.com/bethropolis/hollow/internal/types"
)

func angle(v types.Vec2) float64 { return math.Atan2(v.Y, v.X) }

// State is a comparable copy of everything in a document. Empty slices and
// maps are normalized to nil.
type State struct {
	Brushes     map[types.ID]Brush
	Things      map[types.ID]Thing
	Selected    []types.ID
	Subtractees []types.ID
	FreeDraw    []types.Vec2
	Defaults    map[string]types.Animation
}

// Snapshot copies the document state.
func (d *Document) Snapshot() State {
	s := State{
		Brushes:     make(map[types.ID]Brush, len(d.brushes)),
		Things:      make(map[types.ID]Thing, len(d.things)),
		Selected:    d.Selected(),
		Subtractees: d.Subtractees(),
		FreeDraw:    d.FreeDrawPoints(),
		Defaults:    make(map[string]types.Animation, len(d.defaultAnims)),
	}
	for id, b := range d.brushes {
		c, _ := d.Brush(id)
		normalizeBrush(&c.Data)
		s.Brushes[id] = Brush{ID: b.ID, Data: c.Data, Drawn: b.Drawn}
	}
	for id := range d.things {
		c, _ := d.Thing(id)
		normalizeThing(&c.Data)
		s.Things[id] = c
	}
	for name, a := range d.defaultAnims {
		a = a.Clone()
		normalizeAnimation(&a)
		s.Defaults[name] = a
	}
	if len(s.Selected) == 0 {
		s.Selected = nil
	}
	if len(s.Subtractees) == 0 {
		s.Subtractees = nil
	}
	if len(s.FreeDraw) == 0 {
		s.FreeDraw = nil
	}
	return s
}

func normalizeBrush(b *types.BrushData) {
	if len(b.Polygon.Vertexes) == 0 {
		b.Polygon.Vertexes = nil
	}
	if len(b.Anchors) == 0 {
		b.Anchors = nil
	}
	if len(b.Properties) == 0 {
		b.Properties = nil
	}
	if b.Path != nil {
		normalizePath(b.Path)
	}
	if b.Texture != nil {
		normalizeAnimation(&b.Texture.Animation)
	}
}

func normalizeThing(t *types.ThingInstance) {
	if len(t.Properties) == 0 {
		t.Properties = nil
	}
	if t.Path != nil {
		normalizePath(t.Path)
	}
}

func normalizePath(p *types.Path) {
	if len(p.Nodes) == 0 {
		p.Nodes = nil
	}
}

func normalizeAnimation(a *types.Animation) {
	if len(a.Frames) == 0 {
		a.Frames = nil
	}
	if len(a.Atlas.Timing.FrameTimes) == 0 {
		a.Atlas.Timing.FrameTimes = nil
	}
}
