package document

import (
	"sort"

	"github.com/bethropolis/hollow/internal/types"
)

// Edits are validated here before a tool applies them. The edit log never
// validates; it trusts that everything it recorded was legal.

// CanMoveVertexes reports whether moving the given vertexes keeps the brush
// convex.
func (d *Document) CanMoveVertexes(id types.ID, indexes []int, delta types.Vec2) bool {
	b, ok := d.brushes[id]
	if !ok || len(indexes) == 0 {
		return false
	}
	p := b.Data.Polygon.Clone()
	for _, i := range indexes {
		if i < 0 || i >= p.Len() {
			return false
		}
		p.Vertexes[i].Pos = p.Vertexes[i].Pos.Add(delta)
	}
	return p.Convex()
}

// CanDeleteVertexes reports whether removing the given vertexes leaves a
// valid polygon.
func (d *Document) CanDeleteVertexes(id types.ID, indexes []int) bool {
	b, ok := d.brushes[id]
	if !ok || len(indexes) == 0 {
		return false
	}
	drop := make(map[int]bool, len(indexes))
	for _, i := range indexes {
		drop[i] = true
	}
	var kept []types.Vec2
	for i, v := range b.Data.Polygon.Vertexes {
		if !drop[i] {
			kept = append(kept, v.Pos)
		}
	}
	return types.NewPolygon(kept...).Convex()
}

// CanInsertVertex reports whether inserting p at index keeps the brush convex.
func (d *Document) CanInsertVertex(id types.ID, index int, p types.Vec2) bool {
	b, ok := d.brushes[id]
	if !ok || index < 0 || index > b.Data.Polygon.Len() {
		return false
	}
	pts := b.Data.Polygon.Points()
	pts = append(pts[:index], append([]types.Vec2{p}, pts[index:]...)...)
	return types.NewPolygon(pts...).Convex()
}

// FreeDrawPolygon builds a convex polygon from the free-draw points, sorted
// counter-clockwise around their center. ok is false when the points do
// not form a convex shape.
func (d *Document) FreeDrawPolygon() (types.Polygon, bool) {
	if len(d.freeDraw) < 3 {
		return types.Polygon{}, false
	}
	p := types.NewPolygon(d.freeDraw...)
	c := p.Center()
	sort.SliceStable(p.Vertexes, func(i, j int) bool {
		a, b := p.Vertexes[i].Pos.Sub(c), p.Vertexes[j].Pos.Sub(c)
		return angle(a) < angle(b)
	})
	return p, p.Convex()
}
