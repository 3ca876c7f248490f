package types

// Vertex is a polygon corner together with its editor selection state.
type Vertex struct {
	Pos      Vec2 `toml:"pos" json:"pos"`
	Selected bool `toml:"selected,omitempty" json:"selected,omitempty"`
}

// Polygon is the outline of a brush, stored counter-clockwise.
type Polygon struct {
	Vertexes []Vertex `toml:"vertexes" json:"vertexes"`
}

// NewPolygon builds an unselected polygon from plain points.
func NewPolygon(points ...Vec2) Polygon {
	vxs := make([]Vertex, len(points))
	for i, p := range points {
		vxs[i] = Vertex{Pos: p}
	}
	return Polygon{Vertexes: vxs}
}

// Clone returns a deep copy.
func (p Polygon) Clone() Polygon {
	return Polygon{Vertexes: append([]Vertex(nil), p.Vertexes...)}
}

func (p Polygon) Len() int { return len(p.Vertexes) }

// Points returns the vertex positions.
func (p Polygon) Points() []Vec2 {
	out := make([]Vec2, len(p.Vertexes))
	for i, v := range p.Vertexes {
		out[i] = v.Pos
	}
	return out
}

// Center is the average of the vertexes.
func (p Polygon) Center() Vec2 {
	var c Vec2
	if len(p.Vertexes) == 0 {
		return c
	}
	for _, v := range p.Vertexes {
		c = c.Add(v.Pos)
	}
	return c.Scale(1 / float64(len(p.Vertexes)))
}

// Translate moves every vertex by delta.
func (p *Polygon) Translate(delta Vec2) {
	for i := range p.Vertexes {
		p.Vertexes[i].Pos = p.Vertexes[i].Pos.Add(delta)
	}
}

// SelectedIndexes lists the selected vertexes in ascending order.
func (p Polygon) SelectedIndexes() []int {
	var idx []int
	for i, v := range p.Vertexes {
		if v.Selected {
			idx = append(idx, i)
		}
	}
	return idx
}

// DeselectAll clears every vertex selection flag.
func (p *Polygon) DeselectAll() {
	for i := range p.Vertexes {
		p.Vertexes[i].Selected = false
	}
}

// Flip mirrors the polygon and reverses the vertex order so the winding
// stays counter-clockwise. Applying the same flip twice restores the shape.
func (p *Polygon) Flip(f Flip) {
	n := len(p.Vertexes)
	for i := range p.Vertexes {
		p.Vertexes[i].Pos = f.Mirror(p.Vertexes[i].Pos)
	}
	for i := 0; i < n/2; i++ {
		p.Vertexes[i], p.Vertexes[n-1-i] = p.Vertexes[n-1-i], p.Vertexes[i]
	}
}

// Convex reports whether the polygon has at least three vertexes and is
// strictly convex with counter-clockwise winding.
func (p Polygon) Convex() bool {
	n := len(p.Vertexes)
	if n < 3 {
		return false
	}
	for i := 0; i < n; i++ {
		a := p.Vertexes[i].Pos
		b := p.Vertexes[(i+1)%n].Pos
		c := p.Vertexes[(i+2)%n].Pos
		if b.Sub(a).Cross(c.Sub(b)) <= 0 {
			return false
		}
	}
	return true
}

// Contains reports whether pt lies inside or on the boundary of a convex
// counter-clockwise polygon.
func (p Polygon) Contains(pt Vec2) bool {
	n := len(p.Vertexes)
	if n < 3 {
		return false
	}
	for i := 0; i < n; i++ {
		a := p.Vertexes[i].Pos
		b := p.Vertexes[(i+1)%n].Pos
		if b.Sub(a).Cross(pt.Sub(a)) < 0 {
			return false
		}
	}
	return true
}

// Nearest returns the index of the vertex closest to pt, or -1.
func (p Polygon) Nearest(pt Vec2) int {
	best, bestDist := -1, 0.0
	for i, v := range p.Vertexes {
		if d := v.Pos.Dist(pt); best < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// Bounds returns the bottom-left and top-right corners.
func (p Polygon) Bounds() (min, max Vec2) {
	for i, v := range p.Vertexes {
		if i == 0 {
			min, max = v.Pos, v.Pos
			continue
		}
		if v.Pos.X < min.X {
			min.X = v.Pos.X
		}
		if v.Pos.Y < min.Y {
			min.Y = v.Pos.Y
		}
		if v.Pos.X > max.X {
			max.X = v.Pos.X
		}
		if v.Pos.Y > max.Y {
			max.Y = v.Pos.Y
		}
	}
	return min, max
}
