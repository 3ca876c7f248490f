// internal/types/position.go
package types

import "math"

// ID identifies a live entity (brush or thing) in a map document.
// Zero is never handed out and means "no entity".
type ID uint64

// Vec2 is a point or a displacement in map space.
type Vec2 struct {
	X float64 `toml:"x" json:"x"`
	Y float64 `toml:"y" json:"y"`
}

// V is shorthand for Vec2{x, y}.
func V(x, y float64) Vec2 { return Vec2{X: x, Y: y} }

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Neg() Vec2 { return Vec2{-v.X, -v.Y} }
func (v Vec2) Scale(f float64) Vec2 { return Vec2{v.X * f, v.Y * f} }
func (v Vec2) Cross(o Vec2) float64 { return v.X*o.Y - v.Y*o.X }
func (v Vec2) IsZero() bool { return v.X == 0 && v.Y == 0 }
func (v Vec2) Dist(o Vec2) float64 { return math.Hypot(v.X-o.X, v.Y-o.Y) }

// Snap rounds both coordinates to the nearest multiple of step.
func (v Vec2) Snap(step float64) Vec2 {
	if step <= 0 {
		return v
	}
	return Vec2{math.Round(v.X/step) * step, math.Round(v.Y/step) * step}
}

// FlipDir says on which side of the mirror axis a flipped shape ends up.
type FlipDir int

const (
	FlipAbove FlipDir = iota
	FlipBelow
	FlipLeft
	FlipRight
)

// Flip mirrors geometry across a horizontal (Above/Below) or vertical
// (Left/Right) axis located at Axis.
type Flip struct {
	Dir  FlipDir
	Axis float64
}

// Horizontal reports whether the mirror axis is a horizontal line.
func (f Flip) Horizontal() bool { return f.Dir == FlipAbove || f.Dir == FlipBelow }

// Inverse returns the flip that puts the shape back where it was.
func (f Flip) Inverse() Flip {
	switch f.Dir {
	case FlipAbove:
		f.Dir = FlipBelow
	case FlipBelow:
		f.Dir = FlipAbove
	case FlipLeft:
		f.Dir = FlipRight
	default:
		f.Dir = FlipLeft
	}
	return f
}

// Mirror reflects p across the axis.
func (f Flip) Mirror(p Vec2) Vec2 {
	if f.Horizontal() {
		p.Y = 2*f.Axis - p.Y
	} else {
		p.X = 2*f.Axis - p.X
	}
	return p
}
