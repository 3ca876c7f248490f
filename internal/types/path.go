package types

// MovementField names one of the per-node movement parameters.
type MovementField int

const (
	MovementStandby MovementField = iota
	MovementAccel
	MovementDecel
	MovementMaxSpeed
	MovementMinSpeed
)

func (f MovementField) String() string {
	switch f {
	case MovementStandby:
		return "standby"
	case MovementAccel:
		return "accel"
	case MovementDecel:
		return "decel"
	case MovementMaxSpeed:
		return "max_speed"
	case MovementMinSpeed:
		return "min_speed"
	}
	return "unknown"
}

// ParseMovementField maps a parameter name back to its constant.
func ParseMovementField(s string) (MovementField, bool) {
	for f := MovementStandby; f <= MovementMinSpeed; f++ {
		if f.String() == s {
			return f, true
		}
	}
	return 0, false
}

// Movement holds how an entity travels towards a path node.
type Movement struct {
	Standby  float64 `toml:"standby" json:"standby"`
	Accel    float64 `toml:"accel" json:"accel"`
	Decel    float64 `toml:"decel" json:"decel"`
	MaxSpeed float64 `toml:"max_speed" json:"max_speed"`
	MinSpeed float64 `toml:"min_speed" json:"min_speed"`
}

// DefaultMovement is assigned to freshly inserted nodes.
func DefaultMovement() Movement {
	return Movement{MaxSpeed: 100, MinSpeed: 0}
}

// Field returns a pointer to the named parameter.
func (m *Movement) Field(f MovementField) *float64 {
	switch f {
	case MovementStandby:
		return &m.Standby
	case MovementAccel:
		return &m.Accel
	case MovementDecel:
		return &m.Decel
	case MovementMaxSpeed:
		return &m.MaxSpeed
	default:
		return &m.MinSpeed
	}
}

// Node is a path waypoint, relative to the owning entity's center.
type Node struct {
	Pos      Vec2     `toml:"pos" json:"pos"`
	Selected bool     `toml:"selected,omitempty" json:"selected,omitempty"`
	Movement Movement `toml:"movement" json:"movement"`
}

// Path is the route a moving entity follows.
type Path struct {
	Nodes []Node `toml:"nodes" json:"nodes"`
}

func (p Path) Clone() Path {
	return Path{Nodes: append([]Node(nil), p.Nodes...)}
}

func (p Path) Len() int { return len(p.Nodes) }

// SelectedIndexes lists the selected nodes in ascending order.
func (p Path) SelectedIndexes() []int {
	var idx []int
	for i, n := range p.Nodes {
		if n.Selected {
			idx = append(idx, i)
		}
	}
	return idx
}
