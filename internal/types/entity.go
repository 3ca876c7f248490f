package types

// Value is a user property value: bool, int64, float64 or string.
type Value = any

// Properties maps property keys to values.
type Properties map[string]Value

func (p Properties) Clone() Properties {
	if p == nil {
		return nil
	}
	out := make(Properties, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// BrushKind tells the document how a brush enters or leaves the map.
type BrushKind int

const (
	// BrushUnselected spawns the brush without selecting it.
	BrushUnselected BrushKind = iota
	// BrushSelected spawns the brush selected.
	BrushSelected
	// BrushDrawn is a brush that is still owned by the drawing tool.
	BrushDrawn
)

// BrushData is everything needed to respawn a brush.
type BrushData struct {
	Polygon    Polygon          `toml:"polygon" json:"polygon"`
	Texture    *TextureSettings `toml:"texture,omitempty" json:"texture,omitempty"`
	Path       *Path            `toml:"path,omitempty" json:"path,omitempty"`
	Anchors    []ID             `toml:"anchors,omitempty" json:"anchors,omitempty"`
	Collision  bool             `toml:"collision" json:"collision"`
	Properties Properties       `toml:"properties,omitempty" json:"properties,omitempty"`
}

// Clone returns a deep copy.
func (b BrushData) Clone() BrushData {
	b.Polygon = b.Polygon.Clone()
	if b.Texture != nil {
		t := b.Texture.Clone()
		b.Texture = &t
	}
	if b.Path != nil {
		p := b.Path.Clone()
		b.Path = &p
	}
	b.Anchors = append([]ID(nil), b.Anchors...)
	b.Properties = b.Properties.Clone()
	return b
}

// ThingKind indexes the things catalog.
type ThingKind uint32

// ThingInstance is a placed thing.
type ThingInstance struct {
	Kind       ThingKind  `toml:"kind" json:"kind"`
	Pos        Vec2       `toml:"pos" json:"pos"`
	Angle      float64    `toml:"angle" json:"angle"`
	DrawHeight int8       `toml:"draw_height" json:"draw_height"`
	Path       *Path      `toml:"path,omitempty" json:"path,omitempty"`
	Properties Properties `toml:"properties,omitempty" json:"properties,omitempty"`
}

// Clone returns a deep copy.
func (t ThingInstance) Clone() ThingInstance {
	if t.Path != nil {
		p := t.Path.Clone()
		t.Path = &p
	}
	t.Properties = t.Properties.Clone()
	return t
}
