package types

// TextureField names a float parameter of TextureSettings.
type TextureField int

const (
	TextureOffsetX TextureField = iota
	TextureOffsetY
	TextureScaleX
	TextureScaleY
	TextureScrollX
	TextureScrollY
	TextureParallaxX
	TextureParallaxY
	TextureAngle
)

var textureFieldNames = [...]string{"offset_x", "offset_y", "scale_x", "scale_y", "scroll_x", "scroll_y", "parallax_x", "parallax_y", "angle"}

func (f TextureField) String() string {
	if int(f) < len(textureFieldNames) {
		return textureFieldNames[f]
	}
	return "unknown"
}

// ParseTextureField maps a field name back to its constant.
func ParseTextureField(s string) (TextureField, bool) {
	for i, n := range textureFieldNames {
		if n == s {
			return TextureField(i), true
		}
	}
	return 0, false
}

// TextureSettings describes how a texture is laid onto a brush.
type TextureSettings struct {
	Name      string    `toml:"name" json:"name"`
	OffsetX   float64   `toml:"offset_x" json:"offset_x"`
	OffsetY   float64   `toml:"offset_y" json:"offset_y"`
	ScaleX    float64   `toml:"scale_x" json:"scale_x"`
	ScaleY    float64   `toml:"scale_y" json:"scale_y"`
	ScrollX   float64   `toml:"scroll_x" json:"scroll_x"`
	ScrollY   float64   `toml:"scroll_y" json:"scroll_y"`
	ParallaxX float64   `toml:"parallax_x" json:"parallax_x"`
	ParallaxY float64   `toml:"parallax_y" json:"parallax_y"`
	Angle     float64   `toml:"angle" json:"angle"`
	Height    int8      `toml:"height" json:"height"`
	Sprite    bool      `toml:"sprite" json:"sprite"`
	Animation Animation `toml:"animation" json:"animation"`
}

// NewTextureSettings returns settings for name with unit scale.
func NewTextureSettings(name string) TextureSettings {
	return TextureSettings{Name: name, ScaleX: 1, ScaleY: 1}
}

// Reset restores every parameter except the texture name.
func (t *TextureSettings) Reset() {
	*t = NewTextureSettings(t.Name)
}

// Field returns a pointer to the named parameter.
func (t *TextureSettings) Field(f TextureField) *float64 {
	switch f {
	case TextureOffsetX:
		return &t.OffsetX
	case TextureOffsetY:
		return &t.OffsetY
	case TextureScaleX:
		return &t.ScaleX
	case TextureScaleY:
		return &t.ScaleY
	case TextureScrollX:
		return &t.ScrollX
	case TextureScrollY:
		return &t.ScrollY
	case TextureParallaxX:
		return &t.ParallaxX
	case TextureParallaxY:
		return &t.ParallaxY
	default:
		return &t.Angle
	}
}

// Clone returns a deep copy.
func (t TextureSettings) Clone() TextureSettings {
	t.Animation = t.Animation.Clone()
	return t
}

// AnimationKind selects the animation representation.
type AnimationKind int

const (
	AnimationNone AnimationKind = iota
	AnimationList
	AnimationAtlas
)

// Frame is one step of a list animation.
type Frame struct {
	Texture string  `toml:"texture" json:"texture"`
	Time    float64 `toml:"time" json:"time"`
}

// Timing is the frame timing of an atlas animation: either one time for
// every frame or one time per frame.
type Timing struct {
	Uniform     bool      `toml:"uniform" json:"uniform"`
	UniformTime float64   `toml:"uniform_time" json:"uniform_time"`
	FrameTimes  []float64 `toml:"frame_times,omitempty" json:"frame_times,omitempty"`
}

func (t Timing) Clone() Timing {
	t.FrameTimes = append([]float64(nil), t.FrameTimes...)
	return t
}

// Atlas cuts a texture into an X by Y grid and plays Len cells.
type Atlas struct {
	X      uint32 `toml:"x" json:"x"`
	Y      uint32 `toml:"y" json:"y"`
	Len    int    `toml:"len" json:"len"`
	Timing Timing `toml:"timing" json:"timing"`
}

// Animation is the animation attached to a texture or an entity.
type Animation struct {
	Kind   AnimationKind `toml:"kind" json:"kind"`
	Frames []Frame       `toml:"frames,omitempty" json:"frames,omitempty"`
	Atlas  Atlas         `toml:"atlas" json:"atlas"`
}

// Clone returns a deep copy.
func (a Animation) Clone() Animation {
	a.Frames = append([]Frame(nil), a.Frames...)
	a.Atlas.Timing = a.Atlas.Timing.Clone()
	return a
}

// MoveFrameUp swaps frame i with frame i-1. Out of range indexes are ignored.
// For atlas animations it reorders per-frame times.
func (a *Animation) MoveFrameUp(i int) {
	a.swapFrames(i, i-1)
}

// MoveFrameDown swaps frame i with frame i+1.
func (a *Animation) MoveFrameDown(i int) {
	a.swapFrames(i, i+1)
}

func (a *Animation) swapFrames(i, j int) {
	switch a.Kind {
	case AnimationList:
		if i < 0 || j < 0 || i >= len(a.Frames) || j >= len(a.Frames) {
			return
		}
		a.Frames[i], a.Frames[j] = a.Frames[j], a.Frames[i]
	case AnimationAtlas:
		ft := a.Atlas.Timing.FrameTimes
		if i < 0 || j < 0 || i >= len(ft) || j >= len(ft) {
			return
		}
		ft[i], ft[j] = ft[j], ft[i]
	}
}

// AnimationTarget addresses either an entity's own animation or the
// default animation of a texture.
type AnimationTarget struct {
	Entity  ID
	Texture string
}

// EntityAnimation targets the animation of the texture applied to id.
func EntityAnimation(id ID) AnimationTarget { return AnimationTarget{Entity: id} }

// DefaultAnimation targets the default animation of texture name.
func DefaultAnimation(name string) AnimationTarget { return AnimationTarget{Texture: name} }

// IsDefault reports whether the target is a texture default.
func (t AnimationTarget) IsDefault() bool { return t.Entity == 0 }
