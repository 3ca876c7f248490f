package tool

import (
	"github.com/bethropolis/hollow/internal/editlog"
	"github.com/bethropolis/hollow/internal/types"
)

// PaintTool applies a texture to brushes.
type PaintTool struct {
	base
	texture string
}

func (*PaintTool) Kind() Kind { return Paint }

func (*PaintTool) Target(*Context) editlog.Target {
	return editlog.Target{Mode: editlog.TargetOther}
}

// Texture is the texture applied by Click.
func (t *PaintTool) Texture() string { return t.texture }

// Use picks the texture applied by Click.
func (t *PaintTool) Use(name string) { t.texture = name }

// Click paints the brush under the cursor.
func (t *PaintTool) Click(c *Context, at types.Vec2) {
	if t.texture == "" {
		return
	}
	if id, ok := brushAt(c, at); ok {
		applyTexture(c, id, t.texture)
	}
}

// Toggle picks up the texture of the brush under the cursor.
func (t *PaintTool) Toggle(c *Context, at types.Vec2) {
	if id, ok := brushAt(c, at); ok {
		if s, has := c.Doc.Texture(id); has {
			t.texture = s.Name
		}
	}
}

func applyTexture(c *Context, id types.ID, name string) bool {
	if s, has := c.Doc.Texture(id); has && s.Name == name {
		return false
	}
	if prev, had := c.Doc.SetTexture(id, name); had {
		c.Log.Texture(id, &prev)
	} else {
		c.Log.Texture(id, nil)
	}
	return true
}

// textured lists the selected brushes that carry a texture.
func textured(c *Context) []types.ID {
	var ids []types.ID
	for _, id := range c.Doc.SelectedBrushes() {
		if _, ok := c.Doc.Texture(id); ok {
			ids = append(ids, id)
		}
	}
	return ids
}

// SetTexture assigns name to the selected brushes.
func SetTexture(c *Context, name string) int {
	n := 0
	for _, id := range c.Doc.SelectedBrushes() {
		if applyTexture(c, id, name) {
			n++
		}
	}
	return n
}

// RemoveTexture strips the texture off the selected brushes.
func RemoveTexture(c *Context) int {
	ids := textured(c)
	for _, id := range ids {
		c.Log.TextureRemoval(id, *c.Doc.SwapTextureSettings(id, nil))
	}
	return len(ids)
}

// ResetTexture restores the default parameters of the selected textures.
func ResetTexture(c *Context) int {
	ids := textured(c)
	for _, id := range ids {
		s, _ := c.Doc.Texture(id)
		s.Reset()
		c.Log.TextureReset(id, *c.Doc.SwapTextureSettings(id, &s))
	}
	return len(ids)
}

// SetTextureField sets a parameter of the selected textures.
func SetTextureField(c *Context, field types.TextureField, value float64) int {
	n := 0
	for _, id := range textured(c) {
		if prev := c.Doc.SetTextureField(id, field, value); prev != value {
			c.Log.TextureField(id, field, prev)
			n++
		}
	}
	return n
}

// MoveTexture offsets the selected textures.
func MoveTexture(c *Context, delta types.Vec2) int {
	ids := textured(c)
	if delta.IsZero() {
		return 0
	}
	for _, id := range ids {
		c.Doc.ShiftTextureField(id, types.TextureOffsetX, delta.X)
		c.Doc.ShiftTextureField(id, types.TextureOffsetY, delta.Y)
	}
	c.Log.TextureMove(ids, delta)
	return len(ids)
}

// ScaleTexture grows the scale of the selected textures by delta.
func ScaleTexture(c *Context, delta types.Vec2) int {
	ids := textured(c)
	if delta.IsZero() {
		return 0
	}
	for _, id := range ids {
		c.Doc.ShiftTextureField(id, types.TextureScaleX, delta.X)
		c.Doc.ShiftTextureField(id, types.TextureScaleY, delta.Y)
	}
	c.Log.TextureScaleDelta(ids, delta)
	return len(ids)
}

// RotateTexture turns the selected textures by delta degrees.
func RotateTexture(c *Context, delta float64) int {
	ids := textured(c)
	if delta == 0 {
		return 0
	}
	for _, id := range ids {
		c.Doc.ShiftTextureField(id, types.TextureAngle, delta)
	}
	c.Log.TextureAngleDelta(ids, delta)
	return len(ids)
}

// FlipTexture mirrors the selected textures along one axis.
func FlipTexture(c *Context, vertical bool) int {
	ids := textured(c)
	for _, id := range ids {
		c.Doc.FlipTexture(id, vertical)
	}
	c.Log.TextureFlip(ids, vertical)
	return len(ids)
}

// MirrorTexture makes the scale signs of the selected textures match x and
// y: negative when set, positive otherwise.
func MirrorTexture(c *Context, x, y bool) int {
	n := 0
	for _, id := range textured(c) {
		s, _ := c.Doc.Texture(id)
		fx, fy := (s.ScaleX < 0) != x, (s.ScaleY < 0) != y
		if fx {
			c.Doc.FlipTexture(id, false)
		}
		if fy {
			c.Doc.FlipTexture(id, true)
		}
		if fx || fy {
			c.Log.TextureScaleFlip(id, fx, fy)
			n++
		}
	}
	return n
}

// SetTextureHeight sets the draw height of the selected textures.
func SetTextureHeight(c *Context, height int8) int {
	n := 0
	for _, id := range textured(c) {
		if prev := c.Doc.SetTextureHeight(id, height); prev != height {
			c.Log.TextureHeight(id, prev)
			n++
		}
	}
	return n
}

// SetSprite turns sprite rendering of the selected textures on or off. The
// offsets are reset along with it.
func SetSprite(c *Context, enabled bool) int {
	n := 0
	for _, id := range textured(c) {
		s, _ := c.Doc.Texture(id)
		if s.Sprite == enabled {
			continue
		}
		e, x, y := c.Doc.SwapSprite(id, enabled, 0, 0)
		c.Log.Sprite(id, e, x, y)
		n++
	}
	return n
}
