package document

import "github.com/bethropolis/hollow/internal/types"

// texture returns the live texture settings of a brush, or nil.
func (d *Document) texture(op string, id types.ID) *types.TextureSettings {
	b, ok := d.brushes[id]
	if !ok || b.Data.Texture == nil {
		missing(op, id)
		return nil
	}
	return b.Data.Texture
}

// Texture returns a copy of the texture settings of a brush.
func (d *Document) Texture(id types.ID) (types.TextureSettings, bool) {
	b, ok := d.brushes[id]
	if !ok || b.Data.Texture == nil {
		return types.TextureSettings{}, false
	}
	return b.Data.Texture.Clone(), true
}

func (d *Document) SetTexture(id types.ID, name string) (string, bool) {
	b, ok := d.brushes[id]
	if !ok {
		missing("SetTexture", id)
		return "", false
	}
	if b.Data.Texture == nil {
		s := types.NewTextureSettings(name)
		b.Data.Texture = &s
		return "", false
	}
	prev := b.Data.Texture.Name
	b.Data.Texture.Name = name
	return prev, true
}

func (d *Document) SwapTextureSettings(id types.ID, s *types.TextureSettings) *types.TextureSettings {
	b, ok := d.brushes[id]
	if !ok {
		missing("SwapTextureSettings", id)
		return s
	}
	prev := b.Data.Texture
	if s == nil {
		b.Data.Texture = nil
	} else {
		c := s.Clone()
		b.Data.Texture = &c
	}
	return prev
}

func (d *Document) SetTextureField(id types.ID, field types.TextureField, value float64) float64 {
	t := d.texture("SetTextureField", id)
	if t == nil {
		return value
	}
	f := t.Field(field)
	*f, value = value, *f
	return value
}

func (d *Document) ShiftTextureField(id types.ID, field types.TextureField, delta float64) {
	if t := d.texture("ShiftTextureField", id); t != nil {
		*t.Field(field) += delta
	}
}

func (d *Document) SetTextureHeight(id types.ID, height int8) int8 {
	t := d.texture("SetTextureHeight", id)
	if t == nil {
		return height
	}
	t.Height, height = height, t.Height
	return height
}

func (d *Document) SwapSprite(id types.ID, enabled bool, offsetX, offsetY float64) (bool, float64, float64) {
	t := d.texture("SwapSprite", id)
	if t == nil {
		return enabled, offsetX, offsetY
	}
	prevEnabled, prevX, prevY := t.Sprite, t.OffsetX, t.OffsetY
	t.Sprite, t.OffsetX, t.OffsetY = enabled, offsetX, offsetY
	return prevEnabled, prevX, prevY
}

func (d *Document) FlipTexture(id types.ID, vertical bool) {
	t := d.texture("FlipTexture", id)
	if t == nil {
		return
	}
	if vertical {
		t.ScaleY = -t.ScaleY
	} else {
		t.ScaleX = -t.ScaleX
	}
}

// animation resolves the storage of an animation target.
func (d *Document) animation(target types.AnimationTarget) (*types.Animation, func()) {
	if target.IsDefault() {
		a := d.defaultAnims[target.Texture]
		return &a, func() {
			if a.Kind == types.AnimationNone {
				delete(d.defaultAnims, target.Texture)
			} else {
				d.defaultAnims[target.Texture] = a
			}
		}
	}
	t := d.texture("animation", target.Entity)
	if t == nil {
		return nil, nil
	}
	return &t.Animation, func() {}
}

func (d *Document) SwapAnimation(target types.AnimationTarget, a types.Animation) types.Animation {
	live, store := d.animation(target)
	if live == nil {
		return a
	}
	prev := *live
	*live = a.Clone()
	store()
	return prev
}

func (d *Document) EditAnimation(target types.AnimationTarget, edit func(a *types.Animation)) {
	live, store := d.animation(target)
	if live == nil {
		return
	}
	edit(live)
	store()
}
