package editlog

import "github.com/bethropolis/hollow/internal/types"

// textureRecord swaps the texture name. A nil name means the entity had no
// texture on the other side of the swap.
type textureRecord struct {
	name *string
}

func (r *textureRecord) Kind() Kind { return KindTexture }

func (r *textureRecord) apply(doc Document, ids []types.ID) {
	if r.name == nil {
		if prev := doc.SwapTextureSettings(ids[0], nil); prev != nil {
			n := prev.Name
			r.name = &n
		}
		return
	}
	if prev, had := doc.SetTexture(ids[0], *r.name); had {
		*r.name = prev
	} else {
		r.name = nil
	}
}

// settingsRecord swaps the complete texture settings, for removals and resets.
type settingsRecord struct {
	kind     Kind
	settings *types.TextureSettings
}

func (r *settingsRecord) Kind() Kind { return r.kind }

func (r *settingsRecord) apply(doc Document, ids []types.ID) {
	r.settings = doc.SwapTextureSettings(ids[0], r.settings)
}

type spriteRecord struct {
	enabled          bool
	offsetX, offsetY float64
}

func (r *spriteRecord) Kind() Kind { return KindSprite }

func (r *spriteRecord) apply(doc Document, ids []types.ID) {
	r.enabled, r.offsetX, r.offsetY = doc.SwapSprite(ids[0], r.enabled, r.offsetX, r.offsetY)
}

// textureFlipRecord mirrors the texture scale of one or more entities.
// scaleX and scaleY select the axes.
type textureFlipRecord struct {
	kind           Kind
	scaleX, scaleY bool
}

func (r *textureFlipRecord) Kind() Kind { return r.kind }

func (r *textureFlipRecord) apply(doc Document, ids []types.ID) {
	for _, id := range ids {
		if r.scaleX {
			doc.FlipTexture(id, false)
		}
		if r.scaleY {
			doc.FlipTexture(id, true)
		}
	}
}

var deltaFields = map[Kind][2]types.TextureField{
	KindTextureMove:       {types.TextureOffsetX, types.TextureOffsetY},
	KindTextureScaleDelta: {types.TextureScaleX, types.TextureScaleY},
}

// textureDeltaRecord shifts texture parameters of many entities. The angle
// delta only uses X.
type textureDeltaRecord struct {
	kind  Kind
	delta types.Vec2
}

func (r *textureDeltaRecord) Kind() Kind { return r.kind }

func (r *textureDeltaRecord) apply(doc Document, ids []types.ID) {
	d := r.delta.Neg()
	for _, id := range ids {
		if r.kind == KindTextureAngleDelta {
			doc.ShiftTextureField(id, types.TextureAngle, d.X)
			continue
		}
		f := deltaFields[r.kind]
		doc.ShiftTextureField(id, f[0], d.X)
		doc.ShiftTextureField(id, f[1], d.Y)
	}
	r.delta = d
}

var fieldKinds = map[types.TextureField]Kind{
	types.TextureOffsetX:   KindTextureOffsetX,
	types.TextureOffsetY:   KindTextureOffsetY,
	types.TextureScaleX:    KindTextureScaleX,
	types.TextureScaleY:    KindTextureScaleY,
	types.TextureScrollX:   KindTextureScrollX,
	types.TextureScrollY:   KindTextureScrollY,
	types.TextureParallaxX: KindTextureParallaxX,
	types.TextureParallaxY: KindTextureParallaxY,
	types.TextureAngle:     KindTextureAngle,
}

type textureFieldRecord struct {
	field types.TextureField
	value float64
}

func (r *textureFieldRecord) Kind() Kind { return fieldKinds[r.field] }

func (r *textureFieldRecord) apply(doc Document, ids []types.ID) {
	r.value = doc.SetTextureField(ids[0], r.field, r.value)
}

type textureHeightRecord struct {
	height int8
}

func (r *textureHeightRecord) Kind() Kind { return KindTextureHeight }

func (r *textureHeightRecord) apply(doc Document, ids []types.ID) {
	r.height = doc.SetTextureHeight(ids[0], r.height)
}
