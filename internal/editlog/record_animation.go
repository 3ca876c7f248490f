package editlog

import "github.com/bethropolis/hollow/internal/types"

// animationTargets resolves where an animation record applies: the default
// animation of a texture when the record carries a texture name, the
// entities' own animations otherwise.
func animationTargets(texture string, ids []types.ID) []types.AnimationTarget {
	if texture != "" {
		return []types.AnimationTarget{types.DefaultAnimation(texture)}
	}
	out := make([]types.AnimationTarget, len(ids))
	for i, id := range ids {
		out[i] = types.EntityAnimation(id)
	}
	return out
}

type animationRecord struct {
	kind      Kind
	texture   string
	animation types.Animation
}

func (r *animationRecord) Kind() Kind { return r.kind }

func (r *animationRecord) apply(doc Document, ids []types.ID) {
	for _, t := range animationTargets(r.texture, ids) {
		r.animation = doc.SwapAnimation(t, r.animation)
	}
}

// frameMoveRecord swaps two adjacent frames. Swapping is its own inverse.
type frameMoveRecord struct {
	kind    Kind
	texture string
	index   int
}

func (r *frameMoveRecord) Kind() Kind { return r.kind }

func (r *frameMoveRecord) apply(doc Document, ids []types.ID) {
	up := r.kind == KindAnimationMoveUp || r.kind == KindDefaultAnimationMoveUp
	for _, t := range animationTargets(r.texture, ids) {
		doc.EditAnimation(t, func(a *types.Animation) {
			if up {
				a.MoveFrameUp(r.index)
			} else {
				a.MoveFrameDown(r.index)
			}
		})
	}
}

// frameRecord covers frames appended to or removed from a list animation.
type frameRecord struct {
	kind    Kind
	texture string
	index   int
	frame   types.Frame
	undone  bool
}

func (r *frameRecord) Kind() Kind { return r.kind }

func (r *frameRecord) apply(doc Document, ids []types.ID) {
	insert := r.undone
	if r.kind == KindListAnimationFrameRemoval || r.kind == KindDefaultListAnimationFrameRemoval {
		insert = !insert
	}
	for _, t := range animationTargets(r.texture, ids) {
		doc.EditAnimation(t, func(a *types.Animation) {
			if insert {
				if r.index > len(a.Frames) {
					r.index = len(a.Frames)
				}
				a.Frames = append(a.Frames, types.Frame{})
				copy(a.Frames[r.index+1:], a.Frames[r.index:])
				a.Frames[r.index] = r.frame
				return
			}
			if r.index < len(a.Frames) {
				a.Frames = append(a.Frames[:r.index], a.Frames[r.index+1:]...)
			}
		})
	}
	r.undone = !r.undone
}

// frameValueRecord swaps the texture or time of one list frame, or the time
// of one atlas frame. Every target receives the stored value; the value read
// back from the first target is kept for the next application.
type frameValueRecord struct {
	kind    Kind
	texture string
	index   int
	name    string
	time    float64
}

func (r *frameValueRecord) Kind() Kind { return r.kind }

func (r *frameValueRecord) apply(doc Document, ids []types.ID) {
	name, time := r.name, r.time
	for i, t := range animationTargets(r.texture, ids) {
		doc.EditAnimation(t, func(a *types.Animation) {
			switch r.kind {
			case KindListAnimationTexture, KindDefaultListAnimationTexture:
				if r.index < len(a.Frames) {
					if i == 0 {
						name = a.Frames[r.index].Texture
					}
					a.Frames[r.index].Texture = r.name
				}
			case KindListAnimationTime, KindDefaultListAnimationTime:
				if r.index < len(a.Frames) {
					if i == 0 {
						time = a.Frames[r.index].Time
					}
					a.Frames[r.index].Time = r.time
				}
			default:
				ft := a.Atlas.Timing.FrameTimes
				if r.index < len(ft) {
					if i == 0 {
						time = ft[r.index]
					}
					ft[r.index] = r.time
				}
			}
		})
	}
	r.name, r.time = name, time
}

// atlasRecord swaps one atlas parameter.
type atlasRecord struct {
	kind    Kind
	texture string
	n       uint32
	length  int
	time    float64
	timing  types.Timing
}

func (r *atlasRecord) Kind() Kind { return r.kind }

func (r *atlasRecord) apply(doc Document, ids []types.ID) {
	for _, t := range animationTargets(r.texture, ids) {
		doc.EditAnimation(t, func(a *types.Animation) {
			at := &a.Atlas
			switch r.kind {
			case KindAtlasAnimationX, KindDefaultAtlasAnimationX:
				at.X, r.n = r.n, at.X
			case KindAtlasAnimationY, KindDefaultAtlasAnimationY:
				at.Y, r.n = r.n, at.Y
			case KindAtlasAnimationLen, KindDefaultAtlasAnimationLen:
				at.Len, r.length = r.length, at.Len
			case KindAtlasAnimationUniformTime, KindDefaultAtlasAnimationUniformTime:
				at.Timing.UniformTime, r.time = r.time, at.Timing.UniformTime
			default:
				at.Timing, r.timing = r.timing, at.Timing
			}
		})
	}
}
