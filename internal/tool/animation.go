package tool

import (
	"errors"

	"github.com/bethropolis/hollow/internal/editlog"
	"github.com/bethropolis/hollow/internal/types"
)

var (
	ErrNoAnimationTarget = errors.New("no textured brush selected")
	ErrWrongAnimation    = errors.New("operation does not apply to this animation")
	ErrFrameIndex        = errors.New("frame index out of range")
)

// animationLog pushes animation records for one target, or for several
// entities sharing the same frames.
type animationLog interface {
	Animation(prev types.Animation)
	MoveUp(index int)
	MoveDown(index int)
	NewFrame(index int, frame types.Frame)
	FrameRemoval(index int, frame types.Frame)
	FrameTexture(index int, prev string)
	FrameTime(index int, prev float64)
	AtlasX(prev uint32)
	AtlasY(prev uint32)
	AtlasLen(prev int)
	AtlasTiming(prev types.Timing)
	AtlasUniformTime(prev float64)
	AtlasFrameTime(index int, prev float64)
}

var _ animationLog = editlog.DefaultAnimationLog{}

// entityAnimationLog adapts the entity animation pushes to animationLog.
type entityAnimationLog struct {
	log *editlog.Log
	ids []types.ID
}

func (e entityAnimationLog) Animation(prev types.Animation) {
	for _, id := range e.ids {
		e.log.Animation(id, prev)
	}
}

func (e entityAnimationLog) MoveUp(index int)   { e.log.AnimationMoveUp(e.ids, index) }
func (e entityAnimationLog) MoveDown(index int) { e.log.AnimationMoveDown(e.ids, index) }

func (e entityAnimationLog) NewFrame(index int, frame types.Frame) {
	e.log.ListAnimationNewFrame(e.ids, index, frame)
}

func (e entityAnimationLog) FrameRemoval(index int, frame types.Frame) {
	e.log.ListAnimationFrameRemoval(e.ids, index, frame)
}

func (e entityAnimationLog) FrameTexture(index int, prev string) {
	e.log.ListAnimationTexture(e.ids, index, prev)
}

func (e entityAnimationLog) FrameTime(index int, prev float64) {
	e.log.ListAnimationTime(e.ids, index, prev)
}

func (e entityAnimationLog) AtlasX(prev uint32) {
	for _, id := range e.ids {
		e.log.AtlasAnimationX(id, prev)
	}
}

func (e entityAnimationLog) AtlasY(prev uint32) {
	for _, id := range e.ids {
		e.log.AtlasAnimationY(id, prev)
	}
}

func (e entityAnimationLog) AtlasLen(prev int) {
	for _, id := range e.ids {
		e.log.AtlasAnimationLen(id, prev)
	}
}

func (e entityAnimationLog) AtlasTiming(prev types.Timing) {
	for _, id := range e.ids {
		e.log.AtlasAnimationTiming(id, prev)
	}
}

func (e entityAnimationLog) AtlasUniformTime(prev float64) {
	for _, id := range e.ids {
		e.log.AtlasAnimationUniformTime(id, prev)
	}
}

func (e entityAnimationLog) AtlasFrameTime(index int, prev float64) {
	for _, id := range e.ids {
		e.log.AtlasAnimationFrameTime(id, index, prev)
	}
}

// AnimationEditor edits the animation of the textures of some brushes, or
// the default animation of a texture. List frame edits are shared across
// the brushes; everything else is recorded per brush.
type AnimationEditor struct {
	c       *Context
	targets []types.AnimationTarget
	each    []animationLog
	shared  animationLog
}

// Animations edits the animations of the textured brushes among ids.
func Animations(c *Context, ids []types.ID) (*AnimationEditor, error) {
	e := &AnimationEditor{c: c}
	var kept []types.ID
	for _, id := range ids {
		if _, ok := c.Doc.Texture(id); !ok {
			continue
		}
		kept = append(kept, id)
		e.targets = append(e.targets, types.EntityAnimation(id))
		e.each = append(e.each, entityAnimationLog{log: c.Log, ids: []types.ID{id}})
	}
	if len(kept) == 0 {
		return nil, ErrNoAnimationTarget
	}
	e.shared = entityAnimationLog{log: c.Log, ids: kept}
	return e, nil
}

// SelectedAnimations edits the animations of the selected brushes.
func SelectedAnimations(c *Context) (*AnimationEditor, error) {
	return Animations(c, c.Doc.SelectedBrushes())
}

// DefaultAnimationEditor edits the default animation of texture.
func DefaultAnimationEditor(c *Context, texture string) *AnimationEditor {
	l := c.Log.DefaultAnimationEdits(texture)
	return &AnimationEditor{
		c:       c,
		targets: []types.AnimationTarget{types.DefaultAnimation(texture)},
		each:    []animationLog{l},
		shared:  l,
	}
}

func (e *AnimationEditor) get(t types.AnimationTarget) types.Animation {
	if t.IsDefault() {
		return e.c.Doc.DefaultAnimation(t.Texture)
	}
	s, _ := e.c.Doc.Texture(t.Entity)
	return s.Animation
}

// Current returns the animation of the first target.
func (e *AnimationEditor) Current() types.Animation { return e.get(e.targets[0]) }

func (e *AnimationEditor) edit(fn func(a *types.Animation)) {
	for _, t := range e.targets {
		e.c.Doc.EditAnimation(t, fn)
	}
}

// SetKind replaces the animations with an empty one of kind k.
func (e *AnimationEditor) SetKind(k types.AnimationKind) {
	var next types.Animation
	switch k {
	case types.AnimationList:
		next = types.Animation{Kind: types.AnimationList}
	case types.AnimationAtlas:
		next = types.Animation{
			Kind:  types.AnimationAtlas,
			Atlas: types.Atlas{X: 1, Y: 1, Len: 1, Timing: types.Timing{Uniform: true, UniformTime: 0.1}},
		}
	}
	for i, t := range e.targets {
		if e.get(t).Kind == k {
			continue
		}
		e.each[i].Animation(e.c.Doc.SwapAnimation(t, next))
	}
}

func (e *AnimationEditor) list() (types.Animation, error) {
	a := e.Current()
	if a.Kind != types.AnimationList {
		return a, ErrWrongAnimation
	}
	return a, nil
}

func (e *AnimationEditor) atlas() (types.Animation, error) {
	a := e.Current()
	if a.Kind != types.AnimationAtlas {
		return a, ErrWrongAnimation
	}
	return a, nil
}

// AddFrame appends a frame to a list animation.
func (e *AnimationEditor) AddFrame(texture string, time float64) error {
	a, err := e.list()
	if err != nil {
		return err
	}
	i, f := len(a.Frames), types.Frame{Texture: texture, Time: time}
	e.edit(func(a *types.Animation) {
		j := min(i, len(a.Frames))
		a.Frames = append(a.Frames, types.Frame{})
		copy(a.Frames[j+1:], a.Frames[j:])
		a.Frames[j] = f
	})
	e.shared.NewFrame(i, f)
	return nil
}

// RemoveFrame removes frame i of a list animation.
func (e *AnimationEditor) RemoveFrame(i int) error {
	a, err := e.list()
	if err != nil {
		return err
	}
	if i < 0 || i >= len(a.Frames) {
		return ErrFrameIndex
	}
	f := a.Frames[i]
	e.edit(func(a *types.Animation) {
		if i < len(a.Frames) {
			a.Frames = append(a.Frames[:i], a.Frames[i+1:]...)
		}
	})
	e.shared.FrameRemoval(i, f)
	return nil
}

func (e *AnimationEditor) frames(a types.Animation) int {
	if a.Kind == types.AnimationAtlas {
		return len(a.Atlas.Timing.FrameTimes)
	}
	return len(a.Frames)
}

// MoveUp swaps frame i with the one before it.
func (e *AnimationEditor) MoveUp(i int) error {
	if i < 1 || i >= e.frames(e.Current()) {
		return ErrFrameIndex
	}
	e.edit(func(a *types.Animation) { a.MoveFrameUp(i) })
	e.shared.MoveUp(i)
	return nil
}

// MoveDown swaps frame i with the one after it.
func (e *AnimationEditor) MoveDown(i int) error {
	if i < 0 || i+1 >= e.frames(e.Current()) {
		return ErrFrameIndex
	}
	e.edit(func(a *types.Animation) { a.MoveFrameDown(i) })
	e.shared.MoveDown(i)
	return nil
}

// SetFrameTexture changes the texture of frame i of a list animation.
func (e *AnimationEditor) SetFrameTexture(i int, texture string) error {
	a, err := e.list()
	if err != nil {
		return err
	}
	if i < 0 || i >= len(a.Frames) {
		return ErrFrameIndex
	}
	e.edit(func(a *types.Animation) {
		if i < len(a.Frames) {
			a.Frames[i].Texture = texture
		}
	})
	e.shared.FrameTexture(i, a.Frames[i].Texture)
	return nil
}

// SetFrameTime changes the time of frame i, for list animations and atlas
// animations with per-frame timing.
func (e *AnimationEditor) SetFrameTime(i int, time float64) error {
	a := e.Current()
	switch {
	case a.Kind == types.AnimationList:
		if i < 0 || i >= len(a.Frames) {
			return ErrFrameIndex
		}
		e.edit(func(a *types.Animation) {
			if i < len(a.Frames) {
				a.Frames[i].Time = time
			}
		})
		e.shared.FrameTime(i, a.Frames[i].Time)
		return nil
	case a.Kind == types.AnimationAtlas && !a.Atlas.Timing.Uniform:
		if i < 0 || i >= len(a.Atlas.Timing.FrameTimes) {
			return ErrFrameIndex
		}
		for k, t := range e.targets {
			ft := e.get(t).Atlas.Timing.FrameTimes
			if i >= len(ft) {
				continue
			}
			prev := ft[i]
			e.c.Doc.EditAnimation(t, func(a *types.Animation) { a.Atlas.Timing.FrameTimes[i] = time })
			e.each[k].AtlasFrameTime(i, prev)
		}
		return nil
	}
	return ErrWrongAnimation
}

// SetAtlasX sets the number of columns of an atlas.
func (e *AnimationEditor) SetAtlasX(n uint32) error {
	return e.eachAtlas(func(k int, t types.AnimationTarget, a types.Animation) {
		if a.Atlas.X == n || n == 0 {
			return
		}
		e.c.Doc.EditAnimation(t, func(a *types.Animation) { a.Atlas.X = n })
		e.each[k].AtlasX(a.Atlas.X)
	})
}

// SetAtlasY sets the number of rows of an atlas.
func (e *AnimationEditor) SetAtlasY(n uint32) error {
	return e.eachAtlas(func(k int, t types.AnimationTarget, a types.Animation) {
		if a.Atlas.Y == n || n == 0 {
			return
		}
		e.c.Doc.EditAnimation(t, func(a *types.Animation) { a.Atlas.Y = n })
		e.each[k].AtlasY(a.Atlas.Y)
	})
}

// SetAtlasLen sets how many cells an atlas plays. Per-frame timings are
// resized along with it.
func (e *AnimationEditor) SetAtlasLen(n int) error {
	return e.eachAtlas(func(k int, t types.AnimationTarget, a types.Animation) {
		if a.Atlas.Len == n || n < 1 {
			return
		}
		if !a.Atlas.Timing.Uniform {
			next := resizeTimes(a.Atlas.Timing, n)
			e.c.Doc.EditAnimation(t, func(a *types.Animation) { a.Atlas.Timing = next })
			e.each[k].AtlasTiming(a.Atlas.Timing)
		}
		e.c.Doc.EditAnimation(t, func(a *types.Animation) { a.Atlas.Len = n })
		e.each[k].AtlasLen(a.Atlas.Len)
	})
}

func resizeTimes(t types.Timing, n int) types.Timing {
	t = t.Clone()
	for len(t.FrameTimes) < n {
		t.FrameTimes = append(t.FrameTimes, t.UniformTime)
	}
	t.FrameTimes = t.FrameTimes[:n]
	return t
}

// SetUniform switches an atlas between uniform and per-frame timing.
func (e *AnimationEditor) SetUniform(uniform bool) error {
	return e.eachAtlas(func(k int, t types.AnimationTarget, a types.Animation) {
		if a.Atlas.Timing.Uniform == uniform {
			return
		}
		next := types.Timing{Uniform: uniform, UniformTime: a.Atlas.Timing.UniformTime}
		if !uniform {
			next = resizeTimes(next, a.Atlas.Len)
		}
		e.c.Doc.EditAnimation(t, func(a *types.Animation) { a.Atlas.Timing = next })
		e.each[k].AtlasTiming(a.Atlas.Timing)
	})
}

// SetUniformTime sets the frame time of a uniformly timed atlas.
func (e *AnimationEditor) SetUniformTime(time float64) error {
	return e.eachAtlas(func(k int, t types.AnimationTarget, a types.Animation) {
		if !a.Atlas.Timing.Uniform || a.Atlas.Timing.UniformTime == time {
			return
		}
		e.c.Doc.EditAnimation(t, func(a *types.Animation) { a.Atlas.Timing.UniformTime = time })
		e.each[k].AtlasUniformTime(a.Atlas.Timing.UniformTime)
	})
}

func (e *AnimationEditor) eachAtlas(fn func(k int, t types.AnimationTarget, a types.Animation)) error {
	if _, err := e.atlas(); err != nil {
		return err
	}
	for k, t := range e.targets {
		if a := e.get(t); a.Kind == types.AnimationAtlas {
			fn(k, t, a)
		}
	}
	return nil
}
