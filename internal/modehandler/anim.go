package modehandler

import (
	"fmt"

	"github.com/bethropolis/hollow/internal/tool"
	"github.com/bethropolis/hollow/internal/types"
)

const animUsage = "usage: anim none|list|atlas | frame <texture> <time> | remove|up|down <i> | " +
	"texture <i> <name> | time <i> <t> | grid <x> <y> | len <n> | uniform on|off | uniform-time <t>"

// cmdAnim edits the animations of the selected textured brushes.
func (mh *ModeHandler) cmdAnim(args []string) error {
	return mh.animate(args, tool.SelectedAnimations)
}

// cmdDefaultAnim edits the default animation of a texture.
func (mh *ModeHandler) cmdDefaultAnim(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: default-anim <texture> <anim arguments>")
	}
	texture := args[0]
	if !mh.editor.Catalog().HasTexture(texture) {
		return fmt.Errorf("unknown texture '%s'", texture)
	}
	return mh.animate(args[1:], func(c *tool.Context) (*tool.AnimationEditor, error) {
		return tool.DefaultAnimationEditor(c, texture), nil
	})
}

func (mh *ModeHandler) animate(args []string, open func(c *tool.Context) (*tool.AnimationEditor, error)) error {
	if len(args) == 0 {
		return fmt.Errorf(animUsage)
	}
	var err error
	mh.editor.Frame(func(c *tool.Context) {
		var ed *tool.AnimationEditor
		if ed, err = open(c); err != nil {
			return
		}
		err = editAnimation(ed, args)
	})
	if err != nil {
		return err
	}
	mh.statusBar.SetTemporaryMessage("Animation updated")
	return nil
}

func editAnimation(ed *tool.AnimationEditor, args []string) error {
	index := func() (int, error) {
		i, err := argInt(args, 1, "frame index", 32)
		return int(i), err
	}

	switch args[0] {
	case "none":
		ed.SetKind(types.AnimationNone)
	case "list":
		ed.SetKind(types.AnimationList)
	case "atlas":
		ed.SetKind(types.AnimationAtlas)
	case "frame":
		if len(args) < 2 {
			return fmt.Errorf("missing frame texture")
		}
		t, err := argFloat(args, 2, "frame time")
		if err != nil {
			return err
		}
		return ed.AddFrame(args[1], t)
	case "remove", "up", "down":
		i, err := index()
		if err != nil {
			return err
		}
		switch args[0] {
		case "remove":
			return ed.RemoveFrame(i)
		case "up":
			return ed.MoveUp(i)
		default:
			return ed.MoveDown(i)
		}
	case "texture":
		i, err := index()
		if err != nil {
			return err
		}
		if len(args) < 3 {
			return fmt.Errorf("missing frame texture")
		}
		return ed.SetFrameTexture(i, args[2])
	case "time":
		i, err := index()
		if err != nil {
			return err
		}
		t, err := argFloat(args, 2, "frame time")
		if err != nil {
			return err
		}
		return ed.SetFrameTime(i, t)
	case "grid":
		x, err := argInt(args, 1, "columns", 32)
		if err != nil {
			return err
		}
		y, err := argInt(args, 2, "rows", 32)
		if err != nil {
			return err
		}
		if x <= 0 || y <= 0 {
			return fmt.Errorf("atlas grid must be positive")
		}
		if err := ed.SetAtlasX(uint32(x)); err != nil {
			return err
		}
		return ed.SetAtlasY(uint32(y))
	case "len":
		n, err := argInt(args, 1, "length", 32)
		if err != nil {
			return err
		}
		return ed.SetAtlasLen(int(n))
	case "uniform":
		on, err := argBool(args, 1, "uniform timing")
		if err != nil {
			return err
		}
		return ed.SetUniform(on)
	case "uniform-time":
		t, err := argFloat(args, 1, "time")
		if err != nil {
			return err
		}
		return ed.SetUniformTime(t)
	default:
		return fmt.Errorf(animUsage)
	}
	return nil
}
