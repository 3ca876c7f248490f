package modehandler

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bethropolis/hollow/internal/tool"
	"github.com/bethropolis/hollow/internal/types"
)

func (mh *ModeHandler) registerBuiltins() {
	builtins := map[string]func(args []string) error{
		"w":               mh.cmdWrite,
		"q":               mh.cmdQuit,
		"q!":              func([]string) error { mh.quit(); return nil },
		"wq":              mh.cmdWriteQuit,
		"e":               mh.cmdEdit(false),
		"e!":              mh.cmdEdit(true),
		"reload-textures": mh.cmdReload(true),
		"reload-things":   mh.cmdReload(false),

		"undo":    mh.cmdHistory((*ModeHandler).undo),
		"redo":    mh.cmdHistory((*ModeHandler).redo),
		"jump":    mh.cmdJump,
		"history": mh.cmdToggleHistory,
		"tool":    mh.cmdTool,

		"move":      mh.cmdMove,
		"delete":    mh.cmdDelete,
		"flip":      mh.cmdFlip,
		"collision": mh.cmdCount("Collision toggled on %d brushes", tool.ToggleCollision),
		"anchor":    mh.cmdAt("Anchored %d entities", tool.Anchor),
		"disanchor": mh.cmdAt("Disanchored %d entities", tool.Disanchor),
		"prop":      mh.cmdProp,

		"texture":    mh.cmdTexture,
		"tex":        mh.cmdTexField,
		"tex-move":   mh.cmdTexVec("Moved %d textures", tool.MoveTexture),
		"tex-scale":  mh.cmdTexVec("Scaled %d textures", tool.ScaleTexture),
		"tex-rotate": mh.cmdTexRotate,
		"tex-flip":   mh.cmdTexFlip,
		"tex-mirror": mh.cmdTexMirror,
		"tex-height": mh.cmdTexHeight,
		"sprite":     mh.cmdSprite,

		"anim":         mh.cmdAnim,
		"default-anim": mh.cmdDefaultAnim,

		"thing":        mh.cmdThing,
		"thing-height": mh.cmdThingHeight,
		"thing-angle":  mh.cmdThingAngle,
		"movement":     mh.cmdMovement,
	}
	for name, fn := range builtins {
		// Names are unique literals.
		_ = mh.RegisterCommand(name, fn)
	}
}

// edit runs fn as one frame and returns its count.
func (mh *ModeHandler) edit(fn func(c *tool.Context) int) int {
	n := 0
	mh.editor.Frame(func(c *tool.Context) { n = fn(c) })
	return n
}

func (mh *ModeHandler) report(n int, format string) error {
	if n == 0 {
		mh.statusBar.SetTemporaryMessage("Nothing changed")
		return nil
	}
	mh.statusBar.SetTemporaryMessage(format, n)
	return nil
}

func argFloat(args []string, i int, what string) (float64, error) {
	if i >= len(args) {
		return 0, fmt.Errorf("missing %s", what)
	}
	v, err := strconv.ParseFloat(args[i], 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s '%s'", what, args[i])
	}
	return v, nil
}

func argInt(args []string, i int, what string, bits int) (int64, error) {
	if i >= len(args) {
		return 0, fmt.Errorf("missing %s", what)
	}
	v, err := strconv.ParseInt(args[i], 10, bits)
	if err != nil {
		return 0, fmt.Errorf("invalid %s '%s'", what, args[i])
	}
	return v, nil
}

func argVec(args []string) (types.Vec2, error) {
	x, err := argFloat(args, 0, "x")
	if err != nil {
		return types.Vec2{}, err
	}
	y, err := argFloat(args, 1, "y")
	if err != nil {
		return types.Vec2{}, err
	}
	return types.V(x, y), nil
}

func argBool(args []string, i int, what string) (bool, error) {
	if i >= len(args) {
		return false, fmt.Errorf("missing %s", what)
	}
	switch args[i] {
	case "on", "true", "yes", "1":
		return true, nil
	case "off", "false", "no", "0":
		return false, nil
	}
	return false, fmt.Errorf("invalid %s '%s', expected on or off", what, args[i])
}

// parseValue reads a property value: a bool, an integer, a float or else
// a string. Quotes force a string.
func parseValue(s string) types.Value {
	if len(s) >= 2 && strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`) {
		return s[1 : len(s)-1]
	}
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}

// --- Files ---

func (mh *ModeHandler) cmdWrite(args []string) error {
	path := ""
	if len(args) > 0 {
		path = args[0]
	}
	return mh.save(path)
}

func (mh *ModeHandler) cmdQuit([]string) error {
	if mh.editor.Modified() {
		return fmt.Errorf("unsaved edits (add ! to override)")
	}
	mh.quit()
	return nil
}

func (mh *ModeHandler) cmdWriteQuit(args []string) error {
	if err := mh.cmdWrite(args); err != nil {
		return err
	}
	mh.quit()
	return nil
}

func (mh *ModeHandler) cmdEdit(force bool) func(args []string) error {
	return func(args []string) error {
		if mh.editor.Modified() && !force {
			return fmt.Errorf("unsaved edits (add ! to override)")
		}
		var err error
		if len(args) > 0 {
			err = mh.editor.Open(args[0])
		} else {
			err = mh.editor.Reload()
		}
		if err != nil {
			return err
		}
		mh.statusBar.SetTemporaryMessage("Opened %s", mh.editor.FilePath())
		return nil
	}
}

func (mh *ModeHandler) cmdReload(textures bool) func(args []string) error {
	return func([]string) error {
		reload, what := mh.editor.ReloadThings, "Things"
		if textures {
			reload, what = mh.editor.ReloadTextures, "Textures"
		}
		purged, err := reload()
		if err != nil {
			return err
		}
		mh.statusBar.SetTemporaryMessage("%s reloaded, %d history entries dropped", what, purged)
		return nil
	}
}

// --- History and tools ---

func (mh *ModeHandler) undo() bool { return mh.editor.Undo() }
func (mh *ModeHandler) redo() bool { return mh.editor.Redo() }

// cmdHistory repeats step the given number of times, once by default.
func (mh *ModeHandler) cmdHistory(step func(*ModeHandler) bool) func(args []string) error {
	return func(args []string) error {
		n := int64(1)
		if len(args) > 0 {
			var err error
			if n, err = argInt(args, 0, "count", 32); err != nil {
				return err
			}
		}
		done := 0
		for ; done < int(n) && step(mh); done++ {
		}
		return mh.report(done, "Moved %d entries")
	}
}

func (mh *ModeHandler) cmdJump(args []string) error {
	k, err := argInt(args, 0, "history index", 32)
	if err != nil {
		return err
	}
	mh.editor.Jump(int(k))
	return nil
}

func (mh *ModeHandler) cmdToggleHistory([]string) error {
	if mh.toggleHistory == nil {
		return fmt.Errorf("history panel not available")
	}
	mh.toggleHistory()
	return nil
}

func (mh *ModeHandler) cmdTool(args []string) error {
	if len(args) == 0 {
		mh.statusBar.SetTemporaryMessage("Current tool: %s", mh.editor.Tool())
		return nil
	}
	k, ok := tool.ParseKind(args[0])
	if !ok {
		return fmt.Errorf("unknown tool '%s'", args[0])
	}
	mh.editor.SwitchTool(k)
	mh.statusBar.SetToolInfo(k.String())
	return nil
}

// --- Entities ---

func (mh *ModeHandler) cmdMove(args []string) error {
	delta, err := argVec(args)
	if err != nil {
		return err
	}
	n := mh.edit(func(c *tool.Context) int {
		if tool.MoveSelected(c, delta) {
			return len(c.Doc.Selected())
		}
		return 0
	})
	return mh.report(n, "Moved %d entities")
}

func (mh *ModeHandler) cmdDelete([]string) error {
	return mh.report(mh.edit(tool.DespawnSelected), "Deleted %d entities")
}

var flipDirs = map[string]types.FlipDir{
	"above": types.FlipAbove,
	"below": types.FlipBelow,
	"left":  types.FlipLeft,
	"right": types.FlipRight,
}

func (mh *ModeHandler) cmdFlip(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing direction: above, below, left or right")
	}
	dir, ok := flipDirs[args[0]]
	if !ok {
		return fmt.Errorf("unknown direction '%s'", args[0])
	}
	n := mh.edit(func(c *tool.Context) int {
		if tool.FlipSelected(c, dir) {
			return len(c.Doc.SelectedBrushes())
		}
		return 0
	})
	return mh.report(n, "Flipped %d brushes")
}

func (mh *ModeHandler) cmdCount(format string, fn func(c *tool.Context) int) func(args []string) error {
	return func([]string) error {
		return mh.report(mh.edit(fn), format)
	}
}

// cmdAt runs fn at the cursor.
func (mh *ModeHandler) cmdAt(format string, fn func(c *tool.Context, at types.Vec2) int) func(args []string) error {
	return func([]string) error {
		n := 0
		mh.editor.Act(func(_ tool.Tool, c *tool.Context, at types.Vec2) { n = fn(c, at) })
		return mh.report(n, format)
	}
}

func (mh *ModeHandler) cmdProp(args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: prop <key> <value>")
	}
	key, value := args[0], parseValue(strings.Join(args[1:], " "))
	n := mh.edit(func(c *tool.Context) int { return tool.SetProperty(c, key, value) })
	return mh.report(n, "Property set on %d entities")
}

// --- Textures ---

func (mh *ModeHandler) cmdTexture(args []string) error {
	if len(args) == 0 {
		mh.statusBar.SetTemporaryMessage("Textures: %s", strings.Join(mh.editor.Catalog().TextureNames(), ", "))
		return nil
	}
	switch name := args[0]; name {
	case "none":
		return mh.report(mh.edit(tool.RemoveTexture), "Texture removed from %d brushes")
	case "reset":
		return mh.report(mh.edit(tool.ResetTexture), "Texture reset on %d brushes")
	default:
		if !mh.editor.Catalog().HasTexture(name) {
			return fmt.Errorf("unknown texture '%s'", name)
		}
		n := 0
		mh.editor.Act(func(t tool.Tool, c *tool.Context, _ types.Vec2) {
			if pt, ok := t.(*tool.PaintTool); ok {
				pt.Use(name)
			}
			n = tool.SetTexture(c, name)
		})
		return mh.report(n, "Texture set on %d brushes")
	}
}

func (mh *ModeHandler) cmdTexField(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: tex <field> <value>")
	}
	field, ok := types.ParseTextureField(args[0])
	if !ok {
		return fmt.Errorf("unknown texture field '%s'", args[0])
	}
	v, err := argFloat(args, 1, "value")
	if err != nil {
		return err
	}
	n := mh.edit(func(c *tool.Context) int { return tool.SetTextureField(c, field, v) })
	return mh.report(n, "Updated %d textures")
}

func (mh *ModeHandler) cmdTexVec(format string, fn func(c *tool.Context, delta types.Vec2) int) func(args []string) error {
	return func(args []string) error {
		delta, err := argVec(args)
		if err != nil {
			return err
		}
		return mh.report(mh.edit(func(c *tool.Context) int { return fn(c, delta) }), format)
	}
}

func (mh *ModeHandler) cmdTexRotate(args []string) error {
	deg, err := argFloat(args, 0, "angle")
	if err != nil {
		return err
	}
	n := mh.edit(func(c *tool.Context) int { return tool.RotateTexture(c, deg) })
	return mh.report(n, "Rotated %d textures")
}

func (mh *ModeHandler) cmdTexFlip(args []string) error {
	if len(args) == 0 || (args[0] != "h" && args[0] != "v") {
		return fmt.Errorf("usage: tex-flip h|v")
	}
	vertical := args[0] == "v"
	n := mh.edit(func(c *tool.Context) int { return tool.FlipTexture(c, vertical) })
	return mh.report(n, "Flipped %d textures")
}

func (mh *ModeHandler) cmdTexMirror(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: tex-mirror x|y|xy")
	}
	x, y := strings.Contains(args[0], "x"), strings.Contains(args[0], "y")
	if !x && !y {
		return fmt.Errorf("usage: tex-mirror x|y|xy")
	}
	n := mh.edit(func(c *tool.Context) int { return tool.MirrorTexture(c, x, y) })
	return mh.report(n, "Mirrored %d textures")
}

func (mh *ModeHandler) cmdTexHeight(args []string) error {
	h, err := argInt(args, 0, "height", 8)
	if err != nil {
		return err
	}
	n := mh.edit(func(c *tool.Context) int { return tool.SetTextureHeight(c, int8(h)) })
	return mh.report(n, "Height set on %d textures")
}

func (mh *ModeHandler) cmdSprite(args []string) error {
	on, err := argBool(args, 0, "sprite mode")
	if err != nil {
		return err
	}
	n := mh.edit(func(c *tool.Context) int { return tool.SetSprite(c, on) })
	return mh.report(n, "Sprite mode changed on %d textures")
}

// --- Things and paths ---

func (mh *ModeHandler) cmdThing(args []string) error {
	k, err := argInt(args, 0, "thing kind", 32)
	if err != nil {
		return err
	}
	kind := types.ThingKind(k)
	def, ok := mh.editor.Catalog().Thing(kind)
	if !ok {
		return fmt.Errorf("unknown thing kind %d", kind)
	}
	n := 0
	mh.editor.Act(func(t tool.Tool, c *tool.Context, _ types.Vec2) {
		if tt, ok := t.(*tool.ThingTool); ok {
			tt.Use(kind)
		}
		n = tool.SetThingKind(c, kind)
	})
	if n == 0 {
		mh.statusBar.SetTemporaryMessage("Placing %s", def.Name)
		return nil
	}
	return mh.report(n, "Changed %d things")
}

func (mh *ModeHandler) cmdThingHeight(args []string) error {
	h, err := argInt(args, 0, "height", 8)
	if err != nil {
		return err
	}
	n := mh.edit(func(c *tool.Context) int { return tool.SetThingHeight(c, int8(h)) })
	return mh.report(n, "Height set on %d things")
}

func (mh *ModeHandler) cmdThingAngle(args []string) error {
	a, err := argFloat(args, 0, "angle")
	if err != nil {
		return err
	}
	n := mh.edit(func(c *tool.Context) int { return tool.SetThingAngle(c, a) })
	return mh.report(n, "Angle set on %d things")
}

func (mh *ModeHandler) cmdMovement(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: movement <standby|accel|decel|max_speed|min_speed> <value>")
	}
	field, ok := types.ParseMovementField(args[0])
	if !ok {
		return fmt.Errorf("unknown movement field '%s'", args[0])
	}
	v, err := argFloat(args, 1, "value")
	if err != nil {
		return err
	}
	n := mh.edit(func(c *tool.Context) int { return tool.SetMovement(c, field, v) })
	return mh.report(n, "Updated %d path nodes")
}
