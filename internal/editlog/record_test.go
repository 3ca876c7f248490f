package editlog_test

import (
	"testing"

	"github.com/bethropolis/hollow/internal/document"
	"github.com/bethropolis/hollow/internal/editlog"
	"github.com/bethropolis/hollow/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	brushID types.ID = iota + 1
	atlasID
	thingID
	plainID
)

func twoNodePath() types.Path {
	return types.Path{Nodes: []types.Node{
		{Pos: types.V(0, 0), Movement: types.DefaultMovement()},
		{Pos: types.V(6, 0), Movement: types.DefaultMovement()},
	}}
}

// baseDocument holds a textured brush with a list animation and a path, a
// brush with an atlas animation, a thing and a bare brush.
func baseDocument() *document.Document {
	doc := document.New()

	tex := types.NewTextureSettings("brick")
	tex.Animation = types.Animation{Kind: types.AnimationList, Frames: []types.Frame{
		{Texture: "a", Time: 1}, {Texture: "b", Time: 2}, {Texture: "c", Time: 3},
	}}
	path := twoNodePath()
	doc.SpawnBrush(brushID, types.BrushData{Polygon: square(0, 0), Texture: &tex, Path: &path}, types.BrushUnselected)

	sheet := types.NewTextureSettings("sheet")
	sheet.Animation = types.Animation{Kind: types.AnimationAtlas, Atlas: types.Atlas{
		X: 4, Y: 2, Len: 3, Timing: types.Timing{FrameTimes: []float64{1, 2, 3}},
	}}
	doc.SpawnBrush(atlasID, types.BrushData{Polygon: square(10, 0), Texture: &sheet}, types.BrushUnselected)

	doc.SpawnThing(thingID, types.ThingInstance{Kind: 7, Pos: types.V(-3, 2), Angle: 90}, false)
	doc.SpawnBrush(plainID, types.BrushData{Polygon: square(20, 0)}, types.BrushUnselected)

	doc.SwapAnimation(types.DefaultAnimation("brick"), types.Animation{Kind: types.AnimationList, Frames: []types.Frame{
		{Texture: "a", Time: 0.5}, {Texture: "b", Time: 0.5},
	}})
	return doc
}

func editAnimation(doc *document.Document, id types.ID, edit func(a *types.Animation)) {
	doc.EditAnimation(types.EntityAnimation(id), edit)
}

type recordCase struct {
	name    string
	prepare func(doc *document.Document)
	edit    func(doc *document.Document, l *editlog.Log)
}

var selectionCases = []recordCase{
	{name: "entity selection", edit: func(doc *document.Document, l *editlog.Log) {
		doc.SelectEntity(brushID)
		doc.SelectEntity(thingID)
		l.EntitySelection(brushID, thingID)
	}},
	{
		name:    "entity deselection",
		prepare: func(doc *document.Document) { doc.SelectEntity(atlasID) },
		edit: func(doc *document.Document, l *editlog.Log) {
			doc.DeselectEntity(atlasID)
			l.EntityDeselection(atlasID)
		},
	},
	{name: "subtractee selection", edit: func(doc *document.Document, l *editlog.Log) {
		doc.InsertSubtractee(plainID)
		l.SubtracteeSelection(plainID)
	}},
	{
		name:    "subtractee deselection",
		prepare: func(doc *document.Document) { doc.InsertSubtractee(plainID) },
		edit: func(doc *document.Document, l *editlog.Log) {
			doc.RemoveSubtractee(plainID)
			l.SubtracteeDeselection(plainID)
		},
	},
	{name: "vertexes selection", edit: func(doc *document.Document, l *editlog.Log) {
		doc.ToggleVertex(brushID, 0)
		doc.ToggleVertex(brushID, 2)
		l.VertexesSelection(brushID, []int{0, 2})
	}},
	{name: "path nodes selection", edit: func(doc *document.Document, l *editlog.Log) {
		doc.TogglePathNode(brushID, 1)
		l.PathNodesSelection(brushID, []int{1})
	}},
}

var brushCases = []recordCase{
	{name: "brush spawn", edit: func(doc *document.Document, l *editlog.Log) {
		id := doc.NewID()
		doc.SpawnBrush(id, types.BrushData{Polygon: square(-10, -10)}, types.BrushSelected)
		l.BrushSpawn(id, true)
	}},
	{name: "brush despawn", edit: func(doc *document.Document, l *editlog.Log) {
		data := doc.DespawnBrush(brushID, types.BrushUnselected)
		l.BrushDespawn(brushID, data, false)
	}},
	{name: "brush draw", edit: func(doc *document.Document, l *editlog.Log) {
		id := doc.NewID()
		doc.SpawnBrush(id, types.BrushData{Polygon: square(-10, -10)}, types.BrushDrawn)
		l.BrushDraw(id)
	}},
	{
		name: "drawn brush despawn",
		prepare: func(doc *document.Document) {
			doc.SpawnBrush(doc.NewID(), types.BrushData{Polygon: square(-10, -10)}, types.BrushDrawn)
		},
		edit: func(doc *document.Document, l *editlog.Log) {
			id := doc.DrawnEntities()[0]
			data := doc.DespawnBrush(id, types.BrushDrawn)
			l.DrawnBrushDespawn(id, data)
		},
	},
	{name: "polygon edit", edit: func(doc *document.Document, l *editlog.Log) {
		prev := doc.SwapPolygon(brushID, types.NewPolygon(types.V(0, 0), types.V(3, 0), types.V(0, 3)))
		l.PolygonEdit(brushID, prev)
	}},
	{name: "brush move with fixed texture", edit: func(doc *document.Document, l *editlog.Log) {
		doc.MoveBrush(brushID, types.V(3, 1), false)
		doc.MoveBrush(plainID, types.V(3, 1), false)
		l.BrushMove([]types.ID{brushID, plainID}, types.V(3, 1), false)
	}},
	{name: "flip", edit: func(doc *document.Document, l *editlog.Log) {
		f := types.Flip{Dir: types.FlipLeft, Axis: 2}
		doc.FlipBrush(brushID, f, true)
		doc.FlipBrush(atlasID, f, true)
		l.Flip([]types.ID{brushID, atlasID}, f, true)
	}},
	{name: "collision", edit: func(doc *document.Document, l *editlog.Log) {
		prev := doc.SetCollision(plainID, true)
		l.Collision(plainID, prev)
	}},
	{name: "anchor", edit: func(doc *document.Document, l *editlog.Log) {
		doc.Attach(brushID, thingID)
		l.Anchor(brushID, thingID)
	}},
	{
		name:    "disanchor",
		prepare: func(doc *document.Document) { doc.Attach(brushID, thingID) },
		edit: func(doc *document.Document, l *editlog.Log) {
			doc.Detach(brushID, thingID)
			l.Disanchor(brushID, thingID)
		},
	},
	{name: "property change", edit: func(doc *document.Document, l *editlog.Log) {
		changes := []editlog.PropertyChange{
			{ID: brushID, Prev: doc.SetProperty(brushID, "speed", int64(3))},
			{ID: thingID, Prev: doc.SetProperty(thingID, "speed", int64(3))},
		}
		l.PushProperty("speed", changes)
	}},
}

var freeDrawCases = []recordCase{
	{name: "free draw point insertion", edit: func(doc *document.Document, l *editlog.Log) {
		doc.InsertFreeDrawPoint(0, types.V(1, 1))
		l.FreeDrawPointInsertion(types.V(1, 1), 0)
	}},
	{
		name: "free draw point deletion",
		prepare: func(doc *document.Document) {
			doc.InsertFreeDrawPoint(0, types.V(1, 1))
			doc.InsertFreeDrawPoint(1, types.V(5, 1))
		},
		edit: func(doc *document.Document, l *editlog.Log) {
			p := doc.FreeDrawPoints()[0]
			doc.DeleteFreeDrawPoint(0)
			l.FreeDrawPointDeletion(p, 0)
		},
	},
}

var vertexCases = []recordCase{
	{name: "vertex insertion", edit: func(doc *document.Document, l *editlog.Log) {
		v := types.Vertex{Pos: types.V(2, -1)}
		doc.InsertVertex(brushID, 1, v)
		l.VertexInsertion(brushID, 1, v)
	}},
	{name: "vertexes deletion", edit: func(doc *document.Document, l *editlog.Log) {
		b, _ := doc.Brush(brushID)
		vxs := []editlog.IndexedVertex{
			{Index: 1, Vertex: b.Data.Polygon.Vertexes[1]},
			{Index: 3, Vertex: b.Data.Polygon.Vertexes[3]},
		}
		doc.DeleteVertex(brushID, 3)
		doc.DeleteVertex(brushID, 1)
		l.VertexesDeletion(brushID, vxs)
	}},
	{name: "sides deletion", edit: func(doc *document.Document, l *editlog.Log) {
		b, _ := doc.Brush(plainID)
		doc.DeleteVertex(plainID, 0)
		l.SidesDeletion(plainID, []editlog.IndexedVertex{{Index: 0, Vertex: b.Data.Polygon.Vertexes[0]}})
	}},
	{name: "vertexes move", edit: func(doc *document.Document, l *editlog.Log) {
		moves := []editlog.IndexedMove{
			{Indexes: []int{0, 1}, Delta: types.V(1, 0)},
			{Indexes: []int{1}, Delta: types.V(0, 2)},
		}
		for _, m := range moves {
			doc.MoveVertexes(brushID, m.Indexes, m.Delta)
		}
		l.VertexesMove(brushID, moves)
	}},
	{name: "vertexes snap", edit: func(doc *document.Document, l *editlog.Log) {
		doc.MoveVertexes(brushID, []int{2}, types.V(-0.5, 0.25))
		l.VertexesSnap(brushID, []editlog.IndexedMove{{Indexes: []int{2}, Delta: types.V(-0.5, 0.25)}})
	}},
}

var pathCases = []recordCase{
	{name: "path creation", edit: func(doc *document.Document, l *editlog.Log) {
		doc.SetPath(plainID, twoNodePath())
		l.PathCreation(plainID)
	}},
	{name: "path deletion", edit: func(doc *document.Document, l *editlog.Log) {
		p := doc.RemovePath(brushID)
		l.PathDeletion(brushID, p)
	}},
	{name: "path node insertion", edit: func(doc *document.Document, l *editlog.Log) {
		n := types.Node{Pos: types.V(3, 3), Movement: types.DefaultMovement()}
		doc.InsertPathNode(brushID, 1, n)
		l.PathNodeInsertion(brushID, 1, n)
	}},
	{name: "path nodes move", edit: func(doc *document.Document, l *editlog.Log) {
		doc.MovePathNodes(brushID, []int{0, 1}, types.V(1, 1))
		l.PathNodesMove(brushID, []editlog.IndexedMove{{Indexes: []int{0, 1}, Delta: types.V(1, 1)}})
	}},
	{name: "path nodes snap", edit: func(doc *document.Document, l *editlog.Log) {
		doc.MovePathNodes(brushID, []int{1}, types.V(0.5, 0))
		l.PathNodesSnap(brushID, []editlog.IndexedMove{{Indexes: []int{1}, Delta: types.V(0.5, 0)}})
	}},
	{name: "path nodes deletion", edit: func(doc *document.Document, l *editlog.Log) {
		p, _ := doc.Path(brushID)
		doc.DeletePathNode(brushID, 0)
		l.PathNodesDeletion(brushID, []editlog.IndexedNode{{Index: 0, Node: p.Nodes[0]}})
	}},
	{name: "path node movement", edit: func(doc *document.Document, l *editlog.Log) {
		prev0 := doc.SetPathNodeMovement(brushID, 0, types.MovementAccel, 7)
		prev1 := doc.SetPathNodeMovement(brushID, 1, types.MovementAccel, 7)
		l.PathNodesMovement(brushID, types.MovementAccel, []editlog.NodeValue{{Index: 0, Value: prev0}, {Index: 1, Value: prev1}})
	}},
}

var thingCases = []recordCase{
	{name: "thing draw", edit: func(doc *document.Document, l *editlog.Log) {
		id := doc.NewID()
		doc.SpawnThing(id, types.ThingInstance{Kind: 2, Pos: types.V(8, 8)}, true)
		l.ThingDraw(id)
	}},
	{
		name: "drawn thing despawn",
		prepare: func(doc *document.Document) {
			doc.SpawnThing(doc.NewID(), types.ThingInstance{Kind: 2, Pos: types.V(8, 8)}, true)
		},
		edit: func(doc *document.Document, l *editlog.Log) {
			id := doc.DrawnEntities()[0]
			data := doc.DespawnThing(id, true)
			l.DrawnThingDespawn(id, data)
		},
	},
	{name: "thing spawn", edit: func(doc *document.Document, l *editlog.Log) {
		id := doc.NewID()
		doc.SpawnThing(id, types.ThingInstance{Kind: 2}, false)
		l.ThingSpawn(id)
	}},
	{name: "thing despawn", edit: func(doc *document.Document, l *editlog.Log) {
		data := doc.DespawnThing(thingID, false)
		l.ThingDespawn(thingID, data)
	}},
	{name: "thing move", edit: func(doc *document.Document, l *editlog.Log) {
		doc.MoveThing(thingID, types.V(2, -2))
		l.ThingMove([]types.ID{thingID}, types.V(2, -2))
	}},
	{name: "thing change", edit: func(doc *document.Document, l *editlog.Log) {
		l.ThingChange(thingID, doc.SetThingKind(thingID, 9))
	}},
	{name: "thing height", edit: func(doc *document.Document, l *editlog.Log) {
		l.ThingHeight(thingID, doc.SetThingHeight(thingID, 4))
	}},
	{name: "thing angle", edit: func(doc *document.Document, l *editlog.Log) {
		l.ThingAngle(thingID, doc.SetThingAngle(thingID, 180))
	}},
}

var textureCases = []recordCase{
	{name: "texture change", edit: func(doc *document.Document, l *editlog.Log) {
		prev, _ := doc.SetTexture(brushID, "stone")
		l.Texture(brushID, &prev)
	}},
	{name: "texture assignment", edit: func(doc *document.Document, l *editlog.Log) {
		doc.SetTexture(plainID, "stone")
		l.Texture(plainID, nil)
	}},
	{name: "texture removal", edit: func(doc *document.Document, l *editlog.Log) {
		prev := doc.SwapTextureSettings(brushID, nil)
		l.TextureRemoval(brushID, *prev)
	}},
	{
		name:    "texture reset",
		prepare: func(doc *document.Document) { doc.SetTextureField(brushID, types.TextureScaleX, 3) },
		edit: func(doc *document.Document, l *editlog.Log) {
			t, _ := doc.Texture(brushID)
			t.Reset()
			prev := doc.SwapTextureSettings(brushID, &t)
			l.TextureReset(brushID, *prev)
		},
	},
	{name: "sprite", edit: func(doc *document.Document, l *editlog.Log) {
		enabled, x, y := doc.SwapSprite(brushID, true, 0, 0)
		l.Sprite(brushID, enabled, x, y)
	}},
	{name: "texture flip", edit: func(doc *document.Document, l *editlog.Log) {
		doc.FlipTexture(brushID, true)
		doc.FlipTexture(atlasID, true)
		l.TextureFlip([]types.ID{brushID, atlasID}, true)
	}},
	{name: "texture scale flip", edit: func(doc *document.Document, l *editlog.Log) {
		doc.FlipTexture(brushID, false)
		doc.FlipTexture(brushID, true)
		l.TextureScaleFlip(brushID, true, true)
	}},
	{name: "texture scale delta", edit: func(doc *document.Document, l *editlog.Log) {
		doc.ShiftTextureField(brushID, types.TextureScaleX, 1)
		doc.ShiftTextureField(brushID, types.TextureScaleY, 2)
		l.TextureScaleDelta([]types.ID{brushID}, types.V(1, 2))
	}},
	{name: "texture move", edit: func(doc *document.Document, l *editlog.Log) {
		for _, id := range []types.ID{brushID, atlasID} {
			doc.ShiftTextureField(id, types.TextureOffsetX, 4)
			doc.ShiftTextureField(id, types.TextureOffsetY, -2)
		}
		l.TextureMove([]types.ID{brushID, atlasID}, types.V(4, -2))
	}},
	{name: "texture angle delta", edit: func(doc *document.Document, l *editlog.Log) {
		doc.ShiftTextureField(brushID, types.TextureAngle, 30)
		l.TextureAngleDelta([]types.ID{brushID}, 30)
	}},
	{name: "texture field", edit: func(doc *document.Document, l *editlog.Log) {
		prev := doc.SetTextureField(brushID, types.TextureParallaxX, 0.5)
		l.TextureField(brushID, types.TextureParallaxX, prev)
	}},
	{name: "texture height", edit: func(doc *document.Document, l *editlog.Log) {
		l.TextureHeight(brushID, doc.SetTextureHeight(brushID, 3))
	}},
}

var animationCases = []recordCase{
	{name: "animation", edit: func(doc *document.Document, l *editlog.Log) {
		prev := doc.SwapAnimation(types.EntityAnimation(brushID), types.Animation{Kind: types.AnimationAtlas, Atlas: types.Atlas{X: 2, Y: 2, Len: 4}})
		l.Animation(brushID, prev)
	}},
	{name: "animation move up", edit: func(doc *document.Document, l *editlog.Log) {
		for _, id := range []types.ID{brushID, atlasID} {
			editAnimation(doc, id, func(a *types.Animation) { a.MoveFrameUp(1) })
		}
		l.AnimationMoveUp([]types.ID{brushID, atlasID}, 1)
	}},
	{name: "animation move down", edit: func(doc *document.Document, l *editlog.Log) {
		editAnimation(doc, brushID, func(a *types.Animation) { a.MoveFrameDown(0) })
		l.AnimationMoveDown([]types.ID{brushID}, 0)
	}},
	{name: "list animation new frame", edit: func(doc *document.Document, l *editlog.Log) {
		f := types.Frame{Texture: "d", Time: 4}
		editAnimation(doc, brushID, func(a *types.Animation) { a.Frames = append(a.Frames, f) })
		l.ListAnimationNewFrame([]types.ID{brushID}, 3, f)
	}},
	{name: "list animation frame removal", edit: func(doc *document.Document, l *editlog.Log) {
		var removed types.Frame
		editAnimation(doc, brushID, func(a *types.Animation) {
			removed = a.Frames[1]
			a.Frames = append(a.Frames[:1], a.Frames[2:]...)
		})
		l.ListAnimationFrameRemoval([]types.ID{brushID}, 1, removed)
	}},
	{name: "list animation texture", edit: func(doc *document.Document, l *editlog.Log) {
		editAnimation(doc, brushID, func(a *types.Animation) { a.Frames[0].Texture = "z" })
		l.ListAnimationTexture([]types.ID{brushID}, 0, "a")
	}},
	{name: "list animation time", edit: func(doc *document.Document, l *editlog.Log) {
		editAnimation(doc, brushID, func(a *types.Animation) { a.Frames[2].Time = 9 })
		l.ListAnimationTime([]types.ID{brushID}, 2, 3)
	}},
	{name: "atlas animation x", edit: func(doc *document.Document, l *editlog.Log) {
		editAnimation(doc, atlasID, func(a *types.Animation) { a.Atlas.X = 8 })
		l.AtlasAnimationX(atlasID, 4)
	}},
	{name: "atlas animation y", edit: func(doc *document.Document, l *editlog.Log) {
		editAnimation(doc, atlasID, func(a *types.Animation) { a.Atlas.Y = 1 })
		l.AtlasAnimationY(atlasID, 2)
	}},
	{name: "atlas animation len", edit: func(doc *document.Document, l *editlog.Log) {
		editAnimation(doc, atlasID, func(a *types.Animation) { a.Atlas.Len = 6 })
		l.AtlasAnimationLen(atlasID, 3)
	}},
	{name: "atlas animation timing", edit: func(doc *document.Document, l *editlog.Log) {
		var prev types.Timing
		editAnimation(doc, atlasID, func(a *types.Animation) {
			prev = a.Atlas.Timing
			a.Atlas.Timing = types.Timing{Uniform: true, UniformTime: 0.25}
		})
		l.AtlasAnimationTiming(atlasID, prev)
	}},
	{name: "atlas animation uniform time", edit: func(doc *document.Document, l *editlog.Log) {
		editAnimation(doc, atlasID, func(a *types.Animation) { a.Atlas.Timing.UniformTime = 2 })
		l.AtlasAnimationUniformTime(atlasID, 0)
	}},
	{name: "atlas animation frame time", edit: func(doc *document.Document, l *editlog.Log) {
		editAnimation(doc, atlasID, func(a *types.Animation) { a.Atlas.Timing.FrameTimes[1] = 9 })
		l.AtlasAnimationFrameTime(atlasID, 1, 2)
	}},
	{name: "default animation", edit: func(doc *document.Document, l *editlog.Log) {
		prev := doc.SwapAnimation(types.DefaultAnimation("stone"), types.Animation{Kind: types.AnimationList, Frames: []types.Frame{{Texture: "s", Time: 1}}})
		l.DefaultAnimationEdits("stone").Animation(prev)
	}},
	{name: "default animation frame edits", edit: func(doc *document.Document, l *editlog.Log) {
		d := l.DefaultAnimationEdits("brick")
		target := types.DefaultAnimation("brick")
		doc.EditAnimation(target, func(a *types.Animation) {
			a.MoveFrameDown(0)
			a.Frames[1].Time = 3
			a.Frames = append(a.Frames, types.Frame{Texture: "c", Time: 1})
		})
		d.MoveDown(0)
		d.FrameTime(1, 0.5)
		d.NewFrame(2, types.Frame{Texture: "c", Time: 1})
	}},
}

func runRecordCases(t *testing.T, cases []recordCase) {
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			doc := baseDocument()
			if tc.prepare != nil {
				tc.prepare(doc)
			}
			l := editlog.New()

			before := doc.Snapshot()
			tc.edit(doc, l)
			l.CommitFrame()
			after := doc.Snapshot()
			require.NotEqual(t, before, after, "the edit changed nothing")
			require.Equal(t, 1, l.Len())

			l.Undo(doc)
			assert.Equal(t, before, doc.Snapshot(), "undo")
			l.Redo(doc)
			assert.Equal(t, after, doc.Snapshot(), "redo")
			l.Undo(doc)
			assert.Equal(t, before, doc.Snapshot(), "second undo")
		})
	}
}

func TestSelectionRecords(t *testing.T) { runRecordCases(t, selectionCases) }
func TestBrushRecords(t *testing.T) { runRecordCases(t, brushCases) }
func TestFreeDrawRecords(t *testing.T) { runRecordCases(t, freeDrawCases) }
func TestVertexRecords(t *testing.T) { runRecordCases(t, vertexCases) }
func TestPathRecords(t *testing.T) { runRecordCases(t, pathCases) }
func TestThingRecords(t *testing.T) { runRecordCases(t, thingCases) }
func TestTextureRecords(t *testing.T) { runRecordCases(t, textureCases) }
func TestAnimationRecords(t *testing.T) { runRecordCases(t, animationCases) }

func TestMultiEntityFrameValueKeepsFirstValue(t *testing.T) {
	doc := baseDocument()
	tex := types.NewTextureSettings("brick")
	tex.Animation = types.Animation{Kind: types.AnimationList, Frames: []types.Frame{{Texture: "a", Time: 1}}}
	doc.SwapTextureSettings(plainID, &tex)
	l := editlog.New()

	for _, id := range []types.ID{brushID, plainID} {
		editAnimation(doc, id, func(a *types.Animation) { a.Frames[0].Texture = "q" })
	}
	l.ListAnimationTexture([]types.ID{brushID, plainID}, 0, "a")
	l.CommitFrame()

	l.Undo(doc)
	for _, id := range []types.ID{brushID, plainID} {
		got, _ := doc.Texture(id)
		assert.Equal(t, "a", got.Animation.Frames[0].Texture)
	}
	l.Redo(doc)
	for _, id := range []types.ID{brushID, plainID} {
		got, _ := doc.Texture(id)
		assert.Equal(t, "q", got.Animation.Frames[0].Texture)
	}
}
