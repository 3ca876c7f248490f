package document

import (
	"testing"

	"github.com/bethropolis/hollow/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func square(x, y, size float64) types.Polygon {
	return types.NewPolygon(types.V(x, y), types.V(x+size, y), types.V(x+size, y+size), types.V(x, y+size))
}

func TestNewIDFollowsSpawnedEntities(t *testing.T) {
	d := New()
	assert.Equal(t, types.ID(1), d.NewID())
	d.SpawnBrush(10, types.BrushData{Polygon: square(0, 0, 1)}, types.BrushUnselected)
	assert.Equal(t, types.ID(11), d.NewID())
	d.SpawnThing(4, types.ThingInstance{}, false)
	assert.Equal(t, types.ID(12), d.NextID())
}

func TestSpawnAndDespawn(t *testing.T) {
	d := New()
	d.SpawnBrush(1, types.BrushData{Polygon: square(0, 0, 2)}, types.BrushSelected)
	d.SpawnBrush(2, types.BrushData{Polygon: square(5, 0, 2)}, types.BrushDrawn)
	d.InsertSubtractee(1)

	assert.Equal(t, []types.ID{1}, d.Selected())
	assert.Equal(t, []types.ID{2}, d.DrawnEntities())

	data := d.DespawnBrush(1, types.BrushSelected)
	assert.Equal(t, square(0, 0, 2), data.Polygon)
	assert.Empty(t, d.Selected())
	assert.Empty(t, d.Subtractees())
	assert.False(t, d.Exists(1))
}

func TestSelectionIgnoresMissingEntities(t *testing.T) {
	d := New()
	d.SelectEntity(3)
	d.InsertSubtractee(3)
	assert.Empty(t, d.Selected())
	assert.Empty(t, d.Subtractees())

	d.SpawnThing(3, types.ThingInstance{}, false)
	d.SelectEntity(3)
	d.InsertSubtractee(3)
	assert.Equal(t, []types.ID{3}, d.SelectedThings())
	assert.Empty(t, d.SelectedBrushes())
	assert.Empty(t, d.Subtractees(), "things cannot be subtractees")
}

func TestBrushReturnsCopies(t *testing.T) {
	d := New()
	d.SpawnBrush(1, types.BrushData{Polygon: square(0, 0, 2)}, types.BrushUnselected)
	b, ok := d.Brush(1)
	require.True(t, ok)
	b.Data.Polygon.Vertexes[0].Pos = types.V(-9, -9)

	again, _ := d.Brush(1)
	assert.Equal(t, types.V(0, 0), again.Data.Polygon.Vertexes[0].Pos)
}

func TestMoveBrushTexture(t *testing.T) {
	d := New()
	tex := types.NewTextureSettings("brick")
	d.SpawnBrush(1, types.BrushData{Polygon: square(0, 0, 2), Texture: &tex}, types.BrushUnselected)

	d.MoveBrush(1, types.V(3, 1), true)
	got, _ := d.Texture(1)
	assert.Equal(t, 0.0, got.OffsetX)

	d.MoveBrush(1, types.V(3, 1), false)
	got, _ = d.Texture(1)
	assert.Equal(t, -3.0, got.OffsetX)
	assert.Equal(t, -1.0, got.OffsetY)

	b, _ := d.Brush(1)
	assert.Equal(t, square(6, 2, 2), b.Data.Polygon)
}

func TestFlipBrushKeepsWinding(t *testing.T) {
	d := New()
	tex := types.NewTextureSettings("brick")
	d.SpawnBrush(1, types.BrushData{Polygon: square(0, 0, 2), Texture: &tex}, types.BrushUnselected)

	d.FlipBrush(1, types.Flip{Dir: types.FlipAbove, Axis: 2}, true)
	b, _ := d.Brush(1)
	assert.True(t, b.Data.Polygon.Convex())
	min, max := b.Data.Polygon.Bounds()
	assert.Equal(t, types.V(0, 2), min)
	assert.Equal(t, types.V(2, 4), max)
	assert.Equal(t, -1.0, b.Data.Texture.ScaleY)
	assert.Equal(t, 1.0, b.Data.Texture.ScaleX)
}

func TestVertexEditing(t *testing.T) {
	d := New()
	d.SpawnBrush(1, types.BrushData{Polygon: square(0, 0, 4)}, types.BrushUnselected)

	assert.True(t, d.CanInsertVertex(1, 1, types.V(2, -1)))
	assert.False(t, d.CanInsertVertex(1, 1, types.V(2, 1)), "a dent breaks convexity")
	assert.True(t, d.CanDeleteVertexes(1, []int{0}))
	assert.False(t, d.CanDeleteVertexes(1, []int{0, 1}))
	assert.True(t, d.CanMoveVertexes(1, []int{2}, types.V(1, 1)))
	assert.False(t, d.CanMoveVertexes(1, []int{2}, types.V(-3, -3)))

	d.InsertVertex(1, 1, types.Vertex{Pos: types.V(2, -1)})
	d.ToggleVertex(1, 1)
	b, _ := d.Brush(1)
	assert.Equal(t, 5, b.Data.Polygon.Len())
	assert.Equal(t, []int{1}, b.Data.Polygon.SelectedIndexes())

	d.DeleteVertex(1, 1)
	d.DeleteVertex(1, 99)
	b, _ = d.Brush(1)
	assert.Equal(t, square(0, 0, 4), b.Data.Polygon)
}

func TestAnchorsAreUnique(t *testing.T) {
	d := New()
	d.SpawnBrush(1, types.BrushData{Polygon: square(0, 0, 4)}, types.BrushUnselected)
	d.Attach(1, 5)
	d.Attach(1, 5)
	d.Attach(1, 6)
	b, _ := d.Brush(1)
	assert.Equal(t, []types.ID{5, 6}, b.Data.Anchors)

	d.Detach(1, 5)
	b, _ = d.Brush(1)
	assert.Equal(t, []types.ID{6}, b.Data.Anchors)
}

func TestPathEditing(t *testing.T) {
	d := New()
	d.SpawnThing(1, types.ThingInstance{}, false)
	_, ok := d.Path(1)
	assert.False(t, ok)

	d.SetPath(1, types.Path{})
	d.InsertPathNode(1, 0, types.Node{Pos: types.V(1, 1), Movement: types.DefaultMovement()})
	d.InsertPathNode(1, 5, types.Node{Pos: types.V(3, 1), Movement: types.DefaultMovement()})
	prev := d.SetPathNodeMovement(1, 1, types.MovementMaxSpeed, 40)
	assert.Equal(t, 100.0, prev)
	d.MovePathNodes(1, []int{0}, types.V(0, 1))

	p, ok := d.Path(1)
	require.True(t, ok)
	require.Equal(t, 2, p.Len())
	assert.Equal(t, types.V(1, 2), p.Nodes[0].Pos)
	assert.Equal(t, 40.0, p.Nodes[1].Movement.MaxSpeed)

	removed := d.RemovePath(1)
	assert.Equal(t, p, removed)
	_, ok = d.Path(1)
	assert.False(t, ok)
}

func TestTextureSwaps(t *testing.T) {
	d := New()
	d.SpawnBrush(1, types.BrushData{Polygon: square(0, 0, 4)}, types.BrushUnselected)

	prev, had := d.SetTexture(1, "brick")
	assert.False(t, had)
	assert.Equal(t, "", prev)
	prev, had = d.SetTexture(1, "stone")
	assert.True(t, had)
	assert.Equal(t, "brick", prev)

	assert.Equal(t, 0.0, d.SetTextureField(1, types.TextureAngle, 30))
	d.ShiftTextureField(1, types.TextureAngle, 15)
	got, _ := d.Texture(1)
	assert.Equal(t, 45.0, got.Angle)

	enabled, x, y := d.SwapSprite(1, true, 0, 0)
	assert.False(t, enabled)
	assert.Zero(t, x)
	assert.Zero(t, y)

	old := d.SwapTextureSettings(1, nil)
	require.NotNil(t, old)
	assert.Equal(t, "stone", old.Name)
	_, ok := d.Texture(1)
	assert.False(t, ok)
}

func TestDefaultAnimations(t *testing.T) {
	d := New()
	target := types.DefaultAnimation("water")
	list := types.Animation{Kind: types.AnimationList, Frames: []types.Frame{{Texture: "w1", Time: 1}}}

	prev := d.SwapAnimation(target, list)
	assert.Equal(t, types.AnimationNone, prev.Kind)
	assert.Equal(t, []string{"water"}, d.DefaultAnimations())

	d.EditAnimation(target, func(a *types.Animation) {
		a.Frames = append(a.Frames, types.Frame{Texture: "w2", Time: 1})
	})
	assert.Len(t, d.DefaultAnimation("water").Frames, 2)

	d.SwapAnimation(target, types.Animation{})
	assert.Empty(t, d.DefaultAnimations(), "a none animation is not stored")
}

func TestSetProperty(t *testing.T) {
	d := New()
	d.SpawnThing(1, types.ThingInstance{}, false)

	assert.Nil(t, d.SetProperty(1, "speed", 3.5))
	assert.Equal(t, 3.5, d.SetProperty(1, "speed", "fast"))
	assert.Equal(t, "fast", d.SetProperty(1, "speed", nil))

	th, _ := d.Thing(1)
	assert.Empty(t, th.Data.Properties)
}

func TestEntityAt(t *testing.T) {
	d := New()
	d.SpawnBrush(1, types.BrushData{Polygon: square(0, 0, 10)}, types.BrushUnselected)
	d.SpawnBrush(2, types.BrushData{Polygon: square(5, 5, 10)}, types.BrushUnselected)
	d.SpawnThing(3, types.ThingInstance{Pos: types.V(7, 7)}, false)

	assert.Equal(t, types.ID(3), d.EntityAt(types.V(7.5, 7), 1))
	assert.Equal(t, types.ID(2), d.EntityAt(types.V(9, 9), 1))
	assert.Equal(t, types.ID(1), d.EntityAt(types.V(1, 1), 1))
	assert.Equal(t, types.ID(0), d.EntityAt(types.V(50, 50), 1))
}

func TestFinalizeDrawn(t *testing.T) {
	d := New()
	d.SpawnBrush(1, types.BrushData{Polygon: square(0, 0, 2)}, types.BrushDrawn)
	d.SpawnThing(2, types.ThingInstance{}, true)
	d.SpawnThing(3, types.ThingInstance{}, false)

	d.FinalizeDrawn()
	assert.Empty(t, d.DrawnEntities())
	assert.Equal(t, []types.ID{1, 2}, d.Selected())
}

func TestFreeDrawPolygon(t *testing.T) {
	d := New()
	for i, p := range []types.Vec2{types.V(0, 0), types.V(4, 4), types.V(4, 0), types.V(0, 4)} {
		d.InsertFreeDrawPoint(i, p)
	}
	p, ok := d.FreeDrawPolygon()
	assert.True(t, ok)
	assert.Equal(t, 4, p.Len())

	d.DeleteFreeDrawPoint(0)
	d.DeleteFreeDrawPoint(0)
	d.DeleteFreeDrawPoint(7)
	_, ok = d.FreeDrawPolygon()
	assert.False(t, ok)

	d.ClearFreeDraw()
	assert.Empty(t, d.FreeDrawPoints())
}

func TestSnapshotNormalizes(t *testing.T) {
	a, b := New(), New()
	a.SpawnBrush(1, types.BrushData{Polygon: square(0, 0, 2), Anchors: []types.ID{}}, types.BrushUnselected)
	b.SpawnBrush(1, types.BrushData{Polygon: square(0, 0, 2)}, types.BrushUnselected)
	a.SelectEntity(1)
	a.DeselectEntity(1)
	assert.Equal(t, b.Snapshot(), a.Snapshot())
}
