package editlog

import (
	"testing"

	"github.com/bethropolis/hollow/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupPushAssertsArity(t *testing.T) {
	var g Group

	assert.PanicsWithError(t,
		(&ContractViolation{Op: "push", Reason: "Entity Selection takes at least one identifier, got 0"}).Error(),
		func() { g.Push(&selectRecord{kind: KindEntitySelection}) })
	assert.Panics(t, func() { g.Push(&collisionRecord{}, 1, 2) })
	assert.Panics(t, func() { g.Push(&freeDrawRecord{kind: KindFreeDrawPointInsertion}, 1) })
	assert.True(t, g.Empty())

	g.Push(&freeDrawRecord{kind: KindFreeDrawPointInsertion})
	g.Push(&collisionRecord{}, 4)
	g.Push(&selectRecord{kind: KindEntitySelection}, 1, 2, 3)
	assert.Equal(t, 3, g.Len())
}

func TestGroupTag(t *testing.T) {
	var g Group
	g.Push(&moveRecord{kind: KindBrushMove}, 1)
	g.Push(&selectRecord{kind: KindEntitySelection}, 1)
	assert.Equal(t, "Brush Move", g.Tag())

	g.OverrideTag("Brushes Extrusion")
	g.Push(&collisionRecord{}, 1)
	assert.Equal(t, "Brushes Extrusion", g.Tag())

	g.clear()
	assert.Equal(t, "", g.Tag())
	assert.True(t, g.Empty())
}

func TestGroupPushNeverMerges(t *testing.T) {
	var g Group
	g.Push(&selectRecord{kind: KindEntitySelection}, 1)
	g.Push(&selectRecord{kind: KindEntitySelection}, 1)
	assert.Equal(t, 2, g.Len())
}

func TestGroupUndoRedoOrder(t *testing.T) {
	doc := &callLog{}
	var g Group
	g.Push(&selectRecord{kind: KindEntitySelection}, 1)
	g.Push(&freeDrawRecord{kind: KindFreeDrawPointInsertion, index: 0})
	g.Push(&selectRecord{kind: KindSubtracteeSelection}, 2)

	g.Undo(doc)
	assert.Equal(t, []string{"subtractee- 2", "point- 0", "deselect 1"}, doc.take())

	g.Redo(doc)
	assert.Equal(t, []string{"select 1", "point+ 0", "subtractee+ 2"}, doc.take())
}

func TestGroupPredicates(t *testing.T) {
	var empty Group
	assert.False(t, empty.OnlySelectionEdits(), "an empty group is not a selection group")
	assert.False(t, empty.OnlyEntitySelectionEdits())

	var sel Group
	sel.Push(&selectRecord{kind: KindEntitySelection}, 1)
	sel.Push(&selectRecord{kind: KindEntityDeselection}, 2)
	assert.True(t, sel.OnlySelectionEdits())
	assert.True(t, sel.OnlyEntitySelectionEdits())
	assert.False(t, sel.ContainsToolEdit())

	sel.Push(&toggleRecord{kind: KindVertexesSelection, indexes: []int{0}}, 1)
	assert.True(t, sel.OnlySelectionEdits())
	assert.False(t, sel.OnlyEntitySelectionEdits())
	assert.True(t, sel.ContainsToolEdit())

	var mixed Group
	mixed.Push(&freeDrawRecord{kind: KindFreeDrawPointInsertion})
	assert.True(t, mixed.OnlyFreeDrawEdits())
	mixed.Push(&textureDeltaRecord{kind: KindTextureMove}, 1)
	mixed.Push(&moveRecord{kind: KindThingMove}, 2)
	assert.False(t, mixed.OnlyFreeDrawEdits())
	assert.True(t, mixed.ContainsFreeDrawEdit())
	assert.True(t, mixed.ContainsTextureEdit())
	assert.True(t, mixed.ContainsObjectEdit())
}

func TestGroupPurgeToolEditsPromotes(t *testing.T) {
	var g Group
	g.Push(&brushRecord{kind: KindBrushDraw}, 1)
	g.Push(&toggleRecord{kind: KindVertexesSelection, indexes: []int{1}}, 1)
	g.Push(&thingRecord{kind: KindDrawnThingDespawn, data: &types.ThingInstance{Kind: 3}}, 2)
	g.Push(&freeDrawRecord{kind: KindFreeDrawPointInsertion})
	poly := types.NewPolygon(types.V(0, 0), types.V(1, 0), types.V(0, 1))
	poly.Vertexes[1].Selected = true
	g.Push(&polygonRecord{polygon: poly}, 3)

	assert.False(t, g.PurgeToolEdits())
	require.Equal(t, 3, g.Len())

	e := g.Entries()
	assert.Equal(t, KindBrushSpawn, e[0].Record.Kind())
	assert.True(t, e[0].Record.(*brushRecord).selected)
	assert.Equal(t, KindThingDespawn, e[1].Record.Kind())
	assert.Equal(t, KindPolygonEdit, e[2].Record.Kind())
	assert.Empty(t, e[2].Record.(*polygonRecord).polygon.SelectedIndexes())
	assert.False(t, g.ContainsToolEdit())
}

func TestGroupPurgeReportsEmpty(t *testing.T) {
	var g Group
	g.Push(&textureDeltaRecord{kind: KindTextureMove}, 1)
	g.Push(&textureFieldRecord{field: types.TextureAngle}, 1)
	assert.False(t, g.PurgeObjectEdits())
	assert.True(t, g.PurgeTextureEdits())

	var f Group
	f.Push(&freeDrawRecord{kind: KindFreeDrawPointDeletion})
	f.Push(&selectRecord{kind: KindSubtracteeSelection}, 9)
	assert.False(t, f.PurgeFreeDrawEdits())
	assert.Equal(t, 1, f.Len())
	assert.True(t, f.PurgeToolEdits())
}
