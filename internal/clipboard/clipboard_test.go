package clipboard

import (
	"testing"

	"github.com/bethropolis/hollow/internal/document"
	"github.com/bethropolis/hollow/internal/editlog"
	"github.com/bethropolis/hollow/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func square(x, y float64) types.Polygon {
	return types.NewPolygon(types.V(x, y), types.V(x+4, y), types.V(x+4, y+4), types.V(x, y+4))
}

// sample holds brush 1 anchoring thing 2, both selected, and an unselected
// brush 3.
func sample() *document.Document {
	doc := document.New()
	doc.SpawnBrush(1, types.BrushData{Polygon: square(0, 0), Anchors: []types.ID{2}}, types.BrushSelected)
	doc.SpawnThing(2, types.ThingInstance{Kind: 3, Pos: types.V(1, 1)}, false)
	doc.SelectEntity(2)
	doc.SpawnBrush(3, types.BrushData{Polygon: square(10, 10)}, types.BrushUnselected)
	return doc
}

func TestNewBackendFallsBackToMemory(t *testing.T) {
	_, ok := NewBackend(false).(*Memory)
	assert.True(t, ok)
}

func TestEncodePayload(t *testing.T) {
	doc := sample()
	payload, err := Encode(doc, doc.Selected())
	require.NoError(t, err)

	assert.Equal(t, int64(payloadVersion), gjson.Get(payload, "hollow").Int())
	assert.Equal(t, int64(1), gjson.Get(payload, "brushes.#").Int())
	assert.Equal(t, int64(1), gjson.Get(payload, "things.#").Int())
	assert.Equal(t, uint64(2), gjson.Get(payload, "brushes.0.data.anchors.0").Uint())
	assert.Equal(t, float64(1), gjson.Get(payload, "things.0.data.pos.x").Float())
}

func TestCopyNothingSelected(t *testing.T) {
	mem := &Memory{}
	m := NewManager(mem)
	doc := document.New()

	n, err := m.Copy(doc)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Empty(t, mem.text)
}

func TestCopyPaste(t *testing.T) {
	m := NewManager(&Memory{})
	doc := sample()
	log := editlog.New()
	before := doc.Snapshot()

	n, err := m.Copy(doc)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	pasted, err := m.Paste(doc, log, types.V(20, 0))
	require.NoError(t, err)
	require.Len(t, pasted, 2)
	log.CommitFrame()

	assert.ElementsMatch(t, pasted, doc.Selected())
	assert.Equal(t, 1, log.Len())
	assert.Equal(t, "Paste", log.Tag(0))

	thing, ok := doc.Thing(pasted[0])
	require.True(t, ok)
	assert.Equal(t, types.V(21, 1), thing.Data.Pos)

	brush, ok := doc.Brush(pasted[1])
	require.True(t, ok)
	assert.Equal(t, types.V(20, 0), brush.Data.Polygon.Vertexes[0].Pos)
	assert.Equal(t, []types.ID{pasted[0]}, brush.Data.Anchors)

	log.Undo(doc)
	assert.Equal(t, before, doc.Snapshot())
	assert.Equal(t, []types.ID{1, 2}, doc.Selected())

	log.Redo(doc)
	assert.ElementsMatch(t, pasted, doc.Selected())
}

func TestPasteDropsForeignAnchors(t *testing.T) {
	m := NewManager(&Memory{})
	doc := sample()
	doc.DeselectEntity(2)

	_, err := m.Copy(doc)
	require.NoError(t, err)
	pasted, err := m.Paste(doc, editlog.New(), types.Vec2{})
	require.NoError(t, err)
	require.Len(t, pasted, 1)

	brush, _ := doc.Brush(pasted[0])
	assert.Empty(t, brush.Data.Anchors)
}

func TestPasteRejectsForeignText(t *testing.T) {
	for _, text := range []string{"", "hello", `{"brushes":[]}`, `{"hollow":99}`} {
		m := NewManager(&Memory{text: text})
		log := editlog.New()
		_, err := m.Paste(document.New(), log, types.Vec2{})
		assert.ErrorIs(t, err, ErrNotEntities, text)
		assert.Zero(t, log.CurrentEditLen())
	}
}

func TestCut(t *testing.T) {
	m := NewManager(&Memory{})
	doc := sample()
	log := editlog.New()
	before := doc.Snapshot()

	n, err := m.Cut(doc, log)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	log.CommitFrame()

	assert.Equal(t, []types.ID{3}, doc.BrushIDs())
	assert.Empty(t, doc.ThingIDs())
	assert.Equal(t, "Cut", log.Tag(0))

	log.Undo(doc)
	assert.Equal(t, before, doc.Snapshot())

	pasted, err := m.Paste(doc, log, types.V(0, 8))
	require.NoError(t, err)
	assert.Len(t, pasted, 2)
}
