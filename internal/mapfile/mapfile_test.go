package mapfile

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bethropolis/hollow/internal/document"
	"github.com/bethropolis/hollow/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDocument() *document.Document {
	doc := document.New()

	tex := types.NewTextureSettings("brick")
	tex.OffsetX = 2.5
	tex.Height = -2
	tex.Animation = types.Animation{Kind: types.AnimationList, Frames: []types.Frame{
		{Texture: "brick", Time: 0.5}, {Texture: "stone", Time: 0.25},
	}}
	path := types.Path{Nodes: []types.Node{
		{Pos: types.V(0, 0), Movement: types.DefaultMovement()},
		{Pos: types.V(8, 0), Movement: types.Movement{Accel: 2, MaxSpeed: 50}},
	}}
	doc.SpawnBrush(1, types.BrushData{
		Polygon:    types.NewPolygon(types.V(0, 0), types.V(4, 0), types.V(4, 4), types.V(0, 4)),
		Texture:    &tex,
		Path:       &path,
		Anchors:    []types.ID{2},
		Collision:  true,
		Properties: types.Properties{"name": "door", "speed": int64(3)},
	}, types.BrushUnselected)
	doc.SpawnThing(2, types.ThingInstance{
		Kind: 3, Pos: types.V(1, 2), Angle: 90, DrawHeight: 1,
		Properties: types.Properties{"weight": 1.5, "solid": true},
	}, false)
	doc.SpawnBrush(5, types.BrushData{
		Polygon: types.NewPolygon(types.V(10, 0), types.V(12, 0), types.V(11, 2)),
	}, types.BrushUnselected)

	doc.SwapAnimation(types.DefaultAnimation("water"), types.Animation{
		Kind:  types.AnimationAtlas,
		Atlas: types.Atlas{X: 4, Y: 1, Len: 4, Timing: types.Timing{FrameTimes: []float64{1, 1, 2, 0.5}}},
	})
	return doc
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "level.hollow.toml")
	doc := sampleDocument()

	require.NoError(t, Save(path, doc))
	loaded, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, doc.Snapshot(), loaded.Snapshot())
	assert.Equal(t, types.ID(6), loaded.NextID())
}

func TestSaveReplacesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "level.hollow.toml")
	require.NoError(t, os.WriteFile(path, []byte("garbage"), 0644))

	require.NoError(t, Save(path, document.New()))
	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Empty(t, loaded.BrushIDs())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temporary file is left behind")
}

func TestSelectionFlagsAreNotSaved(t *testing.T) {
	doc := sampleDocument()
	doc.ToggleVertex(1, 2)
	doc.TogglePathNode(1, 0)

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, doc))
	assert.NotContains(t, buf.String(), "selected")

	loaded, err := Decode(&buf)
	require.NoError(t, err)
	b, _ := loaded.Brush(1)
	assert.Empty(t, b.Data.Polygon.SelectedIndexes())
	assert.Empty(t, b.Data.Path.SelectedIndexes())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.hollow.toml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestDecodeRejectsBadMaps(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"newer version", "version = 99\n", "newer than supported"},
		{"invalid toml", "version = \n", "failed to parse map"},
		{"reserved id", "version = 1\n[[things]]\nid = 0\nkind = 1\n", "reserved"},
		{
			"duplicate id",
			"version = 1\n[[things]]\nid = 4\nkind = 1\n[[things]]\nid = 4\nkind = 2\n",
			"duplicate entity id 4",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.src))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.toml")
	src := `textures = ["brick", "stone"]

[[things]]
kind = 1
name = "player_start"
width = 1.0
height = 2.0

[[things]]
kind = 1
name = "duplicate"
`
	require.NoError(t, os.WriteFile(path, []byte(src), 0644))

	c, err := LoadCatalog(path)
	require.NoError(t, err)
	assert.Equal(t, path, c.Path())
	assert.Equal(t, []string{"brick", "stone"}, c.TextureNames())
	assert.True(t, c.HasTexture("stone"))
	def, ok := c.Thing(1)
	require.True(t, ok)
	assert.Equal(t, "player_start", def.Name)
	assert.Len(t, c.Things(), 1)

	require.NoError(t, os.WriteFile(path, []byte(`textures = ["metal"]`), 0644))
	require.NoError(t, c.ReloadTextures())
	assert.Equal(t, []string{"metal"}, c.TextureNames())
	assert.Len(t, c.Things(), 1, "reloading textures leaves things alone")

	require.NoError(t, c.ReloadThings())
	assert.Empty(t, c.Things())
}

func TestDefaultCatalogDoesNotReload(t *testing.T) {
	c := DefaultCatalog()
	assert.True(t, c.HasTexture("brick"))
	assert.NoError(t, c.ReloadTextures())
	assert.NoError(t, c.ReloadThings())
	assert.NotEmpty(t, c.Things())
}
