package mapstats

import (
	"testing"

	"github.com/bethropolis/hollow/internal/event"
	"github.com/bethropolis/hollow/internal/plugin"
	"github.com/bethropolis/hollow/internal/plugin/plugintest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsCommand(t *testing.T) {
	api := plugintest.New()
	api.Stats = plugin.MapStats{Brushes: 3, Things: 1, Selected: 2, Textured: 1}
	api.Tags = []string{"Brush Spawn", "Texture"}
	api.Index = 2

	p := New()
	require.NoError(t, p.Initialize(api))
	require.Contains(t, api.Commands, "stats")

	api.DispatchEvent(event.TypeMapModified, event.MapModifiedData{Tag: "Brush Spawn", Index: 1, Len: 1})
	api.DispatchEvent(event.TypeMapModified, event.MapModifiedData{Tag: "Texture", Index: 2, Len: 2})
	api.DispatchEvent(event.TypeHistoryMoved, event.HistoryMovedData{From: 2, To: 1})

	require.NoError(t, api.Commands["stats"](nil))
	assert.Equal(t, []string{
		"Brushes: 3, Things: 1, Selected: 2, Textured: 1, History: 2/2, Session: 2 edits, 1 moves",
	}, api.Messages())
}

func TestLoadResetsSession(t *testing.T) {
	api := plugintest.New()
	p := New()
	require.NoError(t, p.Initialize(api))

	api.DispatchEvent(event.TypeMapModified, event.MapModifiedData{})
	api.DispatchEvent(event.TypeMapLoaded, event.MapLoadedData{FilePath: "level.toml"})

	assert.Contains(t, p.Summary(), "Session: 0 edits, 0 moves")
}

func TestDuplicateCommandFails(t *testing.T) {
	api := plugintest.New()
	require.NoError(t, api.RegisterCommand("stats", func([]string) error { return nil }))
	assert.Error(t, New().Initialize(api))
}
