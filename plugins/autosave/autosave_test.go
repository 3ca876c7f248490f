package autosave

import (
	"errors"
	"testing"
	"time"

	"github.com/bethropolis/hollow/internal/plugin/plugintest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func start(t *testing.T, api *plugintest.Fake) {
	t.Helper()
	p := New()
	require.NoError(t, p.Initialize(api))
	t.Cleanup(func() { assert.NoError(t, p.Shutdown()) })
}

func enabled(api *plugintest.Fake) {
	api.Config["autosave"] = map[string]interface{}{"enabled": true, "interval": "5ms"}
}

func TestSavesUnsavedMap(t *testing.T) {
	api := plugintest.New()
	enabled(api)
	api.Path = "level.toml"
	api.Unsaved = true
	start(t, api)

	assert.Eventually(t, func() bool { return api.Saves() == 1 }, 2*time.Second, 5*time.Millisecond)
	assert.False(t, api.HasUnsavedEdits())

	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, 1, api.Saves(), "clean maps are not saved again")

	api.SetUnsaved(true)
	assert.Eventually(t, func() bool { return api.Saves() == 2 }, 2*time.Second, 5*time.Millisecond)
}

func TestSkipsUnnamedMap(t *testing.T) {
	api := plugintest.New()
	enabled(api)
	api.Unsaved = true
	start(t, api)

	time.Sleep(30 * time.Millisecond)
	assert.Zero(t, api.Saves())
}

func TestSaveFailureKeepsRunning(t *testing.T) {
	api := plugintest.New()
	enabled(api)
	api.Path = "level.toml"
	api.Unsaved = true
	api.SaveErr = errors.New("disk full")
	start(t, api)

	time.Sleep(30 * time.Millisecond)
	assert.Zero(t, api.Saves())
	assert.True(t, api.HasUnsavedEdits())
}

func TestDisabledByDefault(t *testing.T) {
	api := plugintest.New()
	api.Path = "level.toml"
	api.Unsaved = true
	start(t, api)

	time.Sleep(30 * time.Millisecond)
	assert.Zero(t, api.Saves())
}
