package config

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, NewDefaultConfig(), cfg)
}

func TestLoadKeepsDefaultsForAbsentKeys(t *testing.T) {
	path := writeConfig(t, `
[editor]
grid_size = 16
show_history = false

[history]
scan_hints = false

[logger]
level = "debug"
enabled_tags = ["editlog"]

[plugins.autosave]
enabled = true
interval = "90s"
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 16, cfg.Editor.GridSize)
	assert.False(t, cfg.Editor.ShowHistory)
	assert.True(t, cfg.Editor.SystemClipboard, "absent key keeps its default")
	assert.True(t, cfg.Editor.WatchFile)
	assert.Equal(t, DefaultHistoryWidth, cfg.Editor.HistoryWidth)
	assert.False(t, cfg.History.ScanHints)
	assert.Equal(t, "debug", cfg.Logger.LogLevel)
	assert.Equal(t, []string{"editlog"}, cfg.Logger.EnabledTags)

	assert.Equal(t, true, cfg.PluginValue("autosave", "enabled"))
	assert.Equal(t, 90*time.Second, cfg.PluginDuration("autosave", "interval", time.Minute))
	assert.Equal(t, time.Minute, cfg.PluginDuration("autosave", "missing", time.Minute))
	assert.Nil(t, cfg.PluginValue("mapstats", "enabled"))
}

func TestLoadValidatesValues(t *testing.T) {
	path := writeConfig(t, `
[editor]
grid_size = -3
history_width = 2
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultGridSize, cfg.Editor.GridSize)
	assert.Equal(t, MinHistoryWidth, cfg.Editor.HistoryWidth)
}

func TestLoadInvalidToml(t *testing.T) {
	path := writeConfig(t, "[editor\ngrid_size = ")
	cfg, err := Load(path)
	assert.Error(t, err)
	assert.Equal(t, NewDefaultConfig(), cfg)
}

func TestFlagOverrides(t *testing.T) {
	fs := flag.NewFlagSet("hollow", flag.ContinueOnError)
	var f Flags
	f.DefineFlags(fs)
	require.NoError(t, fs.Parse([]string{"-grid", "32", "-no-scan-hints", "-log-tags", "editlog, tool", "level.hollow.toml"}))

	cfg := NewDefaultConfig()
	f.ApplyOverrides(cfg, false)

	assert.Equal(t, 32, cfg.Editor.GridSize)
	assert.False(t, cfg.History.ScanHints)
	assert.Equal(t, []string{"editlog", "tool"}, cfg.Logger.EnabledTags)
	assert.Equal(t, "info", cfg.Logger.LogLevel, "unset flag leaves the value alone")
	assert.Equal(t, []string{"level.hollow.toml"}, fs.Args())
}
