// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/bethropolis/hollow/internal/logger"
)

// Config holds the application's combined configuration.
type Config struct {
	Logger  logger.Config                     `toml:"logger"`
	Editor  EditorConfig                      `toml:"editor"`
	History HistoryConfig                     `toml:"history"`
	Plugins map[string]map[string]interface{} `toml:"plugins"`
}

// EditorConfig holds map editor settings.
type EditorConfig struct {
	GridSize        int    `toml:"grid_size"`
	SystemClipboard bool   `toml:"system_clipboard"`
	ShowHistory     bool   `toml:"show_history"`
	HistoryWidth    int    `toml:"history_width"`
	WatchFile       bool   `toml:"watch_file"`
	StatusBarHeight int    `toml:"status_bar_height"`
	Theme           string `toml:"theme"`
	Catalog         string `toml:"catalog"`
}

// HistoryConfig holds edit log settings.
type HistoryConfig struct {
	// ScanHints bounds purge scans with earliest-occurrence hints.
	ScanHints bool `toml:"scan_hints"`
}

var (
	loadedConfig *Config
	loadOnce     sync.Once
	loadErr      error
)

// NewDefaultConfig creates a Config struct with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Logger: logger.Config{
			LogLevel:    "info",
			LogFilePath: DefaultLogFileName,
		},
		Editor: EditorConfig{
			GridSize:        DefaultGridSize,
			SystemClipboard: SystemClipboard,
			ShowHistory:     true,
			HistoryWidth:    DefaultHistoryWidth,
			WatchFile:       true,
			StatusBarHeight: StatusBarHeight,
		},
		History: HistoryConfig{ScanHints: true},
		Plugins: map[string]map[string]interface{}{},
	}
}

// Load reads path on top of the defaults. A missing file yields the
// defaults. Keys absent from the file keep their default value.
func Load(path string) (*Config, error) {
	cfg := NewDefaultConfig()
	if path == "" {
		return cfg, nil
	}
	metadata, err := toml.DecodeFile(path, cfg)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Debugf("Config file not found: %s", path)
		return cfg, nil
	}
	if err != nil {
		return NewDefaultConfig(), fmt.Errorf("failed to parse config file '%s': %w", path, err)
	}
	if undecoded := metadata.Undecoded(); len(undecoded) > 0 {
		logger.Warnf("Config file '%s': Unrecognized keys: %v", path, undecoded)
	}
	cfg.validate()
	return cfg, nil
}

// DefaultPath returns the config location under the user config directory.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, AppName, DefaultConfigFileName)
}

// validate checks config values and resets invalid ones to defaults.
func (c *Config) validate() {
	defaults := NewDefaultConfig()

	if c.Editor.GridSize <= 0 {
		c.Editor.GridSize = defaults.Editor.GridSize
	}
	if c.Editor.HistoryWidth < MinHistoryWidth {
		c.Editor.HistoryWidth = MinHistoryWidth
	}
	if c.Editor.StatusBarHeight <= 0 {
		c.Editor.StatusBarHeight = defaults.Editor.StatusBarHeight
	}
	if c.Logger.LogLevel == "" {
		c.Logger.LogLevel = defaults.Logger.LogLevel
	}
	if c.Plugins == nil {
		c.Plugins = defaults.Plugins
	}
}

// LoadConfig loads the file, applies flag overrides and validates. It runs
// once, typically from main, before the logger is set up.
func LoadConfig(configFilePath string, flags *Flags) (*Config, error) {
	loadOnce.Do(func() {
		path := configFilePath
		if path == "" {
			path = DefaultPath()
		}
		cfg, err := Load(path)
		loadErr = err
		if flags != nil {
			flags.ApplyOverrides(cfg, false)
		}
		cfg.validate()
		loadedConfig = cfg
	})
	return loadedConfig, loadErr
}

// Get returns the loaded application configuration. Panics if LoadConfig wasn't called.
func Get() *Config {
	if loadedConfig == nil {
		panic("config.Get() called before config.LoadConfig()")
	}
	return loadedConfig
}

// PluginValue returns a plugin setting, or nil.
func (c *Config) PluginValue(plugin, key string) interface{} {
	if section, ok := c.Plugins[plugin]; ok {
		return section[key]
	}
	return nil
}

// PluginDuration reads a plugin setting written as a duration string
// ("90s", "2m"), falling back to def.
func (c *Config) PluginDuration(plugin, key string, def time.Duration) time.Duration {
	s, ok := c.PluginValue(plugin, key).(string)
	if !ok {
		return def
	}
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		logger.Warnf("Config: invalid duration %q for %s.%s, using %v", s, plugin, key, def)
		return def
	}
	return d
}
