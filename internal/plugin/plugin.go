// internal/plugin/plugin.go
package plugin

import (
	"time"

	"github.com/bethropolis/hollow/internal/event"
	"github.com/bethropolis/hollow/internal/theme"
	"github.com/bethropolis/hollow/internal/types"
	"github.com/gdamore/tcell/v2"
)

// CommandFunc defines the signature for commands registered by plugins.
// It takes the words after the command name and returns an error.
type CommandFunc = theme.CommandFunc

// MapStats summarises the open map.
type MapStats struct {
	Brushes     int
	Things      int
	Selected    int
	Paths       int
	Textured    int
	Anchors     int
	Subtractees int
	FreeDraw    int
}

// EditorAPI defines the methods plugins can use to interact with the editor core.
// Plugins only see the map through this interface.
type EditorAPI interface {
	// --- Map ---
	MapFilePath() string
	HasUnsavedEdits() bool
	SaveMap() error
	MapStats() MapStats

	// --- History (read-only) ---
	HistoryLen() int
	HistoryIndex() int
	HistoryTag(i int) string

	// --- Cursor ---
	Cursor() types.Vec2

	// --- Event Bus Interaction ---
	DispatchEvent(eventType event.Type, data interface{})
	SubscribeEvent(eventType event.Type, handler event.Handler) event.SubscriptionID

	// --- Command Registration ---
	RegisterCommand(name string, cmdFunc CommandFunc) error

	// --- Status Bar ---
	SetStatusMessage(format string, args ...interface{})

	// --- Theme Access ---
	GetThemeStyle(styleName string) tcell.Style
	SetTheme(name string) error
	GetTheme() *theme.Theme
	ListThemes() []string

	// --- Configuration ---
	GetPluginConfigValue(pluginName, key string) (interface{}, bool)
	GetPluginDuration(pluginName, key string, def time.Duration) time.Duration
}

// Plugin defines the interface that all plugins must implement.
type Plugin interface {
	// Name returns the unique identifier name of the plugin.
	Name() string

	// Initialize is called once when the plugin is loaded.
	// Used for setup, subscribing to events, registering commands.
	Initialize(api EditorAPI) error

	// Shutdown is called once when the editor is closing.
	Shutdown() error
}
