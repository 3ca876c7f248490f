package event

import "github.com/gdamore/tcell/v2"

// Type identifies the kind of event.
type Type int

const (
	TypeUnknown Type = iota

	// Map events
	TypeMapLoaded   // a map file was opened or reloaded
	TypeMapSaved    // the map was written to disk
	TypeMapModified // an edit, undo or redo changed the map
	TypeMapChanged  // the map file changed on disk

	TypeHistoryMoved    // the history cursor moved: undo, redo or jump
	TypeToolChanged     // another tool became active
	TypeCatalogReloaded // textures or things were reloaded

	TypeKeyPressed // raw key press, forwarded

	TypeAppReady
	TypeAppQuit

	TypeThemeChanged
)

var typeNames = [...]string{
	"unknown", "map loaded", "map saved", "map modified", "map changed",
	"history moved", "tool changed", "catalog reloaded", "key pressed",
	"app ready", "app quit", "theme changed",
}

func (t Type) String() string {
	if t >= 0 && int(t) < len(typeNames) {
		return typeNames[t]
	}
	return "unknown"
}

// Event is the structure passed through the event bus.
type Event struct {
	Type Type
	Data interface{}
}

// MapLoadedData names the loaded map.
type MapLoadedData struct {
	FilePath string
}

type MapSavedData struct {
	FilePath string
}

// MapModifiedData describes the history after the change.
type MapModifiedData struct {
	Tag   string // tag of the group that was committed, undone or redone
	Index int
	Len   int
}

// MapChangedData is sent by the file watcher.
type MapChangedData struct {
	FilePath string
}

type HistoryMovedData struct {
	From, To int
}

type ToolChangedData struct {
	Tool string
}

// CatalogReloadedData tells which catalog was reloaded and how many
// history groups the reload purged.
type CatalogReloadedData struct {
	Textures bool
	Things   bool
	Purged   int
}

// KeyPressedData contains the raw tcell key event.
type KeyPressedData struct {
	KeyEvent *tcell.EventKey
}

// ThemeChangedData names the new active theme.
type ThemeChangedData struct {
	Name string
}

type AppQuitData struct{}

type AppReadyData struct{}
