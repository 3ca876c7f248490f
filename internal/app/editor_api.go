// internal/app/editor_api.go
package app

import (
	"fmt"
	"time"

	"github.com/bethropolis/hollow/internal/document"
	"github.com/bethropolis/hollow/internal/editlog"
	"github.com/bethropolis/hollow/internal/event"
	"github.com/bethropolis/hollow/internal/logger"
	"github.com/bethropolis/hollow/internal/plugin"
	"github.com/bethropolis/hollow/internal/theme"
	"github.com/bethropolis/hollow/internal/tool"
	"github.com/bethropolis/hollow/internal/types"
	"github.com/gdamore/tcell/v2"
)

// Ensure appEditorAPI implements the plugin.EditorAPI interface.
var _ plugin.EditorAPI = (*appEditorAPI)(nil)

// Verify that appEditorAPI implements the theme.ThemeAPI interface
var _ theme.ThemeAPI = (*appEditorAPI)(nil)

// appEditorAPI provides the concrete implementation of the EditorAPI interface.
type appEditorAPI struct {
	app *App
}

func newEditorAPI(app *App) *appEditorAPI {
	return &appEditorAPI{app: app}
}

// --- Map ---

func (api *appEditorAPI) MapFilePath() string   { return api.app.editor.FilePath() }
func (api *appEditorAPI) HasUnsavedEdits() bool { return api.app.editor.Modified() }

// SaveMap writes the map to its current path. Plugins call it from their
// own goroutines.
func (api *appEditorAPI) SaveMap() error {
	api.app.suppressWatcher()
	if err := api.app.editor.Save(); err != nil {
		return err
	}
	api.app.requestRedraw()
	return nil
}

func (api *appEditorAPI) MapStats() plugin.MapStats {
	var s plugin.MapStats
	api.app.editor.View(func(doc *document.Document, _ *editlog.Log, _ *tool.Manager) {
		for _, id := range doc.BrushIDs() {
			b, _ := doc.Brush(id)
			s.Brushes++
			if b.Data.Texture != nil {
				s.Textured++
			}
			if b.Data.Path != nil {
				s.Paths++
			}
			s.Anchors += len(b.Data.Anchors)
		}
		for _, id := range doc.ThingIDs() {
			t, _ := doc.Thing(id)
			s.Things++
			if t.Data.Path != nil {
				s.Paths++
			}
		}
		s.Selected = len(doc.Selected())
		s.Subtractees = len(doc.Subtractees())
		s.FreeDraw = len(doc.FreeDrawPoints())
	})
	return s
}

// --- History ---

func (api *appEditorAPI) HistoryLen() int {
	var n int
	api.app.editor.View(func(_ *document.Document, log *editlog.Log, _ *tool.Manager) { n = log.Len() })
	return n
}

func (api *appEditorAPI) HistoryIndex() int {
	var i int
	api.app.editor.View(func(_ *document.Document, log *editlog.Log, _ *tool.Manager) { i = log.Index() })
	return i
}

// HistoryTag returns the tag of the i-th committed group, or "" when i is
// out of range.
func (api *appEditorAPI) HistoryTag(i int) string {
	var tag string
	api.app.editor.View(func(_ *document.Document, log *editlog.Log, _ *tool.Manager) {
		if i >= 0 && i < log.Len() {
			tag = log.Tag(i)
		}
	})
	return tag
}

func (api *appEditorAPI) Cursor() types.Vec2 { return api.app.editor.Cursor() }

// --- Event Bus Interaction ---

func (api *appEditorAPI) DispatchEvent(eventType event.Type, data interface{}) {
	api.app.eventManager.Dispatch(eventType, data)
}

func (api *appEditorAPI) SubscribeEvent(eventType event.Type, handler event.Handler) event.SubscriptionID {
	return api.app.eventManager.Subscribe(eventType, handler)
}

// --- Command Registration ---

func (api *appEditorAPI) RegisterCommand(name string, cmdFunc plugin.CommandFunc) error {
	if api.app.modeHandler == nil {
		logger.Debugf("ERROR: appEditorAPI cannot register command '%s', modeHandler is nil", name)
		return fmt.Errorf("internal error: API cannot access command registration")
	}
	return api.app.modeHandler.RegisterCommand(name, cmdFunc)
}

// --- Status Bar ---

func (api *appEditorAPI) SetStatusMessage(format string, args ...interface{}) {
	api.app.statusBar.SetTemporaryMessage(format, args...)
	api.app.requestRedraw()
}

// --- Theme Access ---

func (api *appEditorAPI) GetThemeStyle(styleName string) tcell.Style {
	return api.app.themeManager.Current().GetStyle(styleName)
}

// SetTheme activates a theme and repaints with it.
func (api *appEditorAPI) SetTheme(name string) error {
	if err := api.app.themeManager.SetTheme(name); err != nil {
		return err
	}
	current := api.app.themeManager.Current()
	api.app.tuiManager.SetStyle(current.GetStyle("Default"))
	api.app.eventManager.Dispatch(event.TypeThemeChanged, event.ThemeChangedData{Name: current.Name})
	api.app.requestRedraw()
	logger.Debugf("Theme changed to '%s', redraw requested", current.Name)
	return nil
}

func (api *appEditorAPI) GetTheme() *theme.Theme { return api.app.themeManager.Current() }
func (api *appEditorAPI) ListThemes() []string   { return api.app.themeManager.ListThemes() }

// --- Configuration ---

func (api *appEditorAPI) GetPluginConfigValue(pluginName, key string) (interface{}, bool) {
	value := api.app.cfg.PluginValue(pluginName, key)
	return value, value != nil
}

func (api *appEditorAPI) GetPluginDuration(pluginName, key string, def time.Duration) time.Duration {
	return api.app.cfg.PluginDuration(pluginName, key, def)
}
