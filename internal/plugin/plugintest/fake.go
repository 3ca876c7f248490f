// Package plugintest provides an in-memory plugin.EditorAPI for plugin tests.
package plugintest

import (
	"fmt"
	"sync"
	"time"

	"github.com/bethropolis/hollow/internal/event"
	"github.com/bethropolis/hollow/internal/plugin"
	"github.com/bethropolis/hollow/internal/theme"
	"github.com/bethropolis/hollow/internal/types"
	"github.com/gdamore/tcell/v2"
)

var _ plugin.EditorAPI = (*Fake)(nil)

// Fake records what plugins do. Fields may be set before Initialize; use
// the accessor methods once plugin goroutines are running.
type Fake struct {
	mu sync.Mutex

	Path     string
	Unsaved  bool
	SaveErr  error
	Stats    plugin.MapStats
	Tags     []string
	Index    int
	Config   map[string]map[string]interface{}
	Commands map[string]plugin.CommandFunc

	saves    int
	messages []string
	events   *event.Manager
}

// New returns a Fake with an empty history and config.
func New() *Fake {
	return &Fake{
		Config:   make(map[string]map[string]interface{}),
		Commands: make(map[string]plugin.CommandFunc),
		events:   event.NewManager(),
	}
}

// SetUnsaved changes the dirty flag.
func (f *Fake) SetUnsaved(v bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Unsaved = v
}

// Saves returns how many times SaveMap succeeded.
func (f *Fake) Saves() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.saves
}

// Messages returns the status messages shown so far.
func (f *Fake) Messages() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.messages...)
}

func (f *Fake) MapFilePath() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.Path
}

func (f *Fake) HasUnsavedEdits() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.Unsaved
}

func (f *Fake) SaveMap() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.SaveErr != nil {
		return f.SaveErr
	}
	f.saves++
	f.Unsaved = false
	return nil
}

func (f *Fake) MapStats() plugin.MapStats { return f.Stats }

func (f *Fake) HistoryLen() int         { return len(f.Tags) }
func (f *Fake) HistoryIndex() int       { return f.Index }
func (f *Fake) HistoryTag(i int) string { return f.Tags[i] }

func (f *Fake) Cursor() types.Vec2 { return types.Vec2{} }

func (f *Fake) DispatchEvent(t event.Type, data interface{}) { f.events.Dispatch(t, data) }

func (f *Fake) SubscribeEvent(t event.Type, h event.Handler) event.SubscriptionID {
	return f.events.Subscribe(t, h)
}

func (f *Fake) RegisterCommand(name string, fn plugin.CommandFunc) error {
	if _, ok := f.Commands[name]; ok {
		return fmt.Errorf("command '%s' already registered", name)
	}
	f.Commands[name] = fn
	return nil
}

func (f *Fake) SetStatusMessage(format string, args ...interface{}) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.messages = append(f.messages, fmt.Sprintf(format, args...))
}

func (f *Fake) GetThemeStyle(name string) tcell.Style { return theme.HollowDark.GetStyle(name) }
func (f *Fake) SetTheme(string) error                 { return fmt.Errorf("no themes") }
func (f *Fake) GetTheme() *theme.Theme                { return &theme.HollowDark }
func (f *Fake) ListThemes() []string                  { return []string{theme.HollowDark.Name} }

func (f *Fake) GetPluginConfigValue(pluginName, key string) (interface{}, bool) {
	v, ok := f.Config[pluginName][key]
	return v, ok
}

func (f *Fake) GetPluginDuration(pluginName, key string, def time.Duration) time.Duration {
	s, ok := f.Config[pluginName][key].(string)
	if !ok {
		return def
	}
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return def
	}
	return d
}
