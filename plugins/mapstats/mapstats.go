// plugins/mapstats/mapstats.go
package mapstats

import (
	"fmt"
	"strings"
	"sync"

	"github.com/bethropolis/hollow/internal/event"
	"github.com/bethropolis/hollow/internal/plugin"
)

// Ensure MapStats implements plugin.Plugin
var _ plugin.Plugin = (*MapStats)(nil)

// MapStats adds :stats, which shows entity counts, the history position and
// how many edits and history moves happened since the map was loaded.
type MapStats struct {
	api plugin.EditorAPI

	mu    sync.Mutex
	edits int
	moves int
}

// New creates a new instance of the MapStats plugin.
func New() *MapStats {
	return &MapStats{}
}

// Name returns the unique name of the plugin.
func (p *MapStats) Name() string {
	return "mapstats"
}

// Initialize registers :stats and starts counting session activity.
func (p *MapStats) Initialize(api plugin.EditorAPI) error {
	p.api = api
	if err := api.RegisterCommand("stats", p.execute); err != nil {
		return fmt.Errorf("failed to register 'stats' command: %w", err)
	}
	api.SubscribeEvent(event.TypeMapModified, p.count(&p.edits))
	api.SubscribeEvent(event.TypeHistoryMoved, p.count(&p.moves))
	api.SubscribeEvent(event.TypeMapLoaded, func(event.Event) bool {
		p.mu.Lock()
		p.edits, p.moves = 0, 0
		p.mu.Unlock()
		return false
	})
	return nil
}

func (p *MapStats) count(n *int) event.Handler {
	return func(event.Event) bool {
		p.mu.Lock()
		*n++
		p.mu.Unlock()
		return false
	}
}

// Shutdown performs cleanup (nothing needed for this plugin).
func (p *MapStats) Shutdown() error {
	return nil
}

// Summary formats the current statistics.
func (p *MapStats) Summary() string {
	s := p.api.MapStats()
	p.mu.Lock()
	edits, moves := p.edits, p.moves
	p.mu.Unlock()

	parts := []string{
		fmt.Sprintf("Brushes: %d", s.Brushes),
		fmt.Sprintf("Things: %d", s.Things),
		fmt.Sprintf("Selected: %d", s.Selected),
	}
	if s.Paths > 0 {
		parts = append(parts, fmt.Sprintf("Paths: %d", s.Paths))
	}
	if s.Textured > 0 {
		parts = append(parts, fmt.Sprintf("Textured: %d", s.Textured))
	}
	if s.Anchors > 0 {
		parts = append(parts, fmt.Sprintf("Anchors: %d", s.Anchors))
	}
	if s.Subtractees > 0 {
		parts = append(parts, fmt.Sprintf("Subtractees: %d", s.Subtractees))
	}
	parts = append(parts,
		fmt.Sprintf("History: %d/%d", p.api.HistoryIndex(), p.api.HistoryLen()),
		fmt.Sprintf("Session: %d edits, %d moves", edits, moves),
	)
	return strings.Join(parts, ", ")
}

func (p *MapStats) execute([]string) error {
	if p.api == nil {
		return fmt.Errorf("mapstats plugin not initialized with API")
	}
	p.api.SetStatusMessage("%s", p.Summary())
	return nil
}
