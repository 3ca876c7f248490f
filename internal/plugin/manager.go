// internal/plugin/manager.go
package plugin

import (
	"fmt"
	"sort"
	"sync"

	"github.com/bethropolis/hollow/internal/logger"
)

// Manager handles the registration, initialization, and lifecycle of plugins.
type Manager struct {
	mu      sync.RWMutex
	plugins map[string]Plugin
	order   []string // registration order
	api     EditorAPI
}

// NewManager creates a new plugin manager.
func NewManager() *Manager {
	return &Manager{
		plugins: make(map[string]Plugin),
	}
}

// Register adds a plugin instance to the manager.
// This should be called before InitializePlugins.
func (m *Manager) Register(plugin Plugin) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	name := plugin.Name()
	if name == "" {
		return fmt.Errorf("plugin registration failed: plugin name cannot be empty")
	}
	if _, exists := m.plugins[name]; exists {
		return fmt.Errorf("plugin registration failed: plugin named '%s' already registered", name)
	}

	m.plugins[name] = plugin
	m.order = append(m.order, name)
	logger.DebugTagf("plugin", "Registered plugin '%s'", name)
	return nil
}

func (m *Manager) snapshot() []Plugin {
	list := make([]Plugin, 0, len(m.order))
	for _, name := range m.order {
		list = append(list, m.plugins[name])
	}
	return list
}

// InitializePlugins calls Initialize on every registered plugin in
// registration order. A failing plugin is logged and skipped.
func (m *Manager) InitializePlugins(api EditorAPI) {
	m.mu.Lock()
	m.api = api
	toInit := m.snapshot()
	m.mu.Unlock()

	logger.Infof("Plugin Manager: Initializing %d plugins...", len(toInit))
	for _, plugin := range toInit {
		if err := plugin.Initialize(api); err != nil {
			logger.Errorf("Plugin Manager: ERROR initializing plugin '%s': %v", plugin.Name(), err)
			continue
		}
		logger.DebugTagf("plugin", "Initialized plugin '%s'", plugin.Name())
	}
}

// ShutdownPlugins calls Shutdown on all registered plugins, newest first.
func (m *Manager) ShutdownPlugins() {
	m.mu.RLock()
	toStop := m.snapshot()
	m.mu.RUnlock()

	logger.Infof("Plugin Manager: Shutting down %d plugins...", len(toStop))
	for i := len(toStop) - 1; i >= 0; i-- {
		if err := toStop[i].Shutdown(); err != nil {
			logger.Errorf("Plugin Manager: ERROR shutting down plugin '%s': %v", toStop[i].Name(), err)
		}
	}
}

// GetPlugin returns a registered plugin by name.
func (m *Manager) GetPlugin(name string) (Plugin, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, exists := m.plugins[name]
	return p, exists
}

// Names returns the registered plugin names, sorted.
func (m *Manager) Names() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	names := append([]string(nil), m.order...)
	sort.Strings(names)
	return names
}
