// Package autosave periodically writes the open map when it has unsaved
// edits.
package autosave

import (
	"sync"
	"time"

	"github.com/bethropolis/hollow/internal/logger"
	"github.com/bethropolis/hollow/internal/plugin"
)

// Ensure AutoSave implements plugin.Plugin
var _ plugin.Plugin = (*AutoSave)(nil)

const (
	defaultEnabled  = false
	defaultInterval = 1 * time.Minute
)

// AutoSave saves the map every interval while the edit log reports unsaved
// edits. Maps without a file name are skipped.
type AutoSave struct {
	api plugin.EditorAPI

	mutex    sync.RWMutex
	enabled  bool
	interval time.Duration

	stopChan chan struct{}
	wg       sync.WaitGroup
}

// New creates a new instance of the AutoSave plugin.
func New() plugin.Plugin {
	return &AutoSave{
		enabled:  defaultEnabled,
		interval: defaultInterval,
	}
}

// Name returns the unique name of the plugin.
func (p *AutoSave) Name() string {
	return "autosave"
}

// Initialize reads configuration and starts the auto-save loop if enabled.
func (p *AutoSave) Initialize(api plugin.EditorAPI) error {
	p.api = api
	name := p.Name()

	p.mutex.Lock()
	if v, ok := api.GetPluginConfigValue(name, "enabled"); ok {
		if b, isBool := v.(bool); isBool {
			p.enabled = b
		} else {
			logger.Warnf("%s: Invalid type for 'enabled' config (%T), using default (%v)", name, v, p.enabled)
		}
	}
	p.interval = api.GetPluginDuration(name, "interval", defaultInterval)
	enabled, interval := p.enabled, p.interval
	p.mutex.Unlock()

	logger.Infof("%s initialized. Enabled: %v, Interval: %v", name, enabled, interval)

	if enabled {
		p.stopChan = make(chan struct{})
		p.wg.Add(1)
		go p.saverLoop(interval)
	}
	return nil
}

// Shutdown signals the saver goroutine to stop and waits for it.
func (p *AutoSave) Shutdown() error {
	if p.stopChan != nil {
		close(p.stopChan)
		p.wg.Wait()
		p.stopChan = nil
		logger.Debugf("%s: Saver goroutine stopped.", p.Name())
	}
	return nil
}

func (p *AutoSave) saverLoop(interval time.Duration) {
	defer p.wg.Done()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			p.saveIfModified()
		case <-p.stopChan:
			return
		}
	}
}

func (p *AutoSave) saveIfModified() {
	if !p.api.HasUnsavedEdits() {
		return
	}
	path := p.api.MapFilePath()
	if path == "" {
		logger.Debugf("%s: Map has unsaved edits but no file name, skipping.", p.Name())
		return
	}
	if err := p.api.SaveMap(); err != nil {
		logger.Errorf("%s: Auto-save failed for '%s': %v", p.Name(), path, err)
		return
	}
	logger.Infof("%s: Auto-saved '%s'", p.Name(), path)
}
