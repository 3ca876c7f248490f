// Package core ties the map document, its edit log and the tools together.
// Every user action runs as one frame: the action mutates the document,
// the tool manager resynchronizes its target and the log commits.
package core

import (
	"errors"
	"fmt"
	"io/fs"
	"sync"

	"github.com/bethropolis/hollow/internal/clipboard"
	"github.com/bethropolis/hollow/internal/document"
	"github.com/bethropolis/hollow/internal/editlog"
	"github.com/bethropolis/hollow/internal/event"
	"github.com/bethropolis/hollow/internal/logger"
	"github.com/bethropolis/hollow/internal/mapfile"
	"github.com/bethropolis/hollow/internal/tool"
	"github.com/bethropolis/hollow/internal/types"
)

const (
	minZoom = 1
	maxZoom = 8
)

// Options configures a new Editor.
type Options struct {
	Grid      float64
	ScanHints bool
	Clipboard clipboard.Backend
	Catalog   *mapfile.Catalog
}

// Editor is the map editor state shared by the input handlers, the
// renderer and the plugins. All methods are safe for concurrent use.
type Editor struct {
	mu sync.Mutex

	doc     *document.Document
	log     *editlog.Log
	logOpts []editlog.Option
	tools   *tool.Manager

	cursor   types.Vec2
	grid     float64
	zoom     int
	filePath string

	clip       *clipboard.Manager
	copyOrigin types.Vec2
	catalog    *mapfile.Catalog

	eventManager *event.Manager
}

// pending is an event raised under the lock and dispatched after it.
type pending struct {
	t    event.Type
	data interface{}
}

// NewEditor creates an editor on an empty, unnamed map.
func NewEditor(opts Options) *Editor {
	if opts.Grid <= 0 {
		opts.Grid = 1
	}
	if opts.Clipboard == nil {
		opts.Clipboard = &clipboard.Memory{}
	}
	if opts.Catalog == nil {
		opts.Catalog = mapfile.DefaultCatalog()
	}
	e := &Editor{
		grid:    opts.Grid,
		zoom:    minZoom,
		clip:    clipboard.NewManager(opts.Clipboard),
		catalog: opts.Catalog,
	}
	if !opts.ScanHints {
		e.logOpts = append(e.logOpts, editlog.WithoutScanHints())
	}
	e.doc = document.New()
	e.log = editlog.New(e.logOpts...)
	e.tools = tool.NewManager(e.doc, e.log, e.grid)
	return e
}

// SetEventManager sets the bus the editor reports changes on.
func (e *Editor) SetEventManager(m *event.Manager) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.eventManager = m
}

func (e *Editor) dispatch(events []pending) {
	e.mu.Lock()
	m := e.eventManager
	e.mu.Unlock()
	if m == nil {
		return
	}
	for _, ev := range events {
		m.Dispatch(ev.t, ev.data)
	}
}

// Frame runs fn as one editor frame. The records fn pushes are committed
// together when the frame ends.
func (e *Editor) Frame(fn func(c *tool.Context)) {
	e.mu.Lock()
	events := e.frameLocked(fn)
	e.mu.Unlock()
	e.dispatch(events)
}

func (e *Editor) frameLocked(fn func(c *tool.Context)) []pending {
	length, index := e.log.Len(), e.log.Index()
	fn(e.tools.Context())
	e.tools.Sync()
	e.log.CommitFrame()
	if e.log.Len() == length && e.log.Index() == index {
		return nil
	}
	data := event.MapModifiedData{Index: e.log.Index(), Len: e.log.Len()}
	if data.Index > 0 {
		data.Tag = e.log.Tag(data.Index - 1)
	}
	return []pending{{event.TypeMapModified, data}}
}

// View runs fn with the editor locked. fn must not mutate anything.
func (e *Editor) View(fn func(doc *document.Document, log *editlog.Log, tools *tool.Manager)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	fn(e.doc, e.log, e.tools)
}

// Undo reverts the last history entry. It returns false when there is
// nothing to undo.
func (e *Editor) Undo() bool {
	return e.move(func() bool {
		if !e.log.CanUndo() {
			return false
		}
		e.log.Undo(e.doc)
		return true
	})
}

// Redo reapplies the next history entry. It returns false when there is
// nothing to redo.
func (e *Editor) Redo() bool {
	return e.move(func() bool {
		if !e.log.CanRedo() {
			return false
		}
		e.log.Redo(e.doc)
		return true
	})
}

// Jump undoes or redoes until the log index is k. k is clamped to the
// history bounds.
func (e *Editor) Jump(k int) bool {
	return e.move(func() bool {
		k = max(0, min(k, e.log.Len()))
		moved := false
		for e.log.Index() > k {
			e.log.Undo(e.doc)
			moved = true
		}
		for e.log.Index() < k {
			e.log.Redo(e.doc)
			moved = true
		}
		return moved
	})
}

func (e *Editor) move(step func() bool) bool {
	e.mu.Lock()
	// An open drag and the frame in progress become history first.
	events := e.frameLocked(func(*tool.Context) { e.tools.EndGestures() })
	from := e.log.Index()
	moved := step()
	if moved {
		e.tools.Sync()
	}
	to := e.log.Index()
	e.mu.Unlock()

	if moved {
		logger.DebugTagf("core", "History moved %d -> %d", from, to)
		events = append(events, pending{event.TypeHistoryMoved, event.HistoryMovedData{From: from, To: to}})
	}
	e.dispatch(events)
	return moved
}

// FilePath returns the path of the open map, empty for a new map.
func (e *Editor) FilePath() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.filePath
}

// Modified reports whether the map differs from its last saved state.
func (e *Editor) Modified() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return !e.log.NoUnsavedEdits()
}

// Open loads the map at path. A missing file opens an empty map that will
// be created on the first save.
func (e *Editor) Open(path string) error {
	doc, err := mapfile.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Infof("Map '%s' does not exist, starting an empty map", path)
		doc, err = document.New(), nil
	}
	if err != nil {
		return err
	}

	e.mu.Lock()
	e.replaceLocked(doc)
	e.filePath = path
	e.mu.Unlock()

	e.dispatch([]pending{{event.TypeMapLoaded, event.MapLoadedData{FilePath: path}}})
	return nil
}

// Reload discards the history and rereads the open map from disk.
func (e *Editor) Reload() error {
	path := e.FilePath()
	if path == "" {
		return fmt.Errorf("no file name")
	}
	return e.Open(path)
}

func (e *Editor) replaceLocked(doc *document.Document) {
	e.tools.Reset(doc, e.log)
	e.log.Clear()
	e.doc = doc
}

// Save writes the map. An optional path saves under a new name.
func (e *Editor) Save(path ...string) error {
	e.mu.Lock()
	target := e.filePath
	if len(path) > 0 && path[0] != "" {
		target = path[0]
	}
	if target == "" {
		e.mu.Unlock()
		return fmt.Errorf("no file name")
	}
	events := e.frameLocked(func(*tool.Context) { e.tools.EndGestures() })
	err := mapfile.Save(target, e.doc)
	if err == nil {
		e.log.ResetLastSaveEdit()
		e.filePath = target
	}
	e.mu.Unlock()

	if err != nil {
		e.dispatch(events)
		return err
	}
	e.dispatch(append(events, pending{event.TypeMapSaved, event.MapSavedData{FilePath: target}}))
	return nil
}

// Catalog returns the texture and thing catalog.
func (e *Editor) Catalog() *mapfile.Catalog { return e.catalog }

// ReloadTextures rereads the texture catalog. Texture edits refer to the
// old catalog, so they are purged from the history.
func (e *Editor) ReloadTextures() (int, error) {
	return e.reloadCatalog(true, e.catalog.ReloadTextures, (*editlog.Log).PurgeTextureEdits)
}

// ReloadThings rereads the thing catalog and purges the object edits.
func (e *Editor) ReloadThings() (int, error) {
	return e.reloadCatalog(false, e.catalog.ReloadThings, (*editlog.Log).PurgeObjectEdits)
}

func (e *Editor) reloadCatalog(textures bool, reload func() error, purge func(*editlog.Log)) (int, error) {
	e.mu.Lock()
	if err := reload(); err != nil {
		e.mu.Unlock()
		return 0, fmt.Errorf("failed to reload catalog: %w", err)
	}
	e.log.CommitFrame()
	before := e.log.Len()
	purge(e.log)
	purged := before - e.log.Len()
	e.mu.Unlock()

	e.dispatch([]pending{{event.TypeCatalogReloaded, event.CatalogReloadedData{
		Textures: textures,
		Things:   !textures,
		Purged:   purged,
	}}})
	return purged, nil
}

// Tool returns the active tool kind.
func (e *Editor) Tool() tool.Kind {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.tools.Active()
}

// SwitchTool activates the tool of kind k.
func (e *Editor) SwitchTool(k tool.Kind) {
	var changed bool
	e.Frame(func(*tool.Context) {
		changed = e.tools.Active() != k
		e.tools.Switch(k)
	})
	if changed {
		e.dispatch([]pending{{event.TypeToolChanged, event.ToolChangedData{Tool: k.String()}}})
	}
}

// Act runs fn on the active tool at the cursor as one frame.
func (e *Editor) Act(fn func(t tool.Tool, c *tool.Context, at types.Vec2)) {
	e.Frame(func(c *tool.Context) {
		fn(e.tools.Current(), c, e.cursor)
	})
}

// Cursor returns the cursor position in map units.
func (e *Editor) Cursor() types.Vec2 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.cursor
}

// Grid returns the cursor step.
func (e *Editor) Grid() float64 { return e.grid }

// MoveCursor moves the cursor by dx, dy grid steps. A drag in progress
// moves the selection along.
func (e *Editor) MoveCursor(dx, dy int) {
	delta := types.V(float64(dx)*e.grid, float64(dy)*e.grid)
	e.Frame(func(c *tool.Context) {
		e.cursor = e.cursor.Add(delta)
		if et, ok := e.tools.Current().(*tool.EntityTool); ok && et.Dragging() {
			et.DragBy(c, delta)
		}
	})
}

// SetCursor places the cursor at p.
func (e *Editor) SetCursor(p types.Vec2) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cursor = p
}

// ToggleDrag starts or ends a drag of the selection with the entity tool.
// It returns whether a drag is in progress afterwards.
func (e *Editor) ToggleDrag() bool {
	dragging := false
	e.Frame(func(c *tool.Context) {
		et, ok := e.tools.Current().(*tool.EntityTool)
		if !ok {
			return
		}
		if et.Dragging() {
			et.EndDrag(c)
			return
		}
		dragging = et.BeginDrag(c)
	})
	return dragging
}

// Zoom returns the number of screen cells per grid step.
func (e *Editor) Zoom() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.zoom
}

// ZoomBy changes the zoom level by delta steps.
func (e *Editor) ZoomBy(delta int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.zoom = max(minZoom, min(maxZoom, e.zoom+delta))
}
