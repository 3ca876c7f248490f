// Package tool implements the interactive map editing tools. A tool mutates
// the document live and pushes the matching records to the edit log. The
// Manager tracks the editing target of the active tool and purges the
// records that stop making sense when the target changes.
package tool

import (
	"strings"

	"github.com/bethropolis/hollow/internal/document"
	"github.com/bethropolis/hollow/internal/editlog"
	"github.com/bethropolis/hollow/internal/types"
)

// Kind identifies a tool.
type Kind int

const (
	Entity Kind = iota
	Draw
	Vertex
	Path
	Thing
	Paint
	Subtract
	numKinds
)

var kindNames = [...]string{"entity", "draw", "vertex", "path", "thing", "paint", "subtract"}

func (k Kind) String() string {
	if k >= 0 && k < numKinds {
		return kindNames[k]
	}
	return "unknown"
}

// ParseKind looks a tool up by name.
func ParseKind(s string) (Kind, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, n := range kindNames {
		if n == s {
			return Kind(i), true
		}
	}
	return 0, false
}

// Context is the state every tool edits.
type Context struct {
	Doc  *document.Document
	Log  *editlog.Log
	Grid float64
}

// pickRadius is how close the cursor must be to a thing, vertex or node.
func (c *Context) pickRadius() float64 {
	if c.Grid <= 0 {
		return 1
	}
	return c.Grid / 2
}

// Tool is an interactive editing tool. Methods that do not apply to a tool
// do nothing.
type Tool interface {
	Kind() Kind
	// Target is what the tool currently edits.
	Target(c *Context) editlog.Target
	// Click is the primary action at the cursor.
	Click(c *Context, at types.Vec2)
	// Toggle is the secondary action at the cursor.
	Toggle(c *Context, at types.Vec2)
	// Nudge moves whatever the tool has selected.
	Nudge(c *Context, delta types.Vec2)
	Confirm(c *Context)
	Delete(c *Context)
	Cancel(c *Context)
	// leave drops the transient state of the tool when another one is
	// picked. It records nothing.
	leave(c *Context)
}

// base provides the no-op methods.
type base struct{}

func (base) Click(*Context, types.Vec2)  {}
func (base) Toggle(*Context, types.Vec2) {}
func (base) Nudge(*Context, types.Vec2)  {}
func (base) Confirm(*Context)            {}
func (base) Delete(*Context)             {}
func (base) Cancel(*Context)             {}
func (base) leave(*Context)              {}

// Manager owns the tools and the active one.
type Manager struct {
	ctx    Context
	tools  [numKinds]Tool
	active Kind
	target editlog.Target
}

// NewManager returns a manager with the entity tool active.
func NewManager(doc *document.Document, log *editlog.Log, grid float64) *Manager {
	m := &Manager{
		ctx: Context{Doc: doc, Log: log, Grid: grid},
		tools: [numKinds]Tool{
			Entity:   &EntityTool{},
			Draw:     &DrawTool{},
			Vertex:   &VertexTool{},
			Path:     &PathTool{},
			Thing:    &ThingTool{kind: 1},
			Paint:    &PaintTool{},
			Subtract: &SubtractTool{},
		},
	}
	m.target = m.tools[Entity].Target(&m.ctx)
	return m
}

// Context returns the editing context shared by the tools.
func (m *Manager) Context() *Context { return &m.ctx }

// Active returns the kind of the active tool.
func (m *Manager) Active() Kind { return m.active }

// Tool returns the tool of kind k.
func (m *Manager) Tool(k Kind) Tool { return m.tools[k] }

// Current returns the active tool.
func (m *Manager) Current() Tool { return m.tools[m.active] }

// Target returns the last synchronized editing target.
func (m *Manager) Target() editlog.Target { return m.target }

// Reset points the tools at a freshly loaded document and log.
func (m *Manager) Reset(doc *document.Document, log *editlog.Log) {
	for _, t := range m.tools {
		t.leave(&m.ctx)
	}
	m.ctx.Doc, m.ctx.Log = doc, log
	m.target = m.Current().Target(&m.ctx)
}

// EndGestures closes a drag still in progress, so the log has no open
// multiframe edit.
func (m *Manager) EndGestures() {
	if et, ok := m.tools[Entity].(*EntityTool); ok {
		et.EndDrag(&m.ctx)
	}
}

// Switch makes k the active tool.
func (m *Manager) Switch(k Kind) {
	if k == m.active || k < 0 || k >= numKinds {
		return
	}
	m.Current().leave(&m.ctx)
	m.active = k
	m.Sync()
}

// Sync recomputes the editing target and purges the tool records the
// change invalidated. Call it after every tool action.
func (m *Manager) Sync() {
	prev, next := m.target, m.Current().Target(&m.ctx)
	if prev == next {
		return
	}
	m.target = next
	if !editlog.RequiresToolPurge(prev, next) {
		return
	}
	// Records pushed earlier in this frame must be on the stack to be purged.
	m.ctx.Log.CommitFrame()
	m.ctx.Log.PurgeToolEdits(prev, next)
	if family(prev.Mode) != family(next.Mode) {
		m.ctx.Doc.ClearFreeDraw()
		m.ctx.Doc.FinalizeDrawn()
	}
}

// family groups the targets of a single tool.
func family(m editlog.TargetMode) editlog.TargetMode {
	switch m {
	case editlog.TargetBrushFreeDraw:
		return editlog.TargetDraw
	case editlog.TargetPathFreeDraw:
		return editlog.TargetPath
	case editlog.TargetSides:
		return editlog.TargetVertexes
	}
	return m
}

// entityBounds returns the bounding box of brushes and things.
func entityBounds(doc *document.Document, ids []types.ID) (lo, hi types.Vec2, ok bool) {
	grow := func(a, b types.Vec2) {
		if !ok {
			lo, hi, ok = a, b, true
			return
		}
		lo = types.V(min(lo.X, a.X), min(lo.Y, a.Y))
		hi = types.V(max(hi.X, b.X), max(hi.Y, b.Y))
	}
	for _, id := range ids {
		if b, found := doc.Brush(id); found {
			grow(b.Data.Polygon.Bounds())
		} else if t, found := doc.Thing(id); found {
			grow(t.Data.Pos, t.Data.Pos)
		}
	}
	return lo, hi, ok
}

// deselectAll clears the entity selection and records it.
func deselectAll(c *Context) {
	ids := c.Doc.Selected()
	for _, id := range ids {
		c.Doc.DeselectEntity(id)
	}
	c.Log.EntityDeselection(ids...)
}
