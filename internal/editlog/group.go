package editlog

import "github.com/bethropolis/hollow/internal/types"

// Entry pairs a record with the entities it applies to.
type Entry struct {
	IDs    []types.ID
	Record Record
}

// Group is the set of records pushed during one frame, or during one
// multiframe edit. It is undone and redone as a unit.
type Group struct {
	tag     string
	entries []Entry
}

// Tag is the label shown in the history panel. It defaults to the tag of
// the first pushed record.
func (g *Group) Tag() string { return g.tag }

// Len returns the number of entries.
func (g *Group) Len() int { return len(g.entries) }

// Empty reports whether the group has no entries.
func (g *Group) Empty() bool { return len(g.entries) == 0 }

// Entries returns the entries in push order. The slice must not be modified.
func (g *Group) Entries() []Entry { return g.entries }

// Push appends rec, applied to ids. Records are never merged.
func (g *Group) Push(rec Record, ids ...types.ID) {
	k := rec.Kind()
	if !k.Arity().accepts(len(ids)) {
		violate("push", "%s takes %s, got %d", k, k.Arity(), len(ids))
	}
	if g.tag == "" {
		g.tag = k.String()
	}
	g.entries = append(g.entries, Entry{IDs: append([]types.ID(nil), ids...), Record: rec})
}

// OverrideTag replaces the tag, for actions made of several records.
func (g *Group) OverrideTag(tag string) {
	g.tag = tag
}

func (g *Group) clear() {
	g.tag = ""
	g.entries = nil
}

func (g *Group) any(s Scope) bool {
	for _, e := range g.entries {
		if e.Record.Kind().is(s) {
			return true
		}
	}
	return false
}

func (g *Group) all(s Scope) bool {
	if len(g.entries) == 0 {
		return false
	}
	for _, e := range g.entries {
		if !e.Record.Kind().is(s) {
			return false
		}
	}
	return true
}

// ContainsToolEdit reports whether any entry is tool scoped.
func (g *Group) ContainsToolEdit() bool { return g.any(ScopeTool) }

// ContainsTextureEdit reports whether any entry references the texture catalog.
func (g *Group) ContainsTextureEdit() bool { return g.any(ScopeTexture) }

// ContainsObjectEdit reports whether any entry references the things catalog.
func (g *Group) ContainsObjectEdit() bool { return g.any(ScopeObject) }

// ContainsFreeDrawEdit reports whether any entry edits the free-draw shape.
func (g *Group) ContainsFreeDrawEdit() bool { return g.any(ScopeFreeDraw) }

// OnlySelectionEdits reports whether the group is non-empty and made of
// selection changes only.
func (g *Group) OnlySelectionEdits() bool { return g.all(ScopeSelection) }

// OnlyEntitySelectionEdits reports whether the group is non-empty and made
// of entity (de)selections only.
func (g *Group) OnlyEntitySelectionEdits() bool { return g.all(ScopeEntitySelection) }

// OnlyFreeDrawEdits reports whether the group is non-empty and made of
// free-draw edits only.
func (g *Group) OnlyFreeDrawEdits() bool { return g.all(ScopeFreeDraw) }

// retain keeps the entries for which keep returns true and reports whether
// the group ended up empty.
func (g *Group) retain(keep func(e *Entry) bool) bool {
	kept := g.entries[:0]
	for i := range g.entries {
		if keep(&g.entries[i]) {
			kept = append(kept, g.entries[i])
		}
	}
	for i := len(kept); i < len(g.entries); i++ {
		g.entries[i] = Entry{}
	}
	g.entries = kept
	return len(g.entries) == 0
}

// PurgeToolEdits drops tool-scoped entries. Records that have a permanent
// counterpart are promoted to it and kept. It reports whether the group is
// now empty.
func (g *Group) PurgeToolEdits() bool {
	return g.retain(func(e *Entry) bool {
		p, ok := e.Record.(promoter)
		if ok {
			p.promote()
		}
		return !e.Record.Kind().ToolScoped()
	})
}

// PurgeFreeDrawEdits drops free-draw entries.
func (g *Group) PurgeFreeDrawEdits() bool {
	return g.retain(func(e *Entry) bool { return !e.Record.Kind().FreeDraw() })
}

// PurgeTextureEdits drops texture-scoped entries.
func (g *Group) PurgeTextureEdits() bool {
	return g.retain(func(e *Entry) bool { return !e.Record.Kind().TextureScoped() })
}

// PurgeObjectEdits drops thing-scoped entries.
func (g *Group) PurgeObjectEdits() bool {
	return g.retain(func(e *Entry) bool { return !e.Record.Kind().ObjectScoped() })
}

// Undo applies the entries in reverse push order.
func (g *Group) Undo(doc Document) {
	for i := len(g.entries) - 1; i >= 0; i-- {
		e := g.entries[i]
		e.Record.apply(doc, e.IDs)
	}
}

// Redo applies the entries in push order.
func (g *Group) Redo(doc Document) {
	for _, e := range g.entries {
		e.Record.apply(doc, e.IDs)
	}
}
