package editlog

import (
	"github.com/bethropolis/hollow/internal/logger"
	"github.com/bethropolis/hollow/internal/types"
)

const logTag = "editlog"

// noHint marks an unknown earliest-occurrence hint.
const noHint = -1

// Option configures a Log.
type Option func(*Log)

// WithoutScanHints disables the earliest-occurrence hints. Purges then scan
// the whole stack, which gives the same result more slowly.
func WithoutScanHints() Option {
	return func(l *Log) { l.hints = false }
}

// Log is the edit history of one document.
type Log struct {
	stack      []*Group
	current    Group
	multiframe bool
	index      int // number of applied groups; stack[index:] is the redo branch

	// Lower bounds of the first group containing a tool, texture or thing
	// record. noHint means there is none.
	earliestTool    int
	earliestTexture int
	earliestObject  int
	hints           bool

	// Set when an entity-selection-only group is kept in current instead of
	// being committed, so that it does not discard the redo branch.
	selectionHalted bool

	lastSave int
	hasSave  bool
}

// New returns an empty log. A fresh document has nothing unsaved.
func New(opts ...Option) *Log {
	l := &Log{
		earliestTool:    noHint,
		earliestTexture: noHint,
		earliestObject:  noHint,
		hints:           true,
		hasSave:         true,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Clear drops all history. Call it after loading a document.
func (l *Log) Clear() {
	hints := l.hints
	*l = *New()
	l.hints = hints
	logger.DebugTagf(logTag, "History: cleared")
}

// Len returns the number of committed groups, including the redo branch.
func (l *Log) Len() int { return len(l.stack) }

// Index returns the number of applied groups.
func (l *Log) Index() int { return l.index }

// Tag returns the tag of the committed group at position i.
func (l *Log) Tag(i int) string { return l.stack[i].Tag() }

// Group returns the committed group at position i.
func (l *Log) Group(i int) *Group { return l.stack[i] }

// CurrentEditLen returns the number of records pushed but not committed.
func (l *Log) CurrentEditLen() int { return l.current.Len() }

// SelectionHalted reports whether a selection-only group is waiting in the
// accumulator.
func (l *Log) SelectionHalted() bool { return l.selectionHalted }

// CanUndo reports whether Undo would do anything.
func (l *Log) CanUndo() bool { return l.index > 0 }

// CanRedo reports whether Redo would do anything.
func (l *Log) CanRedo() bool { return l.index < len(l.stack) }

// Push adds rec, applied to ids, to the current frame's group. A halted
// selection group is committed first, as its own group, unless rec is one
// more entity selection change.
func (l *Log) Push(rec Record, ids ...types.ID) {
	if l.selectionHalted && !rec.Kind().EntitySelection() {
		l.forceCommit()
	}
	l.current.Push(rec, ids...)
}

// PushIfAny is Push for record families that accept an empty cluster: it
// does nothing when ids is empty.
func (l *Log) PushIfAny(rec Record, ids []types.ID) {
	if len(ids) == 0 {
		return
	}
	l.Push(rec, ids...)
}

// OverrideEditTag sets the tag of the current frame's group.
func (l *Log) OverrideEditTag(tag string) {
	l.current.OverrideTag(tag)
}

// MultiframeEdit reports whether a multiframe edit is open.
func (l *Log) MultiframeEdit() bool { return l.multiframe }

// StartMultiframeEdit makes the following frames accumulate into a single
// group until EndMultiframeEdit.
func (l *Log) StartMultiframeEdit() {
	if l.multiframe {
		violate("StartMultiframeEdit", "multiframe edit already open")
	}
	l.multiframe = true
	logger.DebugTagf(logTag, "History: multiframe edit started")
}

// EndMultiframeEdit closes the multiframe edit. The group is committed by
// the next CommitFrame.
func (l *Log) EndMultiframeEdit() {
	if !l.multiframe {
		violate("EndMultiframeEdit", "no multiframe edit open")
	}
	l.multiframe = false
	logger.DebugTagf(logTag, "History: multiframe edit ended with %d records", l.current.Len())
}

// CommitFrame moves the frame's group onto the stack. It must be called
// once at the end of every frame.
func (l *Log) CommitFrame() {
	if l.current.Empty() || l.multiframe {
		return
	}
	if l.selectionHalted {
		return
	}
	if l.index != len(l.stack) && l.current.OnlyEntitySelectionEdits() {
		l.selectionHalted = true
		logger.DebugTagf(logTag, "History: selection-only group halted at index %d", l.index)
		return
	}
	l.commit()
}

func (l *Log) forceCommit() {
	if l.current.Empty() || l.multiframe {
		if l.selectionHalted {
			violate("commit", "selection halted with nothing to commit")
		}
		return
	}
	l.selectionHalted = false
	l.commit()
}

func (l *Log) commit() {
	if l.current.Empty() || l.multiframe || l.selectionHalted {
		violate("commit", "unsuitable state: empty %t, multiframe %t, halted %t",
			l.current.Empty(), l.multiframe, l.selectionHalted)
	}

	if l.index != len(l.stack) {
		logger.DebugTagf(logTag, "History: discarding %d redo groups", len(l.stack)-l.index)
		for i := l.index; i < len(l.stack); i++ {
			l.stack[i] = nil
		}
		l.stack = l.stack[:l.index]
		if l.hasSave && l.lastSave > l.index {
			l.hasSave = false
			logger.DebugTagf(logTag, "History: save point discarded")
		}
	}

	pos := len(l.stack)
	updateHint(&l.earliestTool, l.current.ContainsToolEdit(), pos)
	updateHint(&l.earliestTexture, l.current.ContainsTextureEdit(), pos)
	updateHint(&l.earliestObject, l.current.ContainsObjectEdit(), pos)

	if l.hasSave && l.current.OnlySelectionEdits() {
		l.lastSave++
	}

	g := l.current
	l.current = Group{}
	l.stack = append(l.stack, &g)
	l.index++
	logger.DebugTagf(logTag, "History: committed %q (%d records). Index: %d, Count: %d",
		g.Tag(), g.Len(), l.index, len(l.stack))
}

func updateHint(hint *int, contains bool, pos int) {
	switch {
	case *hint == noHint:
		if contains {
			*hint = pos
		}
	case contains:
		*hint = min(*hint, pos)
	case *hint >= pos:
		// It pointed into the discarded branch.
		*hint = noHint
	}
}

// Undo reverts the last applied group.
func (l *Log) Undo(doc Document) {
	if l.index == 0 {
		logger.DebugTagf(logTag, "History: nothing to undo")
		return
	}
	if l.current.OnlyEntitySelectionEdits() {
		l.forceCommit()
	}

	l.index--
	g := l.stack[l.index]
	logger.DebugTagf(logTag, "History: undoing %q at %d", g.Tag(), l.index)
	g.Undo(doc)
	if l.hasSave && g.OnlySelectionEdits() {
		l.lastSave--
	}
}

// Redo reapplies the first group of the redo branch.
func (l *Log) Redo(doc Document) {
	if l.index == len(l.stack) {
		logger.DebugTagf(logTag, "History: nothing to redo")
		return
	}
	if l.current.OnlyEntitySelectionEdits() {
		// The speculative selection is live, roll it back before replaying.
		l.current.Undo(doc)
		l.current.clear()
		l.selectionHalted = false
	}

	g := l.stack[l.index]
	logger.DebugTagf(logTag, "History: redoing %q at %d", g.Tag(), l.index)
	g.Redo(doc)
	if l.hasSave && g.OnlySelectionEdits() {
		l.lastSave++
	}
	l.index++
}

// ResetLastSaveEdit records the current position as saved. Call it once
// after every successful save.
func (l *Log) ResetLastSaveEdit() {
	l.lastSave = l.index
	l.hasSave = true
	logger.DebugTagf(logTag, "History: save point set at %d", l.index)
}

// NoUnsavedEdits reports whether the document matches its last save.
// Groups made only of free-draw edits do not count as changes. When the
// save point was lost to a discarded branch the document is always
// considered unsaved.
func (l *Log) NoUnsavedEdits() bool {
	if !l.hasSave {
		return false
	}
	if l.index == l.lastSave {
		return true
	}
	if l.index < l.lastSave {
		return false
	}
	for _, g := range l.stack[max(l.lastSave, 0):l.index] {
		if !g.OnlyFreeDrawEdits() {
			return false
		}
	}
	return true
}
