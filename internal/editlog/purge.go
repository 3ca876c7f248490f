package editlog

import "github.com/bethropolis/hollow/internal/logger"

// purge walks the stack from the hint and removes the groups the purge
// empties. The scanned hint is reset by the caller; the other hints, the
// cursor and the save point are shifted for every removed group below them.
func (l *Log) purge(from int, purge func(*Group) bool, scanned *int) int {
	if !l.hints {
		from = 0
	} else if from == noHint {
		return 0
	}

	removed := 0
	for i := from; i < len(l.stack); {
		if !purge(l.stack[i]) {
			i++
			continue
		}
		copy(l.stack[i:], l.stack[i+1:])
		l.stack[len(l.stack)-1] = nil
		l.stack = l.stack[:len(l.stack)-1]
		removed++

		if i < l.index {
			l.index--
		}
		if l.hasSave && i < l.lastSave {
			l.lastSave--
		}
		for _, h := range []*int{&l.earliestTool, &l.earliestTexture, &l.earliestObject} {
			if h != scanned && *h != noHint && i < *h {
				*h--
			}
		}
	}
	return removed
}

// PurgeToolEdits removes the records that only made sense for the tool
// being left. Drawn brushes and things are kept as regular spawns. It
// panics if the transition does not require a purge.
func (l *Log) PurgeToolEdits(prev, next Target) {
	if !RequiresToolPurge(prev, next) {
		violate("PurgeToolEdits", "switching from %s to %s does not require a purge", prev.Mode, next.Mode)
	}
	if freeDrawExit(prev, next) {
		l.PurgeFreeDrawEdits()
		return
	}

	from := l.earliestTool
	l.earliestTool = noHint
	n := l.purge(from, (*Group).PurgeToolEdits, &l.earliestTool)
	l.logPurge("tool", n)
}

// PurgeFreeDrawEdits removes the free-draw records.
func (l *Log) PurgeFreeDrawEdits() {
	// Other tool records may remain, so the tool hint stays a valid lower
	// bound and is not reset.
	n := l.purge(l.earliestTool, (*Group).PurgeFreeDrawEdits, &l.earliestTool)
	l.logPurge("free draw", n)
}

// PurgeTextureEdits removes the records referencing the texture catalog.
// Call it after the catalog was reloaded.
func (l *Log) PurgeTextureEdits() {
	from := l.earliestTexture
	l.earliestTexture = noHint
	n := l.purge(from, (*Group).PurgeTextureEdits, &l.earliestTexture)
	l.logPurge("texture", n)
}

// PurgeObjectEdits removes the records referencing the things catalog.
// Call it after the catalog was reloaded.
func (l *Log) PurgeObjectEdits() {
	from := l.earliestObject
	l.earliestObject = noHint
	n := l.purge(from, (*Group).PurgeObjectEdits, &l.earliestObject)
	l.logPurge("object", n)
}

func (l *Log) logPurge(scope string, removed int) {
	logger.DebugTagf(logTag, "History: %s purge removed %d groups. Index: %d, Count: %d",
		scope, removed, l.index, len(l.stack))
}
