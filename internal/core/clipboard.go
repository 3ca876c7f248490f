package core

import (
	"github.com/bethropolis/hollow/internal/logger"
	"github.com/bethropolis/hollow/internal/tool"
)

// Copy copies the selected entities. Pasting later places them relative
// to the cursor position at copy time.
func (e *Editor) Copy() (int, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	n, err := e.clip.Copy(e.doc)
	if err == nil && n > 0 {
		e.copyOrigin = e.cursor
	}
	return n, err
}

// Cut copies the selected entities and despawns them as one history entry.
func (e *Editor) Cut() (int, error) {
	var (
		n   int
		err error
	)
	e.Frame(func(c *tool.Context) {
		n, err = e.clip.Cut(c.Doc, c.Log)
		if err == nil && n > 0 {
			e.copyOrigin = e.cursor
		}
	})
	return n, err
}

// Paste spawns the clipboard entities shifted by the cursor movement since
// the copy. The pasted entities become the selection.
func (e *Editor) Paste() (int, error) {
	var (
		n   int
		err error
	)
	e.Frame(func(c *tool.Context) {
		offset := e.cursor.Sub(e.copyOrigin)
		ids, perr := e.clip.Paste(c.Doc, c.Log, offset)
		if perr != nil {
			err = perr
			return
		}
		n = len(ids)
	})
	if err != nil {
		logger.Warnf("Paste failed: %v", err)
	}
	return n, err
}
