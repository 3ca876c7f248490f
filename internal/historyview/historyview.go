// Package historyview draws the edit history as a list on the side of the
// screen and maps clicks on it to history indexes.
//
// Row 0 is the state before any edit. Row k is the state after the k-th
// committed group, labelled with that group's tag. The row matching the
// log index is the current state; rows below it form the redo branch.
package historyview

import (
	"fmt"

	"github.com/bethropolis/hollow/internal/theme"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

// History is the read-only view of the edit log the panel draws.
type History interface {
	Len() int
	Index() int
	Tag(i int) string
}

// Rect is a screen area.
type Rect struct {
	X, Y, W, H int
}

func (r Rect) contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

const (
	title       = "History"
	startTag    = "Start"
	ellipsis    = "…"
	currentMark = '>'
)

// Panel is the history list. It remembers where it was last drawn and the
// scroll offset that keeps the current entry visible.
type Panel struct {
	rect   Rect
	offset int
	rows   int
}

// New returns an empty panel.
func New() *Panel { return &Panel{} }

// Rect returns the area the panel was last drawn in.
func (p *Panel) Rect() Rect { return p.rect }

// listArea is the part of rect below the title.
func (p *Panel) listArea() Rect {
	r := p.rect
	if r.H <= 1 {
		return Rect{X: r.X, Y: r.Y + r.H}
	}
	return Rect{X: r.X, Y: r.Y + 1, W: r.W, H: r.H - 1}
}

// scroll adjusts the offset so the current row is visible.
func (p *Panel) scroll(current, rows, height int) {
	if height <= 0 {
		p.offset = 0
		return
	}
	if current < p.offset {
		p.offset = current
	}
	if current >= p.offset+height {
		p.offset = current - height + 1
	}
	p.offset = max(0, min(p.offset, rows-height))
}

// Draw renders h into rect.
func (p *Panel) Draw(screen tcell.Screen, rect Rect, h History, th *theme.Theme) {
	p.rect = rect
	if rect.W <= 0 || rect.H <= 0 {
		return
	}
	base := th.GetStyle("History")
	for y := rect.Y; y < rect.Y+rect.H; y++ {
		for x := rect.X; x < rect.X+rect.W; x++ {
			screen.SetContent(x, y, ' ', nil, base)
		}
	}

	current := h.Index()
	p.rows = h.Len() + 1
	drawText(screen, rect.X, rect.Y, rect.W, fmt.Sprintf("%s %d/%d", title, current, h.Len()), th.GetStyle("History.title"))

	list := p.listArea()
	p.scroll(current, p.rows, list.H)
	for i := 0; i < list.H && p.offset+i < p.rows; i++ {
		row := p.offset + i
		style := base
		switch {
		case row == current:
			style = th.GetStyle("History.current")
		case row > current:
			style = th.GetStyle("History.redo")
		}
		label := startTag
		if row > 0 {
			label = h.Tag(row - 1)
		}
		marker := ' '
		if row == current {
			marker = currentMark
		}
		y := list.Y + i
		screen.SetContent(list.X, y, marker, nil, style)
		if list.W > 2 {
			drawText(screen, list.X+2, y, list.W-2, Truncate(label, list.W-2), style)
		}
	}
}

// IndexAt returns the history index of the row at screen position x, y,
// or false when the position is not on a row.
func (p *Panel) IndexAt(x, y int) (int, bool) {
	list := p.listArea()
	if !list.contains(x, y) {
		return 0, false
	}
	row := p.offset + y - list.Y
	if row >= p.rows {
		return 0, false
	}
	return row, true
}

// Truncate shortens s to at most width terminal columns, ending with an
// ellipsis when something was cut.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if uniseg.StringWidth(s) <= width {
		return s
	}
	limit := width - uniseg.StringWidth(ellipsis)
	out, used := "", 0
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		if used+gr.Width() > limit {
			break
		}
		out += gr.Str()
		used += gr.Width()
	}
	return out + ellipsis
}

func drawText(screen tcell.Screen, x, y, width int, text string, style tcell.Style) {
	maxX := x + width
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		w := gr.Width()
		if x+w > maxX {
			return
		}
		runes := gr.Runes()
		screen.SetContent(x, y, runes[0], runes[1:], style)
		x += w
	}
}
