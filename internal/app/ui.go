package app

import (
	"github.com/bethropolis/hollow/internal/config"
	"github.com/bethropolis/hollow/internal/document"
	"github.com/bethropolis/hollow/internal/editlog"
	"github.com/bethropolis/hollow/internal/historyview"
	"github.com/bethropolis/hollow/internal/logger"
	"github.com/bethropolis/hollow/internal/tool"
	"github.com/bethropolis/hollow/internal/tui"
)

// layout splits the screen into the map view, the history panel and the
// status bar.
func (a *App) layout(width, height int) (mapRect, historyRect historyview.Rect) {
	viewHeight := max(0, height-a.cfg.Editor.StatusBarHeight)
	mapRect = historyview.Rect{W: width, H: viewHeight}
	if !a.showHistory || width < 2*config.MinHistoryWidth {
		return mapRect, historyview.Rect{}
	}
	w := max(config.MinHistoryWidth, min(a.cfg.Editor.HistoryWidth, width/2))
	mapRect.W = width - w
	historyRect = historyview.Rect{X: mapRect.W, W: w, H: viewHeight}
	return mapRect, historyRect
}

// drawEditor clears screen and redraws all components.
func (a *App) drawEditor() {
	a.updateStatusBarContent()

	currentTheme := a.themeManager.Current()
	screen := a.tuiManager.GetScreen()
	width, height := a.tuiManager.Size()

	cursor, zoom, grid := a.editor.Cursor(), a.editor.Zoom(), a.editor.Grid()

	a.mu.Lock()
	defer a.mu.Unlock()

	mapRect, historyRect := a.layout(width, height)
	logger.DebugTagf("draw", "drawEditor: screen %dx%d, map %dx%d, history width %d", width, height, mapRect.W, mapRect.H, historyRect.W)

	a.viewport = tui.NewViewport(mapRect.X, mapRect.Y, mapRect.W, mapRect.H, cursor, grid, zoom)

	a.tuiManager.Clear()
	a.editor.View(func(doc *document.Document, log *editlog.Log, tools *tool.Manager) {
		tui.DrawMap(screen, a.viewport, doc, tui.Scene{Cursor: cursor, Grid: grid, Tools: tools}, currentTheme)
		if historyRect.W > 0 {
			a.historyPanel.Draw(screen, historyRect, log, currentTheme)
		}
	})
	a.statusBar.Draw(screen, width, height, currentTheme)
	a.tuiManager.Show()
}

// updateStatusBarContent pushes current editor state to the status bar component.
func (a *App) updateStatusBarContent() {
	a.statusBar.SetFileInfo(a.editor.FilePath(), a.editor.Modified())
	a.statusBar.SetCursorInfo(a.editor.Cursor())
	a.statusBar.SetToolInfo(a.editor.Tool().String())

	var index, length int
	a.editor.View(func(_ *document.Document, log *editlog.Log, _ *tool.Manager) {
		index, length = log.Index(), log.Len()
	})
	a.statusBar.SetHistoryInfo(index, length)
}
