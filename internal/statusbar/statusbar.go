// internal/statusbar/statusbar.go
package statusbar

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/bethropolis/hollow/internal/config"
	"github.com/bethropolis/hollow/internal/theme"
	"github.com/bethropolis/hollow/internal/types"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

// Config defines the behavior of the status bar.
type Config struct {
	MessageTimeout time.Duration
}

// DefaultConfig provides sensible defaults.
func DefaultConfig() Config {
	return Config{MessageTimeout: config.MessageTimeout}
}

// StatusBar is the bottom line of the screen. It shows the map, the active
// tool, the cursor and the history position, or a temporary message.
type StatusBar struct {
	config Config
	mu     sync.RWMutex

	filePath     string
	isModified   bool
	cursor       types.Vec2
	editorMode   string
	tool         string
	historyIndex int
	historyLen   int

	tempMessage     string
	tempMessageTime time.Time
	commandLine     *string
}

// New creates a new StatusBar with the given configuration.
func New(config Config) *StatusBar {
	return &StatusBar{config: config}
}

// SetFileInfo updates the map path and the unsaved marker.
func (sb *StatusBar) SetFileInfo(path string, modified bool) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.filePath = path
	sb.isModified = modified
}

// SetCursorInfo updates the cursor position shown.
func (sb *StatusBar) SetCursorInfo(pos types.Vec2) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.cursor = pos
}

// SetEditorMode updates the displayed input mode.
func (sb *StatusBar) SetEditorMode(mode string) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.editorMode = mode
}

// SetToolInfo updates the displayed tool.
func (sb *StatusBar) SetToolInfo(tool string) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.tool = tool
}

// SetHistoryInfo updates the history position, index out of length.
func (sb *StatusBar) SetHistoryInfo(index, length int) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.historyIndex, sb.historyLen = index, length
}

// SetTemporaryMessage displays a message for a configured duration.
func (sb *StatusBar) SetTemporaryMessage(format string, args ...interface{}) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.tempMessage = fmt.Sprintf(format, args...)
	sb.tempMessageTime = time.Now()
}

// ResetTemporaryMessage clears any temporary message being displayed
func (sb *StatusBar) ResetTemporaryMessage() {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.tempMessage = ""
	sb.tempMessageTime = time.Time{}
}

// Message returns the temporary message, or "" once it expired.
func (sb *StatusBar) Message() string {
	sb.mu.RLock()
	defer sb.mu.RUnlock()
	if sb.tempMessage == "" || time.Since(sb.tempMessageTime) > sb.config.MessageTimeout {
		return ""
	}
	return sb.tempMessage
}

// SetCommandLine shows the ':' prompt with text. It has priority over
// temporary messages until ClearCommandLine.
func (sb *StatusBar) SetCommandLine(text string) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.commandLine = &text
}

// ClearCommandLine hides the ':' prompt.
func (sb *StatusBar) ClearCommandLine() {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.commandLine = nil
}

// text returns the parts of the default status line: the map path, the
// rest of the left side and the right side.
func (sb *StatusBar) text() (path, rest, right string) {
	path = sb.filePath
	if path == "" {
		path = "[No Name]"
	}
	var parts []string
	if sb.tool != "" {
		parts = append(parts, sb.tool)
	}
	parts = append(parts, fmt.Sprintf("(%g, %g)", sb.cursor.X, sb.cursor.Y))
	if sb.editorMode != "" {
		parts = append(parts, sb.editorMode)
	}
	rest = " -- " + strings.Join(parts, " -- ")
	right = fmt.Sprintf("history %d/%d ", sb.historyIndex, sb.historyLen)
	return path, rest, right
}

// Draw renders the status bar on the last line of the screen.
func (sb *StatusBar) Draw(screen tcell.Screen, width, height int, th *theme.Theme) {
	if height <= 0 || width <= 0 {
		return
	}
	y := height - 1

	sb.mu.Lock()
	active := !sb.tempMessageTime.IsZero() && time.Since(sb.tempMessageTime) <= sb.config.MessageTimeout
	if !sb.tempMessageTime.IsZero() && !active {
		sb.tempMessage = ""
		sb.tempMessageTime = time.Time{}
	}

	base := th.GetStyle("StatusBar")
	var left, rest, right string
	leftStyle := base
	modified := false
	switch {
	case sb.commandLine != nil:
		left = ":" + *sb.commandLine
		leftStyle = th.GetStyle("StatusBar.command")
	case active:
		left = sb.tempMessage
		leftStyle = th.GetStyle("StatusBar.message")
	default:
		left, rest, right = sb.text()
		modified = sb.isModified
	}
	sb.mu.Unlock()

	for x := 0; x < width; x++ {
		screen.SetContent(x, y, ' ', nil, base)
	}
	x := drawText(screen, 0, y, width, left, leftStyle)
	if modified {
		x = drawText(screen, x, y, width, " [+]", th.GetStyle("StatusBar.modified"))
	}
	x = drawText(screen, x, y, width, rest, base)
	if right != "" {
		if start := width - uniseg.StringWidth(right); start > x {
			drawText(screen, start, y, width, right, base)
		}
	}
}

// drawText draws text from x up to maxX by grapheme cluster and returns
// the column after the last cluster drawn.
func drawText(screen tcell.Screen, x, y, maxX int, text string, style tcell.Style) int {
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		w := gr.Width()
		if x+w > maxX {
			break
		}
		runes := gr.Runes()
		screen.SetContent(x, y, runes[0], runes[1:], style)
		x += w
	}
	return x
}
