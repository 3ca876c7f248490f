// internal/theme/theme.go
package theme

import (
	"strings"

	"github.com/bethropolis/hollow/internal/logger"
	"github.com/gdamore/tcell/v2"
)

// Theme is a named set of styles.
type Theme struct {
	Name   string
	IsDark bool
	Styles map[string]tcell.Style
}

// GetStyle returns the style called name. A dotted name falls back to its
// base ("Brush.selected" -> "Brush"), then to "Default".
func (t *Theme) GetStyle(name string) tcell.Style {
	if style, ok := t.Styles[name]; ok {
		return style
	}

	if dotIndex := strings.Index(name, "."); dotIndex != -1 {
		baseName := name[:dotIndex]
		if style, ok := t.Styles[baseName]; ok {
			logger.DebugTagf("theme", "Theme '%s': Style '%s' not found, using base '%s'", t.Name, name, baseName)
			return style
		}
	}

	if defStyle, ok := t.Styles["Default"]; ok {
		if name != "Default" {
			logger.DebugTagf("theme", "Theme '%s': Style '%s' not found, falling back to 'Default'", t.Name, name)
		}
		return defStyle
	}

	logger.Warnf("Theme '%s': Style '%s' and 'Default' style not found, using tcell default.", t.Name, name)
	return tcell.StyleDefault
}

// HollowDark is the built-in theme.
var HollowDark Theme

func init() {
	background := tcell.NewHexColor(0x2a2f38)
	foreground := tcell.NewHexColor(0xc5cdd9)
	muted := tcell.NewHexColor(0x5c6370)
	orange := tcell.NewHexColor(0xd19a66)
	yellow := tcell.NewHexColor(0xe5c07b)
	green := tcell.NewHexColor(0x98c379)
	cyan := tcell.NewHexColor(0x56b6c2)
	blue := tcell.NewHexColor(0x61afef)
	magenta := tcell.NewHexColor(0xc678dd)

	base := tcell.StyleDefault.Background(tcell.ColorReset).Foreground(foreground)
	bar := tcell.StyleDefault.Background(background).Foreground(foreground)

	HollowDark = Theme{
		Name:   "Hollow Dark",
		IsDark: true,
		Styles: map[string]tcell.Style{
			"Default": base,
			"Grid":    base.Foreground(muted).Dim(true),
			"Cursor":  base.Reverse(true),

			// Map entities
			"Brush":           base.Foreground(blue),
			"Brush.selected":  base.Foreground(yellow).Bold(true),
			"Brush.drawn":     base.Foreground(green),
			"Vertex":          base.Foreground(blue).Bold(true),
			"Vertex.selected": base.Foreground(orange).Bold(true),
			"Thing":           base.Foreground(cyan),
			"Thing.selected":  base.Foreground(yellow).Bold(true),
			"Path":            base.Foreground(magenta),
			"Path.selected":   base.Foreground(orange).Bold(true),
			"FreeDraw":        base.Foreground(green).Bold(true),
			"Subtractee":      base.Foreground(orange).Underline(true),

			// History panel
			"History":         bar,
			"History.title":   bar.Bold(true),
			"History.current": bar.Foreground(yellow).Bold(true),
			"History.redo":    bar.Foreground(muted),

			// Status bar
			"StatusBar":          bar,
			"StatusBar.modified": bar.Foreground(yellow),
			"StatusBar.message":  bar.Bold(true),
			"StatusBar.command":  bar.Foreground(green).Bold(true),
		},
	}
}
