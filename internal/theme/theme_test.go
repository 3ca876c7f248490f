package theme

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleTheme = `
name = "Paper"
is_dark = false

[styles.Default]
fg = "#101010"
bg = "white"

[styles.Brush]
fg = "navy"
bold = true

[styles."Brush.selected"]
underline = true

[styles.Broken]
fg = "not-a-color"
`

func writeTheme(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadThemeFromFile(t *testing.T) {
	path := writeTheme(t, t.TempDir(), "paper.toml", sampleTheme)
	th, err := LoadThemeFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "Paper", th.Name)
	assert.False(t, th.IsDark)
	assert.NotContains(t, th.Styles, "Broken")

	fg, bg, attrs := th.GetStyle("Brush").Decompose()
	assert.Equal(t, tcell.ColorNavy, fg)
	assert.Equal(t, tcell.ColorWhite, bg)
	assert.NotZero(t, attrs&tcell.AttrBold)

	fg, bg, attrs = th.GetStyle("Brush.selected").Decompose()
	assert.Equal(t, tcell.ColorNavy, fg, "dotted styles inherit from their base")
	assert.Equal(t, tcell.ColorWhite, bg)
	assert.NotZero(t, attrs&tcell.AttrBold)
	assert.NotZero(t, attrs&tcell.AttrUnderline)
}

func TestGetStyleFallbacks(t *testing.T) {
	th := &Theme{Name: "t", Styles: map[string]tcell.Style{
		"Default": tcell.StyleDefault.Foreground(tcell.ColorRed),
		"Brush":   tcell.StyleDefault.Foreground(tcell.ColorBlue),
	}}
	assert.Equal(t, th.Styles["Brush"], th.GetStyle("Brush.selected"))
	assert.Equal(t, th.Styles["Default"], th.GetStyle("Thing"))
	assert.Equal(t, tcell.StyleDefault, (&Theme{}).GetStyle("Thing"))
}

func TestParseColorString(t *testing.T) {
	tests := []struct {
		in   string
		want tcell.Color
		err  bool
	}{
		{in: "#ff0000", want: tcell.NewHexColor(0xff0000)},
		{in: " Reset ", want: tcell.ColorReset},
		{in: "default", want: tcell.ColorDefault},
		{in: "red", want: tcell.ColorRed},
		{in: "#fff", err: true},
		{in: "chartreuse-ish", err: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseColorString(tt.in)
			if tt.err {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestManagerLoadsDirectory(t *testing.T) {
	dir := t.TempDir()
	writeTheme(t, dir, "paper.toml", sampleTheme)
	writeTheme(t, dir, "notes.txt", "ignored")

	m := NewManager(dir)
	assert.Equal(t, []string{"Hollow Dark", "Paper"}, m.ListThemes())
	assert.Equal(t, "Hollow Dark", m.Current().Name)

	require.NoError(t, m.SetTheme("paper"))
	assert.Equal(t, "Paper", m.Current().Name)
	assert.Error(t, m.SetTheme("missing"))
	assert.Equal(t, "Paper", m.Current().Name)
}

func TestManagerCreatesMissingDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "themes")
	m := NewManager(dir)
	assert.Equal(t, []string{"Hollow Dark"}, m.ListThemes())
	_, err := os.Stat(dir)
	assert.NoError(t, err)
}

type fakeAPI struct {
	m        *Manager
	commands map[string]CommandFunc
	status   string
}

func (f *fakeAPI) GetTheme() *Theme           { return f.m.Current() }
func (f *fakeAPI) SetTheme(name string) error { return f.m.SetTheme(name) }
func (f *fakeAPI) ListThemes() []string       { return f.m.ListThemes() }
func (f *fakeAPI) SetStatusMessage(format string, args ...interface{}) {
	f.status = format
	if len(args) > 0 {
		f.status = args[0].(string)
	}
}

func (f *fakeAPI) RegisterCommand(name string, fn CommandFunc) error {
	if _, ok := f.commands[name]; ok {
		return errors.New("duplicate")
	}
	f.commands[name] = fn
	return nil
}

func TestThemeCommands(t *testing.T) {
	api := &fakeAPI{m: NewManager(""), commands: map[string]CommandFunc{}}
	RegisterCommands(api)
	require.Contains(t, api.commands, "theme")
	require.Contains(t, api.commands, "themes")

	require.NoError(t, api.commands["theme"](nil))
	assert.Equal(t, "Hollow Dark", api.status)
	assert.Error(t, api.commands["theme"]([]string{"nope"}))
	require.NoError(t, api.commands["theme"]([]string{"hollow", "dark"}))
	require.NoError(t, api.commands["themes"](nil))
	assert.Equal(t, "Hollow Dark", api.status)
}
