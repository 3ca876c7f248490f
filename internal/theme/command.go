package theme

import (
	"fmt"
	"strings"

	"github.com/bethropolis/hollow/internal/logger"
)

// CommandFunc is the signature of a ':' command.
type CommandFunc = func(args []string) error

// ThemeAPI is what the theme commands need from the application.
type ThemeAPI interface {
	GetTheme() *Theme
	SetTheme(name string) error
	ListThemes() []string
	SetStatusMessage(format string, args ...interface{})
	RegisterCommand(name string, cmdFunc CommandFunc) error
}

// RegisterCommands adds :theme and :themes.
func RegisterCommands(api ThemeAPI) {
	themeCmd := func(args []string) error {
		if len(args) == 0 {
			api.SetStatusMessage("Current theme: %s", api.GetTheme().Name)
			return nil
		}
		name := strings.Join(args, " ")
		if err := api.SetTheme(name); err != nil {
			return fmt.Errorf("theme '%s' not found. Available: %s", name, strings.Join(api.ListThemes(), ", "))
		}
		api.SetStatusMessage("Theme set to: %s", name)
		return nil
	}
	listCmd := func([]string) error {
		api.SetStatusMessage("Available themes: %s", strings.Join(api.ListThemes(), ", "))
		return nil
	}

	if err := api.RegisterCommand("theme", themeCmd); err != nil {
		logger.Warnf("Failed to register ':theme' command: %v", err)
	}
	if err := api.RegisterCommand("themes", listCmd); err != nil {
		logger.Warnf("Failed to register ':themes' command: %v", err)
	}
}
