package clipboard

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/bethropolis/hollow/internal/logger"
)

// Backend stores clipboard text.
type Backend interface {
	Write(text string) error
	Read() (string, error)
}

// System is the desktop clipboard.
type System struct{}

func (System) Write(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("system clipboard write failed: %w", err)
	}
	return nil
}

func (System) Read() (string, error) {
	text, err := clipboard.ReadAll()
	if err != nil {
		return "", fmt.Errorf("system clipboard read failed: %w", err)
	}
	return text, nil
}

// Memory is a process-local clipboard.
type Memory struct {
	text string
}

func (m *Memory) Write(text string) error {
	m.text = text
	return nil
}

func (m *Memory) Read() (string, error) { return m.text, nil }

// NewBackend returns the system clipboard when requested and available,
// the in-process one otherwise.
func NewBackend(system bool) Backend {
	if system && !clipboard.Unsupported {
		return System{}
	}
	if system {
		logger.Warnf("Clipboard: no system clipboard available, using an in-process buffer")
	}
	return &Memory{}
}
