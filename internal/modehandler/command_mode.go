package modehandler

import (
	"strings"

	"github.com/bethropolis/hollow/internal/input"
	"github.com/bethropolis/hollow/internal/logger"
)

// handleActionCommand handles actions when in ModeCommand. Bound runes
// still carry their rune, so they are typed like any other.
func (mh *ModeHandler) handleActionCommand(ae input.ActionEvent) bool {
	switch ae.Action {
	case input.ActionEnter:
		line := string(mh.cmdBuffer)
		mh.setMode(ModeNormal)
		mh.executeCommand(line)

	case input.ActionBackspace:
		if len(mh.cmdBuffer) == 0 {
			mh.setMode(ModeNormal)
			logger.DebugTagf("modehandler", "Exiting Command Mode via Backspace")
			return true
		}
		mh.cmdBuffer = mh.cmdBuffer[:len(mh.cmdBuffer)-1]
		mh.statusBar.SetCommandLine(string(mh.cmdBuffer))

	case input.ActionCancel, input.ActionQuit:
		mh.setMode(ModeNormal)
		logger.DebugTagf("modehandler", "Canceled Command Mode")

	default:
		if ae.Rune == 0 {
			return false
		}
		mh.cmdBuffer = append(mh.cmdBuffer, ae.Rune)
		mh.statusBar.SetCommandLine(string(mh.cmdBuffer))
	}
	return true
}

// executeCommand parses and runs one command line.
func (mh *ModeHandler) executeCommand(line string) {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return
	}
	name, args := parts[0], parts[1:]

	cmdFunc, exists := mh.commands[name]
	if !exists {
		mh.statusBar.SetTemporaryMessage("Unknown command: %s", name)
		return
	}
	logger.DebugTagf("modehandler", "Executing command ':%s' with args %v", name, args)
	if err := cmdFunc(args); err != nil {
		mh.statusBar.SetTemporaryMessage("Error executing command '%s': %v", name, err)
	}
}
