package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/avanyukov/skyflap/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case " ", "up", "w":
		return core.ActionJump, false
	case "p", "esc":
		return core.ActionPause, false
	case "d":
		return core.ActionDebug, false
	case "r":
		return core.ActionRestart, false
	}
	return core.ActionNone, false
}
