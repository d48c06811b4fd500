package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/wordsnake/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
//
// Player 1 steers with the arrow keys. In duo mode WASD belongs to player 2;
// otherwise it is a second set of keys for player 1.
type KeyMapper struct {
	duo bool
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper(duo bool) *KeyMapper {
	return &KeyMapper{duo: duo}
}

// MapKey translates a key message to a player and action.
// Returns ActionNone for unbound keys and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (player core.PlayerID, action core.Action, isQuit bool) {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return core.Player1, core.ActionQuit, true
	}

	wasd := core.Player1
	if km.duo {
		wasd = core.Player2
	}

	switch key {
	case "up":
		return core.Player1, core.ActionUp, false
	case "down":
		return core.Player1, core.ActionDown, false
	case "left":
		return core.Player1, core.ActionLeft, false
	case "right":
		return core.Player1, core.ActionRight, false
	case "w":
		return wasd, core.ActionUp, false
	case "s":
		return wasd, core.ActionDown, false
	case "a":
		return wasd, core.ActionLeft, false
	case "d":
		return wasd, core.ActionRight, false
	case "enter":
		return core.Player1, core.ActionConfirm, false
	case "b", "esc":
		return core.Player1, core.ActionBack, false
	case "p", " ":
		return core.Player1, core.ActionPause, false
	case "r":
		return core.Player1, core.ActionRestart, false
	}

	return core.Player1, core.ActionNone, false
}

// MapKeyToMultiFrame records a key message in the frame of the player it
// belongs to. Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToMultiFrame(msg tea.KeyMsg, frame *core.MultiInputFrame) bool {
	player, action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(player, action)
	}
	return isQuit
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionLeft
	MenuActionRight
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "a", "left", "h":
		return MenuActionLeft
	case "d", "right", "l":
		return MenuActionRight
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}
