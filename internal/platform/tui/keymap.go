package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/dodge-arcade/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action. phase decides whether
// Space means start or restart.
func (km *KeyMapper) MapKey(msg tea.KeyMsg, phase core.Phase) core.Action {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit
	case "left", "a", "h":
		return core.ActionLeft
	case "right", "d", "l":
		return core.ActionRight
	case "down", "s", "j":
		return core.ActionStop
	case "m":
		return core.ActionMute
	case "enter":
		if phase == core.PhaseIdle {
			return core.ActionStart
		}
	case " ":
		switch phase {
		case core.PhaseIdle:
			return core.ActionStart
		case core.PhaseGameOver:
			return core.ActionRestart
		}
	case "r":
		if phase == core.PhaseGameOver {
			return core.ActionRestart
		}
	}

	return core.ActionNone
}

// MenuAction represents actions available in the preset picker.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates key messages to menu actions.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "up", "k", "w":
		return MenuActionUp
	case "down", "j", "s":
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "tab":
		return MenuActionScoreboard
	case "q", "ctrl+c", "esc":
		return MenuActionQuit
	}
	return MenuActionNone
}
