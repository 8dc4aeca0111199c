package term

import (
	"gridsnake/game/types"

	"github.com/gdamore/tcell/v2"
)

// KeyAction is what a key press means to the game loop
type KeyAction int

const (
	ActionNone KeyAction = iota
	ActionDirection
	ActionQuit
)

// TranslateKey maps a key event onto a direction or a quit request
func TranslateKey(ev *tcell.EventKey) (KeyAction, types.Direction) {
	return translate(ev.Key(), ev.Rune())
}

// Arrows and WASD steer; Escape and Ctrl-C quit.
func translate(key tcell.Key, r rune) (KeyAction, types.Direction) {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit, types.None
	case tcell.KeyUp:
		return ActionDirection, types.Up
	case tcell.KeyDown:
		return ActionDirection, types.Down
	case tcell.KeyLeft:
		return ActionDirection, types.Left
	case tcell.KeyRight:
		return ActionDirection, types.Right
	case tcell.KeyRune:
		switch r {
		case 'w', 'W':
			return ActionDirection, types.Up
		case 'a', 'A':
			return ActionDirection, types.Left
		case 's', 'S':
			return ActionDirection, types.Down
		case 'd', 'D':
			return ActionDirection, types.Right
		}
	}
	return ActionNone, types.None
}
