package ui

import (
	"gridsnake/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var keyBindings = []struct {
	key int32
	dir types.Direction
}{
	{rl.KeyW, types.Up},
	{rl.KeyUp, types.Up},
	{rl.KeyA, types.Left},
	{rl.KeyLeft, types.Left},
	{rl.KeyS, types.Down},
	{rl.KeyDown, types.Down},
	{rl.KeyD, types.Right},
	{rl.KeyRight, types.Right},
}

// pressedDirection returns the last bound key pressed this frame, or None
func pressedDirection() types.Direction {
	dir := types.None
	for _, b := range keyBindings {
		if rl.IsKeyPressed(b.key) {
			dir = b.dir
		}
	}
	return dir
}
