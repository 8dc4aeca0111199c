package ui

import (
	"time"

	"gridsnake/host"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	windowWidth  = 800
	windowHeight = 800
)

// Run opens the window and drives the controller until it is done or the
// window is closed (Escape closes it too).
func Run(c *host.Controller, showStatus bool) {
	rl.InitWindow(windowWidth, windowHeight, "snake")
	rl.SetWindowState(rl.FlagWindowResizable | rl.FlagVsyncHint)
	defer rl.CloseWindow()

	rl.SetTargetFPS(60)

	renderer := NewRenderer(showStatus)
	for !rl.WindowShouldClose() && !c.Done() {
		if d := pressedDirection(); d.Valid() {
			c.Input(d)
		}

		// Update game state at fixed interval
		c.Update(time.Now())

		renderer.Draw(c.Snapshot())
	}
}
