package ui

import (
	"fmt"

	"gridsnake/game"
	"gridsnake/ui/layout"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	voidColor       = rl.NewColor(0, 0, 0, 255)
	backgroundColor = rl.NewColor(77, 77, 89, 255)
	snakeColor      = rl.NewColor(255, 255, 128, 255)
	fruitColor      = rl.NewColor(255, 0, 0, 255)
)

type Renderer struct {
	screenWidth  int32
	screenHeight int32
	showStatus   bool
}

func NewRenderer(showStatus bool) *Renderer {
	r := &Renderer{showStatus: showStatus}
	r.UpdateDimensions()
	return r
}

func (r *Renderer) UpdateDimensions() {
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())
}

func toRec(rect layout.Rect) rl.Rectangle {
	return rl.NewRectangle(rect.X, rect.Y, rect.W, rect.H)
}

func (r *Renderer) Draw(snap game.Snapshot) {
	r.UpdateDimensions()
	l := layout.Compute(float32(r.screenWidth), float32(r.screenHeight), snap.Size)

	rl.BeginDrawing()
	rl.ClearBackground(voidColor)

	// The whole board turns the fruit colour once the game is lost
	board := backgroundColor
	if snap.Lost {
		board = fruitColor
	}
	rl.DrawRectangleRec(toRec(l.Board()), board)

	for _, sq := range l.SnakeSquares(snap) {
		rl.DrawRectangleRec(toRec(sq), snakeColor)
	}
	rl.DrawRectangleRec(toRec(l.Cell(snap.Fruit)), fruitColor)

	if r.showStatus {
		r.drawStatus(snap)
	}
	rl.EndDrawing()
}

func (r *Renderer) drawStatus(snap game.Snapshot) {
	fontSize := r.screenHeight / 40
	if fontSize < 10 {
		fontSize = 10
	}
	label := fmt.Sprintf("Score: %d", snap.Score)
	if !snap.Started {
		label = "Press an arrow key or WASD to start"
	} else if snap.Lost {
		label = fmt.Sprintf("Game over! Score: %d - press any direction to quit", snap.Score)
	}
	rl.DrawText(label, 10, 10, fontSize, rl.White)
}
