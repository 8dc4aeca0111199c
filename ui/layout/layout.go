package layout

import (
	"gridsnake/game"
	"gridsnake/game/types"
)

// Rect is a screen-space rectangle in pixels
type Rect struct {
	X, Y, W, H float32
}

// Layout maps board cells onto a window. The board is the largest square
// that fits, centred on the shorter axis.
type Layout struct {
	OriginX, OriginY float32
	Side             float32 // Board side in pixels
	SquareWidth      float32 // One cell in pixels
}

func Compute(width, height float32, size int) Layout {
	side := width
	if height < side {
		side = height
	}
	return Layout{
		OriginX:     width/2 - side/2,
		OriginY:     height/2 - side/2,
		Side:        side,
		SquareWidth: side / float32(size),
	}
}

// Board is the background square
func (l Layout) Board() Rect {
	return Rect{X: l.OriginX, Y: l.OriginY, W: l.Side, H: l.Side}
}

// at places a half-cell square at fractional cell coordinates
func (l Layout) at(x, y float32) Rect {
	return Rect{
		X: l.OriginX + l.SquareWidth*x + l.SquareWidth/4,
		Y: l.OriginY + l.SquareWidth*y + l.SquareWidth/4,
		W: l.SquareWidth / 2,
		H: l.SquareWidth / 2,
	}
}

// Cell is the marker drawn for one board cell
func (l Layout) Cell(c types.Cell) Rect {
	return l.at(float32(c.X), float32(c.Y))
}

// Filler joins two consecutive body cells with a square at their midpoint
func (l Layout) Filler(a, b types.Cell) Rect {
	return l.at(float32(a.X+b.X)/2, float32(a.Y+b.Y)/2)
}

// SnakeSquares returns one square per body cell plus a filler between each
// consecutive pair, head first.
func (l Layout) SnakeSquares(snap game.Snapshot) []Rect {
	out := make([]Rect, 0, 2*len(snap.Body))
	for i, c := range snap.Body {
		out = append(out, l.Cell(c))
		if i > 0 {
			out = append(out, l.Filler(snap.Body[i-1], c))
		}
	}
	return out
}
