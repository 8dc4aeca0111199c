package entity

import (
	"gridsnake/game/types"

	"github.com/gammazero/deque"
	"github.com/pkg/errors"
)

// ErrNoHead is the fault raised when a head is needed from an empty body
var ErrNoHead = errors.New("snake is non existent and thus has no head")

// Snake holds the body head-first and the committed direction
type Snake struct {
	body      deque.Deque[types.Cell]
	Direction types.Direction
}

func NewSnake(startPos types.Cell, dir types.Direction) *Snake {
	s := &Snake{Direction: dir}
	s.body.PushBack(startPos)
	return s
}

// Move pushes the new head onto the front of the body
func (s *Snake) Move(newHead types.Cell) {
	s.body.PushFront(newHead)
}

// RemoveTail drops the last cell. The body never shrinks below one cell.
func (s *Snake) RemoveTail() {
	if s.body.Len() > 1 {
		s.body.PopBack()
	}
}

func (s *Snake) GetHead() types.Cell {
	if s.body.Len() == 0 {
		panic(ErrNoHead)
	}
	return s.body.Front()
}

func (s *Snake) GetTail() types.Cell {
	if s.body.Len() == 0 {
		panic(ErrNoHead)
	}
	return s.body.Back()
}

func (s *Snake) Len() int {
	return s.body.Len()
}

// Contains scans the body linearly
func (s *Snake) Contains(c types.Cell) bool {
	for i := 0; i < s.body.Len(); i++ {
		if s.body.At(i) == c {
			return true
		}
	}
	return false
}

// Body returns a head-first copy of the body
func (s *Snake) Body() []types.Cell {
	out := make([]types.Cell, s.body.Len())
	for i := range out {
		out[i] = s.body.At(i)
	}
	return out
}

// SetDirection commits dir without any reversal check; reversing into the
// neck is resolved by collision handling.
func (s *Snake) SetDirection(dir types.Direction) {
	if !dir.Valid() {
		return
	}
	s.Direction = dir
}
