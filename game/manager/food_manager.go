package manager

import (
	"gridsnake/game/types"

	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
)

// ErrBoardFull is the fault raised when no free cell is left for the fruit
var ErrBoardFull = errors.New("no free cell left on the board")

type FoodManager struct {
	grid types.Grid
	rng  *rand.Rand
	food types.Cell
}

func NewFoodManager(grid types.Grid, seed uint64) *FoodManager {
	return &FoodManager{
		grid: grid,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// RandomOutsideCell picks a cell uniformly among those not reported as
// occupied. Panics with ErrBoardFull when every cell is taken.
func (fm *FoodManager) RandomOutsideCell(occupied func(types.Cell) bool) types.Cell {
	outside := make([]types.Cell, 0, fm.grid.Size*fm.grid.Size)
	for _, c := range fm.grid.Cells() {
		if !occupied(c) {
			outside = append(outside, c)
		}
	}
	if len(outside) == 0 {
		panic(errors.Wrapf(ErrBoardFull, "board %dx%d", fm.grid.Size, fm.grid.Size))
	}
	return outside[fm.rng.Intn(len(outside))]
}

// Respawn places the fruit outside the occupied cells and returns it
func (fm *FoodManager) Respawn(occupied func(types.Cell) bool) types.Cell {
	fm.food = fm.RandomOutsideCell(occupied)
	return fm.food
}

func (fm *FoodManager) GetFood() types.Cell {
	return fm.food
}

// SetFood places the fruit directly
func (fm *FoodManager) SetFood(food types.Cell) {
	fm.food = food
}
