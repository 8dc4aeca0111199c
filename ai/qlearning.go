package ai

import (
	"math"

	"gridsnake/game"
	"gridsnake/game/types"

	"golang.org/x/exp/rand"
)

type State struct {
	RelativeFoodDir [2]int  // Food direction relative to head (x, y)
	FoodDistance    int     // Manhattan distance to food
	DangerDirs      [4]bool // Danger in each direction (up, right, down, left)
}

// NewState reads the features the agent learns on from a snapshot. A
// direction is dangerous when its neighbor is already body; a wall counts
// because the clamped neighbor is the head itself.
func NewState(snap game.Snapshot) State {
	head := snap.Head()
	var dangers [4]bool
	for i, d := range types.Directions {
		target := types.Neighbor(head, d, snap.Size)
		for _, c := range snap.Body {
			if c == target {
				dangers[i] = true
				break
			}
		}
	}

	return State{
		RelativeFoodDir: [2]int{sign(snap.Fruit.X - head.X), sign(snap.Fruit.Y - head.Y)},
		FoodDistance:    abs(snap.Fruit.X-head.X) + abs(snap.Fruit.Y-head.Y),
		DangerDirs:      dangers,
	}
}

type Action int

const (
	Up Action = iota
	Right
	Down
	Left
)

// Direction maps an action onto the board direction it steers
func (a Action) Direction() types.Direction {
	return types.Directions[a]
}

type QTable map[string]map[Action]float64

type QLearning struct {
	QTable       QTable
	LearningRate float64
	Discount     float64
	Epsilon      float64
	TotalReward  float64
	rng          *rand.Rand
}

func NewQLearning(seed uint64) *QLearning {
	return &QLearning{
		QTable:       make(QTable),
		LearningRate: 0.1,
		Discount:     0.9,
		Epsilon:      0.1,
		rng:          rand.New(rand.NewSource(seed)),
	}
}

func (q *QLearning) getStateKey(s State) string {
	key := make([]byte, 0, 6)
	key = append(key, byte(s.RelativeFoodDir[0]+'1'), byte(s.RelativeFoodDir[1]+'1'))
	for _, d := range s.DangerDirs {
		key = append(key, byte(boolToInt(d)+'0'))
	}
	return string(key)
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func (q *QLearning) row(key string) map[Action]float64 {
	if _, exists := q.QTable[key]; !exists {
		q.QTable[key] = make(map[Action]float64)
		for a := Up; a <= Left; a++ {
			q.QTable[key][a] = 0
		}
	}
	return q.QTable[key]
}

func (q *QLearning) GetAction(state State) Action {
	// Exploration: random action
	if q.rng.Float64() < q.Epsilon {
		return Action(q.rng.Intn(4))
	}

	// Exploitation: best known action
	return q.getBestAction(state)
}

func (q *QLearning) getBestAction(state State) Action {
	values := q.row(q.getStateKey(state))

	// Iterate in a fixed order so ties break the same way every run
	bestAction := Up
	bestValue := math.Inf(-1)
	for a := Up; a <= Left; a++ {
		if values[a] > bestValue {
			bestValue = values[a]
			bestAction = a
		}
	}
	return bestAction
}

// Reward scores a transition by its outcome, falling back to distance shaping
func Reward(state, nextState State, outcome game.Outcome) float64 {
	switch outcome {
	case game.OutcomeAte:
		return 1.0
	case game.OutcomeLost:
		return -1.0
	case game.OutcomeSpared:
		return -0.5
	}

	distanceChange := nextState.FoodDistance - state.FoodDistance
	if distanceChange < 0 {
		return 0.5
	} else if distanceChange > 0 {
		return -0.3
	}
	return 0
}

func (q *QLearning) Update(state State, action Action, nextState State, outcome game.Outcome) float64 {
	reward := Reward(state, nextState, outcome)

	current := q.row(q.getStateKey(state))
	next := q.row(q.getStateKey(nextState))

	maxNextQ := math.Inf(-1)
	for _, value := range next {
		if value > maxNextQ {
			maxNextQ = value
		}
	}
	if outcome == game.OutcomeLost {
		maxNextQ = 0
	}

	// Q-learning update formula
	currentQ := current[action]
	current[action] = currentQ + q.LearningRate*(reward+q.Discount*maxNextQ-currentQ)

	q.TotalReward += reward
	return reward
}

func sign(x int) int {
	if x > 0 {
		return 1
	} else if x < 0 {
		return -1
	}
	return 0
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
