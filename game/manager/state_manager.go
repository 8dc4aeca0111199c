package manager

import "gridsnake/game/types"

// Phase is the lifecycle state of a session
type Phase int

const (
	NotStarted Phase = iota
	Running
	Lost
)

func (p Phase) String() string {
	switch p {
	case NotStarted:
		return "not-started"
	case Running:
		return "running"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}

// StateManager owns the phase and the single-slot pending direction
type StateManager struct {
	phase   Phase
	pending types.Direction
	score   int
	ticks   int
}

func NewStateManager() *StateManager {
	return &StateManager{phase: NotStarted}
}

// SetPending records d, replacing any earlier pending direction. None is ignored.
func (sm *StateManager) SetPending(d types.Direction) {
	if !d.Valid() {
		return
	}
	sm.pending = d
}

func (sm *StateManager) HasPending() bool {
	return sm.pending != types.None
}

// TakePending returns the pending direction and empties the slot
func (sm *StateManager) TakePending() types.Direction {
	d := sm.pending
	sm.pending = types.None
	return d
}

func (sm *StateManager) Pending() types.Direction {
	return sm.pending
}

func (sm *StateManager) Phase() Phase {
	return sm.phase
}

// Start moves NotStarted to Running; other phases are left alone
func (sm *StateManager) Start() bool {
	if sm.phase != NotStarted {
		return false
	}
	sm.phase = Running
	return true
}

// Lose moves Running to Lost
func (sm *StateManager) Lose() bool {
	if sm.phase != Running {
		return false
	}
	sm.phase = Lost
	return true
}

func (sm *StateManager) UpdateScore() {
	sm.score++
}

func (sm *StateManager) GetScore() int {
	return sm.score
}

func (sm *StateManager) CountTick() {
	sm.ticks++
}

func (sm *StateManager) Ticks() int {
	return sm.ticks
}
