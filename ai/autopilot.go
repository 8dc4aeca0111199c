package ai

import (
	"gridsnake/game"
	"gridsnake/game/types"
)

// Autopilot plays through the same pending-direction slot as a keyboard and
// learns online from each tick's outcome.
type Autopilot struct {
	agent      *QLearning
	lastState  State
	lastAction Action
	acted      bool
}

func NewAutopilot(seed uint64) *Autopilot {
	return &Autopilot{agent: NewQLearning(seed)}
}

// Decide picks the direction for the next tick
func (p *Autopilot) Decide(snap game.Snapshot) types.Direction {
	state := NewState(snap)
	action := p.agent.GetAction(state)
	p.lastState = state
	p.lastAction = action
	p.acted = true
	return action.Direction()
}

// Observe feeds back the result of the tick that followed Decide
func (p *Autopilot) Observe(outcome game.Outcome, snap game.Snapshot) {
	if !p.acted || outcome == game.OutcomeIdle || outcome == game.OutcomeExitRequested {
		return
	}
	p.agent.Update(p.lastState, p.lastAction, NewState(snap), outcome)
	p.acted = false
}

func (p *Autopilot) TotalReward() float64 {
	return p.agent.TotalReward
}
