package host

import (
	"log"
	"time"

	"gridsnake/ai"
	"gridsnake/audio"
	"gridsnake/game"
	"gridsnake/game/types"
)

// Controller owns the session on behalf of a front end: it routes input into
// the pending slot, decides when a tick is due and reacts to outcomes.
type Controller struct {
	session        *game.Session
	pilot          *ai.Autopilot
	sound          *audio.SoundManager
	logger         *log.Logger
	updateInterval time.Duration
	lastUpdate     time.Time
	quit           bool
}

// Option customises a Controller
type Option func(*Controller)

// WithAutopilot lets the agent steer whenever the game is not lost
func WithAutopilot(p *ai.Autopilot) Option {
	return func(c *Controller) { c.pilot = p }
}

// WithSound plays tones on eat and loss
func WithSound(sm *audio.SoundManager) Option {
	return func(c *Controller) { c.sound = sm }
}

func WithLogger(l *log.Logger) Option {
	return func(c *Controller) { c.logger = l }
}

// NewController ticks the session rate times per second
func NewController(session *game.Session, rate int, opts ...Option) *Controller {
	if rate <= 0 {
		rate = types.DefaultTickRate
	}
	c := &Controller{
		session:        session,
		updateInterval: time.Second / time.Duration(rate),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Input records a direction from the keyboard
func (c *Controller) Input(d types.Direction) {
	c.session.SetPendingDirection(d)
}

// Quit asks the front end to stop
func (c *Controller) Quit() {
	c.quit = true
}

func (c *Controller) Done() bool {
	return c.quit
}

func (c *Controller) Interval() time.Duration {
	return c.updateInterval
}

// Due reports whether a tick should run at now
func (c *Controller) Due(now time.Time) bool {
	return now.Sub(c.lastUpdate) >= c.updateInterval
}

// Update runs a tick if one is due at now
func (c *Controller) Update(now time.Time) {
	if !c.Due(now) {
		return
	}
	c.lastUpdate = now
	c.Step()
}

// Step runs exactly one tick and returns its outcome
func (c *Controller) Step() game.Outcome {
	if c.pilot != nil {
		if snap := c.session.Render(); !snap.Lost {
			c.session.SetPendingDirection(c.pilot.Decide(snap))
		}
	}

	outcome := c.session.Tick()

	if c.pilot != nil {
		c.pilot.Observe(outcome, c.session.Render())
	}

	switch outcome {
	case game.OutcomeAte:
		if c.sound != nil {
			c.sound.PlayEat()
		}
	case game.OutcomeLost:
		if c.sound != nil {
			c.sound.PlayLose()
		}
		if c.logger != nil {
			c.logger.Printf("game over after %.1fs, score %d", c.session.ElapsedTime(), c.session.Render().Score)
		}
	case game.OutcomeExitRequested:
		c.quit = true
	}
	return outcome
}

// Snapshot returns the state to draw
func (c *Controller) Snapshot() game.Snapshot {
	return c.session.Render()
}
