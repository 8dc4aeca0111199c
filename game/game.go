package game

import (
	"io"
	"log"
	"time"

	"gridsnake/game/entity"
	"gridsnake/game/manager"
	"gridsnake/game/types"

	"github.com/google/uuid"
)

// Outcome describes what a single tick did
type Outcome int

const (
	OutcomeIdle          Outcome = iota // Nothing changed
	OutcomeMoved                        // Head advanced, tail removed
	OutcomeAte                          // Head advanced onto the fruit, snake grew
	OutcomeSpared                       // Collision absorbed by the grace tick
	OutcomeLost                         // Collision with no grace left
	OutcomeExitRequested                // Input arrived after the game was lost
)

func (o Outcome) String() string {
	switch o {
	case OutcomeIdle:
		return "idle"
	case OutcomeMoved:
		return "moved"
	case OutcomeAte:
		return "ate"
	case OutcomeSpared:
		return "spared"
	case OutcomeLost:
		return "lost"
	case OutcomeExitRequested:
		return "exit-requested"
	default:
		return "unknown"
	}
}

// Snapshot is a read-only copy of the session for rendering
type Snapshot struct {
	Size      int
	Body      []types.Cell // Head first
	Fruit     types.Cell
	Direction types.Direction
	Phase     manager.Phase
	Started   bool
	Lost      bool
	Score     int
	Tick      int
}

// Head returns the first body cell
func (s Snapshot) Head() types.Cell {
	if len(s.Body) == 0 {
		panic(entity.ErrNoHead)
	}
	return s.Body[0]
}

// Session is the whole game world. It is not safe for concurrent use: the
// host calls SetPendingDirection, Tick and Render from one goroutine.
type Session struct {
	UUID      string
	Grid      types.Grid
	StartTime time.Time

	snake        *entity.Snake
	collisionMgr *manager.CollisionManager
	foodManager  *manager.FoodManager
	stateManager *manager.StateManager
	logger       *log.Logger
}

type config struct {
	seed   uint64
	logger *log.Logger
}

// Option customises NewSession
type Option func(*config)

// WithSeed fixes the fruit placement sequence
func WithSeed(seed uint64) Option {
	return func(c *config) { c.seed = seed }
}

// WithLogger sets the destination for session events
func WithLogger(l *log.Logger) Option {
	return func(c *config) { c.logger = l }
}

func NewSession(size int, opts ...Option) *Session {
	cfg := config{
		seed:   uint64(time.Now().UnixNano()),
		logger: log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	grid := types.Grid{Size: size}
	s := &Session{
		UUID:         uuid.New().String(),
		Grid:         grid,
		StartTime:    time.Now(),
		snake:        entity.NewSnake(types.Center(size), types.Up),
		collisionMgr: manager.NewCollisionManager(),
		foodManager:  manager.NewFoodManager(grid, cfg.seed),
		stateManager: manager.NewStateManager(),
		logger:       cfg.logger,
	}

	s.foodManager.Respawn(s.snake.Contains)
	s.logf("session created: size=%d seed=%d fruit=%v", size, cfg.seed, s.foodManager.GetFood())
	return s
}

// SetPendingDirection records the latest input; only the last call before a
// tick is seen by that tick.
func (s *Session) SetPendingDirection(d types.Direction) {
	s.stateManager.SetPending(d)
}

// Tick advances the game by one step
func (s *Session) Tick() Outcome {
	sm := s.stateManager

	if sm.Phase() == manager.NotStarted {
		if !sm.HasPending() {
			return OutcomeIdle
		}
		sm.Start()
		s.logf("started heading %s", sm.Pending())
	}

	if sm.Phase() == manager.Lost {
		if sm.HasPending() {
			return OutcomeExitRequested
		}
		return OutcomeIdle
	}

	sm.CountTick()
	if sm.HasPending() {
		s.snake.SetDirection(sm.TakePending())
	}

	target := s.Grid.Neighbor(s.snake.GetHead(), s.snake.Direction)
	if s.collisionMgr.CheckCollision(target, s.snake) != manager.NoCollision {
		if s.collisionMgr.HandleCollision() {
			sm.Lose()
			s.logf("lost at %v heading %s, length %d, score %d", target, s.snake.Direction, s.snake.Len(), sm.GetScore())
			return OutcomeLost
		}
		return OutcomeSpared
	}

	s.collisionMgr.ClearGrace()
	s.snake.Move(target)
	if s.collisionMgr.IsFoodCollision(target, s.foodManager.GetFood()) {
		sm.UpdateScore()
		fruit := s.foodManager.Respawn(s.snake.Contains)
		s.logf("ate at %v, length %d, next fruit %v", target, s.snake.Len(), fruit)
		return OutcomeAte
	}
	s.snake.RemoveTail()
	return OutcomeMoved
}

// Render returns a snapshot of the current state
func (s *Session) Render() Snapshot {
	sm := s.stateManager
	return Snapshot{
		Size:      s.Grid.Size,
		Body:      s.snake.Body(),
		Fruit:     s.foodManager.GetFood(),
		Direction: s.snake.Direction,
		Phase:     sm.Phase(),
		Started:   sm.Phase() != manager.NotStarted,
		Lost:      sm.Phase() == manager.Lost,
		Score:     sm.GetScore(),
		Tick:      sm.Ticks(),
	}
}

// GraceUsed reports whether the one-tick collision grace is consumed
func (s *Session) GraceUsed() bool {
	return s.collisionMgr.GraceUsed()
}

// ElapsedTime returns the session duration in seconds
func (s *Session) ElapsedTime() float64 {
	return time.Since(s.StartTime).Seconds()
}

func (s *Session) logf(format string, args ...any) {
	s.logger.Printf("[%s] "+format, append([]any{s.UUID[:8]}, args...)...)
}
