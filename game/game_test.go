package game

import (
	"bytes"
	"log"
	"strings"
	"testing"

	"gridsnake/game/manager"
	"gridsnake/game/types"
)

// newTestSession builds a seeded session and parks the fruit at fruit
func newTestSession(t *testing.T, size int, fruit types.Cell) *Session {
	t.Helper()
	s := NewSession(size, WithSeed(1))
	s.foodManager.SetFood(fruit)
	return s
}

func step(t *testing.T, s *Session, d types.Direction, want Outcome) {
	t.Helper()
	if d != types.None {
		s.SetPendingDirection(d)
	}
	if got := s.Tick(); got != want {
		t.Fatalf("Tick after %s = %s, want %s (body %v)", d, got, want, s.Render().Body)
	}
}

func equalBodies(a, b []types.Cell) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestNewSession(t *testing.T) {
	s := NewSession(types.DefaultSize, WithSeed(3))
	snap := s.Render()

	if !equalBodies(snap.Body, []types.Cell{{X: 13, Y: 13}}) {
		t.Errorf("initial body = %v", snap.Body)
	}
	if snap.Direction != types.Up {
		t.Errorf("initial direction = %s", snap.Direction)
	}
	if snap.Phase != manager.NotStarted || snap.Started || snap.Lost {
		t.Errorf("unexpected initial phase %s started=%v lost=%v", snap.Phase, snap.Started, snap.Lost)
	}
	if snap.Fruit == snap.Head() || !snap.Fruit.InBounds(snap.Size) {
		t.Errorf("bad initial fruit %v", snap.Fruit)
	}
	if s.UUID == "" {
		t.Error("session has no UUID")
	}
}

func TestTickWithoutInputIsIdle(t *testing.T) {
	s := NewSession(types.DefaultSize, WithSeed(5))
	before := s.Render()

	for i := 0; i < 50; i++ {
		step(t, s, types.None, OutcomeIdle)
	}

	after := s.Render()
	if !equalBodies(before.Body, after.Body) || before.Fruit != after.Fruit || before.Direction != after.Direction {
		t.Errorf("idle ticks changed state: %+v -> %+v", before, after)
	}
	if after.Started {
		t.Error("session started without input")
	}
}

// The starting tick also moves the snake.
func TestFirstTickStartsAndMoves(t *testing.T) {
	s := newTestSession(t, 5, types.Cell{X: 0, Y: 0})

	step(t, s, types.Up, OutcomeMoved)

	snap := s.Render()
	if snap.Phase != manager.Running || !snap.Started {
		t.Fatalf("phase = %s, want running", snap.Phase)
	}
	if snap.Direction != types.Up {
		t.Errorf("committed direction = %s", snap.Direction)
	}
	if !equalBodies(snap.Body, []types.Cell{{X: 2, Y: 1}}) {
		t.Errorf("body = %v, want [(2,1)]", snap.Body)
	}
}

func TestPendingDirectionLastWriteWins(t *testing.T) {
	s := newTestSession(t, 5, types.Cell{X: 0, Y: 0})
	s.SetPendingDirection(types.Left)
	s.SetPendingDirection(types.Down)
	s.SetPendingDirection(types.Right)
	step(t, s, types.None, OutcomeMoved)

	if head := s.Render().Head(); head != (types.Cell{X: 3, Y: 2}) {
		t.Errorf("head = %v, want (3,2)", head)
	}
}

func TestSetPendingDirectionDoesNotStart(t *testing.T) {
	s := NewSession(5, WithSeed(1))
	s.SetPendingDirection(types.Left)
	if s.Render().Started {
		t.Error("setting a direction alone must not start the game")
	}
}

func TestNormalMoveConservesLength(t *testing.T) {
	s := newTestSession(t, 7, types.Cell{X: 3, Y: 2})
	step(t, s, types.Up, OutcomeAte) // (3,3) -> (3,2), grows to 2
	s.foodManager.SetFood(types.Cell{X: 0, Y: 6})

	before := s.Render().Body
	step(t, s, types.Right, OutcomeMoved)
	after := s.Render().Body

	if len(after) != len(before) {
		t.Fatalf("length changed %d -> %d", len(before), len(after))
	}
	if after[0] != (types.Cell{X: 4, Y: 2}) {
		t.Errorf("new head = %v", after[0])
	}
	for i := 1; i < len(after); i++ {
		if after[i] != before[i-1] {
			t.Errorf("cell %d = %v, want %v", i, after[i], before[i-1])
		}
	}
}

func TestEatingGrowsAndRespawnsOutsideBody(t *testing.T) {
	s := newTestSession(t, 5, types.Cell{X: 2, Y: 1})

	step(t, s, types.Up, OutcomeAte)

	snap := s.Render()
	if len(snap.Body) != 2 {
		t.Fatalf("length = %d, want 2", len(snap.Body))
	}
	for _, c := range snap.Body {
		if c == snap.Fruit {
			t.Fatalf("fruit %v respawned inside body %v", snap.Fruit, snap.Body)
		}
	}
	if snap.Score != 1 {
		t.Errorf("score = %d, want 1", snap.Score)
	}
}

func TestGrowthKeepsFruitOutsideBodyOverManyMeals(t *testing.T) {
	s := newTestSession(t, 6, types.Cell{X: 2, Y: 1})
	step(t, s, types.Up, OutcomeAte)

	// Feed the snake by always placing the fruit right in front of it
	for i := 0; i < 5; i++ {
		snap := s.Render()
		d := types.Left
		if snap.Head().X == 0 {
			d = types.Down
		}
		s.foodManager.SetFood(types.Neighbor(snap.Head(), d, snap.Size))
		step(t, s, d, OutcomeAte)

		after := s.Render()
		if len(after.Body) != len(snap.Body)+1 {
			t.Fatalf("meal %d: length %d -> %d", i, len(snap.Body), len(after.Body))
		}
		for _, c := range after.Body {
			if c == after.Fruit {
				t.Fatalf("meal %d: fruit %v inside body", i, after.Fruit)
			}
		}
	}
}

func TestReversingIntoNeckUsesGraceThenLoses(t *testing.T) {
	s := newTestSession(t, 5, types.Cell{X: 2, Y: 1})
	step(t, s, types.Up, OutcomeAte)
	s.foodManager.SetFood(types.Cell{X: 4, Y: 4})
	body := s.Render().Body

	step(t, s, types.Down, OutcomeSpared)
	snap := s.Render()
	if snap.Lost {
		t.Fatal("first collision should be spared")
	}
	if !equalBodies(snap.Body, body) {
		t.Errorf("spared tick moved the body: %v -> %v", body, snap.Body)
	}
	if !s.GraceUsed() {
		t.Error("grace flag not consumed")
	}

	step(t, s, types.None, OutcomeLost)
	snap = s.Render()
	if !snap.Lost || snap.Phase != manager.Lost {
		t.Fatalf("second collision should lose, phase %s", snap.Phase)
	}
	if !equalBodies(snap.Body, body) {
		t.Errorf("losing tick moved the body: %v", snap.Body)
	}
}

func TestWallClampBitesOwnHead(t *testing.T) {
	s := newTestSession(t, 5, types.Cell{X: 4, Y: 4})
	step(t, s, types.Up, OutcomeMoved) // (2,1)
	step(t, s, types.None, OutcomeMoved) // (2,0)

	step(t, s, types.None, OutcomeSpared)
	if head := s.Render().Head(); head != (types.Cell{X: 2, Y: 0}) {
		t.Fatalf("head = %v after spared tick", head)
	}
	step(t, s, types.None, OutcomeLost)
}

func TestGraceRearmedByMove(t *testing.T) {
	s := newTestSession(t, 5, types.Cell{X: 4, Y: 4})
	step(t, s, types.Up, OutcomeMoved)
	step(t, s, types.None, OutcomeMoved)
	step(t, s, types.None, OutcomeSpared)
	step(t, s, types.Right, OutcomeMoved)
	if s.GraceUsed() {
		t.Fatal("successful move should clear the grace flag")
	}
	step(t, s, types.Up, OutcomeSpared)
	step(t, s, types.None, OutcomeLost)
}

// Grace starts consumed, so colliding before any move is fatal.
func TestCollisionBeforeFirstMoveIsFatal(t *testing.T) {
	s := NewSession(2, WithSeed(1)) // snake at (0,0)
	step(t, s, types.Up, OutcomeLost)
	if !s.Render().Lost {
		t.Error("expected lost")
	}
}

func TestLostFreezesBodyAndRequestsExitOnInput(t *testing.T) {
	s := NewSession(2, WithSeed(1))
	step(t, s, types.Left, OutcomeLost)
	frozen := s.Render()

	step(t, s, types.None, OutcomeIdle)
	step(t, s, types.Right, OutcomeExitRequested)

	after := s.Render()
	if !equalBodies(frozen.Body, after.Body) || frozen.Fruit != after.Fruit {
		t.Errorf("state changed after loss: %+v -> %+v", frozen, after)
	}
}

func TestRenderReturnsCopy(t *testing.T) {
	s := newTestSession(t, 5, types.Cell{X: 0, Y: 0})
	snap := s.Render()
	snap.Body[0] = types.Cell{X: 4, Y: 4}
	if s.Render().Head() != types.Center(5) {
		t.Error("mutating a snapshot changed the session")
	}
}

func TestSessionLogsEvents(t *testing.T) {
	var buf bytes.Buffer
	s := NewSession(5, WithSeed(1), WithLogger(log.New(&buf, "", 0)))
	s.foodManager.SetFood(types.Cell{X: 2, Y: 1})
	step(t, s, types.Up, OutcomeAte)

	out := buf.String()
	for _, want := range []string{"session created", "started heading up", "ate at", s.UUID[:8]} {
		if !strings.Contains(out, want) {
			t.Errorf("log missing %q:\n%s", want, out)
		}
	}
}
