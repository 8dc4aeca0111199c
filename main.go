package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"gridsnake/ai"
	"gridsnake/audio"
	"gridsnake/game"
	"gridsnake/game/types"
	"gridsnake/host"
	"gridsnake/term"
	"gridsnake/ui"

	"github.com/pkg/errors"
)

func main() {
	size := flag.Int("size", types.DefaultSize, "Board side length in cells")
	rate := flag.Int("rate", types.DefaultTickRate, "Game ticks per second")
	terminal := flag.Bool("term", false, "Play in the terminal instead of a window")
	autopilot := flag.Bool("autopilot", false, "Let the Q-learning agent steer")
	sound := flag.Bool("sound", false, "Beep on eating and on game over")
	status := flag.Bool("status", true, "Show the score line")
	seed := flag.Uint64("seed", 0, "Seed for fruit placement (0 = time based)")
	logFile := flag.String("log", "", "Write the event log to this file")
	flag.Parse()

	if err := run(*size, *rate, *terminal, *autopilot, *sound, *status, *seed, *logFile); err != nil {
		fmt.Fprintf(os.Stderr, "snake: %v\n", err)
		os.Exit(1)
	}
}

func run(size, rate int, terminal, autopilot, sound, status bool, seed uint64, logFile string) error {
	if size < 2 {
		return errors.Errorf("board size must be at least 2, got %d", size)
	}

	logger, closeLog, err := newLogger(logFile, terminal)
	if err != nil {
		return err
	}
	defer closeLog()

	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	session := game.NewSession(size, game.WithSeed(seed), game.WithLogger(logger))

	opts := []host.Option{host.WithLogger(logger)}
	if autopilot {
		opts = append(opts, host.WithAutopilot(ai.NewAutopilot(seed)))
	}
	if sound {
		sm := audio.NewSoundManager()
		if err := sm.Initialize(); err != nil {
			// Non-fatal, game can run without sound
			logger.Printf("audio disabled: %v", err)
		} else {
			defer sm.Cleanup()
			opts = append(opts, host.WithSound(sm))
		}
	}
	controller := host.NewController(session, rate, opts...)

	if terminal {
		t, err := term.NewTerminal(status)
		if err != nil {
			return errors.Wrap(err, "start terminal")
		}
		defer t.Close()
		t.Run(controller)
	} else {
		ui.Run(controller, status)
	}

	logger.Printf("session %s closed after %.1fs", session.UUID, session.ElapsedTime())
	return nil
}

// newLogger writes to logFile when given. Without one, the window host logs
// to stderr and the terminal host discards, since stderr shares the screen.
func newLogger(logFile string, terminal bool) (*log.Logger, func(), error) {
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, errors.Wrap(err, "open log file")
		}
		return log.New(f, "snake ", log.LstdFlags), func() { f.Close() }, nil
	}

	var w io.Writer = os.Stderr
	if terminal {
		w = io.Discard
	}
	return log.New(w, "snake ", log.LstdFlags), func() {}, nil
}
