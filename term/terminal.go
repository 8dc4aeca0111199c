package term

import (
	"fmt"
	"time"

	"gridsnake/game"
	"gridsnake/host"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
)

const frameInterval = 16 * time.Millisecond // ~60 FPS

var (
	voidStyle       = tcell.StyleDefault.Background(tcell.ColorBlack)
	backgroundColor = tcell.NewRGBColor(77, 77, 89)
	lostColor       = tcell.ColorRed
	snakeStyle      = tcell.StyleDefault.Foreground(tcell.NewRGBColor(255, 255, 128))
	fruitStyle      = tcell.StyleDefault.Foreground(tcell.ColorRed)
	textStyle       = tcell.StyleDefault.Foreground(tcell.ColorWhite)
)

// Terminal draws the board with two columns per cell
type Terminal struct {
	screen     tcell.Screen
	showStatus bool
}

func NewTerminal(showStatus bool) (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "create screen")
	}
	if err := screen.Init(); err != nil {
		return nil, errors.Wrap(err, "init screen")
	}
	screen.HideCursor()
	return &Terminal{screen: screen, showStatus: showStatus}, nil
}

// newTerminalWithScreen wraps an already initialised screen
func newTerminalWithScreen(screen tcell.Screen, showStatus bool) *Terminal {
	return &Terminal{screen: screen, showStatus: showStatus}
}

func (t *Terminal) Close() {
	t.screen.Fini()
}

// Run drives the controller until it is done or the player quits
func (t *Terminal) Run(c *host.Controller) {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	for !c.Done() {
		select {
		case ev, ok := <-eventChan:
			if !ok {
				return
			}
			t.handleEvent(c, ev)

		case now := <-ticker.C:
			c.Update(now)
			t.Draw(c.Snapshot())
		}
	}
}

func (t *Terminal) handleEvent(c *host.Controller, ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch action, dir := TranslateKey(ev); action {
		case ActionQuit:
			c.Quit()
		case ActionDirection:
			c.Input(dir)
		}
	case *tcell.EventResize:
		t.screen.Sync()
	}
}

// origin centres the board in the current terminal
func (t *Terminal) origin(size int) (int, int) {
	w, h := t.screen.Size()
	x := (w - 2*size) / 2
	y := (h - size) / 2
	if x < 0 {
		x = 0
	}
	if y < 1 {
		y = 1
	}
	return x, y
}

func (t *Terminal) Draw(snap game.Snapshot) {
	t.screen.SetStyle(voidStyle)
	t.screen.Clear()

	ox, oy := t.origin(snap.Size)
	// The whole board turns red once the game is lost
	bg := backgroundColor
	if snap.Lost {
		bg = lostColor
	}
	board := tcell.StyleDefault.Background(bg)
	for y := 0; y < snap.Size; y++ {
		for x := 0; x < 2*snap.Size; x++ {
			t.screen.SetContent(ox+x, oy+y, ' ', nil, board)
		}
	}

	for _, c := range snap.Body {
		t.setCell(ox, oy, c.X, c.Y, '█', snakeStyle.Background(bg))
	}
	t.setCell(ox, oy, snap.Fruit.X, snap.Fruit.Y, '●', fruitStyle.Background(bg))

	if t.showStatus {
		t.drawText(ox, oy-1, statusLine(snap))
	}
	t.screen.Show()
}

func (t *Terminal) setCell(ox, oy, x, y int, r rune, style tcell.Style) {
	t.screen.SetContent(ox+2*x, oy+y, r, nil, style)
	t.screen.SetContent(ox+2*x+1, oy+y, r, nil, style)
}

func (t *Terminal) drawText(x, y int, s string) {
	for i, r := range []rune(s) {
		t.screen.SetContent(x+i, y, r, nil, textStyle)
	}
}

func statusLine(snap game.Snapshot) string {
	switch {
	case !snap.Started:
		return "arrows/WASD to start, Esc to quit"
	case snap.Lost:
		return fmt.Sprintf("game over, score %d - any direction quits", snap.Score)
	default:
		return fmt.Sprintf("score %d", snap.Score)
	}
}
