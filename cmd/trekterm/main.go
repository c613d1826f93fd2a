package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/spacehole-rogue/supertrek/internal/app"
	"github.com/spacehole-rogue/supertrek/internal/frontend"
	"github.com/spacehole-rogue/supertrek/internal/game"
	"github.com/spacehole-rogue/supertrek/internal/render"
	"github.com/spacehole-rogue/supertrek/internal/session"
)

type terminal struct {
	screen  tcell.Screen
	buffer  *render.CellBuffer
	session *session.Session
	ctrl    *frontend.Controller
	alarm   *alarm
	colors  [16]tcell.Color

	drawn     uint64
	condition string
}

func newTerminal(screen tcell.Screen, s *session.Session, a *alarm) *terminal {
	t := &terminal{
		screen:  screen,
		buffer:  render.NewCellBuffer(render.ScreenCols, render.ScreenRows),
		session: s,
		ctrl:    frontend.NewController(s),
		alarm:   a,
	}
	for i, c := range render.Palette {
		t.colors[i] = tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
	}
	return t
}

func (t *terminal) draw() {
	t.drawn = t.session.Revision()
	frame := t.ctrl.Frame()
	if frame.View.Condition == "RED" && t.condition != "RED" {
		t.alarm.RedAlert()
	}
	t.condition = frame.View.Condition
	render.DrawScreen(t.buffer, frame)

	t.screen.Clear()
	w, h := t.screen.Size()
	if w < render.ScreenCols || h < render.ScreenRows {
		msg := fmt.Sprintf("Terminal too small: need %dx%d, have %dx%d", render.ScreenCols, render.ScreenRows, w, h)
		for i, r := range msg {
			t.screen.SetContent(i, 0, r, nil, tcell.StyleDefault.Foreground(tcell.ColorYellow))
		}
	}
	for y := 0; y < t.buffer.Rows; y++ {
		for x := 0; x < t.buffer.Cols; x++ {
			c := t.buffer.Get(x, y)
			style := tcell.StyleDefault.Foreground(t.colors[c.FG]).Background(t.colors[c.BG])
			t.screen.SetContent(x, y, render.Rune(c.Glyph), nil, style)
		}
	}
	t.screen.Show()
}

// handleKey returns false when the player asked to quit.
func (t *terminal) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return false
	case tcell.KeyEscape:
		return !t.ctrl.Escape()
	case tcell.KeyEnter:
		t.ctrl.Enter()
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		t.ctrl.Backspace()
	case tcell.KeyUp:
		t.ctrl.Up()
	case tcell.KeyDown:
		t.ctrl.Down()
	case tcell.KeyRune:
		t.ctrl.Type(ev.Rune())
	}
	return true
}

func (t *terminal) run() {
	ticker := time.NewTicker(16 * time.Millisecond)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	t.draw()
	for {
		select {
		case <-t.session.Done():
			return
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !t.handleKey(ev) {
					return
				}
			case *tcell.EventResize:
				t.screen.Sync()
			}
			t.draw()
		case <-ticker.C:
			if t.session.Revision() != t.drawn {
				t.draw()
			}
		}
	}
}

func main() {
	ctx := context.Background()
	a, err := app.Bootstrap(ctx)
	if err != nil {
		log.Fatalf("start: %v", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		a.Close()
		log.Fatalf("create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		a.Close()
		log.Fatalf("init screen: %v", err)
	}

	s := a.NewSession(render.ConsoleWidth)
	s.Start(ctx)
	sound := newAlarm(a.Config.Game.Sound)

	newTerminal(screen, s, sound).run()

	screen.Fini()
	sound.Close()
	if err := s.Close(ctx); err != nil {
		a.Logger.Error("close session", "error", err)
	}
	if errors.Is(s.Err(), game.ErrQuit) {
		fmt.Fprintln(os.Stderr, "The Federation will find another commander.")
	}
	if err := a.Close(); err != nil {
		log.Printf("shutdown: %v", err)
	}
}
