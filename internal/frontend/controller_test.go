package frontend

import (
	"testing"

	"github.com/spacehole-rogue/supertrek/internal/game"
	"github.com/spacehole-rogue/supertrek/internal/session"
)

type fakeSession struct {
	prompt    string
	prompting bool
	busy      bool
	entered   []string
	submitted []game.Command
	cancelled int
}

func (f *fakeSession) Enter(line string) error {
	if f.prompting {
		f.entered = append(f.entered, line)
		return nil
	}
	cmd, ok := game.ParseCommand(line)
	if !ok {
		return session.ErrUnknownCommand
	}
	if f.busy {
		return session.ErrBusy
	}
	f.submitted = append(f.submitted, cmd)
	return nil
}

func (f *fakeSession) Submit(cmd game.Command) bool {
	if f.busy {
		return false
	}
	f.submitted = append(f.submitted, cmd)
	return true
}

func (f *fakeSession) Cancel() bool {
	if !f.prompting {
		return false
	}
	f.cancelled++
	f.prompting = false
	return true
}

func (f *fakeSession) Pending() (string, bool)       { return f.prompt, f.prompting }
func (f *fakeSession) Busy() bool                    { return f.busy }
func (f *fakeSession) Messages(n int) []game.Message { return nil }
func (f *fakeSession) View() game.View               { return game.View{} }

func typeLine(c *Controller, s string) {
	for _, r := range s {
		c.Type(r)
	}
}

func TestTypedCommand(t *testing.T) {
	t.Parallel()

	s := &fakeSession{}
	c := NewController(s)
	typeLine(c, "lrs")
	c.Enter()
	if len(s.submitted) != 1 || s.submitted[0] != game.CmdLongScan {
		t.Fatalf("submitted = %v", s.submitted)
	}

	typeLine(c, "bogus")
	c.Enter()
	if f := c.Frame(); f.Notice == "" || f.Input != "" {
		t.Fatalf("frame after unknown command = %+v", f)
	}
}

func TestMenuSelection(t *testing.T) {
	t.Parallel()

	s := &fakeSession{}
	c := NewController(s)
	c.Up()
	c.Enter()
	c.Down()
	c.Down()
	c.Enter()
	want := []game.Command{game.CmdResign, game.CmdShortScan}
	if len(s.submitted) != 2 || s.submitted[0] != want[0] || s.submitted[1] != want[1] {
		t.Fatalf("submitted = %v, want %v", s.submitted, want)
	}

	s.busy = true
	c.Enter()
	if c.Frame().Notice == "" {
		t.Fatal("busy session gave no notice")
	}
}

func TestPromptAnswerAndEscape(t *testing.T) {
	t.Parallel()

	s := &fakeSession{prompt: "Enter course (1.0--9.0): ", prompting: true}
	c := NewController(s)
	c.Down()
	if c.Frame().Selected != 0 {
		t.Fatal("menu moved while a prompt was open")
	}
	typeLine(c, "45")
	c.Backspace()
	c.Enter()
	if len(s.entered) != 1 || s.entered[0] != "4" {
		t.Fatalf("entered = %q", s.entered)
	}

	if c.Escape() {
		t.Fatal("escape with an open prompt asked to quit")
	}
	if s.cancelled != 1 {
		t.Fatal("prompt not cancelled")
	}
	typeLine(c, "x")
	if c.Escape() || c.Frame().Input != "" {
		t.Fatal("escape did not just clear the line")
	}
	if !c.Escape() {
		t.Fatal("escape on an idle screen did not ask to quit")
	}
}
