// Package frontend holds the keyboard handling shared by the window and terminal
// front-ends: a command line, a selectable command menu and prompt answers.
package frontend

import (
	"errors"
	"fmt"

	"github.com/spacehole-rogue/supertrek/internal/game"
	"github.com/spacehole-rogue/supertrek/internal/render"
	"github.com/spacehole-rogue/supertrek/internal/session"
)

const Title = "SUPER STAR TREK"

const maxInput = 40

// Session is the part of session.Session a controller drives.
type Session interface {
	Enter(line string) error
	Submit(cmd game.Command) bool
	Cancel() bool
	Pending() (string, bool)
	Busy() bool
	Messages(n int) []game.Message
	View() game.View
}

// Controller turns key presses into session calls.
type Controller struct {
	s        Session
	editor   *session.LineEditor
	catalog  []game.CommandInfo
	selected int
	notice   string
}

func NewController(s Session) *Controller {
	return &Controller{
		s:       s,
		editor:  session.NewLineEditor(maxInput),
		catalog: game.Catalog(),
	}
}

func (c *Controller) Type(r rune) {
	c.notice = ""
	c.editor.Insert(r)
}

func (c *Controller) Backspace() {
	c.editor.Backspace()
}

// Up and Down move the menu selection while no prompt is open.
func (c *Controller) Up() {
	if _, prompting := c.s.Pending(); prompting {
		return
	}
	c.selected = (c.selected + len(c.catalog) - 1) % len(c.catalog)
}

func (c *Controller) Down() {
	if _, prompting := c.s.Pending(); prompting {
		return
	}
	c.selected = (c.selected + 1) % len(c.catalog)
}

// Enter answers the prompt, runs the typed command, or runs the selected one when
// the line is empty.
func (c *Controller) Enter() {
	_, prompting := c.s.Pending()
	line := c.editor.Take()
	c.notice = ""
	if line == "" && !prompting {
		if !c.s.Submit(c.catalog[c.selected].Command) {
			c.notice = "Wait for the current command to finish."
		}
		return
	}

	err := c.s.Enter(line)
	switch {
	case err == nil:
	case errors.Is(err, session.ErrUnknownCommand):
		c.notice = fmt.Sprintf("Unknown command %q. Type hlp for help.", line)
	case errors.Is(err, session.ErrBusy):
		c.notice = "Wait for the current command to finish."
	default:
		c.notice = err.Error()
	}
}

// Escape cancels a prompt or clears the line. It returns true when there was
// nothing to cancel, which front-ends take as a request to quit.
func (c *Controller) Escape() bool {
	c.notice = ""
	if c.s.Cancel() {
		c.editor.Reset()
		return false
	}
	if c.editor.String() != "" {
		c.editor.Reset()
		return false
	}
	return true
}

// Frame snapshots everything needed to draw the screen.
func (c *Controller) Frame() render.Frame {
	prompt, prompting := c.s.Pending()
	return render.Frame{
		Title:     Title,
		Messages:  c.s.Messages(render.ConsoleLines()),
		View:      c.s.View(),
		Prompt:    prompt,
		Prompting: prompting,
		Busy:      c.s.Busy(),
		Input:     c.editor.String(),
		Notice:    c.notice,
		Catalog:   c.catalog,
		Selected:  c.selected,
	}
}
