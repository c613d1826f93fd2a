package session

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/spacehole-rogue/supertrek/internal/game"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrBusy           = errors.New("a command is still running")
)

// Enter routes a typed line: it answers the pending prompt, otherwise it names a command.
func (s *Session) Enter(line string) error {
	if s.Answer(line) {
		return nil
	}
	cmd, ok := game.ParseCommand(strings.ToLower(strings.TrimSpace(line)))
	if !ok {
		return ErrUnknownCommand
	}
	if !s.Submit(cmd) {
		return ErrBusy
	}
	return nil
}

// LineEditor is a single-line text field with a length cap.
type LineEditor struct {
	text []rune
	max  int
}

func NewLineEditor(limit int) *LineEditor {
	return &LineEditor{max: limit}
}

// Insert appends printable runes up to the cap.
func (l *LineEditor) Insert(r rune) {
	if len(l.text) >= l.max || r < 32 || r == utf8.RuneError || r == 127 {
		return
	}
	l.text = append(l.text, r)
}

func (l *LineEditor) Backspace() {
	if len(l.text) > 0 {
		l.text = l.text[:len(l.text)-1]
	}
}

func (l *LineEditor) String() string {
	return string(l.text)
}

// Take returns the line and empties the editor.
func (l *LineEditor) Take() string {
	s := string(l.text)
	l.text = l.text[:0]
	return s
}

func (l *LineEditor) Reset() {
	l.text = l.text[:0]
}
