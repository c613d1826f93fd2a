// Package session runs an engine on its own goroutine so a frame-driven front-end
// can feed it commands and answers without blocking its draw loop.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/spacehole-rogue/supertrek/internal/game"
)

// Config tunes a session. Display and Prompter in Options are replaced by the session.
type Config struct {
	Options  game.Options
	LogSize  int
	Width    int
	Resume   bool
	Autosave bool
}

type answer struct {
	text      string
	confirmed bool
}

// Session owns the engine. Every exported method is safe to call from any goroutine.
type Session struct {
	engine   *game.Engine
	logger   *slog.Logger
	autosave bool
	resume   bool

	commands chan game.Command
	answers  chan answer
	cancel   context.CancelFunc
	done     chan struct{}

	mu       sync.Mutex
	log      *game.MessageLog
	view     game.View
	prompt   string
	waiting  bool
	busy     bool
	started  bool
	err      error
	revision uint64
}

func New(cfg Config) *Session {
	if cfg.LogSize <= 0 {
		cfg.LogSize = 200
	}
	logger := cfg.Options.Logger
	if logger == nil {
		logger = slog.Default()
	}
	s := &Session{
		logger:   logger.With("component", "session"),
		autosave: cfg.Autosave,
		resume:   cfg.Resume,
		commands: make(chan game.Command, 1),
		answers:  make(chan answer, 1),
		done:     make(chan struct{}),
		log:      game.NewMessageLog(cfg.LogSize, cfg.Width),
	}
	opts := cfg.Options
	opts.Display = (*display)(s)
	opts.Prompter = s
	s.engine = game.NewEngine(opts)
	return s
}

// Start shows the opening screen, resumes the default slot when configured and
// launches the engine goroutine. It returns once the session accepts commands.
func (s *Session) Start(ctx context.Context) {
	s.mu.Lock()
	if s.started {
		s.mu.Unlock()
		return
	}
	s.started = true
	ctx, s.cancel = context.WithCancel(ctx)
	s.mu.Unlock()

	s.engine.Start()
	if s.resume {
		if err := s.engine.LoadDefault(ctx); err != nil {
			s.logger.Warn("resume failed", "error", err)
		}
	}
	s.publish()

	go s.run(ctx)
}

func (s *Session) run(ctx context.Context) {
	defer close(s.done)
	for {
		select {
		case <-ctx.Done():
			s.finish(ctx.Err())
			return
		case cmd := <-s.commands:
			err := s.engine.Execute(ctx, cmd)
			s.publish()
			s.mu.Lock()
			s.busy = false
			s.revision++
			s.mu.Unlock()
			if err != nil {
				s.finish(err)
				return
			}
		}
	}
}

func (s *Session) finish(err error) {
	switch {
	case errors.Is(err, game.ErrQuit):
		s.logger.Info("session ended", "reason", "no volunteer")
	case errors.Is(err, context.Canceled):
		s.logger.Debug("session cancelled")
	default:
		s.logger.Error("engine stopped", "error", err)
	}
	s.mu.Lock()
	s.err = err
	s.revision++
	s.mu.Unlock()
}

// Submit queues a command. It is refused while another command is running or after
// the session ended.
func (s *Session) Submit(cmd game.Command) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.started || s.busy || s.err != nil {
		return false
	}
	s.busy = true
	s.revision++
	s.commands <- cmd
	return true
}

// Answer confirms the pending prompt with text.
func (s *Session) Answer(text string) bool {
	return s.reply(answer{text: text, confirmed: true})
}

// Cancel dismisses the pending prompt.
func (s *Session) Cancel() bool {
	return s.reply(answer{})
}

func (s *Session) reply(a answer) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.waiting {
		return false
	}
	s.waiting = false
	s.answers <- a
	return true
}

// Prompt implements game.Prompter on the engine goroutine.
func (s *Session) Prompt(ctx context.Context, text string) (string, error) {
	s.mu.Lock()
	s.prompt = text
	s.waiting = true
	s.revision++
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		s.prompt = ""
		s.waiting = false
		s.revision++
		s.mu.Unlock()
	}()

	select {
	case a := <-s.answers:
		if !a.confirmed {
			return "", game.ErrNotConfirmed
		}
		return a.text, nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// Pending returns the prompt the engine is waiting on.
func (s *Session) Pending() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.prompt, s.waiting
}

// Busy reports whether a command is in progress.
func (s *Session) Busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.busy
}

// Revision increases whenever anything a front-end draws has changed.
func (s *Session) Revision() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.revision
}

// Messages copies the last n lines of engine output.
func (s *Session) Messages(n int) []game.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	recent := s.log.Recent(n)
	out := make([]game.Message, len(recent))
	copy(out, recent)
	return out
}

// View returns the ship summary published after the last command.
func (s *Session) View() game.View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view
}

func (s *Session) publish() {
	v := s.engine.View()
	s.mu.Lock()
	s.view = v
	s.revision++
	s.mu.Unlock()
}

// Done is closed when the engine goroutine exits.
func (s *Session) Done() <-chan struct{} {
	return s.done
}

// Err returns why the session ended, or nil while it runs.
func (s *Session) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Close stops the engine goroutine and autosaves an unfinished game to the default slot.
func (s *Session) Close(ctx context.Context) error {
	s.mu.Lock()
	cancel := s.cancel
	s.mu.Unlock()
	if cancel == nil {
		return nil
	}
	cancel()
	<-s.done

	if !s.autosave || s.engine.Finished() {
		return nil
	}
	if err := s.engine.SaveDefault(ctx); err != nil {
		return fmt.Errorf("autosave: %w", err)
	}
	return nil
}

// display routes engine output into the locked log.
type display Session

func (d *display) Add(text string, priority game.MsgPriority) {
	s := (*Session)(d)
	s.mu.Lock()
	s.log.Add(text, priority)
	s.revision++
	s.mu.Unlock()
}

func (d *display) Clear() {
	s := (*Session)(d)
	s.mu.Lock()
	s.log.Clear()
	s.revision++
	s.mu.Unlock()
}
