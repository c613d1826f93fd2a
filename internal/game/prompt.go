package game

import (
	"context"
	"errors"
	"math"
	"strconv"
	"strings"
)

// ErrNotConfirmed is returned by a Prompter when the operator cancels a request.
var ErrNotConfirmed = errors.New("input not confirmed")

// Prompter is the engine's input boundary. Prompt blocks until the operator answers,
// cancels (ErrNotConfirmed) or ctx is done.
type Prompter interface {
	Prompt(ctx context.Context, prompt string) (string, error)
}

// ask returns the trimmed, lower-cased answer. ok is false when the operator did not
// confirm; err is only set when the context ended.
func (e *Engine) ask(ctx context.Context, prompt string) (answer string, ok bool, err error) {
	raw, err := e.in.Prompt(ctx, prompt)
	if errors.Is(err, ErrNotConfirmed) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	answer = strings.ToLower(strings.TrimSpace(raw))
	e.out.Add(prompt+answer, MsgPrompt)
	return answer, true, nil
}

// askFloat asks for a finite number. Parse failures count as not confirmed.
func (e *Engine) askFloat(ctx context.Context, prompt string) (float64, bool, error) {
	answer, ok, err := e.ask(ctx, prompt)
	if err != nil || !ok {
		return 0, false, err
	}
	v, perr := strconv.ParseFloat(answer, 64)
	if perr != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false, nil
	}
	return v, true, nil
}

// askInt asks for a whole number. Parse failures count as not confirmed.
func (e *Engine) askInt(ctx context.Context, prompt string) (int, bool, error) {
	answer, ok, err := e.ask(ctx, prompt)
	if err != nil || !ok {
		return 0, false, err
	}
	v, perr := strconv.Atoi(answer)
	if perr != nil {
		return 0, false, nil
	}
	return v, true, nil
}
