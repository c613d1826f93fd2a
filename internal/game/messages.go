package game

import "strings"

// MsgPriority controls the colour a front-end gives a line.
type MsgPriority uint8

const (
	MsgInfo     MsgPriority = iota // cyan
	MsgWarning                     // yellow
	MsgCritical                    // red
	MsgReport                      // white: scans, tables and computer output
	MsgPrompt                      // green: echoed operator input
)

// Display is the engine's output boundary: line-oriented text plus a clear.
type Display interface {
	Add(text string, priority MsgPriority)
	Clear()
}

// Message is a single line of engine output.
type Message struct {
	Text     string
	Priority MsgPriority
}

// MessageLog is a bounded FIFO of messages. It implements Display.
type MessageLog struct {
	Messages []Message
	maxSize  int
	width    int
}

// NewMessageLog creates a log that keeps the most recent maxSize lines. Lines longer
// than width are word-wrapped; a width of 0 disables wrapping.
func NewMessageLog(maxSize, width int) *MessageLog {
	return &MessageLog{
		Messages: make([]Message, 0, maxSize),
		maxSize:  maxSize,
		width:    width,
	}
}

// Add appends text, one message per line, evicting the oldest when full. Report
// lines are column-aligned tables and are never wrapped.
func (l *MessageLog) Add(text string, priority MsgPriority) {
	width := l.width
	if priority == MsgReport {
		width = 0
	}
	for _, raw := range strings.Split(text, "\n") {
		for _, line := range wrapText(raw, width) {
			msg := Message{Text: line, Priority: priority}
			if len(l.Messages) >= l.maxSize {
				copy(l.Messages, l.Messages[1:])
				l.Messages[len(l.Messages)-1] = msg
			} else {
				l.Messages = append(l.Messages, msg)
			}
		}
	}
}

// Clear drops every message.
func (l *MessageLog) Clear() {
	l.Messages = l.Messages[:0]
}

// Recent returns the last n messages (or fewer if the log is shorter).
func (l *MessageLog) Recent(n int) []Message {
	if n > len(l.Messages) {
		n = len(l.Messages)
	}
	return l.Messages[len(l.Messages)-n:]
}

// wrapText splits s into lines no longer than maxWidth, breaking on spaces. Runs of
// spaces between words are kept, and continuation lines reuse the leading indent.
// A single word longer than maxWidth stays on its own line.
func wrapText(s string, maxWidth int) []string {
	if maxWidth <= 0 || len(s) <= maxWidth {
		return []string{s}
	}
	body := strings.TrimLeft(s, " ")
	if body == "" {
		return []string{""}
	}
	line := s[:len(s)-len(body)]
	indent := line
	if len(indent) > maxWidth/2 {
		indent = ""
	}

	var result []string
	for body != "" {
		end := strings.IndexByte(body, ' ')
		if end < 0 {
			end = len(body)
		}
		word := body[:end]
		rest := strings.TrimLeft(body[end:], " ")
		gap := body[end : len(body)-len(rest)]
		body = rest

		if strings.TrimSpace(line) != "" && len(line)+len(word) > maxWidth {
			result = append(result, strings.TrimRight(line, " "))
			line = indent
		}
		line += word + gap
	}
	return append(result, strings.TrimRight(line, " "))
}
