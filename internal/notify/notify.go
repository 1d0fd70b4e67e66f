// Package notify delivers short user-facing messages. It replaces on-screen
// toasts: callers report outcomes through a Notifier and never touch
// presentation state directly.
package notify

import (
	"fmt"
	"io"
	"log/slog"
)

type Notifier interface {
	Notify(message string)
}

// Func adapts a function to Notifier.
type Func func(message string)

func (f Func) Notify(message string) { f(message) }

// Writer prints each message on its own line.
func Writer(w io.Writer) Notifier {
	return Func(func(message string) {
		fmt.Fprintln(w, message)
	})
}

// Slog logs each message at info level.
func Slog(logger *slog.Logger) Notifier {
	if logger == nil {
		logger = slog.Default()
	}
	return Func(func(message string) {
		logger.Info("notify", "message", message)
	})
}

// Recorder keeps every message it receives, in order.
type Recorder struct {
	Messages []string
}

func (r *Recorder) Notify(message string) {
	r.Messages = append(r.Messages, message)
}

// Last returns the most recent message, or "" if there is none.
func (r *Recorder) Last() string {
	if len(r.Messages) == 0 {
		return ""
	}
	return r.Messages[len(r.Messages)-1]
}
