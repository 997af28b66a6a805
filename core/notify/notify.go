package notify

import (
	"log/slog"
	"sync"
)

// Notifier receives the transient user-facing notifications that mutations
// and session transitions produce. Every mutation surfaces exactly one
// success or failure message through this interface.
type Notifier interface {
	Success(message string)
	Error(message string)
}

// Slog routes notifications to a structured logger. This is the default
// for headless consumers of the SDK where there is no UI to toast into.
type Slog struct {
	log *slog.Logger
}

// NewSlog creates a logger-backed notifier.
func NewSlog(log *slog.Logger) *Slog {
	return &Slog{log: log}
}

func (n *Slog) Success(message string) {
	n.log.Info(message, slog.String("notification", "success"))
}

func (n *Slog) Error(message string) {
	n.log.Warn(message, slog.String("notification", "error"))
}

// Nop discards all notifications.
type Nop struct{}

func (Nop) Success(string) {}
func (Nop) Error(string)   {}

// Recorder captures notifications for assertions in tests.
type Recorder struct {
	mu        sync.Mutex
	successes []string
	errors    []string
}

func (r *Recorder) Success(message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.successes = append(r.successes, message)
}

func (r *Recorder) Error(message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errors = append(r.errors, message)
}

// Successes returns a copy of the recorded success messages.
func (r *Recorder) Successes() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.successes...)
}

// Errors returns a copy of the recorded error messages.
func (r *Recorder) Errors() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.errors...)
}
