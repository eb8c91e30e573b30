// Package notify carries user-facing feedback messages (toasts) from the
// services to whatever presents them.
package notify

import (
	"context"
	"sync"
	"time"

	"stockview-be/internal/logger"

	"go.uber.org/zap"
)

type Level string

const (
	LevelSuccess Level = "success"
	LevelInfo    Level = "info"
	LevelError   Level = "error"
)

type Notification struct {
	Level   Level     `json:"level"`
	Message string    `json:"message"`
	At      time.Time `json:"at"`
}

// Sink receives notifications. Delivery is fire-and-forget.
type Sink interface {
	Notify(ctx context.Context, level Level, message string)
}

// Nop discards everything.
type Nop struct{}

func (Nop) Notify(context.Context, Level, string) {}

// LogSink writes every notification to the context logger.
type LogSink struct{}

func (LogSink) Notify(ctx context.Context, level Level, message string) {
	log := logger.FromCtx(ctx).With(zap.String("component", "notify"), zap.String("level", string(level)))
	if level == LevelError {
		log.Warn(message)
		return
	}
	log.Info(message)
}

// DefaultRecorderCapacity bounds how many undrained notifications a Recorder keeps.
const DefaultRecorderCapacity = 50

// Recorder buffers notifications until the presentation layer drains them.
// The oldest entries are dropped once the buffer is full.
type Recorder struct {
	mu       sync.Mutex
	items    []Notification
	capacity int
	now      func() time.Time
}

func NewRecorder(capacity int) *Recorder {
	if capacity <= 0 {
		capacity = DefaultRecorderCapacity
	}
	return &Recorder{capacity: capacity, now: time.Now}
}

func (r *Recorder) Notify(_ context.Context, level Level, message string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = append(r.items, Notification{Level: level, Message: message, At: r.now()})
	if over := len(r.items) - r.capacity; over > 0 {
		r.items = append([]Notification(nil), r.items[over:]...)
	}
}

// Drain returns the buffered notifications oldest-first and empties the buffer.
func (r *Recorder) Drain() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := r.items
	r.items = nil
	if out == nil {
		out = []Notification{}
	}
	return out
}

// Peek returns a copy of the buffer without draining it.
func (r *Recorder) Peek() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Notification{}, r.items...)
}

type multi []Sink

// Multi fans a notification out to every non-nil sink.
func Multi(sinks ...Sink) Sink {
	out := make(multi, 0, len(sinks))
	for _, s := range sinks {
		if s != nil {
			out = append(out, s)
		}
	}
	return out
}

func (m multi) Notify(ctx context.Context, level Level, message string) {
	for _, s := range m {
		s.Notify(ctx, level, message)
	}
}
