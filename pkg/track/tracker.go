package track

import (
	"sort"

	"go.uber.org/zap"
)

// Event is one analytics event: a name plus flat string properties.
type Event struct {
	Name  string
	Props map[string]string
}

// Tracker receives analytics events. Implementations must tolerate being
// called from event handlers, synchronously.
type Tracker interface {
	Track(event Event)
}

// TrackerFunc adapts a function into a Tracker.
type TrackerFunc func(Event)

// Track calls the underlying function.
func (fn TrackerFunc) Track(event Event) {
	fn(event)
}

// ZapTracker emits events through a structured logger, the default transport
// when no external analytics backend is wired.
type ZapTracker struct {
	logger *zap.Logger
}

// NewZapTracker constructs a tracker over the given logger. A nil logger is
// replaced with a no-op one.
func NewZapTracker(logger *zap.Logger) *ZapTracker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ZapTracker{logger: logger}
}

// Track logs the event at Info with its properties as fields, keys sorted so
// output stays deterministic.
func (t *ZapTracker) Track(event Event) {
	fields := make([]zap.Field, 0, len(event.Props)+1)
	fields = append(fields, zap.String("event", event.Name))

	keys := make([]string, 0, len(event.Props))
	for key := range event.Props {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		fields = append(fields, zap.String(key, event.Props[key]))
	}

	t.logger.Info("track", fields...)
}
