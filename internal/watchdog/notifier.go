package watchdog

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/KirkDiggler/playtime/internal/common/logger"
)

// EventKind names the condition a sweep detected
type EventKind string

const (
	// EventLowTime is raised once when a session's remaining time drops to the threshold
	EventLowTime EventKind = "low_time"

	// EventSessionEnded is raised once when a session's paid time runs out
	EventSessionEnded EventKind = "session_ended"
)

// Event is a one-time notice about an active session
type Event struct {
	Kind      EventKind
	SessionID string
	StationID string
	Remaining time.Duration
	At        time.Time
}

//go:generate mockgen -package=mocks -destination=mocks/mock_notifier.go github.com/KirkDiggler/playtime/internal/watchdog Notifier
type Notifier interface {
	Notify(ctx context.Context, event Event) error
}

// LogNotifier writes every event to the log
type LogNotifier struct {
	Logger *zap.Logger
}

// Notify logs the event at info level
func (n *LogNotifier) Notify(_ context.Context, event Event) error {
	logger.OrNop(n.Logger).Info("session notice",
		zap.String("event", string(event.Kind)),
		zap.String("session_id", event.SessionID),
		zap.String("station_id", event.StationID),
		zap.Duration("remaining", event.Remaining),
	)
	return nil
}

// ChannelNotifier hands events to a consumer over a buffered channel.
// When the buffer is full the event is dropped and ErrDropped returned, so
// the watchdog raises it again on the next sweep.
type ChannelNotifier struct {
	events chan Event
	log    *zap.Logger
}

// NewChannelNotifier creates a notifier with room for buffer pending events
func NewChannelNotifier(buffer int, log *zap.Logger) *ChannelNotifier {
	if buffer < 1 {
		buffer = 1
	}
	return &ChannelNotifier{
		events: make(chan Event, buffer),
		log:    logger.OrNop(log),
	}
}

// Events returns the channel the consumer reads from
func (n *ChannelNotifier) Events() <-chan Event {
	return n.events
}

// Notify never blocks
func (n *ChannelNotifier) Notify(_ context.Context, event Event) error {
	select {
	case n.events <- event:
		return nil
	default:
		n.log.Warn("event dropped, consumer is behind",
			zap.String("event", string(event.Kind)),
			zap.String("session_id", event.SessionID),
		)
		return ErrDropped
	}
}

// MultiNotifier fans an event out to every notifier
type MultiNotifier []Notifier

// Notify calls every notifier and joins their errors
func (m MultiNotifier) Notify(ctx context.Context, event Event) error {
	var errs []error
	for _, n := range m {
		if err := n.Notify(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
