// Package watchdog sweeps active sessions on an interval and raises one-time
// low-time and end-of-time notices. It never changes a session; an ended
// session stays active until the operator extends or terminates it.
package watchdog

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/KirkDiggler/playtime/internal/common/clock"
	"github.com/KirkDiggler/playtime/internal/common/logger"
	"github.com/KirkDiggler/playtime/internal/models"
	sessionRepo "github.com/KirkDiggler/playtime/internal/repositories/session"
)

const (
	DefaultInterval         = 30 * time.Second
	DefaultLowTimeThreshold = 2 * time.Minute
)

// Config holds configuration for the watchdog
type Config struct {
	SessionRepo sessionRepo.Repository
	Notifier    Notifier
	Clock       clock.Clock

	// Interval between sweeps, DefaultInterval when zero
	Interval time.Duration

	// LowTimeThreshold is the remaining time that raises EventLowTime
	LowTimeThreshold time.Duration

	Logger *zap.Logger
}

// Watchdog raises expiry notices for active sessions. Flags live in memory
// for the life of the process and remember the paid duration they were
// raised against; a session whose paid duration has grown since, such as one
// extended from another process, starts over with no flags.
type Watchdog struct {
	sessions  sessionRepo.Repository
	notifier  Notifier
	clock     clock.Clock
	interval  time.Duration
	threshold time.Duration
	log       *zap.Logger

	mu      sync.Mutex
	lowTime map[string]time.Duration
	ended   map[string]time.Duration
}

// New creates a watchdog
func New(cfg *Config) (*Watchdog, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.SessionRepo == nil {
		return nil, ErrNilSessionRepo
	}
	if cfg.Notifier == nil {
		return nil, ErrNilNotifier
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	w := &Watchdog{
		sessions:  cfg.SessionRepo,
		notifier:  cfg.Notifier,
		clock:     cfg.Clock,
		interval:  cfg.Interval,
		threshold: cfg.LowTimeThreshold,
		log:       logger.OrNop(cfg.Logger),
		lowTime:   make(map[string]time.Duration),
		ended:     make(map[string]time.Duration),
	}
	if w.interval <= 0 {
		w.interval = DefaultInterval
	}
	if w.threshold <= 0 {
		w.threshold = DefaultLowTimeThreshold
	}
	return w, nil
}

// Run sweeps once immediately and then on every tick until ctx is done.
// A failed sweep is logged and the next tick tries again.
func (w *Watchdog) Run(ctx context.Context) error {
	w.log.Info("watchdog started",
		zap.Duration("interval", w.interval),
		zap.Duration("low_time_threshold", w.threshold),
	)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.sweep(ctx)
	for {
		select {
		case <-ctx.Done():
			w.log.Info("watchdog stopped")
			return nil
		case <-ticker.C:
			w.sweep(ctx)
		}
	}
}

func (w *Watchdog) sweep(ctx context.Context) {
	if _, err := w.Scan(ctx); err != nil && ctx.Err() == nil {
		w.log.Warn("watchdog sweep failed", zap.Error(err))
	}
}

// Scan checks every active session once and returns the events it raised
func (w *Watchdog) Scan(ctx context.Context) ([]Event, error) {
	out, err := w.sessions.ListSessionsByStatus(ctx, &sessionRepo.ListSessionsByStatusInput{
		Statuses: []models.SessionStatus{models.SessionStatusActive},
	})
	if err != nil {
		return nil, err
	}

	now := w.clock.Now()
	pending := w.collect(out.Sessions, now)

	raised := make([]Event, 0, len(pending))
	for _, event := range pending {
		if err := w.notifier.Notify(ctx, event); err != nil {
			w.log.Warn("notifier failed, will retry next sweep",
				zap.String("event", string(event.Kind)),
				zap.String("session_id", event.SessionID),
				zap.Error(err),
			)
			w.unflag(event)
			continue
		}
		w.log.Info("session notice raised",
			zap.String("event", string(event.Kind)),
			zap.String("session_id", event.SessionID),
			zap.Duration("remaining", event.Remaining),
		)
		raised = append(raised, event)
	}

	w.log.Debug("watchdog sweep",
		zap.Int("active", len(out.Sessions)),
		zap.Int("raised", len(raised)),
	)
	return raised, nil
}

// collect flags sessions and returns the events they owe. A session seen at
// zero for the first time owes only the end notice; its low-time flag is set
// without a notice.
func (w *Watchdog) collect(sessions []*models.Session, now time.Time) []Event {
	w.mu.Lock()
	defer w.mu.Unlock()

	var events []Event
	for _, sess := range sessions {
		w.forgetIfExtended(sess)

		remaining := sess.Remaining(now)
		event := Event{
			SessionID: sess.ID,
			StationID: sess.StationID,
			Remaining: remaining,
			At:        now,
		}

		switch {
		case remaining == 0:
			w.lowTime[sess.ID] = sess.PaidDuration
			if _, done := w.ended[sess.ID]; done {
				continue
			}
			w.ended[sess.ID] = sess.PaidDuration
			event.Kind = EventSessionEnded
			events = append(events, event)
		case remaining <= w.threshold:
			if _, done := w.lowTime[sess.ID]; done {
				continue
			}
			w.lowTime[sess.ID] = sess.PaidDuration
			event.Kind = EventLowTime
			events = append(events, event)
		}
	}
	return events
}

func (w *Watchdog) forgetIfExtended(sess *models.Session) {
	if paid, ok := w.lowTime[sess.ID]; ok && paid < sess.PaidDuration {
		delete(w.lowTime, sess.ID)
		delete(w.ended, sess.ID)
	}
	if paid, ok := w.ended[sess.ID]; ok && paid < sess.PaidDuration {
		delete(w.lowTime, sess.ID)
		delete(w.ended, sess.ID)
	}
}

func (w *Watchdog) unflag(event Event) {
	w.mu.Lock()
	defer w.mu.Unlock()

	switch event.Kind {
	case EventSessionEnded:
		delete(w.ended, event.SessionID)
	case EventLowTime:
		delete(w.lowTime, event.SessionID)
	}
}

// Reset forgets both notices for a session, so an extended session can be
// warned again when its new time runs low
func (w *Watchdog) Reset(sessionID string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	delete(w.lowTime, sessionID)
	delete(w.ended, sessionID)
}

// Flagged reports which notices a session has already received
func (w *Watchdog) Flagged(sessionID string) (lowTime, ended bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	_, lowTime = w.lowTime[sessionID]
	_, ended = w.ended[sessionID]
	return lowTime, ended
}
