package models

import (
	"time"

	"github.com/KirkDiggler/playtime/internal/timekeeping"
)

// SessionStatus represents the current state of a session
type SessionStatus string

const (
	// SessionStatusActive indicates paid time is being consumed
	SessionStatusActive SessionStatus = "active"

	// SessionStatusPaused indicates consumption is frozen
	SessionStatusPaused SessionStatus = "paused"

	// SessionStatusCompleted indicates the session has ended
	SessionStatusCompleted SessionStatus = "completed"
)

// IsValid reports whether the status is known
func (s SessionStatus) IsValid() bool {
	switch s {
	case SessionStatusActive, SessionStatusPaused, SessionStatusCompleted:
		return true
	}
	return false
}

// IsOpen reports whether the session still occupies its station
func (s SessionStatus) IsOpen() bool {
	return s == SessionStatusActive || s == SessionStatusPaused
}

// CanTransitionTo reports whether next is reachable from s
func (s SessionStatus) CanTransitionTo(next SessionStatus) bool {
	switch s {
	case SessionStatusActive:
		return next == SessionStatusPaused || next == SessionStatusCompleted
	case SessionStatusPaused:
		return next == SessionStatusActive || next == SessionStatusCompleted
	}
	return false
}

// Session is the live occupancy of a station, created from one reservation
type Session struct {
	// ID is the unique identifier for the session
	ID string

	// ReservationID is the reservation this session was started from
	ReservationID string

	// ClientID is the client occupying the station
	ClientID string

	// StationID is the occupied station
	StationID string

	// GameID is the game being played
	GameID string

	// StartedAt is when the session was started
	StartedAt time.Time

	// PaidDuration is the purchased time; it only grows
	PaidDuration time.Duration

	// PausedDuration is the accumulated time of closed pauses
	PausedDuration time.Duration

	// PausedAt is set only while the session is paused
	PausedAt *time.Time

	// EndedAt is set once, at completion
	EndedAt *time.Time

	// Status is the current state of the session
	Status SessionStatus

	// StartedBy is the operator who started the session
	StartedBy string

	// UpdatedAt is when the session was last changed
	UpdatedAt time.Time
}

// Span returns the timekeeping view of the session
func (s *Session) Span() timekeeping.Span {
	return timekeeping.Span{
		Start:    s.StartedAt,
		Paid:     s.PaidDuration,
		Paused:   s.PausedDuration,
		PausedAt: s.PausedAt,
		EndedAt:  s.EndedAt,
	}
}

// Remaining returns the paid time left at now
func (s *Session) Remaining(now time.Time) time.Duration {
	return timekeeping.Remaining(s.Span(), now)
}

// Elapsed returns the paid time consumed at now
func (s *Session) Elapsed(now time.Time) time.Duration {
	return timekeeping.Elapsed(s.Span(), now)
}
