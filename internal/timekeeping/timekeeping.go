// Package timekeeping computes elapsed and remaining paid time for an
// occupancy. Everything here is a pure function of its inputs; callers
// re-derive remaining time on every read.
package timekeeping

import "time"

// Span holds the timestamps that determine how much paid time has been used
type Span struct {
	// Start is when the occupancy began
	Start time.Time

	// Paid is the total purchased time, including extensions
	Paid time.Duration

	// Paused is the accumulated time spent in closed pauses
	Paused time.Duration

	// PausedAt is set while a pause is open
	PausedAt *time.Time

	// EndedAt is set once the occupancy is completed
	EndedAt *time.Time
}

// Elapsed returns the paid time consumed at now. While paused the value is
// frozen at the moment the pause began, and after completion it is frozen
// at the end timestamp.
func Elapsed(s Span, now time.Time) time.Duration {
	at := now
	switch {
	case s.PausedAt != nil:
		at = *s.PausedAt
	case s.EndedAt != nil:
		at = *s.EndedAt
	}

	elapsed := at.Sub(s.Start) - s.Paused
	if elapsed < 0 {
		return 0
	}
	return elapsed
}

// Remaining returns the paid time left at now, never below zero
func Remaining(s Span, now time.Time) time.Duration {
	remaining := s.Paid - Elapsed(s, now)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Overrun returns how far consumption has run past the paid time
func Overrun(s Span, now time.Time) time.Duration {
	over := Elapsed(s, now) - s.Paid
	if over < 0 {
		return 0
	}
	return over
}

// Expired reports whether no paid time is left
func Expired(s Span, now time.Time) bool {
	return Remaining(s, now) == 0
}

// ClosePause folds an open pause into the accumulated paused time.
// A span without an open pause is returned unchanged.
func ClosePause(s Span, now time.Time) Span {
	if s.PausedAt == nil {
		return s
	}
	if d := now.Sub(*s.PausedAt); d > 0 {
		s.Paused += d
	}
	s.PausedAt = nil
	return s
}
