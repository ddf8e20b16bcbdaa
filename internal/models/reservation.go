package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReservationStatus represents the current state of a reservation
type ReservationStatus string

const (
	// ReservationStatusPending indicates the slot is purchased but not started
	ReservationStatusPending ReservationStatus = "pending"

	// ReservationStatusActive indicates a session is running for the reservation
	ReservationStatusActive ReservationStatus = "active"

	// ReservationStatusCompleted indicates the session was terminated
	ReservationStatusCompleted ReservationStatus = "completed"

	// ReservationStatusCancelled indicates the reservation was cancelled before starting
	ReservationStatusCancelled ReservationStatus = "cancelled"
)

// IsValid reports whether the status is known
func (s ReservationStatus) IsValid() bool {
	switch s {
	case ReservationStatusPending, ReservationStatusActive, ReservationStatusCompleted, ReservationStatusCancelled:
		return true
	}
	return false
}

// CanTransitionTo reports whether next is reachable from s.
// Statuses only move forward, except that a pending reservation may be cancelled.
func (s ReservationStatus) CanTransitionTo(next ReservationStatus) bool {
	switch s {
	case ReservationStatusPending:
		return next == ReservationStatusActive || next == ReservationStatusCancelled
	case ReservationStatusActive:
		return next == ReservationStatusCompleted
	}
	return false
}

// Reservation is a purchased slot on a station
type Reservation struct {
	// ID is the unique identifier for the reservation
	ID string

	// TicketNumber is the unique printed ticket
	TicketNumber string

	// ClientID is the client who bought the slot
	ClientID string

	// StationID is the reserved station
	StationID string

	// GameID is the game to be played
	GameID string

	// Duration is the requested play time
	Duration time.Duration

	// UnitPrice is the price charged for the duration, after any promotion
	UnitPrice decimal.Decimal

	// PromotionID is the promotion applied to the price, if any
	PromotionID string

	// ReferralCode is the code cited by the client, if any
	ReferralCode string

	// Status is the current state of the reservation
	Status ReservationStatus

	// CreatedBy is the operator who created the reservation
	CreatedBy string

	// CreatedAt is when the reservation was created
	CreatedAt time.Time

	// UpdatedAt is when the reservation was last changed
	UpdatedAt time.Time
}
