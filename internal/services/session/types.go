package session

import (
	"time"

	"go.uber.org/zap"

	"github.com/KirkDiggler/playtime/internal/common/clock"
	"github.com/KirkDiggler/playtime/internal/common/uuid"
	"github.com/KirkDiggler/playtime/internal/models"
	"github.com/KirkDiggler/playtime/internal/pricing"
	paymentRepo "github.com/KirkDiggler/playtime/internal/repositories/payment"
	reservationRepo "github.com/KirkDiggler/playtime/internal/repositories/reservation"
	sessionRepo "github.com/KirkDiggler/playtime/internal/repositories/session"
	stationRepo "github.com/KirkDiggler/playtime/internal/repositories/station"
	"github.com/KirkDiggler/playtime/internal/store"
)

// Config holds configuration for the session service
type Config struct {
	// Repository dependencies
	SessionRepo     sessionRepo.Repository
	ReservationRepo reservationRepo.Repository
	StationRepo     stationRepo.Repository
	PaymentRepo     paymentRepo.Repository

	// Transactor groups each command's writes into one transaction
	Transactor store.Transactor

	// Tariff prices extensions at the standard rate
	Tariff *pricing.Tariff

	// Service dependencies
	Clock         clock.Clock
	UUIDGenerator uuid.UUID

	// ExpiryFlags is reset when a session is extended or terminated; optional
	ExpiryFlags ExpiryFlags

	Logger *zap.Logger
}

// StartSessionInput contains parameters for starting a session
type StartSessionInput struct {
	ReservationID string
	OperatorID    string
}

// StartSessionOutput contains the started session
type StartSessionOutput struct {
	Session   *models.Session
	Remaining time.Duration
}

// PauseSessionInput contains parameters for pausing a session
type PauseSessionInput struct {
	SessionID  string
	OperatorID string
}

// PauseSessionOutput contains the paused session and its frozen remaining time
type PauseSessionOutput struct {
	Session   *models.Session
	Remaining time.Duration
}

// ResumeSessionInput contains parameters for resuming a session
type ResumeSessionInput struct {
	SessionID  string
	OperatorID string
}

// ResumeSessionOutput contains the resumed session
type ResumeSessionOutput struct {
	Session   *models.Session
	Remaining time.Duration
}

// ExtendSessionInput contains parameters for extending a session
type ExtendSessionInput struct {
	SessionID         string
	AdditionalMinutes int
	PaymentMethod     models.PaymentMethod
	OperatorID        string
}

// ExtendSessionOutput contains the extended session and the payment receipt
type ExtendSessionOutput struct {
	Session   *models.Session
	Receipt   *models.Receipt
	Remaining time.Duration
}

// TerminateSessionInput contains parameters for terminating a session
type TerminateSessionInput struct {
	SessionID  string
	OperatorID string
}

// TerminateSessionOutput contains the completed session
type TerminateSessionOutput struct {
	Session *models.Session

	// Played is the paid time actually consumed
	Played time.Duration

	// Unused is the paid time left when the session ended
	Unused time.Duration
}

// GetSessionInput contains parameters for reading a session
type GetSessionInput struct {
	SessionID string
}

// GetSessionOutput contains a session with its time accounting at the moment of the read
type GetSessionOutput struct {
	Session   *models.Session
	Status    models.SessionStatus
	Elapsed   time.Duration
	Remaining time.Duration
	Expired   bool
}
