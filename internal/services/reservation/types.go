package reservation

import (
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/KirkDiggler/playtime/internal/common/clock"
	"github.com/KirkDiggler/playtime/internal/common/uuid"
	"github.com/KirkDiggler/playtime/internal/models"
	"github.com/KirkDiggler/playtime/internal/pricing"
	clientRepo "github.com/KirkDiggler/playtime/internal/repositories/client"
	promotionRepo "github.com/KirkDiggler/playtime/internal/repositories/promotion"
	reservationRepo "github.com/KirkDiggler/playtime/internal/repositories/reservation"
	stationRepo "github.com/KirkDiggler/playtime/internal/repositories/station"
	"github.com/KirkDiggler/playtime/internal/store"
	"github.com/KirkDiggler/playtime/internal/ticket"
)

// DefaultMinDuration is the shortest duration that can be reserved
const DefaultMinDuration = 15 * time.Minute

// Config holds configuration for the reservation service
type Config struct {
	// Repository dependencies
	ReservationRepo reservationRepo.Repository
	ClientRepo      clientRepo.Repository
	StationRepo     stationRepo.Repository
	PromotionRepo   promotionRepo.Repository

	Transactor store.Transactor
	Tariff     *pricing.Tariff

	// Service dependencies
	TicketGenerator ticket.Generator
	Clock           clock.Clock
	UUIDGenerator   uuid.UUID

	// MinDuration defaults to DefaultMinDuration
	MinDuration time.Duration

	Logger *zap.Logger
}

// CreateReservationInput contains parameters for booking a station
type CreateReservationInput struct {
	ClientID     string
	StationID    string
	GameID       string
	Duration     time.Duration
	ReferralCode string
	OperatorID   string
}

// CreateReservationOutput contains the new reservation and what it accrued
type CreateReservationOutput struct {
	Reservation *models.Reservation

	// Promotion is the discount applied to the price, nil when none was active
	Promotion *models.Promotion

	// PointsAwarded is the loyalty credit given to the client
	PointsAwarded int

	// Referrer is the referrer credited with a point, nil when the code was absent or unknown
	Referrer *models.Referrer
}

// QuoteReservationInput contains the duration to price
type QuoteReservationInput struct {
	Duration time.Duration
}

// QuoteReservationOutput contains the price the reservation would be sold at now
type QuoteReservationOutput struct {
	Base      decimal.Decimal
	Price     decimal.Decimal
	Currency  string
	Promotion *models.Promotion
}

// CancelReservationInput contains parameters for cancelling a reservation
type CancelReservationInput struct {
	ReservationID string
	OperatorID    string
}

// CancelReservationOutput contains the cancelled reservation
type CancelReservationOutput struct {
	Reservation *models.Reservation
}

// DeleteReservationInput contains parameters for deleting a reservation
type DeleteReservationInput struct {
	ReservationID string
	OperatorID    string
}

// GetReservationInput looks a reservation up by ID or, when empty, by ticket number
type GetReservationInput struct {
	ReservationID string
	TicketNumber  string
}

// GetReservationOutput contains the reservation
type GetReservationOutput struct {
	Reservation *models.Reservation
}
