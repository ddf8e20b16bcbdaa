package report

import (
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/KirkDiggler/playtime/internal/common/clock"
	"github.com/KirkDiggler/playtime/internal/models"
	paymentRepo "github.com/KirkDiggler/playtime/internal/repositories/payment"
	reservationRepo "github.com/KirkDiggler/playtime/internal/repositories/reservation"
	sessionRepo "github.com/KirkDiggler/playtime/internal/repositories/session"
	stationRepo "github.com/KirkDiggler/playtime/internal/repositories/station"
)

// Config holds configuration for the report service
type Config struct {
	ReservationRepo reservationRepo.Repository
	PaymentRepo     paymentRepo.Repository
	StationRepo     stationRepo.Repository
	SessionRepo     sessionRepo.Repository
	Clock           clock.Clock
	Logger          *zap.Logger
}

// GetDailyActivityInput selects the day to report; zero means today
type GetDailyActivityInput struct {
	Day time.Time
}

// GetDailyActivityOutput contains the day's activity in time order
type GetDailyActivityOutput struct {
	Day        time.Time
	Activities []Activity

	ReservationCount int
	PaymentCount     int

	ReservationTotal decimal.Decimal
	PaymentTotal     decimal.Decimal
	Total            decimal.Decimal
}

// GetStationBoardInput is empty; the board always covers every station
type GetStationBoardInput struct{}

// GetStationBoardOutput contains the board
type GetStationBoardOutput struct {
	Board *models.Board
}
