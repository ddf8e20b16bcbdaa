package report

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/KirkDiggler/playtime/internal/common/clock"
	"github.com/KirkDiggler/playtime/internal/common/logger"
	"github.com/KirkDiggler/playtime/internal/models"
	paymentRepo "github.com/KirkDiggler/playtime/internal/repositories/payment"
	reservationRepo "github.com/KirkDiggler/playtime/internal/repositories/reservation"
	sessionRepo "github.com/KirkDiggler/playtime/internal/repositories/session"
	stationRepo "github.com/KirkDiggler/playtime/internal/repositories/station"
)

type service struct {
	reservationRepo reservationRepo.Repository
	paymentRepo     paymentRepo.Repository
	stationRepo     stationRepo.Repository
	sessionRepo     sessionRepo.Repository
	clock           clock.Clock
	log             *zap.Logger
}

// NewService creates a new report service
func NewService(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.ReservationRepo == nil {
		return nil, ErrNilReservationRepo
	}
	if cfg.PaymentRepo == nil {
		return nil, ErrNilPaymentRepo
	}
	if cfg.StationRepo == nil {
		return nil, ErrNilStationRepo
	}
	if cfg.SessionRepo == nil {
		return nil, ErrNilSessionRepo
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	return &service{
		reservationRepo: cfg.ReservationRepo,
		paymentRepo:     cfg.PaymentRepo,
		stationRepo:     cfg.StationRepo,
		sessionRepo:     cfg.SessionRepo,
		clock:           cfg.Clock,
		log:             logger.OrNop(cfg.Logger),
	}, nil
}

// GetDailyActivity merges the day's reservations and payments into one
// time-ordered list. Cancelled reservations are listed but not totalled.
func (s *service) GetDailyActivity(ctx context.Context, input *GetDailyActivityInput) (*GetDailyActivityOutput, error) {
	day := s.clock.Now()
	if input != nil && !input.Day.IsZero() {
		day = input.Day
	}
	day = models.Day(day)

	reservations, err := s.reservationRepo.ListReservationsByDay(ctx, &reservationRepo.ListReservationsByDayInput{Day: day})
	if err != nil {
		return nil, err
	}
	payments, err := s.paymentRepo.ListPaymentsByDay(ctx, &paymentRepo.ListPaymentsByDayInput{Day: day})
	if err != nil {
		return nil, err
	}

	activities := make([]Activity, 0, len(reservations.Reservations)+len(payments.Payments))
	for _, r := range reservations.Reservations {
		activities = append(activities, ReservationActivity{Reservation: r})
	}
	for _, p := range payments.Payments {
		activities = append(activities, PaymentActivity{Payment: p})
	}
	sort.SliceStable(activities, func(i, j int) bool {
		return activities[i].OccurredAt().Before(activities[j].OccurredAt())
	})

	output := &GetDailyActivityOutput{
		Day:              day,
		Activities:       activities,
		ReservationTotal: decimal.Zero,
		PaymentTotal:     decimal.Zero,
	}
	for _, a := range activities {
		if !a.Counted() {
			continue
		}
		switch a.(type) {
		case ReservationActivity:
			output.ReservationCount++
			output.ReservationTotal = output.ReservationTotal.Add(a.Amount())
		case PaymentActivity:
			output.PaymentCount++
			output.PaymentTotal = output.PaymentTotal.Add(a.Amount())
		}
	}
	output.Total = output.ReservationTotal.Add(output.PaymentTotal)

	s.log.Debug("daily activity",
		zap.Time("day", day),
		zap.Int("reservations", output.ReservationCount),
		zap.Int("payments", output.PaymentCount),
		zap.String("total", output.Total.String()),
	)
	return output, nil
}

// GetStationBoard reports each station's state. A station holding an open
// session shows that session even when it is flagged out of service.
func (s *service) GetStationBoard(ctx context.Context, input *GetStationBoardInput) (*GetStationBoardOutput, error) {
	stations, err := s.stationRepo.ListStations(ctx, &stationRepo.ListStationsInput{})
	if err != nil {
		return nil, err
	}
	open, err := s.sessionRepo.ListSessionsByStatus(ctx, &sessionRepo.ListSessionsByStatusInput{
		Statuses: []models.SessionStatus{models.SessionStatusActive, models.SessionStatusPaused},
	})
	if err != nil {
		return nil, err
	}

	byStation := make(map[string]*models.Session, len(open.Sessions))
	for _, sess := range open.Sessions {
		byStation[sess.StationID] = sess
	}

	now := s.clock.Now()
	board := &models.Board{At: now, Stations: make([]*models.StationStatus, 0, len(stations.Stations))}
	for _, st := range stations.Stations {
		status := &models.StationStatus{
			StationID:   st.ID,
			StationName: st.Name,
			State:       models.StationStateFree,
		}
		if st.OutOfService {
			status.State = models.StationStateOutOfService
		}
		if sess, ok := byStation[st.ID]; ok {
			status.SessionID = sess.ID
			status.Remaining = sess.Remaining(now)
			if sess.Status == models.SessionStatusPaused {
				status.State = models.StationStatePaused
			} else {
				status.State = models.StationStateOccupied
				status.Expired = status.Remaining == 0
			}
		}
		board.Stations = append(board.Stations, status)
	}

	return &GetStationBoardOutput{Board: board}, nil
}
