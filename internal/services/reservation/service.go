package reservation

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/KirkDiggler/playtime/internal/common/clock"
	"github.com/KirkDiggler/playtime/internal/common/failure"
	"github.com/KirkDiggler/playtime/internal/common/logger"
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

type service struct {
	reservationRepo reservationRepo.Repository
	clientRepo      clientRepo.Repository
	stationRepo     stationRepo.Repository
	promotionRepo   promotionRepo.Repository
	tx              store.Transactor
	tariff          *pricing.Tariff
	tickets         ticket.Generator
	clock           clock.Clock
	uuid            uuid.UUID
	minDuration     time.Duration
	log             *zap.Logger
}

// NewService creates a new reservation service
func NewService(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.ReservationRepo == nil {
		return nil, ErrNilReservationRepo
	}
	if cfg.ClientRepo == nil {
		return nil, ErrNilClientRepo
	}
	if cfg.StationRepo == nil {
		return nil, ErrNilStationRepo
	}
	if cfg.PromotionRepo == nil {
		return nil, ErrNilPromotionRepo
	}
	if cfg.Transactor == nil {
		return nil, ErrNilTransactor
	}
	if cfg.Tariff == nil {
		return nil, ErrNilTariff
	}
	if cfg.TicketGenerator == nil {
		return nil, ErrNilTicketGenerator
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	minDuration := cfg.MinDuration
	if minDuration <= 0 {
		minDuration = DefaultMinDuration
	}

	return &service{
		reservationRepo: cfg.ReservationRepo,
		clientRepo:      cfg.ClientRepo,
		stationRepo:     cfg.StationRepo,
		promotionRepo:   cfg.PromotionRepo,
		tx:              cfg.Transactor,
		tariff:          cfg.Tariff,
		tickets:         cfg.TicketGenerator,
		clock:           cfg.Clock,
		uuid:            cfg.UUIDGenerator,
		minDuration:     minDuration,
		log:             logger.OrNop(cfg.Logger),
	}, nil
}

// CreateReservation sells a slot. Loyalty and referral points are credited
// now, in the same transaction as the reservation, not when play ends.
func (s *service) CreateReservation(ctx context.Context, input *CreateReservationInput) (*CreateReservationOutput, error) {
	if input == nil {
		return nil, failure.New(failure.InvalidInput, failure.ReasonMissingField, "input cannot be nil")
	}
	if input.Duration < s.minDuration {
		return nil, failure.Newf(failure.InvalidDuration, failure.ReasonDurationTooShort,
			"%s is shorter than the %s minimum", input.Duration, s.minDuration)
	}
	if input.ClientID == "" || input.StationID == "" || input.GameID == "" {
		return nil, failure.New(failure.InvalidInput, failure.ReasonMissingField, "client, station and game are required")
	}
	if err := requireOperator(input.OperatorID); err != nil {
		return nil, err
	}

	reservationID := s.uuid.NewUUID()
	code := strings.TrimSpace(input.ReferralCode)
	points := int(input.Duration / pricing.Block)

	var output *CreateReservationOutput
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		now := s.clock.Now()

		if _, err := s.clientRepo.GetClient(ctx, &clientRepo.GetClientInput{ClientID: input.ClientID}); err != nil {
			return err
		}

		station, err := s.stationRepo.GetStation(ctx, &stationRepo.GetStationInput{StationID: input.StationID})
		if err != nil {
			return err
		}
		if !station.Supports(input.GameID) {
			return failure.Newf(failure.PreconditionFailed, failure.ReasonGameNotSupported,
				"station %s does not offer game %s", station.ID, input.GameID)
		}

		promo, err := s.activePromotion(ctx, now)
		if err != nil {
			return err
		}

		res := &models.Reservation{
			ID:           reservationID,
			TicketNumber: s.tickets.Next(now),
			ClientID:     input.ClientID,
			StationID:    input.StationID,
			GameID:       input.GameID,
			Duration:     input.Duration,
			UnitPrice:    s.tariff.Price(input.Duration, promo, now),
			ReferralCode: code,
			Status:       models.ReservationStatusPending,
			CreatedBy:    input.OperatorID,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if promo != nil {
			res.PromotionID = promo.ID
		}
		if err := s.reservationRepo.CreateReservation(ctx, &reservationRepo.CreateReservationInput{Reservation: res}); err != nil {
			return err
		}

		if points > 0 {
			if err := s.clientRepo.AddLoyaltyPoints(ctx, &clientRepo.AddLoyaltyPointsInput{
				ClientID: input.ClientID,
				Points:   points,
			}); err != nil {
				return err
			}
		}

		var referrer *models.Referrer
		if code != "" {
			referrer, err = s.clientRepo.FindReferrerByCode(ctx, &clientRepo.FindReferrerByCodeInput{Code: code})
			switch {
			case errors.Is(err, failure.NotFound):
				referrer = nil
			case err != nil:
				return err
			default:
				if err := s.clientRepo.AddReferralPoint(ctx, &clientRepo.AddReferralPointInput{ReferrerID: referrer.ID}); err != nil {
					return err
				}
			}
		}

		output = &CreateReservationOutput{
			Reservation:   res,
			Promotion:     promo,
			PointsAwarded: points,
			Referrer:      referrer,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	fields := []zap.Field{
		zap.String("reservation_id", output.Reservation.ID),
		zap.String("ticket", output.Reservation.TicketNumber),
		zap.String("station_id", output.Reservation.StationID),
		zap.Duration("duration", output.Reservation.Duration),
		zap.String("price", output.Reservation.UnitPrice.String()),
		zap.Int("points", points),
		zap.String("operator_id", input.OperatorID),
	}
	if output.Referrer != nil {
		fields = append(fields, zap.String("referrer_id", output.Referrer.ID))
	} else if code != "" {
		fields = append(fields, zap.String("unknown_referral_code", code))
	}
	s.log.Info("reservation created", fields...)

	return output, nil
}

// QuoteReservation prices a duration with the promotion active now
func (s *service) QuoteReservation(ctx context.Context, input *QuoteReservationInput) (*QuoteReservationOutput, error) {
	if input == nil {
		return nil, failure.New(failure.InvalidInput, failure.ReasonMissingField, "input cannot be nil")
	}
	if input.Duration < s.minDuration {
		return nil, failure.Newf(failure.InvalidDuration, failure.ReasonDurationTooShort,
			"%s is shorter than the %s minimum", input.Duration, s.minDuration)
	}

	now := s.clock.Now()
	promo, err := s.activePromotion(ctx, now)
	if err != nil {
		return nil, err
	}

	return &QuoteReservationOutput{
		Base:      s.tariff.Base(input.Duration),
		Price:     s.tariff.Price(input.Duration, promo, now),
		Currency:  s.tariff.Currency,
		Promotion: promo,
	}, nil
}

// CancelReservation moves a pending reservation to cancelled
func (s *service) CancelReservation(ctx context.Context, input *CancelReservationInput) (*CancelReservationOutput, error) {
	if input == nil || input.ReservationID == "" {
		return nil, failure.New(failure.InvalidInput, failure.ReasonMissingField, "reservation id is required")
	}
	if err := requireOperator(input.OperatorID); err != nil {
		return nil, err
	}

	var cancelled *models.Reservation
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		now := s.clock.Now()

		res, err := s.reservationRepo.GetReservation(ctx, &reservationRepo.GetReservationInput{ReservationID: input.ReservationID})
		if err != nil {
			return err
		}
		if !res.Status.CanTransitionTo(models.ReservationStatusCancelled) {
			return failure.Newf(failure.InvalidTransition, failure.ReasonReservationNotPending,
				"reservation %s is %s", res.ID, res.Status)
		}

		if err := s.reservationRepo.UpdateReservationStatus(ctx, &reservationRepo.UpdateReservationStatusInput{
			ReservationID: res.ID,
			Status:        models.ReservationStatusCancelled,
			UpdatedAt:     now,
		}); err != nil {
			return err
		}

		res.Status = models.ReservationStatusCancelled
		res.UpdatedAt = now
		cancelled = res
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("reservation cancelled",
		zap.String("reservation_id", cancelled.ID),
		zap.String("operator_id", input.OperatorID),
	)
	return &CancelReservationOutput{Reservation: cancelled}, nil
}

// DeleteReservation removes a reservation unless a session is running for it
func (s *service) DeleteReservation(ctx context.Context, input *DeleteReservationInput) error {
	if input == nil || input.ReservationID == "" {
		return failure.New(failure.InvalidInput, failure.ReasonMissingField, "reservation id is required")
	}
	if err := requireOperator(input.OperatorID); err != nil {
		return err
	}

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		res, err := s.reservationRepo.GetReservation(ctx, &reservationRepo.GetReservationInput{ReservationID: input.ReservationID})
		if err != nil {
			return err
		}
		if res.Status == models.ReservationStatusActive {
			return failure.Newf(failure.PreconditionFailed, failure.ReasonReservationActive,
				"reservation %s has a session in play", res.ID)
		}
		return s.reservationRepo.DeleteReservation(ctx, &reservationRepo.DeleteReservationInput{ReservationID: res.ID})
	})
	if err != nil {
		return err
	}

	s.log.Info("reservation deleted",
		zap.String("reservation_id", input.ReservationID),
		zap.String("operator_id", input.OperatorID),
	)
	return nil
}

// GetReservation returns a reservation by id or ticket number
func (s *service) GetReservation(ctx context.Context, input *GetReservationInput) (*GetReservationOutput, error) {
	if input == nil || (input.ReservationID == "" && input.TicketNumber == "") {
		return nil, failure.New(failure.InvalidInput, failure.ReasonMissingField, "reservation id or ticket number is required")
	}

	res, err := s.reservationRepo.GetReservation(ctx, &reservationRepo.GetReservationInput{
		ReservationID: input.ReservationID,
		TicketNumber:  input.TicketNumber,
	})
	if err != nil {
		return nil, err
	}
	return &GetReservationOutput{Reservation: res}, nil
}

// activePromotion returns nil when no promotion covers now
func (s *service) activePromotion(ctx context.Context, now time.Time) (*models.Promotion, error) {
	promo, err := s.promotionRepo.GetActivePromotion(ctx, &promotionRepo.GetActivePromotionInput{Day: models.Day(now)})
	if errors.Is(err, failure.NotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return promo, nil
}

func requireOperator(operatorID string) error {
	if strings.TrimSpace(operatorID) == "" {
		return failure.New(failure.InvalidInput, failure.ReasonMissingField, "operator id is required")
	}
	return nil
}
