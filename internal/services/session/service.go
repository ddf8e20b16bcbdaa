package session

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
	"github.com/KirkDiggler/playtime/internal/timekeeping"
	paymentRepo "github.com/KirkDiggler/playtime/internal/repositories/payment"
	reservationRepo "github.com/KirkDiggler/playtime/internal/repositories/reservation"
	sessionRepo "github.com/KirkDiggler/playtime/internal/repositories/session"
	stationRepo "github.com/KirkDiggler/playtime/internal/repositories/station"
	"github.com/KirkDiggler/playtime/internal/store"
)

// service implements the Service interface
type service struct {
	sessionRepo     sessionRepo.Repository
	reservationRepo reservationRepo.Repository
	stationRepo     stationRepo.Repository
	paymentRepo     paymentRepo.Repository
	tx              store.Transactor
	tariff          *pricing.Tariff
	clock           clock.Clock
	uuid            uuid.UUID
	flags           ExpiryFlags
	log             *zap.Logger
}

// NewService creates a new session service
func NewService(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.SessionRepo == nil {
		return nil, ErrNilSessionRepo
	}
	if cfg.ReservationRepo == nil {
		return nil, ErrNilReservationRepo
	}
	if cfg.StationRepo == nil {
		return nil, ErrNilStationRepo
	}
	if cfg.PaymentRepo == nil {
		return nil, ErrNilPaymentRepo
	}
	if cfg.Transactor == nil {
		return nil, ErrNilTransactor
	}
	if cfg.Tariff == nil {
		return nil, ErrNilTariff
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	flags := cfg.ExpiryFlags
	if flags == nil {
		flags = noopFlags{}
	}

	return &service{
		sessionRepo:     cfg.SessionRepo,
		reservationRepo: cfg.ReservationRepo,
		stationRepo:     cfg.StationRepo,
		paymentRepo:     cfg.PaymentRepo,
		tx:              cfg.Transactor,
		tariff:          cfg.Tariff,
		clock:           cfg.Clock,
		uuid:            cfg.UUIDGenerator,
		flags:           flags,
		log:             logger.OrNop(cfg.Logger),
	}, nil
}

type noopFlags struct{}

func (noopFlags) Reset(string) {}

// StartSession opens a session from a pending reservation. The station's
// sessions are re-read inside the transaction right before the insert.
func (s *service) StartSession(ctx context.Context, input *StartSessionInput) (*StartSessionOutput, error) {
	if input == nil || input.ReservationID == "" {
		return nil, failure.New(failure.InvalidInput, failure.ReasonMissingField, "reservation id is required")
	}
	if err := requireOperator(input.OperatorID); err != nil {
		return nil, err
	}

	// The id is fixed before the transaction so a rerun after contention
	// inserts the same row rather than a second one.
	sessionID := s.uuid.NewUUID()

	var started *models.Session
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		now := s.clock.Now()

		res, err := s.reservationRepo.GetReservation(ctx, &reservationRepo.GetReservationInput{
			ReservationID: input.ReservationID,
		})
		if err != nil {
			return err
		}
		if res.Status != models.ReservationStatusPending {
			return failure.Newf(failure.PreconditionFailed, failure.ReasonReservationNotPending,
				"reservation %s is %s", res.ID, res.Status)
		}

		station, err := s.stationRepo.GetStation(ctx, &stationRepo.GetStationInput{StationID: res.StationID})
		if err != nil {
			return err
		}
		if station.OutOfService {
			return failure.Newf(failure.PreconditionFailed, failure.ReasonStationOutOfService,
				"station %s is out of service", station.ID)
		}

		existing, err := s.sessionRepo.GetSessionByReservation(ctx, &sessionRepo.GetSessionByReservationInput{
			ReservationID: res.ID,
		})
		if err != nil && !errors.Is(err, failure.NotFound) {
			return err
		}
		if existing != nil {
			return failure.Newf(failure.PreconditionFailed, failure.ReasonDuplicateSession,
				"reservation %s already has session %s", res.ID, existing.ID)
		}

		open, err := s.sessionRepo.GetOpenSessionsForStation(ctx, &sessionRepo.GetOpenSessionsForStationInput{
			StationID: res.StationID,
		})
		if err != nil {
			return err
		}
		if len(open.Sessions) > 0 {
			return failure.Newf(failure.PreconditionFailed, failure.ReasonStationOccupied,
				"station %s is held by session %s", res.StationID, open.Sessions[0].ID)
		}

		sess := &models.Session{
			ID:            sessionID,
			ReservationID: res.ID,
			ClientID:      res.ClientID,
			StationID:     res.StationID,
			GameID:        res.GameID,
			StartedAt:     now,
			PaidDuration:  res.Duration,
			Status:        models.SessionStatusActive,
			StartedBy:     input.OperatorID,
			UpdatedAt:     now,
		}
		if err := s.sessionRepo.CreateSession(ctx, &sessionRepo.CreateSessionInput{Session: sess}); err != nil {
			return err
		}

		if err := s.reservationRepo.UpdateReservationStatus(ctx, &reservationRepo.UpdateReservationStatusInput{
			ReservationID: res.ID,
			Status:        models.ReservationStatusActive,
			UpdatedAt:     now,
		}); err != nil {
			return err
		}

		started = sess
		return nil
	})
	if err != nil {
		s.log.Info("session not started",
			zap.String("reservation_id", input.ReservationID),
			zap.String("operator_id", input.OperatorID),
			zap.Error(err),
		)
		return nil, err
	}

	s.log.Info("session started",
		zap.String("session_id", started.ID),
		zap.String("reservation_id", started.ReservationID),
		zap.String("station_id", started.StationID),
		zap.Duration("paid", started.PaidDuration),
		zap.String("operator_id", input.OperatorID),
	)

	return &StartSessionOutput{
		Session:   started,
		Remaining: started.Remaining(started.StartedAt),
	}, nil
}

// PauseSession freezes the remaining time of an active session
func (s *service) PauseSession(ctx context.Context, input *PauseSessionInput) (*PauseSessionOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, failure.New(failure.InvalidInput, failure.ReasonMissingField, "session id is required")
	}
	if err := requireOperator(input.OperatorID); err != nil {
		return nil, err
	}

	var (
		paused *models.Session
		now    time.Time
	)
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		now = s.clock.Now()

		sess, err := s.sessionRepo.GetSession(ctx, &sessionRepo.GetSessionInput{SessionID: input.SessionID})
		if err != nil {
			return err
		}
		if sess.Status != models.SessionStatusActive {
			return failure.Newf(failure.InvalidTransition, failure.ReasonSessionNotActive,
				"session %s is %s", sess.ID, sess.Status)
		}

		pausedAt := now
		sess.PausedAt = &pausedAt
		sess.Status = models.SessionStatusPaused
		sess.UpdatedAt = now
		if err := s.sessionRepo.SaveSession(ctx, &sessionRepo.SaveSessionInput{Session: sess}); err != nil {
			return err
		}

		paused = sess
		return nil
	})
	if err != nil {
		return nil, err
	}

	remaining := paused.Remaining(now)
	s.log.Info("session paused",
		zap.String("session_id", paused.ID),
		zap.Duration("remaining", remaining),
		zap.String("operator_id", input.OperatorID),
	)

	return &PauseSessionOutput{Session: paused, Remaining: remaining}, nil
}

// ResumeSession folds the open pause into the accumulated paused time
func (s *service) ResumeSession(ctx context.Context, input *ResumeSessionInput) (*ResumeSessionOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, failure.New(failure.InvalidInput, failure.ReasonMissingField, "session id is required")
	}
	if err := requireOperator(input.OperatorID); err != nil {
		return nil, err
	}

	var (
		resumed *models.Session
		now     time.Time
	)
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		now = s.clock.Now()

		sess, err := s.sessionRepo.GetSession(ctx, &sessionRepo.GetSessionInput{SessionID: input.SessionID})
		if err != nil {
			return err
		}
		if sess.Status != models.SessionStatusPaused {
			return failure.Newf(failure.InvalidTransition, failure.ReasonSessionNotPaused,
				"session %s is %s", sess.ID, sess.Status)
		}

		closePause(sess, now)
		sess.Status = models.SessionStatusActive
		sess.UpdatedAt = now
		if err := s.sessionRepo.SaveSession(ctx, &sessionRepo.SaveSessionInput{Session: sess}); err != nil {
			return err
		}

		resumed = sess
		return nil
	})
	if err != nil {
		return nil, err
	}

	remaining := resumed.Remaining(now)
	s.log.Info("session resumed",
		zap.String("session_id", resumed.ID),
		zap.Duration("remaining", remaining),
		zap.Duration("paused_total", resumed.PausedDuration),
		zap.String("operator_id", input.OperatorID),
	)

	return &ResumeSessionOutput{Session: resumed, Remaining: remaining}, nil
}

// ExtendSession adds paid time to an active session and records the payment
// in the same transaction. Time that ran past the paid duration while the
// operator decided is not charged: the extension starts from the moment it
// is bought, so remaining time grows by exactly the purchased minutes.
func (s *service) ExtendSession(ctx context.Context, input *ExtendSessionInput) (*ExtendSessionOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, failure.New(failure.InvalidInput, failure.ReasonMissingField, "session id is required")
	}
	if input.AdditionalMinutes <= 0 {
		return nil, failure.Newf(failure.InvalidDuration, failure.ReasonDurationNotPositive,
			"additional minutes must be positive, got %d", input.AdditionalMinutes)
	}
	if input.PaymentMethod == "" {
		return nil, failure.New(failure.InvalidPaymentMethod, failure.ReasonPaymentMethodMissing, "")
	}
	if !input.PaymentMethod.IsValid() {
		return nil, failure.Newf(failure.InvalidPaymentMethod, failure.ReasonPaymentMethodUnknown,
			"method %q", input.PaymentMethod)
	}
	if err := requireOperator(input.OperatorID); err != nil {
		return nil, err
	}

	additional := time.Duration(input.AdditionalMinutes) * time.Minute
	paymentID := s.uuid.NewUUID()

	var (
		extended *models.Session
		receipt  *models.Receipt
		now      time.Time
	)
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		now = s.clock.Now()

		sess, err := s.sessionRepo.GetSession(ctx, &sessionRepo.GetSessionInput{SessionID: input.SessionID})
		if err != nil {
			return err
		}
		switch sess.Status {
		case models.SessionStatusActive:
		case models.SessionStatusCompleted:
			return failure.Newf(failure.InvalidTransition, failure.ReasonSessionCompleted,
				"session %s is completed", sess.ID)
		default:
			return failure.Newf(failure.InvalidTransition, failure.ReasonSessionNotActive,
				"session %s is %s; resume it before extending", sess.ID, sess.Status)
		}

		sess.PaidDuration += timekeeping.Overrun(sess.Span(), now) + additional
		sess.UpdatedAt = now
		if err := s.sessionRepo.SaveSession(ctx, &sessionRepo.SaveSessionInput{Session: sess}); err != nil {
			return err
		}

		r, err := s.paymentRepo.RecordPayment(ctx, &paymentRepo.RecordPaymentInput{
			Payment: &models.Payment{
				ID:            paymentID,
				Amount:        s.tariff.Price(additional, nil, now),
				Method:        input.PaymentMethod,
				Context:       models.PaymentContextExtension,
				ReservationID: sess.ReservationID,
				SessionID:     sess.ID,
				OperatorID:    input.OperatorID,
				CreatedAt:     now,
			},
		})
		if err != nil {
			return err
		}

		extended = sess
		receipt = r
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.flags.Reset(extended.ID)

	remaining := extended.Remaining(now)
	s.log.Info("session extended",
		zap.String("session_id", extended.ID),
		zap.Int("additional_minutes", input.AdditionalMinutes),
		zap.String("amount", receipt.Amount.String()),
		zap.String("method", string(input.PaymentMethod)),
		zap.Duration("remaining", remaining),
		zap.String("operator_id", input.OperatorID),
	)

	return &ExtendSessionOutput{Session: extended, Receipt: receipt, Remaining: remaining}, nil
}

// TerminateSession completes a session and its reservation together.
// Terminating a completed session returns AlreadyTerminated and changes nothing.
func (s *service) TerminateSession(ctx context.Context, input *TerminateSessionInput) (*TerminateSessionOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, failure.New(failure.InvalidInput, failure.ReasonMissingField, "session id is required")
	}
	if err := requireOperator(input.OperatorID); err != nil {
		return nil, err
	}

	var ended *models.Session
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		now := s.clock.Now()

		sess, err := s.sessionRepo.GetSession(ctx, &sessionRepo.GetSessionInput{SessionID: input.SessionID})
		if err != nil {
			return err
		}
		if sess.Status == models.SessionStatusCompleted {
			return failure.Newf(failure.AlreadyTerminated, failure.ReasonSessionCompleted,
				"session %s is already completed", sess.ID)
		}

		closePause(sess, now)
		endedAt := now
		sess.EndedAt = &endedAt
		sess.Status = models.SessionStatusCompleted
		sess.UpdatedAt = now
		if err := s.sessionRepo.SaveSession(ctx, &sessionRepo.SaveSessionInput{Session: sess}); err != nil {
			return err
		}

		if err := s.reservationRepo.UpdateReservationStatus(ctx, &reservationRepo.UpdateReservationStatusInput{
			ReservationID: sess.ReservationID,
			Status:        models.ReservationStatusCompleted,
			UpdatedAt:     now,
		}); err != nil {
			return err
		}

		ended = sess
		return nil
	})
	if err != nil {
		if !failure.IsFatal(err) {
			s.log.Debug("terminate ignored", zap.String("session_id", input.SessionID), zap.Error(err))
		}
		return nil, err
	}

	s.flags.Reset(ended.ID)

	output := &TerminateSessionOutput{
		Session: ended,
		Played:  ended.Elapsed(*ended.EndedAt),
		Unused:  ended.Remaining(*ended.EndedAt),
	}
	s.log.Info("session terminated",
		zap.String("session_id", ended.ID),
		zap.String("reservation_id", ended.ReservationID),
		zap.Duration("played", output.Played),
		zap.Duration("unused", output.Unused),
		zap.String("operator_id", input.OperatorID),
	)
	return output, nil
}

// GetSession reports a session's status and its time accounting now
func (s *service) GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, failure.New(failure.InvalidInput, failure.ReasonMissingField, "session id is required")
	}

	sess, err := s.sessionRepo.GetSession(ctx, &sessionRepo.GetSessionInput{SessionID: input.SessionID})
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	span := sess.Span()
	return &GetSessionOutput{
		Session:   sess,
		Status:    sess.Status,
		Elapsed:   timekeeping.Elapsed(span, now),
		Remaining: timekeeping.Remaining(span, now),
		Expired:   sess.Status == models.SessionStatusActive && timekeeping.Expired(span, now),
	}, nil
}

func closePause(sess *models.Session, now time.Time) {
	span := timekeeping.ClosePause(sess.Span(), now)
	sess.PausedDuration = span.Paused
	sess.PausedAt = span.PausedAt
}

func requireOperator(operatorID string) error {
	if strings.TrimSpace(operatorID) == "" {
		return failure.New(failure.InvalidInput, failure.ReasonMissingField, "operator id is required")
	}
	return nil
}
