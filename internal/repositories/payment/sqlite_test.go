package payment

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/playtime/internal/common/failure"
	"github.com/KirkDiggler/playtime/internal/models"
	"github.com/KirkDiggler/playtime/internal/store"
	"github.com/KirkDiggler/playtime/internal/store/storetest"
)

type SQLiteRepositoryTestSuite struct {
	suite.Suite
	ctx     context.Context
	repo    Repository
	testNow time.Time
}

func (s *SQLiteRepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.testNow = time.Date(2025, 6, 1, 14, 0, 0, 0, time.UTC)

	st := storetest.Open(s.T())
	storetest.SeedCatalog(s.T(), st, "client-1", "station-1", "game-1")
	storetest.Exec(s.T(), st,
		`INSERT INTO reservations (id, ticket_number, client_id, station_id, game_id, duration_ms, unit_price, status, created_by, created_at, updated_at)
		VALUES ('res-1', 'T-1', 'client-1', 'station-1', 'game-1', 1800000, '1000', 'active', 'op', ?, ?)`,
		store.ToMillis(s.testNow), store.ToMillis(s.testNow))
	storetest.Exec(s.T(), st,
		`INSERT INTO sessions (id, reservation_id, client_id, station_id, game_id, started_at, paid_ms, status, started_by, updated_at)
		VALUES ('sess-1', 'res-1', 'client-1', 'station-1', 'game-1', ?, 1800000, 'active', 'op', ?)`,
		store.ToMillis(s.testNow), store.ToMillis(s.testNow))

	repo, err := NewSQLite(&Config{Store: st})
	s.Require().NoError(err)
	s.repo = repo
}

func TestSQLiteRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(SQLiteRepositoryTestSuite))
}

func (s *SQLiteRepositoryTestSuite) newPayment(id string, at time.Time) *models.Payment {
	return &models.Payment{
		ID:            id,
		Amount:        decimal.RequireFromString("500"),
		Method:        models.PaymentMethodWave,
		Context:       models.PaymentContextExtension,
		ReservationID: "res-1",
		SessionID:     "sess-1",
		OperatorID:    "operator-1",
		CreatedAt:     at,
	}
}

func (s *SQLiteRepositoryTestSuite) TestRecordPaymentIssuesSequentialReceipts() {
	first, err := s.repo.RecordPayment(s.ctx, &RecordPaymentInput{Payment: s.newPayment("pay-1", s.testNow)})
	s.Require().NoError(err)
	s.Equal("R20250601-0001", first.Number)
	s.Equal("pay-1", first.PaymentID)
	s.True(decimal.NewFromInt(500).Equal(first.Amount))

	second, err := s.repo.RecordPayment(s.ctx, &RecordPaymentInput{Payment: s.newPayment("pay-2", s.testNow.Add(time.Hour))})
	s.Require().NoError(err)
	s.Equal("R20250601-0002", second.Number)

	nextDay, err := s.repo.RecordPayment(s.ctx, &RecordPaymentInput{Payment: s.newPayment("pay-3", s.testNow.AddDate(0, 0, 1))})
	s.Require().NoError(err)
	s.Equal("R20250602-0001", nextDay.Number)
}

func (s *SQLiteRepositoryTestSuite) TestRecordPaymentRejectsUnknownMethod() {
	p := s.newPayment("pay-1", s.testNow)
	p.Method = "cheque"

	_, err := s.repo.RecordPayment(s.ctx, &RecordPaymentInput{Payment: p})
	s.ErrorIs(err, failure.InvalidPaymentMethod)
}

func (s *SQLiteRepositoryTestSuite) TestPaymentsForSessionAndDay() {
	for i, at := range []time.Time{s.testNow, s.testNow.Add(30 * time.Minute), s.testNow.AddDate(0, 0, 1)} {
		_, err := s.repo.RecordPayment(s.ctx, &RecordPaymentInput{Payment: s.newPayment(string(rune('a'+i)), at)})
		s.Require().NoError(err)
	}

	bySession, err := s.repo.GetPaymentsForSession(s.ctx, &GetPaymentsForSessionInput{SessionID: "sess-1"})
	s.Require().NoError(err)
	s.Len(bySession.Payments, 3)

	byDay, err := s.repo.ListPaymentsByDay(s.ctx, &ListPaymentsByDayInput{Day: s.testNow})
	s.Require().NoError(err)
	s.Require().Len(byDay.Payments, 2)
	s.Equal("a", byDay.Payments[0].ID)
	s.Equal(models.PaymentMethodWave, byDay.Payments[0].Method)
	s.Equal(models.PaymentContextExtension, byDay.Payments[0].Context)
	s.Equal("res-1", byDay.Payments[0].ReservationID)
}
