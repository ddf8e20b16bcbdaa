package payment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/KirkDiggler/playtime/internal/common/failure"
	"github.com/KirkDiggler/playtime/internal/models"
	"github.com/KirkDiggler/playtime/internal/store"
)

const selectColumns = `SELECT id, amount, method, context, reservation_id, session_id, operator_id, created_at FROM payments`

// Config holds configuration for the SQLite payment ledger
type Config struct {
	Store *store.Store
}

// sqliteRepository implements the Repository interface using SQLite
type sqliteRepository struct {
	store *store.Store
}

// NewSQLite creates a new SQLite-backed payment ledger
func NewSQLite(cfg *Config) (*sqliteRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.Store == nil {
		return nil, errors.New("store cannot be nil")
	}

	return &sqliteRepository{
		store: cfg.Store,
	}, nil
}

// RecordPayment appends a payment and issues a receipt numbered by day,
// e.g. R20250601-0003 for the third payment of the day
func (r *sqliteRepository) RecordPayment(ctx context.Context, input *RecordPaymentInput) (*models.Receipt, error) {
	if input == nil || input.Payment == nil {
		return nil, errors.New("input and payment cannot be nil")
	}

	p := input.Payment
	if p.ID == "" {
		return nil, errors.New("payment ID cannot be empty")
	}
	if !p.Method.IsValid() {
		return nil, failure.Newf(failure.InvalidPaymentMethod, failure.ReasonPaymentMethodUnknown, "method %q", p.Method)
	}
	if p.Amount.IsNegative() {
		return nil, failure.New(failure.InvalidInput, "", "payment amount cannot be negative")
	}

	var receipt *models.Receipt
	err := r.store.WithinTx(ctx, func(ctx context.Context) error {
		conn := r.store.Conn(ctx)

		from := models.Day(p.CreatedAt)
		var count int
		err := conn.QueryRowContext(ctx,
			`SELECT COUNT(1) FROM payments WHERE created_at >= ? AND created_at < ?`,
			store.ToMillis(from), store.ToMillis(from.AddDate(0, 0, 1)),
		).Scan(&count)
		if err != nil {
			return fmt.Errorf("count payments: %w", err)
		}
		number := fmt.Sprintf("R%s-%04d", from.Format("20060102"), count+1)

		_, err = conn.ExecContext(ctx,
			`INSERT INTO payments (id, receipt_number, amount, method, context, reservation_id, session_id, operator_id, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			p.ID,
			number,
			p.Amount.String(),
			string(p.Method),
			string(p.Context),
			store.NullString(p.ReservationID),
			store.NullString(p.SessionID),
			p.OperatorID,
			store.ToMillis(p.CreatedAt),
		)
		if err != nil {
			return fmt.Errorf("insert payment %s: %w", p.ID, err)
		}

		receipt = &models.Receipt{
			PaymentID: p.ID,
			Number:    number,
			Amount:    p.Amount,
			IssuedAt:  p.CreatedAt,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return receipt, nil
}

// GetPaymentsForSession retrieves every payment collected for a session
func (r *sqliteRepository) GetPaymentsForSession(ctx context.Context, input *GetPaymentsForSessionInput) (*GetPaymentsForSessionOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("session ID cannot be empty")
	}

	payments, err := r.list(ctx, selectColumns+` WHERE session_id = ? ORDER BY created_at, id`, input.SessionID)
	if err != nil {
		return nil, err
	}
	return &GetPaymentsForSessionOutput{Payments: payments}, nil
}

// ListPaymentsByDay retrieves the payments recorded on a day
func (r *sqliteRepository) ListPaymentsByDay(ctx context.Context, input *ListPaymentsByDayInput) (*ListPaymentsByDayOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	from := models.Day(input.Day)
	payments, err := r.list(ctx,
		selectColumns+` WHERE created_at >= ? AND created_at < ? ORDER BY created_at, id`,
		store.ToMillis(from), store.ToMillis(from.AddDate(0, 0, 1)),
	)
	if err != nil {
		return nil, err
	}
	return &ListPaymentsByDayOutput{Payments: payments}, nil
}

func (r *sqliteRepository) list(ctx context.Context, query string, args ...any) ([]*models.Payment, error) {
	rows, err := r.store.Conn(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer rows.Close()

	payments := []*models.Payment{}
	for rows.Next() {
		var (
			p             models.Payment
			amount        string
			method        string
			paymentCtx    string
			reservationID sql.NullString
			sessionID     sql.NullString
			createdAt     int64
		)
		if err := rows.Scan(&p.ID, &amount, &method, &paymentCtx, &reservationID, &sessionID, &p.OperatorID, &createdAt); err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		if p.Amount, err = decimal.NewFromString(amount); err != nil {
			return nil, fmt.Errorf("parse payment amount %q: %w", amount, err)
		}
		p.Method = models.PaymentMethod(method)
		p.Context = models.PaymentContext(paymentCtx)
		p.ReservationID = reservationID.String
		p.SessionID = sessionID.String
		p.CreatedAt = store.FromMillis(createdAt)
		payments = append(payments, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	return payments, nil
}
