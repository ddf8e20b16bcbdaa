package reservation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/KirkDiggler/playtime/internal/common/failure"
	"github.com/KirkDiggler/playtime/internal/models"
	"github.com/KirkDiggler/playtime/internal/store"
)

// ErrReservationNotFound is returned when a reservation is not found
var ErrReservationNotFound = failure.New(failure.NotFound, failure.ReasonReservationNotFound, "reservation not found")

const selectColumns = `SELECT id, ticket_number, client_id, station_id, game_id, duration_ms, unit_price,
	promotion_id, referral_code, status, created_by, created_at, updated_at FROM reservations`

// Config holds configuration for the SQLite reservation repository
type Config struct {
	Store *store.Store
}

// sqliteRepository implements the Repository interface using SQLite
type sqliteRepository struct {
	store *store.Store
}

// NewSQLite creates a new SQLite-backed reservation repository
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

// CreateReservation inserts a reservation row
func (r *sqliteRepository) CreateReservation(ctx context.Context, input *CreateReservationInput) error {
	if input == nil || input.Reservation == nil {
		return errors.New("input and reservation cannot be nil")
	}

	res := input.Reservation
	if res.ID == "" || res.TicketNumber == "" {
		return errors.New("reservation ID and ticket number cannot be empty")
	}

	_, err := r.store.Conn(ctx).ExecContext(ctx,
		`INSERT INTO reservations (id, ticket_number, client_id, station_id, game_id, duration_ms, unit_price,
			promotion_id, referral_code, status, created_by, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		res.ID,
		res.TicketNumber,
		res.ClientID,
		res.StationID,
		res.GameID,
		res.Duration.Milliseconds(),
		res.UnitPrice.String(),
		store.NullString(res.PromotionID),
		res.ReferralCode,
		string(res.Status),
		res.CreatedBy,
		store.ToMillis(res.CreatedAt),
		store.ToMillis(res.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("insert reservation %s: %w", res.ID, err)
	}
	return nil
}

// GetReservation retrieves a reservation by ID or ticket number
func (r *sqliteRepository) GetReservation(ctx context.Context, input *GetReservationInput) (*models.Reservation, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var row *sql.Row
	switch {
	case input.ReservationID != "":
		row = r.store.Conn(ctx).QueryRowContext(ctx, selectColumns+` WHERE id = ?`, input.ReservationID)
	case input.TicketNumber != "":
		row = r.store.Conn(ctx).QueryRowContext(ctx, selectColumns+` WHERE ticket_number = ?`, input.TicketNumber)
	default:
		return nil, errors.New("reservation ID or ticket number is required")
	}

	res, err := scanReservation(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get reservation: %w", err)
	}
	return res, nil
}

// UpdateReservationStatus changes the status of a reservation
func (r *sqliteRepository) UpdateReservationStatus(ctx context.Context, input *UpdateReservationStatusInput) error {
	if input == nil || input.ReservationID == "" {
		return errors.New("reservation ID cannot be empty")
	}
	if !input.Status.IsValid() {
		return fmt.Errorf("invalid reservation status %q", input.Status)
	}

	result, err := r.store.Conn(ctx).ExecContext(ctx,
		`UPDATE reservations SET status = ?, updated_at = ? WHERE id = ?`,
		string(input.Status), store.ToMillis(input.UpdatedAt), input.ReservationID,
	)
	if err != nil {
		return fmt.Errorf("update reservation %s: %w", input.ReservationID, err)
	}
	return requireRow(result)
}

// DeleteReservation removes a reservation; its session goes with it
func (r *sqliteRepository) DeleteReservation(ctx context.Context, input *DeleteReservationInput) error {
	if input == nil || input.ReservationID == "" {
		return errors.New("reservation ID cannot be empty")
	}

	result, err := r.store.Conn(ctx).ExecContext(ctx, `DELETE FROM reservations WHERE id = ?`, input.ReservationID)
	if err != nil {
		return fmt.Errorf("delete reservation %s: %w", input.ReservationID, err)
	}
	return requireRow(result)
}

// ListReservationsByDay retrieves the reservations created on a day
func (r *sqliteRepository) ListReservationsByDay(ctx context.Context, input *ListReservationsByDayInput) (*ListReservationsByDayOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	from := models.Day(input.Day)
	to := from.AddDate(0, 0, 1)

	rows, err := r.store.Conn(ctx).QueryContext(ctx,
		selectColumns+` WHERE created_at >= ? AND created_at < ? ORDER BY created_at, id`,
		store.ToMillis(from), store.ToMillis(to),
	)
	if err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}
	defer rows.Close()

	output := &ListReservationsByDayOutput{Reservations: []*models.Reservation{}}
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan reservation: %w", err)
		}
		output.Reservations = append(output.Reservations, res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}
	return output, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanReservation(row scanner) (*models.Reservation, error) {
	var (
		res        models.Reservation
		durationMS int64
		unitPrice  string
		promotion  sql.NullString
		status     string
		createdAt  int64
		updatedAt  int64
	)
	err := row.Scan(
		&res.ID,
		&res.TicketNumber,
		&res.ClientID,
		&res.StationID,
		&res.GameID,
		&durationMS,
		&unitPrice,
		&promotion,
		&res.ReferralCode,
		&status,
		&res.CreatedBy,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	price, err := decimal.NewFromString(unitPrice)
	if err != nil {
		return nil, fmt.Errorf("parse unit price %q: %w", unitPrice, err)
	}

	res.Duration = time.Duration(durationMS) * time.Millisecond
	res.UnitPrice = price
	res.PromotionID = promotion.String
	res.Status = models.ReservationStatus(status)
	res.CreatedAt = store.FromMillis(createdAt)
	res.UpdatedAt = store.FromMillis(updatedAt)
	return &res, nil
}

func requireRow(result sql.Result) error {
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return ErrReservationNotFound
	}
	return nil
}
