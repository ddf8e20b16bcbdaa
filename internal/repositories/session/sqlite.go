package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/KirkDiggler/playtime/internal/common/failure"
	"github.com/KirkDiggler/playtime/internal/models"
	"github.com/KirkDiggler/playtime/internal/store"
)

// ErrSessionNotFound is returned when a session is not found
var ErrSessionNotFound = failure.New(failure.NotFound, failure.ReasonSessionNotFound, "session not found")

const selectColumns = `SELECT id, reservation_id, client_id, station_id, game_id, started_at, paid_ms,
	paused_ms, paused_at, ended_at, status, started_by, updated_at FROM sessions`

// Config holds configuration for the SQLite session repository
type Config struct {
	Store *store.Store
}

// sqliteRepository implements the Repository interface using SQLite
type sqliteRepository struct {
	store *store.Store
}

// NewSQLite creates a new SQLite-backed session repository
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

// CreateSession inserts a session row. The schema refuses a second session
// for the same reservation and a second open session on the same station.
func (r *sqliteRepository) CreateSession(ctx context.Context, input *CreateSessionInput) error {
	if input == nil || input.Session == nil {
		return errors.New("input and session cannot be nil")
	}

	sess := input.Session
	if sess.ID == "" {
		return errors.New("session ID cannot be empty")
	}

	_, err := r.store.Conn(ctx).ExecContext(ctx,
		`INSERT INTO sessions (id, reservation_id, client_id, station_id, game_id, started_at, paid_ms,
			paused_ms, paused_at, ended_at, status, started_by, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		sess.ID,
		sess.ReservationID,
		sess.ClientID,
		sess.StationID,
		sess.GameID,
		store.ToMillis(sess.StartedAt),
		sess.PaidDuration.Milliseconds(),
		sess.PausedDuration.Milliseconds(),
		store.NullMillis(sess.PausedAt),
		store.NullMillis(sess.EndedAt),
		string(sess.Status),
		sess.StartedBy,
		store.ToMillis(sess.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("insert session %s: %w", sess.ID, err)
	}
	return nil
}

// SaveSession persists the mutable fields of an existing session
func (r *sqliteRepository) SaveSession(ctx context.Context, input *SaveSessionInput) error {
	if input == nil || input.Session == nil {
		return errors.New("input and session cannot be nil")
	}

	sess := input.Session
	result, err := r.store.Conn(ctx).ExecContext(ctx,
		`UPDATE sessions SET paid_ms = ?, paused_ms = ?, paused_at = ?, ended_at = ?, status = ?, updated_at = ?
		WHERE id = ?`,
		sess.PaidDuration.Milliseconds(),
		sess.PausedDuration.Milliseconds(),
		store.NullMillis(sess.PausedAt),
		store.NullMillis(sess.EndedAt),
		string(sess.Status),
		store.ToMillis(sess.UpdatedAt),
		sess.ID,
	)
	if err != nil {
		return fmt.Errorf("update session %s: %w", sess.ID, err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return ErrSessionNotFound
	}
	return nil
}

// GetSession retrieves a session by ID
func (r *sqliteRepository) GetSession(ctx context.Context, input *GetSessionInput) (*models.Session, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("session ID cannot be empty")
	}
	return r.getOne(ctx, selectColumns+` WHERE id = ?`, input.SessionID)
}

// GetSessionByReservation retrieves the session started from a reservation
func (r *sqliteRepository) GetSessionByReservation(ctx context.Context, input *GetSessionByReservationInput) (*models.Session, error) {
	if input == nil || input.ReservationID == "" {
		return nil, errors.New("reservation ID cannot be empty")
	}
	return r.getOne(ctx, selectColumns+` WHERE reservation_id = ?`, input.ReservationID)
}

// GetOpenSessionsForStation reads the station's active or paused sessions
func (r *sqliteRepository) GetOpenSessionsForStation(ctx context.Context, input *GetOpenSessionsForStationInput) (*GetOpenSessionsForStationOutput, error) {
	if input == nil || input.StationID == "" {
		return nil, errors.New("station ID cannot be empty")
	}

	sessions, err := r.list(ctx,
		selectColumns+` WHERE station_id = ? AND status IN (?, ?) ORDER BY started_at`,
		input.StationID, string(models.SessionStatusActive), string(models.SessionStatusPaused),
	)
	if err != nil {
		return nil, err
	}
	return &GetOpenSessionsForStationOutput{Sessions: sessions}, nil
}

// ListSessionsByStatus retrieves all sessions in any of the given statuses
func (r *sqliteRepository) ListSessionsByStatus(ctx context.Context, input *ListSessionsByStatusInput) (*ListSessionsByStatusOutput, error) {
	if input == nil || len(input.Statuses) == 0 {
		return &ListSessionsByStatusOutput{Sessions: []*models.Session{}}, nil
	}

	placeholders := make([]string, len(input.Statuses))
	args := make([]any, len(input.Statuses))
	for i, status := range input.Statuses {
		placeholders[i] = "?"
		args[i] = string(status)
	}

	sessions, err := r.list(ctx,
		selectColumns+` WHERE status IN (`+strings.Join(placeholders, ", ")+`) ORDER BY started_at, id`,
		args...,
	)
	if err != nil {
		return nil, err
	}
	return &ListSessionsByStatusOutput{Sessions: sessions}, nil
}

func (r *sqliteRepository) getOne(ctx context.Context, query string, args ...any) (*models.Session, error) {
	sess, err := scanSession(r.store.Conn(ctx).QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	return sess, nil
}

func (r *sqliteRepository) list(ctx context.Context, query string, args ...any) ([]*models.Session, error) {
	rows, err := r.store.Conn(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	sessions := []*models.Session{}
	for rows.Next() {
		sess, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		sessions = append(sessions, sess)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	return sessions, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSession(row scanner) (*models.Session, error) {
	var (
		sess      models.Session
		startedAt int64
		paidMS    int64
		pausedMS  int64
		pausedAt  sql.NullInt64
		endedAt   sql.NullInt64
		status    string
		updatedAt int64
	)
	err := row.Scan(
		&sess.ID,
		&sess.ReservationID,
		&sess.ClientID,
		&sess.StationID,
		&sess.GameID,
		&startedAt,
		&paidMS,
		&pausedMS,
		&pausedAt,
		&endedAt,
		&status,
		&sess.StartedBy,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	sess.StartedAt = store.FromMillis(startedAt)
	sess.PaidDuration = time.Duration(paidMS) * time.Millisecond
	sess.PausedDuration = time.Duration(pausedMS) * time.Millisecond
	sess.PausedAt = store.TimePtr(pausedAt)
	sess.EndedAt = store.TimePtr(endedAt)
	sess.Status = models.SessionStatus(status)
	sess.UpdatedAt = store.FromMillis(updatedAt)
	return &sess, nil
}
