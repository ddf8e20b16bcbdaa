package client

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/KirkDiggler/playtime/internal/common/failure"
	"github.com/KirkDiggler/playtime/internal/models"
	"github.com/KirkDiggler/playtime/internal/store"
)

var (
	// ErrClientNotFound is returned when a client is not found
	ErrClientNotFound = failure.New(failure.NotFound, failure.ReasonClientNotFound, "client not found")

	// ErrReferrerNotFound is returned when no referrer holds a code
	ErrReferrerNotFound = failure.New(failure.NotFound, failure.ReasonReferrerNotFound, "referrer not found")
)

// Config holds configuration for the SQLite client repository
type Config struct {
	Store *store.Store
}

// sqliteRepository implements the Repository interface using SQLite
type sqliteRepository struct {
	store *store.Store
}

// NewSQLite creates a new SQLite-backed client repository
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

// SaveClient creates or updates a client's profile
func (r *sqliteRepository) SaveClient(ctx context.Context, input *SaveClientInput) error {
	if input == nil || input.Client == nil {
		return errors.New("input and client cannot be nil")
	}

	c := input.Client
	if c.ID == "" {
		return errors.New("client ID cannot be empty")
	}

	_, err := r.store.Conn(ctx).ExecContext(ctx,
		`INSERT INTO clients (id, name, phone, loyalty_points, created_at) VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET name = excluded.name, phone = excluded.phone`,
		c.ID, c.Name, c.Phone, c.LoyaltyPoints, store.ToMillis(c.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("save client %s: %w", c.ID, err)
	}
	return nil
}

// GetClient retrieves a client by ID
func (r *sqliteRepository) GetClient(ctx context.Context, input *GetClientInput) (*models.Client, error) {
	if input == nil || input.ClientID == "" {
		return nil, errors.New("client ID cannot be empty")
	}

	var (
		c         models.Client
		createdAt int64
	)
	err := r.store.Conn(ctx).QueryRowContext(ctx,
		`SELECT id, name, phone, loyalty_points, created_at FROM clients WHERE id = ?`, input.ClientID,
	).Scan(&c.ID, &c.Name, &c.Phone, &c.LoyaltyPoints, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrClientNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get client %s: %w", input.ClientID, err)
	}

	c.CreatedAt = store.FromMillis(createdAt)
	return &c, nil
}

// AddLoyaltyPoints credits points to a client. Points never decrease.
func (r *sqliteRepository) AddLoyaltyPoints(ctx context.Context, input *AddLoyaltyPointsInput) error {
	if input == nil || input.ClientID == "" {
		return errors.New("client ID cannot be empty")
	}
	if input.Points < 0 {
		return fmt.Errorf("loyalty points cannot be negative: %d", input.Points)
	}

	result, err := r.store.Conn(ctx).ExecContext(ctx,
		`UPDATE clients SET loyalty_points = loyalty_points + ? WHERE id = ?`,
		input.Points, input.ClientID,
	)
	if err != nil {
		return fmt.Errorf("add loyalty points to %s: %w", input.ClientID, err)
	}
	return requireRow(result, ErrClientNotFound)
}

// SaveReferrer creates or updates a referrer; points are left untouched on update
func (r *sqliteRepository) SaveReferrer(ctx context.Context, input *SaveReferrerInput) error {
	if input == nil || input.Referrer == nil {
		return errors.New("input and referrer cannot be nil")
	}

	ref := input.Referrer
	code := normalizeCode(ref.Code)
	if ref.ID == "" || code == "" {
		return errors.New("referrer ID and code cannot be empty")
	}

	_, err := r.store.Conn(ctx).ExecContext(ctx,
		`INSERT INTO referrers (id, name, code, points) VALUES (?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET name = excluded.name, code = excluded.code`,
		ref.ID, ref.Name, code, ref.Points,
	)
	if err != nil {
		return fmt.Errorf("save referrer %s: %w", ref.ID, err)
	}
	return nil
}

// FindReferrerByCode resolves a referral code, ignoring case and surrounding space
func (r *sqliteRepository) FindReferrerByCode(ctx context.Context, input *FindReferrerByCodeInput) (*models.Referrer, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}
	code := normalizeCode(input.Code)
	if code == "" {
		return nil, ErrReferrerNotFound
	}

	var ref models.Referrer
	err := r.store.Conn(ctx).QueryRowContext(ctx,
		`SELECT id, name, code, points FROM referrers WHERE code = ?`, code,
	).Scan(&ref.ID, &ref.Name, &ref.Code, &ref.Points)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrReferrerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find referrer %q: %w", code, err)
	}
	return &ref, nil
}

// AddReferralPoint credits exactly one point to a referrer
func (r *sqliteRepository) AddReferralPoint(ctx context.Context, input *AddReferralPointInput) error {
	if input == nil || input.ReferrerID == "" {
		return errors.New("referrer ID cannot be empty")
	}

	result, err := r.store.Conn(ctx).ExecContext(ctx,
		`UPDATE referrers SET points = points + 1 WHERE id = ?`, input.ReferrerID,
	)
	if err != nil {
		return fmt.Errorf("add referral point to %s: %w", input.ReferrerID, err)
	}
	return requireRow(result, ErrReferrerNotFound)
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func requireRow(result sql.Result, notFound error) error {
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return notFound
	}
	return nil
}
