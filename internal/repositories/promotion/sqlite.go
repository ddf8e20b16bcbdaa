package promotion

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/KirkDiggler/playtime/internal/common/failure"
	"github.com/KirkDiggler/playtime/internal/models"
	"github.com/KirkDiggler/playtime/internal/store"
)

// ErrPromotionNotFound is returned when no promotion matches
var ErrPromotionNotFound = failure.New(failure.NotFound, failure.ReasonPromotionNotFound, "promotion not found")

const (
	dateLayout    = "2006-01-02"
	selectColumns = `SELECT id, name, rate, start_date, end_date, active, item_ids FROM promotions`
)

// Config holds configuration for the SQLite promotion repository
type Config struct {
	Store *store.Store

	// Location reads the stored calendar dates, time.Local when nil
	Location *time.Location
}

// sqliteRepository implements the Repository interface using SQLite
type sqliteRepository struct {
	store    *store.Store
	location *time.Location
}

// NewSQLite creates a new SQLite-backed promotion repository
func NewSQLite(cfg *Config) (*sqliteRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.Store == nil {
		return nil, errors.New("store cannot be nil")
	}

	loc := cfg.Location
	if loc == nil {
		loc = time.Local
	}

	return &sqliteRepository{
		store:    cfg.Store,
		location: loc,
	}, nil
}

// SavePromotion validates and upserts a promotion
func (r *sqliteRepository) SavePromotion(ctx context.Context, input *SavePromotionInput) error {
	if input == nil || input.Promotion == nil {
		return errors.New("input and promotion cannot be nil")
	}

	p := input.Promotion
	if p.ID == "" {
		return errors.New("promotion ID cannot be empty")
	}
	if err := p.Validate(); err != nil {
		return failure.Wrap(failure.InvalidInput, "", err)
	}

	_, err := r.store.Conn(ctx).ExecContext(ctx,
		`INSERT INTO promotions (id, name, rate, start_date, end_date, active, item_ids) VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET name = excluded.name, rate = excluded.rate, start_date = excluded.start_date,
			end_date = excluded.end_date, active = excluded.active, item_ids = excluded.item_ids`,
		p.ID,
		p.Name,
		p.Rate.String(),
		p.StartDate.Format(dateLayout),
		p.EndDate.Format(dateLayout),
		p.Active,
		strings.Join(p.ItemIDs, ","),
	)
	if err != nil {
		return fmt.Errorf("save promotion %s: %w", p.ID, err)
	}
	return nil
}

// GetPromotion retrieves a promotion by ID
func (r *sqliteRepository) GetPromotion(ctx context.Context, input *GetPromotionInput) (*models.Promotion, error) {
	if input == nil || input.PromotionID == "" {
		return nil, errors.New("promotion ID cannot be empty")
	}
	return r.getOne(ctx, selectColumns+` WHERE id = ?`, input.PromotionID)
}

// GetActivePromotion retrieves the active promotion whose window covers the
// day. When several overlap, the most recently started wins, then the
// highest rate.
func (r *sqliteRepository) GetActivePromotion(ctx context.Context, input *GetActivePromotionInput) (*models.Promotion, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	// the day is compared on its own calendar
	day := input.Day.Format(dateLayout)
	return r.getOne(ctx,
		selectColumns+` WHERE active = 1 AND start_date <= ? AND end_date >= ?
		ORDER BY start_date DESC, CAST(rate AS REAL) DESC, id LIMIT 1`,
		day, day,
	)
}

func (r *sqliteRepository) getOne(ctx context.Context, query string, args ...any) (*models.Promotion, error) {
	var (
		p       models.Promotion
		rate    string
		start   string
		end     string
		itemIDs string
	)
	err := r.store.Conn(ctx).QueryRowContext(ctx, query, args...).Scan(
		&p.ID, &p.Name, &rate, &start, &end, &p.Active, &itemIDs,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPromotionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get promotion: %w", err)
	}

	if p.Rate, err = decimal.NewFromString(rate); err != nil {
		return nil, fmt.Errorf("parse promotion rate %q: %w", rate, err)
	}
	if p.StartDate, err = time.ParseInLocation(dateLayout, start, r.location); err != nil {
		return nil, fmt.Errorf("parse promotion start %q: %w", start, err)
	}
	if p.EndDate, err = time.ParseInLocation(dateLayout, end, r.location); err != nil {
		return nil, fmt.Errorf("parse promotion end %q: %w", end, err)
	}
	if itemIDs != "" {
		p.ItemIDs = strings.Split(itemIDs, ",")
	}
	return &p, nil
}
