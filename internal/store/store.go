// Package store is the persistence adapter over the embedded SQLite file
// shared by every component.
//
// Writes run through WithinTx, which carries the open transaction in the
// context so that repositories called inside fn join it. A whole lifecycle
// operation either commits together or not at all. When SQLite reports the
// database busy or locked, the transaction is rolled back and fn is rerun
// after attempt × BusyBackoff, up to BusyRetries times.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/KirkDiggler/playtime/internal/common/failure"
	"github.com/KirkDiggler/playtime/internal/common/logger"
	"github.com/KirkDiggler/playtime/internal/store/migrations"
)

const (
	DefaultBusyRetries = 3
	DefaultBusyBackoff = 100 * time.Millisecond
	busyTimeoutMillis  = 250
)

// ErrBusy marks a write that found the store busy or locked
var ErrBusy = errors.New("store busy")

// Config holds configuration for the store
type Config struct {
	// Path is the SQLite file
	Path string

	// BusyRetries bounds the reruns of a busy transaction
	BusyRetries int

	// BusyBackoff is multiplied by the attempt number between reruns
	BusyBackoff time.Duration

	Logger *zap.Logger
}

//go:generate mockgen -package=mocks -destination=mocks/mock_transactor.go github.com/KirkDiggler/playtime/internal/store Transactor
type Transactor interface {
	// WithinTx runs fn in one transaction, retrying on contention
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Querier is satisfied by both *sql.DB and *sql.Tx
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Store provides SQLite-backed persistence
type Store struct {
	db      *sql.DB
	retries int
	backoff time.Duration
	log     *zap.Logger
}

type txKey struct{}

// Open opens the SQLite file at cfg.Path and applies pending migrations
func Open(ctx context.Context, cfg *Config) (*Store, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if strings.TrimSpace(cfg.Path) == "" {
		return nil, errors.New("storage path is required")
	}

	dsn := fmt.Sprintf(
		"%s?_pragma=busy_timeout(%d)&_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)&_txlock=immediate",
		filepath.Clean(cfg.Path), busyTimeoutMillis,
	)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := ensureForeignKeysEnabled(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := applyMigrations(ctx, db, migrations.FS); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	s := &Store{
		db:      db,
		retries: cfg.BusyRetries,
		backoff: cfg.BusyBackoff,
		log:     logger.OrNop(cfg.Logger),
	}
	if s.retries < 0 {
		s.retries = 0
	}
	if s.backoff <= 0 {
		s.backoff = DefaultBusyBackoff
	}
	return s, nil
}

// Close closes the underlying database
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Conn returns the transaction carried by ctx, or the database when there is none
func (s *Store) Conn(ctx context.Context) Querier {
	if tx, ok := ctx.Value(txKey{}).(*sql.Tx); ok {
		return tx
	}
	return s.db
}

// WithinTx runs fn in one immediate transaction. A call made while ctx
// already carries a transaction joins it. Busy or locked failures rerun fn
// from scratch; exhausting the retries returns a PersistenceFailure wrapping
// PersistenceContention. Constraint violations return a PersistenceFailure.
// Any other error from fn is returned unchanged.
func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*sql.Tx); ok {
		return fn(ctx)
	}

	for attempt := 0; ; attempt++ {
		err := s.runTx(ctx, fn)
		if err == nil {
			return nil
		}
		if !IsBusy(err) {
			return classify(err)
		}
		if attempt >= s.retries {
			s.log.Error("store stayed busy",
				zap.Int("attempts", attempt+1),
				zap.Error(err),
			)
			contention := failure.Wrap(failure.PersistenceContention, failure.ReasonDatabaseBusy, err)
			return failure.Wrap(failure.PersistenceFailure, failure.ReasonDatabaseBusy, contention)
		}

		delay := time.Duration(attempt+1) * s.backoff
		s.log.Warn("store busy, retrying",
			zap.Int("attempt", attempt+1),
			zap.Duration("backoff", delay),
			zap.Error(err),
		)
		if err := wait(ctx, delay); err != nil {
			return err
		}
	}
}

func (s *Store) runTx(ctx context.Context, fn func(ctx context.Context) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	if err := fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	committed = true
	return nil
}

func wait(ctx context.Context, delay time.Duration) error {
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// IsBusy reports whether err is a busy or locked store failure
func IsBusy(err error) bool {
	if errors.Is(err, ErrBusy) {
		return true
	}
	var sqliteErr *sqlite.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}
	code := sqliteErr.Code() & 0xff
	return code == sqlite3.SQLITE_BUSY || code == sqlite3.SQLITE_LOCKED
}

// IsConstraint reports whether err is a constraint violation
func IsConstraint(err error) bool {
	var sqliteErr *sqlite.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}
	return sqliteErr.Code()&0xff == sqlite3.SQLITE_CONSTRAINT
}

func classify(err error) error {
	var f *failure.Error
	if errors.As(err, &f) {
		return err
	}
	if IsConstraint(err) {
		return failure.Wrap(failure.PersistenceFailure, failure.ReasonConstraintViolation, err)
	}
	var sqliteErr *sqlite.Error
	if errors.As(err, &sqliteErr) {
		return failure.Wrap(failure.PersistenceFailure, "", err)
	}
	return err
}

func ensureForeignKeysEnabled(ctx context.Context, db *sql.DB) error {
	var enabled int
	if err := db.QueryRowContext(ctx, "PRAGMA foreign_keys").Scan(&enabled); err != nil {
		return fmt.Errorf("check sqlite foreign key pragma: %w", err)
	}
	if enabled != 1 {
		return errors.New("sqlite foreign keys are disabled")
	}
	return nil
}
