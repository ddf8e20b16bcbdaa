package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/playtime/internal/common/failure"
)

type StoreTestSuite struct {
	suite.Suite
	ctx   context.Context
	path  string
	store *Store
}

func (s *StoreTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.path = filepath.Join(s.T().TempDir(), "playtime.db")

	st, err := Open(s.ctx, &Config{
		Path:        s.path,
		BusyRetries: DefaultBusyRetries,
		BusyBackoff: time.Millisecond,
	})
	s.Require().NoError(err)
	s.store = st
}

func (s *StoreTestSuite) TearDownTest() {
	s.Require().NoError(s.store.Close())
}

func TestStoreTestSuite(t *testing.T) {
	suite.Run(t, new(StoreTestSuite))
}

func (s *StoreTestSuite) insertClient(ctx context.Context, id string) error {
	_, err := s.store.Conn(ctx).ExecContext(ctx,
		`INSERT INTO clients (id, name, created_at) VALUES (?, ?, ?)`,
		id, "Client "+id, ToMillis(time.Now()),
	)
	return err
}

func (s *StoreTestSuite) countClients() int {
	var n int
	s.Require().NoError(s.store.Conn(s.ctx).QueryRowContext(s.ctx, `SELECT COUNT(1) FROM clients`).Scan(&n))
	return n
}

func (s *StoreTestSuite) TestOpenRejectsEmptyPath() {
	_, err := Open(s.ctx, &Config{Path: " "})
	s.Error(err)

	_, err = Open(s.ctx, nil)
	s.Error(err)
}

func (s *StoreTestSuite) TestMigrationsApplyOnce() {
	reopened, err := Open(s.ctx, &Config{Path: s.path})
	s.Require().NoError(err)
	defer reopened.Close()

	var n int
	s.Require().NoError(reopened.Conn(s.ctx).QueryRowContext(s.ctx,
		`SELECT COUNT(1) FROM schema_migrations`).Scan(&n))
	s.Equal(1, n)
}

func (s *StoreTestSuite) TestWithinTxCommits() {
	err := s.store.WithinTx(s.ctx, func(ctx context.Context) error {
		return s.insertClient(ctx, "c1")
	})
	s.Require().NoError(err)
	s.Equal(1, s.countClients())
}

func (s *StoreTestSuite) TestWithinTxRollsBackOnError() {
	boom := errors.New("boom")
	err := s.store.WithinTx(s.ctx, func(ctx context.Context) error {
		s.Require().NoError(s.insertClient(ctx, "c1"))
		return boom
	})
	s.ErrorIs(err, boom)
	s.Equal(0, s.countClients())
}

func (s *StoreTestSuite) TestDomainFailurePassesThrough() {
	want := failure.New(failure.PreconditionFailed, failure.ReasonStationOccupied, "")
	err := s.store.WithinTx(s.ctx, func(ctx context.Context) error {
		return want
	})
	s.Same(want, err)
}

func (s *StoreTestSuite) TestNestedCallsJoinOuterTx() {
	err := s.store.WithinTx(s.ctx, func(ctx context.Context) error {
		s.Require().NoError(s.insertClient(ctx, "c1"))
		return s.store.WithinTx(ctx, func(inner context.Context) error {
			s.Require().NoError(s.insertClient(inner, "c2"))
			return errors.New("inner failed")
		})
	})
	s.Error(err)
	s.Equal(0, s.countClients())
}

func (s *StoreTestSuite) TestBusyRetrySucceedsWithoutDuplicates() {
	attempts := 0
	err := s.store.WithinTx(s.ctx, func(ctx context.Context) error {
		attempts++
		if err := s.insertClient(ctx, "c1"); err != nil {
			return err
		}
		if attempts < 3 {
			return ErrBusy
		}
		return nil
	})
	s.Require().NoError(err)
	s.Equal(3, attempts)
	s.Equal(1, s.countClients())
}

func (s *StoreTestSuite) TestBusyRetriesExhausted() {
	attempts := 0
	err := s.store.WithinTx(s.ctx, func(ctx context.Context) error {
		attempts++
		return ErrBusy
	})

	s.Equal(DefaultBusyRetries+1, attempts)
	s.ErrorIs(err, failure.PersistenceFailure)
	s.ErrorIs(err, failure.PersistenceContention)
	s.Equal(failure.ReasonDatabaseBusy, failure.ReasonOf(err))
}

func (s *StoreTestSuite) TestBusyRetryStopsOnCancelledContext() {
	ctx, cancel := context.WithCancel(s.ctx)
	err := s.store.WithinTx(ctx, func(ctx context.Context) error {
		cancel()
		return ErrBusy
	})
	s.ErrorIs(err, context.Canceled)
}

func (s *StoreTestSuite) TestConstraintViolationIsPersistenceFailure() {
	s.Require().NoError(s.store.WithinTx(s.ctx, func(ctx context.Context) error {
		return s.insertClient(ctx, "c1")
	}))

	err := s.store.WithinTx(s.ctx, func(ctx context.Context) error {
		return s.insertClient(ctx, "c1")
	})
	s.ErrorIs(err, failure.PersistenceFailure)
	s.Equal(failure.ReasonConstraintViolation, failure.ReasonOf(err))
}

func (s *StoreTestSuite) TestOneOpenSessionPerStation() {
	now := ToMillis(time.Now())
	exec := func(ctx context.Context, query string, args ...any) {
		_, err := s.store.Conn(ctx).ExecContext(ctx, query, args...)
		s.Require().NoError(err)
	}

	s.Require().NoError(s.store.WithinTx(s.ctx, func(ctx context.Context) error {
		exec(ctx, `INSERT INTO clients (id, name, created_at) VALUES ('c1', 'A', ?)`, now)
		exec(ctx, `INSERT INTO games (id, title) VALUES ('g1', 'FIFA')`)
		exec(ctx, `INSERT INTO stations (id, name) VALUES ('s1', 'PS5 #1')`)
		for _, id := range []string{"r1", "r2"} {
			exec(ctx, `INSERT INTO reservations (id, ticket_number, client_id, station_id, game_id, duration_ms, unit_price, status, created_by, created_at, updated_at)
				VALUES (?, ?, 'c1', 's1', 'g1', 900000, '500', 'pending', 'op', ?, ?)`, id, "T-"+id, now, now)
		}
		exec(ctx, `INSERT INTO sessions (id, reservation_id, client_id, station_id, game_id, started_at, paid_ms, status, started_by, updated_at)
			VALUES ('x1', 'r1', 'c1', 's1', 'g1', ?, 900000, 'paused', 'op', ?)`, now, now)
		return nil
	}))

	err := s.store.WithinTx(s.ctx, func(ctx context.Context) error {
		_, err := s.store.Conn(ctx).ExecContext(ctx,
			`INSERT INTO sessions (id, reservation_id, client_id, station_id, game_id, started_at, paid_ms, status, started_by, updated_at)
			VALUES ('x2', 'r2', 'c1', 's1', 'g1', ?, 900000, 'active', 'op', ?)`, now, now)
		return err
	})
	s.ErrorIs(err, failure.PersistenceFailure)
	s.Equal(failure.ReasonConstraintViolation, failure.ReasonOf(err))
}

func (s *StoreTestSuite) TestIsBusy() {
	s.True(IsBusy(ErrBusy))
	s.True(IsBusy(errors.Join(errors.New("begin"), ErrBusy)))
	s.False(IsBusy(errors.New("other")))
	s.False(IsConstraint(errors.New("other")))
}
