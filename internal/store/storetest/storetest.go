// Package storetest opens throwaway stores for repository and service tests.
package storetest

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/playtime/internal/store"
)

// Open creates a migrated store in a temporary directory, closed when the test ends
func Open(t testing.TB) *store.Store {
	t.Helper()

	st, err := store.Open(context.Background(), &store.Config{
		Path:        filepath.Join(t.TempDir(), "playtime.db"),
		BusyRetries: store.DefaultBusyRetries,
		BusyBackoff: time.Millisecond,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	return st
}

// Exec runs raw statements, for seeding rows a test does not exercise
func Exec(t testing.TB, st *store.Store, query string, args ...any) {
	t.Helper()

	ctx := context.Background()
	_, err := st.Conn(ctx).ExecContext(ctx, query, args...)
	require.NoError(t, err)
}

// SeedCatalog inserts one client, one game and one station supporting it
func SeedCatalog(t testing.TB, st *store.Store, clientID, stationID, gameID string) {
	t.Helper()

	Exec(t, st, `INSERT INTO clients (id, name, created_at) VALUES (?, ?, ?)`, clientID, "Client "+clientID, store.ToMillis(time.Now()))
	Exec(t, st, `INSERT INTO games (id, title) VALUES (?, ?)`, gameID, "Game "+gameID)
	Exec(t, st, `INSERT INTO stations (id, name) VALUES (?, ?)`, stationID, "Station "+stationID)
	Exec(t, st, `INSERT INTO station_games (station_id, game_id) VALUES (?, ?)`, stationID, gameID)
}
