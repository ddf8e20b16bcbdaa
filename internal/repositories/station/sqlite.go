package station

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/KirkDiggler/playtime/internal/common/failure"
	"github.com/KirkDiggler/playtime/internal/models"
	"github.com/KirkDiggler/playtime/internal/store"
)

var (
	// ErrStationNotFound is returned when a station is not found
	ErrStationNotFound = failure.New(failure.NotFound, failure.ReasonStationNotFound, "station not found")

	// ErrGameNotFound is returned when a game is not found
	ErrGameNotFound = failure.New(failure.NotFound, failure.ReasonGameNotFound, "game not found")
)

// Config holds configuration for the SQLite station repository
type Config struct {
	Store *store.Store
}

// sqliteRepository implements the Repository interface using SQLite
type sqliteRepository struct {
	store *store.Store
}

// NewSQLite creates a new SQLite-backed station repository
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

// SaveStation creates or updates a station and replaces its compatible games
func (r *sqliteRepository) SaveStation(ctx context.Context, input *SaveStationInput) error {
	if input == nil || input.Station == nil {
		return errors.New("input and station cannot be nil")
	}

	st := input.Station
	if st.ID == "" {
		return errors.New("station ID cannot be empty")
	}

	return r.store.WithinTx(ctx, func(ctx context.Context) error {
		conn := r.store.Conn(ctx)
		_, err := conn.ExecContext(ctx,
			`INSERT INTO stations (id, name, out_of_service) VALUES (?, ?, ?)
			ON CONFLICT (id) DO UPDATE SET name = excluded.name, out_of_service = excluded.out_of_service`,
			st.ID, st.Name, st.OutOfService,
		)
		if err != nil {
			return fmt.Errorf("save station %s: %w", st.ID, err)
		}

		if _, err := conn.ExecContext(ctx, `DELETE FROM station_games WHERE station_id = ?`, st.ID); err != nil {
			return fmt.Errorf("clear games of station %s: %w", st.ID, err)
		}
		for _, gameID := range st.GameIDs {
			if _, err := conn.ExecContext(ctx,
				`INSERT INTO station_games (station_id, game_id) VALUES (?, ?)`, st.ID, gameID,
			); err != nil {
				return fmt.Errorf("link game %s to station %s: %w", gameID, st.ID, err)
			}
		}
		return nil
	})
}

// GetStation retrieves a station with its compatible games
func (r *sqliteRepository) GetStation(ctx context.Context, input *GetStationInput) (*models.Station, error) {
	if input == nil || input.StationID == "" {
		return nil, errors.New("station ID cannot be empty")
	}

	var st models.Station
	err := r.store.Conn(ctx).QueryRowContext(ctx,
		`SELECT id, name, out_of_service FROM stations WHERE id = ?`, input.StationID,
	).Scan(&st.ID, &st.Name, &st.OutOfService)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrStationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get station %s: %w", input.StationID, err)
	}

	gameIDs, err := r.gameIDs(ctx, st.ID)
	if err != nil {
		return nil, err
	}
	st.GameIDs = gameIDs
	return &st, nil
}

// ListStations retrieves every station ordered by name
func (r *sqliteRepository) ListStations(ctx context.Context, input *ListStationsInput) (*ListStationsOutput, error) {
	rows, err := r.store.Conn(ctx).QueryContext(ctx,
		`SELECT id, name, out_of_service FROM stations ORDER BY name, id`)
	if err != nil {
		return nil, fmt.Errorf("list stations: %w", err)
	}

	stations := []*models.Station{}
	for rows.Next() {
		var st models.Station
		if err := rows.Scan(&st.ID, &st.Name, &st.OutOfService); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan station: %w", err)
		}
		stations = append(stations, &st)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("list stations: %w", err)
	}
	rows.Close()

	for _, st := range stations {
		gameIDs, err := r.gameIDs(ctx, st.ID)
		if err != nil {
			return nil, err
		}
		st.GameIDs = gameIDs
	}
	return &ListStationsOutput{Stations: stations}, nil
}

// SetOutOfService flags or clears a station's out-of-service state
func (r *sqliteRepository) SetOutOfService(ctx context.Context, input *SetOutOfServiceInput) error {
	if input == nil || input.StationID == "" {
		return errors.New("station ID cannot be empty")
	}

	result, err := r.store.Conn(ctx).ExecContext(ctx,
		`UPDATE stations SET out_of_service = ? WHERE id = ?`, input.OutOfService, input.StationID,
	)
	if err != nil {
		return fmt.Errorf("update station %s: %w", input.StationID, err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return ErrStationNotFound
	}
	return nil
}

// SaveGame creates or updates a game
func (r *sqliteRepository) SaveGame(ctx context.Context, input *SaveGameInput) error {
	if input == nil || input.Game == nil || input.Game.ID == "" {
		return errors.New("game ID cannot be empty")
	}

	_, err := r.store.Conn(ctx).ExecContext(ctx,
		`INSERT INTO games (id, title) VALUES (?, ?) ON CONFLICT (id) DO UPDATE SET title = excluded.title`,
		input.Game.ID, input.Game.Title,
	)
	if err != nil {
		return fmt.Errorf("save game %s: %w", input.Game.ID, err)
	}
	return nil
}

// GetGame retrieves a game by ID
func (r *sqliteRepository) GetGame(ctx context.Context, input *GetGameInput) (*models.Game, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("game ID cannot be empty")
	}

	var g models.Game
	err := r.store.Conn(ctx).QueryRowContext(ctx,
		`SELECT id, title FROM games WHERE id = ?`, input.GameID,
	).Scan(&g.ID, &g.Title)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrGameNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get game %s: %w", input.GameID, err)
	}
	return &g, nil
}

func (r *sqliteRepository) gameIDs(ctx context.Context, stationID string) ([]string, error) {
	rows, err := r.store.Conn(ctx).QueryContext(ctx,
		`SELECT game_id FROM station_games WHERE station_id = ? ORDER BY game_id`, stationID)
	if err != nil {
		return nil, fmt.Errorf("list games of station %s: %w", stationID, err)
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan game id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
