package station

import (
	"context"

	"github.com/KirkDiggler/playtime/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/playtime/internal/repositories/station Repository

// Repository defines the interface for the station and game catalog
type Repository interface {
	// SaveStation creates or updates a station and replaces its compatible games
	SaveStation(ctx context.Context, input *SaveStationInput) error

	// GetStation retrieves a station with its compatible games
	GetStation(ctx context.Context, input *GetStationInput) (*models.Station, error)

	// ListStations retrieves every station ordered by name
	ListStations(ctx context.Context, input *ListStationsInput) (*ListStationsOutput, error)

	// SetOutOfService flags or clears a station's out-of-service state
	SetOutOfService(ctx context.Context, input *SetOutOfServiceInput) error

	// SaveGame creates or updates a game
	SaveGame(ctx context.Context, input *SaveGameInput) error

	// GetGame retrieves a game by ID
	GetGame(ctx context.Context, input *GetGameInput) (*models.Game, error)
}
