package session

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/playtime/internal/repositories/session Repository

import (
	"context"

	"github.com/KirkDiggler/playtime/internal/models"
)

// Repository defines the interface for session persistence
type Repository interface {
	// CreateSession persists a new session
	CreateSession(ctx context.Context, input *CreateSessionInput) error

	// SaveSession persists the mutable fields of an existing session
	SaveSession(ctx context.Context, input *SaveSessionInput) error

	// GetSession retrieves a session by ID
	GetSession(ctx context.Context, input *GetSessionInput) (*models.Session, error)

	// GetSessionByReservation retrieves the session started from a reservation
	GetSessionByReservation(ctx context.Context, input *GetSessionByReservationInput) (*models.Session, error)

	// GetOpenSessionsForStation retrieves the active or paused sessions on a station
	GetOpenSessionsForStation(ctx context.Context, input *GetOpenSessionsForStationInput) (*GetOpenSessionsForStationOutput, error)

	// ListSessionsByStatus retrieves all sessions in any of the given statuses
	ListSessionsByStatus(ctx context.Context, input *ListSessionsByStatusInput) (*ListSessionsByStatusOutput, error)
}
