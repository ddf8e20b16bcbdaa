package reservation

import (
	"context"

	"github.com/KirkDiggler/playtime/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/playtime/internal/repositories/reservation Repository

// Repository defines the interface for reservation persistence
type Repository interface {
	// CreateReservation persists a new reservation
	CreateReservation(ctx context.Context, input *CreateReservationInput) error

	// GetReservation retrieves a reservation by ID or ticket number
	GetReservation(ctx context.Context, input *GetReservationInput) (*models.Reservation, error)

	// UpdateReservationStatus changes the status of a reservation
	UpdateReservationStatus(ctx context.Context, input *UpdateReservationStatusInput) error

	// DeleteReservation removes a reservation and its session
	DeleteReservation(ctx context.Context, input *DeleteReservationInput) error

	// ListReservationsByDay retrieves the reservations created on a day
	ListReservationsByDay(ctx context.Context, input *ListReservationsByDayInput) (*ListReservationsByDayOutput, error)
}
