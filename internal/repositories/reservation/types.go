package reservation

import (
	"time"

	"github.com/KirkDiggler/playtime/internal/models"
)

// CreateReservationInput contains parameters for creating a reservation
type CreateReservationInput struct {
	Reservation *models.Reservation
}

// GetReservationInput contains parameters for retrieving a reservation.
// ReservationID wins when both are set.
type GetReservationInput struct {
	ReservationID string
	TicketNumber  string
}

// UpdateReservationStatusInput contains parameters for changing a reservation's status
type UpdateReservationStatusInput struct {
	ReservationID string
	Status        models.ReservationStatus
	UpdatedAt     time.Time
}

// DeleteReservationInput contains parameters for deleting a reservation
type DeleteReservationInput struct {
	ReservationID string
}

// ListReservationsByDayInput contains parameters for listing a day's reservations
type ListReservationsByDayInput struct {
	// Day is any instant within the day, in the venue's location
	Day time.Time
}

// ListReservationsByDayOutput contains the reservations ordered by creation time
type ListReservationsByDayOutput struct {
	Reservations []*models.Reservation
}
