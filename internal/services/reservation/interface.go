package reservation

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/playtime/internal/services/reservation Service

// Service sells and manages reservations before and around their sessions
type Service interface {
	// CreateReservation books a station and game for a client and accrues points
	CreateReservation(ctx context.Context, input *CreateReservationInput) (*CreateReservationOutput, error)

	// QuoteReservation prices a duration with today's promotion and changes nothing
	QuoteReservation(ctx context.Context, input *QuoteReservationInput) (*QuoteReservationOutput, error)

	// CancelReservation cancels a reservation that has not started
	CancelReservation(ctx context.Context, input *CancelReservationInput) (*CancelReservationOutput, error)

	// DeleteReservation removes a reservation that is not in play
	DeleteReservation(ctx context.Context, input *DeleteReservationInput) error

	// GetReservation looks a reservation up by id or ticket number
	GetReservation(ctx context.Context, input *GetReservationInput) (*GetReservationOutput, error)
}
