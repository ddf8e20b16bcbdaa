package session

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/playtime/internal/services/session Service,ExpiryFlags

// Service drives the occupancy of a station from start to termination
type Service interface {
	// StartSession opens a session from a pending reservation
	StartSession(ctx context.Context, input *StartSessionInput) (*StartSessionOutput, error)

	// PauseSession freezes the consumption of paid time
	PauseSession(ctx context.Context, input *PauseSessionInput) (*PauseSessionOutput, error)

	// ResumeSession restarts the consumption of paid time
	ResumeSession(ctx context.Context, input *ResumeSessionInput) (*ResumeSessionOutput, error)

	// ExtendSession buys more time for an active session
	ExtendSession(ctx context.Context, input *ExtendSessionInput) (*ExtendSessionOutput, error)

	// TerminateSession completes a session and its reservation
	TerminateSession(ctx context.Context, input *TerminateSessionInput) (*TerminateSessionOutput, error)

	// GetSession reports a session's status and time accounting
	GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error)
}

// ExpiryFlags forgets the low-time and ended notices raised for a session
type ExpiryFlags interface {
	Reset(sessionID string)
}
