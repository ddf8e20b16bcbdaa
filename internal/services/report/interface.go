package report

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/playtime/internal/services/report Service

// Service builds read-only views for operators
type Service interface {
	// GetDailyActivity lists a day's reservations and payments with totals
	GetDailyActivity(ctx context.Context, input *GetDailyActivityInput) (*GetDailyActivityOutput, error)

	// GetStationBoard reports every station's state and remaining time
	GetStationBoard(ctx context.Context, input *GetStationBoardInput) (*GetStationBoardOutput, error)
}
