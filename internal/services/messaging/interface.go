package messaging

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/playtime/internal/services/messaging Service

// Service is the interface for the messaging service
type Service interface {
	// GetErrorMessage turns a failed command into an actionable operator message
	GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error)

	// GetExpiryMessage turns a watchdog event into an operator notice or prompt
	GetExpiryMessage(ctx context.Context, input *GetExpiryMessageInput) (*GetExpiryMessageOutput, error)

	// GetStationStatusMessage renders one station's status line
	GetStationStatusMessage(ctx context.Context, input *GetStationStatusMessageInput) (*GetStationStatusMessageOutput, error)

	// GetReceiptMessage renders a payment receipt
	GetReceiptMessage(ctx context.Context, input *GetReceiptMessageInput) (*GetReceiptMessageOutput, error)
}
