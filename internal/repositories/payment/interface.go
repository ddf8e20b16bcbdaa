package payment

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/playtime/internal/repositories/payment Repository

import (
	"context"

	"github.com/KirkDiggler/playtime/internal/models"
)

// Repository defines the interface for the payment ledger
type Repository interface {
	// RecordPayment appends a payment to the ledger and issues its receipt
	RecordPayment(ctx context.Context, input *RecordPaymentInput) (*models.Receipt, error)

	// GetPaymentsForSession retrieves every payment collected for a session
	GetPaymentsForSession(ctx context.Context, input *GetPaymentsForSessionInput) (*GetPaymentsForSessionOutput, error)

	// ListPaymentsByDay retrieves the payments recorded on a day
	ListPaymentsByDay(ctx context.Context, input *ListPaymentsByDayInput) (*ListPaymentsByDayOutput, error)
}
