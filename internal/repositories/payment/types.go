package payment

import (
	"time"

	"github.com/KirkDiggler/playtime/internal/models"
)

// RecordPaymentInput contains parameters for recording a payment
type RecordPaymentInput struct {
	Payment *models.Payment
}

// GetPaymentsForSessionInput contains parameters for retrieving a session's payments
type GetPaymentsForSessionInput struct {
	SessionID string
}

// GetPaymentsForSessionOutput contains the payments ordered by time
type GetPaymentsForSessionOutput struct {
	Payments []*models.Payment
}

// ListPaymentsByDayInput contains parameters for listing a day's payments
type ListPaymentsByDayInput struct {
	Day time.Time
}

// ListPaymentsByDayOutput contains the payments ordered by time
type ListPaymentsByDayOutput struct {
	Payments []*models.Payment
}
