package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod identifies how a payment was collected
type PaymentMethod string

const (
	PaymentMethodCash        PaymentMethod = "cash"
	PaymentMethodCard        PaymentMethod = "card"
	PaymentMethodWave        PaymentMethod = "wave"
	PaymentMethodOrangeMoney PaymentMethod = "orange_money"
)

// IsValid reports whether the method is accepted
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodCard, PaymentMethodWave, PaymentMethodOrangeMoney:
		return true
	}
	return false
}

// PaymentContext describes what a payment was collected for
type PaymentContext string

// PaymentContextExtension is a mid-session top-up
const PaymentContextExtension PaymentContext = "extension"

// Payment records money collected by an operator
type Payment struct {
	// ID is the unique identifier for the payment
	ID string

	// Amount is the collected amount
	Amount decimal.Decimal

	// Method is how the amount was collected
	Method PaymentMethod

	// Context is what the payment was for
	Context PaymentContext

	// ReservationID links the payment to a reservation
	ReservationID string

	// SessionID links the payment to a session, for extensions
	SessionID string

	// OperatorID is the operator who collected the payment
	OperatorID string

	// CreatedAt is when the payment was recorded
	CreatedAt time.Time
}

// Receipt is returned when a payment is recorded
type Receipt struct {
	// PaymentID is the recorded payment
	PaymentID string

	// Number is the printed receipt number
	Number string

	// Amount is the collected amount
	Amount decimal.Decimal

	// IssuedAt is when the receipt was issued
	IssuedAt time.Time
}
