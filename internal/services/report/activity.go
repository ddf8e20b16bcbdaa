package report

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/KirkDiggler/playtime/internal/models"
)

// ActivityKind tags the variant held by an Activity
type ActivityKind string

const (
	ActivityKindReservation ActivityKind = "reservation"
	ActivityKindPayment     ActivityKind = "payment"
)

// Activity is one line of a daily report. The only implementations are
// ReservationActivity and PaymentActivity.
type Activity interface {
	Kind() ActivityKind
	OccurredAt() time.Time
	Amount() decimal.Decimal

	// Counted is false for lines listed without contributing to totals
	Counted() bool

	activity()
}

// ReservationActivity is a reservation sold on the day, counted at its unit price
type ReservationActivity struct {
	Reservation *models.Reservation
}

func (a ReservationActivity) Kind() ActivityKind      { return ActivityKindReservation }
func (a ReservationActivity) OccurredAt() time.Time   { return a.Reservation.CreatedAt }
func (a ReservationActivity) Amount() decimal.Decimal { return a.Reservation.UnitPrice }

// Counted excludes cancelled reservations
func (a ReservationActivity) Counted() bool {
	return a.Reservation.Status != models.ReservationStatusCancelled
}

func (ReservationActivity) activity() {}

// PaymentActivity is a payment taken on the day, such as an extension
type PaymentActivity struct {
	Payment *models.Payment
}

func (a PaymentActivity) Kind() ActivityKind      { return ActivityKindPayment }
func (a PaymentActivity) OccurredAt() time.Time   { return a.Payment.CreatedAt }
func (a PaymentActivity) Amount() decimal.Decimal { return a.Payment.Amount }
func (a PaymentActivity) Counted() bool           { return true }

func (PaymentActivity) activity() {}
