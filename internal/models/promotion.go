package models

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// Promotion is a discount valid over an inclusive date window
type Promotion struct {
	// ID is the unique identifier for the promotion
	ID string

	// Name is the display name of the promotion
	Name string

	// Rate is the discount fraction in [0,1]
	Rate decimal.Decimal

	// StartDate is the first day of validity
	StartDate time.Time

	// EndDate is the last day of validity
	EndDate time.Time

	// Active is the operator switch for the promotion
	Active bool

	// ItemIDs lists the catalogue items the promotion targets
	ItemIDs []string
}

// Validate checks the rate range and the date window
func (p *Promotion) Validate() error {
	if p.Rate.IsNegative() || p.Rate.GreaterThan(decimal.NewFromInt(1)) {
		return errors.New("promotion rate must be between 0 and 1")
	}
	if calendarDate(p.EndDate) < calendarDate(p.StartDate) {
		return errors.New("promotion end date is before its start date")
	}
	return nil
}

// IsActiveOn reports whether the promotion applies on the day of t. Each
// date is read on its own calendar, so a window stored in one zone matches
// the same calendar days in any other.
func (p *Promotion) IsActiveOn(t time.Time) bool {
	if !p.Active {
		return false
	}
	day := calendarDate(t)
	return day >= calendarDate(p.StartDate) && day <= calendarDate(p.EndDate)
}

// calendarDate packs the date of t in its own location as yyyymmdd
func calendarDate(t time.Time) int {
	y, m, d := t.Date()
	return y*10000 + int(m)*100 + d
}

// Day truncates t to midnight in its own location
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
