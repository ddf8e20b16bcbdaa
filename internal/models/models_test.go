package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestReservationStatusTransitions(t *testing.T) {
	assert.True(t, ReservationStatusPending.CanTransitionTo(ReservationStatusActive))
	assert.True(t, ReservationStatusPending.CanTransitionTo(ReservationStatusCancelled))
	assert.True(t, ReservationStatusActive.CanTransitionTo(ReservationStatusCompleted))

	assert.False(t, ReservationStatusActive.CanTransitionTo(ReservationStatusPending))
	assert.False(t, ReservationStatusActive.CanTransitionTo(ReservationStatusCancelled))
	assert.False(t, ReservationStatusCompleted.CanTransitionTo(ReservationStatusActive))
	assert.False(t, ReservationStatusCancelled.CanTransitionTo(ReservationStatusPending))
	assert.False(t, ReservationStatus("unknown").IsValid())
}

func TestSessionStatusTransitions(t *testing.T) {
	assert.True(t, SessionStatusActive.CanTransitionTo(SessionStatusPaused))
	assert.True(t, SessionStatusPaused.CanTransitionTo(SessionStatusActive))
	assert.True(t, SessionStatusPaused.CanTransitionTo(SessionStatusCompleted))
	assert.False(t, SessionStatusCompleted.CanTransitionTo(SessionStatusActive))
	assert.False(t, SessionStatusActive.CanTransitionTo(SessionStatusActive))

	assert.True(t, SessionStatusPaused.IsOpen())
	assert.False(t, SessionStatusCompleted.IsOpen())
}

func TestPromotionWindowIsInclusive(t *testing.T) {
	promo := &Promotion{
		Rate:      decimal.RequireFromString("0.2"),
		StartDate: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC),
		Active:    true,
	}

	assert.NoError(t, promo.Validate())
	assert.False(t, promo.IsActiveOn(time.Date(2025, 5, 31, 23, 59, 0, 0, time.UTC)))
	assert.True(t, promo.IsActiveOn(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, promo.IsActiveOn(time.Date(2025, 6, 3, 22, 0, 0, 0, time.UTC)))
	assert.False(t, promo.IsActiveOn(time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC)))

	promo.Active = false
	assert.False(t, promo.IsActiveOn(time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)))
}

func TestPromotionWindowIgnoresZoneOffsets(t *testing.T) {
	east := time.FixedZone("UTC+2", 2*60*60)
	west := time.FixedZone("UTC-2", -2*60*60)
	promo := &Promotion{
		Rate:      decimal.RequireFromString("0.5"),
		StartDate: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 6, 7, 0, 0, 0, 0, time.UTC),
		Active:    true,
	}

	assert.True(t, promo.IsActiveOn(time.Date(2025, 6, 1, 0, 30, 0, 0, east)))
	assert.True(t, promo.IsActiveOn(time.Date(2025, 6, 7, 23, 0, 0, 0, west)))
	assert.False(t, promo.IsActiveOn(time.Date(2025, 5, 31, 23, 0, 0, 0, west)))
	assert.False(t, promo.IsActiveOn(time.Date(2025, 6, 8, 0, 30, 0, 0, east)))

	promo.StartDate = time.Date(2025, 6, 1, 0, 0, 0, 0, east)
	promo.EndDate = time.Date(2025, 6, 7, 0, 0, 0, 0, west)
	assert.NoError(t, promo.Validate())
	assert.True(t, promo.IsActiveOn(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)))
}

func TestPromotionValidate(t *testing.T) {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	bad := &Promotion{Rate: decimal.RequireFromString("1.5"), StartDate: start, EndDate: start}
	assert.Error(t, bad.Validate())

	reversed := &Promotion{Rate: decimal.RequireFromString("0.1"), StartDate: start, EndDate: start.AddDate(0, 0, -1)}
	assert.Error(t, reversed.Validate())
}

func TestStationSupports(t *testing.T) {
	station := &Station{ID: "ps5-1", GameIDs: []string{"fifa", "gt7"}}
	assert.True(t, station.Supports("gt7"))
	assert.False(t, station.Supports("tekken"))
}

func TestSessionRemaining(t *testing.T) {
	start := time.Date(2025, 6, 1, 14, 0, 0, 0, time.UTC)
	session := &Session{StartedAt: start, PaidDuration: time.Hour, Status: SessionStatusActive}

	assert.Equal(t, 40*time.Minute, session.Remaining(start.Add(20*time.Minute)))
	assert.Equal(t, 20*time.Minute, session.Elapsed(start.Add(20*time.Minute)))
}
