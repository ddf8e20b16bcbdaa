package models

import "time"

// StationState is what an operator sees for a station on the board
type StationState string

const (
	StationStateFree         StationState = "free"
	StationStateOccupied     StationState = "occupied"
	StationStatePaused       StationState = "paused"
	StationStateOutOfService StationState = "out_of_service"
)

// StationStatus is one row of the station board
type StationStatus struct {
	// StationID is the unique identifier for the station
	StationID string

	// StationName is the label shown to operators
	StationName string

	// State is derived from the station flag and its open session
	State StationState

	// SessionID is the open session, empty when the station is free
	SessionID string

	// Remaining is the paid time left, frozen while paused
	Remaining time.Duration

	// Expired marks an occupied station whose paid time has run out
	Expired bool
}

// Board lists every station in name order
type Board struct {
	// At is the instant the board was computed
	At time.Time

	// Stations contains one status per station
	Stations []*StationStatus
}
