package models

import (
	"time"
)

// Client is a venue customer
type Client struct {
	// ID is the unique identifier for the client
	ID string

	// Name is the display name of the client
	Name string

	// Phone is the contact number of the client
	Phone string

	// LoyaltyPoints is never decreased
	LoyaltyPoints int

	// CreatedAt is when the client was registered
	CreatedAt time.Time
}

// Referrer earns a point each time a reservation cites their code
type Referrer struct {
	// ID is the unique identifier for the referrer
	ID string

	// Name is the display name of the referrer
	Name string

	// Code is the unique referral code
	Code string

	// Points is the number of reservations that cited the code
	Points int
}
