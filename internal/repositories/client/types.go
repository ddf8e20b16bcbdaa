package client

import "github.com/KirkDiggler/playtime/internal/models"

// SaveClientInput contains parameters for saving a client
type SaveClientInput struct {
	Client *models.Client
}

// GetClientInput contains parameters for retrieving a client
type GetClientInput struct {
	ClientID string
}

// AddLoyaltyPointsInput contains parameters for crediting loyalty points
type AddLoyaltyPointsInput struct {
	ClientID string
	Points   int
}

// SaveReferrerInput contains parameters for saving a referrer
type SaveReferrerInput struct {
	Referrer *models.Referrer
}

// FindReferrerByCodeInput contains parameters for resolving a referral code
type FindReferrerByCodeInput struct {
	Code string
}

// AddReferralPointInput contains parameters for crediting a referrer
type AddReferralPointInput struct {
	ReferrerID string
}
