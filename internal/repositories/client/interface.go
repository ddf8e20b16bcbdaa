package client

import (
	"context"

	"github.com/KirkDiggler/playtime/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/playtime/internal/repositories/client Repository

// Repository defines the interface for client and referrer persistence
type Repository interface {
	// SaveClient creates or updates a client's profile; points are left untouched on update
	SaveClient(ctx context.Context, input *SaveClientInput) error

	// GetClient retrieves a client by ID
	GetClient(ctx context.Context, input *GetClientInput) (*models.Client, error)

	// AddLoyaltyPoints credits points to a client
	AddLoyaltyPoints(ctx context.Context, input *AddLoyaltyPointsInput) error

	// SaveReferrer creates or updates a referrer
	SaveReferrer(ctx context.Context, input *SaveReferrerInput) error

	// FindReferrerByCode resolves a referral code
	FindReferrerByCode(ctx context.Context, input *FindReferrerByCodeInput) (*models.Referrer, error)

	// AddReferralPoint credits exactly one point to a referrer
	AddReferralPoint(ctx context.Context, input *AddReferralPointInput) error
}
