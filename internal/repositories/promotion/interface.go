package promotion

import (
	"context"

	"github.com/KirkDiggler/playtime/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/playtime/internal/repositories/promotion Repository

// Repository defines the interface for promotion persistence
type Repository interface {
	// SavePromotion creates or updates a promotion
	SavePromotion(ctx context.Context, input *SavePromotionInput) error

	// GetPromotion retrieves a promotion by ID
	GetPromotion(ctx context.Context, input *GetPromotionInput) (*models.Promotion, error)

	// GetActivePromotion retrieves the promotion in effect on a day
	GetActivePromotion(ctx context.Context, input *GetActivePromotionInput) (*models.Promotion, error)
}
