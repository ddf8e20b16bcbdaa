package promotion

import (
	"time"

	"github.com/KirkDiggler/playtime/internal/models"
)

// SavePromotionInput contains parameters for saving a promotion
type SavePromotionInput struct {
	Promotion *models.Promotion
}

// GetPromotionInput contains parameters for retrieving a promotion
type GetPromotionInput struct {
	PromotionID string
}

// GetActivePromotionInput contains parameters for finding the day's promotion
type GetActivePromotionInput struct {
	Day time.Time
}
