package catalog

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/playtime/internal/services/catalog Service

// Service loads and maintains the reference data the lifecycle reads:
// games, stations, clients, referrers and promotions
type Service interface {
	// ImportCatalog upserts every entry of a catalog in one transaction
	ImportCatalog(ctx context.Context, input *ImportCatalogInput) (*ImportCatalogOutput, error)

	// SetStationOutOfService flags or clears a station's out-of-service state
	SetStationOutOfService(ctx context.Context, input *SetStationOutOfServiceInput) error
}
