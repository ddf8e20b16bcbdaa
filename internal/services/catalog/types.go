package catalog

import (
	"time"

	"go.uber.org/zap"

	"github.com/KirkDiggler/playtime/internal/common/clock"
	"github.com/KirkDiggler/playtime/internal/models"
	clientRepo "github.com/KirkDiggler/playtime/internal/repositories/client"
	promotionRepo "github.com/KirkDiggler/playtime/internal/repositories/promotion"
	stationRepo "github.com/KirkDiggler/playtime/internal/repositories/station"
	"github.com/KirkDiggler/playtime/internal/store"
)

// Config holds configuration for the catalog service
type Config struct {
	StationRepo   stationRepo.Repository
	ClientRepo    clientRepo.Repository
	PromotionRepo promotionRepo.Repository

	Transactor store.Transactor
	Clock      clock.Clock

	Logger *zap.Logger
}

// Catalog is the reference data of a venue
type Catalog struct {
	Games      []*models.Game
	Stations   []*models.Station
	Clients    []*models.Client
	Referrers  []*models.Referrer
	Promotions []*models.Promotion
}

// ImportCatalogInput contains the catalog to upsert
type ImportCatalogInput struct {
	Catalog    *Catalog
	OperatorID string
}

// ImportCatalogOutput counts what was written
type ImportCatalogOutput struct {
	Games      int
	Stations   int
	Clients    int
	Referrers  int
	Promotions int
	ImportedAt time.Time
}

// SetStationOutOfServiceInput contains parameters for flagging a station
type SetStationOutOfServiceInput struct {
	StationID    string
	OutOfService bool
	OperatorID   string
}
