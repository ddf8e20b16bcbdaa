package catalog

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/KirkDiggler/playtime/internal/common/clock"
	"github.com/KirkDiggler/playtime/internal/common/failure"
	"github.com/KirkDiggler/playtime/internal/common/logger"
	clientRepo "github.com/KirkDiggler/playtime/internal/repositories/client"
	promotionRepo "github.com/KirkDiggler/playtime/internal/repositories/promotion"
	stationRepo "github.com/KirkDiggler/playtime/internal/repositories/station"
	"github.com/KirkDiggler/playtime/internal/store"
)

type service struct {
	stationRepo   stationRepo.Repository
	clientRepo    clientRepo.Repository
	promotionRepo promotionRepo.Repository
	tx            store.Transactor
	clock         clock.Clock
	log           *zap.Logger
}

// NewService creates a new catalog service
func NewService(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.StationRepo == nil {
		return nil, ErrNilStationRepo
	}
	if cfg.ClientRepo == nil {
		return nil, ErrNilClientRepo
	}
	if cfg.PromotionRepo == nil {
		return nil, ErrNilPromotionRepo
	}
	if cfg.Transactor == nil {
		return nil, ErrNilTransactor
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	return &service{
		stationRepo:   cfg.StationRepo,
		clientRepo:    cfg.ClientRepo,
		promotionRepo: cfg.PromotionRepo,
		tx:            cfg.Transactor,
		clock:         cfg.Clock,
		log:           logger.OrNop(cfg.Logger),
	}, nil
}

// ImportCatalog validates the whole catalog first, then writes games before
// the stations that list them. Nothing is written when any entry is invalid.
func (s *service) ImportCatalog(ctx context.Context, input *ImportCatalogInput) (*ImportCatalogOutput, error) {
	if input == nil || input.Catalog == nil {
		return nil, failure.New(failure.InvalidInput, failure.ReasonMissingField, "catalog is required")
	}
	if err := requireOperator(input.OperatorID); err != nil {
		return nil, err
	}
	c := input.Catalog
	if err := validate(c); err != nil {
		return nil, err
	}

	now := s.clock.Now()
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		for _, g := range c.Games {
			if err := s.stationRepo.SaveGame(ctx, &stationRepo.SaveGameInput{Game: g}); err != nil {
				return err
			}
		}
		for _, st := range c.Stations {
			if err := s.stationRepo.SaveStation(ctx, &stationRepo.SaveStationInput{Station: st}); err != nil {
				return err
			}
		}
		for _, cl := range c.Clients {
			if cl.CreatedAt.IsZero() {
				cl.CreatedAt = now
			}
			if err := s.clientRepo.SaveClient(ctx, &clientRepo.SaveClientInput{Client: cl}); err != nil {
				return err
			}
		}
		for _, r := range c.Referrers {
			if err := s.clientRepo.SaveReferrer(ctx, &clientRepo.SaveReferrerInput{Referrer: r}); err != nil {
				return err
			}
		}
		for _, p := range c.Promotions {
			if err := s.promotionRepo.SavePromotion(ctx, &promotionRepo.SavePromotionInput{Promotion: p}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	output := &ImportCatalogOutput{
		Games:      len(c.Games),
		Stations:   len(c.Stations),
		Clients:    len(c.Clients),
		Referrers:  len(c.Referrers),
		Promotions: len(c.Promotions),
		ImportedAt: now,
	}
	s.log.Info("catalog imported",
		zap.String("operator_id", input.OperatorID),
		zap.Int("games", output.Games),
		zap.Int("stations", output.Stations),
		zap.Int("clients", output.Clients),
		zap.Int("referrers", output.Referrers),
		zap.Int("promotions", output.Promotions),
	)
	return output, nil
}

// SetStationOutOfService flags or clears a station. A running session is
// left alone; only new starts are refused.
func (s *service) SetStationOutOfService(ctx context.Context, input *SetStationOutOfServiceInput) error {
	if input == nil || input.StationID == "" {
		return failure.New(failure.InvalidInput, failure.ReasonMissingField, "station id is required")
	}
	if err := requireOperator(input.OperatorID); err != nil {
		return err
	}

	err := s.stationRepo.SetOutOfService(ctx, &stationRepo.SetOutOfServiceInput{
		StationID:    input.StationID,
		OutOfService: input.OutOfService,
	})
	if err != nil {
		return err
	}

	s.log.Info("station service state changed",
		zap.String("station_id", input.StationID),
		zap.Bool("out_of_service", input.OutOfService),
		zap.String("operator_id", input.OperatorID),
	)
	return nil
}

func validate(c *Catalog) error {
	for _, g := range c.Games {
		if g.ID == "" || g.Title == "" {
			return failure.New(failure.InvalidInput, failure.ReasonMissingField, "game needs an id and a title")
		}
	}
	// station games may reference games stored by an earlier import; the
	// foreign key rejects unknown ones
	for _, st := range c.Stations {
		if st.ID == "" || st.Name == "" {
			return failure.New(failure.InvalidInput, failure.ReasonMissingField, "station needs an id and a name")
		}
	}
	for _, cl := range c.Clients {
		if cl.ID == "" || cl.Name == "" {
			return failure.New(failure.InvalidInput, failure.ReasonMissingField, "client needs an id and a name")
		}
	}
	codes := make(map[string]string, len(c.Referrers))
	for _, r := range c.Referrers {
		if r.ID == "" || strings.TrimSpace(r.Code) == "" {
			return failure.New(failure.InvalidInput, failure.ReasonMissingField, "referrer needs an id and a code")
		}
		code := strings.ToUpper(strings.TrimSpace(r.Code))
		if other, ok := codes[code]; ok && other != r.ID {
			return failure.Newf(failure.InvalidInput, failure.ReasonInvalidValue, "referral code %s is used by %s and %s", code, other, r.ID)
		}
		codes[code] = r.ID
	}
	for _, p := range c.Promotions {
		if p.ID == "" {
			return failure.New(failure.InvalidInput, failure.ReasonMissingField, "promotion needs an id")
		}
		if err := p.Validate(); err != nil {
			return failure.Newf(failure.InvalidInput, failure.ReasonInvalidValue, "promotion %s: %v", p.ID, err)
		}
	}
	return nil
}

func requireOperator(operatorID string) error {
	if strings.TrimSpace(operatorID) == "" {
		return failure.New(failure.InvalidInput, failure.ReasonMissingField, "operator id is required")
	}
	return nil
}
