package promotion

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/playtime/internal/common/failure"
	"github.com/KirkDiggler/playtime/internal/models"
	"github.com/KirkDiggler/playtime/internal/pricing"
	"github.com/KirkDiggler/playtime/internal/store/storetest"
)

type SQLiteRepositoryTestSuite struct {
	suite.Suite
	ctx  context.Context
	repo Repository
}

func (s *SQLiteRepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	repo, err := NewSQLite(&Config{Store: storetest.Open(s.T()), Location: time.UTC})
	s.Require().NoError(err)
	s.repo = repo
}

func TestSQLiteRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(SQLiteRepositoryTestSuite))
}

func date(month time.Month, day int) time.Time {
	return time.Date(2025, month, day, 0, 0, 0, 0, time.UTC)
}

func (s *SQLiteRepositoryTestSuite) save(p *models.Promotion) {
	s.Require().NoError(s.repo.SavePromotion(s.ctx, &SavePromotionInput{Promotion: p}))
}

func (s *SQLiteRepositoryTestSuite) TestSaveAndGetPromotion() {
	s.save(&models.Promotion{
		ID:        "promo-1",
		Name:      "Tabaski",
		Rate:      decimal.RequireFromString("0.15"),
		StartDate: date(6, 1),
		EndDate:   date(6, 7),
		Active:    true,
		ItemIDs:   []string{"soda", "chips"},
	})

	got, err := s.repo.GetPromotion(s.ctx, &GetPromotionInput{PromotionID: "promo-1"})
	s.Require().NoError(err)
	s.Equal("Tabaski", got.Name)
	s.Equal("0.15", got.Rate.String())
	s.True(date(6, 1).Equal(got.StartDate))
	s.True(date(6, 7).Equal(got.EndDate))
	s.True(got.Active)
	s.Equal([]string{"soda", "chips"}, got.ItemIDs)
}

func (s *SQLiteRepositoryTestSuite) TestSaveRejectsInvalidPromotion() {
	err := s.repo.SavePromotion(s.ctx, &SavePromotionInput{Promotion: &models.Promotion{
		ID:        "bad",
		Rate:      decimal.RequireFromString("1.2"),
		StartDate: date(6, 1),
		EndDate:   date(6, 2),
	}})
	s.ErrorIs(err, failure.InvalidInput)
}

func (s *SQLiteRepositoryTestSuite) TestGetActivePromotion() {
	s.save(&models.Promotion{ID: "june", Rate: decimal.RequireFromString("0.10"), StartDate: date(6, 1), EndDate: date(6, 30), Active: true})
	s.save(&models.Promotion{ID: "weekend", Rate: decimal.RequireFromString("0.20"), StartDate: date(6, 14), EndDate: date(6, 15), Active: true})
	s.save(&models.Promotion{ID: "off", Rate: decimal.RequireFromString("0.50"), StartDate: date(6, 1), EndDate: date(6, 30), Active: false})

	got, err := s.repo.GetActivePromotion(s.ctx, &GetActivePromotionInput{Day: time.Date(2025, 6, 10, 18, 0, 0, 0, time.UTC)})
	s.Require().NoError(err)
	s.Equal("june", got.ID)

	got, err = s.repo.GetActivePromotion(s.ctx, &GetActivePromotionInput{Day: date(6, 15)})
	s.Require().NoError(err)
	s.Equal("weekend", got.ID)

	got, err = s.repo.GetActivePromotion(s.ctx, &GetActivePromotionInput{Day: date(6, 30)})
	s.Require().NoError(err)
	s.Equal("june", got.ID)

	_, err = s.repo.GetActivePromotion(s.ctx, &GetActivePromotionInput{Day: date(7, 1)})
	s.ErrorIs(err, ErrPromotionNotFound)
}

const flatTariff = `
currency = "XOF"

[[step]]
minutes = 60
amount = "100"
`

// newZonedRepository stores and reads promotions on the calendar of loc
func (s *SQLiteRepositoryTestSuite) newZonedRepository(loc *time.Location) Repository {
	repo, err := NewSQLite(&Config{Store: storetest.Open(s.T()), Location: loc})
	s.Require().NoError(err)
	return repo
}

func (s *SQLiteRepositoryTestSuite) priceOn(repo Repository, now time.Time) string {
	tariff, err := pricing.ParseTariff([]byte(flatTariff))
	s.Require().NoError(err)

	promo, err := repo.GetActivePromotion(s.ctx, &GetActivePromotionInput{Day: models.Day(now)})
	s.Require().NoError(err)
	s.True(promo.IsActiveOn(now))
	return tariff.Price(time.Hour, promo, now).String()
}

func (s *SQLiteRepositoryTestSuite) TestFirstDayDiscountEastOfUTC() {
	east := time.FixedZone("UTC+2", 2*60*60)
	repo := s.newZonedRepository(east)
	s.Require().NoError(repo.SavePromotion(s.ctx, &SavePromotionInput{Promotion: &models.Promotion{
		ID:        "half",
		Rate:      decimal.RequireFromString("0.5"),
		StartDate: time.Date(2025, 6, 1, 0, 0, 0, 0, east),
		EndDate:   time.Date(2025, 6, 7, 0, 0, 0, 0, east),
		Active:    true,
	}}))

	got, err := repo.GetPromotion(s.ctx, &GetPromotionInput{PromotionID: "half"})
	s.Require().NoError(err)
	s.True(time.Date(2025, 6, 1, 0, 0, 0, 0, east).Equal(got.StartDate))

	s.Equal("50", s.priceOn(repo, time.Date(2025, 6, 1, 10, 0, 0, 0, east)))
}

func (s *SQLiteRepositoryTestSuite) TestLastDayDiscountWestOfUTC() {
	west := time.FixedZone("UTC-2", -2*60*60)
	repo := s.newZonedRepository(west)
	s.Require().NoError(repo.SavePromotion(s.ctx, &SavePromotionInput{Promotion: &models.Promotion{
		ID:        "half",
		Rate:      decimal.RequireFromString("0.5"),
		StartDate: time.Date(2025, 6, 1, 0, 0, 0, 0, west),
		EndDate:   time.Date(2025, 6, 7, 0, 0, 0, 0, west),
		Active:    true,
	}}))

	s.Equal("50", s.priceOn(repo, time.Date(2025, 6, 7, 22, 0, 0, 0, west)))
}
