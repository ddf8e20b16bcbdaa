package station

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/playtime/internal/common/failure"
	"github.com/KirkDiggler/playtime/internal/models"
	"github.com/KirkDiggler/playtime/internal/store/storetest"
)

type SQLiteRepositoryTestSuite struct {
	suite.Suite
	ctx  context.Context
	repo Repository
}

func (s *SQLiteRepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	repo, err := NewSQLite(&Config{Store: storetest.Open(s.T())})
	s.Require().NoError(err)
	s.repo = repo

	for _, g := range []*models.Game{{ID: "fifa", Title: "FIFA 25"}, {ID: "gt7", Title: "Gran Turismo 7"}} {
		s.Require().NoError(s.repo.SaveGame(s.ctx, &SaveGameInput{Game: g}))
	}
}

func TestSQLiteRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(SQLiteRepositoryTestSuite))
}

func (s *SQLiteRepositoryTestSuite) TestSaveAndGetStation() {
	s.Require().NoError(s.repo.SaveStation(s.ctx, &SaveStationInput{Station: &models.Station{
		ID:      "ps5-1",
		Name:    "PS5 #1",
		GameIDs: []string{"gt7", "fifa"},
	}}))

	got, err := s.repo.GetStation(s.ctx, &GetStationInput{StationID: "ps5-1"})
	s.Require().NoError(err)
	s.Equal("PS5 #1", got.Name)
	s.False(got.OutOfService)
	s.Equal([]string{"fifa", "gt7"}, got.GameIDs)
	s.True(got.Supports("gt7"))

	_, err = s.repo.GetStation(s.ctx, &GetStationInput{StationID: "missing"})
	s.ErrorIs(err, ErrStationNotFound)
}

func (s *SQLiteRepositoryTestSuite) TestSaveStationReplacesGames() {
	st := &models.Station{ID: "ps5-1", Name: "PS5 #1", GameIDs: []string{"fifa", "gt7"}}
	s.Require().NoError(s.repo.SaveStation(s.ctx, &SaveStationInput{Station: st}))

	st.GameIDs = []string{"gt7"}
	s.Require().NoError(s.repo.SaveStation(s.ctx, &SaveStationInput{Station: st}))

	got, err := s.repo.GetStation(s.ctx, &GetStationInput{StationID: "ps5-1"})
	s.Require().NoError(err)
	s.Equal([]string{"gt7"}, got.GameIDs)
}

func (s *SQLiteRepositoryTestSuite) TestSaveStationWithUnknownGameRollsBack() {
	err := s.repo.SaveStation(s.ctx, &SaveStationInput{Station: &models.Station{
		ID:      "ps5-1",
		Name:    "PS5 #1",
		GameIDs: []string{"unknown"},
	}})
	s.ErrorIs(err, failure.PersistenceFailure)

	_, err = s.repo.GetStation(s.ctx, &GetStationInput{StationID: "ps5-1"})
	s.ErrorIs(err, ErrStationNotFound)
}

func (s *SQLiteRepositoryTestSuite) TestListStationsAndOutOfService() {
	for _, st := range []*models.Station{
		{ID: "pc-1", Name: "PC #1", GameIDs: []string{"fifa"}},
		{ID: "ps5-1", Name: "PS5 #1"},
	} {
		s.Require().NoError(s.repo.SaveStation(s.ctx, &SaveStationInput{Station: st}))
	}

	s.Require().NoError(s.repo.SetOutOfService(s.ctx, &SetOutOfServiceInput{StationID: "ps5-1", OutOfService: true}))
	s.ErrorIs(s.repo.SetOutOfService(s.ctx, &SetOutOfServiceInput{StationID: "missing"}), ErrStationNotFound)

	output, err := s.repo.ListStations(s.ctx, &ListStationsInput{})
	s.Require().NoError(err)
	s.Require().Len(output.Stations, 2)
	s.Equal("pc-1", output.Stations[0].ID)
	s.Equal([]string{"fifa"}, output.Stations[0].GameIDs)
	s.True(output.Stations[1].OutOfService)
	s.Empty(output.Stations[1].GameIDs)
}

func (s *SQLiteRepositoryTestSuite) TestGetGame() {
	g, err := s.repo.GetGame(s.ctx, &GetGameInput{GameID: "gt7"})
	s.Require().NoError(err)
	s.Equal("Gran Turismo 7", g.Title)

	_, err = s.repo.GetGame(s.ctx, &GetGameInput{GameID: "missing"})
	s.ErrorIs(err, ErrGameNotFound)
}
