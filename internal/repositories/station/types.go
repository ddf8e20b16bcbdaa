package station

import "github.com/KirkDiggler/playtime/internal/models"

type SaveStationInput struct {
	Station *models.Station
}

type GetStationInput struct {
	StationID string
}

type ListStationsInput struct{}

type ListStationsOutput struct {
	Stations []*models.Station
}

type SetOutOfServiceInput struct {
	StationID    string
	OutOfService bool
}

type SaveGameInput struct {
	Game *models.Game
}

type GetGameInput struct {
	GameID string
}
