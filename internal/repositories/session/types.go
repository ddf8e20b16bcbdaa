package session

import "github.com/KirkDiggler/playtime/internal/models"

type CreateSessionInput struct {
	Session *models.Session
}

type SaveSessionInput struct {
	Session *models.Session
}

type GetSessionInput struct {
	SessionID string
}

type GetSessionByReservationInput struct {
	ReservationID string
}

type GetOpenSessionsForStationInput struct {
	StationID string
}

type GetOpenSessionsForStationOutput struct {
	Sessions []*models.Session
}

type ListSessionsByStatusInput struct {
	Statuses []models.SessionStatus
}

type ListSessionsByStatusOutput struct {
	Sessions []*models.Session
}
