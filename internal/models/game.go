package models

// Game is a title that can be played on compatible stations
type Game struct {
	// ID is the unique identifier for the game
	ID string

	// Title is the display name of the game
	Title string
}

// Station is a physical seat that hosts one session at a time
type Station struct {
	// ID is the unique identifier for the station
	ID string

	// Name is the label shown to operators
	Name string

	// OutOfService marks a station that cannot be started
	OutOfService bool

	// GameIDs lists the games the station can run
	GameIDs []string
}

// Supports reports whether the station lists gameID among its compatible games
func (s *Station) Supports(gameID string) bool {
	for _, id := range s.GameIDs {
		if id == gameID {
			return true
		}
	}
	return false
}
