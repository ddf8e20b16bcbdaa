package catalog

import (
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/shopspring/decimal"

	"github.com/KirkDiggler/playtime/internal/common/failure"
	"github.com/KirkDiggler/playtime/internal/models"
)

type catalogFile struct {
	Games      []gameFile      `toml:"game"`
	Stations   []stationFile   `toml:"station"`
	Clients    []clientFile    `toml:"client"`
	Referrers  []referrerFile  `toml:"referrer"`
	Promotions []promotionFile `toml:"promotion"`
}

type gameFile struct {
	ID    string `toml:"id"`
	Title string `toml:"title"`
}

type stationFile struct {
	ID           string   `toml:"id"`
	Name         string   `toml:"name"`
	Games        []string `toml:"games"`
	OutOfService bool     `toml:"out_of_service"`
}

type clientFile struct {
	ID    string `toml:"id"`
	Name  string `toml:"name"`
	Phone string `toml:"phone"`
}

type referrerFile struct {
	ID   string `toml:"id"`
	Name string `toml:"name"`
	Code string `toml:"code"`
}

type promotionFile struct {
	ID     string         `toml:"id"`
	Name   string         `toml:"name"`
	Rate   string         `toml:"rate"`
	Start  toml.LocalDate `toml:"start"`
	End    toml.LocalDate `toml:"end"`
	Active bool           `toml:"active"`
	Items  []string       `toml:"items"`
}

// LoadCatalog reads a TOML catalog file. Promotion dates are taken as days
// in loc.
func LoadCatalog(path string, loc *time.Location) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	return ParseCatalog(data, loc)
}

// ParseCatalog decodes a TOML catalog document
func ParseCatalog(data []byte, loc *time.Location) (*Catalog, error) {
	if loc == nil {
		loc = time.Local
	}

	var raw catalogFile
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, failure.Wrap(failure.InvalidInput, failure.ReasonInvalidValue, fmt.Errorf("decode catalog: %w", err))
	}

	c := &Catalog{}
	for _, g := range raw.Games {
		c.Games = append(c.Games, &models.Game{ID: g.ID, Title: g.Title})
	}
	for _, st := range raw.Stations {
		c.Stations = append(c.Stations, &models.Station{
			ID:           st.ID,
			Name:         st.Name,
			OutOfService: st.OutOfService,
			GameIDs:      st.Games,
		})
	}
	for _, cl := range raw.Clients {
		c.Clients = append(c.Clients, &models.Client{ID: cl.ID, Name: cl.Name, Phone: cl.Phone})
	}
	for _, r := range raw.Referrers {
		c.Referrers = append(c.Referrers, &models.Referrer{ID: r.ID, Name: r.Name, Code: r.Code})
	}
	for _, p := range raw.Promotions {
		if p.Start == (toml.LocalDate{}) || p.End == (toml.LocalDate{}) {
			return nil, failure.Newf(failure.InvalidInput, failure.ReasonMissingField, "promotion %s needs a start and an end date", p.ID)
		}
		rate, err := decimal.NewFromString(p.Rate)
		if err != nil {
			return nil, failure.Newf(failure.InvalidInput, failure.ReasonInvalidValue, "promotion %s: rate %q is not a decimal", p.ID, p.Rate)
		}
		c.Promotions = append(c.Promotions, &models.Promotion{
			ID:        p.ID,
			Name:      p.Name,
			Rate:      rate,
			StartDate: p.Start.AsTime(loc),
			EndDate:   p.End.AsTime(loc),
			Active:    p.Active,
			ItemIDs:   p.Items,
		})
	}
	return c, nil
}
