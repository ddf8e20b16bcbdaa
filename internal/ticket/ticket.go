package ticket

import (
	"math/rand"
	"sync"
	"time"
)

// alphabet is Crockford base32, which avoids the ambiguous I, L, O and U
const alphabet = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"

const (
	suffixLength = 6
	stampLayout  = "20060102150405"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_generator.go github.com/KirkDiggler/playtime/internal/ticket Generator
type Generator interface {
	// Next returns a ticket number stamped with now
	Next(now time.Time) string
}

// RandomGenerator produces time-derived random ticket numbers of the form
// YYYYMMDDHHMMSS-XXXXXX
type RandomGenerator struct {
	mu     sync.Mutex
	random *rand.Rand
}

// Config for the ticket generator
type Config struct {
	// Optional seed for testing
	Seed int64
}

// New creates a new ticket generator
func New(cfg *Config) *RandomGenerator {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	return &RandomGenerator{
		random: rand.New(rand.NewSource(seed)),
	}
}

// Next returns a ticket number stamped with now
func (g *RandomGenerator) Next(now time.Time) string {
	g.mu.Lock()
	defer g.mu.Unlock()

	buf := make([]byte, 0, len(stampLayout)+1+suffixLength)
	buf = now.AppendFormat(buf, stampLayout)
	buf = append(buf, '-')
	for i := 0; i < suffixLength; i++ {
		buf = append(buf, alphabet[g.random.Intn(len(alphabet))])
	}
	return string(buf)
}
