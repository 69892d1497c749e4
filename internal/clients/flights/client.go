// Package flights produces synthetic flight search results. The upstream
// provider is stubbed; results are random but deterministic under a fixed
// seed.
package flights

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/roamplan/travel-planner-api/internal/domain"
)

var airlines = []string{
	"Air France",
	"Lufthansa",
	"British Airways",
	"Emirates",
	"Qatar Airways",
	"Turkish Airlines",
	"KLM",
	"Delta",
}

type Client struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewClient seeds the generator. A zero seed uses the current time.
func NewClient(seed int64) *Client {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Client{rng: rand.New(rand.NewSource(seed))}
}

// Search fabricates 3 to 6 flights for the given route and date. The date
// must be "YYYY-MM-DD"; an unparseable date anchors to today.
func (c *Client) Search(origin, destination, date string) []domain.Flight {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		day = time.Now().Truncate(24 * time.Hour)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	n := 3 + c.rng.Intn(4)
	out := make([]domain.Flight, 0, n)
	for i := 0; i < n; i++ {
		airline := airlines[c.rng.Intn(len(airlines))]
		durationMin := 90 + c.rng.Intn(540)
		dep := day.Add(time.Duration(6+c.rng.Intn(14)) * time.Hour)
		arr := dep.Add(time.Duration(durationMin) * time.Minute)

		out = append(out, domain.Flight{
			ID:            fmt.Sprintf("fl_%s_%s_%d", origin, destination, i),
			Airline:       airline,
			Price:         float64(120 + c.rng.Intn(1300)),
			DepartureTime: dep.Format(time.RFC3339),
			ArrivalTime:   arr.Format(time.RFC3339),
			Duration:      fmt.Sprintf("%dh %02dm", durationMin/60, durationMin%60),
		})
	}
	return out
}
