// Package weather is a mock forecast provider: plausible, season-bucketed
// temperatures and conditions for any calendar date, drawn from a seedable source.
package weather

import (
	"fmt"
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/firebase/genkit/go/genkit"
	"github.com/va6996/tripmate/catalog"
	"github.com/va6996/tripmate/tools"
)

// Season is one bucket of months sharing a temperature range and condition set.
type Season struct {
	Name       string
	Months     []time.Month
	MinCelsius float64
	MaxCelsius float64
	Conditions []string
}

// Contains reports whether m belongs to the season.
func (s Season) Contains(m time.Month) bool {
	for _, month := range s.Months {
		if month == m {
			return true
		}
	}
	return false
}

// SydneySeasons buckets months for the southern hemisphere. The last season is
// the fallback for months no other season claims.
var SydneySeasons = []Season{
	{
		Name:       "summer",
		Months:     []time.Month{time.December, time.January, time.February},
		MinCelsius: 20, MaxCelsius: 30,
		Conditions: []string{"Sunny", "Partly Cloudy", "Showers"},
	},
	{
		Name:       "winter",
		Months:     []time.Month{time.June, time.July, time.August},
		MinCelsius: 8, MaxCelsius: 17,
		Conditions: []string{"Mild", "Cool", "Rain"},
	},
	{
		Name:       "shoulder",
		MinCelsius: 15, MaxCelsius: 25,
		Conditions: []string{"Mild", "Pleasant", "Partly Cloudy"},
	},
}

// Report is one mock forecast.
type Report struct {
	Date       catalog.Date `json:"date"`
	Season     string       `json:"season"`
	Celsius    float64      `json:"celsius"`
	Conditions string       `json:"conditions"`
}

func (r Report) String() string {
	return fmt.Sprintf("🌤️ %s: %.1f°C, %s", r.Date, r.Celsius, r.Conditions)
}

// InvalidDateError reports input that is not a YYYY-MM-DD date.
type InvalidDateError struct {
	Input string
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("invalid date '%s'. Use YYYY-MM-DD", e.Input)
}

// Client generates mock weather. The random source is guarded so one client
// can serve concurrent tool calls.
type Client struct {
	seasons []Season

	mu  sync.Mutex
	rng *rand.Rand
}

// NewClient creates a weather client over rng and registers its tool.
// A nil rng seeds from the clock.
func NewClient(rng *rand.Rand, gk *genkit.Genkit, registry *tools.Registry) *Client {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	c := &Client{
		seasons: SydneySeasons,
		rng:     rng,
	}

	NewWeatherTool(c, gk, registry)

	return c
}

// SeasonFor returns the bucket for month m.
func (c *Client) SeasonFor(m time.Month) Season {
	for _, s := range c.seasons[:len(c.seasons)-1] {
		if s.Contains(m) {
			return s
		}
	}
	return c.seasons[len(c.seasons)-1]
}

// For returns a mock forecast for date (YYYY-MM-DD).
func (c *Client) For(date string) (Report, error) {
	day, err := catalog.ParseDate(date)
	if err != nil {
		return Report{}, &InvalidDateError{Input: catalog.TrimInput(date)}
	}
	season := c.SeasonFor(day.Month)

	c.mu.Lock()
	temp := season.MinCelsius + c.rng.Float64()*(season.MaxCelsius-season.MinCelsius)
	condition := season.Conditions[c.rng.Intn(len(season.Conditions))]
	c.mu.Unlock()

	return Report{
		Date:       day,
		Season:     season.Name,
		Celsius:    tenthsBelow(temp, season.MaxCelsius),
		Conditions: condition,
	}, nil
}

// tenthsBelow truncates to one decimal and keeps the reading strictly under ceiling.
func tenthsBelow(celsius, ceiling float64) float64 {
	t := math.Floor(celsius * 10)
	if limit := math.Round(ceiling * 10); t >= limit {
		t = limit - 1
	}
	return t / 10
}
