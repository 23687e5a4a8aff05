// Package nager looks up public holidays through the Nager.Date API so
// closures can be weighed against state holidays.
package nager

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/firebase/genkit/go/genkit"
	"github.com/va6996/tripmate/catalog"
	"github.com/va6996/tripmate/tools"
)

const (
	DefaultBaseURL     = "https://date.nager.at/api/v3"
	DefaultCountry     = "AU"
	DefaultSubdivision = "AU-NSW"
)

// Client handles Nager.Date API requests
type Client struct {
	BaseURL     string
	Country     string
	Subdivision string
	HTTPClient  *http.Client

	mu    sync.Mutex
	years map[int][]Holiday
}

// NewClient creates a Nager.Date client for one country subdivision and
// registers its tool. Empty arguments take the Sydney defaults.
func NewClient(baseURL, country, subdivision string, gk *genkit.Genkit, registry *tools.Registry) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if country == "" {
		country = DefaultCountry
	}
	if subdivision == "" {
		subdivision = DefaultSubdivision
	}
	c := &Client{
		BaseURL:     strings.TrimRight(baseURL, "/"),
		Country:     strings.ToUpper(country),
		Subdivision: strings.ToUpper(subdivision),
		HTTPClient:  &http.Client{Timeout: 30 * time.Second},
		years:       make(map[int][]Holiday),
	}

	NewHolidayTool(c, gk, registry)

	return c
}

// Holiday represents a public holiday from Nager.Date API
type Holiday struct {
	Date        string   `json:"date"`
	LocalName   string   `json:"localName"`
	Name        string   `json:"name"`
	CountryCode string   `json:"countryCode"`
	Global      bool     `json:"global"`
	Counties    []string `json:"counties"`
	Types       []string `json:"types"`
}

// AppliesTo reports whether the holiday is observed in subdivision.
func (h Holiday) AppliesTo(subdivision string) bool {
	if h.Global || len(h.Counties) == 0 {
		return true
	}
	for _, county := range h.Counties {
		if strings.EqualFold(county, subdivision) {
			return true
		}
	}
	return false
}

// GetPublicHolidays returns the country's public holidays for year. Results
// are kept per year for the life of the client.
func (c *Client) GetPublicHolidays(ctx context.Context, year int) ([]Holiday, error) {
	c.mu.Lock()
	cached, ok := c.years[year]
	c.mu.Unlock()
	if ok {
		return cached, nil
	}

	url := fmt.Sprintf("%s/PublicHolidays/%d/%s", c.BaseURL, year, c.Country)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to get public holidays: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API request failed with status %d", resp.StatusCode)
	}

	var holidays []Holiday
	if err := json.NewDecoder(resp.Body).Decode(&holidays); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	c.mu.Lock()
	c.years[year] = holidays
	c.mu.Unlock()
	return holidays, nil
}

// HolidayOn returns the holiday observed in the client's subdivision on day,
// or nil when day is an ordinary day.
func (c *Client) HolidayOn(ctx context.Context, day catalog.Date) (*Holiday, error) {
	holidays, err := c.GetPublicHolidays(ctx, day.Year)
	if err != nil {
		return nil, err
	}
	want := day.String()
	for _, h := range holidays {
		if h.Date == want && h.AppliesTo(c.Subdivision) {
			return &h, nil
		}
	}
	return nil, nil
}
