package nager

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/firebase/genkit/go/genkit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/va6996/tripmate/catalog"
	"github.com/va6996/tripmate/tools"
)

const holidays2025 = `[
  {"date":"2025-01-26","localName":"Australia Day","name":"Australia Day","countryCode":"AU","global":true,"counties":null,"types":["Public"]},
  {"date":"2025-08-04","localName":"Bank Holiday","name":"Bank Holiday","countryCode":"AU","global":false,"counties":["AU-NSW"],"types":["Bank"]},
  {"date":"2025-08-13","localName":"Royal Queensland Show","name":"Royal Queensland Show","countryCode":"AU","global":false,"counties":["AU-QLD"],"types":["Public"]}
]`

func newTestServer(t *testing.T, hits *int32) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(hits, 1)
		if r.URL.Path != "/PublicHolidays/2025/AU" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(holidays2025))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestNewClient_Defaults(t *testing.T) {
	client := NewClient("", "", "", nil, nil)
	assert.Equal(t, DefaultBaseURL, client.BaseURL)
	assert.Equal(t, "AU", client.Country)
	assert.Equal(t, "AU-NSW", client.Subdivision)
	assert.NotNil(t, client.HTTPClient)
}

func TestClient_HolidayOn(t *testing.T) {
	var hits int32
	srv := newTestServer(t, &hits)
	client := NewClient(srv.URL+"/", "au", "au-nsw", nil, nil)
	ctx := context.Background()

	h, err := client.HolidayOn(ctx, catalog.MustParseDate("2025-01-26"))
	require.NoError(t, err)
	require.NotNil(t, h)
	assert.Equal(t, "Australia Day", h.Name)

	h, err = client.HolidayOn(ctx, catalog.MustParseDate("2025-08-04"))
	require.NoError(t, err)
	require.NotNil(t, h)
	assert.Equal(t, "Bank Holiday", h.Name)

	h, err = client.HolidayOn(ctx, catalog.MustParseDate("2025-08-13"))
	require.NoError(t, err)
	assert.Nil(t, h, "Queensland-only holiday")

	assert.Equal(t, int32(1), atomic.LoadInt32(&hits), "one fetch per year")
}

func TestClient_HTTPError(t *testing.T) {
	var hits int32
	srv := newTestServer(t, &hits)
	client := NewClient(srv.URL, "", "", nil, nil)

	_, err := client.HolidayOn(context.Background(), catalog.MustParseDate("2026-01-26"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 404")
}

func TestClient_ContextCancellation(t *testing.T) {
	var hits int32
	srv := newTestServer(t, &hits)
	client := NewClient(srv.URL, "", "", nil, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.GetPublicHolidays(ctx, 2025)
	assert.Error(t, err)
}

func TestHolidayTool(t *testing.T) {
	var hits int32
	srv := newTestServer(t, &hits)
	gk := genkit.Init(context.Background())
	reg := tools.NewRegistry()
	NewClient(srv.URL, "", "", gk, reg)

	assert.Equal(t, []string{"check_holiday"}, reg.Names())

	out, err := reg.ExecuteTool(context.Background(), "check_holiday", map[string]interface{}{"date": "2025-01-26"})
	require.NoError(t, err)
	res := out.(*HolidayOutput)
	assert.True(t, res.IsHoliday)
	assert.Equal(t, "🎉 2025-01-26 is a public holiday in AU-NSW: Australia Day", res.String())

	out, err = reg.ExecuteTool(context.Background(), "check_holiday", map[string]interface{}{"date": "2025-03-03"})
	require.NoError(t, err)
	assert.Equal(t, "2025-03-03 is not a public holiday in AU-NSW", out.(*HolidayOutput).Message)

	out, err = reg.ExecuteTool(context.Background(), "check_holiday", map[string]interface{}{"date": "soon"})
	require.NoError(t, err)
	assert.Equal(t, "❌ invalid date 'soon'. Use YYYY-MM-DD", out.(*HolidayOutput).Message)
}
