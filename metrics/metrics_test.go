package metrics

import (
	"errors"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/va6996/tripmate/catalog"
	"github.com/va6996/tripmate/core"
)

func TestObserveResolution(t *testing.T) {
	m := New()
	r := core.NewResolver(catalog.Sydney(), m.ObserveResolution)

	_, _ = r.Resolve(t.Context(), "luna_park", "2025-11-01")
	_, _ = r.Resolve(t.Context(), "luna_park", "")
	_, _ = r.Resolve(t.Context(), "opera_house", "")
	_, _ = r.Resolve(t.Context(), "nowhere", "")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Resolutions.WithLabelValues("closed_with_alternative")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.Resolutions.WithLabelValues("open")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Resolutions.WithLabelValues("not_found")))
}

func TestObserveToolAndChat(t *testing.T) {
	m := New()
	m.ObserveTool("get_weather", nil, 10*time.Millisecond)
	m.ObserveTool("get_weather", errors.New("boom"), time.Millisecond)
	m.ObserveChat("react", nil, time.Second)
	m.ObserveRPC("/tripmate.v1.TripService/Chat", "ok")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.ToolCalls.WithLabelValues("get_weather", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ToolCalls.WithLabelValues("get_weather", "*errors.errorString")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ChatRequests.WithLabelValues("react", "ok")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.ChatLatency))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RPCRequests.WithLabelValues("/tripmate.v1.TripService/Chat", "ok")))
}

func TestHandler(t *testing.T) {
	m := New()
	m.ObserveResolution("open")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `tripmate_resolutions_total{outcome="open"} 1`)
}

func TestNew_Independent(t *testing.T) {
	a, b := New(), New()
	a.ObserveResolution("open")
	assert.Equal(t, 0.0, testutil.ToFloat64(b.Resolutions.WithLabelValues("open")))
}
