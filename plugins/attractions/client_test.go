package attractions

import (
	"context"
	"testing"

	"github.com/firebase/genkit/go/genkit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/va6996/tripmate/catalog"
	"github.com/va6996/tripmate/core"
	"github.com/va6996/tripmate/tools"
)

func newClient(gk *genkit.Genkit, reg *tools.Registry) *Client {
	return NewClient(core.NewResolver(catalog.Sydney(), nil), gk, reg)
}

func TestClient_Check(t *testing.T) {
	c := newClient(nil, nil)
	ctx := context.Background()

	tests := []struct {
		name       string
		attraction string
		date       string
		want       string
	}{
		{"Open", "opera_house", "", "✅ Sydney Opera House is open - Price: AUD 42, Location: Circular Quay"},
		{"ClosedWithAlternative", "Luna Park", "2025-11-01", "🚫 Luna Park closed on 2025-11-01.\n🔄 Alternative: Sydney Opera House (AUD 42 at Circular Quay)"},
		{"NotFound", "taronga_zoo", "", "❌ 'taronga_zoo' not found. Available: luna_park, opera_house, harbour_bridge, bondi_beach"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.Check(ctx, tt.attraction, tt.date)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClient_Info(t *testing.T) {
	c := newClient(nil, nil)

	one, err := c.Info("bondi_beach")
	require.NoError(t, err)
	assert.Equal(t, "Bondi Beach - Price: AUD 0, Location: Bondi, Note: Free public beach, famous for surfing and coastal walk, Hours: daily 24/7", one)

	all, err := c.Info("")
	require.NoError(t, err)
	assert.Equal(t, c.List(), all)

	unknown, err := c.Info("manly")
	require.NoError(t, err)
	assert.Contains(t, unknown, "Sorry, I couldn't find 'manly'")
}

func TestTools_Registered(t *testing.T) {
	ctx := context.Background()
	gk := genkit.Init(ctx)
	reg := tools.NewRegistry()
	newClient(gk, reg)

	assert.Equal(t, []string{"check_attraction", "list_attractions", "attraction_info"}, reg.Names())

	out, err := reg.ExecuteTool(ctx, "check_attraction", map[string]interface{}{"attraction": "luna_park", "date": "2025-11-01"})
	require.NoError(t, err)
	assert.Contains(t, out.(*TextOutput).Result, "Alternative: Sydney Opera House")

	out, err = reg.ExecuteTool(ctx, "check_attraction", map[string]interface{}{"attraction": "luna_park"})
	require.NoError(t, err)
	assert.Contains(t, out.(*TextOutput).Result, "is open")

	out, err = reg.ExecuteTool(ctx, "list_attractions", map[string]interface{}{})
	require.NoError(t, err)
	assert.Contains(t, out.(*TextOutput).Result, "Sydney Harbour Bridge")

	out, err = reg.ExecuteTool(ctx, "attraction_info", nil)
	require.NoError(t, err)
	assert.Contains(t, out.(*TextOutput).Result, "Luna Park")
}

func TestTools_NilClient(t *testing.T) {
	_, err := NewCheckAttractionTool(nil, nil, nil).Execute(context.Background(), &CheckAttractionInput{Attraction: "x"})
	assert.Error(t, err)
}
