package bootstrap

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/va6996/tripmate/config"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.AI.Plugin = "ollama"
	cfg.AI.MaxSteps = 5
	cfg.AI.Ollama.Model = "qwen3:4b"
	cfg.AI.Ollama.BaseURL = "http://localhost:11434"
	cfg.Catalog.Source = "builtin"
	cfg.Catalog.Currency = "AUD"
	cfg.Catalog.Driver = "sqlite"
	cfg.Weather.Seed = 7
	return cfg
}

func TestSetupTools_Builtin(t *testing.T) {
	app, err := SetupTools(context.Background(), testConfig())
	require.NoError(t, err)
	defer app.Close()

	assert.Equal(t, []string{"luna_park", "opera_house", "harbour_bridge", "bondi_beach"}, app.Catalog.IDs())
	assert.Equal(t, []string{"check_attraction", "list_attractions", "attraction_info", "get_weather", "date_calc"}, app.Registry.Names())
	assert.Nil(t, app.Router)
	assert.Nil(t, app.DB)
}

func TestSetupTools_Holidays(t *testing.T) {
	cfg := testConfig()
	cfg.Holidays.Enabled = true
	cfg.Holidays.BaseURL = "http://127.0.0.1:0"

	app, err := SetupTools(context.Background(), cfg)
	require.NoError(t, err)
	defer app.Close()

	assert.Contains(t, app.Registry.Names(), "check_holiday")
}

func TestSetupTools_FileCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "attractions.yaml")
	content := `attractions:
  - id: taronga_zoo
    name: Taronga Zoo
    price: 51
    location: Mosman
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg := testConfig()
	cfg.Catalog.Source = "file"
	cfg.Catalog.Path = path

	app, err := SetupTools(context.Background(), cfg)
	require.NoError(t, err)
	defer app.Close()
	assert.Equal(t, []string{"taronga_zoo"}, app.Catalog.IDs())
}

func TestSetupTools_DBCatalogIsSeeded(t *testing.T) {
	cfg := testConfig()
	cfg.Catalog.Source = "db"
	cfg.Catalog.DSN = filepath.Join(t.TempDir(), "tripmate.db")

	app, err := SetupTools(context.Background(), cfg)
	require.NoError(t, err)
	require.NotNil(t, app.DB)
	assert.Equal(t, 4, app.Catalog.Len())
	require.NoError(t, app.Close())

	// Second start reads the seeded table.
	again, err := SetupTools(context.Background(), cfg)
	require.NoError(t, err)
	defer again.Close()
	assert.Equal(t, app.Catalog.IDs(), again.Catalog.IDs())
}

func TestSetupTools_MissingFile(t *testing.T) {
	cfg := testConfig()
	cfg.Catalog.Source = "file"
	cfg.Catalog.Path = filepath.Join(t.TempDir(), "missing.yaml")

	_, err := SetupTools(context.Background(), cfg)
	assert.Error(t, err)
}

func TestSetup_Ollama(t *testing.T) {
	app, err := Setup(context.Background(), testConfig())
	require.NoError(t, err)
	defer app.Close()

	require.NotNil(t, app.Router)
	assert.Equal(t, []string{"functions", "qa", "react"}, app.Router.Modes())
	assert.NotNil(t, app.Model)
	assert.NotNil(t, app.LLM)
}

func TestSetup_MissingKeys(t *testing.T) {
	for _, plugin := range []string{"gemini", "openai"} {
		t.Run(plugin, func(t *testing.T) {
			cfg := testConfig()
			cfg.AI.Plugin = plugin
			_, err := Setup(context.Background(), cfg)
			assert.ErrorContains(t, err, "_API_KEY must be set")
		})
	}
}
