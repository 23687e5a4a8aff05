// Package bootstrap wires configuration into a ready application: catalog,
// tools, model and assistants.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"github.com/firebase/genkit/go/ai"
	"github.com/firebase/genkit/go/genkit"
	"github.com/firebase/genkit/go/plugins/googlegenai"
	ollamaplugin "github.com/firebase/genkit/go/plugins/ollama"
	"github.com/va6996/tripmate/agents"
	"github.com/va6996/tripmate/bootstrap/openaicompat"
	"github.com/va6996/tripmate/catalog"
	"github.com/va6996/tripmate/config"
	"github.com/va6996/tripmate/core"
	"github.com/va6996/tripmate/log"
	"github.com/va6996/tripmate/metrics"
	"github.com/va6996/tripmate/orm"
	"github.com/va6996/tripmate/plugins/attractions"
	coreplugin "github.com/va6996/tripmate/plugins/core"
	"github.com/va6996/tripmate/plugins/gemini"
	"github.com/va6996/tripmate/plugins/googlemaps"
	"github.com/va6996/tripmate/plugins/nager"
	"github.com/va6996/tripmate/plugins/ollama"
	"github.com/va6996/tripmate/plugins/openai"
	"github.com/va6996/tripmate/plugins/weather"
	"github.com/va6996/tripmate/tools"
	"gorm.io/gorm"
)

// App holds the initialized components of the application
type App struct {
	Config      *config.Config
	Genkit      *genkit.Genkit
	Model       ai.Model
	LLM         tools.LLMClient
	Registry    *tools.Registry
	Catalog     *catalog.Catalog
	Resolver    *core.Resolver
	Attractions *attractions.Client
	Weather     *weather.Client
	Router      *agents.Router
	Metrics     *metrics.Metrics
	DB          *gorm.DB

	closers []func() error
}

// Setup initializes every component, including the model and the assistants.
func Setup(ctx context.Context, cfg *config.Config) (*App, error) {
	return setup(ctx, cfg, true)
}

// SetupTools initializes the catalog and tools without a model, for
// transports that only expose tools.
func SetupTools(ctx context.Context, cfg *config.Config) (*App, error) {
	return setup(ctx, cfg, false)
}

func setup(ctx context.Context, cfg *config.Config, withModel bool) (*App, error) {
	app := &App{Config: cfg, Metrics: metrics.New()}

	// 1. Catalog
	if err := app.loadCatalog(ctx); err != nil {
		app.Close()
		return nil, err
	}
	app.Resolver = core.NewResolver(app.Catalog, app.Metrics.ObserveResolution)

	// 2. Genkit with AI plugin
	if withModel {
		if err := app.setupModel(ctx); err != nil {
			app.Close()
			return nil, err
		}
	} else {
		app.Genkit = genkit.Init(ctx)
	}

	// 3. Tools
	app.Registry = tools.NewRegistry()
	app.Registry.SetObserver(app.Metrics.ObserveTool)

	app.Attractions = attractions.NewClient(app.Resolver, app.Genkit, app.Registry)

	var rng *rand.Rand
	if cfg.Weather.Seed != 0 {
		rng = rand.New(rand.NewSource(cfg.Weather.Seed))
	}
	app.Weather = weather.NewClient(rng, app.Genkit, app.Registry)

	coreplugin.NewClient(app.Genkit, app.Registry)

	if cfg.Maps.APIKey != "" {
		if _, err := googlemaps.NewClient(cfg.Maps.APIKey, app.DB, app.Resolver, app.Genkit, app.Registry); err != nil {
			log.Warnf(ctx, "Google Maps disabled: %v", err)
		}
	}
	if cfg.Holidays.Enabled {
		h := cfg.Holidays
		nager.NewClient(h.BaseURL, h.Country, h.Subdivision, app.Genkit, app.Registry)
	}
	log.Infof(ctx, "Registered %d tools: %v", len(app.Registry.Names()), app.Registry.Names())

	// 4. Assistants
	if withModel {
		react := tools.NewAgent(app.Genkit, "tripPlannerReAct", app.Registry, app.LLM, cfg.AI.MaxSteps)
		app.Router = agents.NewRouter(
			agents.NewQAAgent(app.Genkit, app.Model),
			agents.NewReActAgent(react),
			agents.NewFunctionAgent(app.Genkit, app.Registry, app.Model, cfg.AI.MaxSteps),
		)
	}

	return app, nil
}

func (app *App) loadCatalog(ctx context.Context) error {
	cfg := app.Config.Catalog
	switch cfg.Source {
	case "file":
		c, err := catalog.LoadFile(cfg.Path, cfg.Currency)
		if err != nil {
			return err
		}
		app.Catalog = c
	case "db":
		db, err := orm.Open(cfg.Driver, cfg.DSN)
		if err != nil {
			return err
		}
		app.DB = db
		if sqlDB, err := db.DB(); err == nil {
			app.closers = append(app.closers, sqlDB.Close)
		}
		if err := orm.CleanupCache(db); err != nil {
			log.Warnf(ctx, "Failed to clean up expired cache entries: %v", err)
		}

		var count int64
		if err := db.Model(&orm.AttractionRecord{}).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to count attractions: %w", err)
		}
		if count == 0 {
			log.Infof(ctx, "Attractions table is empty, seeding the built-in Sydney catalog")
			if err := orm.SeedCatalog(db, catalog.Sydney()); err != nil {
				return fmt.Errorf("failed to seed attractions: %w", err)
			}
		}
		c, err := orm.LoadCatalog(db, cfg.Currency)
		if err != nil {
			return err
		}
		app.Catalog = c
	default:
		c, err := catalog.New(cfg.Currency, catalog.Sydney().All())
		if err != nil {
			return err
		}
		app.Catalog = c
	}
	log.Infof(ctx, "Loaded %d attractions from %s catalog", app.Catalog.Len(), cfg.Source)
	return nil
}

func (app *App) setupModel(ctx context.Context) error {
	aiCfg := app.Config.AI
	switch aiCfg.Plugin {
	case "ollama":
		log.Infof(ctx, "Using Ollama Plugin (Model: %s)...", aiCfg.Ollama.Model)
		ollamaPlugin := &ollamaplugin.Ollama{ServerAddress: aiCfg.Ollama.BaseURL}
		app.Genkit = genkit.Init(ctx, genkit.WithPlugins(ollamaPlugin))
		app.Model = ollamaPlugin.DefineModel(app.Genkit, ollamaplugin.ModelDefinition{
			Name: aiCfg.Ollama.Model,
			Type: "chat",
		}, &ai.ModelOptions{
			Supports: &ai.ModelSupports{
				Multiturn:  true,
				SystemRole: true,
				Tools:      true,
				Media:      false,
			},
		})
		app.LLM = ollama.NewClient(aiCfg.Ollama.BaseURL, aiCfg.Ollama.Model)

	case "openai":
		log.Infof(ctx, "Using OpenAI-compatible Plugin (Model: %s, BaseURL: %s)...", aiCfg.OpenAI.Model, aiCfg.OpenAI.BaseURL)
		if aiCfg.OpenAI.APIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY must be set (or set AI_PLUGIN=ollama)")
		}
		oai := &openaicompat.OpenAICompatible{
			APIKey:  aiCfg.OpenAI.APIKey,
			BaseURL: aiCfg.OpenAI.BaseURL,
			Models:  []string{aiCfg.OpenAI.Model},
		}
		app.Genkit = genkit.Init(ctx, genkit.WithPlugins(oai))
		app.Model = oai.Model(app.Genkit, aiCfg.OpenAI.Model)
		llm, err := openai.NewClient(aiCfg.OpenAI.APIKey, aiCfg.OpenAI.BaseURL, aiCfg.OpenAI.Model)
		if err != nil {
			return err
		}
		app.LLM = llm

	default:
		log.Infof(ctx, "Using Gemini Plugin (Model: %s)...", aiCfg.Gemini.Model)
		if aiCfg.Gemini.APIKey == "" {
			return fmt.Errorf("GEMINI_API_KEY must be set (or set AI_PLUGIN=ollama)")
		}
		app.Genkit = genkit.Init(ctx, genkit.WithPlugins(&googlegenai.GoogleAI{
			APIKey: aiCfg.Gemini.APIKey,
		}))
		app.Model = googlegenai.GoogleAIModel(app.Genkit, aiCfg.Gemini.Model)
		llm, err := gemini.NewClient(ctx, aiCfg.Gemini.APIKey, aiCfg.Gemini.Model)
		if err != nil {
			return err
		}
		app.LLM = llm
		app.closers = append(app.closers, llm.Close)
	}
	return nil
}

// Close releases database connections and model clients.
func (app *App) Close() error {
	var errs []error
	for i := len(app.closers) - 1; i >= 0; i-- {
		if err := app.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	app.closers = nil
	return errors.Join(errs...)
}
