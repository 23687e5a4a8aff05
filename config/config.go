package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config aggregates all application configuration
type Config struct {
	AI       AIConfig       `yaml:"ai"`
	Catalog  CatalogConfig  `yaml:"catalog"`
	Weather  WeatherConfig  `yaml:"weather"`
	Server   ServerConfig   `yaml:"server"`
	Maps     MapsConfig     `yaml:"maps"`
	Holidays HolidaysConfig `yaml:"holidays"`
	Log      LogConfig      `yaml:"log"`
}

type AIConfig struct {
	Plugin   string       `yaml:"plugin" env:"AI_PLUGIN" env-default:"gemini"`
	MaxSteps int          `yaml:"max_steps" env:"AI_MAX_STEPS" env-default:"20"`
	Gemini   GeminiConfig `yaml:"gemini"`
	Ollama   OllamaConfig `yaml:"ollama"`
	OpenAI   OpenAIConfig `yaml:"openai"`
}

type GeminiConfig struct {
	APIKey string `yaml:"api_key" env:"GEMINI_API_KEY"`
	Model  string `yaml:"model" env:"GEMINI_MODEL" env-default:"gemini-1.5-flash"`
}

type OllamaConfig struct {
	Model   string `yaml:"model" env:"OLLAMA_MODEL" env-default:"qwen3:4b"`
	BaseURL string `yaml:"base_url" env:"OLLAMA_BASE_URL" env-default:"http://localhost:11434"`
}

type OpenAIConfig struct {
	APIKey  string `yaml:"api_key" env:"OPENAI_API_KEY"`
	Model   string `yaml:"model" env:"OPENAI_MODEL" env-default:"gpt-4o-mini"`
	BaseURL string `yaml:"base_url" env:"OPENAI_BASE_URL" env-default:"https://api.openai.com/v1/"`
}

// CatalogConfig selects where the attraction catalog comes from.
// Source is one of "builtin", "file" or "db".
type CatalogConfig struct {
	Source   string `yaml:"source" env:"CATALOG_SOURCE" env-default:"builtin"`
	Path     string `yaml:"path" env:"CATALOG_PATH" env-default:"attractions.yaml"`
	Driver   string `yaml:"driver" env:"CATALOG_DB_DRIVER" env-default:"sqlite"`
	DSN      string `yaml:"dsn" env:"CATALOG_DB_DSN" env-default:"tripmate.db"`
	Currency string `yaml:"currency" env:"CATALOG_CURRENCY" env-default:"AUD"`
}

type WeatherConfig struct {
	// Seed fixes the mock weather generator; 0 seeds from the clock.
	Seed int64 `yaml:"seed" env:"WEATHER_SEED" env-default:"0"`
}

type ServerConfig struct {
	Port string `yaml:"port" env:"PORT" env-default:"8000"`
}

type MapsConfig struct {
	APIKey string `yaml:"api_key" env:"GOOGLE_MAPS_API_KEY"`
}

// HolidaysConfig enables the public holiday lookup, which needs network access.
type HolidaysConfig struct {
	Enabled     bool   `yaml:"enabled" env:"HOLIDAYS_ENABLED" env-default:"false"`
	BaseURL     string `yaml:"base_url" env:"NAGER_BASE_URL" env-default:"https://date.nager.at/api/v3"`
	Country     string `yaml:"country" env:"HOLIDAYS_COUNTRY" env-default:"AU"`
	Subdivision string `yaml:"subdivision" env:"HOLIDAYS_SUBDIVISION" env-default:"AU-NSW"`
}

type LogConfig struct {
	Level string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
}

// Load reads configuration from config.yaml and environment variables
// Priority: Env Vars > Config File > Defaults
func Load() (*Config, error) {
	return LoadFile("config.yaml")
}

// LoadFile is Load with an explicit config file path. A missing or unreadable
// file falls back to environment variables and defaults.
func LoadFile(path string) (*Config, error) {
	var cfg Config

	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("failed to read env config: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects values no component can act on.
func (c *Config) Validate() error {
	switch c.AI.Plugin {
	case "gemini", "ollama", "openai":
	default:
		return fmt.Errorf("unsupported AI_PLUGIN %q (want gemini, ollama or openai)", c.AI.Plugin)
	}
	switch c.Catalog.Source {
	case "builtin", "file", "db":
	default:
		return fmt.Errorf("unsupported CATALOG_SOURCE %q (want builtin, file or db)", c.Catalog.Source)
	}
	if c.AI.MaxSteps <= 0 {
		return fmt.Errorf("AI_MAX_STEPS must be positive, got %d", c.AI.MaxSteps)
	}
	return nil
}
