// Package config loads the deck service configuration from the
// environment, with optional .env file support for local development.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/tsawler/pagina/model"
)

// Config holds all configuration for the deck service.
type Config struct {
	Port string

	// APIKey gates the /api routes behind bearer auth when set. An
	// empty key leaves the API open.
	APIKey string

	// Composed decks expire from the in-memory store after this long.
	DeckTTL time.Duration

	// Request body cap for deck composition.
	MaxBodyBytes int64

	// Viewport class used when a request does not name one.
	DefaultViewport model.ViewportClass

	// Per-class character budget overrides for the fallback path.
	// Zero values keep the paginate defaults.
	BudgetCompact  int
	BudgetStandard int
	BudgetExpanded int

	// Logging
	LogLevel  string
	LogFormat string
}

// Load reads configuration from environment variables, applying
// defaults for everything unset. A .env file in the working directory
// is loaded first; variables already set take precedence over it.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		Port:   envOr("PORT", "8095"),
		APIKey: os.Getenv("PAGINA_API_KEY"),

		DeckTTL:      envDuration("DECK_TTL", 1*time.Hour),
		MaxBodyBytes: envInt64("MAX_BODY_BYTES", 2<<20), // 2MB

		BudgetCompact:  envInt("BUDGET_COMPACT", 0),
		BudgetStandard: envInt("BUDGET_STANDARD", 0),
		BudgetExpanded: envInt("BUDGET_EXPANDED", 0),

		LogLevel:  envOr("LOG_LEVEL", "info"),
		LogFormat: envOr("LOG_FORMAT", "json"),
	}

	// ParseViewportClass falls back to the standard class on unknown
	// values, matching the lenient handling of the other knobs.
	cfg.DefaultViewport, _ = model.ParseViewportClass(os.Getenv("DEFAULT_VIEWPORT"))

	if cfg.DeckTTL <= 0 {
		cfg.DeckTTL = 1 * time.Hour
	}
	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = 2 << 20
	}

	return cfg
}

// Validate reports configuration that Load's lenient defaults cannot
// paper over.
func (c Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("PORT must not be empty")
	}
	if _, err := strconv.Atoi(c.Port); err != nil {
		return fmt.Errorf("PORT must be numeric, got %q", c.Port)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("LOG_LEVEL must be one of debug, info, warn, error; got %q", c.LogLevel)
	}
	switch c.LogFormat {
	case "json", "text":
	default:
		return fmt.Errorf("LOG_FORMAT must be json or text, got %q", c.LogFormat)
	}
	return nil
}

// Budgets returns the per-class character budget overrides in the
// shape the paginator config takes. Zero entries are ignored there.
func (c Config) Budgets() map[model.ViewportClass]int {
	return map[model.ViewportClass]int{
		model.ViewportCompact:  c.BudgetCompact,
		model.ViewportStandard: c.BudgetStandard,
		model.ViewportExpanded: c.BudgetExpanded,
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
