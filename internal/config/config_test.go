package config

import (
	"testing"
	"time"

	"github.com/tsawler/pagina/model"
)

// clearEnv blanks every variable Load reads so ambient values cannot
// leak into a test. t.Setenv restores the originals afterwards.
func clearEnv(t *testing.T) {
	t.Helper()
	keys := []string{
		"PORT", "PAGINA_API_KEY", "DECK_TTL", "MAX_BODY_BYTES",
		"DEFAULT_VIEWPORT", "BUDGET_COMPACT", "BUDGET_STANDARD",
		"BUDGET_EXPANDED", "LOG_LEVEL", "LOG_FORMAT",
	}
	for _, k := range keys {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg := Load()

	if cfg.Port != "8095" {
		t.Errorf("Port = %q, want %q", cfg.Port, "8095")
	}
	if cfg.APIKey != "" {
		t.Errorf("APIKey = %q, want empty", cfg.APIKey)
	}
	if cfg.DeckTTL != 1*time.Hour {
		t.Errorf("DeckTTL = %v, want 1h", cfg.DeckTTL)
	}
	if cfg.MaxBodyBytes != 2<<20 {
		t.Errorf("MaxBodyBytes = %d, want %d", cfg.MaxBodyBytes, 2<<20)
	}
	if cfg.DefaultViewport != model.ViewportStandard {
		t.Errorf("DefaultViewport = %v, want standard", cfg.DefaultViewport)
	}
	if cfg.BudgetCompact != 0 || cfg.BudgetStandard != 0 || cfg.BudgetExpanded != 0 {
		t.Errorf("budget overrides should default to zero, got %d/%d/%d",
			cfg.BudgetCompact, cfg.BudgetStandard, cfg.BudgetExpanded)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "info")
	}
	if cfg.LogFormat != "json" {
		t.Errorf("LogFormat = %q, want %q", cfg.LogFormat, "json")
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}
}

func TestLoadFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9100")
	t.Setenv("PAGINA_API_KEY", "secret")
	t.Setenv("DECK_TTL", "30m")
	t.Setenv("MAX_BODY_BYTES", "1024")
	t.Setenv("DEFAULT_VIEWPORT", "compact")
	t.Setenv("BUDGET_COMPACT", "800")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "text")

	cfg := Load()

	if cfg.Port != "9100" {
		t.Errorf("Port = %q, want %q", cfg.Port, "9100")
	}
	if cfg.APIKey != "secret" {
		t.Errorf("APIKey = %q, want %q", cfg.APIKey, "secret")
	}
	if cfg.DeckTTL != 30*time.Minute {
		t.Errorf("DeckTTL = %v, want 30m", cfg.DeckTTL)
	}
	if cfg.MaxBodyBytes != 1024 {
		t.Errorf("MaxBodyBytes = %d, want 1024", cfg.MaxBodyBytes)
	}
	if cfg.DefaultViewport != model.ViewportCompact {
		t.Errorf("DefaultViewport = %v, want compact", cfg.DefaultViewport)
	}
	if cfg.BudgetCompact != 800 {
		t.Errorf("BudgetCompact = %d, want 800", cfg.BudgetCompact)
	}
	if cfg.LogLevel != "debug" || cfg.LogFormat != "text" {
		t.Errorf("logging = %q/%q, want debug/text", cfg.LogLevel, cfg.LogFormat)
	}
}

func TestLoadMalformedValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("DECK_TTL", "soon")
	t.Setenv("MAX_BODY_BYTES", "-5")
	t.Setenv("DEFAULT_VIEWPORT", "billboard")
	t.Setenv("BUDGET_COMPACT", "tiny")

	cfg := Load()

	if cfg.DeckTTL != 1*time.Hour {
		t.Errorf("DeckTTL = %v, want the 1h default", cfg.DeckTTL)
	}
	if cfg.MaxBodyBytes != 2<<20 {
		t.Errorf("MaxBodyBytes = %d, want the default", cfg.MaxBodyBytes)
	}
	if cfg.DefaultViewport != model.ViewportStandard {
		t.Errorf("DefaultViewport = %v, want standard", cfg.DefaultViewport)
	}
	if cfg.BudgetCompact != 0 {
		t.Errorf("BudgetCompact = %d, want 0", cfg.BudgetCompact)
	}
}

func TestValidate(t *testing.T) {
	base := Config{Port: "8095", LogLevel: "info", LogFormat: "json"}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"empty port", func(c *Config) { c.Port = "" }, true},
		{"non-numeric port", func(c *Config) { c.Port = "http" }, true},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }, true},
		{"bad log format", func(c *Config) { c.LogFormat = "xml" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestBudgets(t *testing.T) {
	cfg := Config{BudgetCompact: 700, BudgetExpanded: 2000}

	budgets := cfg.Budgets()
	if budgets[model.ViewportCompact] != 700 {
		t.Errorf("compact budget = %d, want 700", budgets[model.ViewportCompact])
	}
	if budgets[model.ViewportStandard] != 0 {
		t.Errorf("standard budget = %d, want 0", budgets[model.ViewportStandard])
	}
	if budgets[model.ViewportExpanded] != 2000 {
		t.Errorf("expanded budget = %d, want 2000", budgets[model.ViewportExpanded])
	}
}
