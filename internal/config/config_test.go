package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	yaml := `
api:
  base_url: https://pro-api.coingecko.com/api/v3/
  timeout: 5s
quote:
  asset: Bitcoin
  currency: EUR
  max_price: 500000
poller:
  interval: 30s
metrics:
  enabled: true
  port: 9200
`
	path := writeTempFile(t, yaml)

	cfg, err := LoadWithDefaults(path)
	if err != nil {
		t.Fatalf("LoadWithDefaults failed: %v", err)
	}

	if cfg.API.BaseURL != "https://pro-api.coingecko.com/api/v3" {
		t.Errorf("API.BaseURL = %q, want trailing slash trimmed", cfg.API.BaseURL)
	}
	if cfg.API.Timeout != 5*time.Second {
		t.Errorf("API.Timeout = %v, want %v", cfg.API.Timeout, 5*time.Second)
	}
	if cfg.Quote.Asset != "bitcoin" {
		t.Errorf("Quote.Asset = %q, want %q", cfg.Quote.Asset, "bitcoin")
	}
	if cfg.Quote.Currency != "eur" {
		t.Errorf("Quote.Currency = %q, want %q", cfg.Quote.Currency, "eur")
	}
	if cfg.Quote.MaxPrice != 500000 {
		t.Errorf("Quote.MaxPrice = %v, want %v", cfg.Quote.MaxPrice, 500000)
	}
	if cfg.Poller.Interval != 30*time.Second {
		t.Errorf("Poller.Interval = %v, want %v", cfg.Poller.Interval, 30*time.Second)
	}
	if !cfg.Metrics.Enabled || cfg.Metrics.Port != 9200 {
		t.Errorf("Metrics = %+v, want enabled on 9200", cfg.Metrics)
	}
}

func TestLoadWithEnvSubstitution(t *testing.T) {
	t.Setenv("TEST_COINGECKO_KEY", "  cg-secret  ")

	path := writeTempFile(t, "api:\n  api_key: ${TEST_COINGECKO_KEY}\n")

	cfg, err := LoadWithDefaults(path)
	if err != nil {
		t.Fatalf("LoadWithDefaults failed: %v", err)
	}

	if cfg.API.APIKey != "cg-secret" {
		t.Errorf("API.APIKey = %q, want %q", cfg.API.APIKey, "cg-secret")
	}
}

func TestLoadWithDefaults(t *testing.T) {
	t.Run("empty path", func(t *testing.T) {
		cfg, err := LoadWithDefaults("")
		if err != nil {
			t.Fatalf("LoadWithDefaults failed: %v", err)
		}
		assertDefaults(t, cfg)
	})

	t.Run("empty file", func(t *testing.T) {
		cfg, err := LoadWithDefaults(writeTempFile(t, ""))
		if err != nil {
			t.Fatalf("LoadWithDefaults failed: %v", err)
		}
		assertDefaults(t, cfg)
	})

	t.Run("Default matches empty load", func(t *testing.T) {
		assertDefaults(t, Default())
	})
}

func assertDefaults(t *testing.T, cfg *TickerConfig) {
	t.Helper()
	if cfg.API.BaseURL != DefaultBaseURL {
		t.Errorf("API.BaseURL = %q, want default %q", cfg.API.BaseURL, DefaultBaseURL)
	}
	if cfg.API.Timeout != DefaultAPITimeout {
		t.Errorf("API.Timeout = %v, want default %v", cfg.API.Timeout, DefaultAPITimeout)
	}
	if cfg.Quote.Asset != DefaultAsset {
		t.Errorf("Quote.Asset = %q, want default %q", cfg.Quote.Asset, DefaultAsset)
	}
	if cfg.Quote.Currency != DefaultCurrency {
		t.Errorf("Quote.Currency = %q, want default %q", cfg.Quote.Currency, DefaultCurrency)
	}
	if cfg.Quote.MaxPrice != DefaultMaxPrice {
		t.Errorf("Quote.MaxPrice = %v, want default %v", cfg.Quote.MaxPrice, DefaultMaxPrice)
	}
	if cfg.Poller.Interval != DefaultPollInterval {
		t.Errorf("Poller.Interval = %v, want default %v", cfg.Poller.Interval, DefaultPollInterval)
	}
	if cfg.Metrics.Enabled {
		t.Error("Metrics.Enabled = true, want disabled by default")
	}
	if cfg.Metrics.Port != DefaultMetricsPort {
		t.Errorf("Metrics.Port = %d, want default %d", cfg.Metrics.Port, DefaultMetricsPort)
	}
	if cfg.Log.Level != DefaultLogLevel {
		t.Errorf("Log.Level = %q, want default %q", cfg.Log.Level, DefaultLogLevel)
	}
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		if err == nil || !strings.Contains(err.Error(), "read config file") {
			t.Errorf("Load() error = %v, want read config file error", err)
		}
	})

	t.Run("bad yaml", func(t *testing.T) {
		_, err := Load(writeTempFile(t, "poller: [unclosed"))
		if err == nil || !strings.Contains(err.Error(), "parse config yaml") {
			t.Errorf("Load() error = %v, want parse config yaml error", err)
		}
	})

	t.Run("invalid values", func(t *testing.T) {
		_, err := LoadAndValidate(writeTempFile(t, "quote:\n  max_price: -5\n"))
		if err == nil || !strings.HasPrefix(err.Error(), "validate config: ") {
			t.Errorf("LoadAndValidate() error = %v, want validate config error", err)
		}
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *TickerConfig)
		wantErr string
	}{
		{
			name:    "defaults are valid",
			mutate:  func(c *TickerConfig) {},
			wantErr: "",
		},
		{
			name:    "relative base url",
			mutate:  func(c *TickerConfig) { c.API.BaseURL = "api.coingecko.com" },
			wantErr: `api.base_url must be an absolute http(s) URL, got "api.coingecko.com"`,
		},
		{
			name:    "negative timeout",
			mutate:  func(c *TickerConfig) { c.API.Timeout = -time.Second },
			wantErr: "api.timeout must be positive, got -1s",
		},
		{
			name:    "missing asset",
			mutate:  func(c *TickerConfig) { c.Quote.Asset = "" },
			wantErr: "quote.asset is required",
		},
		{
			name:    "multiple assets",
			mutate:  func(c *TickerConfig) { c.Quote.Asset = "bitcoin,ethereum" },
			wantErr: `quote.asset must name a single asset, got "bitcoin,ethereum"`,
		},
		{
			name:    "missing currency",
			mutate:  func(c *TickerConfig) { c.Quote.Currency = "" },
			wantErr: "quote.currency is required",
		},
		{
			name:    "zero max price",
			mutate:  func(c *TickerConfig) { c.Quote.MaxPrice = 0 },
			wantErr: "quote.max_price must be a positive finite number, got 0",
		},
		{
			name:    "negative interval",
			mutate:  func(c *TickerConfig) { c.Poller.Interval = -time.Minute },
			wantErr: "poller.interval must be positive, got -1m0s",
		},
		{
			name: "metrics port out of range",
			mutate: func(c *TickerConfig) {
				c.Metrics.Enabled = true
				c.Metrics.Port = 70000
			},
			wantErr: "metrics.port must be between 1 and 65535, got 70000",
		},
		{
			name:    "metrics port ignored when disabled",
			mutate:  func(c *TickerConfig) { c.Metrics.Port = 70000 },
			wantErr: "",
		},
		{
			name: "metrics path without slash",
			mutate: func(c *TickerConfig) {
				c.Metrics.Enabled = true
				c.Metrics.Path = "metrics"
			},
			wantErr: `metrics.path must start with /, got "metrics"`,
		},
		{
			name:    "unknown log level",
			mutate:  func(c *TickerConfig) { c.Log.Level = "trace" },
			wantErr: `log.level must be one of debug, info, warn, error, got "trace"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() unexpected error: %v", err)
				}
			} else {
				if err == nil {
					t.Errorf("Validate() expected error %q, got nil", tt.wantErr)
				} else if err.Error() != tt.wantErr {
					t.Errorf("Validate() error = %q, want %q", err.Error(), tt.wantErr)
				}
			}
		})
	}
}

func writeTempFile(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return path
}
