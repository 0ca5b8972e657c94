package config

import "time"

// TickerConfig is the root configuration for the ticker.
type TickerConfig struct {
	API     APIConfig     `yaml:"api"`
	Quote   QuoteConfig   `yaml:"quote"`
	Poller  PollerConfig  `yaml:"poller"`
	Metrics MetricsConfig `yaml:"metrics"`
	Log     LogConfig     `yaml:"log"`
}

// APIConfig describes the price-quote endpoint.
type APIConfig struct {
	BaseURL   string        `yaml:"base_url"`
	APIKey    string        `yaml:"api_key"` // optional, sent as x-cg-pro-api-key
	UserAgent string        `yaml:"user_agent"`
	Timeout   time.Duration `yaml:"timeout"`
}

// QuoteConfig selects what is quoted and the plausibility bound applied to it.
type QuoteConfig struct {
	Asset    string  `yaml:"asset"`
	Currency string  `yaml:"currency"`
	MaxPrice float64 `yaml:"max_price"`
}

// PollerConfig controls the polling loop.
type PollerConfig struct {
	Interval time.Duration `yaml:"interval"`
}

// MetricsConfig controls the optional Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Port    int    `yaml:"port"`
	Path    string `yaml:"path"`
}

// LogConfig controls the slog handler.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}
