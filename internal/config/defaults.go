package config

import (
	"strings"
	"time"
)

// Default values for optional configuration fields.
const (
	DefaultBaseURL      = "https://api.coingecko.com/api/v3"
	DefaultUserAgent    = "btc-ticker"
	DefaultAPITimeout   = 10 * time.Second
	DefaultAsset        = "bitcoin"
	DefaultCurrency     = "usd"
	DefaultMaxPrice     = 1_000_000
	DefaultPollInterval = 120 * time.Second
	DefaultMetricsPort  = 9108
	DefaultMetricsPath  = "/metrics"
	DefaultLogLevel     = "info"
)

// Default returns a configuration with every default applied.
func Default() *TickerConfig {
	cfg := &TickerConfig{}
	cfg.applyDefaults()
	return cfg
}

func (c *TickerConfig) applyDefaults() {
	// API defaults
	if c.API.BaseURL == "" {
		c.API.BaseURL = DefaultBaseURL
	}
	c.API.BaseURL = strings.TrimRight(c.API.BaseURL, "/")
	c.API.APIKey = strings.TrimSpace(c.API.APIKey)
	if c.API.UserAgent == "" {
		c.API.UserAgent = DefaultUserAgent
	}
	if c.API.Timeout == 0 {
		c.API.Timeout = DefaultAPITimeout
	}

	// Quote defaults
	if c.Quote.Asset == "" {
		c.Quote.Asset = DefaultAsset
	}
	if c.Quote.Currency == "" {
		c.Quote.Currency = DefaultCurrency
	}
	c.Quote.Asset = strings.ToLower(strings.TrimSpace(c.Quote.Asset))
	c.Quote.Currency = strings.ToLower(strings.TrimSpace(c.Quote.Currency))
	if c.Quote.MaxPrice == 0 {
		c.Quote.MaxPrice = DefaultMaxPrice
	}

	// Poller defaults
	if c.Poller.Interval == 0 {
		c.Poller.Interval = DefaultPollInterval
	}

	// Metrics defaults
	if c.Metrics.Port == 0 {
		c.Metrics.Port = DefaultMetricsPort
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = DefaultMetricsPath
	}

	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
}
