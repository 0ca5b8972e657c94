package config

import (
	"errors"
	"fmt"
	"math"
	"net/url"
	"strings"
)

// Validate checks that all values are usable. It expects defaults to be applied.
func (c *TickerConfig) Validate() error {
	u, err := url.Parse(c.API.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("api.base_url must be an absolute http(s) URL, got %q", c.API.BaseURL)
	}
	if c.API.Timeout < 0 {
		return fmt.Errorf("api.timeout must be positive, got %s", c.API.Timeout)
	}

	if c.Quote.Asset == "" {
		return errors.New("quote.asset is required")
	}
	if strings.ContainsAny(c.Quote.Asset, ", ") {
		return fmt.Errorf("quote.asset must name a single asset, got %q", c.Quote.Asset)
	}
	if c.Quote.Currency == "" {
		return errors.New("quote.currency is required")
	}
	if strings.ContainsAny(c.Quote.Currency, ", ") {
		return fmt.Errorf("quote.currency must name a single currency, got %q", c.Quote.Currency)
	}
	if c.Quote.MaxPrice <= 0 || math.IsInf(c.Quote.MaxPrice, 0) || math.IsNaN(c.Quote.MaxPrice) {
		return fmt.Errorf("quote.max_price must be a positive finite number, got %v", c.Quote.MaxPrice)
	}

	if c.Poller.Interval < 0 {
		return fmt.Errorf("poller.interval must be positive, got %s", c.Poller.Interval)
	}

	if c.Metrics.Enabled {
		if c.Metrics.Port < 1 || c.Metrics.Port > 65535 {
			return fmt.Errorf("metrics.port must be between 1 and 65535, got %d", c.Metrics.Port)
		}
		if !strings.HasPrefix(c.Metrics.Path, "/") {
			return fmt.Errorf("metrics.path must start with /, got %q", c.Metrics.Path)
		}
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be one of debug, info, warn, error, got %q", c.Log.Level)
	}

	return nil
}
