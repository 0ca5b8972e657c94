package fetcher

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/rickgao/btc-ticker/internal/model"
)

// PriceClient performs the raw quote request.
type PriceClient interface {
	GetSimplePrice(ctx context.Context, asset, currency string) ([]byte, error)
}

// Config holds fetcher configuration.
type Config struct {
	Asset    string        // CoinGecko asset id (default: bitcoin)
	Currency string        // vs_currency code (default: usd)
	Timeout  time.Duration // Per-attempt bound (default: 10s)
	MaxPrice float64       // Values above this are rejected (default: 1,000,000)
}

// DefaultConfig returns the bitcoin/usd defaults.
func DefaultConfig() Config {
	return Config{
		Asset:    "bitcoin",
		Currency: "usd",
		Timeout:  10 * time.Second,
		MaxPrice: 1_000_000,
	}
}

// Fetcher retrieves and validates one price quote per call.
type Fetcher struct {
	cfg    Config
	client PriceClient
	logger *slog.Logger
	now    func() time.Time
}

// New creates a new Fetcher.
func New(cfg Config, client PriceClient, logger *slog.Logger) *Fetcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Fetcher{
		cfg:    cfg,
		client: client,
		logger: logger,
		now:    time.Now,
	}
}

// FetchPrice makes exactly one request and returns a validated price.
// Any returned error is a *Error.
func (f *Fetcher) FetchPrice(ctx context.Context) (model.Price, error) {
	attempt := uuid.NewString()
	logger := f.logger.With("attempt", attempt, "asset", f.cfg.Asset, "currency", f.cfg.Currency)

	start := time.Now()
	price, err := f.fetch(ctx)
	if err != nil {
		logger.Debug("fetch failed", "kind", KindOf(err), "duration", time.Since(start), "err", err)
		return model.Price{}, err
	}

	logger.Debug("fetch succeeded", "value", price.Value, "duration", time.Since(start))
	return price, nil
}

func (f *Fetcher) fetch(ctx context.Context) (model.Price, error) {
	if f.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.cfg.Timeout)
		defer cancel()
	}

	body, err := f.client.GetSimplePrice(ctx, f.cfg.Asset, f.cfg.Currency)
	if err != nil {
		return model.Price{}, classifyTransport(err, f.cfg.Timeout)
	}

	value, ferr := f.parse(body)
	if ferr != nil {
		return model.Price{}, ferr
	}

	return model.Price{
		Asset:     f.cfg.Asset,
		Currency:  f.cfg.Currency,
		Value:     value,
		FetchedAt: f.now(),
	}, nil
}

// parse extracts and validates body[asset][currency].
func (f *Fetcher) parse(body []byte) (float64, *Error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		return 0, &Error{Kind: KindMalformedResponse, Detail: err.Error(), Err: err}
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return 0, &Error{Kind: KindMalformedResponse, Detail: "trailing data after JSON value"}
	}

	top, ok := doc.(map[string]any)
	if !ok {
		return 0, &Error{Kind: KindMalformedResponse, Detail: fmt.Sprintf("top-level value is %s, want object", jsonType(doc))}
	}

	entry, ok := top[f.cfg.Asset]
	if !ok {
		return 0, &Error{Kind: KindMissingField, Field: f.cfg.Asset}
	}
	quotes, ok := entry.(map[string]any)
	if !ok {
		return 0, &Error{Kind: KindMalformedResponse, Detail: fmt.Sprintf("%q is %s, want object", f.cfg.Asset, jsonType(entry))}
	}

	raw, ok := quotes[f.cfg.Currency]
	if !ok {
		return 0, &Error{Kind: KindMissingField, Field: f.cfg.Currency}
	}
	num, ok := raw.(json.Number)
	if !ok {
		return 0, &Error{Kind: KindInvalidType, Detail: fmt.Sprintf("%s.%s is %s, want number", f.cfg.Asset, f.cfg.Currency, jsonType(raw))}
	}

	value, err := num.Float64()
	if err != nil {
		return 0, &Error{Kind: KindConversion, Detail: err.Error(), Err: err}
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, &Error{Kind: KindConversion, Detail: fmt.Sprintf("%s is not finite", num)}
	}

	if value <= 0 || value > f.cfg.MaxPrice {
		return 0, &Error{
			Kind:   KindImplausibleValue,
			Value:  value,
			Detail: fmt.Sprintf("%s outside (0, %v]", f.cfg.Currency, f.cfg.MaxPrice),
		}
	}

	return value, nil
}

func jsonType(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "a boolean"
	case string:
		return "a string"
	case json.Number:
		return "a number"
	case []any:
		return "an array"
	case map[string]any:
		return "an object"
	default:
		return fmt.Sprintf("%T", v)
	}
}
