package poller

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/rickgao/btc-ticker/internal/model"
)

// PriceFetcher fetches one price per call.
type PriceFetcher interface {
	FetchPrice(ctx context.Context) (model.Price, error)
}

// Reporter surfaces fetch outcomes.
type Reporter interface {
	ReportPrice(p model.Price)
	ReportFailure(err error)
}

// Observer receives every fetch outcome along with its duration.
type Observer interface {
	ObserveFetch(p model.Price, err error, d time.Duration)
}

// ObserverFunc is a function adapter for Observer.
type ObserverFunc func(model.Price, error, time.Duration)

func (f ObserverFunc) ObserveFetch(p model.Price, err error, d time.Duration) {
	f(p, err, d)
}

// Config holds poller configuration.
type Config struct {
	Interval time.Duration // Delay between iterations (default: 120s)
	Once     bool          // Run a single iteration and return
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		Interval: 120 * time.Second,
	}
}

// Poller drives a PriceFetcher on a fixed interval.
type Poller struct {
	cfg      Config
	fetcher  PriceFetcher
	reporter Reporter
	observer Observer
	logger   *slog.Logger
}

// New creates a new Poller. observer may be nil.
func New(cfg Config, fetcher PriceFetcher, reporter Reporter, observer Observer, logger *slog.Logger) *Poller {
	if logger == nil {
		logger = slog.Default()
	}
	return &Poller{
		cfg:      cfg,
		fetcher:  fetcher,
		reporter: reporter,
		observer: observer,
		logger:   logger,
	}
}

// Run polls until ctx is cancelled. Cancellation is a clean stop and returns nil.
func (p *Poller) Run(ctx context.Context) error {
	if p.cfg.Interval <= 0 && !p.cfg.Once {
		return errors.New("poller: interval must be positive")
	}

	p.logger.Info("price poller started", "interval", p.cfg.Interval, "once", p.cfg.Once)

	var polls int
	for ctx.Err() == nil {
		p.poll(ctx)
		polls++

		if p.cfg.Once || !p.wait(ctx) {
			break
		}
	}

	p.logger.Info("price poller stopped", "polls", polls)
	return nil
}

// poll performs one fetch and reports its outcome.
func (p *Poller) poll(ctx context.Context) {
	start := time.Now()
	price, err := p.fetcher.FetchPrice(ctx)
	elapsed := time.Since(start)

	// A request cut short by shutdown is not a fetch failure.
	if err != nil && ctx.Err() != nil {
		p.logger.Debug("poll interrupted", "err", err)
		return
	}

	if p.observer != nil {
		p.observer.ObserveFetch(price, err, elapsed)
	}

	if err != nil {
		p.reporter.ReportFailure(err)
		return
	}
	p.reporter.ReportPrice(price)
}

// wait sleeps for the interval. It returns false if ctx was cancelled first.
func (p *Poller) wait(ctx context.Context) bool {
	timer := time.NewTimer(p.cfg.Interval)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
