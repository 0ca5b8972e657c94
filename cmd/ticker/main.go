package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/rickgao/btc-ticker/internal/api"
	"github.com/rickgao/btc-ticker/internal/config"
	"github.com/rickgao/btc-ticker/internal/fetcher"
	"github.com/rickgao/btc-ticker/internal/metrics"
	"github.com/rickgao/btc-ticker/internal/poller"
	"github.com/rickgao/btc-ticker/internal/report"
	"github.com/rickgao/btc-ticker/internal/version"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run wires the ticker and blocks until ctx is cancelled. It returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("ticker", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "path to YAML config file (optional)")
	once := fs.Bool("once", false, "fetch a single price and exit")
	logLevel := fs.String("log-level", "", "override log.level (debug, info, warn, error)")
	showVersion := fs.Bool("version", false, "print version and exit")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *showVersion {
		fmt.Fprintln(stdout, version.String())
		return 0
	}

	cfg, err := config.LoadWithDefaults(*configPath)
	if err == nil {
		if *logLevel != "" {
			cfg.Log.Level = *logLevel
		}
		if verr := cfg.Validate(); verr != nil {
			err = fmt.Errorf("validate config: %w", verr)
		}
	}
	if err != nil {
		fmt.Fprintf(stderr, "failed to load config: %v\n", err)
		return 1
	}

	// Set up structured logging
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
		Level: parseLevel(cfg.Log.Level),
	}))
	slog.SetDefault(logger)

	logger.Info("starting ticker",
		"version", version.Version,
		"commit", version.Commit,
		"asset", cfg.Quote.Asset,
		"currency", cfg.Quote.Currency,
		"interval", cfg.Poller.Interval,
	)

	apiClient := api.NewClient(
		cfg.API.BaseURL,
		cfg.API.APIKey,
		api.WithLogger(logger),
		api.WithTimeout(cfg.API.Timeout),
		api.WithUserAgent(cfg.API.UserAgent),
	)

	f := fetcher.New(fetcher.Config{
		Asset:    cfg.Quote.Asset,
		Currency: cfg.Quote.Currency,
		Timeout:  cfg.API.Timeout,
		MaxPrice: cfg.Quote.MaxPrice,
	}, apiClient, logger)

	console := report.NewConsole(stdout, stderr, logger)

	collector := metrics.NewCollector()
	collector.SetBuildInfo(version.Version, version.Commit)

	p := poller.New(poller.Config{
		Interval: cfg.Poller.Interval,
		Once:     *once,
	}, f, console, collector, logger)

	// runCtx ends when the poller returns, so the metrics server follows it down in once mode.
	runCtx, stopRun := context.WithCancel(ctx)
	defer stopRun()

	g, gctx := errgroup.WithContext(runCtx)
	g.Go(func() error {
		defer stopRun()
		return p.Run(gctx)
	})
	if cfg.Metrics.Enabled {
		srv := metrics.NewServer(fmt.Sprintf(":%d", cfg.Metrics.Port), cfg.Metrics.Path, collector, logger)
		g.Go(func() error {
			return srv.Run(gctx)
		})
	}

	if err := g.Wait(); err != nil {
		logger.Error("ticker stopped with error", "error", err)
		return 1
	}

	if ctx.Err() != nil {
		console.Notice("Stopped by user")
	}
	logger.Info("ticker stopped")
	return 0
}

func parseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return level
}
