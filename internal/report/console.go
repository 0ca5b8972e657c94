// Package report surfaces fetch outcomes to the user.
package report

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/rickgao/btc-ticker/internal/fetcher"
	"github.com/rickgao/btc-ticker/internal/model"
)

// Console prints prices to out and diagnostics to errOut.
type Console struct {
	out    io.Writer
	errOut io.Writer
	logger *slog.Logger

	mu sync.Mutex
}

// NewConsole creates a Console reporter.
func NewConsole(out, errOut io.Writer, logger *slog.Logger) *Console {
	if logger == nil {
		logger = slog.Default()
	}
	return &Console{out: out, errOut: errOut, logger: logger}
}

// ReportPrice prints "Current price: $65000.50 USD".
func (c *Console) ReportPrice(p model.Price) {
	c.mu.Lock()
	defer c.mu.Unlock()

	fmt.Fprintf(c.out, "Current price: %s\n", p)
	c.logger.Debug("price reported", "asset", p.Asset, "currency", p.Currency, "value", p.Value)
}

// ReportFailure prints a one-line diagnostic for a failed fetch.
func (c *Console) ReportFailure(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	fmt.Fprintf(c.errOut, "Error: %v\n", err)

	attrs := []any{"kind", fetcher.KindOf(err).String(), "err", err}
	var fe *fetcher.Error
	if errors.As(err, &fe) && fe.Kind == fetcher.KindHTTP {
		attrs = append(attrs, "status", fe.Status)
	}
	c.logger.Debug("price fetch failed", attrs...)
}

// Notice prints an informational line, such as the shutdown message.
func (c *Console) Notice(msg string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	fmt.Fprintln(c.out, msg)
}
