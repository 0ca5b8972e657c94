package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/rickgao/btc-ticker/internal/fetcher"
	"github.com/rickgao/btc-ticker/internal/model"
)

const namespace = "btc_ticker"

// OutcomeOK labels a successful fetch.
const OutcomeOK = "ok"

// Collector records fetch outcomes.
type Collector struct {
	registry *prometheus.Registry

	fetchTotal    *prometheus.CounterVec
	fetchDuration prometheus.Histogram
	price         *prometheus.GaugeVec
	lastSuccessTS prometheus.Gauge
	buildInfo     *prometheus.GaugeVec
}

// NewCollector creates a Collector with its own registry.
func NewCollector() *Collector {
	c := &Collector{registry: prometheus.NewRegistry()}

	c.fetchTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "fetch_total",
		Help:      "Price fetch attempts by outcome",
	}, []string{"outcome"})
	c.fetchDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "fetch_duration_seconds",
		Help:      "Time spent on a single price fetch",
		Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
	})
	c.price = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "price",
		Help:      "Last accepted price of one unit of the asset",
	}, []string{"asset", "currency"})
	c.lastSuccessTS = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "last_success_timestamp_seconds",
		Help:      "Unix timestamp of the last successful fetch",
	})
	c.buildInfo = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "build_info",
		Help:      "Build information, value is always 1",
	}, []string{"version", "commit"})

	c.registry.MustRegister(
		c.fetchTotal, c.fetchDuration, c.price, c.lastSuccessTS, c.buildInfo,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	// Pre-create every outcome so rates are defined from the first scrape.
	c.fetchTotal.WithLabelValues(OutcomeOK)
	for _, k := range fetcher.Kinds() {
		c.fetchTotal.WithLabelValues(k.String())
	}

	return c
}

// SetBuildInfo publishes the running version.
func (c *Collector) SetBuildInfo(version, commit string) {
	c.buildInfo.WithLabelValues(version, commit).Set(1)
}

// ObserveFetch records the outcome of one fetch. err == nil means price is valid.
func (c *Collector) ObserveFetch(price model.Price, err error, d time.Duration) {
	c.fetchDuration.Observe(d.Seconds())

	if err != nil {
		c.fetchTotal.WithLabelValues(fetcher.KindOf(err).String()).Inc()
		return
	}

	c.fetchTotal.WithLabelValues(OutcomeOK).Inc()
	c.price.WithLabelValues(price.Asset, price.Currency).Set(price.Value)
	c.lastSuccessTS.Set(float64(price.FetchedAt.Unix()))
}

// Handler returns the HTTP handler exposing the registry.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{Registry: c.registry})
}
