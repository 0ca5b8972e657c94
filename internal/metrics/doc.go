// Package metrics provides Prometheus metrics for monitoring the ticker.
//
// Key metrics:
//   - Fetch outcomes by kind (ok, timeout, http_error, ...)
//   - Last accepted price per asset/currency
//   - Fetch latency and last success timestamp
//
// Metrics are registered on a private registry and served by Server only when
// metrics.enabled is set.
package metrics
