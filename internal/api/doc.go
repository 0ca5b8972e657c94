// Package api provides a minimal client for the CoinGecko REST API.
//
// REST endpoints:
//   - Public: https://api.coingecko.com/api/v3
//   - Pro: https://pro-api.coingecko.com/api/v3
//
// Only /simple/price is used. Requests are made exactly once; callers own any
// retry or scheduling policy.
package api
