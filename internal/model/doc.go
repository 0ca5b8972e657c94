// Package model defines the value types shared by the fetcher, poller and reporter.
//
// Conventions:
//   - Asset ids and currency codes use the lower-case CoinGecko spelling ("bitcoin", "usd")
//   - Prices are float64 as decoded from the API; rounding happens only on display
package model
