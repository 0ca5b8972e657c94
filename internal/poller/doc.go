// Package poller implements the price polling loop.
//
// The poller:
//   - Fetches one price per iteration, strictly sequentially
//   - Reports every outcome, success or failure, and keeps going
//   - Waits a fixed interval after each iteration regardless of outcome
//   - Stops only when its context is cancelled (or after one pass in once mode)
package poller
