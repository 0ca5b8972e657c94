// Package config handles YAML configuration loading with environment variable substitution.
//
// Every field is optional. Running without a config file is equivalent to loading an
// empty document: defaults poll the CoinGecko simple price endpoint for bitcoin/usd
// every two minutes with a 10s request timeout.
//
// Configuration files support ${VAR} syntax for environment variable interpolation,
// which is the intended way to provide api.api_key.
package config
