package model

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Price is the validated value of one unit of Asset expressed in Currency.
type Price struct {
	Asset     string    // CoinGecko asset id (e.g., "bitcoin")
	Currency  string    // vs_currency code (e.g., "usd")
	Value     float64   // Always > 0 once returned by the fetcher
	FetchedAt time.Time // When the quote was received
}

var currencySymbols = map[string]string{
	"usd": "$",
	"eur": "€",
	"gbp": "£",
	"jpy": "¥",
}

// CurrencySymbol returns the display symbol for a currency code, or "" if unknown.
func CurrencySymbol(currency string) string {
	return currencySymbols[strings.ToLower(currency)]
}

// Format renders the value with exactly two decimals, rounding half away from zero.
func (p Price) Format() string {
	return decimal.NewFromFloat(p.Value).StringFixed(2)
}

// String renders the price as "$42123.46 USD".
func (p Price) String() string {
	return CurrencySymbol(p.Currency) + p.Format() + " " + strings.ToUpper(p.Currency)
}
