// Package entity defines the domain models for the dollarprice feature.
package entity

import "github.com/shopspring/decimal"

// RateQuote is a snapshot of live exchange rates returned by a rate provider.
type RateQuote struct {
	Success   bool                       // Provider reported success
	Timestamp int64                      // Unix seconds (UTC) at which the rates were taken
	Source    string                     // Source currency (always "USD" for this service)
	Quotes    map[string]decimal.Decimal // Pair key (e.g., "USDEUR") to rate
}
