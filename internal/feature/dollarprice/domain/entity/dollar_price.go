package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DollarPrice is the price of one US dollar in the requested currency.
type DollarPrice struct {
	TimeStamp      time.Time       // Quote time in UTC
	Currency       string          // Pair key the price came from (e.g., "USDEUR")
	CurrencySymbol string          // Display symbol of the requested currency, "" if unknown
	Price          decimal.Decimal // Units of the requested currency per US dollar
}
