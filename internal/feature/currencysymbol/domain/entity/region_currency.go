// Package entity defines the domain models for the currencysymbol feature.
package entity

// RegionCurrency is one region's view of its legal-tender currency.
// Records only live while a symbol index is being built.
type RegionCurrency struct {
	Region string // ISO 3166 region code (e.g., "CO")
	Locale string // BCP 47 locale used to render the symbol (e.g., "es-CO")
	Code   string // ISO 4217 currency code (e.g., "COP")
	Symbol string // Display symbol in the region's locale (e.g., "$")
}
