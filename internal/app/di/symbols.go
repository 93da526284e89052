package di

import (
	"log/slog"
	"time"

	"faas_backend/internal/feature/currencysymbol/adapters/cldr"
	"faas_backend/internal/feature/currencysymbol/usecase"
)

// NewSymbolIndex builds the currency symbol index from the bundled CLDR data.
// It is called once at start-up; the result is read-only.
func NewSymbolIndex() *usecase.SymbolIndex {
	start := time.Now()
	idx := usecase.BuildSymbolIndex(cldr.NewRegions())
	slog.Info("currency symbol index built", "codes", idx.Len(), "elapsed", time.Since(start))
	return idx
}
