// Package cldr enumerates region currencies from the CLDR tables bundled with golang.org/x/text.
package cldr

import (
	"slices"
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"faas_backend/internal/feature/currencysymbol/domain/entity"
	"faas_backend/internal/feature/currencysymbol/usecase"
)

// Regions is a RegionSource backed by the bundled CLDR supplemental data.
// It does not depend on the locale database of the host OS.
type Regions struct{}

var _ usecase.RegionSource = (*Regions)(nil)

// NewRegions returns a CLDR backed region source.
func NewRegions() *Regions {
	return &Regions{}
}

// Regions returns one record per region that currently uses a legal-tender
// currency. Records of issuing regions (US for USD, ZA for ZAR) come first,
// then the rest; each group is ordered by region code. Regions for which no
// locale can be composed are skipped.
func (Regions) Regions() []entity.RegionCurrency {
	var issuers, others []entity.RegionCurrency
	it := currency.Query()
	for it.Next() {
		rc, ok := regionCurrency(it.Region(), it.Unit())
		if !ok {
			continue
		}
		if isIssuer(rc) {
			issuers = append(issuers, rc)
		} else {
			others = append(others, rc)
		}
	}
	byRegion := func(a, b entity.RegionCurrency) int { return strings.Compare(a.Region, b.Region) }
	slices.SortStableFunc(issuers, byRegion)
	slices.SortStableFunc(others, byRegion)
	return append(issuers, others...)
}

// isIssuer reports whether the record's region issues its currency.
// National ISO 4217 codes start with the issuing region's ISO 3166 code.
func isIssuer(rc entity.RegionCurrency) bool {
	return len(rc.Code) == 3 && rc.Code[:2] == rc.Region
}

// regionCurrency builds the record for a single region. It reports false when
// the region is not a country or has no likely spoken language.
func regionCurrency(region language.Region, unit currency.Unit) (entity.RegionCurrency, bool) {
	tag, ok := regionLocale(region)
	if !ok {
		return entity.RegionCurrency{}, false
	}
	return entity.RegionCurrency{
		Region: region.String(),
		Locale: tag.String(),
		Code:   unit.String(),
		Symbol: message.NewPrinter(tag).Sprint(currency.Symbol(unit)),
	}, true
}

// regionLocale composes the most likely locale for a region, e.g. CO -> es-CO.
func regionLocale(region language.Region) (language.Tag, bool) {
	if !region.IsCountry() {
		return language.Und, false
	}
	und, err := language.Compose(region)
	if err != nil {
		return language.Und, false
	}
	base, conf := und.Base()
	if conf == language.No {
		return language.Und, false
	}
	tag, err := language.Compose(base, region)
	if err != nil {
		return language.Und, false
	}
	return tag, true
}
