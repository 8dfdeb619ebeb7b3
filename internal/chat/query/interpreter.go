// Package query turns free-text chat input into a structured listings filter.
// Matching is bilingual (English/Albanian) and keyword tables are data-driven
// so new languages and cities stay additive.
package query

import (
	"regexp"
	"strconv"
	"strings"

	"bluepeak_backend/internal/listings/repository"
	"bluepeak_backend/internal/listings/service"
	"bluepeak_backend/platform/currency"
	"bluepeak_backend/platform/textnorm"
)

// typeKeywords maps folded surface forms to canonical property types.
// Entries are evaluated in order and later matches overwrite earlier ones,
// so the last matching keyword wins.
var typeKeywords = []struct {
	keyword string
	ptype   repository.PropertyType
}{
	{"apartment", repository.TypeApartment},
	{"apartament", repository.TypeApartment},
	{"apart", repository.TypeApartment},
	{"villa", repository.TypeVilla},
	{"penthouse", repository.TypePenthouse},
	{"townhouse", repository.TypeTownhouse},
	{"town", repository.TypeTownhouse},
}

// cityAliases maps folded surface forms (diacritic variants included) to
// canonical city names. The first matching alias wins; order is the
// tie-break.
var cityAliases = []struct {
	alias     string
	canonical string
}{
	{"prishtina", "prishtina"},
	{"prishtine", "prishtina"},
	{"prizren", "prizren"},
	{"tirana", "tirana"},
	{"tirane", "tirana"},
	{"durres", "durres"},
	{"vlore", "vlore"},
	{"vlora", "vlore"},
	{"gjakove", "gjakove"},
	{"gjakov", "gjakove"},
	{"gjakova", "gjakove"},
	{"new york", "new york"},
	{"miami", "miami"},
	{"chicago", "chicago"},
	{"boston", "boston"},
	{"seattle", "seattle"},
	{"austin", "austin"},
	{"beverly hills", "beverly hills"},
	{"san diego", "san diego"},
	{"soho", "soho"},
}

var (
	bedroomsRe = regexp.MustCompile(`(\d+)\s*(bed|beds|bedroom|bedrooms|dhoma)`)
	euroRe     = regexp.MustCompile(`€\s?([0-9][\d.,k]+)`)
	dollarRe   = regexp.MustCompile(`\$\s?([0-9][\d.,k]+)`)
)

// Interpreter parses chat queries into shortlist filters.
type Interpreter struct {
	conv *currency.Converter
}

// NewInterpreter creates an interpreter using the given exchange-rate
// converter for Euro price ceilings.
func NewInterpreter(conv *currency.Converter) *Interpreter {
	return &Interpreter{conv: conv}
}

// Parse derives a filter set from free text. Unrecognized text contributes no
// constraint; an empty or unparseable query yields the all-absent filter.
func (in *Interpreter) Parse(text string) service.ShortlistFilters {
	q := textnorm.Fold(text)

	var filters service.ShortlistFilters

	for _, t := range typeKeywords {
		if strings.Contains(q, t.keyword) {
			filters.Type = t.ptype
		}
	}

	if m := bedroomsRe.FindStringSubmatch(q); m != nil {
		if beds, err := strconv.Atoi(m[1]); err == nil {
			filters.MinBedrooms = beds
		}
	}

	for _, c := range cityAliases {
		if strings.Contains(q, c.alias) {
			filters.City = c.canonical
			break
		}
	}

	// Euro match takes priority over Dollar when both could apply.
	if m := euroRe.FindStringSubmatch(q); m != nil {
		if eur, ok := parseAmount(m[1]); ok {
			filters.MaxPriceUSD = in.conv.EURToUSD(eur)
		}
	} else if m := dollarRe.FindStringSubmatch(q); m != nil {
		if usd, ok := parseAmount(m[1]); ok {
			filters.MaxPriceUSD = usd
		}
	}

	return filters
}

// parseAmount parses a price token. Thousands separators (comma, period) and
// spaces are stripped; a trailing "k" multiplies by 1000. Malformed tokens
// report ok=false rather than failing the whole query.
func parseAmount(raw string) (float64, bool) {
	cleaned := strings.ToLower(strings.TrimSpace(raw))
	cleaned = strings.NewReplacer(" ", "", ",", "", ".", "").Replace(cleaned)
	if cleaned == "" {
		return 0, false
	}

	multiplier := 1.0
	if strings.HasSuffix(cleaned, "k") {
		cleaned = strings.TrimSuffix(cleaned, "k")
		multiplier = 1000
	}

	n, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	return n * multiplier, true
}
