// Package currency provides fixed-rate conversion and localized price
// formatting. Rates are demo-grade constants; the EUR→USD rate is the single
// authoritative value used to normalize extracted price ceilings.
package currency

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// DefaultEURToUSD is the fallback exchange rate when none is configured.
const DefaultEURToUSD = 1.09

// USD is the reference currency all price filters are normalized into.
const USD = "USD"

// EUR is the secondary display currency.
const EUR = "EUR"

// Converter converts between the two supported currencies using fixed rates.
type Converter struct {
	eurToUSD float64
}

// NewConverter creates a converter with the given EUR→USD rate.
// A non-positive rate falls back to DefaultEURToUSD.
func NewConverter(eurToUSD float64) *Converter {
	if eurToUSD <= 0 {
		eurToUSD = DefaultEURToUSD
	}
	return &Converter{eurToUSD: eurToUSD}
}

// EURToUSD converts a Euro amount into the reference currency.
func (c *Converter) EURToUSD(amount float64) float64 {
	return amount * c.eurToUSD
}

// Convert converts an amount between supported currency codes.
// Unknown codes are treated as the reference currency.
func (c *Converter) Convert(amount float64, from, to string) float64 {
	if normalizeCode(from) == normalizeCode(to) {
		return amount
	}
	if normalizeCode(from) == EUR {
		return c.EURToUSD(amount)
	}
	return amount / c.eurToUSD
}

func normalizeCode(code string) string {
	if code == EUR {
		return EUR
	}
	return USD
}

var printers = map[string]*message.Printer{
	"en": message.NewPrinter(language.English),
	"sq": message.NewPrinter(language.Albanian),
}

func symbol(code string) string {
	if normalizeCode(code) == EUR {
		return "€"
	}
	return "$"
}

// Format renders an amount as a localized currency string with no fraction
// digits, e.g. "$245,000" for language "en".
func Format(amount float64, code, lang string) string {
	p, ok := printers[lang]
	if !ok {
		p = printers["en"]
	}
	return symbol(code) + p.Sprint(number.Decimal(math.Round(amount), number.MaxFractionDigits(0)))
}
