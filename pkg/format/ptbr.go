// Package format renders monetary values and dates the way the shop's
// screens show them: Brazilian grouping/decimal conventions with a fixed
// R$ symbol, and day/month/year dates. Stored representations stay
// machine-sortable; these helpers are display-only.
package format

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.BrazilianPortuguese)

// Currency formats v as Brazilian Reais, e.g. 1234.5 -> "R$ 1.234,50".
func Currency(v float64) string {
	return printer.Sprintf("R$ %v", number.Decimal(v,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
}

// Date formats t as dd/mm/yyyy.
func Date(t time.Time) string {
	return t.Format("02/01/2006")
}
