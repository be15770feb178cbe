package insights

import (
	"math"
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// CurrencyFormatter renders amounts as display strings in a single fixed
// locale (en-US). Formatting is total: an empty, "N/A", or unrecognized
// currency code silently falls back to USD, and a non-finite amount renders
// as zero. It never returns an error.
type CurrencyFormatter struct {
	printer *message.Printer
}

func NewCurrencyFormatter() *CurrencyFormatter {
	return &CurrencyFormatter{printer: message.NewPrinter(language.AmericanEnglish)}
}

// Format renders the amount with the currency's natural fraction digits, as
// used by per-transaction list rows ("$6.45", "¥120").
func (f *CurrencyFormatter) Format(amount float64, code string) string {
	unit := resolveUnit(code)
	digits, _ := currency.Standard.Rounding(unit)
	return f.render(unit, amount, digits)
}

// FormatWhole renders the amount rounded to whole units, as used by summary
// and category displays ("$2,355").
func (f *CurrencyFormatter) FormatWhole(amount float64, code string) string {
	return f.render(resolveUnit(code), amount, 0)
}

func (f *CurrencyFormatter) render(unit currency.Unit, amount float64, digits int) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		amount = 0
	}
	sign := ""
	if math.Signbit(amount) {
		sign = "-"
		amount = -amount
	}
	sym := f.printer.Sprint(currency.Symbol(unit))
	num := f.printer.Sprint(number.Decimal(amount, number.Scale(digits)))
	return sign + sym + num
}

// resolveUnit maps a provider-supplied currency code to a concrete unit.
// The provider is instructed to emit ISO 4217 codes but is not guaranteed to;
// anything unrecognized resolves to USD.
func resolveUnit(code string) currency.Unit {
	code = strings.TrimSpace(code)
	if code == "" || code == "N/A" {
		return currency.USD
	}
	unit, err := currency.ParseISO(code)
	if err != nil {
		return currency.USD
	}
	return unit
}
