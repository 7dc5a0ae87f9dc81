package utils

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// FormatBRL renders an amount the way the app displays money, e.g. "R$ 1.234,56" or "-R$ 10,00".
func FormatBRL(amount decimal.Decimal) string {
	rounded := amount.Round(2)
	p := message.NewPrinter(language.BrazilianPortuguese)
	formatted := "R$ " + p.Sprint(number.Decimal(rounded.Abs().InexactFloat64(), number.Scale(2)))
	if rounded.IsNegative() {
		return "-" + formatted
	}
	return formatted
}
