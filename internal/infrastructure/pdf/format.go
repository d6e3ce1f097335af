package pdf

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.Italian)

// FormatMoney importe con separadores italianos y dos decimales: 1.234,50.
func FormatMoney(d decimal.Decimal) string {
	return printer.Sprintf("%.2f", d.Round(2).InexactFloat64())
}

// FormatQuantity kg con separador de miles y hasta tres decimales.
func FormatQuantity(d decimal.Decimal) string {
	if d.Equal(d.Truncate(0)) {
		return printer.Sprintf("%d", d.IntPart())
	}
	return printer.Sprintf("%.3f", d.InexactFloat64())
}

// FormatUnitFee €/kg con cuatro decimales.
func FormatUnitFee(d decimal.Decimal) string {
	return printer.Sprintf("%.4f", d.InexactFloat64())
}
