package utils

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var currencyPrinter = message.NewPrinter(language.English)

// FormatCurrency formata valores em unidade principal como "$1,234.56"; arredonda só aqui, na apresentação
func FormatCurrency(value float64) string {
	rounded := decimal.NewFromFloat(value).Round(2)

	sign := ""
	if rounded.IsNegative() {
		sign = "-"
		rounded = rounded.Abs()
	}

	amount, _ := rounded.Float64()
	return sign + currencyPrinter.Sprintf("$%.2f", amount)
}
