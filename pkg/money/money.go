// Package money rounds and formats amounts for display.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// zeroDecimal lists currencies without minor units.
var zeroDecimal = map[string]bool{
	"JPY": true,
	"KRW": true,
	"VND": true,
	"IDR": true,
	"CLP": true,
	"ISK": true,
}

var symbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
	"INR": "₹",
	"KRW": "₩",
}

// Precision returns the number of minor-unit digits used when displaying code.
func Precision(code string) int32 {
	if zeroDecimal[strings.ToUpper(code)] {
		return 0
	}
	return 2
}

// Round rounds amount to the display precision of code.
func Round(amount float64, code string) float64 {
	f, _ := decimal.NewFromFloat(amount).Round(Precision(code)).Float64()
	return f
}

// Format renders amount with the display precision of code, e.g. "92.00 EUR".
func Format(amount float64, code string) string {
	code = strings.ToUpper(code)
	return decimal.NewFromFloat(amount).StringFixed(Precision(code)) + " " + code
}

// FormatSymbol renders amount with a currency symbol when one is known, e.g. "$45.00".
func FormatSymbol(amount float64, code string) string {
	code = strings.ToUpper(code)
	sym, ok := symbols[code]
	if !ok {
		return Format(amount, code)
	}
	return sym + decimal.NewFromFloat(amount).StringFixed(Precision(code))
}

// Sum adds amounts without accumulating float error.
func Sum(amounts ...float64) float64 {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(decimal.NewFromFloat(a))
	}
	f, _ := total.Float64()
	return f
}
