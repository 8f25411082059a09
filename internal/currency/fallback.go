package currency

// fallbackRates are approximate units per USD for common travel currencies,
// served until a live fetch succeeds.
var fallbackRates = RateTable{
	"USD": 1.0,
	"EUR": 0.92,
	"GBP": 0.79,
	"JPY": 149.5,
	"CAD": 1.36,
	"AUD": 1.53,
	"CHF": 0.88,
	"CNY": 7.24,
	"INR": 83.1,
	"MXN": 17.1,
	"BRL": 4.97,
	"KRW": 1330.0,
	"SGD": 1.34,
	"HKD": 7.82,
	"NZD": 1.64,
	"THB": 35.8,
	"SEK": 10.5,
	"NOK": 10.7,
	"ZAR": 18.6,
	"AED": 3.67,
}

// FallbackRates returns a copy of the static table.
func FallbackRates() RateTable {
	return fallbackRates.Clone()
}
