package currency

import (
	"errors"
	"fmt"
)

// Reference is the currency every salary is normalized to.
const Reference = "RUR"

var ErrUnknownCurrency = errors.New("unknown currency")

// Fixed conversion rates to the reference currency.
var rates = map[string]float64{
	"AZN": 35.68,
	"BYR": 23.91,
	"EUR": 59.90,
	"GEL": 21.74,
	"KGS": 0.76,
	"KZT": 0.13,
	"RUR": 1,
	"UAH": 1.64,
	"USD": 60.66,
	"UZS": 0.0055,
}

// Convert returns amount expressed in the reference currency.
func Convert(code string, amount float64) (float64, error) {
	rate, ok := rates[code]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownCurrency, code)
	}
	return amount * rate, nil
}

// Supported reports whether code has a conversion rate.
func Supported(code string) bool {
	_, ok := rates[code]
	return ok
}
