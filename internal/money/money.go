// Package money holds the decimal helpers used for every monetary amount in
// Patungan. Amounts are shopspring decimals; binary floats never touch a total.
package money

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultCurrency is used when a bill does not name its currency.
const DefaultCurrency = "IDR"

// ErrDivisionByZero is returned when an amount is split across zero parts.
var ErrDivisionByZero = errors.New("division by zero")

// minorUnits maps ISO-4217 codes to the number of decimal places of their
// minor unit. Codes missing from the table use two places.
var minorUnits = map[string]int32{
	"IDR": 0,
	"JPY": 0,
	"KRW": 0,
	"VND": 0,
	"USD": 2,
	"EUR": 2,
	"SGD": 2,
	"MYR": 2,
	"AUD": 2,
	"GBP": 2,
}

// NormalizeCurrency upper-cases a currency code, falling back to fallback
// (or DefaultCurrency) when code is blank.
func NormalizeCurrency(code, fallback string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code != "" {
		return code
	}
	fallback = strings.ToUpper(strings.TrimSpace(fallback))
	if fallback != "" {
		return fallback
	}
	return DefaultCurrency
}

// Places returns the number of minor-unit decimal places for a currency.
func Places(currency string) int32 {
	if p, ok := minorUnits[NormalizeCurrency(currency, "")]; ok {
		return p
	}
	return 2
}

// SplitEvenly divides total into n equal shares truncated to the given number
// of decimal places. The remainder is what is left after n shares have been
// taken, so share*n + remainder == total holds exactly.
func SplitEvenly(total decimal.Decimal, n int, places int32) (share, remainder decimal.Decimal, err error) {
	if n <= 0 {
		return decimal.Zero, decimal.Zero, ErrDivisionByZero
	}
	share, remainder = total.QuoRem(decimal.NewFromInt(int64(n)), places)
	return share, remainder, nil
}

// Sum adds up amounts.
func Sum(amounts ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(a)
	}
	return total
}

// Line returns unitPrice multiplied by a unit count.
func Line(unitPrice decimal.Decimal, units int) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(int64(units)))
}
