package models

import (
	"github.com/shopspring/decimal"
)

// All core arithmetic is carried out on int64 minor units (cents). Decimals
// exist only at the presentation boundary; they never feed back into the
// ledger.

// currencyExponent maps ISO-4217 codes onto their minor-unit exponent.
// Unlisted currencies default to 2.
var currencyExponent = map[string]int32{
	"KES": 2,
	"IDR": 2,
	"USD": 2,
	"EUR": 2,
	"TZS": 2,
	"JPY": 0,
	"UGX": 0,
	"RWF": 0,
}

func CurrencyExponent(currency string) int32 {
	if exp, ok := currencyExponent[currency]; ok {
		return exp
	}
	return 2
}

// MinorToDecimal renders a minor-unit amount in major units for reports and
// API responses.
func MinorToDecimal(amountMinor int64, currency string) decimal.Decimal {
	return decimal.New(amountMinor, -CurrencyExponent(currency))
}

// AbsMinor returns the absolute value of a minor-unit amount.
func AbsMinor(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
