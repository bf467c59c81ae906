package output

import "github.com/shopspring/decimal"

// FormatApprox renders an approximate parse result as plain decimal text,
// never exponent notation.
// Kept here so it can be reused by multiple formatters and unit tested in isolation.
func FormatApprox(f float64) string { return decimal.NewFromFloat(f).String() }
