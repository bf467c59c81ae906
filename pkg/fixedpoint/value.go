// Package fixedpoint provides an exact decimal value type for amounts that
// must survive round-tripping without floating-point error. A Value is a sign,
// an arbitrary-precision unscaled integer, and a scale counting decimal digits;
// trailing fractional zeros are kept exactly as supplied at construction.
package fixedpoint

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

// Value represents an exact decimal number with arbitrary precision
type Value struct {
	decimal.Decimal
}

// FromParts creates a Value from a sign flag and raw digit strings.
// intDigits and fracDigits must contain only characters 0-9; fracDigits may be
// empty, and its length becomes the scale. Leading zeros on the integer part
// are normalized away, trailing zeros on the fractional part are preserved.
func FromParts(neg bool, intDigits, fracDigits string) (Value, error) {
	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	if intDigits == "" {
		b.WriteByte('0')
	} else {
		b.WriteString(intDigits)
	}
	if fracDigits != "" {
		b.WriteByte('.')
		b.WriteString(fracDigits)
	}
	d, err := decimal.NewFromString(b.String())
	if err != nil {
		return Value{}, fmt.Errorf("invalid digit string %q: %w", b.String(), err)
	}
	return Value{d}, nil
}

// FromString creates a Value from a canonical decimal string like "-1234.50"
func FromString(s string) (Value, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Value{}, err
	}
	return Value{d}, nil
}

// FromFloat creates a Value from a float64 using its shortest decimal form
func FromFloat(f float64) Value {
	return Value{decimal.NewFromFloat(f)}
}

// Sign returns -1 for negative values and +1 otherwise (zero is positive)
func (v Value) Sign() int {
	if v.Decimal.Sign() < 0 {
		return -1
	}
	return 1
}

// Scale returns the number of decimal digits (never negative)
func (v Value) Scale() int {
	if e := v.Exponent(); e < 0 {
		return int(-e)
	}
	return 0
}

// Unscaled returns the non-negative unscaled integer as a fresh big.Int
func (v Value) Unscaled() *big.Int {
	return new(big.Int).Abs(v.Coefficient())
}

// UnscaledString returns the unscaled integer's decimal digit text
func (v Value) UnscaledString() string {
	return v.Unscaled().String()
}

// Float64 returns the nearest float64 approximation. Precision may be lost for
// magnitudes beyond what a double can represent; the result stays finite for
// any value built from realistic digit counts.
func (v Value) Float64() float64 {
	f, _ := v.Decimal.Float64()
	return f
}

// String renders the canonical decimal form: sign, integer part, and a "."
// followed by exactly Scale() fractional digits when the scale is positive.
// decimal.Decimal's own String trims trailing fractional zeros, so render at
// the constructed scale to keep them.
func (v Value) String() string {
	return v.StringFixed(int32(v.Scale()))
}
