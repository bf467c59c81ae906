// Package idr implements Indonesian-style numeric formatting and parsing:
// "." groups thousands and "," marks the decimal point. Format produces the
// canonical display text for free-form input, and Parse/ParseExact read such
// text back into a float64 or an exact fixedpoint.Value. All operations are
// pure functions with no shared state, so concurrent use needs no coordination.
package idr

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/netng/idr-formatting/pkg/fixedpoint"
)

// FormatOptions control how Format treats decimal digits.
type FormatOptions struct {
	// Decimals forces the output to exactly this many decimal digits via
	// round-half-up and zero padding. Nil (the default) preserves the
	// decimals as typed. A negative count behaves like nil.
	Decimals *int

	// PadZeros pads a present decimal part with trailing zeros up to two
	// digits. Only consulted when Decimals is nil; an input without a
	// decimal part is never padded.
	PadZeros bool
}

// FixedDecimals is a convenience for populating FormatOptions.Decimals.
func FixedDecimals(n int) *int {
	return &n
}

// Format renders a value as Indonesian-style display text. The value may be
// nil or an empty string (both yield ""), free-form text, any Go numeric
// kind, or a fixedpoint.Value. Text that cleans down to nothing renders as
// "0": formatting is display-oriented and never fails.
func Format(value any, opts *FormatOptions) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		if strings.TrimSpace(v) == "" {
			return ""
		}
		return formatText(v, opts)
	case fixedpoint.Value:
		return formatText(commaDecimal(v.String()), opts)
	case float64:
		return formatText(commaDecimal(strconv.FormatFloat(v, 'f', -1, 64)), opts)
	case float32:
		return formatText(commaDecimal(strconv.FormatFloat(float64(v), 'f', -1, 32)), opts)
	case int:
		return formatText(strconv.FormatInt(int64(v), 10), opts)
	case int8:
		return formatText(strconv.FormatInt(int64(v), 10), opts)
	case int16:
		return formatText(strconv.FormatInt(int64(v), 10), opts)
	case int32:
		return formatText(strconv.FormatInt(int64(v), 10), opts)
	case int64:
		return formatText(strconv.FormatInt(v, 10), opts)
	case uint:
		return formatText(strconv.FormatUint(uint64(v), 10), opts)
	case uint8:
		return formatText(strconv.FormatUint(uint64(v), 10), opts)
	case uint16:
		return formatText(strconv.FormatUint(uint64(v), 10), opts)
	case uint32:
		return formatText(strconv.FormatUint(uint64(v), 10), opts)
	case uint64:
		return formatText(strconv.FormatUint(v, 10), opts)
	default:
		return ""
	}
}

// commaDecimal rewrites a plain decimal string's "." to ",". Values we
// rendered ourselves have an unambiguous decimal dot, and presenting it as a
// comma keeps the thousands-grouping heuristic from misreading strings like
// "1.234" (one point two three four) as a grouped integer.
func commaDecimal(s string) string {
	return strings.Replace(s, ".", ",", 1)
}

// formatText runs the string-formatting path: minus detection, cleaning,
// separator classification, decimals policy, grouping, minus reattachment.
func formatText(raw string, opts *FormatOptions) string {
	neg, rest := splitMinus(raw)
	p := classifyDisplay(keepNumeric(rest))
	if p.intDigits == "" {
		p.intDigits = "0"
	}

	var out string
	if opts != nil && opts.Decimals != nil && *opts.Decimals >= 0 {
		out = renderFixed(p, *opts.Decimals)
	} else {
		pad := opts != nil && opts.PadZeros
		out = renderPreserved(p, pad)
	}
	if neg {
		out = "-" + out
	}
	return out
}

// renderPreserved emits the digits exactly as typed, optionally padding a
// present decimal part to two digits.
func renderPreserved(p parts, padZeros bool) string {
	out := group(p.intDigits)
	if !p.hasFrac {
		return out
	}
	frac := p.fracDigits
	if padZeros {
		for len(frac) < 2 {
			frac += "0"
		}
	}
	return out + "," + frac
}

// renderFixed rounds the magnitude to exactly n decimal digits using
// round-half-up, letting the decimal library carry through the full integer
// part ("999,99" at 1 decimal becomes "1.000,0").
func renderFixed(p parts, n int) string {
	s := p.intDigits
	if p.fracDigits != "" {
		s += "." + p.fracDigits
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		// unreachable: s is built from sanitized digits
		return group(p.intDigits)
	}
	// The magnitude is non-negative here, so half-away-from-zero rounding
	// is exactly round-half-up.
	fixed := d.Round(int32(n)).StringFixed(int32(n))
	intPart, fracPart, hasDot := strings.Cut(fixed, ".")
	if !hasDot {
		return group(intPart)
	}
	return group(intPart) + "," + fracPart
}

// group inserts "." thousands separators into an integer digit string, three
// digits per group from the right.
func group(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}
	var b strings.Builder
	b.Grow(n + (n-1)/3)
	for i := 0; i < n; i++ {
		if i > 0 && (n-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteByte(digits[i])
	}
	return b.String()
}
