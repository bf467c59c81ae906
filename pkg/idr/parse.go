package idr

import (
	"math"
	"strconv"

	"github.com/netng/idr-formatting/pkg/fixedpoint"
)

// Parse reads Indonesian-style text (or a numeric value) as a float64. The
// second return is false for absent, empty or unparseable input and for
// results that are not finite. On the parse path dots are always stripped as
// thousands noise and a comma, if present, is the decimal marker; magnitudes
// beyond double precision lose digits silently; use ParseExact when that
// matters.
func Parse(value any) (float64, bool) {
	switch v := value.(type) {
	case nil:
		return 0, false
	case string:
		return parseText(v)
	case fixedpoint.Value:
		return v.Float64(), true
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, false
		}
		return v, true
	case float32:
		return Parse(float64(v))
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	default:
		return 0, false
	}
}

// ParseExact reads Indonesian-style text (or a numeric value) as an exact
// fixedpoint.Value. The scale is the count of decimal digits as typed and the
// unscaled integer is arbitrary precision, so no digit is ever lost. The
// second return is false only for absent, empty or unparseable input.
func ParseExact(value any) (fixedpoint.Value, bool) {
	switch v := value.(type) {
	case nil:
		return fixedpoint.Value{}, false
	case string:
		return parseTextExact(v)
	case fixedpoint.Value:
		return v, true
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fixedpoint.Value{}, false
		}
		return fixedpoint.FromFloat(v), true
	case float32:
		return ParseExact(float64(v))
	case int:
		return exactFromInteger(strconv.FormatInt(int64(v), 10))
	case int8:
		return exactFromInteger(strconv.FormatInt(int64(v), 10))
	case int16:
		return exactFromInteger(strconv.FormatInt(int64(v), 10))
	case int32:
		return exactFromInteger(strconv.FormatInt(int64(v), 10))
	case int64:
		return exactFromInteger(strconv.FormatInt(v, 10))
	case uint:
		return exactFromInteger(strconv.FormatUint(uint64(v), 10))
	case uint8:
		return exactFromInteger(strconv.FormatUint(uint64(v), 10))
	case uint16:
		return exactFromInteger(strconv.FormatUint(uint64(v), 10))
	case uint32:
		return exactFromInteger(strconv.FormatUint(uint64(v), 10))
	case uint64:
		return exactFromInteger(strconv.FormatUint(v, 10))
	default:
		return fixedpoint.Value{}, false
	}
}

// exactFromInteger builds a scale-0 value from an integer's decimal text, so
// 64-bit magnitudes never pass through a float.
func exactFromInteger(s string) (fixedpoint.Value, bool) {
	fp, err := fixedpoint.FromString(s)
	if err != nil {
		return fixedpoint.Value{}, false
	}
	return fp, true
}

// normalize cleans text for parsing and reports whether anything numeric
// survived.
func normalize(raw string) (neg bool, p parts, ok bool) {
	neg, rest := splitMinus(raw)
	p = normalizeParse(keepNumeric(rest))
	if p.intDigits == "" && p.fracDigits == "" {
		return false, parts{}, false
	}
	return neg, p, true
}

func parseText(raw string) (float64, bool) {
	neg, p, ok := normalize(raw)
	if !ok {
		return 0, false
	}
	s := p.intDigits
	if s == "" {
		s = "0"
	}
	if p.fracDigits != "" {
		s += "." + p.fracDigits
	}
	// The digit string is already well-formed; ParseFloat only reports range
	// errors here, and underflow to zero is acceptable precision loss.
	f, _ := strconv.ParseFloat(s, 64)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	if neg {
		f = -f
	}
	return f, true
}

func parseTextExact(raw string) (fixedpoint.Value, bool) {
	neg, p, ok := normalize(raw)
	if !ok {
		return fixedpoint.Value{}, false
	}
	fp, err := fixedpoint.FromParts(neg, p.intDigits, p.fracDigits)
	if err != nil {
		// unreachable: the digits come from the sanitizer
		return fixedpoint.Value{}, false
	}
	return fp, true
}
