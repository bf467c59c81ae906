package idr

import (
	"regexp"
	"strings"
)

// thousandsPattern recognizes a fully dot-grouped integer: 1-3 leading digits
// followed by one or more groups of exactly 3 digits, e.g. "1.500" or
// "12.345.678". Only text matching this exact shape has its dots read as
// thousands separators.
var thousandsPattern = regexp.MustCompile(`^[0-9]{1,3}(\.[0-9]{3})+$`)

// parts is the sanitized magnitude of an input: integer digits, fractional
// digits, and whether a decimal marker was present with digits after it.
type parts struct {
	intDigits  string
	fracDigits string
	hasFrac    bool
}

// splitMinus trims surrounding whitespace and detects a single leading minus
// sign before any cleaning happens. The minus is stripped here and reattached
// by the caller once the magnitude has been processed.
func splitMinus(s string) (bool, string) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "-") {
		return true, s[1:]
	}
	return false, s
}

// keepNumeric drops every character outside 0-9, '.' and ','. Letters,
// currency symbols and interior whitespace disappear wherever they occur.
func keepNumeric(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c >= '0' && c <= '9') || c == '.' || c == ',' {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// digitsOnly keeps 0-9 and drops everything else.
func digitsOnly(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if c := s[i]; c >= '0' && c <= '9' {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// trimLeadingZeros normalizes superfluous leading zeros, keeping a single "0"
// for an all-zero run. An empty string stays empty.
func trimLeadingZeros(s string) string {
	i := 0
	for i < len(s)-1 && s[i] == '0' {
		i++
	}
	return s[i:]
}

// classifyDisplay applies the display-side separator rules to cleaned text:
//
//  1. A comma present makes the first comma the decimal marker; later commas
//     and any dots are removed, their digits silently concatenated (paste
//     resilience, never a failure).
//  2. No comma but dots: if the text is a valid 3-digit grouping the dots are
//     thousands separators; otherwise the first dot is the decimal point and
//     any further dots are noise.
//  3. Neither: a plain integer digit run.
func classifyDisplay(cleaned string) parts {
	if i := strings.IndexByte(cleaned, ','); i >= 0 {
		frac := digitsOnly(cleaned[i+1:])
		return parts{
			intDigits:  trimLeadingZeros(digitsOnly(cleaned[:i])),
			fracDigits: frac,
			hasFrac:    frac != "",
		}
	}
	if strings.IndexByte(cleaned, '.') >= 0 {
		if thousandsPattern.MatchString(cleaned) {
			return parts{intDigits: trimLeadingZeros(digitsOnly(cleaned))}
		}
		i := strings.IndexByte(cleaned, '.')
		frac := digitsOnly(cleaned[i+1:])
		return parts{
			intDigits:  trimLeadingZeros(cleaned[:i]),
			fracDigits: frac,
			hasFrac:    frac != "",
		}
	}
	return parts{intDigits: trimLeadingZeros(cleaned)}
}

// normalizeParse applies the parse-side rules: dots are always stripped as
// thousands noise, and the first comma, if any, is the decimal marker. The
// display-side dot heuristic deliberately does not apply here.
func normalizeParse(cleaned string) parts {
	if i := strings.IndexByte(cleaned, ','); i >= 0 {
		frac := digitsOnly(cleaned[i+1:])
		return parts{
			intDigits:  trimLeadingZeros(digitsOnly(cleaned[:i])),
			fracDigits: frac,
			hasFrac:    frac != "",
		}
	}
	return parts{intDigits: trimLeadingZeros(digitsOnly(cleaned))}
}
