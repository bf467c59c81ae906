package idr

import (
	"testing"
)

func TestFormatGrouping(t *testing.T) {
	cases := []struct {
		in   any
		want string
	}{
		{1000, "1.000"},
		{1000000, "1.000.000"},
		{0, "0"},
		{"000123", "123"},
		{"500", "500"},
		{"12345678", "12.345.678"},
	}
	for _, c := range cases {
		if got := Format(c.in, nil); got != c.want {
			t.Errorf("Format(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFormatDecimalPreservation(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"1050,32", "1.050,32"},
		{"1234,5678", "1.234,5678"}, // never truncated by default
		{"0,5", "0,5"},
		{"1050,", "1.050"}, // trailing comma with no digits after it
	}
	for _, c := range cases {
		if got := Format(c.in, nil); got != c.want {
			t.Errorf("Format(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFormatDotHeuristic(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"1.500", "1.500"}, // valid 3-digit grouping: thousands
		{"12.345.678", "12.345.678"},
		{"12.34", "12,34"}, // not a grouping: first dot is decimal
		{"1.2.3", "1,23"},  // extra dots are noise after the first
		{"12345.678", "12.345,678"},
	}
	for _, c := range cases {
		if got := Format(c.in, nil); got != c.want {
			t.Errorf("Format(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFormatFixedDecimalsRounding(t *testing.T) {
	cases := []struct {
		in       string
		decimals int
		want     string
	}{
		{"999,99", 1, "1.000,0"}, // carry cascades through the integer part
		{"9,99", 1, "10,0"},
		{"2,5", 0, "3"}, // round half up, no decimal output at all
		{"2,4", 0, "2"},
		{"1050", 2, "1.050,00"},
		{"1234,5678", 2, "1.234,57"},
		{"999.999", 2, "999.999,00"}, // thousands text, padded
	}
	for _, c := range cases {
		opts := &FormatOptions{Decimals: FixedDecimals(c.decimals)}
		if got := Format(c.in, opts); got != c.want {
			t.Errorf("Format(%q, decimals=%d) = %q, want %q", c.in, c.decimals, got, c.want)
		}
	}
}

func TestFormatPadZeros(t *testing.T) {
	opts := &FormatOptions{PadZeros: true}
	cases := []struct {
		in   string
		want string
	}{
		{"1050,5", "1.050,50"},
		{"1050,32", "1.050,32"},
		{"1050", "1.050"}, // no decimal part, never padded
		{"1234,5678", "1.234,5678"},
	}
	for _, c := range cases {
		if got := Format(c.in, opts); got != c.want {
			t.Errorf("Format(%q, padZeros) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFormatSign(t *testing.T) {
	cases := []struct {
		in   any
		want string
	}{
		{"-1050,5", "-1.050,5"},
		{"-1.500", "-1.500"},
		{-1234.5, "-1.234,5"},
		{"Rp -5000", "5.000"}, // minus is only honored when leading
	}
	for _, c := range cases {
		if got := Format(c.in, nil); got != c.want {
			t.Errorf("Format(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFormatGarbageAndEmpty(t *testing.T) {
	if got := Format(nil, nil); got != "" {
		t.Errorf("Format(nil) = %q, want empty", got)
	}
	if got := Format("", nil); got != "" {
		t.Errorf("Format(\"\") = %q, want empty", got)
	}
	if got := Format("   ", nil); got != "" {
		t.Errorf("Format(blank) = %q, want empty", got)
	}
	// Display formatting never fails: garbage renders as zero.
	if got := Format("abc", nil); got != "0" {
		t.Errorf("Format(\"abc\") = %q, want \"0\"", got)
	}
	if got := Format("Rp", nil); got != "0" {
		t.Errorf("Format(\"Rp\") = %q, want \"0\"", got)
	}
}

func TestFormatStripsNoise(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Rp 1.500", "1.500"},
		{"Rp1050,32", "1.050,32"},
		{" 1 050,3 ", "1.050,3"},
		{"1,2,3", "1,23"}, // later commas merge into the decimal part
	}
	for _, c := range cases {
		if got := Format(c.in, nil); got != c.want {
			t.Errorf("Format(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFormatNumericBypassesHeuristic(t *testing.T) {
	// 1.234 as a float means one point two three four; the grouped-integer
	// reading only ever applies to typed text.
	if got := Format(1.234, nil); got != "1,234" {
		t.Errorf("Format(1.234) = %q, want %q", got, "1,234")
	}
	if got := Format(1500.0, nil); got != "1.500" {
		t.Errorf("Format(1500.0) = %q, want %q", got, "1.500")
	}
}

func TestFormatNumericKinds(t *testing.T) {
	cases := []struct {
		in   any
		want string
	}{
		{int8(-128), "-128"},
		{int16(-12345), "-12.345"},
		{int32(1000000), "1.000.000"},
		{int64(1500), "1.500"},
		{uint8(255), "255"},
		{uint16(65535), "65.535"},
		{uint32(4294967295), "4.294.967.295"},
		{uint64(18446744073709551615), "18.446.744.073.709.551.615"},
		{uint(1000), "1.000"},
		{float32(2.5), "2,5"},
	}
	for _, c := range cases {
		if got := Format(c.in, nil); got != c.want {
			t.Errorf("Format(%T %v) = %q, want %q", c.in, c.in, got, c.want)
		}
	}
}

func TestFormatFixedPoint(t *testing.T) {
	v, ok := ParseExact("1,234")
	if !ok {
		t.Fatalf("ParseExact failed")
	}
	if got := Format(v, nil); got != "1,234" {
		t.Errorf("Format(fixedpoint 1.234) = %q, want %q", got, "1,234")
	}

	big, ok := ParseExact("9.223.372.036.854.775.807,99")
	if !ok {
		t.Fatalf("ParseExact failed")
	}
	if got := Format(big, nil); got != "9.223.372.036.854.775.807,99" {
		t.Errorf("Format(big fixedpoint) = %q", got)
	}
	// Fixed decimal counts round with arbitrary-precision carry.
	if got := Format(big, &FormatOptions{Decimals: FixedDecimals(1)}); got != "9.223.372.036.854.775.808,0" {
		t.Errorf("Format(big fixedpoint, decimals=1) = %q", got)
	}
}

func TestFormatIsPure(t *testing.T) {
	for i := 0; i < 3; i++ {
		if got := Format("1050,32", nil); got != "1.050,32" {
			t.Fatalf("Format changed across calls: %q", got)
		}
	}
}
