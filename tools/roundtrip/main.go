// roundtrip pushes sample inputs through format, parse and parse-exact and
// prints each trip, for eyeballing how the separator heuristics behave.
package main

import (
	"fmt"

	"github.com/netng/idr-formatting/pkg/idr"
)

func main() {
	samples := []string{
		"1.500",
		"12.34",
		"1050,32",
		"1234,5678",
		"-1.050,5",
		"999,99",
		"Rp 12.345.678",
		"9.223.372.036.854.775.807,99",
		"abc",
	}

	one := 1
	for _, s := range samples {
		display := idr.Format(s, nil)
		rounded := idr.Format(s, &idr.FormatOptions{Decimals: &one})
		fmt.Printf("input %-32q display %-20q decimals=1 %-20q", s, display, rounded)

		if f, ok := idr.Parse(display); ok {
			fmt.Printf(" approx %v", f)
		} else {
			fmt.Printf(" approx (no value)")
		}
		if v, ok := idr.ParseExact(display); ok {
			fmt.Printf(" exact %s (scale %d)\n", v, v.Scale())
		} else {
			fmt.Printf(" exact (no value)\n")
		}
	}
}
