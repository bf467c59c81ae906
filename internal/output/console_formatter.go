package output

import (
	"bytes"
	"fmt"
	"text/tabwriter"

	"github.com/netng/idr-formatting/internal/batch"
)

// ConsoleFormatter renders batch results as an aligned text table.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(results []batch.Result) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := tabwriter.NewWriter(buf, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tOP\tINPUT\tOUTPUT\tDETAIL")
	for _, r := range results {
		fmt.Fprintf(w, "%s\t%s\t%q\t%s\t%s\n", r.Name, r.Op, r.Input, c.output(r), c.detail(r))
	}
	if err := w.Flush(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (c ConsoleFormatter) output(r batch.Result) string {
	if !r.OK {
		return "(no value)"
	}
	if r.Output == "" {
		return `""`
	}
	return r.Output
}

func (c ConsoleFormatter) detail(r batch.Result) string {
	if !r.OK {
		return "-"
	}
	switch r.Op {
	case batch.OpParse:
		return "approx=" + FormatApprox(r.Approx)
	case batch.OpParseExact:
		return fmt.Sprintf("sign=%+d scale=%d unscaled=%s", r.Sign, r.Scale, r.Unscaled)
	}
	return "-"
}
