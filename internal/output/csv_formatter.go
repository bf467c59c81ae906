package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/netng/idr-formatting/internal/batch"
)

// CSVFormatter implements the summary CSV output (one row per job).
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(results []batch.Result) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Name", "Op", "Input", "OK", "Output", "Approx", "Sign", "Scale", "Unscaled"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, r := range results {
		row := []string{
			r.Name,
			string(r.Op),
			r.Input,
			strconv.FormatBool(r.OK),
			r.Output,
			approxColumn(r),
			signColumn(r),
			scaleColumn(r),
			r.Unscaled,
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

func approxColumn(r batch.Result) string {
	if !r.OK || r.Op == batch.OpFormat {
		return ""
	}
	return FormatApprox(r.Approx)
}

func signColumn(r batch.Result) string {
	if !r.OK || r.Op != batch.OpParseExact {
		return ""
	}
	return strconv.Itoa(r.Sign)
}

func scaleColumn(r batch.Result) string {
	if !r.OK || r.Op != batch.OpParseExact {
		return ""
	}
	return strconv.Itoa(r.Scale)
}
