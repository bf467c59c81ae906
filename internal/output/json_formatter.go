package output

import (
	"encoding/json"

	"github.com/netng/idr-formatting/internal/batch"
)

// JSONFormatter serializes batch results as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(results []batch.Result) ([]byte, error) {
	return json.MarshalIndent(results, "", "  ")
}
