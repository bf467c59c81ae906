package integration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/netng/idr-formatting/internal/batch"
	"github.com/netng/idr-formatting/internal/config"
	"github.com/netng/idr-formatting/internal/output"
)

func TestEndToEndBatch(t *testing.T) {
	// Test that we can load a batch file and run every conversion in it
	parser := config.NewInputParser()
	b, err := parser.LoadFromFile("../testdata/example_batch.yaml")

	require.NoError(t, err)
	require.NotNil(t, b)
	assert.Len(t, b.Jobs, 6)

	engine := batch.NewEngine()
	results := engine.Run(b.ToJobs())
	require.Len(t, results, 6)

	byName := map[string]batch.Result{}
	for _, r := range results {
		byName[r.Name] = r
	}

	assert.Equal(t, "1.050,32", byName["grouped-price"].Output)
	assert.Equal(t, "1.500", byName["thousands-text"].Output)
	assert.Equal(t, "1.000,0", byName["rounded"].Output)

	assert.True(t, byName["approx"].OK)
	assert.Equal(t, -1050.5, byName["approx"].Approx)

	exact := byName["exact-large"]
	assert.True(t, exact.OK)
	assert.Equal(t, "9223372036854775807.99", exact.Output)
	assert.Equal(t, "922337203685477580799", exact.Unscaled)
	assert.Equal(t, 2, exact.Scale)

	assert.False(t, byName["no-value"].OK)
}

func TestBatchValidation(t *testing.T) {
	parser := config.NewInputParser()

	b, err := parser.LoadFromFile("../testdata/example_batch.yaml")
	assert.NoError(t, err)
	assert.NotNil(t, b)

	err = parser.ValidateBatch(b)
	assert.NoError(t, err)
}

func TestOutputGeneration(t *testing.T) {
	parser := config.NewInputParser()
	b, err := parser.LoadFromFile("../testdata/example_batch.yaml")
	require.NoError(t, err)

	engine := batch.NewEngine()
	results := engine.Run(b.ToJobs())

	for _, name := range output.AvailableFormatterNames() {
		formatter := output.GetFormatterByName(name)
		require.NotNil(t, formatter, "formatter %s", name)

		data, err := formatter.Format(results)
		assert.NoError(t, err, "formatter %s", name)
		assert.NotEmpty(t, data, "formatter %s", name)
	}
}
