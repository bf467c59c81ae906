// Package batch runs lists of formatting and parsing jobs over the core idr
// operations and collects their results for reporting. It is the only layer
// that knows about jobs and defaults; the core stays a set of pure functions.
package batch

import (
	"github.com/netng/idr-formatting/pkg/idr"
)

// Op identifies a conversion operation.
type Op string

const (
	OpFormat     Op = "format"
	OpParse      Op = "parse"
	OpParseExact Op = "parse-exact"
)

// KnownOp reports whether op names a supported operation.
func KnownOp(op Op) bool {
	switch op {
	case OpFormat, OpParse, OpParseExact:
		return true
	}
	return false
}

// Job is a single conversion to run.
type Job struct {
	Name     string
	Op       Op
	Value    string
	Decimals *int // format only; nil preserves decimals as typed
	PadZeros bool // format only
}

// Result holds the outcome of one job. OK is false when parsing found no
// value; formatting never fails, so format results are always OK.
type Result struct {
	Name   string `json:"name"`
	Op     Op     `json:"op"`
	Input  string `json:"input"`
	OK     bool   `json:"ok"`
	Output string `json:"output"`

	// Approx is set for parse jobs.
	Approx float64 `json:"approx,omitempty"`

	// Exact value parts, set for parse-exact jobs.
	Sign     int    `json:"sign,omitempty"`
	Scale    int    `json:"scale,omitempty"`
	Unscaled string `json:"unscaled,omitempty"`
}

// Engine executes jobs sequentially. It holds no state between runs beyond
// its logger.
type Engine struct {
	logger Logger
}

// NewEngine creates an engine with a no-op logger.
func NewEngine() *Engine {
	return &Engine{logger: NopLogger{}}
}

// SetLogger replaces the engine's logger. A nil logger restores the no-op.
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		l = NopLogger{}
	}
	e.logger = l
}

// Run executes every job in order and returns one result per job.
func (e *Engine) Run(jobs []Job) []Result {
	results := make([]Result, 0, len(jobs))
	for _, job := range jobs {
		results = append(results, e.runOne(job))
	}
	return results
}

func (e *Engine) runOne(job Job) Result {
	res := Result{Name: job.Name, Op: job.Op, Input: job.Value}
	switch job.Op {
	case OpFormat:
		opts := &idr.FormatOptions{Decimals: job.Decimals, PadZeros: job.PadZeros}
		res.Output = idr.Format(job.Value, opts)
		res.OK = true
		e.logger.Debugf("format %q -> %q", job.Value, res.Output)
	case OpParse:
		f, ok := idr.Parse(job.Value)
		res.OK = ok
		if ok {
			res.Approx = f
			res.Output = idr.Format(f, nil)
		} else {
			e.logger.Warnf("parse %q: no value", job.Value)
		}
	case OpParseExact:
		v, ok := idr.ParseExact(job.Value)
		res.OK = ok
		if ok {
			res.Output = v.String()
			res.Approx = v.Float64()
			res.Sign = v.Sign()
			res.Scale = v.Scale()
			res.Unscaled = v.UnscaledString()
		} else {
			e.logger.Warnf("parse-exact %q: no value", job.Value)
		}
	default:
		e.logger.Errorf("unknown op %q for job %q", job.Op, job.Name)
	}
	return res
}
