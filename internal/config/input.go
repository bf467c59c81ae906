// Package config loads batch job files for the idrfmt tool.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/netng/idr-formatting/internal/batch"
)

// Defaults apply to every job that does not override them.
type Defaults struct {
	Decimals *int `yaml:"decimals"`
	PadZeros bool `yaml:"pad_zeros"`
}

// JobSpec describes one conversion in a batch file.
type JobSpec struct {
	Name     string `yaml:"name"`
	Op       string `yaml:"op"`
	Value    string `yaml:"value"`
	Decimals *int   `yaml:"decimals"`
	PadZeros *bool  `yaml:"pad_zeros"`
}

// Batch is the top-level structure of a batch file.
type Batch struct {
	Defaults Defaults  `yaml:"defaults"`
	Jobs     []JobSpec `yaml:"jobs"`
}

// InputParser handles parsing of batch input files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a batch definition from a YAML file
func (ip *InputParser) LoadFromFile(filename string) (*Batch, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var b Batch
	if err := yaml.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateBatch(&b); err != nil {
		return nil, fmt.Errorf("batch validation failed: %w", err)
	}

	return &b, nil
}

// ValidateBatch validates the loaded batch definition
func (ip *InputParser) ValidateBatch(b *Batch) error {
	if len(b.Jobs) == 0 {
		return fmt.Errorf("no jobs provided")
	}
	if b.Defaults.Decimals != nil && *b.Defaults.Decimals < 0 {
		return fmt.Errorf("defaults: decimals must not be negative, got %d", *b.Defaults.Decimals)
	}
	for i, job := range b.Jobs {
		if !batch.KnownOp(batch.Op(job.Op)) {
			return fmt.Errorf("job %d (%s): unknown op %q", i, job.Name, job.Op)
		}
		if job.Decimals != nil && *job.Decimals < 0 {
			return fmt.Errorf("job %d (%s): decimals must not be negative, got %d", i, job.Name, *job.Decimals)
		}
	}
	return nil
}

// ToJobs resolves defaults and converts the batch into engine jobs.
func (b *Batch) ToJobs() []batch.Job {
	jobs := make([]batch.Job, 0, len(b.Jobs))
	for _, spec := range b.Jobs {
		job := batch.Job{
			Name:     spec.Name,
			Op:       batch.Op(spec.Op),
			Value:    spec.Value,
			Decimals: b.Defaults.Decimals,
			PadZeros: b.Defaults.PadZeros,
		}
		if spec.Decimals != nil {
			job.Decimals = spec.Decimals
		}
		if spec.PadZeros != nil {
			job.PadZeros = *spec.PadZeros
		}
		jobs = append(jobs, job)
	}
	return jobs
}
