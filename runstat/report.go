// SPDX-License-Identifier: MIT

package runstat

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// GraphStats are the dimensions printed after the graph is built.
// TMax counts ticks; LastTime is the input timestamp of the last one.
type GraphStats struct {
	Vertices int   `yaml:"vertices"`
	Edges    int   `yaml:"edges"`
	TMax     int   `yaml:"tmax"`
	LastTime int   `yaml:"last_time"`
	Bytes    int64 `yaml:"bytes"`
}

// Report is the machine-readable summary of one run.
type Report struct {
	RunID      string     `yaml:"run_id"`
	StartedAt  time.Time  `yaml:"started_at"`
	Mode       string     `yaml:"mode"`
	Semantics  string     `yaml:"semantics"`
	Graph      GraphStats `yaml:"graph"`
	Horizon     int        `yaml:"horizon"`
	HorizonTime int        `yaml:"horizon_time"`
	IndexBytes int64      `yaml:"index_bytes"`
	Updated    int        `yaml:"updated_edges,omitempty"`
	Queries    int        `yaml:"queries"`
	Reachable  int        `yaml:"reachable"`
	Skipped    int        `yaml:"skipped_records,omitempty"`
	Phases     []Phase    `yaml:"phases"`
	Latency    Latency    `yaml:"latency"`
}

// NewReport returns a report stamped with a fresh run id.
func NewReport(mode, semantics string) *Report {
	return &Report{
		RunID:     uuid.NewString(),
		StartedAt: time.Now().UTC(),
		Mode:      mode,
		Semantics: semantics,
	}
}

// Fill copies phases and latency statistics from rec.
func (r *Report) Fill(rec *Recorder) {
	r.Phases = rec.Phases()
	r.Latency = rec.Latency()
}

// Encode writes the report as YAML.
func (r *Report) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("runstat: encode report: %w", err)
	}
	return enc.Close()
}

// WriteFile writes the report to path.
func (r *Report) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("runstat: create report: %w", err)
	}
	if err := r.Encode(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ReadReport decodes a report written by WriteFile.
func ReadReport(path string) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("runstat: read report: %w", err)
	}
	var r Report
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("runstat: decode report: %w", err)
	}
	return &r, nil
}
