// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/stat"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/treach/reach"
	"github.com/katalvlaran/treach/runstat"
	"github.com/katalvlaran/treach/temporal"
)

// graphSummary is what `treach stats` prints.
type graphSummary struct {
	Graph            runstat.GraphStats `yaml:"graph"`
	Size             string             `yaml:"size"`
	ActiveTimestamps int                `yaml:"active_timestamps"`
	BucketMean       float64            `yaml:"bucket_mean"`
	BucketStdDev     float64            `yaml:"bucket_stddev"`
	BucketMax        int                `yaml:"bucket_max"`
	MaxOutDegree     int                `yaml:"max_out_degree"`
}

func newStatsCmd(load loader) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print temporal graph statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := load(cmd.Flags())
			if err != nil {
				return err
			}
			if cfg.Graph == "" {
				return fmt.Errorf("%w: no graph file given", reach.ErrInvalidConfiguration)
			}
			log := newLogger(cmd.ErrOrStderr(), cfg.LogFormat, cfg.Debug)
			g, _, err := buildGraph(cfg, runstat.NewRecorder(), log)
			if err != nil {
				return err
			}
			return writeSummary(cmd.OutOrStdout(), summarize(g))
		},
	}
	graphFlags(cmd.Flags())
	return cmd
}

func summarize(g *temporal.Graph) graphSummary {
	s := graphSummary{
		Graph: graphStats(g),
		Size:  runstat.FormatBytes(g.Size()),
	}
	var sizes []float64
	for _, b := range g.Buckets(1, g.TMax()) {
		if len(b) == 0 {
			continue
		}
		sizes = append(sizes, float64(len(b)))
		s.BucketMax = max(s.BucketMax, len(b))
	}
	s.ActiveTimestamps = len(sizes)
	if len(sizes) > 1 {
		s.BucketMean, s.BucketStdDev = stat.MeanStdDev(sizes, nil)
	} else if len(sizes) == 1 {
		s.BucketMean = sizes[0]
	}
	for v := 0; v < g.NumVertices(); v++ {
		s.MaxOutDegree = max(s.MaxOutDegree, len(g.OutEdges(v)))
	}
	return s
}

func writeSummary(w io.Writer, s graphSummary) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("stats: %w", err)
	}
	return enc.Close()
}
