// SPDX-License-Identifier: MIT

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/treach/config"
	"github.com/katalvlaran/treach/index"
	"github.com/katalvlaran/treach/reach"
	"github.com/katalvlaran/treach/runstat"
	"github.com/katalvlaran/treach/temporal"
)

func newRunCmd(load loader) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Build the graph and an index, then answer query batches",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := load(cmd.Flags())
			if err != nil {
				return err
			}
			return run(cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
	fs := cmd.Flags()
	graphFlags(fs)
	fs.StringSliceP("queries", "q", nil, "query files, answered in order")
	fs.StringP("mode", "m", "online", "engine: online|baseline|optimized")
	fs.Float64("retained", 1, "fraction of the timeline indexed by construct, in (0,1]")
	fs.Float64("update", 0, "fraction of the timeline applied by update after construct, in [0,1)")
	fs.Int("bound", 0, "window end for queries without one (default tmax)")
	fs.String("semantics", "non-strict", "hop semantics: non-strict|strict")
	fs.String("metrics-file", "", "write Prometheus metrics in text format to this file")
	fs.String("report-file", "", "write a YAML run report to this file")
	fs.StringP("output", "o", "", "results file (default stdout)")
	return cmd
}

// run executes build graph → construct → update → size → query batches.
// Results already written stay written when a later phase fails.
func run(cfg *config.Config, stdout, stderr io.Writer) error {
	log := newLogger(stderr, cfg.LogFormat, cfg.Debug)
	if cfg.Graph == "" {
		return fmt.Errorf("%w: no graph file given", reach.ErrInvalidConfiguration)
	}

	rec := runstat.NewRecorder()
	report := runstat.NewReport(cfg.IndexMode().String(), cfg.HopSemantics().String())
	log = log.With().Str("run", report.RunID).Logger()

	g, skipped, err := buildGraph(cfg, rec, log)
	if err != nil {
		return err
	}
	report.Graph = graphStats(g)
	report.Skipped = skipped
	rec.SetGraph(report.Graph)

	ix, err := index.New(cfg.IndexMode(),
		reach.WithSemantics(cfg.HopSemantics()),
		reach.WithLogger(log),
		reach.WithDebug(cfg.Debug),
	)
	if err != nil {
		return err
	}

	stop := rec.Start("construct")
	if err := ix.Construct(g, cfg.ConstructFraction()); err != nil {
		return fmt.Errorf("construct: %w", err)
	}
	log.Info().Str("took", runstat.FormatDuration(stop())).Int("horizon", ix.Horizon()).Msg("index construction completed")

	if cfg.UpdateFraction > 0 {
		report.Updated = g.EdgesIn(ix.Horizon()+1, g.TMax())
		log.Info().Int("edges", report.Updated).Msg("updating the index")
		stop = rec.Start("update")
		if err := ix.Update(g); err != nil {
			return fmt.Errorf("update: %w", err)
		}
		log.Info().Str("took", runstat.FormatDuration(stop())).Int("horizon", ix.Horizon()).Msg("index update completed")
	}

	report.Horizon = ix.Horizon()
	report.HorizonTime = g.Time(ix.Horizon())
	report.IndexBytes = ix.Size()
	rec.SetIndexBytes(cfg.IndexMode().String(), report.IndexBytes)
	log.Info().Int64("bytes", report.IndexBytes).Str("size", runstat.FormatBytes(report.IndexBytes)).Msg("index cost")

	out, closeOut, err := openOutput(cfg.Output, stdout)
	if err != nil {
		return err
	}
	defer closeOut()

	bound := cfg.QueryBound
	if bound == 0 {
		bound = g.LastTime()
	}
	for _, path := range cfg.Queries {
		n, reachable, skipped, err := answerFile(ix, g, path, bound, cfg.Policy(), rec, out, log)
		report.Queries += n
		report.Reachable += reachable
		report.Skipped += skipped
		if err != nil {
			return err
		}
	}
	if err := out.Flush(); err != nil {
		return fmt.Errorf("write results: %w", err)
	}

	return finish(cfg, rec, report, log)
}

func buildGraph(cfg *config.Config, rec *runstat.Recorder, log zerolog.Logger) (*temporal.Graph, int, error) {
	var skipped int
	opts := []temporal.BuildOption{
		temporal.WithRetainedFraction(cfg.SubgraphFraction),
		temporal.WithMalformedPolicy(cfg.Policy()),
		temporal.WithLogger(log),
		temporal.WithSkipCount(&skipped),
	}
	if cfg.Undirected {
		opts = append(opts, temporal.WithUndirected())
	}

	stop := rec.Start("build graph")
	g, err := temporal.BuildFile(cfg.Graph, opts...)
	if err != nil {
		return nil, skipped, fmt.Errorf("build graph: %w", err)
	}
	log.Info().
		Str("took", runstat.FormatDuration(stop())).
		Int("n", g.NumVertices()).
		Int("m", g.NumEdges()).
		Int("tmax", g.TMax()).
		Int("last_time", g.LastTime()).
		Int64("bytes", g.Size()).
		Msg("build graph success")
	return g, skipped, nil
}

func graphStats(g *temporal.Graph) runstat.GraphStats {
	return runstat.GraphStats{
		Vertices: g.NumVertices(),
		Edges:    g.NumEdges(),
		TMax:     g.TMax(),
		LastTime: g.LastTime(),
		Bytes:    g.Size(),
	}
}

// answerFile runs one query batch and appends its results to out.
func answerFile(ix index.Index, clock index.Clock, path string, bound int, policy reach.MalformedPolicy,
	rec *runstat.Recorder, out *bufio.Writer, log zerolog.Logger) (n, reachable, skipped int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("open queries: %w", err)
	}
	defer f.Close()

	queries, skipped, err := reach.ParseQueries(f, reach.QueryReadOptions{
		Policy:       policy,
		DefaultBound: bound,
		Logger:       log,
	})
	if err != nil {
		return 0, 0, skipped, fmt.Errorf("%s: %w", path, err)
	}

	stop := rec.Start("query " + path)
	results, runErr := index.RunClocked(ix, clock, queries, func(_ reach.Query, r reach.Result, took time.Duration) {
		rec.ObserveQuery(r.Reachable, took)
	})
	took := stop()
	for _, r := range results {
		if r.Reachable {
			reachable++
		}
	}
	if err := reach.WriteResults(out, results); err != nil {
		return len(results), reachable, skipped, fmt.Errorf("write results: %w", err)
	}
	if runErr != nil {
		return len(results), reachable, skipped, fmt.Errorf("%s: %w", path, runErr)
	}
	log.Info().
		Str("file", path).
		Int("queries", len(results)).
		Int("reachable", reachable).
		Str("took", runstat.FormatDuration(took)).
		Msg("query completed")
	return len(results), reachable, skipped, nil
}

// openOutput returns a buffered writer on path, or on stdout when path is empty.
func openOutput(path string, stdout io.Writer) (*bufio.Writer, func(), error) {
	if path == "" {
		return bufio.NewWriter(stdout), func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open output: %w", err)
	}
	bw := bufio.NewWriter(f)
	return bw, func() {
		_ = bw.Flush()
		_ = f.Close()
	}, nil
}

func finish(cfg *config.Config, rec *runstat.Recorder, report *runstat.Report, log zerolog.Logger) error {
	report.Fill(rec)
	lat := report.Latency
	if lat.Count > 0 {
		log.Info().
			Int("queries", lat.Count).
			Str("mean", runstat.FormatDuration(lat.Mean)).
			Str("p99", runstat.FormatDuration(lat.P99)).
			Msg("query latency")
	}

	var errs []error
	if cfg.MetricsFile != "" {
		errs = append(errs, rec.WriteMetrics(cfg.MetricsFile))
	}
	if cfg.ReportFile != "" {
		errs = append(errs, report.WriteFile(cfg.ReportFile))
	}
	return errors.Join(errs...)
}
