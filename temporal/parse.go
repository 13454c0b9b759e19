// SPDX-License-Identifier: MIT
//
// File: parse.go
// Role: Edge-list ingestion (Build, BuildFile) with retained-fraction cut and
//       malformed-record policy.
// Determinism:
//   - Edges are inserted in (tick, input order); two-field records get their
//     1-based record ordinal as timestamp.

package temporal

import (
	"bufio"
	"cmp"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/katalvlaran/treach/reach"
)

// Build reads an edge list ("src dst [t]" per line) and returns the graph.
//
// Steps:
//  1. Resolve options; a bad retained fraction fails immediately.
//  2. Parse every record; malformed ones abort or are skipped per policy.
//  3. Keep the first floor(k·f) distinct timestamps.
//  4. Rank the kept timestamps: the i-th smallest becomes tick i.
//  5. Insert edges in tick order (mirrored if undirected).
//
// The graph keeps the tick→timestamp table (see Time and Ticks), so input
// timestamps may be arbitrary positive integers such as epoch seconds.
//
// The vertex count covers every parsed record, including those cut by the
// retained fraction, so vertex ids stay valid across subgraph experiments.
func Build(r io.Reader, opts ...BuildOption) (*Graph, error) {
	cfg := defaultBuildConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	edges, skipped, err := readEdges(r, cfg)
	if cfg.skipped != nil {
		*cfg.skipped = skipped
	}
	if err != nil {
		return nil, err
	}

	n := 0
	for _, e := range edges {
		n = max(n, e.Src+1, e.Dst+1)
	}

	times := retainedTimes(edges, cfg.retained)
	if len(times) > MaxTick {
		return nil, fmt.Errorf("%w: %d distinct timestamps, at most %d", ErrInvalidEdge, len(times), MaxTick)
	}
	slices.SortStableFunc(edges, func(a, b Edge) int { return cmp.Compare(a.T, b.T) })

	g := New(n)
	g.times = append(make([]int, 1, len(times)+1), times...)
	for _, e := range edges {
		tick, ok := slices.BinarySearch(times, e.T)
		if !ok {
			// past the retained cut; edges are sorted
			break
		}
		tick++
		if err := g.AddEdge(e.Src, e.Dst, tick); err != nil {
			return nil, err
		}
		if cfg.undirected && e.Src != e.Dst {
			if err := g.AddEdge(e.Dst, e.Src, tick); err != nil {
				return nil, err
			}
		}
	}

	cfg.logger.Info().
		Int("n", g.NumVertices()).
		Int("m", g.NumEdges()).
		Int("tmax", g.TMax()).
		Int("last_time", g.LastTime()).
		Int64("bytes", g.Size()).
		Int("skipped", skipped).
		Float64("retained", cfg.retained).
		Msg("temporal graph built")

	return g, nil
}

// BuildFile opens path and calls Build.
func BuildFile(path string, opts ...BuildOption) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("temporal: open edge list: %w", err)
	}
	defer f.Close()

	g, err := Build(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("temporal: %s: %w", path, err)
	}
	return g, nil
}

// readEdges parses every record, applying the malformed policy.
func readEdges(r io.Reader, cfg buildConfig) ([]Edge, int, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)

	var (
		edges   []Edge
		skipped int
		lineNo  int
		ordinal int
	)
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if reach.IsComment(line) {
			continue
		}
		e, err := parseEdge(line, ordinal+1)
		if err != nil {
			if cfg.policy == reach.Skip {
				skipped++
				cfg.logger.Warn().Int("line", lineNo).Err(err).Msg("skipping malformed edge")
				continue
			}
			return nil, skipped, fmt.Errorf("edge line %d: %w", lineNo, err)
		}
		ordinal++
		edges = append(edges, e)
	}
	if err := sc.Err(); err != nil {
		return nil, skipped, fmt.Errorf("reading edges: %w", err)
	}
	return edges, skipped, nil
}

func parseEdge(line string, ordinal int) (Edge, error) {
	vals, err := reach.ParseRecord(line, 2, 3)
	if err != nil {
		return Edge{}, err
	}
	e := Edge{Src: vals[0], Dst: vals[1], T: ordinal}
	if len(vals) == 3 {
		e.T = vals[2]
	}
	if e.Src < 0 || e.Dst < 0 || e.T < 1 {
		return Edge{}, fmt.Errorf("%w: %s", ErrInvalidEdge, e)
	}
	return e, nil
}

// retainedTimes returns the sorted distinct timestamps kept under fraction f.
func retainedTimes(edges []Edge, f float64) []int {
	if len(edges) == 0 {
		return nil
	}
	ts := make([]int, len(edges))
	for i, e := range edges {
		ts[i] = e.T
	}
	slices.Sort(ts)
	ts = slices.Compact(ts)
	return ts[:reach.Keep(len(ts), f)]
}
