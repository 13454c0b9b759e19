// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/treach/reach"
	"github.com/katalvlaran/treach/runstat"
)

const scenarioGraph = `# src dst t
0 1 1
1 2 2
0 2 5
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd("test")
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRun_EveryMode(t *testing.T) {
	dir := t.TempDir()
	graph := writeFile(t, dir, "g.txt", scenarioGraph)
	queries := writeFile(t, dir, "q.txt", "0 2 1 5\n2 0\n1 1 3\n0 1 2 5\n")

	want := "0 2 1 5 true 2\n" +
		"2 0 1 5 false -1\n" +
		"1 1 1 3 true 1\n" +
		"0 1 2 5 false -1\n"
	for _, mode := range []string{"online", "baseline", "optimized"} {
		t.Run(mode, func(t *testing.T) {
			out := filepath.Join(dir, mode+".out")
			_, _, err := execute(t, "run", "-g", graph, "-q", queries, "-m", mode, "-o", out)
			require.NoError(t, err)

			got, err := os.ReadFile(out)
			require.NoError(t, err)
			assert.Equal(t, want, string(got))
		})
	}
}

func TestRun_UpdateAndArtifacts(t *testing.T) {
	dir := t.TempDir()
	graph := writeFile(t, dir, "g.txt", scenarioGraph)
	queries := writeFile(t, dir, "q.txt", "0 2 1 5\n")
	metrics := filepath.Join(dir, "metrics.prom")
	report := filepath.Join(dir, "report.yaml")

	stdout, stderr, err := execute(t, "run",
		"-g", graph, "-q", queries,
		"-m", "optimized", "--update", "0.5",
		"--metrics-file", metrics, "--report-file", report)
	require.NoError(t, err)
	assert.Equal(t, "0 2 1 5 true 2\n", stdout)
	assert.Contains(t, stderr, "index update completed")

	data, err := os.ReadFile(metrics)
	require.NoError(t, err)
	assert.Contains(t, string(data), "treach_queries_total")
	assert.Contains(t, string(data), "treach_phase_duration_seconds")

	r, err := runstat.ReadReport(report)
	require.NoError(t, err)
	assert.Equal(t, "optimized", r.Mode)
	// timestamps {1,2,5} are ticks 1..3; construct covers tick 1
	assert.Equal(t, 3, r.Horizon)
	assert.Equal(t, 5, r.HorizonTime)
	assert.Equal(t, 5, r.Graph.LastTime)
	assert.Equal(t, 2, r.Updated)
	assert.Equal(t, 1, r.Queries)
	assert.Equal(t, 1, r.Reachable)
	assert.NotEmpty(t, r.RunID)
}

func TestRun_MalformedQueries(t *testing.T) {
	dir := t.TempDir()
	graph := writeFile(t, dir, "g.txt", scenarioGraph)
	queries := writeFile(t, dir, "q.txt", "0 2\nnot a query\n0 1\n")

	_, _, err := execute(t, "run", "-g", graph, "-q", queries)
	require.ErrorIs(t, err, reach.ErrMalformedInput)

	stdout, _, err := execute(t, "run", "-g", graph, "-q", queries, "--malformed", "skip")
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(stdout, "\n"))
}

func TestRun_BadConfiguration(t *testing.T) {
	dir := t.TempDir()
	graph := writeFile(t, dir, "g.txt", scenarioGraph)

	_, _, err := execute(t, "run")
	require.ErrorIs(t, err, reach.ErrInvalidConfiguration)

	_, _, err = execute(t, "run", "-g", graph, "--retained", "0.5", "--update", "0.5")
	require.Error(t, err)

	_, _, err = execute(t, "run", "-g", graph, "-m", "quantum")
	require.Error(t, err)
}

func TestRun_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	graph := writeFile(t, dir, "g.txt", scenarioGraph)
	queries := writeFile(t, dir, "q.txt", "0 2 1 5\n")
	cfg := writeFile(t, dir, "treach.yaml",
		"graph: "+graph+"\nqueries: ["+queries+"]\nmode: baseline\nsemantics: strict\n")

	stdout, _, err := execute(t, "run", "-c", cfg)
	require.NoError(t, err)
	assert.Equal(t, "0 2 1 5 true 2\n", stdout)
}

func TestStats(t *testing.T) {
	dir := t.TempDir()
	graph := writeFile(t, dir, "g.txt", scenarioGraph)

	stdout, _, err := execute(t, "stats", "-g", graph)
	require.NoError(t, err)
	assert.Contains(t, stdout, "active_timestamps: 3")
	assert.Contains(t, stdout, "bucket_max: 1")
	assert.Contains(t, stdout, "max_out_degree: 2")
}

func TestGen(t *testing.T) {
	a, _, err := execute(t, "gen", "--kind", "random", "-n", "6", "-m", "12", "--tmax", "4", "--seed", "7")
	require.NoError(t, err)
	b, _, err := execute(t, "gen", "--kind", "random", "-n", "6", "-m", "12", "--tmax", "4", "--seed", "7")
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Equal(t, 12, strings.Count(a, "\n"))

	path, _, err := execute(t, "gen", "--kind", "path", "-n", "3")
	require.NoError(t, err)
	assert.Equal(t, "0 1 1\n1 2 2\n", path)

	_, _, err = execute(t, "gen", "--kind", "mesh")
	require.ErrorIs(t, err, reach.ErrInvalidConfiguration)
}

func TestGen_RoundTripThroughStats(t *testing.T) {
	dir := t.TempDir()
	graph := filepath.Join(dir, "star.txt")
	_, _, err := execute(t, "gen", "--kind", "star", "-n", "4", "-o", graph)
	require.NoError(t, err)

	stdout, _, err := execute(t, "stats", "-g", graph)
	require.NoError(t, err)
	assert.Contains(t, stdout, "vertices: 4")
	assert.Contains(t, stdout, "edges: 6")
}

func TestRun_EpochTimestamps(t *testing.T) {
	dir := t.TempDir()
	graph := writeFile(t, dir, "g.txt",
		"0 1 1600000000\n1 2 1600003600\n2 3 1600003600\n0 3 1700000000\n")
	queries := writeFile(t, dir, "q.txt",
		"0 3\n0 3 1600000000 1650000000\n1 3 1600000001 1600003599\n0 0 1600000000 1700000000\n")

	want := "0 3 1 1700000000 true 1600003600\n" +
		"0 3 1600000000 1650000000 true 1600003600\n" +
		"1 3 1600000001 1600003599 false -1\n" +
		"0 0 1600000000 1700000000 true 1600000000\n"
	for _, mode := range []string{"online", "baseline", "optimized"} {
		t.Run(mode, func(t *testing.T) {
			stdout, _, err := execute(t, "run", "-g", graph, "-q", queries, "-m", mode)
			require.NoError(t, err)
			assert.Equal(t, want, stdout)
		})
	}

	stdout, _, err := execute(t, "stats", "-g", graph)
	require.NoError(t, err)
	assert.Contains(t, stdout, "tmax: 3")
	assert.Contains(t, stdout, "last_time: 1700000000")
}
