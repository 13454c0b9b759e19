// SPDX-License-Identifier: MIT

package runstat

import (
	"slices"
	"time"

	"gonum.org/v1/gonum/stat"
)

// Latency summarizes per-query answer times.
type Latency struct {
	Count int           `yaml:"count"`
	Mean  time.Duration `yaml:"mean"`
	P50   time.Duration `yaml:"p50"`
	P95   time.Duration `yaml:"p95"`
	P99   time.Duration `yaml:"p99"`
	Max   time.Duration `yaml:"max"`
}

// LatencyStats computes empirical quantiles over samples. Empty input
// yields the zero Latency.
func LatencyStats(samples []time.Duration) Latency {
	if len(samples) == 0 {
		return Latency{}
	}
	xs := make([]float64, len(samples))
	for i, s := range samples {
		xs[i] = float64(s)
	}
	slices.Sort(xs)

	q := func(p float64) time.Duration {
		return time.Duration(stat.Quantile(p, stat.Empirical, xs, nil))
	}
	return Latency{
		Count: len(xs),
		Mean:  time.Duration(stat.Mean(xs, nil)),
		P50:   q(0.50),
		P95:   q(0.95),
		P99:   q(0.99),
		Max:   time.Duration(xs[len(xs)-1]),
	}
}
