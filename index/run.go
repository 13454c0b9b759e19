// SPDX-License-Identifier: MIT

package index

import (
	"fmt"
	"time"

	"github.com/katalvlaran/treach/reach"
)

// Observer is called after every answered query.
type Observer func(q reach.Query, r reach.Result, took time.Duration)

// Run answers queries in order. On the first error it returns the results
// produced so far together with the error annotated with the query line.
func Run(ix Index, queries []reach.Query, observers ...Observer) ([]reach.Result, error) {
	results := make([]reach.Result, 0, len(queries))
	for i, q := range queries {
		start := time.Now()
		r, err := ix.Query(q.Source, q.Target, q.Window)
		took := time.Since(start)
		if err != nil {
			line := q.Line
			if line == 0 {
				line = i + 1
			}
			return results, fmt.Errorf("query %d (%d→%d %s): %w", line, q.Source, q.Target, q.Window, err)
		}
		results = append(results, r)
		for _, obs := range observers {
			obs(q, r, took)
		}
	}
	return results, nil
}

// Clock maps query windows given in input timestamps onto the ticks an
// index was built over, and ticks back to timestamps. *temporal.Graph
// implements it.
type Clock interface {
	Ticks(w reach.Window) reach.Window
	Time(tick int) int
}

// RunClocked is Run for queries whose windows are input timestamps.
// Windows go through clk.Ticks before querying; arrivals come back through
// clk.Time, and each result echoes its query's normalized window. Observers
// see the tick-level query and result.
func RunClocked(ix Index, clk Clock, queries []reach.Query, observers ...Observer) ([]reach.Result, error) {
	ticked := make([]reach.Query, len(queries))
	for i, q := range queries {
		q.Window = clk.Ticks(q.Window)
		ticked[i] = q
	}
	results, err := Run(ix, ticked, observers...)
	for i := range results {
		r := &results[i]
		w := queries[i].Window.Normalize()
		if r.Reachable {
			if r.Source == r.Target {
				r.Arrival = w.From
			} else {
				r.Arrival = clk.Time(r.Arrival)
			}
		}
		r.Window = w
	}
	return results, err
}
