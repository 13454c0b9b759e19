// SPDX-License-Identifier: MIT

package reach

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
)

// Query is one (source, target, window) request read from a batch file.
// Line is the 1-based line number it came from (0 for programmatic queries).
type Query struct {
	Source int
	Target int
	Window Window
	Line   int
}

// QueryReadOptions controls ParseQueries.
type QueryReadOptions struct {
	// Policy decides what happens to lines that fail to parse.
	Policy MalformedPolicy
	// DefaultBound is the window end used by two-field records.
	DefaultBound int
	// Logger receives one warning per skipped record.
	Logger zerolog.Logger
}

// ParseQueries reads queries in the batch format documented in the package
// comment. It returns the parsed queries and the number of skipped records.
// Under Abort the first malformed record stops parsing with ErrMalformedInput.
func ParseQueries(r io.Reader, ro QueryReadOptions) ([]Query, int, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)

	var (
		queries []Query
		skipped int
		lineNo  int
	)
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if IsComment(line) {
			continue
		}
		q, err := parseQuery(line, ro.DefaultBound)
		if err != nil {
			if ro.Policy == Skip {
				skipped++
				ro.Logger.Warn().Int("line", lineNo).Err(err).Msg("skipping malformed query")
				continue
			}
			return queries, skipped, fmt.Errorf("query line %d: %w", lineNo, err)
		}
		q.Line = lineNo
		queries = append(queries, q)
	}
	if err := sc.Err(); err != nil {
		return queries, skipped, fmt.Errorf("reading queries: %w", err)
	}
	return queries, skipped, nil
}

func parseQuery(line string, defaultBound int) (Query, error) {
	vals, err := ParseRecord(line, 2, 4)
	if err != nil {
		return Query{}, err
	}
	q := Query{Source: vals[0], Target: vals[1]}
	switch len(vals) {
	case 2:
		q.Window = Upto(defaultBound)
	case 3:
		q.Window = Upto(vals[2])
	case 4:
		q.Window = Window{From: vals[2], To: vals[3]}
	}
	if q.Source < 0 || q.Target < 0 {
		return Query{}, fmt.Errorf("%w: negative vertex id", ErrMalformedInput)
	}
	return q, nil
}

// WriteResults writes one line per result, in order:
//
//	source target from to reachable arrival
//
// arrival is -1 for unreachable pairs.
func WriteResults(w io.Writer, results []Result) error {
	bw := bufio.NewWriter(w)
	for _, r := range results {
		arrival := -1
		if r.Reachable {
			arrival = r.Arrival
		}
		if _, err := fmt.Fprintf(bw, "%d %d %d %d %t %d\n",
			r.Source, r.Target, r.Window.From, r.Window.To, r.Reachable, arrival); err != nil {
			return err
		}
	}
	return bw.Flush()
}
