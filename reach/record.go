// SPDX-License-Identifier: MIT

package reach

import (
	"fmt"
	"strconv"
	"strings"
)

// IsComment reports whether a trimmed line carries no record.
func IsComment(line string) bool {
	return line == "" || line[0] == '#' || line[0] == '%'
}

// ParseRecord splits a whitespace-separated record into integers and checks
// that it has between min and max fields. Errors wrap ErrMalformedInput.
func ParseRecord(line string, min, max int) ([]int, error) {
	fields := strings.Fields(line)
	if len(fields) < min || len(fields) > max {
		return nil, fmt.Errorf("%w: want %d..%d fields, got %d", ErrMalformedInput, min, max, len(fields))
	}
	out := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%w: field %d %q is not an integer", ErrMalformedInput, i+1, f)
		}
		out[i] = v
	}
	return out, nil
}
