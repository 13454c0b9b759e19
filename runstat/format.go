// SPDX-License-Identifier: MIT

package runstat

import (
	"fmt"
	"strings"
	"time"
)

// FormatDuration renders d as its non-zero hour, minute, second and
// millisecond parts, e.g. "1min 2s 30ms". Durations under a millisecond are
// shown in microseconds.
func FormatDuration(d time.Duration) string {
	if d < 0 {
		return "-" + FormatDuration(-d)
	}
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d/time.Microsecond)
	}

	parts := make([]string, 0, 4)
	units := []struct {
		size time.Duration
		name string
	}{
		{time.Hour, "h"},
		{time.Minute, "min"},
		{time.Second, "s"},
		{time.Millisecond, "ms"},
	}
	for _, u := range units {
		if k := d / u.size; k > 0 {
			parts = append(parts, fmt.Sprintf("%d%s", k, u.name))
			d -= k * u.size
		}
	}
	return strings.Join(parts, " ")
}

// FormatBytes renders b with binary prefixes, e.g. "1.50 KiB".
func FormatBytes(b int64) string {
	const unit = 1024
	if b < unit {
		return fmt.Sprintf("%d B", b)
	}
	div, exp := int64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.2f %ciB", float64(b)/float64(div), "KMGTPE"[exp])
}
