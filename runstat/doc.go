// SPDX-License-Identifier: MIT

// Package runstat holds the run-level bookkeeping shared by the driver:
// human-readable durations and byte counts, per-phase timings exported as
// Prometheus gauges on a private registry, query latency statistics and the
// YAML run report.
//
// Nothing here is needed to answer queries; the indexes never import it.
package runstat
