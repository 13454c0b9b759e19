// SPDX-License-Identifier: MIT

// Package builder provides deterministic generators of temporal edge lists
// for tests, benchmarks and the `treach gen` command.
//
// The package offers the following key components:
//
//   - Orchestration:
//     - Constructor:  a closure appending edges to an EdgeList.
//     - BuildEdges:   resolves options, runs constructors in order.
//     - BuildGraph:   BuildEdges followed by temporal.FromEdges.
//   - Topologies:
//     - RandomTemporal(n, m, tmax): m edges, uniform endpoints and timestamps.
//     - RandomSparse(n, p, tmax):   each ordered pair with probability p.
//     - Path(n):                    0→1→…→n-1 at increasing timestamps.
//     - Star(n):                    hub 0 exchanging edges with each leaf.
//     - Burst(n, t):                a chain whose edges all share timestamp t.
//   - Options: WithSeed, WithRand, WithStartTime, WithTimeStep, WithVertexOffset.
//
// Guarantees:
//
//   - Determinism: equal options, seed and constructor order give equal lists.
//   - Validation failures return sentinel errors; only option constructors
//     panic, on meaningless arguments.
package builder
