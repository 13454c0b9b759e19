// SPDX-License-Identifier: MIT

package online

import "errors"

// ErrGraphNil is returned when a nil graph is passed to Search or Construct.
var ErrGraphNil = errors.New("online: graph is nil")

// arrivalItem pairs a vertex with the time it was reached.
type arrivalItem struct {
	v       int
	arrival int
}

// arrivalPQ is a min-heap of arrivalItem ordered by arrival ascending.
// Stale entries are skipped when popped (lazy decrease-key).
type arrivalPQ []arrivalItem

func (pq arrivalPQ) Len() int           { return len(pq) }
func (pq arrivalPQ) Less(i, j int) bool { return pq[i].arrival < pq[j].arrival }
func (pq arrivalPQ) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }

func (pq *arrivalPQ) Push(x any) { *pq = append(*pq, x.(arrivalItem)) }

func (pq *arrivalPQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
