// SPDX-License-Identifier: MIT
// Package: treach/builder
//
// api.go - public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildEdges(bopts, cons...). Resolves cfg, runs cons in order.
//   - Every factory returns a Constructor; implementations live in impl_*.go.
//   - Determinism: same options/seed and constructor order ⇒ identical edge lists.
//   - Safety: constructors never panic; they return sentinel errors.

package builder

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/treach/temporal"
)

// EdgeList accumulates generated edges in emission order.
type EdgeList []temporal.Edge

// add appends src→dst at t.
func (el *EdgeList) add(src, dst, t int) {
	*el = append(*el, temporal.Edge{Src: src, Dst: dst, T: t})
}

// Constructor appends edges to el using the resolved builderConfig.
// Constructors validate parameters before emitting anything.
type Constructor func(el *EdgeList, cfg builderConfig) error

// BuildEdges resolves bopts and applies all constructors in order.
// The first constructor error is wrapped with "BuildEdges: %w".
func BuildEdges(bopts []BuilderOption, cons ...Constructor) (EdgeList, error) {
	cfg := newBuilderConfig(bopts...)
	var el EdgeList
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildEdges: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(&el, cfg); err != nil {
			return nil, fmt.Errorf("BuildEdges: %w", err)
		}
	}
	return el, nil
}

// BuildGraph runs BuildEdges and loads the result into a temporal.Graph.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*temporal.Graph, error) {
	el, err := BuildEdges(bopts, cons...)
	if err != nil {
		return nil, err
	}
	g, err := temporal.FromEdges(el...)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %v: %w", err, ErrConstructFailed)
	}
	return g, nil
}

// MaxTime returns the largest timestamp in el, 0 when empty.
func (el EdgeList) MaxTime() int {
	m := 0
	for _, e := range el {
		m = max(m, e.T)
	}
	return m
}

// Split partitions el into the edges at or before t and those after it,
// preserving order. It is the usual way to stage an Append experiment.
func (el EdgeList) Split(t int) (head, tail EdgeList) {
	for _, e := range el {
		if e.T <= t {
			head = append(head, e)
		} else {
			tail = append(tail, e)
		}
	}
	return head, tail
}

// WriteTo writes el as "src dst t" lines, the format temporal.Build reads.
func (el EdgeList) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var n int64
	for _, e := range el {
		k, err := fmt.Fprintf(bw, "%d %d %d\n", e.Src, e.Dst, e.T)
		n += int64(k)
		if err != nil {
			return n, err
		}
	}
	return n, bw.Flush()
}
