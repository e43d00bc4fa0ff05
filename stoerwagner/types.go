// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Result types, sentinel errors, functional options and the cluster table.

package stoerwagner

import (
	"cmp"
	"errors"
)

// ErrGraphTooSmall indicates a phase or search was started on fewer than two nodes.
var ErrGraphTooSmall = errors.New("stoerwagner: graph has fewer than 2 nodes")

// PhaseResult is the outcome of one maximum-adjacency phase.
type PhaseResult[K cmp.Ordered] struct {
	// CutWeight is the weight between Last and every other node (cut-of-phase).
	CutWeight int64

	// SecondLast is the node added to A immediately before Last.
	SecondLast K

	// Last is the final node added to A.
	Last K
}

// Result is the outcome of MinimumCut.
//
// PartitionSizeA + PartitionSizeB equals the original node count and both
// are at least 1. SideA and SideB hold the original labels of each side in
// ascending order.
type Result[K cmp.Ordered] struct {
	CutWeight      int64
	PartitionSizeA int
	PartitionSizeB int
	SideA          []K
	SideB          []K

	// Phases is the number of phases run (original node count - 1).
	Phases int
}

// Product returns PartitionSizeA * PartitionSizeB.
func (r Result[K]) Product() int {
	return r.PartitionSizeA * r.PartitionSizeB
}

// PhaseStats is passed to the phase hook after every phase, before contraction.
type PhaseStats[K cmp.Ordered] struct {
	Phase      int   // 1-based phase index
	NodeCount  int   // nodes in the graph when the phase ran
	CutWeight  int64 // cut-of-phase
	BestWeight int64 // best cut so far, including this phase
	SecondLast K
	Last       K
}

// Option configures MinimumCut.
type Option[K cmp.Ordered] func(*options[K])

type options[K cmp.Ordered] struct {
	start    K
	hasStart bool
	onPhase  func(PhaseStats[K])
}

// WithStart fixes the start node reused by every phase.
// By default the smallest label is used.
func WithStart[K cmp.Ordered](a K) Option[K] {
	return func(o *options[K]) {
		o.start = a
		o.hasStart = true
	}
}

// WithPhaseHook registers fn to observe every phase. A nil fn is ignored.
func WithPhaseHook[K cmp.Ordered](fn func(PhaseStats[K])) Option[K] {
	return func(o *options[K]) {
		if fn != nil {
			o.onPhase = fn
		}
	}
}

// clusterTable maps each surviving node to the original nodes folded into it.
// Every original node starts as a singleton; only contraction updates it.
type clusterTable[K cmp.Ordered] map[K][]K

func newClusterTable[K cmp.Ordered](nodes []K) clusterTable[K] {
	t := make(clusterTable[K], len(nodes))
	for _, v := range nodes {
		t[v] = []K{v}
	}

	return t
}

// absorb moves every member of from into into and drops from.
func (t clusterTable[K]) absorb(into, from K) {
	t[into] = append(t[into], t[from]...)
	delete(t, from)
}
