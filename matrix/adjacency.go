// SPDX-License-Identifier: MIT
// Package matrix - adjacency builder from edge-list observations.
//
// Deliverables:
//   1) Undirected mirroring: edge {u,v} sets both [u,v] and [v,u] to 1.
//   2) Self-loops are rejected (simple graphs keep a zero diagonal).
//   3) Parallel edges collapse into a single 1 (binary adjacency).
//   4) Deterministic vertex order: lexicographic by VertexID, never map order.

package matrix

import (
	"fmt"
	"slices"
)

const ctxFromEdges = "AdjacencyFromEdges"

// AdjacencyFromEdges builds an n×n binary, symmetric, zero-diagonal adjacency matrix
// from an undirected edge list.
//
// Implementation:
//   - Stage 1: resolve the vertex set. A non-empty `vertices` fixes it (isolated vertices
//     included); otherwise it is the union of all edge endpoints.
//   - Stage 2: sort + dedupe ids lexicographically and build the id→index table.
//   - Stage 3: write 1 into both mirrored cells for every edge.
//
// Returns:
//   - *Dense: the adjacency matrix (passes ValidateAdjacency by construction).
//   - []VertexID: the row/column order used.
//
// Errors:
//   - ErrInvalidDimensions when the vertex set is empty.
//   - ErrUnknownVertex when an endpoint is missing from an explicit vertex list.
//   - ErrSelfLoop for an edge (u,u).
//
// Determinism:
//   - Identical (edges, vertices) produce identical matrices regardless of edge order.
//
// Complexity:
//   - Time O(V log V + E), Space O(V² + V).
func AdjacencyFromEdges(edges []Edge, vertices ...VertexID) (*Dense, []VertexID, error) {
	explicit := len(vertices) > 0
	ids := make([]VertexID, 0, len(vertices)+2*len(edges))
	if explicit {
		ids = append(ids, vertices...)
	} else {
		for _, e := range edges {
			ids = append(ids, e.From, e.To)
		}
	}
	slices.Sort(ids)
	ids = slices.Compact(ids)
	if len(ids) == 0 {
		return nil, nil, fmt.Errorf("%s: empty vertex set: %w", ctxFromEdges, ErrInvalidDimensions)
	}

	index := make(map[VertexID]int, len(ids))
	for i, id := range ids {
		index[id] = i
	}
	n := len(ids)
	adj, err := NewDense(n, n)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", ctxFromEdges, err)
	}

	var u, v int
	var ok bool
	for k, e := range edges {
		if e.From == e.To {
			return nil, nil, fmt.Errorf("%s: edge %d (%q,%q): %w", ctxFromEdges, k, e.From, e.To, ErrSelfLoop)
		}
		if u, ok = index[e.From]; !ok {
			return nil, nil, fmt.Errorf("%s: edge %d: %q: %w", ctxFromEdges, k, e.From, ErrUnknownVertex)
		}
		if v, ok = index[e.To]; !ok {
			return nil, nil, fmt.Errorf("%s: edge %d: %q: %w", ctxFromEdges, k, e.To, ErrUnknownVertex)
		}
		adj.data[u*n+v] = edgePresent
		adj.data[v*n+u] = edgePresent
	}

	return adj, ids, nil
}
