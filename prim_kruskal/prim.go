// Package prim_kruskal provides an implementation of Prim’s Minimum Spanning Tree (MST) algorithm.
// It assumes an undirected, weighted *core.Graph and grows the MST from a specified root vertex using
// a d-ary heap with genuine decrease-key (package dheap), rather than a lazy re-push heap.
package prim_kruskal

import (
	"github.com/katalvlaran/selfadjust/core"
	"github.com/katalvlaran/selfadjust/dheap"
)

// primHeapD is the branching factor used for the candidate-vertex heap. 4 keeps
// ChangeKey and DeleteMin shallow without the fan-out of a flat list.
const primHeapD = 4

// Prim computes the Minimum Spanning Tree (MST) of an undirected, weighted graph
// by growing outwards from a specified root vertex using a d-ary heap (package dheap).
//
// Error Conditions:
//   - ErrInvalidGraph      : if graph is nil, or graph.Directed() == true, or graph.Weighted() == false.
//   - ErrEmptyRoot         : if the provided root string is empty.
//   - core.ErrVertexNotFound: if the root vertex does not exist in the graph.
//   - ErrDisconnected      : if |V| == 0 (empty graph) or |V| > 1 but the graph is not fully connected.
//
// Steps:
//  1. Validate: graph != nil, graph.Weighted(), !graph.Directed() and !graph.HasDirectedEdges().
//  2. Retrieve sorted vertex IDs; if len(vertices)==0 → ErrDisconnected.
//     If len(vertices)==1, check that root matches the single vertex → return trivial empty MST.
//  3. Validate root: root != "", graph.HasVertex(root).
//  4. Map vertices to 1..|V| and build a dheap.HeapD candidate-vertex heap.
//     Insert root's neighbors under their edge weight, remembering each
//     vertex's cheapest connecting edge.
//  5. While the heap is non-empty and MST has < |V|-1 edges:
//     a. DeleteMin the cheapest candidate vertex v.
//     b. Add its remembered cheapest edge to the MST, accumulate weight.
//     c. For each edge from v to a neighbor w: if w is a fresh candidate,
//     Insert it; if w is already a candidate and this edge is cheaper,
//     ChangeKey it down (the decrease-key step).
//  6. If MST size < |V|-1 after loop → ErrDisconnected.
//  7. Return MST edges and total weight.
//
// Complexity: O(E log V) time, O(V + E) memory.
func Prim(graph *core.Graph, root string) ([]core.Edge, int64, error) {
	// 1. Validate that graph is non-nil, weighted, undirected and have no direct edges.
	if graph == nil || !graph.Weighted() || graph.Directed() || graph.HasDirectedEdges() {
		// Return ErrInvalidGraph for any invalid condition.
		return nil, 0, ErrInvalidGraph
	}

	// 2. Retrieve all vertex IDs in sorted order (core.Graph.Vertices() returns sorted).
	vertices := graph.Vertices()
	// If no vertices, we cannot form any MST: treat as disconnected.
	if len(vertices) == 0 {
		return nil, 0, ErrDisconnected
	}
	// If exactly one vertex, MST is trivially empty (no edges) if root matches that vertex.
	if len(vertices) == 1 {
		if vertices[0] != root {
			// If the single vertex does not match the requested root, that root doesn't exist.
			return nil, 0, core.ErrVertexNotFound
		}

		// Single‐vertex MST: empty edge list, zero total weight, no error.
		return []core.Edge{}, 0, nil
	}

	// 3. Validate root is non-empty and actually exists in the graph.
	if root == "" {
		return nil, 0, ErrEmptyRoot
	}
	if !graph.HasVertex(root) {
		return nil, 0, core.ErrVertexNotFound
	}

	// 4. Map vertices to a dense 1..n index range and prepare tree/heap state.
	n := len(vertices) // total number of vertices
	idx := make(map[string]int, n)
	for i, vid := range vertices {
		idx[vid] = i + 1
	}
	inTree := make([]bool, n+1)
	cheapEdge := make([]*core.Edge, n+1) // cheapEdge[i]: best known edge connecting candidate i to the tree
	h := dheap.New(n, primHeapD)
	mst := make([]core.Edge, 0, n-1)
	var totalWeight int64 // sum of weights in MST

	// 4a. Mark root as in-tree and offer all its neighbors as candidates.
	rootIdx := idx[root]
	inTree[rootIdx] = true
	neighbors, err := graph.Neighbors(root)
	if err != nil {
		return nil, 0, err
	}
	for _, e := range neighbors {
		vi := idx[otherEnd(e, root)]
		if inTree[vi] {
			continue
		}
		if h.Member(vi) {
			if e.Weight < h.Key(vi) {
				h.ChangeKey(vi, e.Weight)
				cheapEdge[vi] = e
			}
		} else {
			h.Insert(vi, e.Weight)
			cheapEdge[vi] = e
		}
	}

	// 5. Main loop: extract the cheapest candidate and expand the tree until
	//    we have n-1 edges.
	for !h.Empty() && len(mst) < n-1 {
		vi := h.DeleteMin()
		e := cheapEdge[vi]
		// 5a. Include the remembered cheapest edge reaching vi in the MST.
		inTree[vi] = true
		mst = append(mst, *e)
		totalWeight += e.Weight

		// 5b. Relax edges from the newly added vertex: offer fresh
		//     candidates, decrease-key any candidate reached more cheaply.
		from := vertices[vi-1]
		nextNeighbors, err := graph.Neighbors(from)
		if err != nil {
			return nil, 0, err
		}
		for _, ne := range nextNeighbors {
			wi := idx[otherEnd(ne, from)]
			if inTree[wi] {
				continue
			}
			if h.Member(wi) {
				if ne.Weight < h.Key(wi) {
					h.ChangeKey(wi, ne.Weight)
					cheapEdge[wi] = ne
				}
			} else {
				h.Insert(wi, ne.Weight)
				cheapEdge[wi] = ne
			}
		}
	}

	// 6. If we did not collect exactly n-1 edges, the graph must be disconnected.
	if len(mst) < n-1 {
		return nil, 0, ErrDisconnected
	}

	// 7. Return the completed MST and its total weight.
	return mst, totalWeight, nil
}

// otherEnd returns the endpoint of e that is not from. core.Graph mirrors
// undirected edges into both endpoints' adjacency lists without swapping
// From/To, so From itself may equal the vertex queried for its neighbors.
func otherEnd(e *core.Edge, from string) string {
	if e.From == from {
		return e.To
	}

	return e.From
}
