// Package core provides the thread-safe in-memory Graph contract consumed by
// the algorithm packages (dijkstra, prim_kruskal): construction via NewGraph
// plus the functional options below, vertex/edge insertion, and read-only
// iteration. It does not attempt to be a general-purpose graph container —
// removal, cloning, filtering, and view-building are out of scope here; add
// them back only if an algorithm package actually needs them.
//
// Configuration Options (GraphOption):
//
//	– WithDirected(defaultDirected bool)
//	    Sets the default orientation of new edges.
//
//	– WithMixedEdges()
//	    Allows per-edge overrides via EdgeOption.WithEdgeDirected().
//	    Without it, any override returns ErrMixedEdgesNotAllowed.
//
//	– WithWeighted()
//	    Permits non-zero weights globally; otherwise AddEdge(weight != 0) returns ErrBadWeight.
//
//	– WithMultiEdges()
//	    Allows multiple parallel edges between the same endpoints.
//
//	– WithLoops()
//	    Permits self-loops (from == to); otherwise AddEdge(v, v) returns ErrLoopNotAllowed.
//
// EdgeOptions:
//
//	– WithEdgeDirected(directed bool)
//	    Overrides the graph's default direction for one edge (mixed mode only).
//
// Methods:
//
//	AddVertex(id string) error                                           // O(1)
//	HasVertex(id string) bool                                            // O(1)
//	AddEdge(from, to string, weight int64, opts ...EdgeOption) (string, error) // O(1) amortized
//	Neighbors(id string) ([]*Edge, error)                                // O(d log d)
//	Vertices() []string                                                  // O(V log V), sorted
//	Edges() []*Edge                                                      // O(E log E), sorted by ID
//	Weighted() bool, Directed() bool, HasDirectedEdges() bool            // O(1)/O(E)
//
// Edge struct fields:
//
//	ID       string // "e1", "e2", ...
//	From     string
//	To       string
//	Weight   int64
//	Directed bool
package core
