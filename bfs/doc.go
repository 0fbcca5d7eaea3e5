// Package bfs provides breadth-first search over a core.Graph,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// What
//
//   - Explore airports in non-decreasing hop distance from a start airport.
//   - Follow outgoing routes only; destination-only airports are leaves.
//   - Walks one layer at a time; each layer is visited in discovery order.
//   - Returns a Result with the visit Order, a Depth per discovered airport
//     and the Parent links of the BFS tree.
//   - WithOnVisit observes every visited airport and may abort the walk.
//   - WithFilterNeighbor drops individual routes.
//   - WithMaxDepth bounds the hop count (0 means no limit).
//   - WithStopAt ends the walk once a target has been visited.
//
// Determinism
//
//	core.Graph returns destination sets sorted lexicographically, and each
//	layer is extended in that order, so the visit sequence is reproducible.
//
// Complexity (V = airports, E = routes)
//
//   - Time:   O(V + E log d) (destination sets are sorted on read)
//   - Memory: O(V)           (frontier, Depth map, Parent map)
//
// Usage
//
//	res, err := bfs.BFS(g, "AER", bfs.WithStopAt("KZN"))
//	if err != nil {
//	    // ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation, or OnVisit errors
//	}
//	path, err := res.PathTo("KZN") // ErrNoPath when KZN was not reached
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start airport is not a key.
//   - ErrOptionViolation      if invalid Option (negative MaxDepth, empty StopAt).
//   - ErrNoPath               from PathTo when the destination was not reached.
//   - Wrapped errors returned by an OnVisit callback.
package bfs
