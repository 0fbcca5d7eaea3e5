// Package core provides the in-memory route graph: a directed, unweighted
// adjacency structure mapping an airport code to the set of airport codes
// directly reachable from it.
//
// The graph G = (V,E) has a deliberately narrow shape:
//
//   - Directed only. A route A→B says nothing about B→A.
//   - Unweighted. Hop count is the only distance.
//   - Set semantics. Repeated routes between the same pair collapse into one
//     edge; AddEdge is idempotent.
//   - Source-keyed. An airport becomes a key only after it has been the
//     source of an accepted edge. Destination-only airports appear inside
//     destination sets but are never keys.
//
// The last rule is load-bearing: the connectivity package compares visit
// counts against the key count, and the pathfind package rejects endpoints
// that are not keys.
//
// Lifecycle:
//
//	g := core.NewGraph()
//	g.AddEdge("AER", "KZN")   // build phase
//	g.AddEdge("ASF", "KZN")
//	view := g.Adjacency()      // read phase, no mutation through the view
//
// Determinism:
//
//	Airports(), Destinations() and every View listing return codes sorted
//	lexicographically, so traversal order is reproducible across runs.
//
// Concurrency:
//
//	A single sync.RWMutex guards the adjacency map. Building is expected to
//	finish before querying starts.
package core
