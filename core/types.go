// File: types.go
// Role: Graph type, constructor and destination-set representation.
// Concurrency:
//   - mu guards adjacency and routes.

package core

import "sync"

// destinations is the set of airport codes reachable in one hop.
type destinations map[string]struct{}

// Graph is the directed route graph.
//
// adjacency[source][destination] = struct{}{}
// An entry in adjacency exists only for codes seen as a route source.
type Graph struct {
	mu sync.RWMutex // guards adjacency and routes

	adjacency map[string]destinations
	routes    int // number of distinct (source, destination) pairs
}

// NewGraph creates an empty route graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{adjacency: make(map[string]destinations)}
}
