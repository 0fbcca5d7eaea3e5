// File: methods.go
// Role: Edge insertion and read-only queries over the route graph.
// Determinism:
//   - Airports() and Destinations() return codes sorted lex asc.
// Concurrency:
//   - AddEdge takes the write lock; every query takes the read lock.

package core

import "sort"

// AddEdge records that at least one flight departs source and arrives at
// destination. It creates the destination set for source when source is new.
//
// Behavior highlights:
//   - Idempotent: a repeated (source, destination) pair changes nothing.
//   - Only source becomes a key; destination stays a set member.
//   - Empty codes are ignored. Filtering happens upstream, so AddEdge never fails.
//
// Returns:
//   - bool: true if the pair was not present before this call.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(source, destination string) bool {
	if source == "" || destination == "" {
		return false
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	set, ok := g.adjacency[source]
	if !ok {
		set = make(destinations)
		g.adjacency[source] = set
	}
	if _, dup := set[destination]; dup {
		return false
	}
	set[destination] = struct{}{}
	g.routes++

	return true
}

// HasAirport reports whether code is a key, i.e. the source of some route.
// Complexity: O(1).
func (g *Graph) HasAirport(code string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adjacency[code]

	return ok
}

// HasRoute reports whether the direct route source→destination exists.
// Complexity: O(1).
func (g *Graph) HasRoute(source, destination string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adjacency[source][destination]

	return ok
}

// Airports returns every key (source airport) sorted lexicographically.
// Complexity: O(V log V).
func (g *Graph) Airports() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return sortedKeys(g.adjacency)
}

// AirportCount returns the number of keys.
// Destination-only airports are not counted.
func (g *Graph) AirportCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency)
}

// RouteCount returns the number of distinct directed edges.
func (g *Graph) RouteCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.routes
}

// OutDegree returns the size of code's destination set, 0 for non-keys.
func (g *Graph) OutDegree(code string) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency[code])
}

// Destinations returns a sorted copy of the destination set of code.
// The second result is false when code is not a key.
//
// Complexity: O(d log d) where d = OutDegree(code).
func (g *Graph) Destinations(code string) ([]string, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	set, ok := g.adjacency[code]
	if !ok {
		return nil, false
	}

	return sortedKeys(set), true
}

// sortedKeys returns the keys of any string-keyed map in ascending order.
func sortedKeys[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}
