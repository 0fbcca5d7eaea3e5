// File: view.go
// Role: Read-only adjacency view handed to traversal code.
// Determinism:
//   - Keys() and Destinations() are sorted lex asc; Range visits keys in that order.
// AI-HINT (file):
//   - View never exposes the underlying maps; every slice it returns is a fresh copy.

package core

// View is a read-only window onto a Graph's adjacency mapping.
// The zero View behaves like an empty graph.
type View struct {
	g *Graph
}

// Adjacency returns a read-only view of the full source→destinations mapping.
func (g *Graph) Adjacency() View {
	return View{g: g}
}

// Len returns the number of keys.
func (v View) Len() int {
	if v.g == nil {
		return 0
	}

	return v.g.AirportCount()
}

// Has reports whether code is a key.
func (v View) Has(code string) bool {
	return v.g != nil && v.g.HasAirport(code)
}

// Keys returns all keys sorted lexicographically.
func (v View) Keys() []string {
	if v.g == nil {
		return nil
	}

	return v.g.Airports()
}

// Destinations returns a sorted copy of code's destination set, or nil when
// code is not a key.
func (v View) Destinations(code string) []string {
	if v.g == nil {
		return nil
	}
	out, _ := v.g.Destinations(code)

	return out
}

// Contains reports whether source→destination is an edge.
func (v View) Contains(source, destination string) bool {
	return v.g != nil && v.g.HasRoute(source, destination)
}

// Range calls fn for each key and its sorted destinations, in key order,
// stopping early when fn returns false.
//
// The graph lock is not held while fn runs.
func (v View) Range(fn func(source string, destinations []string) bool) {
	if v.g == nil {
		return
	}
	var dst []string
	for _, src := range v.Keys() {
		dst = v.Destinations(src)
		if !fn(src, dst) {
			return
		}
	}
}
