// Package connectivity reports outgoing-reachability coverage over the
// source airports of a core.Graph.
//
// This is not general graph connectivity. A breadth-first walk starts at one
// root key and follows outgoing routes only; the graph counts as covered
// when the number of distinct airports the walk discovers equals the number
// of keys. Airports that only ever appear as destinations are not keys, so
// they never enter the key count, although they are counted when visited.
// Consequences worth knowing:
//
//   - {A→B, B→A} is covered: two keys, two airports visited.
//   - {A→B} is not covered: one key, two airports visited.
//   - An inbound-only airport that nothing reaches is invisible.
//
// Making this undirected would change observable results, so it is kept as is.
package connectivity

import (
	"github.com/katalvlaran/airroutes/bfs"
	"github.com/katalvlaran/airroutes/core"
)

// Report describes one coverage check.
type Report struct {
	Root      string   // key the walk started from; empty for an empty graph
	Sources   int      // number of keys
	Visited   int      // distinct airports discovered from Root
	Unreached []string // keys not discovered from Root, sorted
	Covered   bool     // Sources == 0 || Visited == Sources
}

// Root returns the key a coverage walk starts from: the lexicographically
// smallest key. ok is false for an empty graph.
func Root(g *core.Graph) (root string, ok bool) {
	keys := g.Airports()
	if len(keys) == 0 {
		return "", false
	}

	return keys[0], true
}

// Check walks g from Root and returns the full report.
func Check(g *core.Graph) Report {
	root, ok := Root(g)
	if !ok {
		return Report{Covered: true}
	}
	rep := Report{Root: root, Sources: g.AirportCount()}
	seen := make(map[string]struct{}, rep.Sources)
	_, err := bfs.BFS(g, root, bfs.WithOnVisit(func(code string, _ int) error {
		seen[code] = struct{}{}
		return nil
	}))
	if err != nil {
		return rep
	}
	rep.Visited = len(seen)
	for _, key := range g.Airports() {
		if _, ok := seen[key]; !ok {
			rep.Unreached = append(rep.Unreached, key)
		}
	}
	rep.Covered = rep.Visited == rep.Sources

	return rep
}

// IsConnected reports whether every airport discovered from Root matches the
// key count one to one. An empty graph is connected.
func IsConnected(g *core.Graph) bool {
	return Check(g).Covered
}
