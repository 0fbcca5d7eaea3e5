// Package airroutes answers two questions about a flight-route dataset:
// is every source airport reachable from one root, and what is the
// fewest-hop itinerary between two airports.
//
// The module is organized in small packages, leaves first:
//
//	core/         — directed route graph: airport → set of destinations
//	routes/       — route line parser (typed Record) and dataset loader
//	bfs/          — layer-by-layer breadth-first walker with visit callback, depth limit and early stop
//	connectivity/ — outgoing-reachability coverage over source airports
//	pathfind/     — shortest path with Hops() and the legacy Stops() count
//	driver/       — interactive prompt and result rendering
//	config/       — YAML configuration with validation
//	logging/      — slog logger construction
//	cmd/airroutes — cobra CLI
//
// Quick example:
//
//	g, _, _ := routes.LoadFile("routes.dat")
//	p, err := pathfind.ShortestPath(g, "AER", "SVO")
//	if err == nil {
//	    fmt.Println(p, p.Stops())
//	}
//
// An airport is a graph key only after it appears as the source of a route.
// Both queries depend on that rule; see the core package.
package airroutes
