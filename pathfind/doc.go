// Package pathfind computes fewest-hop itineraries over a core.Graph.
//
// ShortestPath runs a breadth-first search from the start airport, records
// the predecessor of every newly discovered airport, stops once the end
// airport is visited and rebuilds the itinerary by walking predecessors
// back from the end.
//
// Both endpoints must be keys of the graph, that is, the source of at least
// one route. An end airport that only ever appears as a destination is
// reported as not found, even when a route leads to it.
//
// Path exposes two counts:
//
//	Hops()  = Len() - 1   routes flown
//	Stops() = Len() - 2   the legacy "Number of stops" figure, −1 for a
//	                      single-airport path
package pathfind
