// Package routes parses flight-route records and loads them into a core.Graph.
//
// Each input line is one route, comma separated, no quoting:
//
//	airline,airline ID,source,source ID,destination,destination ID,codeshare,stops,equipment
//
// Field-index table:
//
//	0 Airline               1 AirlineID
//	2 SourceAirport         3 SourceAirportID
//	4 DestinationAirport    5 DestinationAirportID
//	6 Codeshare             7 Stops
//	8 Equipment
//
// Only SourceAirport and DestinationAirport feed the graph. Fields past the end
// of a short line are empty. A literal comma inside a value shifts every
// following field of that line; no escaping is recognized.
//
// Default parsing (ParseLine) silently drops lines whose source or destination
// is empty. ParseLineStrict is the stricter alternative and reports why a line
// was rejected. Load counts rejected lines either way.
package routes
