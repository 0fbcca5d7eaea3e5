package pathfind

import "strings"

// Path is an ordered itinerary of airport codes. The zero Path is empty and
// means "no path".
type Path struct {
	airports []string
}

// NewPath wraps codes as a Path. The slice is copied.
func NewPath(codes ...string) Path {
	if len(codes) == 0 {
		return Path{}
	}

	return Path{airports: append([]string(nil), codes...)}
}

// Airports returns a copy of the codes from start to end.
func (p Path) Airports() []string {
	if len(p.airports) == 0 {
		return nil
	}

	return append([]string(nil), p.airports...)
}

// Len returns the number of airports on the path.
func (p Path) Len() int { return len(p.airports) }

// Empty reports whether the path holds no airports.
func (p Path) Empty() bool { return len(p.airports) == 0 }

// Hops returns the number of routes flown, 0 for an empty path.
func (p Path) Hops() int {
	if p.Empty() {
		return 0
	}

	return len(p.airports) - 1
}

// Stops returns Len()-2, the figure printed as "Number of stops".
// It is 0 for a direct flight and −1 for a single-airport path.
// Use Hops for an edge count.
func (p Path) Stops() int {
	return len(p.airports) - 2
}

// String joins the codes with single spaces.
func (p Path) String() string {
	return strings.Join(p.airports, " ")
}
