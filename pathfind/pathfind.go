package pathfind

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/airroutes/bfs"
	"github.com/katalvlaran/airroutes/core"
)

// Sentinel errors for ShortestPath.
var (
	// ErrStartNotFound indicates the start airport is not a graph key.
	ErrStartNotFound = errors.New("pathfind: start airport not found in graph")

	// ErrEndNotFound indicates the end airport is not a graph key.
	ErrEndNotFound = errors.New("pathfind: end airport not found in graph")

	// ErrNoPath indicates both airports exist but no directed route chain links them.
	ErrNoPath = errors.New("pathfind: no path")
)

// Option narrows the itineraries ShortestPath may return.
type Option func(*query)

type query struct {
	maxHops int
	avoid   map[string]bool
}

// WithMaxHops rejects itineraries longer than n routes. 0 means no limit;
// a negative n makes ShortestPath fail with bfs.ErrOptionViolation.
func WithMaxHops(n int) Option {
	return func(q *query) { q.maxHops = n }
}

// WithAvoid forbids the given airports as layovers. Start and end are
// never treated as avoided.
func WithAvoid(codes ...string) Option {
	return func(q *query) {
		if q.avoid == nil {
			q.avoid = make(map[string]bool, len(codes))
		}
		for _, c := range codes {
			q.avoid[c] = true
		}
	}
}

// ShortestPath returns a minimum-hop path from start to end.
//
// Errors:
//   - ErrStartNotFound, ErrEndNotFound: an endpoint is not a key. Both
//     endpoints are checked; when both are missing the error matches both.
//   - ErrNoPath: end is not reachable from start under the given options.
//
// The returned Path is empty whenever err != nil. start == end yields [start].
func ShortestPath(g *core.Graph, start, end string, opts ...Option) (Path, error) {
	return ShortestPathContext(context.Background(), g, start, end, opts...)
}

// ShortestPathContext is ShortestPath with cancellation.
func ShortestPathContext(ctx context.Context, g *core.Graph, start, end string, opts ...Option) (Path, error) {
	if err := checkEndpoints(g, start, end); err != nil {
		return Path{}, err
	}
	var q query
	for _, opt := range opts {
		opt(&q)
	}

	walk := []bfs.Option{
		bfs.WithContext(ctx),
		bfs.WithStopAt(end),
		bfs.WithMaxDepth(q.maxHops),
	}
	if len(q.avoid) > 0 {
		walk = append(walk, bfs.WithFilterNeighbor(func(_, next string) bool {
			return next == end || !q.avoid[next]
		}))
	}

	res, err := bfs.BFS(g, start, walk...)
	if err != nil {
		return Path{}, fmt.Errorf("pathfind: %s to %s: %w", start, end, err)
	}
	codes, err := res.PathTo(end)
	if err != nil {
		return Path{}, fmt.Errorf("%w from %q to %q", ErrNoPath, start, end)
	}

	return Path{airports: codes}, nil
}

// checkEndpoints reports every endpoint that is not a key of g.
func checkEndpoints(g *core.Graph, start, end string) error {
	var errs []error
	if g == nil || !g.HasAirport(start) {
		errs = append(errs, fmt.Errorf("%w: %q", ErrStartNotFound, start))
	}
	if g == nil || !g.HasAirport(end) {
		errs = append(errs, fmt.Errorf("%w: %q", ErrEndNotFound, end))
	}

	return errors.Join(errs...)
}
