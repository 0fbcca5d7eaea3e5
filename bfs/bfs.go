package bfs

import (
	"fmt"

	"github.com/katalvlaran/airroutes/core"
)

// BFS walks g breadth-first from start along outgoing routes.
//
// The walk proceeds one layer at a time: every airport at depth d is
// visited, in discovery order, before any airport at depth d+1. That is the
// same order a FIFO queue produces. start must be a key of g; airports that
// are only destinations are visited but have nothing to expand.
//
// Errors: ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation, the
// context error on cancellation, or a wrapped OnVisit error. The partial
// Result is returned alongside cancellation and hook errors.
func BFS(g *core.Graph, start string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	s, err := newSettings(opts)
	if err != nil {
		return nil, err
	}
	if !g.HasAirport(start) {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, start)
	}

	res := newResult(start, g.AirportCount())
	frontier := []string{start}
	res.Depth[start] = 0

	for depth := 0; len(frontier) > 0; depth++ {
		var next []string
		for _, code := range frontier {
			if err := s.ctx.Err(); err != nil {
				return res, err
			}
			res.Order = append(res.Order, code)
			if err := s.onVisit(code, depth); err != nil {
				return res, fmt.Errorf("bfs: OnVisit error at %q: %w", code, err)
			}
			if s.stop != "" && code == s.stop {
				res.Stopped = true
				return res, nil
			}
			if s.maxDepth > 0 && depth+1 > s.maxDepth {
				continue
			}
			next = expand(g, s, res, code, depth+1, next)
		}
		frontier = next
	}

	return res, nil
}

// expand appends to next every undiscovered destination of code that the
// filter admits, recording its depth and parent.
func expand(g *core.Graph, s settings, res *Result, code string, depth int, next []string) []string {
	dests, ok := g.Destinations(code)
	if !ok {
		return next
	}
	for _, d := range dests {
		if _, seen := res.Depth[d]; seen || !s.admit(code, d) {
			continue
		}
		res.Depth[d] = depth
		res.Parent[d] = code
		next = append(next, d)
	}

	return next
}
