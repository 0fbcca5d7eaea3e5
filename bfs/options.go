package bfs

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrStartVertexNotFound is returned when the start code is not a graph key.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNoPath is returned by PathTo when the destination was not reached.
	ErrNoPath = errors.New("bfs: no path")
)

// Option tunes one BFS call. Invalid values are reported by BFS as
// ErrOptionViolation.
type Option func(*settings)

type settings struct {
	ctx      context.Context
	onVisit  func(code string, depth int) error
	admit    func(from, to string) bool
	maxDepth int
	stop     string
	err      error
}

func newSettings(opts []Option) (settings, error) {
	s := settings{
		ctx:     context.Background(),
		onVisit: func(string, int) error { return nil },
		admit:   func(string, string) bool { return true },
	}
	for _, opt := range opts {
		opt(&s)
	}

	return s, s.err
}

func (s *settings) fail(format string, args ...any) {
	if s.err == nil {
		s.err = fmt.Errorf("%w: "+format, append([]any{ErrOptionViolation}, args...)...)
	}
}

// WithContext cancels the walk when ctx is done. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(s *settings) {
		if ctx != nil {
			s.ctx = ctx
		}
	}
}

// WithOnVisit calls fn for every visited airport with its depth. A non-nil
// return aborts the walk.
func WithOnVisit(fn func(code string, depth int) error) Option {
	return func(s *settings) {
		if fn != nil {
			s.onVisit = fn
		}
	}
}

// WithMaxDepth leaves airports farther than d hops undiscovered.
// d == 0 means no limit; d < 0 is invalid.
func WithMaxDepth(d int) Option {
	return func(s *settings) {
		if d < 0 {
			s.fail("MaxDepth cannot be negative (%d)", d)
			return
		}
		s.maxDepth = d
	}
}

// WithFilterNeighbor skips the route from→to whenever fn returns false.
func WithFilterNeighbor(fn func(from, to string) bool) Option {
	return func(s *settings) {
		if fn != nil {
			s.admit = fn
		}
	}
}

// WithStopAt ends the walk right after target is visited. The parent links
// recorded by then already describe a fewest-hop path to target.
func WithStopAt(target string) Option {
	return func(s *settings) {
		if target == "" {
			s.fail("empty stop target")
			return
		}
		s.stop = target
	}
}
