package bfs

import (
	"fmt"
	"slices"
)

// Result is the outcome of one walk.
type Result struct {
	Start   string            // root airport
	Order   []string          // visit sequence
	Depth   map[string]int    // hops from Start for every discovered airport
	Parent  map[string]string // predecessor of every discovered airport but Start
	Stopped bool              // the walk ended at its StopAt target
}

func newResult(start string, hint int) *Result {
	return &Result{
		Start:  start,
		Order:  make([]string, 0, hint),
		Depth:  make(map[string]int, hint),
		Parent: make(map[string]string, hint),
	}
}

// Discovered returns the number of distinct airports reached, including
// those not yet visited when an early stop occurred.
func (r *Result) Discovered() int {
	return len(r.Depth)
}

// PathTo follows parent links back from dest and returns the codes from
// Start to dest. It fails with ErrNoPath when dest was not discovered or
// the links do not lead back to Start.
func (r *Result) PathTo(dest string) ([]string, error) {
	hops, ok := r.Depth[dest]
	if !ok {
		return nil, fmt.Errorf("%w to %q", ErrNoPath, dest)
	}
	path := make([]string, 0, hops+1)
	cur := dest
	for {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	if cur != r.Start {
		return nil, fmt.Errorf("%w to %q", ErrNoPath, dest)
	}
	slices.Reverse(path)

	return path, nil
}
