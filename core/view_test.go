package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/airroutes/core"
)

func TestView_ReadOnlyCopies(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge("A", "B")
	g.AddEdge("A", "C")
	v := g.Adjacency()

	dst := v.Destinations("A")
	dst[0] = "MUTATED"
	assert.Equal(t, []string{"B", "C"}, v.Destinations("A"), "returned slice must be a copy")

	keys := v.Keys()
	keys[0] = "MUTATED"
	assert.True(t, v.Has("A"))
	assert.False(t, v.Has("MUTATED"))
}

func TestView_Queries(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge("A", "B")
	g.AddEdge("C", "D")
	v := g.Adjacency()

	assert.Equal(t, 2, v.Len())
	assert.Equal(t, []string{"A", "C"}, v.Keys())
	assert.True(t, v.Contains("A", "B"))
	assert.False(t, v.Contains("B", "A"))
	assert.Nil(t, v.Destinations("B"))
}

func TestView_Range(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge("B", "C")
	g.AddEdge("A", "B")
	g.AddEdge("A", "C")

	var seen []string
	g.Adjacency().Range(func(src string, dst []string) bool {
		seen = append(seen, src)
		return true
	})
	assert.Equal(t, []string{"A", "B"}, seen)

	calls := 0
	g.Adjacency().Range(func(string, []string) bool {
		calls++
		return false
	})
	assert.Equal(t, 1, calls, "Range must stop when fn returns false")
}

func TestView_Zero(t *testing.T) {
	var v core.View
	assert.Zero(t, v.Len())
	assert.False(t, v.Has("A"))
	assert.Nil(t, v.Keys())
	assert.Nil(t, v.Destinations("A"))
	assert.False(t, v.Contains("A", "B"))
	v.Range(func(string, []string) bool {
		t.Fatal("zero view must not call fn")
		return false
	})
}
