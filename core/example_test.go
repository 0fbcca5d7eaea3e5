package core_test

import (
	"fmt"

	"github.com/katalvlaran/airroutes/core"
)

// ExampleGraph_AddEdge shows that repeated routes collapse and that
// destination-only airports never become keys.
func ExampleGraph_AddEdge() {
	g := core.NewGraph()
	g.AddEdge("AER", "KZN")
	g.AddEdge("AER", "KZN") // second carrier on the same route
	g.AddEdge("ASF", "KZN")

	fmt.Println(g.Airports())
	fmt.Println(g.RouteCount())
	fmt.Println(g.HasAirport("KZN"))
	// Output:
	// [AER ASF]
	// 2
	// false
}
