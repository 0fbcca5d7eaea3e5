package pathfind_test

import (
	"fmt"

	"github.com/katalvlaran/airroutes/core"
	"github.com/katalvlaran/airroutes/pathfind"
)

func ExampleShortestPath() {
	g := core.NewGraph()
	g.AddEdge("AER", "KZN")
	g.AddEdge("KZN", "SVO")
	g.AddEdge("SVO", "AER")

	p, err := pathfind.ShortestPath(g, "AER", "SVO")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(p)
	fmt.Println("hops:", p.Hops(), "stops:", p.Stops())
	// Output:
	// AER KZN SVO
	// hops: 2 stops: 1
}
