package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/airroutes/bfs"
	"github.com/katalvlaran/airroutes/core"
)

// ExampleBFS_shortestPathNetwork finds the fewest-hop itinerary between two
// airports when a long and a short chain of routes compete.
func ExampleBFS_shortestPathNetwork() {
	g := core.NewGraph()
	// Chain 1: LED→SVO→KZN→UFA→OVB (4 hops)
	g.AddEdge("LED", "SVO")
	g.AddEdge("SVO", "KZN")
	g.AddEdge("KZN", "UFA")
	g.AddEdge("UFA", "OVB")
	// Chain 2: LED→DME→OVB (2 hops)
	g.AddEdge("LED", "DME")
	g.AddEdge("DME", "OVB")

	res, err := bfs.BFS(g, "LED", bfs.WithStopAt("OVB"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	path, err := res.PathTo("OVB")
	if err != nil {
		fmt.Println("no path:", err)
		return
	}
	fmt.Println(path)
	// Output:
	// [LED DME OVB]
}

// ExampleBFS_depthLimitOnChain shows applying WithMaxDepth to a chain of routes.
func ExampleBFS_depthLimitOnChain() {
	g := core.NewGraph()
	for i := 0; i < 9; i++ {
		g.AddEdge(fmt.Sprintf("v%d", i), fmt.Sprintf("v%d", i+1))
	}
	res, err := bfs.BFS(g, "v0", bfs.WithMaxDepth(2))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order)
	// Output:
	// [v0 v1 v2]
}
