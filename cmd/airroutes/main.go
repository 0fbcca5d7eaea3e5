// Command airroutes loads a flight-route dataset and answers fewest-hop
// itinerary queries interactively.
//
//	airroutes                       # prompt for two codes, print the path
//	airroutes connected             # report outgoing-reachability coverage
//	airroutes --data other.dat      # read another dataset
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
