package gridgraph_test

import (
	"fmt"

	"github.com/katalvlaran/graphy/gridgraph"
)

// ExampleNewTopology lists the candidate edges of a 2×2 grid:
//
//	0───1
//	│   │
//	2───3
func ExampleNewTopology() {
	topo, err := gridgraph.NewTopology(4)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(topo.CandidateEdges())
	// Output: [{0 1} {0 2} {1 3} {2 3}]
}
