package flow_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/graphy/flow"
	"github.com/katalvlaran/graphy/network"
)

// ExampleMinCut certifies that one blue pipe separates a red-guarded pair.
//
//	0 =red= 1 -blue- 2 =red= 3
func ExampleMinCut() {
	net := network.New(network.KindWater, 2)
	_ = net.SetRole(0, network.RoleOrigin)
	_ = net.SetRole(3, network.RoleDestination)
	_ = net.AddEdge(0, 1, network.ColorRed)
	_ = net.AddEdge(1, 2, network.ColorBlue)
	_ = net.AddEdge(2, 3, network.ColorRed)

	cut, err := flow.MinCut(context.Background(), net)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(cut.Value, cut.Edges[0].U, cut.Edges[0].V)
	// Output: 1 1 2
}

// ExampleEdmondsKarp pushes unit flow around a 2×2 ring.
func ExampleEdmondsKarp() {
	net := network.New(network.KindMilitary, 2)
	for _, p := range [][2]int{{0, 1}, {0, 2}, {1, 3}, {2, 3}} {
		_ = net.AddEdge(p[0], p[1], network.ColorNone)
	}
	unit := func(network.Edge) int64 { return 1 }

	mf, _, _ := flow.EdmondsKarp(context.Background(), net, 0, 3, unit, nil)
	fmt.Println(mf)
	// Output: 2
}
