package interdict_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/graphy/interdict"
	"github.com/katalvlaran/graphy/network"
)

// ExampleSolveWaterCut cuts the destination of a four-pipe ring off its origin.
func ExampleSolveWaterCut() {
	net := network.New(network.KindWater, 2)
	_ = net.SetRole(0, network.RoleOrigin)
	_ = net.SetRole(2, network.RoleDestination)
	for _, p := range [][2]int{{0, 1}, {1, 2}, {2, 3}, {0, 3}} {
		_ = net.AddEdge(p[0], p[1], network.ColorBlue)
	}

	sol, err := interdict.SolveWaterCut(context.Background(), nil, net)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(sol.Objective(), len(sol.EdgesToRemove()))
	// Output: 2 2
}

// ExampleSolveMilitaryDisconnect spends a budget of 1 on a three-leaf star.
func ExampleSolveMilitaryDisconnect() {
	net := network.New(network.KindMilitary, 2)
	_ = net.SetRole(0, network.RoleHeadquarters)
	_ = net.SetEndurance(0, 10000)
	for leaf := 1; leaf <= 3; leaf++ {
		_ = net.SetEndurance(leaf, 1)
		_ = net.AddEdge(0, leaf, network.ColorNone)
	}

	sol, err := interdict.SolveMilitaryDisconnect(context.Background(), nil, net, 1)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(sol.Objective(), sol.Cost())
	// Output: 1 1
}
