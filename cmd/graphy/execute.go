package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/plan-systems/klog"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/graphy/config"
	"github.com/katalvlaran/graphy/flow"
	"github.com/katalvlaran/graphy/generator"
	"github.com/katalvlaran/graphy/interdict"
	"github.com/katalvlaran/graphy/mip"
	"github.com/katalvlaran/graphy/network"
)

// execute generates one network, solves it, applies the optimal strategy
// and writes the before/after pictures to out.
func execute(ctx context.Context, cfg config.Config, out io.Writer) error {
	kind, err := cfg.Kind()
	if err != nil {
		return err
	}
	gen, err := generator.New(cfg.Cells, cfg.GeneratorOptions()...)
	if err != nil {
		return err
	}
	net, err := gen.Generate(kind)
	if err != nil {
		return err
	}
	klog.Infof("graphy: generated %s network %s: %d vertices, %d edges", kind, net.ID, net.Order(), net.Size())

	reg := prometheus.NewRegistry()
	metrics, err := mip.NewMetrics(reg)
	if err != nil {
		return err
	}
	solver := mip.NewBranchAndBound(append(cfg.SolverOptions(), mip.WithMetrics(metrics))...)

	fmt.Fprintln(out, titleStyle.Render(fmt.Sprintf("%s network %s", kind, net.ID)))
	fmt.Fprintln(out, render(net))

	var summary []string
	switch kind {
	case network.KindWater:
		summary, err = solveWater(ctx, solver, net)
	default:
		summary, err = solveMilitary(ctx, solver, net, cfg.Budget)
	}
	if err != nil {
		return err
	}
	logMetrics(reg)

	fmt.Fprintln(out, statsBoxStyle.Render(strings.Join(summary, "\n")))
	fmt.Fprintln(out, render(net))

	return nil
}

func solveWater(ctx context.Context, solver mip.Solver, net *network.Network) ([]string, error) {
	sol, err := interdict.SolveWaterCut(ctx, solver, net)
	if err != nil {
		return nil, err
	}
	cut, err := flow.MinCut(ctx, net)
	if err != nil {
		return nil, err
	}
	if float64(cut.Value) != sol.Objective() {
		klog.Warningf("graphy: program optimum %g disagrees with max flow %d", sol.Objective(), cut.Value)
	}

	pipes := make([]string, 0, len(sol.EdgesToRemove()))
	for _, e := range sol.EdgesToRemove() {
		pipes = append(pipes, fmt.Sprintf("%d-%d", e.U, e.V))
	}
	summary := []string{
		successStyle.Render("minimum cut"),
		fmt.Sprintf("pipes to remove: %d (%s)", len(pipes), strings.Join(pipes, ", ")),
		fmt.Sprintf("max-flow certificate: %d", cut.Value),
		fmt.Sprintf("vertices cut off: %v", sol.DisconnectedVertices()),
		fmt.Sprintf("search nodes: %d", sol.Nodes()),
	}

	return summary, sol.Apply(net)
}

func solveMilitary(ctx context.Context, solver mip.Solver, net *network.Network, budget int) ([]string, error) {
	sol, err := interdict.SolveMilitaryDisconnect(ctx, solver, net, budget)
	if err != nil {
		return nil, err
	}
	summary := []string{
		successStyle.Render("optimal interdiction"),
		fmt.Sprintf("budget: %d, spent: %d", sol.Budget(), sol.Cost()),
		fmt.Sprintf("vertices to remove: %v", sol.VerticesToRemove()),
		fmt.Sprintf("vertices cut off: %d %v", int(sol.Objective()), sol.DisconnectedVertices()),
		fmt.Sprintf("search nodes: %d", sol.Nodes()),
	}

	return summary, sol.Apply(net)
}

// logMetrics writes every gathered counter and histogram count at V(2).
func logMetrics(reg *prometheus.Registry) {
	if !klog.V(2).Enabled() {
		return
	}
	families, err := reg.Gather()
	if err != nil {
		klog.Warningf("graphy: gather metrics: %v", err)
		return
	}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			switch {
			case m.GetCounter() != nil:
				klog.Infof("graphy: %s%v = %g", mf.GetName(), m.GetLabel(), m.GetCounter().GetValue())
			case m.GetHistogram() != nil:
				klog.Infof("graphy: %s sum=%gs count=%d", mf.GetName(),
					m.GetHistogram().GetSampleSum(), m.GetHistogram().GetSampleCount())
			}
		}
	}
}
