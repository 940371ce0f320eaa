// Command graphy generates a random water or military network, computes the
// optimal interdiction with the integer programming solver and prints the
// network with the strategy applied.
//
// Usage:
//
//	graphy [-config file.yaml] [-network water|military] [-cells 100]
//	       [-seed 1] [-budget 6] [-node-limit 200000] [-time-limit 30s] [-v 2]
//
// Exit status is 2 when no strategy exists and 3 when the solver gave up.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/plan-systems/klog"

	"github.com/katalvlaran/graphy/interdict"
)

func main() {
	err := run(context.Background(), os.Args[1:], os.Stdout)
	klog.Flush()
	switch {
	case err == nil:
	case errors.Is(err, flag.ErrHelp):
	case errors.Is(err, interdict.ErrModelInfeasible):
		fmt.Fprintln(os.Stderr, errorStyle.Render("no strategy: "+err.Error()))
		os.Exit(2)
	case errors.Is(err, interdict.ErrSolverFailure):
		fmt.Fprintln(os.Stderr, errorStyle.Render("solver gave up: "+err.Error()))
		os.Exit(3)
	default:
		fmt.Fprintln(os.Stderr, errorStyle.Render(err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	fset := flag.NewFlagSet("graphy", flag.ContinueOnError)
	klog.InitFlags(fset)
	_ = fset.Set("logtostderr", "true")
	klog.SetFormatter(&klog.FmtConstWidth{
		FileNameCharWidth: 16,
		UseColor:          true,
	})

	f := registerFlags(fset)
	if err := fset.Parse(args); err != nil {
		return err
	}
	cfg, err := f.resolve(fset)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	return execute(ctx, cfg, stdout)
}
