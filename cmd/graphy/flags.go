package main

import (
	"flag"
	"strconv"
	"time"

	"github.com/katalvlaran/graphy/config"
)

// flags holds the command-line values before they are merged into a config.
type flags struct {
	configPath string
	network    string
	cells      int
	seed       int64
	budget     int
	nodeLimit  int
	timeLimit  time.Duration
}

func registerFlags(fset *flag.FlagSet) *flags {
	def := config.Default()
	f := &flags{}
	fset.StringVar(&f.configPath, "config", "", "YAML configuration file")
	fset.StringVar(&f.network, "network", def.Network, "network kind: water or military")
	fset.IntVar(&f.cells, "cells", def.Cells, "number of grid cells (a perfect square)")
	fset.Int64Var(&f.seed, "seed", def.Seed, "random seed")
	fset.IntVar(&f.budget, "budget", def.Budget, "firepower budget for military networks")
	fset.IntVar(&f.nodeLimit, "node-limit", def.NodeLimit, "branch-and-bound node limit")
	fset.DurationVar(&f.timeLimit, "time-limit", def.TimeLimit, "solver wall-clock limit (0 = none)")

	return f
}

// resolve loads the config file (if any) and lets explicitly set flags
// override its values.
func (f *flags) resolve(fset *flag.FlagSet) (config.Config, error) {
	cfg := config.Default()
	if f.configPath != "" {
		loaded, err := config.Load(f.configPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}
	verbositySet := false
	var err error
	fset.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "network":
			cfg.Network = f.network
		case "cells":
			cfg.Cells = f.cells
		case "seed":
			cfg.Seed = f.seed
		case "budget":
			cfg.Budget = f.budget
		case "node-limit":
			cfg.NodeLimit = f.nodeLimit
		case "time-limit":
			cfg.TimeLimit = f.timeLimit
		case "v":
			verbositySet = true
			cfg.Verbosity, err = strconv.Atoi(fl.Value.String())
		}
	})
	if err != nil {
		return config.Config{}, err
	}
	if !verbositySet && cfg.Verbosity > 0 {
		// The file asked for more logging than the klog default.
		if err := fset.Set("v", strconv.Itoa(cfg.Verbosity)); err != nil {
			return config.Config{}, err
		}
	}

	return cfg, cfg.Validate()
}
