// Package config loads and validates the settings of the graphy command.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/graphy/generator"
	"github.com/katalvlaran/graphy/gridgraph"
	"github.com/katalvlaran/graphy/interdict"
	"github.com/katalvlaran/graphy/mip"
	"github.com/katalvlaran/graphy/network"
)

// Network names accepted in Config.Network.
const (
	NetworkWater    = "water"
	NetworkMilitary = "military"
)

// MaxCells bounds the grid size the command will generate.
const MaxCells = 10000

// Config is one run of the command.
type Config struct {
	Network   string        `yaml:"network" validate:"required,oneof=water military"`
	Cells     int           `yaml:"cells" validate:"min=1,max=10000,square"`
	Seed      int64         `yaml:"seed"`
	Budget    int           `yaml:"budget" validate:"gte=0"`
	NodeLimit int           `yaml:"node_limit" validate:"min=1"`
	TimeLimit time.Duration `yaml:"time_limit" validate:"gte=0"`
	Verbosity int           `yaml:"verbosity" validate:"gte=0,lte=10"`
}

// validate is a singleton validator instance
var validate *validator.Validate

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("square", func(fl validator.FieldLevel) bool {
		_, ok := gridgraph.PerfectSquareRoot(int(fl.Field().Int()))
		return ok
	})
}

// Default returns the settings of a plain run: a 10×10 water network.
func Default() Config {
	return Config{
		Network:   NetworkWater,
		Cells:     generator.DefaultCells,
		Seed:      1,
		Budget:    interdict.DefaultBudget,
		NodeLimit: mip.DefaultNodeLimit,
	}
}

// Load reads a YAML file over Default and validates the result.
// Keys absent from the file keep their default.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks every field.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return formatValidationError(err)
	}

	return nil
}

// Kind maps Network onto a network kind.
func (c Config) Kind() (network.Kind, error) {
	switch c.Network {
	case NetworkWater:
		return network.KindWater, nil
	case NetworkMilitary:
		return network.KindMilitary, nil
	default:
		return 0, fmt.Errorf("config: unknown network %q", c.Network)
	}
}

// GeneratorOptions returns the generator options implied by c.
func (c Config) GeneratorOptions() []generator.Option {
	return []generator.Option{generator.WithSeed(c.Seed)}
}

// SolverOptions returns the solver options implied by c.
func (c Config) SolverOptions() []mip.Option {
	opts := []mip.Option{mip.WithNodeLimit(c.NodeLimit)}
	if c.TimeLimit > 0 {
		opts = append(opts, mip.WithTimeLimit(c.TimeLimit))
	}

	return opts
}

func formatValidationError(err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return fmt.Errorf("config: %w", err)
	}

	// Report the first failing field.
	for _, e := range validationErrs {
		field, param := e.Field(), e.Param()
		switch e.Tag() {
		case "required":
			return fmt.Errorf("config: %s: field is required", field)
		case "min", "gte":
			return fmt.Errorf("config: %s: must be at least %s", field, param)
		case "max", "lte":
			return fmt.Errorf("config: %s: must not exceed %s", field, param)
		case "oneof":
			return fmt.Errorf("config: %s: must be one of %s", field, param)
		case "square":
			return fmt.Errorf("config: %s: %v is not a perfect square: %w", field, e.Value(), gridgraph.ErrInvalidTopology)
		default:
			return fmt.Errorf("config: %s: validation failed (%s)", field, e.Tag())
		}
	}

	return fmt.Errorf("config: %w", err)
}
