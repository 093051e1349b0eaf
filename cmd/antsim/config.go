// Run configuration for antsim: documented defaults, optional YAML file,
// and the defaults → file → changed-flags precedence chain.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/katalvlaran/antcolony/colony"
	"gopkg.in/yaml.v3"
)

// Driver defaults (engine defaults live in colony).
const (
	// defaultGenerations bounds a run; each generation is one full tour
	// construction plus the trail update.
	defaultGenerations = 50

	// defaultInterval is the pause between steps; 0 runs flat out.
	defaultInterval = duration(0)
)

// duration wraps time.Duration so YAML files can use the familiar string
// form ("120ms", "1s"); yaml.v3 has no native decoding for time.Duration.
type duration time.Duration

// UnmarshalYAML parses the scalar through time.ParseDuration.
func (d *duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("parse interval: %w", err)
	}
	*d = duration(parsed)

	return nil
}

// runOptions is the fully resolved configuration of one `antsim run`.
type runOptions struct {
	Nodes       int      `yaml:"nodes"`
	Ants        int      `yaml:"ants"`
	Alpha       float64  `yaml:"alpha"`
	Beta        float64  `yaml:"beta"`
	Rho         float64  `yaml:"rho"`
	Q           float64  `yaml:"q"`
	Tau0        float64  `yaml:"tau0"`
	Seed        int64    `yaml:"seed"`
	Generations int      `yaml:"generations"`
	Interval    duration `yaml:"interval"`
}

// defaultRunOptions mirrors the engine defaults plus the driver knobs.
func defaultRunOptions() runOptions {
	return runOptions{
		Nodes:       colony.DefaultNodeCount,
		Ants:        colony.DefaultAntCount,
		Alpha:       colony.DefaultAlpha,
		Beta:        colony.DefaultBeta,
		Rho:         colony.DefaultRho,
		Q:           colony.DefaultQ,
		Tau0:        colony.DefaultTau0,
		Seed:        colony.DefaultSeed,
		Generations: defaultGenerations,
		Interval:    defaultInterval,
	}
}

// applyFile overlays values from a YAML file onto o. Absent keys keep their
// current values (yaml.Unmarshal leaves untouched fields alone), so a file
// may specify only the knobs it cares about.
func (o *runOptions) applyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err = yaml.Unmarshal(data, o); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	return nil
}

// engineConfig converts the resolved options into the engine's Config.
// Validation stays with the engine boundary (colony.NewFromConfig).
func (o runOptions) engineConfig() colony.Config {
	return colony.Config{
		NodeCount: o.Nodes,
		AntCount:  o.Ants,
		Alpha:     o.Alpha,
		Beta:      o.Beta,
		Rho:       o.Rho,
		Q:         o.Q,
		Tau0:      o.Tau0,
		Seed:      o.Seed,
	}
}
