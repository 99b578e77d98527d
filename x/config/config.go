// Package config loads the manipulator's static geometry and limits from
// a YAML file, in the teacher's Loader-struct idiom
// (cmd/spectrometer/internal/config/loader.go), narrowed to the one
// format this project actually ships a schema for.
package config

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kinemach/arm5/x/kinematics/chain"
)

// LinkLengths overrides the chain's seed geometry (spec.md §8's seed test
// data), keyed by joint name.
type LinkLengths struct {
	Base float64 `yaml:"base"`
	J6   float64 `yaml:"j6"`
	J5   float64 `yaml:"j5"`
	J4   float64 `yaml:"j4"`
	J3   float64 `yaml:"j3"`
}

// JointLimits overrides the default operator angle range for one driven
// joint, in turns.
type JointLimits struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// Geometry is the on-disk shape of a manipulator configuration file.
type Geometry struct {
	Lengths LinkLengths            `yaml:"lengths"`
	Limits  map[string]JointLimits `yaml:"limits"`
}

// Loader reads a Geometry from a YAML file or reader.
type Loader struct{}

// NewLoader returns a ready-to-use Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads and parses the YAML config file at path.
func (l *Loader) Load(path string) (*Geometry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer f.Close()
	return l.LoadFromReader(f)
}

// LoadFromReader parses a Geometry from r.
func (l *Loader) LoadFromReader(r io.Reader) (*Geometry, error) {
	var g Geometry
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&g); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	return &g, nil
}

// ApplyTo builds a chain.Model using g's lengths in place of the package
// defaults, and applies any per-joint limit overrides. A zero-valued
// length in g falls back to the built-in default for that joint.
func ApplyTo(g *Geometry) *chain.Model {
	if g == nil {
		return chain.New()
	}

	l := chain.DefaultLengths
	if g.Lengths.Base != 0 {
		l.Base = g.Lengths.Base
	}
	if g.Lengths.J6 != 0 {
		l.J6 = g.Lengths.J6
	}
	if g.Lengths.J5 != 0 {
		l.J5 = g.Lengths.J5
	}
	if g.Lengths.J4 != 0 {
		l.J4 = g.Lengths.J4
	}
	if g.Lengths.J3 != 0 {
		l.J3 = g.Lengths.J3
	}

	m := chain.NewWithLengths(l)

	for name, lim := range g.Limits {
		id, ok := jointNameToID(name)
		if !ok {
			continue
		}
		m.SetLimits(id, chain.Limits{Min: lim.Min, Max: lim.Max})
	}

	return m
}

func jointNameToID(name string) (chain.JointID, bool) {
	switch name {
	case "j6":
		return chain.J6, true
	case "j5":
		return chain.J5, true
	case "j4":
		return chain.J4, true
	case "j3":
		return chain.J3, true
	default:
		return 0, false
	}
}
