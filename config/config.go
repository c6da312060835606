// config.go — direction-vector configuration: compiled defaults,
// functional options, and an optional YAML file source.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lvlath-labs/pddelaunay/kernel"
)

// ErrOptionViolation is surfaced from Resolve when an Option recorded
// a failure (a YAML file that could not be read or parsed).
var ErrOptionViolation = errors.New("config: invalid option supplied")

// Config is the resolved, validated direction pair a Flip run uses.
type Config struct {
	U, V kernel.Vector[float64]
}

// yamlVector mirrors the file format's {x, y} object.
type yamlVector struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type yamlDoc struct {
	U *yamlVector `yaml:"u"`
	V *yamlVector `yaml:"v"`
}

// Option configures Resolve. An Option that cannot be satisfied (e.g.
// WithYAMLFile naming a missing or malformed file) records its error
// rather than failing immediately; Resolve surfaces the first such
// error.
type Option func(*options)

type options struct {
	u, v kernel.Vector[float64]
	err  error
}

// DefaultOptions returns the compiled defaults: u = (1, 0), the
// primary direction; v = (1, 1), the tie-breaker.
func DefaultOptions() options {
	return options{
		u: kernel.Vector[float64]{X: 1, Y: 0},
		v: kernel.Vector[float64]{X: 1, Y: 1},
	}
}

// WithDirections overrides both u and v directly.
func WithDirections(u, v kernel.Vector[float64]) Option {
	return func(o *options) {
		o.u, o.v = u, v
	}
}

// WithYAMLFile loads u and/or v from a YAML file with fields
// `u: {x, y}` and `v: {x, y}`. A field absent from the file leaves the
// corresponding vector at whatever prior options (or the compiled
// default) set it to.
func WithYAMLFile(path string) Option {
	return func(o *options) {
		data, err := os.ReadFile(path)
		if err != nil {
			o.err = fmt.Errorf("config: WithYAMLFile(%q): %w", path, err)
			return
		}
		var doc yamlDoc
		if err := yaml.Unmarshal(data, &doc); err != nil {
			o.err = fmt.Errorf("config: WithYAMLFile(%q): %w", path, err)
			return
		}
		if doc.U != nil {
			o.u = kernel.Vector[float64]{X: doc.U.X, Y: doc.U.Y}
		}
		if doc.V != nil {
			o.v = kernel.Vector[float64]{X: doc.V.X, Y: doc.V.Y}
		}
	}
}

// Resolve applies opts over the compiled defaults in order and
// validates the resulting pair via kernel.ValidateDirections before
// returning it.
func Resolve(opts ...Option) (Config, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
		if o.err != nil {
			break
		}
	}
	if o.err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrOptionViolation, o.err)
	}
	if err := kernel.ValidateDirections(o.u, o.v); err != nil {
		return Config{}, err
	}
	return Config{U: o.u, V: o.v}, nil
}
