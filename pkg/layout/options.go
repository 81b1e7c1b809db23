package layout

import (
	"math"

	"github.com/matzehuels/dotpath/pkg/errors"
	"github.com/matzehuels/dotpath/pkg/graph"
)

// Default force parameters.
const (
	DefaultIterations        = 500
	DefaultRepulsionConstant = 20000.0
	DefaultRepulsionRadius   = 200.0
	DefaultSpringConstant    = 0.01
	DefaultRestLength        = 100.0
)

// Options configures a layout run.
type Options struct {
	// Iterations is the exact number of steps to run.
	Iterations int

	// RepulsionConstant scales the inverse-square push between nearby nodes.
	RepulsionConstant float64

	// RepulsionRadius is the distance at and beyond which nodes stop
	// repelling each other.
	RepulsionRadius float64

	// SpringConstant is the stiffness of every edge.
	SpringConstant float64

	// RestLength is the natural length of every edge.
	RestLength float64

	// Bounds overrides the canvas nodes are clamped into.
	// When nil, the graph's own area is used.
	Bounds *graph.Area

	// OnIteration, when set, is called after every completed iteration with
	// the zero-based iteration index and the total distance nodes moved.
	OnIteration func(iteration int, displacement float64)
}

// DefaultOptions returns the default force parameters with no bounds
// override and no observer.
func DefaultOptions() Options {
	return Options{
		Iterations:        DefaultIterations,
		RepulsionConstant: DefaultRepulsionConstant,
		RepulsionRadius:   DefaultRepulsionRadius,
		SpringConstant:    DefaultSpringConstant,
		RestLength:        DefaultRestLength,
	}
}

// Validate checks that the parameters describe a runnable simulation.
// Returns an INVALID_CONFIG error describing the first problem found.
func (o Options) Validate() error {
	if o.Iterations < 1 {
		return errors.New(errors.ErrCodeInvalidConfig, "iterations must be at least 1, got %d", o.Iterations)
	}
	checks := []struct {
		name     string
		value    float64
		positive bool
	}{
		{"repulsion constant", o.RepulsionConstant, false},
		{"repulsion radius", o.RepulsionRadius, true},
		{"spring constant", o.SpringConstant, false},
		{"rest length", o.RestLength, false},
	}
	for _, c := range checks {
		if math.IsNaN(c.value) || math.IsInf(c.value, 0) {
			return errors.New(errors.ErrCodeInvalidConfig, "%s must be finite", c.name)
		}
		if c.value < 0 || (c.positive && c.value == 0) {
			return errors.New(errors.ErrCodeInvalidConfig, "%s must be positive, got %g", c.name, c.value)
		}
	}
	if o.Bounds != nil {
		return o.Bounds.Validate()
	}
	return nil
}
