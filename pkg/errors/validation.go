package errors

import "math"

// Upper bounds for one generated scene. Repulsion visits every pair of nodes
// on every iteration.
const (
	MaxNodes      = 2000
	MaxIterations = 10000
)

// ValidateNodeCount checks that a graph has between 1 and MaxNodes nodes.
func ValidateNodeCount(n int) error {
	if n < 1 {
		return New(ErrCodeInvalidConfig, "node count must be at least 1, got %d", n)
	}
	if n > MaxNodes {
		return New(ErrCodeInvalidConfig, "node count %d exceeds the maximum of %d", n, MaxNodes)
	}
	return nil
}

// ValidateIterations checks that a layout runs between 1 and MaxIterations
// steps.
func ValidateIterations(n int) error {
	if n < 1 || n > MaxIterations {
		return New(ErrCodeInvalidConfig, "iterations must be in [1, %d], got %d", MaxIterations, n)
	}
	return nil
}

// ValidateEdgeTarget checks that target is between zero and limit, the edge
// count of the complete graph.
//
// An unreachable target is rejected up front so edge generation can never
// loop forever looking for a free pair.
func ValidateEdgeTarget(target, limit int) error {
	if target < 0 {
		return New(ErrCodeInvalidConfig, "edge count must not be negative, got %d", target)
	}
	if target > limit {
		return New(ErrCodeInvalidConfig, "edge count %d exceeds the maximum of %d", target, limit)
	}
	return nil
}

// ValidateArea checks that a width x height canvas leaves room inside margin.
// Both dimensions must be finite and strictly wider than twice the margin.
func ValidateArea(width, height, margin float64) error {
	for _, v := range []float64{width, height, margin} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return New(ErrCodeInvalidConfig, "canvas dimensions must be finite")
		}
	}
	if margin < 0 {
		return New(ErrCodeInvalidConfig, "margin must not be negative, got %g", margin)
	}
	if width <= 2*margin {
		return New(ErrCodeInvalidConfig, "width %g leaves no room inside margin %g", width, margin)
	}
	if height <= 2*margin {
		return New(ErrCodeInvalidConfig, "height %g leaves no room inside margin %g", height, margin)
	}
	return nil
}

// ValidateNodeID checks that id lies in [1, n].
func ValidateNodeID(id, n int) error {
	if id < 1 || id > n {
		return New(ErrCodeInvalidNodeID, "node %d out of range [1, %d]", id, n)
	}
	return nil
}
