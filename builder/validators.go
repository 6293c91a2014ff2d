package builder

import (
	"fmt"
	"math"
)

// Probability domain bounds.
const (
	MinProbability = 0.0
	MaxProbability = 1.0
)

// ValidateProbability enforces p ∈ [0,1]. NaN is rejected as well.
// Out-of-range values fail fast with ErrInvalidProbability; nothing is clamped.
func ValidateProbability(p float64) error {
	if math.IsNaN(p) || p < MinProbability || p > MaxProbability {
		return fmt.Errorf("p=%f not in [%.1f,%.1f]: %w", p, MinProbability, MaxProbability, ErrInvalidProbability)
	}

	return nil
}

// validateMin ensures that got ≥ min.
func validateMin(method string, got, min int) error {
	if got < min {
		return fmt.Errorf("%s: n=%d < min=%d: %w", method, got, min, ErrTooFewVertices)
	}

	return nil
}
