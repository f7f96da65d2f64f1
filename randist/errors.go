package randist

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrEmptyAlpha is returned when no concentration parameters are given.
	ErrEmptyAlpha = errors.New("randist: alpha must not be empty")
	// ErrInvalidAlpha is returned when a concentration parameter is not
	// finite and positive.
	ErrInvalidAlpha = errors.New("randist: alpha must be > 0 and finite")
	// ErrNoMode is returned by [DirichletDist.Mode] when some alpha <= 1.
	ErrNoMode = errors.New("randist: mode requires every alpha > 1")
)

func validateAlpha(alpha []float64) error {
	if len(alpha) == 0 {
		return ErrEmptyAlpha
	}

	for i, a := range alpha {
		if !(a > 0) || math.IsInf(a, 0) {
			return fmt.Errorf("%w: alpha[%d] = %v", ErrInvalidAlpha, i, a)
		}
	}

	return nil
}
