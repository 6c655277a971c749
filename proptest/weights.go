package proptest

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyDistribution is the panic value of CellOf when all weights
	// are zero and no variant can be selected.
	ErrEmptyDistribution = errors.New("all weights are zero")

	// ErrNegativeWeight is the panic value of CellOf when a weight is
	// negative.
	ErrNegativeWeight = errors.New("weights must be non-negative")

	// ErrEmptySource is the panic value of a sampling helper when a
	// caller-supplied generator repeatedly produces no value.
	ErrEmptySource = errors.New("generator produced no value")
)

// Weights expresses the relative selection probability of each cell
// variant as non-negative integers. The probability of a variant is its
// weight divided by the sum of all weights; at least one weight must be
// positive. Leaving NotMeaningful zero excludes that variant.
type Weights struct {
	Value         int
	NA            int
	NotMeaningful int
}

// Standard density profiles.
var (
	sparseWeights = Weights{Value: 9, NA: 1}
	dirtyWeights  = Weights{Value: 7, NA: 2, NotMeaningful: 1}
)

func (w Weights) validate() error {
	if w.Value < 0 || w.NA < 0 || w.NotMeaningful < 0 {
		return fmt.Errorf("%w: got %+v", ErrNegativeWeight, w)
	}
	if w.Value+w.NA+w.NotMeaningful == 0 {
		return fmt.Errorf("%w: got %+v", ErrEmptyDistribution, w)
	}
	return nil
}
