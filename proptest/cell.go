package proptest

import (
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"

	"github.com/BrandenPellucid/framian"
)

// CellOf returns a generator of Cell[A] that draws held values from
// valueGen and selects the variant with probability proportional to its
// weight. Each sample draws a fresh value from valueGen.
//
// Generators cannot fail at sampling time, so weight preconditions
// surface when the generator is built: CellOf panics with
// ErrNegativeWeight or ErrEmptyDistribution if w is invalid.
func CellOf[A any](valueGen gopter.Gen, w Weights) gopter.Gen {
	if err := w.validate(); err != nil {
		panic(err)
	}

	weighted := make([]gen.WeightedGen, 0, 3)
	if w.Value > 0 {
		weighted = append(weighted, gen.WeightedGen{
			Weight: w.Value,
			Gen:    valueGen.Map(func(v A) framian.Cell[A] { return framian.Value(v) }),
		})
	}
	if w.NA > 0 {
		weighted = append(weighted, gen.WeightedGen{
			Weight: w.NA,
			Gen:    gen.Const(framian.NA[A]()),
		})
	}
	if w.NotMeaningful > 0 {
		weighted = append(weighted, gen.WeightedGen{
			Weight: w.NotMeaningful,
			Gen:    gen.Const(framian.NotMeaningful[A]()),
		})
	}

	return gen.Weighted(weighted)
}
