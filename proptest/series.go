package proptest

import (
	"cmp"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/arbitrary"

	"github.com/BrandenPellucid/framian"
)

// NonEmptyDenseSeriesOf returns a generator of series with at least one
// entry where every cell is a Value drawn from valGen. Keys come from
// keyGen and are not deduplicated: a keyGen that repeats keys yields
// series with duplicate entries.
func NonEmptyDenseSeriesOf[K cmp.Ordered, V any](keyGen, valGen gopter.Gen) gopter.Gen {
	return func(params *gopter.GenParameters) *gopter.GenResult {
		pairs := make([]framian.KeyCell[K, V], drawLen(params))
		for i := range pairs {
			pairs[i] = framian.KeyCell[K, V]{
				Key:  sample[K](keyGen, params),
				Cell: framian.Value(sample[V](valGen, params)),
			}
		}
		return gopter.NewGenResult(framian.SeriesFromCells(pairs...), gopter.NoShrinker)
	}
}

// NonEmptySparseSeriesOf returns a generator of series with at least one
// entry, cells drawn at Weights{Value: 9, NA: 1}. One entry is always a
// Value, so no sample is all-NA.
func NonEmptySparseSeriesOf[K cmp.Ordered, V any](keyGen, valGen gopter.Gen) gopter.Gen {
	return guaranteedValueSeriesOf[K, V](keyGen, valGen, sparseWeights)
}

// NonEmptyDirtySeriesOf returns a generator of series with at least one
// entry, cells drawn at Weights{Value: 7, NA: 2, NotMeaningful: 1}. One
// entry is always a Value.
func NonEmptyDirtySeriesOf[K cmp.Ordered, V any](keyGen, valGen gopter.Gen) gopter.Gen {
	return guaranteedValueSeriesOf[K, V](keyGen, valGen, dirtyWeights)
}

// guaranteedValueSeriesOf draws one entry forced to Value plus zero or
// more weighted entries, then applies a uniform permutation so the
// guaranteed entry's position carries no bias.
func guaranteedValueSeriesOf[K cmp.Ordered, V any](keyGen, valGen gopter.Gen, w Weights) gopter.Gen {
	cellGen := CellOf[V](valGen, w)
	return func(params *gopter.GenParameters) *gopter.GenResult {
		n := drawLen(params)
		pairs := make([]framian.KeyCell[K, V], 0, n)
		pairs = append(pairs, framian.KeyCell[K, V]{
			Key:  sample[K](keyGen, params),
			Cell: framian.Value(sample[V](valGen, params)),
		})
		for len(pairs) < n {
			pairs = append(pairs, framian.KeyCell[K, V]{
				Key:  sample[K](keyGen, params),
				Cell: sample[framian.Cell[V]](cellGen, params),
			})
		}
		params.Rng.Shuffle(len(pairs), func(i, j int) {
			pairs[i], pairs[j] = pairs[j], pairs[i]
		})
		return gopter.NewGenResult(framian.SeriesFromCells(pairs...), gopter.NoShrinker)
	}
}

// ArbitraryDenseSeries is NonEmptyDenseSeriesOf with type-directed
// generators for K and V.
func ArbitraryDenseSeries[K cmp.Ordered, V any]() gopter.Gen {
	keyGen, valGen := arbitraryGens[K, V]()
	return NonEmptyDenseSeriesOf[K, V](keyGen, valGen)
}

// ArbitrarySparseSeries is NonEmptySparseSeriesOf with type-directed
// generators for K and V.
func ArbitrarySparseSeries[K cmp.Ordered, V any]() gopter.Gen {
	keyGen, valGen := arbitraryGens[K, V]()
	return NonEmptySparseSeriesOf[K, V](keyGen, valGen)
}

// ArbitraryDirtySeries is NonEmptyDirtySeriesOf with type-directed
// generators for K and V.
func ArbitraryDirtySeries[K cmp.Ordered, V any]() gopter.Gen {
	keyGen, valGen := arbitraryGens[K, V]()
	return NonEmptyDirtySeriesOf[K, V](keyGen, valGen)
}

func arbitraryGens[K cmp.Ordered, V any]() (gopter.Gen, gopter.Gen) {
	arb := arbitrary.DefaultArbitraries()
	return arb.GenForType(typeOf[K]()), arb.GenForType(typeOf[V]())
}
