// Package proptest provides gopter generators for framian's value types.
//
// This package is intended for use in tests only. Every generator is a
// pure description of a random process: it holds no state of its own and
// draws all randomness from the gopter.GenParameters it is sampled with,
// so a fixed seed reproduces identical output.
//
// # Cells
//
// CellOf selects a cell variant with probability proportional to its
// weight:
//
//	g := proptest.CellOf[int](gen.Int(), proptest.Weights{Value: 9, NA: 1})
//
// # Columns
//
// Three density profiles, all producing non-empty columns:
//
//	proptest.DenseColumnOf[int](gen.Int())   // Value only, array-backed
//	proptest.SparseColumnOf[int](gen.Int())  // 90% Value / 10% NA
//	proptest.DirtyColumnOf[int](gen.Int())   // 70% Value / 20% NA / 10% NotMeaningful
//
// # Series
//
// Series generators guarantee at least one Value entry. Sparse and
// dirty profiles force one entry to Value and shuffle, so the
// guaranteed entry's position is uniformly random:
//
//	proptest.NonEmptySparseSeriesOf[string, int](gen.Identifier(), gen.Int())
//
// The Arbitrary variants substitute type-directed generators for the
// key and value types:
//
//	proptest.ArbitrarySparseSeries[string, int]()
package proptest
