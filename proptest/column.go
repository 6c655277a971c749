package proptest

import (
	"github.com/leanovate/gopter"

	"github.com/BrandenPellucid/framian"
)

// DenseColumnOf returns a generator of non-empty dense array-backed
// columns. Every cell wraps a value drawn from valueGen; NA and
// NotMeaningful never appear.
func DenseColumnOf[A any](valueGen gopter.Gen) gopter.Gen {
	return nonEmptySliceOf(valueGen, typeOf[A]()).Map(func(values []A) framian.Column[A] {
		return framian.ColumnFromValues(values...)
	})
}

// SparseColumnOf returns a generator of non-empty cell-list-backed
// columns with cells drawn at Weights{Value: 9, NA: 1}.
func SparseColumnOf[A any](valueGen gopter.Gen) gopter.Gen {
	return cellColumnOf[A](valueGen, sparseWeights)
}

// DirtyColumnOf returns a generator of non-empty cell-list-backed
// columns with cells drawn at Weights{Value: 7, NA: 2, NotMeaningful: 1}.
func DirtyColumnOf[A any](valueGen gopter.Gen) gopter.Gen {
	return cellColumnOf[A](valueGen, dirtyWeights)
}

func cellColumnOf[A any](valueGen gopter.Gen, w Weights) gopter.Gen {
	cellGen := CellOf[A](valueGen, w)
	return nonEmptySliceOf(cellGen, typeOf[framian.Cell[A]]()).Map(func(cells []framian.Cell[A]) framian.Column[A] {
		return framian.ColumnFromCells(cells...)
	})
}
