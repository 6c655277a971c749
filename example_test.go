package framian_test

import (
	"fmt"

	"github.com/BrandenPellucid/framian"
)

// ExampleColumnFromValues demonstrates the dense, array-backed column path.
func ExampleColumnFromValues() {
	col := framian.ColumnFromValues(1, 2, 3)

	fmt.Println(col.IsDense(), col.Len(), col.CellAt(0))
	// Output: true 3 Value(1)
}

// ExampleColumnFromCells demonstrates a column mixing all three cell variants.
func ExampleColumnFromCells() {
	col := framian.ColumnFromCells(
		framian.Value("a"),
		framian.NA[string](),
		framian.NotMeaningful[string](),
	)

	fmt.Println(col)
	// Output: Column(Value(a), NA, NotMeaningful)
}

// ExampleSeriesFromCells demonstrates building a series and looking up a key.
func ExampleSeriesFromCells() {
	s := framian.SeriesFromCells(
		framian.KeyCell[string, int]{Key: "b", Cell: framian.Value(2)},
		framian.KeyCell[string, int]{Key: "a", Cell: framian.Value(1)},
	)

	cell, ok := s.Get("a")
	fmt.Println(cell, ok)
	// Output: Value(1) true
}
