// Package framian provides the core value types of a tabular data library:
// tri-state cells, columns of cells, and ordered key/cell series.
//
// # Value Types
//
//   - Cell: a value that is present (Value), explicitly absent (NA),
//     or present but invalid (NotMeaningful)
//   - Column: an ordered, position-indexed sequence of cells,
//     dense (array-backed) or general (cell-list-backed)
//   - Series: an ordered key-to-cell mapping over a totally ordered key type
//
// All three types are immutable once constructed.
//
// # Quick Start
//
//	col := framian.ColumnFromValues(1, 2, 3)
//	col.IsDense() // true
//
//	mixed := framian.ColumnFromCells(framian.Value("a"), framian.NA[string]())
//	mixed.CellAt(1).IsNA() // true
//
//	s := framian.SeriesFromCells(
//	    framian.KeyCell[string, int]{Key: "b", Cell: framian.Value(2)},
//	    framian.KeyCell[string, int]{Key: "a", Cell: framian.Value(1)},
//	)
//	cell, ok := s.Get("a")
//
// # Randomized Testing
//
// The proptest subpackage provides gopter generators for all three types,
// with dense, sparse, and dirty density profiles.
package framian
