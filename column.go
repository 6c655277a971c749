package framian

import (
	"fmt"
	"slices"
	"strings"
)

// Column is an immutable ordered sequence of cells, indexed by position.
//
// A column is either dense (backed by a plain value array, every cell a
// Value) or general (backed by a cell list, any variant mix). The backing
// is chosen by the constructor and reported by IsDense.
type Column[A any] struct {
	dense []A
	cells []Cell[A]
}

// ColumnFromValues packs values into a dense array-backed column.
// Every cell of the resulting column is a Value.
func ColumnFromValues[A any](values ...A) Column[A] {
	// make keeps the backing non-nil so an empty column still reports dense
	dense := make([]A, len(values))
	copy(dense, values)
	return Column[A]{dense: dense}
}

// ColumnFromCells packs cells into a cell-list-backed column,
// preserving order.
func ColumnFromCells[A any](cells ...Cell[A]) Column[A] {
	return Column[A]{cells: slices.Clone(cells)}
}

// Len returns the number of cells in the column.
func (c Column[A]) Len() int {
	if c.dense != nil {
		return len(c.dense)
	}
	return len(c.cells)
}

// IsDense reports whether the column is backed by a dense value array.
func (c Column[A]) IsDense() bool { return c.dense != nil }

// CellAt returns the cell at position i.
// Panics if i is out of range.
func (c Column[A]) CellAt(i int) Cell[A] {
	if c.dense != nil {
		return Value(c.dense[i])
	}
	return c.cells[i]
}

// Cells returns a copy of the column's cells in positional order.
// Dense values are wrapped as Value cells.
func (c Column[A]) Cells() []Cell[A] {
	out := make([]Cell[A], c.Len())
	for i := range out {
		out[i] = c.CellAt(i)
	}
	return out
}

// String returns a string representation of the column.
func (c Column[A]) String() string {
	var sb strings.Builder
	sb.WriteString("Column(")
	for i := 0; i < c.Len(); i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprint(&sb, c.CellAt(i))
	}
	sb.WriteString(")")
	return sb.String()
}
