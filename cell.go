package framian

import "fmt"

type cellTag uint8

const (
	tagNA cellTag = iota
	tagValue
	tagNotMeaningful
)

// Cell is a tri-state wrapper over a value of type A: present (Value),
// explicitly absent (NA), or present but invalid (NotMeaningful).
//
// Cells are immutable. The zero value of Cell is NA.
type Cell[A any] struct {
	tag   cellTag
	value A
}

// Value returns a cell holding the value a.
func Value[A any](a A) Cell[A] {
	return Cell[A]{tag: tagValue, value: a}
}

// NA returns a cell marking an explicitly absent value.
func NA[A any]() Cell[A] {
	return Cell[A]{tag: tagNA}
}

// NotMeaningful returns a cell marking a value that exists conceptually
// but is invalid or undefined.
func NotMeaningful[A any]() Cell[A] {
	return Cell[A]{tag: tagNotMeaningful}
}

// IsValue reports whether the cell holds a value.
func (c Cell[A]) IsValue() bool { return c.tag == tagValue }

// IsNA reports whether the cell is explicitly absent.
func (c Cell[A]) IsNA() bool { return c.tag == tagNA }

// IsNotMeaningful reports whether the cell is present but invalid.
func (c Cell[A]) IsNotMeaningful() bool { return c.tag == tagNotMeaningful }

// Get returns the held value and true if the cell is a Value,
// or the zero value of A and false otherwise.
func (c Cell[A]) Get() (A, bool) {
	return c.value, c.tag == tagValue
}

// GetOrElse returns the held value if the cell is a Value, or def otherwise.
func (c Cell[A]) GetOrElse(def A) A {
	if c.tag == tagValue {
		return c.value
	}
	return def
}

// String returns a string representation of the cell.
func (c Cell[A]) String() string {
	switch c.tag {
	case tagValue:
		return fmt.Sprintf("Value(%v)", c.value)
	case tagNotMeaningful:
		return "NotMeaningful"
	default:
		return "NA"
	}
}

// MapCell applies f to the held value of a Value cell and preserves
// NA and NotMeaningful unchanged.
func MapCell[A, B any](c Cell[A], f func(A) B) Cell[B] {
	if v, ok := c.Get(); ok {
		return Value(f(v))
	}
	if c.IsNotMeaningful() {
		return NotMeaningful[B]()
	}
	return NA[B]()
}
