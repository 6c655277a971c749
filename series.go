package framian

import (
	"cmp"
	"fmt"
	"slices"
	"sort"
	"strings"
)

// KeyCell is a single series entry: a key paired with a cell.
type KeyCell[K cmp.Ordered, V any] struct {
	Key  K
	Cell Cell[V]
}

// Series is an immutable ordered mapping from keys to cells.
//
// Entries keep the order they were constructed with; the key's total
// order is used for lookup, not for storage. Duplicate keys are
// permitted: all entries are retained, and Get returns the cell of the
// earliest-constructed entry for the key.
type Series[K cmp.Ordered, V any] struct {
	pairs []KeyCell[K, V]
	// entry positions, stably sorted by key, for binary-search lookup
	order []int
}

// SeriesFromCells builds a series from key/cell pairs, preserving
// entry order.
func SeriesFromCells[K cmp.Ordered, V any](pairs ...KeyCell[K, V]) Series[K, V] {
	s := Series[K, V]{
		pairs: slices.Clone(pairs),
		order: make([]int, len(pairs)),
	}
	for i := range s.order {
		s.order[i] = i
	}
	sort.SliceStable(s.order, func(i, j int) bool {
		return s.pairs[s.order[i]].Key < s.pairs[s.order[j]].Key
	})
	return s
}

// Len returns the number of entries, duplicates included.
func (s Series[K, V]) Len() int { return len(s.pairs) }

// KeyAt returns the key of the entry at position i.
// Panics if i is out of range.
func (s Series[K, V]) KeyAt(i int) K { return s.pairs[i].Key }

// CellAt returns the cell of the entry at position i.
// Panics if i is out of range.
func (s Series[K, V]) CellAt(i int) Cell[V] { return s.pairs[i].Cell }

// Get returns the cell mapped to key k and true, or the zero cell and
// false if no entry has that key. With duplicate keys the
// earliest-constructed entry wins.
func (s Series[K, V]) Get(k K) (Cell[V], bool) {
	i := sort.Search(len(s.order), func(i int) bool {
		return s.pairs[s.order[i]].Key >= k
	})
	if i < len(s.order) && s.pairs[s.order[i]].Key == k {
		return s.pairs[s.order[i]].Cell, true
	}
	return Cell[V]{}, false
}

// Keys returns a copy of the keys in entry order.
func (s Series[K, V]) Keys() []K {
	out := make([]K, len(s.pairs))
	for i, p := range s.pairs {
		out[i] = p.Key
	}
	return out
}

// Cells returns a copy of the cells in entry order.
func (s Series[K, V]) Cells() []Cell[V] {
	out := make([]Cell[V], len(s.pairs))
	for i, p := range s.pairs {
		out[i] = p.Cell
	}
	return out
}

// String returns a string representation of the series.
func (s Series[K, V]) String() string {
	var sb strings.Builder
	sb.WriteString("Series(")
	for i, p := range s.pairs {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v -> %v", p.Key, p.Cell)
	}
	sb.WriteString(")")
	return sb.String()
}
