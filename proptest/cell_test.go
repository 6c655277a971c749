package proptest

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandenPellucid/framian"
)

func TestCellOfSingleVariant(t *testing.T) {
	tests := []struct {
		name    string
		weights Weights
		check   func(framian.Cell[int]) bool
	}{
		{"AlwaysValue", Weights{Value: 1}, framian.Cell[int].IsValue},
		{"AlwaysNA", Weights{NA: 1}, framian.Cell[int].IsNA},
		{"AlwaysNotMeaningful", Weights{NotMeaningful: 1}, framian.Cell[int].IsNotMeaningful},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := testParams()
			cells := sampleN[framian.Cell[int]](t, CellOf[int](gen.Const(5), tt.weights), params, 100)

			for _, cell := range cells {
				require.True(t, tt.check(cell), "unexpected variant: %v", cell)
				if v, ok := cell.Get(); ok {
					assert.Equal(t, 5, v)
				}
			}
		})
	}
}

func TestCellOfInvalidWeights(t *testing.T) {
	tests := []struct {
		name     string
		weights  Weights
		expected error
	}{
		{"AllZero", Weights{}, ErrEmptyDistribution},
		{"Negative", Weights{Value: -1, NA: 2}, ErrNegativeWeight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				err, ok := recover().(error)
				require.True(t, ok, "expected a panic with an error value")
				assert.ErrorIs(t, err, tt.expected)
			}()

			CellOf[int](gen.Const(0), tt.weights)
		})
	}
}

func TestCellOfFrequency(t *testing.T) {
	const n = 10000

	params := testParams()
	cells := sampleN[framian.Cell[int]](t, CellOf[int](gen.Int(), Weights{Value: 9, NA: 1}), params, n)

	values := 0
	for _, cell := range cells {
		require.False(t, cell.IsNotMeaningful(), "NotMeaningful has weight zero")
		if cell.IsValue() {
			values++
		}
	}

	assert.InDelta(t, 0.9, float64(values)/n, 0.02)
}

func TestCellOfFrequencyThreeWay(t *testing.T) {
	const n = 10000

	params := testParams()
	cells := sampleN[framian.Cell[int]](t, CellOf[int](gen.Int(), Weights{Value: 7, NA: 2, NotMeaningful: 1}), params, n)

	var values, nas, nms int
	for _, cell := range cells {
		switch {
		case cell.IsValue():
			values++
		case cell.IsNA():
			nas++
		default:
			nms++
		}
	}

	assert.InDelta(t, 0.7, float64(values)/n, 0.02)
	assert.InDelta(t, 0.2, float64(nas)/n, 0.02)
	assert.InDelta(t, 0.1, float64(nms)/n, 0.02)
}

func TestCellOfDeterministic(t *testing.T) {
	g := CellOf[int](gen.Int(), Weights{Value: 7, NA: 2, NotMeaningful: 1})

	first := sampleN[framian.Cell[int]](t, g, gopter.DefaultGenParameters().CloneWithSeed(99), 200)
	second := sampleN[framian.Cell[int]](t, g, gopter.DefaultGenParameters().CloneWithSeed(99), 200)

	assert.Equal(t, first, second)
}
