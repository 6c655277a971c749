package proptest

import (
	"fmt"
	"reflect"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
)

const maxSampleRetries = 100

func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// sample draws one value from g, retrying empty results. A generator
// that produces no value within maxSampleRetries draws violates the
// caller's precondition and panics with ErrEmptySource.
func sample[T any](g gopter.Gen, params *gopter.GenParameters) T {
	for i := 0; i < maxSampleRetries; i++ {
		if value, ok := g(params).Retrieve(); ok {
			return value.(T)
		}
	}
	panic(fmt.Errorf("%w after %d draws", ErrEmptySource, maxSampleRetries))
}

// drawLen draws a sequence length in [1, max(params.MaxSize, 1)].
// The floor of one is what makes "non-empty" generators non-empty:
// a zero-length draw is impossible rather than retried.
func drawLen(params *gopter.GenParameters) int {
	size := params.MaxSize
	if size < 1 {
		size = 1
	}
	return 1 + params.Rng.Intn(size)
}

// nonEmptySliceOf draws a slice of at least one element, sized by
// params.MaxSize the way gen.SliceOf is.
func nonEmptySliceOf(elementGen gopter.Gen, elementType reflect.Type) gopter.Gen {
	return func(params *gopter.GenParameters) *gopter.GenResult {
		return gen.SliceOfN(drawLen(params), elementGen, elementType)(params)
	}
}
