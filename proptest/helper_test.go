package proptest

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/stretchr/testify/require"
)

// testParams returns seeded generator parameters so every test draw is
// reproducible.
func testParams() *gopter.GenParameters {
	return gopter.DefaultGenParameters().CloneWithSeed(4711)
}

// sampleN draws n values from g, failing the test on empty results.
func sampleN[T any](t *testing.T, g gopter.Gen, params *gopter.GenParameters, n int) []T {
	t.Helper()

	out := make([]T, 0, n)
	for len(out) < n {
		value, ok := g(params).Retrieve()
		require.True(t, ok, "generator returned an empty result")
		out = append(out, value.(T))
	}

	return out
}
