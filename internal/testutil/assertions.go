package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// CellReader is the part of the engine the assertions inspect.
type CellReader interface {
	Cell(i int) (byte, bool)
}

// AssertCells asserts that the cells starting at origin hold want, in order.
func AssertCells(t *testing.T, m CellReader, origin int, want ...byte) {
	t.Helper()
	for i, w := range want {
		got, ok := m.Cell(origin + i)
		require.True(t, ok, "cell %d is off the tape", origin+i)
		assert.Equal(t, w, got, "cell %d (origin%+d) mismatch", origin+i, i)
	}
}

// AssertErrorKind asserts that err is non-nil and matches kind via errors.Is.
func AssertErrorKind(t *testing.T, err, kind error) {
	t.Helper()
	require.Error(t, err)
	assert.ErrorIs(t, err, kind)
}
