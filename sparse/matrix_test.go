package sparse_test

import (
	"testing"

	"github.com/Dankagame/DSA-HW01---Sparse-Matrix/sparse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMatrix_NewEmpty verifies a fresh matrix has the requested shape
// and stores nothing.
func TestMatrix_NewEmpty(t *testing.T) {
	m := sparse.New(3, 4)

	assert.Equal(t, 3, m.Rows(), "rows must match constructor argument")
	assert.Equal(t, 4, m.Cols(), "cols must match constructor argument")
	assert.Equal(t, 0, m.Nnz(), "fresh matrix must have no entries")
}

// TestMatrix_SetAndAt covers insert, overwrite and the absent-cell read.
func TestMatrix_SetAndAt(t *testing.T) {
	m := sparse.New(2, 2)

	require.NoError(t, m.Set(0, 1, 7))
	assert.Equal(t, int64(7), m.At(0, 1), "stored value must read back")
	assert.Equal(t, int64(0), m.At(1, 0), "absent cell must read as 0")

	require.NoError(t, m.Set(0, 1, -9))
	assert.Equal(t, int64(-9), m.At(0, 1), "overwrite must win")
	assert.Equal(t, 1, m.Nnz(), "overwrite must not grow nnz")
}

// TestMatrix_SetZeroDeletes verifies that writing 0 removes the entry
// entirely instead of storing an explicit zero.
func TestMatrix_SetZeroDeletes(t *testing.T) {
	m := sparse.New(2, 2)
	require.NoError(t, m.Set(1, 1, 5))
	require.Equal(t, 1, m.Nnz())

	require.NoError(t, m.Set(1, 1, 0))
	assert.Equal(t, 0, m.Nnz(), "zero write must delete the entry")
	assert.Equal(t, int64(0), m.At(1, 1), "deleted cell must read as 0")

	// Writing 0 to an already-absent cell is a no-op, not an error.
	require.NoError(t, m.Set(0, 0, 0))
	assert.Equal(t, 0, m.Nnz())
}

// TestMatrix_SetOutOfRange exercises every out-of-bounds side of the
// write path; reads of the same coordinates stay lenient.
func TestMatrix_SetOutOfRange(t *testing.T) {
	m := sparse.New(2, 3)

	for _, rc := range [][2]int{{-1, 0}, {2, 0}, {0, -1}, {0, 3}} {
		err := m.Set(rc[0], rc[1], 1)
		assert.ErrorIs(t, err, sparse.ErrOutOfRange, "Set(%d,%d) must be rejected", rc[0], rc[1])
		assert.Equal(t, int64(0), m.At(rc[0], rc[1]), "At(%d,%d) must read 0, not error", rc[0], rc[1])
	}
	assert.Equal(t, 0, m.Nnz(), "rejected writes must not store anything")
}

// TestMatrix_DegenerateDimensions verifies zero and negative dimensions
// are constructible but unwritable.
func TestMatrix_DegenerateDimensions(t *testing.T) {
	for _, shape := range [][2]int{{0, 0}, {0, 5}, {-2, 3}} {
		m := sparse.New(shape[0], shape[1])
		assert.Equal(t, shape[0], m.Rows())
		assert.Equal(t, shape[1], m.Cols())
		assert.ErrorIs(t, m.Set(0, 0, 1), sparse.ErrOutOfRange,
			"no coordinate is in-bounds for shape %dx%d", shape[0], shape[1])
	}
}

// TestMatrix_Clone verifies deep-copy independence.
func TestMatrix_Clone(t *testing.T) {
	m := sparse.New(2, 2)
	require.NoError(t, m.Set(0, 0, 1))
	require.NoError(t, m.Set(1, 1, 2))

	c := m.Clone()
	require.True(t, c.Equal(m), "clone must equal its source")

	require.NoError(t, c.Set(0, 0, 42))
	assert.Equal(t, int64(1), m.At(0, 0), "mutating the clone must not touch the source")
	assert.False(t, c.Equal(m))
}

// TestMatrix_Equal covers shape, entry-set and nil discrimination.
func TestMatrix_Equal(t *testing.T) {
	a := sparse.New(2, 2)
	require.NoError(t, a.Set(0, 1, 3))

	b := sparse.New(2, 2)
	require.NoError(t, b.Set(0, 1, 3))
	assert.True(t, a.Equal(b))

	require.NoError(t, b.Set(1, 0, 1))
	assert.False(t, a.Equal(b), "extra entry must break equality")

	assert.False(t, a.Equal(sparse.New(2, 3)), "shape mismatch must break equality")
	assert.False(t, a.Equal(nil), "nil never equals a matrix")
}

// TestMatrix_CoordsSnapshot verifies Coords returns exactly the stored
// coordinates and is detached from later mutation.
func TestMatrix_CoordsSnapshot(t *testing.T) {
	m := sparse.New(3, 3)
	require.NoError(t, m.Set(0, 0, 1))
	require.NoError(t, m.Set(2, 1, -4))

	coords := m.Coords()
	assert.ElementsMatch(t,
		[]sparse.Coord{{Row: 0, Col: 0}, {Row: 2, Col: 1}}, coords)

	require.NoError(t, m.Set(1, 1, 9))
	assert.Len(t, coords, 2, "snapshot must not track later writes")
}
