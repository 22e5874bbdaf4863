package sparse

// New returns an empty rows×cols matrix.
//
// Dimensions are accepted verbatim, including zero or negative values:
// a degenerate matrix is constructible but rejects every Set, because no
// coordinate satisfies 0 ≤ r < rows and 0 ≤ c < cols. Meaningful
// dimensions are the caller's responsibility.
//
// Complexity: O(1).
func New(rows, cols int) *Matrix {
	return &Matrix{
		rows:     rows,
		cols:     cols,
		elements: make(map[Coord]int64),
	}
}

// Rows returns the number of rows. Complexity: O(1).
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the number of columns. Complexity: O(1).
func (m *Matrix) Cols() int { return m.cols }

// Nnz returns the number of stored (non-zero) entries. Complexity: O(1).
func (m *Matrix) Nnz() int { return len(m.elements) }

// At returns the value at (row, col), or 0 when no entry is stored.
//
// At performs NO bounds check: an out-of-range coordinate reads as 0,
// exactly like any other absent cell. This lenience is intentional and
// asymmetric with Set, which does validate.
//
// Complexity: O(1) amortized.
func (m *Matrix) At(row, col int) int64 {
	return m.elements[Coord{Row: row, Col: col}]
}

// Set assigns value at (row, col).
//
// Returns ErrOutOfRange when the coordinate falls outside
// [0,Rows)×[0,Cols). Assigning 0 removes the entry; any other value
// inserts or overwrites it, preserving the no-stored-zero invariant.
//
// Complexity: O(1) amortized.
func (m *Matrix) Set(row, col int, value int64) error {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		return ErrOutOfRange
	}
	key := Coord{Row: row, Col: col}
	if value == 0 {
		delete(m.elements, key)
		return nil
	}
	m.elements[key] = value
	return nil
}

// Clone returns a deep copy; the copy shares no state with the original.
// Complexity: O(nnz).
func (m *Matrix) Clone() *Matrix {
	out := New(m.rows, m.cols)
	for key, value := range m.elements {
		out.elements[key] = value
	}
	return out
}

// Equal reports whether m and other have identical dimensions and
// identical non-zero entries. Complexity: O(nnz).
func (m *Matrix) Equal(other *Matrix) bool {
	if other == nil {
		return false
	}
	if m.rows != other.rows || m.cols != other.cols {
		return false
	}
	if len(m.elements) != len(other.elements) {
		return false
	}
	for key, value := range m.elements {
		if other.elements[key] != value {
			return false
		}
	}
	return true
}

// Coords returns a snapshot of the coordinates of all stored entries,
// in unspecified order. Mutating the matrix afterwards does not affect
// the returned slice. Complexity: O(nnz).
func (m *Matrix) Coords() []Coord {
	out := make([]Coord, 0, len(m.elements))
	for key := range m.elements {
		out = append(out, key)
	}
	return out
}
