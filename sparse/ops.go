package sparse

// colValue is one entry of a grouped row of the right Mul operand.
type colValue struct {
	col   int
	value int64
}

// Add returns a + b as a freshly allocated matrix.
//
// Description:
//
//	Copies a's entries into the result, then folds each entry of b in
//	through At/Set. Sums that cancel to exactly 0 are deleted by the Set
//	semantics, so the result stores no explicit zeros.
//
// Errors:
//   - ErrDimensionMismatch — a and b do not share the same shape.
//
// Complexity: O(nnz(a) + nnz(b)). Neither operand is mutated.
func Add(a, b *Matrix) (*Matrix, error) {
	return combine(a, b, +1)
}

// Sub returns a - b as a freshly allocated matrix.
//
// Same shape requirement and cancellation behavior as Add; not
// commutative. Entries absent from b contribute nothing.
//
// Errors:
//   - ErrDimensionMismatch — a and b do not share the same shape.
//
// Complexity: O(nnz(a) + nnz(b)). Neither operand is mutated.
func Sub(a, b *Matrix) (*Matrix, error) {
	return combine(a, b, -1)
}

// combine implements the shared Add/Sub fold with sign ∈ {+1, -1}.
func combine(a, b *Matrix, sign int64) (*Matrix, error) {
	if a.rows != b.rows || a.cols != b.cols {
		return nil, ErrDimensionMismatch
	}
	result := New(a.rows, a.cols)
	for key, value := range a.elements {
		result.elements[key] = value
	}
	for key, value := range b.elements {
		// In-bounds by the operand invariant, so Set cannot fail here.
		_ = result.Set(key.Row, key.Col, result.At(key.Row, key.Col)+sign*value)
	}
	return result, nil
}

// Mul returns the matrix product a · b as a freshly allocated
// a.Rows()×b.Cols() matrix.
//
// Algorithm Outline:
//  1. Group b's entries by row index: rowIndex[k] = all (j, w) with
//     b[k][j] = w. One O(nnz(b)) pass, built once per call.
//  2. For every entry (i, k) → v of a, look up rowIndex[k] and
//     accumulate v·w into result (i, j) for each (j, w) found.
//
// Only coordinates where both factors have non-zero support are ever
// touched, so dense rows and columns are never iterated. Accumulations
// that reach exactly 0 vanish through the Set semantics.
//
// Errors:
//   - ErrDimensionMismatch — a.Cols() != b.Rows().
//
// Complexity: O(nnz(b) + nnz(a)·avg row density of b).
// Neither operand is mutated.
func Mul(a, b *Matrix) (*Matrix, error) {
	if a.cols != b.rows {
		return nil, ErrDimensionMismatch
	}
	result := New(a.rows, b.cols)

	rowIndex := make(map[int][]colValue, b.rows)
	for key, value := range b.elements {
		rowIndex[key.Row] = append(rowIndex[key.Row], colValue{col: key.Col, value: value})
	}

	for key, value := range a.elements {
		for _, cv := range rowIndex[key.Col] {
			_ = result.Set(key.Row, cv.col, result.At(key.Row, cv.col)+value*cv.value)
		}
	}
	return result, nil
}
