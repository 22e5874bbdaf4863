// Package sparse implements an integer sparse matrix stored as a
// dictionary of coordinates (DOK), together with addition, subtraction
// and multiplication over pairs of matrices.
//
// 🚀 Representation
//
//	Only non-zero entries are stored, keyed by their (row, col) coordinate.
//	Writing 0 to a cell removes its entry, so the invariant "no stored
//	zero" holds at all times and nnz(M) is exactly len of the entry map.
//
// ✨ Key properties:
//   - O(1) amortized At/Set, O(nnz) iteration
//   - operands of Add/Sub/Mul are never mutated; every operation
//     allocates and returns a fresh result matrix
//   - Mul groups the right operand's entries by row once per call, so the
//     cost is O(nnz(a) · avg row density of b), never O(rows·cols)
//   - reads are lenient (absent or out-of-range ⇒ 0); writes are strict
//     (out-of-range ⇒ ErrOutOfRange)
//
// ⚙️ Usage:
//
//	a := sparse.New(2, 2)
//	_ = a.Set(0, 0, 5)
//	b := a.Clone()
//	sum, err := sparse.Add(a, b)
//	if err != nil {
//	  // ErrDimensionMismatch when shapes differ
//	}
//	fmt.Println(sum.At(0, 0)) // 10
//
// A Matrix is safe for concurrent reads once construction is finished;
// there is no internal locking, so concurrent writers are the caller's
// responsibility.
//
// The textual file format lives in the codec package; path-level loading
// and saving in matfile.
package sparse
