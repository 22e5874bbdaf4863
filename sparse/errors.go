package sparse

import "errors"

// Sentinel errors for sparse matrix operations. All public functions
// return these sentinels (never panic on user input) and callers match
// them via errors.Is.
var (
	// ErrOutOfRange indicates a Set coordinate outside [0,Rows)×[0,Cols).
	// Reads never return it: At on any coordinate simply yields 0.
	ErrOutOfRange = errors.New("sparse: index out of range")

	// ErrDimensionMismatch indicates incompatible operand shapes:
	// Add/Sub require identical dimensions, Mul requires a.Cols == b.Rows.
	ErrDimensionMismatch = errors.New("sparse: dimension mismatch")
)
