// Package sparse: core types. Errors live in errors.go, construction and
// element access in matrix.go, arithmetic in ops.go.
package sparse

// Coord addresses a single matrix cell. Using a small comparable struct
// as the map key keeps lookups allocation-free and hash-friendly.
type Coord struct {
	Row int // row index, valid range [0, Rows)
	Col int // column index, valid range [0, Cols)
}

// Matrix is an integer sparse matrix in dictionary-of-keys form.
// Dimensions are fixed at construction; the entry map is owned
// exclusively by its Matrix and never shared between instances.
//
// Zero values are never stored: Set(r, c, 0) deletes the entry, so
// iteration over elements visits exactly the non-zero cells.
type Matrix struct {
	rows, cols int
	elements   map[Coord]int64
}
