package codec

import (
	"strconv"
	"strings"

	"github.com/Dankagame/DSA-HW01---Sparse-Matrix/sparse"
)

// Header prefixes of the canonical format.
const (
	rowsPrefix = "rows="
	colsPrefix = "cols="
)

// Parse converts the full text of a matrix file into a sparse.Matrix.
//
// Description:
//
//	Lines are trimmed and empties dropped; at least two must remain.
//	Line 0 declares the row count, line 1 the column count, and every
//	further line one "(row, col, value)" entry. Dimensions may be any
//	integer (zero or negative dimensions produce a degenerate matrix
//	that simply admits no entries), but each entry coordinate must lie
//	inside the declared bounds.
//
// Entries are applied through sparse.Matrix.Set, so a literal 0 value
// stores nothing and a repeated coordinate keeps its last occurrence.
//
// Errors:
//   - ErrInvalidFormat — on the first malformed header, malformed
//     entry, non-integer field, wrong field count, or out-of-bounds
//     coordinate. No partial matrix is returned.
//
// Complexity: O(number of lines).
func Parse(text string) (*sparse.Matrix, error) {
	lines := make([]string, 0, strings.Count(text, "\n")+1)
	for _, raw := range strings.Split(text, "\n") {
		if line := strings.TrimSpace(raw); line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) < 2 {
		return nil, ErrInvalidFormat
	}

	rows, err := parseHeader(lines[0], rowsPrefix)
	if err != nil {
		return nil, err
	}
	cols, err := parseHeader(lines[1], colsPrefix)
	if err != nil {
		return nil, err
	}

	matrix := sparse.New(rows, cols)
	for _, line := range lines[2:] {
		row, col, value, err := parseEntry(line)
		if err != nil {
			return nil, err
		}
		if row < 0 || row >= rows || col < 0 || col >= cols {
			// Reported as a format error, not a bounds error: the file
			// itself is inconsistent with its own header.
			return nil, ErrInvalidFormat
		}
		// In-bounds after the check above, so Set cannot fail.
		_ = matrix.Set(row, col, value)
	}
	return matrix, nil
}

// parseHeader validates one "rows=<int>" / "cols=<int>" line and
// returns the declared dimension. The suffix must satisfy strconv.Atoi
// verbatim: no surrounding spaces, no extra tokens.
func parseHeader(line, prefix string) (int, error) {
	if !strings.HasPrefix(line, prefix) {
		return 0, ErrInvalidFormat
	}
	n, err := strconv.Atoi(line[len(prefix):])
	if err != nil {
		return 0, ErrInvalidFormat
	}
	return n, nil
}

// parseEntry validates one "(<int>, <int>, <int>)" line. Each field is
// trimmed and must then be a bare base-10 integer — "1 2" is two
// tokens, not a tolerated integer.
func parseEntry(line string) (row, col int, value int64, err error) {
	if !strings.HasPrefix(line, "(") || !strings.HasSuffix(line, ")") {
		return 0, 0, 0, ErrInvalidFormat
	}
	fields := strings.Split(line[1:len(line)-1], ",")
	if len(fields) != 3 {
		return 0, 0, 0, ErrInvalidFormat
	}
	if row, err = strconv.Atoi(strings.TrimSpace(fields[0])); err != nil {
		return 0, 0, 0, ErrInvalidFormat
	}
	if col, err = strconv.Atoi(strings.TrimSpace(fields[1])); err != nil {
		return 0, 0, 0, ErrInvalidFormat
	}
	if value, err = strconv.ParseInt(strings.TrimSpace(fields[2]), 10, 64); err != nil {
		return 0, 0, 0, ErrInvalidFormat
	}
	return row, col, value, nil
}
