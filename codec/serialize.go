package codec

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Dankagame/DSA-HW01---Sparse-Matrix/sparse"
)

// Serialize renders a matrix in the canonical textual form: the two
// header lines followed by one "(row, col, value)" line per stored
// entry, without a trailing newline.
//
// Entry order is deterministic: column index ascending, then row index
// ascending within a column. Column-major on purpose — the historical
// output order of this format — and kept stable so golden files and
// byte-level diffs keep working.
//
// The output is always re-parseable: Parse(Serialize(m)) yields a
// matrix Equal to m for any m with in-bounds entries.
//
// Complexity: O(nnz · log nnz) for the sort.
func Serialize(m *sparse.Matrix) string {
	coords := m.Coords()
	sort.Slice(coords, func(i, j int) bool {
		if coords[i].Col != coords[j].Col {
			return coords[i].Col < coords[j].Col
		}
		return coords[i].Row < coords[j].Row
	})

	var sb strings.Builder
	fmt.Fprintf(&sb, "rows=%d\n", m.Rows())
	fmt.Fprintf(&sb, "cols=%d", m.Cols())
	for _, key := range coords {
		fmt.Fprintf(&sb, "\n(%d, %d, %d)", key.Row, key.Col, m.At(key.Row, key.Col))
	}
	return sb.String()
}
