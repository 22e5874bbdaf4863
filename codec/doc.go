// Package codec converts sparse matrices to and from their canonical
// textual form.
//
// 🚀 The format
//
//	rows=<int>
//	cols=<int>
//	(<row>, <col>, <value>)
//	...
//
// Blank lines (before trimming) are ignored anywhere in the file. The
// two header lines are mandatory and strict: the prefix must be exactly
// "rows=" / "cols=" and the suffix a bare base-10 integer — no spaces,
// no extra tokens. Every further non-empty line must match
// "(<int>, <int>, <int>)" exactly: wrapping parentheses, exactly two
// commas, each field a bare integer once trimmed. Whitespace is
// tolerated around each field but never inside an integer lexeme.
//
// ✨ Guarantees:
//   - Parse fails fast with ErrInvalidFormat on the first violation;
//     no partial matrices are ever returned.
//   - Entry coordinates outside the declared dimensions are format
//     errors too (the parser validates what the file CLAIMS, so a bad
//     file never reaches the matrix write path).
//   - A value of 0 in the file is legal and stores nothing; duplicate
//     coordinates resolve last-occurrence-wins.
//   - Serialize emits entries sorted by column then row — a canonical
//     order chosen for golden-file stability — and its output always
//     re-parses to an equal matrix (round-trip identity).
//
// ⚙️ Usage:
//
//	m, err := codec.Parse("rows=2\ncols=2\n(0, 0, 5)")
//	if err != nil {
//	  // errors.Is(err, codec.ErrInvalidFormat)
//	}
//	text := codec.Serialize(m)
//
// Path-level reading and writing lives in the matfile package; codec
// itself never touches the filesystem.
package codec
