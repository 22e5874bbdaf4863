package codec

import "errors"

// ErrInvalidFormat covers every parse failure: missing or malformed
// header, malformed entry line, non-integer field, wrong field count,
// and out-of-bounds entry coordinates. A single fixed-message sentinel
// on purpose — the file either is in the format or it is not, and
// parsing aborts on the first violation.
var ErrInvalidFormat = errors.New("codec: invalid file format")
