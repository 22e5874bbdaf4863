package matfile

import (
	"errors"
	"fmt"
	"os"

	"github.com/Dankagame/DSA-HW01---Sparse-Matrix/codec"
	"github.com/Dankagame/DSA-HW01---Sparse-Matrix/sparse"
)

// Sentinel errors for the filesystem boundary. Both are always wrapped
// together with the underlying os error, so errors.Is matches the
// sentinel and the message still names the cause and the path.
var (
	// ErrRead indicates the file could not be read at all (missing,
	// permission, ...). Distinct from codec.ErrInvalidFormat, which
	// means the file was read fine but is not in the format.
	ErrRead = errors.New("matfile: read failed")

	// ErrWrite indicates the serialized result could not be written.
	ErrWrite = errors.New("matfile: write failed")
)

// filePerm is the mode for files Save creates.
const filePerm = 0o644

// Load reads the file at path and parses it into a matrix.
//
// Errors:
//   - ErrRead (wrapping the os cause) — the file could not be read.
//   - codec.ErrInvalidFormat — the content is not in the format.
func Load(path string) (*sparse.Matrix, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrRead, path, err)
	}
	return codec.Parse(string(raw))
}

// Save serializes m canonically and writes it to path, creating or
// truncating the file.
//
// Errors:
//   - ErrWrite (wrapping the os cause) — the file could not be written.
func Save(path string, m *sparse.Matrix) error {
	if err := os.WriteFile(path, []byte(codec.Serialize(m)), filePerm); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWrite, path, err)
	}
	return nil
}
