// Package matfile is the filesystem boundary of the sparse matrix
// calculator: Load reads and parses a matrix file, Save serializes and
// writes one. Nothing else in the module opens files.
//
// I/O failures are reported distinctly from format failures: a read or
// write error wraps the ErrRead / ErrWrite sentinel together with the
// underlying cause, while a malformed file surfaces the codec error
// untouched. Callers discriminate with errors.Is.
package matfile
