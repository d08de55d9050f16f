// Package fsio provides the byte-level file primitives used by the
// configuration accessor and its backends.
//
// ReadAll is the read-everything primitive: it validates that the path
// references a regular file and returns the complete contents. WriteAll is
// the write-everything primitive: overwrites are staged through a temporary
// file and renamed into place so a failed write never leaves a half-written
// target, while append mode writes through directly.
//
// Error Handling:
//   - Missing files surface the underlying fs.ErrNotExist through wrapping
//   - Use errors.Is(err, fsio.ErrIsDirectory) to detect directory paths
//   - All errors include the cleaned path for context
package fsio
