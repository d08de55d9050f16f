package textfile

import (
	"strings"

	"github.com/0xalexb/stig-config/fsio"
)

// Buffer accumulates text bound for a file. Mutators return the receiver so
// edits chain; nothing reaches the file until Save or SaveAppend.
type Buffer struct {
	path    string
	content []byte
}

// New creates an empty buffer bound to path. The file is not touched.
func New(path string) *Buffer {
	return &Buffer{path: path, content: nil}
}

// Load replaces the buffer content with the current file content.
func (b *Buffer) Load() error {
	data, err := fsio.ReadAll(b.path)
	if err != nil {
		return err
	}

	b.content = data

	return nil
}

// Append adds s to the buffer as-is.
func (b *Buffer) Append(s string) *Buffer {
	b.content = append(b.content, s...)

	return b
}

// AppendLine adds s to the buffer, appending a trailing newline unless s
// already ends with one.
func (b *Buffer) AppendLine(s string) *Buffer {
	b.Append(s)

	if !strings.HasSuffix(s, "\n") {
		b.content = append(b.content, '\n')
	}

	return b
}

// Replace discards the buffer content and substitutes s.
func (b *Buffer) Replace(s string) *Buffer {
	b.content = []byte(s)

	return b
}

// Len returns the buffered content length in bytes.
func (b *Buffer) Len() int {
	return len(b.content)
}

// String returns the buffered content.
func (b *Buffer) String() string {
	return string(b.content)
}

// Path returns the file this buffer is bound to.
func (b *Buffer) Path() string {
	return b.path
}

// Save atomically replaces the file content with the buffer content,
// creating the file if absent.
func (b *Buffer) Save() error {
	return fsio.WriteAll(b.path, b.content, false)
}

// SaveAppend appends the buffer content to the file instead of replacing it.
func (b *Buffer) SaveAppend() error {
	return fsio.WriteAll(b.path, b.content, true)
}
