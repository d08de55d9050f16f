package fsio

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// ErrIsDirectory is returned when a path points to a directory instead of a regular file.
var ErrIsDirectory = errors.New("path is a directory, not a file")

// DefaultFileMode is the permission set applied to files created by WriteAll.
const DefaultFileMode fs.FileMode = 0o644

// ReadAll reads the entire file at path and returns its contents.
// Returns an error if the file cannot be read or if the path points to a directory.
func ReadAll(path string) ([]byte, error) {
	cleanPath := filepath.Clean(path)

	stat, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("stat file %q: %w", cleanPath, err)
	}

	if stat.IsDir() {
		return nil, fmt.Errorf("path %q: %w", cleanPath, ErrIsDirectory)
	}

	data, err := os.ReadFile(cleanPath) // #nosec G304 -- path is cleaned and validated
	if err != nil {
		return nil, fmt.Errorf("reading file %q: %w", cleanPath, err)
	}

	return data, nil
}

// WriteAll writes data to the file at path.
//
// In overwrite mode (appendMode false) the data is staged in a temporary file
// in the destination directory and renamed over the target, so the target
// never holds partial content: either the full data lands or the previous
// content survives. The mode of an existing target is preserved; new files
// are created with DefaultFileMode.
//
// In append mode the data is appended directly, creating the file if absent.
// Appends are not staged.
func WriteAll(path string, data []byte, appendMode bool) error {
	cleanPath := filepath.Clean(path)

	if appendMode {
		return appendAll(cleanPath, data)
	}

	mode := DefaultFileMode

	if stat, err := os.Stat(cleanPath); err == nil {
		if stat.IsDir() {
			return fmt.Errorf("path %q: %w", cleanPath, ErrIsDirectory)
		}

		mode = stat.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(cleanPath), "."+filepath.Base(cleanPath)+".*")
	if err != nil {
		return fmt.Errorf("creating temp file for %q: %w", cleanPath, err)
	}

	tmpPath := tmp.Name()

	_, writeErr := tmp.Write(data)

	closeErr := tmp.Close()
	if writeErr != nil {
		_ = os.Remove(tmpPath)

		return fmt.Errorf("writing temp file for %q: %w", cleanPath, writeErr)
	}

	if closeErr != nil {
		_ = os.Remove(tmpPath)

		return fmt.Errorf("closing temp file for %q: %w", cleanPath, closeErr)
	}

	if err := os.Chmod(tmpPath, mode); err != nil {
		_ = os.Remove(tmpPath)

		return fmt.Errorf("setting mode on temp file for %q: %w", cleanPath, err)
	}

	if err := os.Rename(tmpPath, cleanPath); err != nil {
		_ = os.Remove(tmpPath)

		return fmt.Errorf("replacing %q: %w", cleanPath, err)
	}

	return nil
}

func appendAll(path string, data []byte) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, DefaultFileMode) // #nosec G304 -- path is cleaned and validated
	if err != nil {
		return fmt.Errorf("opening %q for append: %w", path, err)
	}

	_, writeErr := f.Write(data)

	closeErr := f.Close()
	if writeErr != nil {
		return fmt.Errorf("appending to %q: %w", path, writeErr)
	}

	if closeErr != nil {
		return fmt.Errorf("closing %q: %w", path, closeErr)
	}

	return nil
}
