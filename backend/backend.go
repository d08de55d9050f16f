package backend

import "errors"

// ErrNoBackend is returned when no registered backend matches a filename.
var ErrNoBackend = errors.New("no backend matches filename")

// ErrDecode wraps format-specific parse failures so callers can detect the
// class without knowing the backend.
var ErrDecode = errors.New("decoding failed")

// ErrEmptyData is returned by Decode when there is nothing to parse.
var ErrEmptyData = errors.New("data is empty")

// ErrRootNotMapping is returned by Decode when the document parses but its
// root is not a mapping. Trees are always rooted at a mapping.
var ErrRootNotMapping = errors.New("document root is not a mapping")

// EncodeOptions carries format-independent encoding preferences. Backends
// without a concept for a given option ignore it.
type EncodeOptions struct {
	// Compact selects dense output over human-readable output.
	Compact bool
}

// Backend is the capability pair implemented once per serialization format:
// Decode parses raw bytes into a string-keyed tree and Encode serializes a
// tree back to bytes. Implementations are stateless and safe to share.
type Backend interface {
	Decode(data []byte) (map[string]any, error)
	Encode(tree map[string]any, opts EncodeOptions) ([]byte, error)
}
