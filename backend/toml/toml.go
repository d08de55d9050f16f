package toml

import (
	"bytes"
	"fmt"

	"github.com/pelletier/go-toml/v2"

	"github.com/0xalexb/stig-config/backend"
)

// Suffixes lists the filename suffixes this backend is conventionally
// registered under.
var Suffixes = []string{".toml"}

// Backend implements backend.Backend for TOML documents. It is not part of
// the default registry; register it explicitly:
//
//	registry.Register("toml", backend.Suffixes(toml.Suffixes...), toml.New())
type Backend struct{}

// New creates a new TOML backend instance.
func New() *Backend {
	return &Backend{}
}

// Decode parses TOML data into a string-keyed tree. Every TOML document is
// rooted at a table, so a whitespace-only document decodes to an empty tree.
func (b *Backend) Decode(data []byte) (map[string]any, error) {
	if len(data) == 0 {
		return nil, backend.ErrEmptyData
	}

	var root map[string]any

	err := toml.Unmarshal(data, &root)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", backend.ErrDecode, err)
	}

	if root == nil {
		root = map[string]any{}
	}

	return root, nil
}

// Encode serializes tree to TOML bytes. Compact output leaves nested tables
// unindented; otherwise tables are indented.
func (b *Backend) Encode(tree map[string]any, opts backend.EncodeOptions) ([]byte, error) {
	var buf bytes.Buffer

	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(!opts.Compact)

	err := enc.Encode(tree)
	if err != nil {
		return nil, fmt.Errorf("marshaling TOML: %w", err)
	}

	return buf.Bytes(), nil
}
