package json

import (
	"fmt"

	"github.com/ohler55/ojg/oj"
	"github.com/tidwall/jsonc"

	"github.com/0xalexb/stig-config/backend"
)

// Suffixes lists the filename suffixes this backend is registered under by
// default.
var Suffixes = []string{".json", ".jsn", ".jsonc"}

const prettyIndent = 2

// Backend implements backend.Backend for JSON documents. Input may carry
// comments and trailing commas (JSONC); they are stripped before parsing.
// Output is always plain JSON.
type Backend struct{}

// New creates a new JSON backend instance.
func New() *Backend {
	return &Backend{}
}

// Decode parses JSON data into a string-keyed tree.
func (b *Backend) Decode(data []byte) (map[string]any, error) {
	if len(data) == 0 {
		return nil, backend.ErrEmptyData
	}

	value, err := oj.Parse(jsonc.ToJSON(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", backend.ErrDecode, err)
	}

	root, ok := value.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: got %T", backend.ErrRootNotMapping, value)
	}

	return root, nil
}

// Encode serializes tree to JSON bytes: dense when opts.Compact is set,
// otherwise indented with a trailing newline.
func (b *Backend) Encode(tree map[string]any, opts backend.EncodeOptions) ([]byte, error) {
	if opts.Compact {
		data, err := oj.Marshal(tree)
		if err != nil {
			return nil, fmt.Errorf("marshaling JSON: %w", err)
		}

		return data, nil
	}

	data, err := oj.Marshal(tree, prettyIndent)
	if err != nil {
		return nil, fmt.Errorf("marshaling JSON: %w", err)
	}

	return append(data, '\n'), nil
}
