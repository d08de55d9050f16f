package yaml

import (
	"fmt"

	"github.com/goccy/go-yaml"

	"github.com/0xalexb/stig-config/backend"
)

// Suffixes lists the filename suffixes this backend is registered under by
// default.
var Suffixes = []string{".yaml", ".yml"}

// Backend implements backend.Backend for YAML documents.
type Backend struct{}

// New creates a new YAML backend instance.
func New() *Backend {
	return &Backend{}
}

// Decode parses YAML data into a string-keyed tree. A document that decodes
// to nothing (only comments or whitespace) is treated as empty.
func (b *Backend) Decode(data []byte) (map[string]any, error) {
	if len(data) == 0 {
		return nil, backend.ErrEmptyData
	}

	var value any

	err := yaml.Unmarshal(data, &value)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", backend.ErrDecode, err)
	}

	if value == nil {
		return nil, backend.ErrEmptyData
	}

	root, ok := normalize(value).(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: got %T", backend.ErrRootNotMapping, value)
	}

	return root, nil
}

// Encode serializes tree to YAML bytes. YAML block style has no dense
// variant, so the Compact option is ignored.
func (b *Backend) Encode(tree map[string]any, _ backend.EncodeOptions) ([]byte, error) {
	data, err := yaml.Marshal(tree)
	if err != nil {
		return nil, fmt.Errorf("marshaling YAML: %w", err)
	}

	return data, nil
}

// normalize rewrites any-keyed mappings into string-keyed ones. Trees are
// string-keyed; YAML permits other key types, which are rendered with
// fmt.Sprint so "1: x" becomes addressable as key "1".
func normalize(value any) any {
	switch typed := value.(type) {
	case map[string]any:
		for k, v := range typed {
			typed[k] = normalize(v)
		}

		return typed
	case map[any]any:
		m := make(map[string]any, len(typed))
		for k, v := range typed {
			m[fmt.Sprint(k)] = normalize(v)
		}

		return m
	case []any:
		for i, v := range typed {
			typed[i] = normalize(v)
		}

		return typed
	default:
		return value
	}
}
