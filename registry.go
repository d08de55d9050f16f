package config

import (
	"github.com/0xalexb/stig-config/backend"
	"github.com/0xalexb/stig-config/backend/json"
	"github.com/0xalexb/stig-config/backend/yaml"
)

// Backend names used by the built-in registry and reported by Format.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// DefaultRegistry returns a registry holding the built-in backends: JSON for
// .json, .jsn and .jsonc files, then YAML for .yaml and .yml files. Both
// predicates compare suffixes case-insensitively.
//
// Additional formats can be registered on the returned registry; built-ins
// keep precedence for the suffixes they already cover.
func DefaultRegistry() *backend.Registry {
	registry := backend.NewRegistry()
	registry.Register(FormatJSON, backend.Suffixes(json.Suffixes...), json.New())
	registry.Register(FormatYAML, backend.Suffixes(yaml.Suffixes...), yaml.New())

	return registry
}
