package config

import (
	"log/slog"

	"github.com/0xalexb/stig-config/backend"
)

// Option defines a function type for configuring an Accessor.
type Option func(*settings)

type settings struct {
	readWrite bool
	readOnly  bool
	compact   bool
	registry  *backend.Registry
	logger    *slog.Logger
}

// WithReadWrite enables mutation and persistence (Set, Delete, Save).
// Without it the accessor is read-only.
func WithReadWrite() Option {
	return func(s *settings) {
		s.readWrite = true
	}
}

// WithReadOnly forces the read-only policy. It wins over WithReadWrite
// regardless of the order the options are applied in.
func WithReadOnly() Option {
	return func(s *settings) {
		s.readOnly = true
	}
}

// WithCompact selects dense output for backends that distinguish dense from
// human-readable encoding. Backends without the distinction ignore it.
func WithCompact() Option {
	return func(s *settings) {
		s.compact = true
	}
}

// WithRegistry replaces DefaultRegistry as the accessor's backend registry.
// Register additional backends before the first load; the backend choice is
// made once, at load time.
func WithRegistry(registry *backend.Registry) Option {
	return func(s *settings) {
		s.registry = registry
	}
}

// WithLogger sets the logger for load and save events.
// Defaults to slog.Default.
func WithLogger(logger *slog.Logger) Option {
	return func(s *settings) {
		s.logger = logger
	}
}
