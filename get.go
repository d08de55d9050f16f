package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ohler55/ojg/oj"
	"github.com/spf13/cast"

	"github.com/0xalexb/stig-config/tree"
)

// GetOption adjusts how Get and GetFirst treat a path that does not resolve.
type GetOption func(*getSettings)

type getSettings struct {
	fallback    any
	hasFallback bool
	required    bool
}

// WithDefault supplies the value returned when no path resolves. A default
// wins over WithRequired when both are given.
func WithDefault(value any) GetOption {
	return func(s *getSettings) {
		s.fallback = value
		s.hasFallback = true
	}
}

// WithRequired makes the lookup fail with ErrRequired when no path resolves
// and no default was supplied.
func WithRequired() GetOption {
	return func(s *getSettings) {
		s.required = true
	}
}

// Lookup resolves a dotted path and reports whether it addressed a value.
// The boolean is the presence signal: stored nil, false, zero and empty
// values report true. A file that cannot be loaded reports false and the
// failure is logged; use Load first when the distinction matters.
func (a *Accessor) Lookup(path string) (any, bool) {
	if err := a.Load(); err != nil {
		a.logger.Warn("lookup on unloadable configuration",
			slog.String("filename", a.filename),
			slog.Any("error", err))

		return nil, false
	}

	return tree.Resolve(a.tree, path)
}

// Get resolves one dotted path. A path that does not resolve yields the
// WithDefault value, an ErrRequired failure under WithRequired, or nil with
// no error when neither is given. Load failures always propagate; defaults
// never mask them.
func (a *Accessor) Get(path string, opts ...GetOption) (any, error) {
	return a.GetFirst([]string{path}, opts...)
}

// GetFirst resolves the first path in paths that addresses a value, trying
// them in order. When none resolve, the miss is handled the way Get handles
// it, identified by the joined path list.
func (a *Accessor) GetFirst(paths []string, opts ...GetOption) (any, error) {
	var s getSettings

	for _, apply := range opts {
		apply(&s)
	}

	if err := a.Load(); err != nil {
		return nil, err
	}

	for _, path := range paths {
		if value, ok := tree.Resolve(a.tree, path); ok {
			return value, nil
		}
	}

	if s.hasFallback {
		return s.fallback, nil
	}

	if s.required {
		return nil, fmt.Errorf("%w: %s", ErrRequired, strings.Join(paths, ", "))
	}

	return nil, nil
}

// Scan resolves a dotted path and unmarshals the addressed subtree into
// target, which must be a pointer. An empty path scans the whole document.
// Returns ErrRequired when the path does not resolve.
func (a *Accessor) Scan(path string, target any) error {
	if err := a.Load(); err != nil {
		return err
	}

	value, ok := tree.Resolve(a.tree, path)
	if !ok {
		return fmt.Errorf("%w: %s", ErrRequired, path)
	}

	data, err := oj.Marshal(value)
	if err != nil {
		return fmt.Errorf("scanning %q: %w", path, err)
	}

	err = oj.Unmarshal(data, target)
	if err != nil {
		return fmt.Errorf("scanning %q: %w", path, err)
	}

	return nil
}

func getTyped[T any](a *Accessor, path string, convert func(any) (T, error), opts []GetOption) (T, error) {
	var zero T

	value, err := a.Get(path, opts...)
	if err != nil || value == nil {
		return zero, err
	}

	converted, err := convert(value)
	if err != nil {
		return zero, fmt.Errorf("path %q: %w", path, err)
	}

	return converted, nil
}

// GetString resolves path and converts the value to a string.
func (a *Accessor) GetString(path string, opts ...GetOption) (string, error) {
	return getTyped(a, path, cast.ToStringE, opts)
}

// GetBool resolves path and converts the value to a bool.
func (a *Accessor) GetBool(path string, opts ...GetOption) (bool, error) {
	return getTyped(a, path, cast.ToBoolE, opts)
}

// GetInt resolves path and converts the value to an int.
func (a *Accessor) GetInt(path string, opts ...GetOption) (int, error) {
	return getTyped(a, path, cast.ToIntE, opts)
}

// GetInt64 resolves path and converts the value to an int64.
func (a *Accessor) GetInt64(path string, opts ...GetOption) (int64, error) {
	return getTyped(a, path, cast.ToInt64E, opts)
}

// GetFloat64 resolves path and converts the value to a float64.
func (a *Accessor) GetFloat64(path string, opts ...GetOption) (float64, error) {
	return getTyped(a, path, cast.ToFloat64E, opts)
}

// GetDuration resolves path and converts the value to a time.Duration.
// Strings parse through time.ParseDuration; bare numbers are nanoseconds.
func (a *Accessor) GetDuration(path string, opts ...GetOption) (time.Duration, error) {
	return getTyped(a, path, cast.ToDurationE, opts)
}

// GetStringSlice resolves path and converts the value to a []string.
func (a *Accessor) GetStringSlice(path string, opts ...GetOption) ([]string, error) {
	return getTyped(a, path, cast.ToStringSliceE, opts)
}

// GetStringMap resolves path and converts the value to a map[string]any.
func (a *Accessor) GetStringMap(path string, opts ...GetOption) (map[string]any, error) {
	return getTyped(a, path, cast.ToStringMapE, opts)
}
