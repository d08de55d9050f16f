package config

import (
	"fmt"
	"log/slog"

	"github.com/0xalexb/stig-config/backend"
	"github.com/0xalexb/stig-config/fsio"
	"github.com/0xalexb/stig-config/tree"
)

// Accessor provides structured access to one configuration file. The file is
// decoded on first use through the backend its filename selects, and the
// resulting tree is cached until Reload. Mutations act on the cached tree;
// nothing reaches the file until Save.
//
// An Accessor is not safe for concurrent use.
type Accessor struct {
	filename string
	registry *backend.Registry
	logger   *slog.Logger

	readWrite bool
	compact   bool

	tree    map[string]any
	backend backend.Backend
	format  string
	loaded  bool
}

// New creates an Accessor for filename. The file is not touched until the
// first operation that needs data, or an explicit Load. By default the
// accessor is read-only; pass WithReadWrite to enable Set, Delete and Save.
func New(filename string, opts ...Option) *Accessor {
	var s settings

	for _, apply := range opts {
		apply(&s)
	}

	registry := s.registry
	if registry == nil {
		registry = DefaultRegistry()
	}

	logger := s.logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Accessor{
		filename:  filename,
		registry:  registry,
		logger:    logger,
		readWrite: s.readWrite && !s.readOnly,
		compact:   s.compact,
	}
}

// Load reads and decodes the file. Loading is memoized: after the first
// success it is a no-op until Reload. A failed load is not memoized and is
// retried by the next operation that needs data.
func (a *Accessor) Load() error {
	if a.loaded {
		return nil
	}

	return a.Reload()
}

// Reload re-reads and re-decodes the file unconditionally, discarding any
// unsaved in-memory mutations.
func (a *Accessor) Reload() error {
	if a.filename == "" {
		return ErrEmptyFilename
	}

	b, format, err := a.registry.Resolve(a.filename)
	if err != nil {
		return err
	}

	data, err := fsio.ReadAll(a.filename)
	if err != nil {
		return err
	}

	root, err := b.Decode(data)
	if err != nil {
		return fmt.Errorf("decoding %q: %w", a.filename, err)
	}

	a.tree = root
	a.backend = b
	a.format = format
	a.loaded = true

	a.logger.Debug("configuration loaded",
		slog.String("filename", a.filename),
		slog.String("format", format))

	return nil
}

// Has reports whether key exists at the top level of the tree. Nested paths
// are not resolved; use Lookup for those. An unloadable file reports false.
func (a *Accessor) Has(key string) bool {
	if err := a.Load(); err != nil {
		a.logger.Warn("existence check on unloadable configuration",
			slog.String("filename", a.filename),
			slog.Any("error", err))

		return false
	}

	_, ok := a.tree[key]

	return ok
}

// Set assigns value at a dotted path, creating missing intermediate mappings
// on the way down. Sequence segments must address existing elements; Set
// never grows a sequence. The assignment only touches the cached tree; call
// Save to persist it.
func (a *Accessor) Set(path string, value any) error {
	if !a.readWrite {
		return fmt.Errorf("set %q: %w", path, ErrReadOnly)
	}

	if err := a.Load(); err != nil {
		return err
	}

	return tree.Set(a.tree, path, value)
}

// Delete removes the value at a dotted path from the cached tree. A missing
// key removes nothing and is not an error. Only mapping entries can be
// removed; sequence elements cannot.
func (a *Accessor) Delete(path string) error {
	if !a.readWrite {
		return fmt.Errorf("delete %q: %w", path, ErrReadOnly)
	}

	if err := a.Load(); err != nil {
		return err
	}

	_, err := tree.Delete(a.tree, path)

	return err
}

// Save encodes the cached tree through the backend selected at load time and
// atomically replaces the file. It fails with ErrReadOnly without the
// read-write policy and with ErrNoFormat before the first successful load.
func (a *Accessor) Save() error {
	if !a.readWrite {
		return fmt.Errorf("save %q: %w", a.filename, ErrReadOnly)
	}

	if !a.loaded {
		return fmt.Errorf("save %q: %w", a.filename, ErrNoFormat)
	}

	data, err := a.backend.Encode(a.tree, backend.EncodeOptions{Compact: a.compact})
	if err != nil {
		return fmt.Errorf("encoding %q: %w", a.filename, err)
	}

	err = fsio.WriteAll(a.filename, data, false)
	if err != nil {
		return err
	}

	a.logger.Debug("configuration saved",
		slog.String("filename", a.filename),
		slog.String("format", a.format))

	return nil
}

// Filename returns the file this accessor is bound to.
func (a *Accessor) Filename() string {
	return a.filename
}

// Format returns the name the backend selected at load time was registered
// under, or the empty string before the first successful load.
func (a *Accessor) Format() string {
	return a.format
}

// Loaded reports whether the tree is currently cached.
func (a *Accessor) Loaded() bool {
	return a.loaded
}

// ReadWrite reports whether mutation and persistence are enabled.
func (a *Accessor) ReadWrite() bool {
	return a.readWrite
}
