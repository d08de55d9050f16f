package config

import "errors"

// ErrReadOnly is returned when Set, Delete or Save is called on an accessor
// without the read-write policy.
var ErrReadOnly = errors.New("accessor is read-only")

// ErrRequired is returned by Get and GetFirst when no path resolves, the
// lookup was marked WithRequired and no default was supplied.
var ErrRequired = errors.New("required value missing")

// ErrNoFormat is returned by Save before any successful load has selected a
// backend to encode with.
var ErrNoFormat = errors.New("no format selected, load first")

// ErrEmptyFilename is returned when an accessor bound to an empty filename
// is asked to touch the file.
var ErrEmptyFilename = errors.New("filename is empty")

// ErrEmptyName is returned when the module name is empty.
var ErrEmptyName = errors.New("module name cannot be empty")
