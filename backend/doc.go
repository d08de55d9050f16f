// Package backend defines the serialization capability shared by all
// configuration formats and the registry that selects one by filename.
//
// A Backend turns raw bytes into a string-keyed tree and back. The concrete
// formats live in subpackages (json, yaml, toml) so that importing the
// registry does not drag in every codec. Selection is static: a registry
// entry pairs a backend with a filename predicate, usually built with
// Suffixes, and Resolve returns the first entry that matches. Content is
// never inspected to guess a format.
package backend
