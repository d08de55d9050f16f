package backend

import (
	"fmt"
	"strings"
)

// Match reports whether a backend should handle the given filename.
type Match func(filename string) bool

type entry struct {
	name    string
	match   Match
	backend Backend
}

// Registry is an ordered collection of backends keyed by filename predicates.
// Resolution walks the entries in registration order and the first match
// wins, so earlier registrations take precedence over later ones.
//
// A Registry is owned by whoever constructs it; there is no package-level
// instance. It is not safe for concurrent mutation.
type Registry struct {
	entries []entry
}

// NewRegistry returns a registry with no backends registered.
func NewRegistry() *Registry {
	return &Registry{entries: nil}
}

// Register appends a backend under a name with a filename predicate.
// Registering a second backend whose predicate overlaps an earlier one has
// no effect for the overlapping filenames; the earlier entry keeps winning.
func (r *Registry) Register(name string, match Match, b Backend) {
	r.entries = append(r.entries, entry{name: name, match: match, backend: b})
}

// Resolve returns the first registered backend whose predicate matches
// filename, together with the name it was registered under. Returns
// ErrNoBackend when nothing matches.
func (r *Registry) Resolve(filename string) (Backend, string, error) {
	for _, e := range r.entries {
		if e.match(filename) {
			return e.backend, e.name, nil
		}
	}

	return nil, "", fmt.Errorf("%w: %q", ErrNoBackend, filename)
}

// Names returns the registered backend names in precedence order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.entries))
	for _, e := range r.entries {
		names = append(names, e.name)
	}

	return names
}

// Suffixes builds a Match that reports true when the filename ends with any
// of the given suffixes, compared case-insensitively.
func Suffixes(suffixes ...string) Match {
	lowered := make([]string, len(suffixes))
	for i, suffix := range suffixes {
		lowered[i] = strings.ToLower(suffix)
	}

	return func(filename string) bool {
		name := strings.ToLower(filename)

		for _, suffix := range lowered {
			if strings.HasSuffix(name, suffix) {
				return true
			}
		}

		return false
	}
}
