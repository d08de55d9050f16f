package tree

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Separator splits a path expression into segments.
const Separator = "."

// ErrNotContainer is returned by Set and Delete when a segment addresses a
// value that cannot hold the requested child.
var ErrNotContainer = errors.New("segment addresses a value that holds no children")

// ErrBadIndex is returned by Set when a segment descends into a sequence but
// is not a non-negative integer.
var ErrBadIndex = errors.New("segment is not a valid sequence index")

// ErrIndexOutOfRange is returned by Set when a sequence index is past the end
// of the sequence. Set never grows sequences.
var ErrIndexOutOfRange = errors.New("sequence index out of range")

// ErrEmptyPath is returned by Set when the path is empty; the root itself
// cannot be replaced through a path.
var ErrEmptyPath = errors.New("path is empty")

// Resolve walks node along a dotted path and reports whether every segment
// addressed a value. Mapping nodes are descended by key, sequence nodes by
// decimal index. The walk stops at the first segment that does not resolve.
//
// The boolean is the only presence signal: a stored nil, false or empty value
// resolves as present. An empty path resolves to node itself.
func Resolve(node any, path string) (any, bool) {
	if path == "" {
		return node, true
	}

	current := node

	for _, segment := range strings.Split(path, Separator) {
		next, ok := descend(current, segment)
		if !ok {
			return nil, false
		}

		current = next
	}

	return current, true
}

func descend(node any, segment string) (any, bool) {
	switch typed := node.(type) {
	case map[string]any:
		value, ok := typed[segment]

		return value, ok
	case []any:
		idx, err := sequenceIndex(segment, len(typed))
		if err != nil {
			return nil, false
		}

		return typed[idx], true
	default:
		return nil, false
	}
}

// Set assigns value at a dotted path below root. Missing intermediate
// segments are created as mappings; sequence segments must address existing
// elements. The final segment is assigned in place: a mapping key is created
// or replaced, a sequence element is replaced. Assigning into a nil mapping
// fails with ErrNotContainer.
func Set(root map[string]any, path string, value any) error {
	if path == "" {
		return ErrEmptyPath
	}

	segments := strings.Split(path, Separator)

	var current any = root

	for _, segment := range segments[:len(segments)-1] {
		next, err := descendCreating(current, segment)
		if err != nil {
			return fmt.Errorf("path %q: %w", path, err)
		}

		current = next
	}

	last := segments[len(segments)-1]

	switch typed := current.(type) {
	case map[string]any:
		if typed == nil {
			return fmt.Errorf("path %q: %w", path, ErrNotContainer)
		}

		typed[last] = value
	case []any:
		idx, err := sequenceIndex(last, len(typed))
		if err != nil {
			return fmt.Errorf("path %q: %w", path, err)
		}

		typed[idx] = value
	default:
		return fmt.Errorf("path %q: %w", path, ErrNotContainer)
	}

	return nil
}

// Delete removes the value at a dotted path below root and reports whether
// anything was removed. Only mapping entries can be removed: a final segment
// whose parent resolves to a sequence or scalar fails with ErrNotContainer,
// since removing a sequence element would reshape the sequence. Missing keys
// along the path remove nothing and are not an error.
func Delete(root map[string]any, path string) (bool, error) {
	if path == "" {
		return false, ErrEmptyPath
	}

	segments := strings.Split(path, Separator)

	var current any = root

	for _, segment := range segments[:len(segments)-1] {
		next, ok := descend(current, segment)
		if !ok {
			return false, nil
		}

		current = next
	}

	last := segments[len(segments)-1]

	parent, ok := current.(map[string]any)
	if !ok {
		return false, fmt.Errorf("path %q: %w", path, ErrNotContainer)
	}

	if _, ok := parent[last]; !ok {
		return false, nil
	}

	delete(parent, last)

	return true, nil
}

func descendCreating(node any, segment string) (any, error) {
	switch typed := node.(type) {
	case map[string]any:
		if typed == nil {
			return nil, ErrNotContainer
		}

		next, ok := typed[segment]
		if !ok {
			created := map[string]any{}
			typed[segment] = created

			return created, nil
		}

		return next, nil
	case []any:
		idx, err := sequenceIndex(segment, len(typed))
		if err != nil {
			return nil, err
		}

		return typed[idx], nil
	default:
		return nil, ErrNotContainer
	}
}

func sequenceIndex(segment string, length int) (int, error) {
	idx, err := strconv.Atoi(segment)
	if err != nil || idx < 0 {
		return 0, fmt.Errorf("%w: %q", ErrBadIndex, segment)
	}

	if idx >= length {
		return 0, fmt.Errorf("%w: %d with length %d", ErrIndexOutOfRange, idx, length)
	}

	return idx, nil
}
