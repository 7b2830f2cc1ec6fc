package fieldpath

import (
	"errors"
	"fmt"
	"strings"
)

// Separator splits path segments.
const Separator = "."

// Wildcard matches every element of a collection.
const Wildcard = "*"

// ErrInvalidPath is returned for empty paths and paths with empty segments.
var ErrInvalidPath = errors.New("invalid path")

// Path is a parsed dotted path. The zero Path is empty and addresses the
// root value itself.
type Path struct {
	segments []string
}

// Parse parses a dotted path such as "address.city".
func Parse(path string) (Path, error) {
	if path == "" {
		return Path{}, fmt.Errorf("%w: empty path", ErrInvalidPath)
	}

	segments := strings.Split(path, Separator)
	for _, segment := range segments {
		if segment == "" {
			return Path{}, fmt.Errorf("%w %q: empty segment", ErrInvalidPath, path)
		}
	}

	return Path{segments: segments}, nil
}

// MustParse is like Parse but panics on error.
func MustParse(path string) Path {
	p, err := Parse(path)
	if err != nil {
		panic(err)
	}

	return p
}

// Of builds a path from segments without validation.
func Of(segments ...string) Path {
	return Path{segments: segments}
}

// Head returns the first segment, or "" for an empty path.
func (p Path) Head() string {
	if len(p.segments) == 0 {
		return ""
	}

	return p.segments[0]
}

// Tail returns the path without its first segment.
func (p Path) Tail() Path {
	if len(p.segments) <= 1 {
		return Path{}
	}

	return Path{segments: p.segments[1:]}
}

// IsEmpty returns true if the path has no segments.
func (p Path) IsEmpty() bool {
	return len(p.segments) == 0
}

// Len returns the number of segments.
func (p Path) Len() int {
	return len(p.segments)
}

// Segments returns a copy of the segments.
func (p Path) Segments() []string {
	return append([]string(nil), p.segments...)
}

// String joins the segments back into a dotted path.
func (p Path) String() string {
	return strings.Join(p.segments, Separator)
}
