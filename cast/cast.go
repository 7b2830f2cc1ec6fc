package cast

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrEmptyCast is returned when a cast declaration is blank.
var ErrEmptyCast = errors.New("empty cast declaration")

// Cast is a parsed cast declaration.
type Cast struct {
	Kind Kind
	// Format is the Go layout of a custom-format date, the type name of an
	// enum, or the raw declaration of any other cast.
	Format string
}

// dateNames lists the declarations that coerce to a date without a format.
var dateNames = map[string]Kind{
	"date":               KindDate,
	"immutable_date":     KindDate,
	"datetime":           KindDateTime,
	"immutable_datetime": KindDateTime,
	"timestamp":          KindDateTime,
}

// ParseCast parses a cast declaration such as "datetime", "date:2006-01-02"
// or "enum". Unknown declarations parse to KindOther.
func ParseCast(decl string) (Cast, error) {
	decl = strings.TrimSpace(decl)
	if decl == "" {
		return Cast{}, ErrEmptyCast
	}

	name, format, hasFormat := strings.Cut(decl, ":")
	name = strings.ToLower(strings.TrimSpace(name))
	format = strings.TrimSpace(format)

	if kind, ok := dateNames[name]; ok {
		if !hasFormat {
			return Cast{Kind: kind}, nil
		}

		if format == "" {
			return Cast{}, fmt.Errorf("cast %q: empty date format", decl)
		}

		return Cast{Kind: KindCustomDate, Format: format}, nil
	}

	if name == "enum" {
		return Cast{Kind: KindEnum, Format: format}, nil
	}

	return Cast{Kind: KindOther, Format: decl}, nil
}

// MustParse is like ParseCast but panics on error.
// Useful for static declarations in model definitions.
func MustParse(decl string) Cast {
	c, err := ParseCast(decl)
	if err != nil {
		panic(err)
	}

	return c
}

// String renders the cast back into its declaration form.
func (c Cast) String() string {
	switch c.Kind {
	case KindNone:
		return ""
	case KindCustomDate:
		return "datetime:" + c.Format
	case KindEnum:
		if c.Format != "" {
			return "enum:" + c.Format
		}

		return "enum"
	case KindOther:
		return c.Format
	default:
		return c.Kind.String()
	}
}

// IsDate returns true if the cast coerces to time.Time.
func (c Cast) IsDate() bool {
	return c.Kind.IsDate()
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *Cast) UnmarshalYAML(node *yaml.Node) error {
	var decl string
	if err := node.Decode(&decl); err != nil {
		return fmt.Errorf("line %d: cast must be a string: %w", node.Line, err)
	}

	parsed, err := ParseCast(decl)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}

	*c = parsed

	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (c Cast) MarshalYAML() (any, error) {
	return c.String(), nil
}

// Declarations maps attribute keys to their casts.
type Declarations map[string]Cast

// Of returns the cast declared for key, or the zero Cast.
func (d Declarations) Of(key string) Cast {
	return d[key]
}

// DateKeys returns the sorted keys whose cast coerces to a date,
// including custom-format dates.
func (d Declarations) DateKeys() []string {
	var keys []string

	for key, c := range d {
		if c.IsDate() {
			keys = append(keys, key)
		}
	}

	sort.Strings(keys)

	return keys
}

// Parse builds declarations from plain key to declaration strings.
func Parse(decls map[string]string) (Declarations, error) {
	result := make(Declarations, len(decls))

	for key, decl := range decls {
		c, err := ParseCast(decl)
		if err != nil {
			return nil, fmt.Errorf("cast for %q: %w", key, err)
		}

		result[key] = c
	}

	return result, nil
}
