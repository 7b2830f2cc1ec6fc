package form

import "formvalue/cast"

// Model is the capability set the resolver consumes from a host model.
type Model interface {
	// Attribute returns the raw stored value of key.
	Attribute(key string) (any, bool)
	// Casts returns the declared casts by attribute key.
	Casts() cast.Declarations
	// LegacyDates returns keys treated as dates regardless of their cast.
	LegacyDates() []string
	// Relation returns the loaded related value of key. A loaded relation
	// may be nil; loaded is false when key is not a relation.
	Relation(key string) (related any, loaded bool)
}

// Resolvable is implemented by related values that resolve the remainder of
// a path themselves.
type Resolvable interface {
	FormValue(path string) (any, error)
}

// DateFormatter is implemented by models storing dates in a specific layout.
// The layout is tried before the coercer defaults.
type DateFormatter interface {
	DateFormat() string
}
