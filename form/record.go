package form

import (
	"sort"

	"formvalue/cast"
)

// Record is an in-memory Model. Build it with NewRecord and the With methods;
// embed a *Record in a struct to attach Override methods to the struct.
type Record struct {
	attributes  map[string]any
	casts       cast.Declarations
	legacyDates []string
	dateFormat  string
	relations   map[string]any
}

// NewRecord creates a record holding attrs. The map is not copied.
func NewRecord(attrs map[string]any) *Record {
	if attrs == nil {
		attrs = map[string]any{}
	}

	return &Record{
		attributes: attrs,
		casts:      cast.Declarations{},
		relations:  map[string]any{},
	}
}

// WithCasts merges cast declarations into the record.
func (r *Record) WithCasts(casts cast.Declarations) *Record {
	for key, c := range casts {
		r.casts[key] = c
	}

	return r
}

// WithCast parses decl and declares it for key. It panics on an empty decl.
func (r *Record) WithCast(key, decl string) *Record {
	r.casts[key] = cast.MustParse(decl)
	return r
}

// WithDates adds legacy date keys.
func (r *Record) WithDates(keys ...string) *Record {
	r.legacyDates = append(r.legacyDates, keys...)
	return r
}

// WithDateFormat sets the layout dates are stored in.
func (r *Record) WithDateFormat(layout string) *Record {
	r.dateFormat = layout
	return r
}

// WithRelation loads a relation. related may be nil.
func (r *Record) WithRelation(key string, related any) *Record {
	r.relations[key] = related
	return r
}

// Set stores a raw attribute value.
func (r *Record) Set(key string, value any) *Record {
	r.attributes[key] = value
	return r
}

// Attribute implements Model.
func (r *Record) Attribute(key string) (any, bool) {
	value, ok := r.attributes[key]
	return value, ok
}

// Attributes returns the raw attribute map.
func (r *Record) Attributes() map[string]any {
	return r.attributes
}

// Casts implements Model.
func (r *Record) Casts() cast.Declarations {
	return r.casts
}

// LegacyDates implements Model.
func (r *Record) LegacyDates() []string {
	return r.legacyDates
}

// Relation implements Model.
func (r *Record) Relation(key string) (any, bool) {
	related, ok := r.relations[key]
	return related, ok
}

// RelationKeys returns the sorted keys of loaded relations.
func (r *Record) RelationKeys() []string {
	keys := make([]string, 0, len(r.relations))
	for key := range r.relations {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	return keys
}

// DateFormat implements DateFormatter.
func (r *Record) DateFormat() string {
	return r.dateFormat
}

// FieldValue implements fieldpath.Getter: attributes first, then relations.
func (r *Record) FieldValue(key string) (any, bool) {
	if value, ok := r.attributes[key]; ok {
		return value, true
	}

	related, ok := r.relations[key]

	return related, ok
}
