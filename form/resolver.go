package form

import (
	"slices"
	"sort"
	"time"

	"formvalue/cast"
	"formvalue/fieldpath"
	"formvalue/override"
)

// Resolver resolves form values. The zero value is not usable; use New.
type Resolver struct {
	overrides *override.Registry
	coercer   cast.Coercer
}

// Option configures a Resolver.
type Option func(r *Resolver)

// WithRegistry sets the override registry.
func WithRegistry(registry *override.Registry) Option {
	return func(r *Resolver) {
		r.overrides = registry
	}
}

// WithCoercer sets the date coercer.
func WithCoercer(coercer cast.Coercer) Option {
	return func(r *Resolver) {
		r.coercer = coercer
	}
}

// New creates a resolver using override.Default and cast.DefaultCoercer
// unless configured otherwise.
func New(opts ...Option) *Resolver {
	r := &Resolver{
		overrides: override.Default,
		coercer:   cast.DefaultCoercer,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

var defaultResolver = New()

// Resolve resolves path on m with the default resolver.
func Resolve(m Model, path string) (any, error) {
	return defaultResolver.Resolve(m, path)
}

// Resolve returns the form value of path on m. It fails only for an invalid
// path, a date that cannot be coerced, or a failing override; those errors
// are returned unchanged.
func (r *Resolver) Resolve(m Model, path string) (any, error) {
	p, err := fieldpath.Parse(path)
	if err != nil {
		return nil, err
	}

	return r.resolve(m, p)
}

func (r *Resolver) resolve(m Model, p fieldpath.Path) (any, error) {
	key := p.Head()
	declared := m.Casts().Of(key)

	value, _ := m.Attribute(key)

	dated := value != nil && isDateCastable(m, key)
	if dated {
		coerced, err := r.coerceDate(m, declared, value)
		if err != nil {
			return nil, err
		}

		value = coerced
	}

	if declared.Kind == cast.KindEnum {
		return value, nil
	}

	if r.overrides.HasOverride(m, key) {
		return r.overrides.Invoke(m, key, value)
	}

	if related, loaded := m.Relation(key); loaded {
		return r.resolveRelated(related, p.Tail())
	}

	if !dated {
		return fieldpath.Get(modelView{Model: m}, p), nil
	}

	if p.Len() == 1 {
		return value, nil
	}

	return fieldpath.Get(modelView{Model: m, key: key, value: value}, p), nil
}

func (r *Resolver) resolveRelated(related any, rest fieldpath.Path) (any, error) {
	if fieldpath.IsNil(related) {
		return nil, nil
	}

	if !rest.IsEmpty() {
		switch actual := related.(type) {
		case Resolvable:
			return actual.FormValue(rest.String())
		case Model:
			return r.resolve(actual, rest)
		}
	}

	return fieldpath.Get(related, rest), nil
}

func (r *Resolver) coerceDate(m Model, declared cast.Cast, raw any) (time.Time, error) {
	var layouts []string
	if declared.Kind == cast.KindCustomDate {
		layouts = append(layouts, declared.Format)
	}

	if f, ok := m.(DateFormatter); ok {
		layouts = append(layouts, f.DateFormat())
	}

	return r.coercer.Coerce(raw, layouts...)
}

// DateCastableKeys returns the sorted union of keys declared with a date
// cast and the model's legacy date keys.
func DateCastableKeys(m Model) []string {
	keys := append(m.Casts().DateKeys(), m.LegacyDates()...)
	sort.Strings(keys)

	return slices.Compact(keys)
}

// DateCastableKeys returns the keys coerced to dates on m.
func (r *Resolver) DateCastableKeys(m Model) []string {
	return DateCastableKeys(m)
}

func isDateCastable(m Model, key string) bool {
	if m.Casts().Of(key).IsDate() {
		return true
	}

	return slices.Contains(m.LegacyDates(), key)
}

// modelView walks a model's attributes, then its relations, then its
// exported struct fields. A non-empty key answers with the coerced value.
type modelView struct {
	Model
	key   string
	value any
}

func (v modelView) FieldValue(key string) (any, bool) {
	if v.key != "" && key == v.key {
		return v.value, true
	}

	if value, ok := v.Attribute(key); ok {
		return value, true
	}

	if related, ok := v.Relation(key); ok {
		return related, true
	}

	return fieldpath.StructField(v.Model, key)
}
