package schema

import (
	"errors"
	"fmt"
	"sort"

	"formvalue/cast"
	"formvalue/form"
)

// ErrUnknownModel is returned when a model name is not declared.
var ErrUnknownModel = errors.New("unknown model")

// File is the root of a schema file.
type File struct {
	Version    string     `yaml:"version"`
	DateFormat string     `yaml:"date_format,omitempty"`
	Models     []ModelDef `yaml:"models"`
}

// ModelDef declares how one model's attributes are cast and related.
type ModelDef struct {
	Name       string            `yaml:"name"`
	Casts      cast.Declarations `yaml:"casts,omitempty"`
	Dates      []string          `yaml:"dates,omitempty"`
	DateFormat string            `yaml:"date_format,omitempty"`
	Relations  map[string]string `yaml:"relations,omitempty"`
}

// Model returns the definition named name.
func (f *File) Model(name string) (*ModelDef, error) {
	for i := range f.Models {
		if f.Models[i].Name == name {
			return &f.Models[i], nil
		}
	}

	return nil, fmt.Errorf("%w %q", ErrUnknownModel, name)
}

// ModelNames returns the sorted declared model names.
func (f *File) ModelNames() []string {
	names := make([]string, 0, len(f.Models))
	for _, m := range f.Models {
		names = append(names, m.Name)
	}

	sort.Strings(names)

	return names
}

// NewRecord creates a record carrying the definition's casts, dates and date
// format. Relations are not loaded.
func (d *ModelDef) NewRecord(attrs map[string]any) *form.Record {
	return form.NewRecord(attrs).
		WithCasts(d.Casts).
		WithDates(d.Dates...).
		WithDateFormat(d.DateFormat)
}

// IsRelation returns true if key is declared as a relation.
func (d *ModelDef) IsRelation(key string) bool {
	_, ok := d.Relations[key]
	return ok
}

// Build materializes data as a record of model, loading declared relations
// from nested data.
func (f *File) Build(model string, data map[string]any) (*form.Record, error) {
	def, err := f.Model(model)
	if err != nil {
		return nil, err
	}

	return f.build(def, data)
}

func (f *File) build(def *ModelDef, data map[string]any) (*form.Record, error) {
	attrs := make(map[string]any, len(data))

	for key, value := range data {
		if !def.IsRelation(key) {
			attrs[key] = value
		}
	}

	record := def.NewRecord(attrs)

	for key, target := range def.Relations {
		value, present := data[key]
		if !present {
			continue
		}

		related, err := f.buildRelated(target, value)
		if err != nil {
			return nil, fmt.Errorf("%s.%s: %w", def.Name, key, err)
		}

		record.WithRelation(key, related)
	}

	return record, nil
}

func (f *File) buildRelated(target string, value any) (any, error) {
	def, err := f.Model(target)
	if err != nil {
		return nil, err
	}

	switch actual := value.(type) {
	case nil:
		return nil, nil
	case map[string]any:
		return f.build(def, actual)
	case []any:
		items := make([]any, 0, len(actual))

		for i, item := range actual {
			if item == nil {
				items = append(items, nil)
				continue
			}

			data, ok := item.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("item %d: expected a mapping, got %T", i, item)
			}

			record, err := f.build(def, data)
			if err != nil {
				return nil, fmt.Errorf("item %d: %w", i, err)
			}

			items = append(items, record)
		}

		return items, nil
	default:
		return nil, fmt.Errorf("expected a mapping or a list, got %T", value)
	}
}
