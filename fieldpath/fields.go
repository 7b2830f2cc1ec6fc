package fieldpath

import (
	"reflect"
	"strings"
	"sync"

	"formvalue/internal/naming"
)

// fieldTable maps the names a struct field answers to onto its index.
type fieldTable struct {
	tagged map[string][]int
	named  map[string][]int
	studly map[string][]int
}

var fieldTables sync.Map // reflect.Type -> *fieldTable

// fieldsOf returns the cached field table of a struct type.
func fieldsOf(t reflect.Type) *fieldTable {
	if cached, ok := fieldTables.Load(t); ok {
		return cached.(*fieldTable)
	}

	actual, _ := fieldTables.LoadOrStore(t, newFieldTable(t))

	return actual.(*fieldTable)
}

func newFieldTable(t reflect.Type) *fieldTable {
	table := &fieldTable{
		tagged: map[string][]int{},
		named:  map[string][]int{},
		studly: map[string][]int{},
	}

	for _, field := range reflect.VisibleFields(t) {
		if field.Anonymous || !field.IsExported() {
			continue
		}

		// form:"-" hides the field from paths altogether
		if tagName(field.Tag.Get("form")) == "-" {
			continue
		}

		for _, tag := range []string{"form", "json"} {
			name := tagName(field.Tag.Get(tag))
			if name == "" || name == "-" {
				continue
			}

			if _, exists := table.tagged[name]; !exists {
				table.tagged[name] = field.Index
			}
		}

		table.named[field.Name] = field.Index
		table.studly[naming.Studly(field.Name)] = field.Index
	}

	return table
}

// lookup matches by tag, then exact field name, then studly-cased key.
func (t *fieldTable) lookup(key string) ([]int, bool) {
	if index, ok := t.tagged[key]; ok {
		return index, true
	}

	if index, ok := t.named[key]; ok {
		return index, true
	}

	index, ok := t.studly[naming.Studly(key)]

	return index, ok
}

// tagName returns the name part of a struct tag value like "name,omitempty".
func tagName(tag string) string {
	name, _, _ := strings.Cut(tag, ",")
	return name
}
