package fieldpath

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
)

// Getter is implemented by values that resolve their own path segments.
type Getter interface {
	// FieldValue returns the value stored under key and whether key is known.
	FieldValue(key string) (any, bool)
}

// Get walks p over root. An empty path returns root itself.
func Get(root any, p Path) any {
	return walk(root, p.segments)
}

// GetString parses path and walks it over root.
func GetString(root any, path string) (any, error) {
	p, err := Parse(path)
	if err != nil {
		return nil, err
	}

	return Get(root, p), nil
}

func walk(current any, segments []string) any {
	for i, segment := range segments {
		if IsNil(current) {
			return nil
		}

		if segment == Wildcard {
			return collect(current, segments[i+1:])
		}

		next, ok := Step(current, segment)
		if !ok {
			return nil
		}

		current = next
	}

	if IsNil(current) {
		return nil
	}

	return current
}

// Step resolves a single segment on value.
func Step(value any, key string) (any, bool) {
	if getter, ok := value.(Getter); ok {
		if result, found := getter.FieldValue(key); found {
			return result, true
		}
	}

	rv, ok := indirect(reflect.ValueOf(value))
	if !ok {
		return nil, false
	}

	switch rv.Kind() {
	case reflect.Map:
		return mapEntry(rv, key)
	case reflect.Struct:
		return structField(rv, key)
	case reflect.Slice, reflect.Array:
		i, err := strconv.Atoi(key)
		if err != nil || i < 0 || i >= rv.Len() {
			return nil, false
		}

		return rv.Index(i).Interface(), true
	default:
		return nil, false
	}
}

// StructField resolves key against the exported fields of value, ignoring
// any Getter implementation.
func StructField(value any, key string) (any, bool) {
	rv, ok := indirect(reflect.ValueOf(value))
	if !ok || rv.Kind() != reflect.Struct {
		return nil, false
	}

	return structField(rv, key)
}

func structField(rv reflect.Value, key string) (any, bool) {
	index, ok := fieldsOf(rv.Type()).lookup(key)
	if !ok {
		return nil, false
	}

	field, err := rv.FieldByIndexErr(index)
	if err != nil {
		// nil embedded pointer on the way to a promoted field
		return nil, false
	}

	return field.Interface(), true
}

func mapEntry(rv reflect.Value, key string) (any, bool) {
	keyType := rv.Type().Key()

	var mapKey reflect.Value

	switch keyType.Kind() {
	case reflect.String:
		mapKey = reflect.ValueOf(key).Convert(keyType)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(key, 10, keyType.Bits())
		if err != nil {
			return nil, false
		}

		mapKey = reflect.ValueOf(n).Convert(keyType)
	case reflect.Interface:
		mapKey = reflect.ValueOf(key)
		if !mapKey.Type().AssignableTo(keyType) {
			return nil, false
		}
	default:
		return nil, false
	}

	entry := rv.MapIndex(mapKey)
	if !entry.IsValid() {
		return nil, false
	}

	return entry.Interface(), true
}

// collect applies rest to every element of a slice, array or map.
// Map entries are visited in key order.
func collect(value any, rest []string) any {
	rv, ok := indirect(reflect.ValueOf(value))
	if !ok {
		return nil
	}

	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		result := make([]any, 0, rv.Len())
		for i := range rv.Len() {
			result = append(result, walk(rv.Index(i).Interface(), rest))
		}

		return result
	case reflect.Map:
		keys := rv.MapKeys()
		sort.Slice(keys, func(i, j int) bool {
			return fmt.Sprint(keys[i].Interface()) < fmt.Sprint(keys[j].Interface())
		})

		result := make([]any, 0, len(keys))
		for _, k := range keys {
			result = append(result, walk(rv.MapIndex(k).Interface(), rest))
		}

		return result
	default:
		return nil
	}
}

// indirect dereferences pointers and interfaces; it reports false on nil.
func indirect(rv reflect.Value) (reflect.Value, bool) {
	for rv.IsValid() && (rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface) {
		if rv.IsNil() {
			return reflect.Value{}, false
		}

		rv = rv.Elem()
	}

	return rv, rv.IsValid()
}

// IsNil returns true for nil and for typed nil pointers, maps, slices,
// interfaces, channels and funcs.
func IsNil(value any) bool {
	if value == nil {
		return true
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Chan, reflect.Func:
		return rv.IsNil()
	default:
		return false
	}
}
