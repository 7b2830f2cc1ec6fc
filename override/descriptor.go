package override

import (
	"fmt"
	"reflect"
	"sort"

	"formvalue/internal/naming"
)

var errorType = reflect.TypeFor[error]()

// Func is an explicitly declared override. It receives the model instance and
// the value resolved so far.
type Func func(model any, value any) (any, error)

// Method is an override discovered on a type's method set.
type Method struct {
	Name     string
	Key      string // studly key, e.g. "FirstName"
	Param    reflect.Type
	HasError bool
	index    int
}

// Rejected is a method named like an override whose signature is not accepted.
type Rejected struct {
	Name   string
	Reason string
}

// Descriptor is the immutable set of overrides of one concrete type.
type Descriptor struct {
	Type     reflect.Type
	methods  map[string]Method
	declared map[string]Func
	rejected []Rejected
}

// newDescriptor scans the method set of t. declared is copied.
func newDescriptor(t reflect.Type, declared map[string]Func) *Descriptor {
	d := &Descriptor{
		Type:     t,
		methods:  map[string]Method{},
		declared: make(map[string]Func, len(declared)),
	}

	for key, fn := range declared {
		d.declared[key] = fn
	}

	if t == nil {
		return d
	}

	for i := range t.NumMethod() {
		m := t.Method(i)

		key, ok := naming.KeyOf(m.Name)
		if !ok {
			continue
		}

		method, err := parseMethod(t, m)
		if err != nil {
			d.rejected = append(d.rejected, Rejected{Name: m.Name, Reason: err.Error()})
			continue
		}

		method.Key = key
		method.index = i
		d.methods[key] = method
	}

	return d
}

// parseMethod checks an override method signature.
// For methods of a concrete type, In(0) is the receiver.
func parseMethod(t reflect.Type, m reflect.Method) (Method, error) {
	fnType := m.Type

	offset := 1
	if t.Kind() == reflect.Interface {
		offset = 0
	}

	if fnType.NumIn()-offset != 1 {
		return Method{}, fmt.Errorf("expected exactly one parameter, got %d", fnType.NumIn()-offset)
	}

	if fnType.IsVariadic() {
		return Method{}, fmt.Errorf("variadic parameter is not supported")
	}

	method := Method{Name: m.Name, Param: fnType.In(offset)}

	switch fnType.NumOut() {
	case 1:
		return method, nil
	case 2:
		if fnType.Out(1) != errorType {
			return Method{}, fmt.Errorf("second result must be error, got %s", fnType.Out(1))
		}

		method.HasError = true

		return method, nil
	default:
		return Method{}, fmt.Errorf("expected (value) or (value, error) results, got %d results", fnType.NumOut())
	}
}

// Has returns true if an override exists for key.
func (d *Descriptor) Has(key string) bool {
	studly := naming.Studly(key)
	if _, ok := d.declared[studly]; ok {
		return true
	}

	_, ok := d.methods[studly]

	return ok
}

// Keys returns the sorted studly keys that have an override.
func (d *Descriptor) Keys() []string {
	keys := make([]string, 0, len(d.methods)+len(d.declared))
	for key := range d.methods {
		keys = append(keys, key)
	}

	for key := range d.declared {
		if _, dup := d.methods[key]; !dup {
			keys = append(keys, key)
		}
	}

	sort.Strings(keys)

	return keys
}

// Method returns the override method for key, if one was discovered.
func (d *Descriptor) Method(key string) (Method, bool) {
	m, ok := d.methods[naming.Studly(key)]
	return m, ok
}

// Rejected returns methods named like overrides with unsupported signatures.
func (d *Descriptor) Rejected() []Rejected {
	return append([]Rejected(nil), d.rejected...)
}

// invoke calls the override for key on model. Declared overrides win.
func (d *Descriptor) invoke(model any, key string, value any) (any, bool, error) {
	studly := naming.Studly(key)
	if fn, ok := d.declared[studly]; ok {
		result, err := fn(model, value)
		return result, true, err
	}

	method, ok := d.methods[studly]
	if !ok {
		return nil, false, nil
	}

	arg, err := argument(value, method.Param)
	if err != nil {
		return nil, true, fmt.Errorf("%s.%s: %w", d.Type, method.Name, err)
	}

	out := reflect.ValueOf(model).Method(method.index).Call([]reflect.Value{arg})

	result := out[0].Interface()
	if method.HasError {
		if errValue := out[1].Interface(); errValue != nil {
			return result, true, errValue.(error)
		}
	}

	return result, true, nil
}

// argument adapts value to the parameter type; nil becomes the zero value.
func argument(value any, param reflect.Type) (reflect.Value, error) {
	if value == nil {
		return reflect.Zero(param), nil
	}

	rv := reflect.ValueOf(value)
	if rv.Type().AssignableTo(param) {
		if param.Kind() == reflect.Interface {
			converted := reflect.New(param).Elem()
			converted.Set(rv)

			return converted, nil
		}

		return rv, nil
	}

	return reflect.Value{}, fmt.Errorf("%w: cannot use %T as %s", ErrArgument, value, param)
}
