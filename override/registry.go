package override

import (
	"errors"
	"reflect"
	"sync"

	"formvalue/internal/naming"
)

// ErrArgument is returned when the value cannot be passed to an override method.
var ErrArgument = errors.New("override argument type mismatch")

// Default is the process-wide registry.
var Default = NewRegistry()

// Registry caches override descriptors per concrete type.
type Registry struct {
	descriptors sync.Map // reflect.Type -> *Descriptor

	mu       sync.Mutex
	declared map[reflect.Type]map[string]Func
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{declared: map[reflect.Type]map[string]Func{}}
}

// Descriptor returns the descriptor of t, computing it on first use.
// Lookups of cached descriptors take no lock; population happens under the
// declaration lock so a concurrent Declare cannot be lost.
func (r *Registry) Descriptor(t reflect.Type) *Descriptor {
	if cached, ok := r.descriptors.Load(t); ok {
		return cached.(*Descriptor)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	d := newDescriptor(t, r.declared[t])
	actual, _ := r.descriptors.LoadOrStore(t, d)

	return actual.(*Descriptor)
}

// Has returns true if type t has an override for key.
func (r *Registry) Has(t reflect.Type, key string) bool {
	if t == nil {
		return false
	}

	return r.Descriptor(t).Has(key)
}

// HasOverride returns true if the concrete type of model has an override for key.
func (r *Registry) HasOverride(model any, key string) bool {
	return r.Has(reflect.TypeOf(model), key)
}

// Invoke calls the override for key on model with value and returns its
// result unmodified. Errors returned by the override are passed through
// unchanged. Invoking a key without an override returns value as is.
func (r *Registry) Invoke(model any, key string, value any) (any, error) {
	if model == nil {
		return value, nil
	}

	result, found, err := r.Descriptor(reflect.TypeOf(model)).invoke(model, key, value)
	if !found {
		return value, nil
	}

	return result, err
}

// Declare registers fn as the override of key for type t. A declared
// override takes precedence over a method of the same key.
func (r *Registry) Declare(t reflect.Type, key string, fn Func) {
	r.mu.Lock()
	defer r.mu.Unlock()

	funcs, ok := r.declared[t]
	if !ok {
		funcs = map[string]Func{}
		r.declared[t] = funcs
	}

	funcs[naming.Studly(key)] = fn
	r.descriptors.Delete(t)
}

// Declare registers a typed override of key for model type M.
//
//	override.Declare(override.Default, "status", func(p *Post, v any) (any, error) {
//		return strings.ToUpper(v.(string)), nil
//	})
func Declare[M any](r *Registry, key string, fn func(model M, value any) (any, error)) {
	r.Declare(reflect.TypeFor[M](), key, func(model any, value any) (any, error) {
		return fn(model.(M), value)
	})
}

// Reset drops every cached descriptor. Declarations are kept.
func (r *Registry) Reset() {
	r.descriptors.Range(func(key, _ any) bool {
		r.descriptors.Delete(key)
		return true
	})
}

// Types returns the types whose descriptors are cached.
func (r *Registry) Types() []reflect.Type {
	var types []reflect.Type

	r.descriptors.Range(func(key, _ any) bool {
		types = append(types, key.(reflect.Type))
		return true
	})

	return types
}
