package override

import (
	"errors"
	"reflect"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBoom = errors.New("boom")

type post struct {
	calls int
}

func (p *post) OverrideStatus(v any) any {
	p.calls++
	return strings.ToUpper(v.(string))
}

func (p *post) OverrideFirstName(v string) (string, error) {
	if v == "" {
		return "", errBoom
	}

	return "<" + v + ">", nil
}

func (p *post) OverrideViews(v int) int { return v * 2 }

func (p *post) OverrideTwoArgs(a, b any) any { return nil }

func (p *post) OverrideNoResult(v any) {}

func (p *post) OverrideBadSecond(v any) (any, bool) { return v, true }

func (p *post) Overrides() string { return "not an override" }

func (p *post) Title() string { return "title" }

type plain struct{}

func TestDescriptor_Scan(t *testing.T) {
	r := NewRegistry()
	d := r.Descriptor(reflect.TypeOf(&post{}))

	assert.Equal(t, []string{"FirstName", "Status", "Views"}, d.Keys())
	assert.True(t, d.Has("status"))
	assert.True(t, d.Has("first_name"))
	assert.True(t, d.Has("firstName"))
	assert.False(t, d.Has("title"))
	assert.False(t, d.Has("two_args"))

	m, ok := d.Method("first_name")
	require.True(t, ok)
	assert.Equal(t, "OverrideFirstName", m.Name)
	assert.True(t, m.HasError)
	assert.Equal(t, reflect.TypeFor[string](), m.Param)

	rejected := d.Rejected()
	names := make([]string, 0, len(rejected))
	for _, rej := range rejected {
		names = append(names, rej.Name)
		assert.NotEmpty(t, rej.Reason)
	}

	assert.ElementsMatch(t, []string{"OverrideBadSecond", "OverrideNoResult", "OverrideTwoArgs"}, names)
}

func TestDescriptor_ValueReceiverHasNoPointerMethods(t *testing.T) {
	r := NewRegistry()
	assert.False(t, r.HasOverride(post{}, "status"))
	assert.True(t, r.HasOverride(&post{}, "status"))
}

func TestRegistry_CachesPerType(t *testing.T) {
	r := NewRegistry()

	first := r.Descriptor(reflect.TypeOf(&post{}))
	second := r.Descriptor(reflect.TypeOf(&post{}))
	assert.Same(t, first, second)
	assert.Len(t, r.Types(), 1)

	r.Reset()
	assert.Empty(t, r.Types())
	assert.NotSame(t, first, r.Descriptor(reflect.TypeOf(&post{})))
}

func TestRegistry_Invoke(t *testing.T) {
	r := NewRegistry()
	p := &post{}

	result, err := r.Invoke(p, "status", "draft")
	require.NoError(t, err)
	assert.Equal(t, "DRAFT", result)
	assert.Equal(t, 1, p.calls)

	result, err = r.Invoke(p, "first_name", "Ada")
	require.NoError(t, err)
	assert.Equal(t, "<Ada>", result)

	result, err = r.Invoke(p, "views", 21)
	require.NoError(t, err)
	assert.Equal(t, 42, result)
}

func TestRegistry_Invoke_ErrorPassesThrough(t *testing.T) {
	r := NewRegistry()

	_, err := r.Invoke(&post{}, "first_name", "")
	assert.Same(t, errBoom, err)
}

func TestRegistry_Invoke_NilBecomesZero(t *testing.T) {
	r := NewRegistry()

	result, err := r.Invoke(&post{}, "views", nil)
	require.NoError(t, err)
	assert.Equal(t, 0, result)
}

func TestRegistry_Invoke_ArgumentMismatch(t *testing.T) {
	r := NewRegistry()

	_, err := r.Invoke(&post{}, "views", "many")
	require.ErrorIs(t, err, ErrArgument)
	assert.Contains(t, err.Error(), "OverrideViews")
}

func TestRegistry_Invoke_WithoutOverride(t *testing.T) {
	r := NewRegistry()

	result, err := r.Invoke(&post{}, "title", "keep")
	require.NoError(t, err)
	assert.Equal(t, "keep", result)

	result, err = r.Invoke(nil, "title", "keep")
	require.NoError(t, err)
	assert.Equal(t, "keep", result)
}

func TestRegistry_Invoke_PanicsAreNotRecovered(t *testing.T) {
	r := NewRegistry()

	assert.Panics(t, func() {
		_, _ = r.Invoke(&post{}, "status", nil)
	})
}

func TestRegistry_Declare(t *testing.T) {
	r := NewRegistry()

	assert.False(t, r.HasOverride(&plain{}, "status"))

	Declare(r, "status", func(_ *plain, v any) (any, error) {
		return "declared:" + v.(string), nil
	})

	assert.True(t, r.HasOverride(&plain{}, "status"))

	result, err := r.Invoke(&plain{}, "status", "x")
	require.NoError(t, err)
	assert.Equal(t, "declared:x", result)
}

func TestRegistry_DeclareWinsOverMethod(t *testing.T) {
	r := NewRegistry()

	before := r.Descriptor(reflect.TypeOf(&post{}))
	assert.True(t, before.Has("status"))

	Declare(r, "Status", func(_ *post, _ any) (any, error) {
		return "declared", nil
	})

	result, err := r.Invoke(&post{}, "status", "draft")
	require.NoError(t, err)
	assert.Equal(t, "declared", result)

	after := r.Descriptor(reflect.TypeOf(&post{}))
	assert.NotSame(t, before, after)
	assert.Equal(t, []string{"FirstName", "Status", "Views"}, after.Keys())
}

func TestRegistry_DeclaredErrorPassesThrough(t *testing.T) {
	r := NewRegistry()

	Declare(r, "status", func(_ *plain, _ any) (any, error) {
		return nil, errBoom
	})

	_, err := r.Invoke(&plain{}, "status", "x")
	assert.Same(t, errBoom, err)
}

func TestRegistry_HasNilType(t *testing.T) {
	assert.False(t, NewRegistry().Has(nil, "status"))
	assert.False(t, NewRegistry().HasOverride(nil, "status"))
}

func TestRegistry_ConcurrentDescriptor(t *testing.T) {
	r := NewRegistry()
	typ := reflect.TypeOf(&post{})

	var wg sync.WaitGroup

	results := make([]*Descriptor, 16)
	for i := range results {
		wg.Add(1)

		go func(i int) {
			defer wg.Done()
			results[i] = r.Descriptor(typ)
		}(i)
	}

	wg.Wait()

	for _, d := range results {
		assert.Same(t, results[0], d)
	}
}
