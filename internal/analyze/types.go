package analyze

import (
	"sort"

	"formvalue/internal/diagnostic"
)

// TypeID uniquely identifies a type by its package path and name.
type TypeID struct {
	PkgPath string // e.g., "formvalue/examples/blog"
	Name    string // e.g., "Post"
}

// String returns a human-readable representation of the TypeID.
func (t TypeID) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}

// OverrideInfo describes an override method found on a type.
type OverrideInfo struct {
	Method   string // e.g., "OverrideFirstName"
	Key      string // studly key, e.g., "FirstName"
	Param    string // parameter type as written in the package
	Result   string // first result type
	HasError bool   // second result is error
	Promoted bool   // method comes from an embedded field
}

// TypeInfo describes an analyzed named type.
type TypeInfo struct {
	ID        TypeID
	IsModel   bool // pointer method set has the form model methods
	Overrides []OverrideInfo
	Rejected  []string // override-named methods with unsupported signatures
}

// Keys returns the studly keys of the type's overrides.
func (t *TypeInfo) Keys() []string {
	keys := make([]string, 0, len(t.Overrides))
	for _, o := range t.Overrides {
		keys = append(keys, o.Key)
	}

	return keys
}

// Report holds the analyzed types of loaded packages.
type Report struct {
	// Types maps TypeID to TypeInfo for types that are models or have
	// override-named methods.
	Types map[TypeID]*TypeInfo
	// Packages lists loaded package paths.
	Packages []string
	// Diagnostics holds one info per override and one warning per rejected method.
	Diagnostics diagnostic.Diagnostics
}

// NewReport creates an empty Report.
func NewReport() *Report {
	return &Report{Types: make(map[TypeID]*TypeInfo)}
}

// GetType returns the TypeInfo for a given TypeID, or nil if not found.
func (r *Report) GetType(id TypeID) *TypeInfo {
	return r.Types[id]
}

// Sorted returns the analyzed types ordered by package path and name.
func (r *Report) Sorted() []*TypeInfo {
	result := make([]*TypeInfo, 0, len(r.Types))
	for _, info := range r.Types {
		result = append(result, info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID.String() < result[j].ID.String()
	})

	return result
}
