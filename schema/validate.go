package schema

import (
	"fmt"
	"sort"

	"formvalue/cast"
	"formvalue/internal/diagnostic"
	"formvalue/internal/suggest"
)

// Validate checks model names and relation targets.
func Validate(f *File) diagnostic.Diagnostics {
	var diags diagnostic.Diagnostics

	seen := make(map[string]bool, len(f.Models))

	for i, m := range f.Models {
		if m.Name == "" {
			diags.AddError(diagnostic.CodeEmptyModelName,
				fmt.Sprintf("model #%d has no name", i+1), "", "")

			continue
		}

		if seen[m.Name] {
			diags.AddError(diagnostic.CodeDuplicateModel,
				"model declared more than once", m.Name, "")
		}

		seen[m.Name] = true
	}

	for _, m := range f.Models {
		validateModel(f, &m, &diags)
	}

	return diags
}

func validateModel(f *File, m *ModelDef, diags *diagnostic.Diagnostics) {
	for _, key := range sortedKeys(m.Relations) {
		target := m.Relations[key]
		if _, err := f.Model(target); err != nil {
			diags.AddError(diagnostic.CodeUnknownRelation,
				fmt.Sprintf("relation targets undeclared model %q%s", target, suggest.Hint(target, f.ModelNames())), m.Name, key)
		}

		if c, ok := m.Casts[key]; ok {
			diags.AddWarning(diagnostic.CodeRelationShadows,
				fmt.Sprintf("key is cast as %q and declared as a relation; the cast is applied first", c), m.Name, key)
		}
	}

	for _, key := range sortedKeys(m.Casts) {
		c := m.Casts[key]
		if c.Kind == cast.KindOther {
			diags.AddInfo(diagnostic.CodeIgnoredCast,
				fmt.Sprintf("cast %q does not affect form values", c), m.Name, key)
		}
	}
}

func sortedKeys[M ~map[string]V, V any](m M) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	return keys
}
