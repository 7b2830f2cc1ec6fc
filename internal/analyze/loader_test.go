package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"formvalue/internal/diagnostic"
)

const (
	blogPkg    = "formvalue/examples/blog"
	fixturePkg = "formvalue/internal/analyze/fixture"
)

func TestAnalyzer_LoadPackages(t *testing.T) {
	analyzer := NewAnalyzer()
	report, err := analyzer.LoadPackages(blogPkg, fixturePkg)
	require.NoError(t, err)
	require.NotNil(t, report)
	assert.Same(t, report, analyzer.Report())

	assert.Equal(t, []string{blogPkg, fixturePkg}, report.Packages)

	for _, name := range []string{"Post", "User", "Address"} {
		assert.Contains(t, report.Types, TypeID{PkgPath: blogPkg, Name: name})
	}

	assert.Contains(t, report.Types, TypeID{PkgPath: fixturePkg, Name: "Customer"})
	assert.NotContains(t, report.Types, TypeID{PkgPath: fixturePkg, Name: "hidden"})
}

func TestAnalyzer_BlogOverrides(t *testing.T) {
	report, err := NewAnalyzer().LoadPackages(blogPkg)
	require.NoError(t, err)

	post := report.GetType(TypeID{PkgPath: blogPkg, Name: "Post"})
	require.NotNil(t, post)
	assert.True(t, post.IsModel)
	assert.Empty(t, post.Rejected)
	assert.ElementsMatch(t, []string{"PublishedAt", "Tags", "Title"}, post.Keys())

	for _, o := range post.Overrides {
		assert.False(t, o.Promoted, o.Method)

		if o.Key == "Tags" {
			assert.True(t, o.HasError)
		}
	}

	user := report.GetType(TypeID{PkgPath: blogPkg, Name: "User"})
	require.NotNil(t, user)
	require.Len(t, user.Overrides, 1)
	assert.Equal(t, "OverrideEmail", user.Overrides[0].Method)
	assert.Equal(t, "string", user.Overrides[0].Param)
	assert.Equal(t, "string", user.Overrides[0].Result)
}

func TestAnalyzer_RejectedSignatures(t *testing.T) {
	report, err := NewAnalyzer().LoadPackages(fixturePkg)
	require.NoError(t, err)

	invoice := report.GetType(TypeID{PkgPath: fixturePkg, Name: "Invoice"})
	require.NotNil(t, invoice)
	assert.True(t, invoice.IsModel)
	assert.Equal(t, []string{"Total"}, invoice.Keys())
	assert.True(t, invoice.Overrides[0].HasError)
	assert.Equal(t, "float64", invoice.Overrides[0].Param)
	require.Len(t, invoice.Rejected, 2)
	assert.Contains(t, invoice.Rejected[0]+invoice.Rejected[1], "OverrideNumber")
	assert.Contains(t, invoice.Rejected[0]+invoice.Rejected[1], "OverrideDue")

	money := report.GetType(TypeID{PkgPath: fixturePkg, Name: "Money"})
	require.NotNil(t, money)
	assert.False(t, money.IsModel)
	assert.Equal(t, []string{"Amount"}, money.Keys())

	customer := report.GetType(TypeID{PkgPath: fixturePkg, Name: "Customer"})
	require.NotNil(t, customer)
	assert.True(t, customer.IsModel)
	assert.Empty(t, customer.Overrides)

	var codes []string
	for _, d := range report.Diagnostics.Warnings {
		codes = append(codes, d.Code)
	}

	assert.ElementsMatch(t, []string{
		diagnostic.CodeInvalidSignature,
		diagnostic.CodeInvalidSignature,
		diagnostic.CodeNotAModel,
	}, codes)
	assert.Len(t, report.Diagnostics.Infos, 2)
}

func TestAnalyzer_LoadError(t *testing.T) {
	_, err := NewAnalyzer().LoadPackages("formvalue/does/not/exist")
	require.Error(t, err)
}

func TestReport_Sorted(t *testing.T) {
	report := NewReport()
	report.Types[TypeID{PkgPath: "b", Name: "X"}] = &TypeInfo{ID: TypeID{PkgPath: "b", Name: "X"}}
	report.Types[TypeID{PkgPath: "a", Name: "Y"}] = &TypeInfo{ID: TypeID{PkgPath: "a", Name: "Y"}}

	sorted := report.Sorted()
	require.Len(t, sorted, 2)
	assert.Equal(t, "a.Y", sorted[0].ID.String())
	assert.Equal(t, "b.X", sorted[1].ID.String())
	assert.Equal(t, "Z", TypeID{Name: "Z"}.String())
}
