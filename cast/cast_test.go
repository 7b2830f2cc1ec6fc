package cast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParseCast(t *testing.T) {
	tests := []struct {
		decl     string
		expected Cast
	}{
		{"date", Cast{Kind: KindDate}},
		{"immutable_date", Cast{Kind: KindDate}},
		{"datetime", Cast{Kind: KindDateTime}},
		{"DateTime", Cast{Kind: KindDateTime}},
		{"timestamp", Cast{Kind: KindDateTime}},
		{"date:2006-01-02", Cast{Kind: KindCustomDate, Format: "2006-01-02"}},
		{"datetime:02/01/2006 15:04", Cast{Kind: KindCustomDate, Format: "02/01/2006 15:04"}},
		{"enum", Cast{Kind: KindEnum}},
		{"enum:PostStatus", Cast{Kind: KindEnum, Format: "PostStatus"}},
		{"integer", Cast{Kind: KindOther, Format: "integer"}},
		{" array ", Cast{Kind: KindOther, Format: "array"}},
	}

	for _, tt := range tests {
		t.Run(tt.decl, func(t *testing.T) {
			c, err := ParseCast(tt.decl)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, c)
		})
	}
}

func TestParseCast_Errors(t *testing.T) {
	_, err := ParseCast("  ")
	require.ErrorIs(t, err, ErrEmptyCast)

	_, err = ParseCast("date:")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty date format")
}

func TestCast_String(t *testing.T) {
	assert.Equal(t, "datetime", MustParse("datetime").String())
	assert.Equal(t, "date", MustParse("date").String())
	assert.Equal(t, "datetime:2006-01-02", MustParse("date:2006-01-02").String())
	assert.Equal(t, "enum:Status", MustParse("enum:Status").String())
	assert.Equal(t, "enum", MustParse("enum").String())
	assert.Equal(t, "integer", MustParse("integer").String())
	assert.Empty(t, Cast{}.String())
}

func TestKind(t *testing.T) {
	assert.Equal(t, "custom_date", KindCustomDate.String())
	assert.Equal(t, "Kind(42)", Kind(42).String())
	assert.Equal(t, 6, KindTotal)

	assert.True(t, KindDate.IsDate())
	assert.True(t, KindDateTime.IsDate())
	assert.True(t, KindCustomDate.IsDate())
	assert.False(t, KindEnum.IsDate())
	assert.False(t, KindNone.IsDate())
	assert.False(t, KindOther.IsDate())
}

func TestDeclarations_DateKeys(t *testing.T) {
	decls, err := Parse(map[string]string{
		"published_at": "datetime",
		"created_at":   "date",
		"publish_on":   "date:2006-01-02",
		"status":       "enum",
		"views":        "integer",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"created_at", "publish_on", "published_at"}, decls.DateKeys())
	assert.Equal(t, KindEnum, decls.Of("status").Kind)
	assert.Equal(t, KindNone, decls.Of("missing").Kind)
}

func TestDeclarations_Parse_Error(t *testing.T) {
	_, err := Parse(map[string]string{"status": ""})
	require.ErrorIs(t, err, ErrEmptyCast)
	assert.Contains(t, err.Error(), `"status"`)
}

func TestCast_YAML(t *testing.T) {
	var decls Declarations

	err := yaml.Unmarshal([]byte(`
created_at: datetime
publish_on: "date:2006-01-02"
status: enum
`), &decls)
	require.NoError(t, err)

	assert.Equal(t, Cast{Kind: KindDateTime}, decls["created_at"])
	assert.Equal(t, Cast{Kind: KindCustomDate, Format: "2006-01-02"}, decls["publish_on"])
	assert.Equal(t, Cast{Kind: KindEnum}, decls["status"])

	out, err := yaml.Marshal(Declarations{"status": {Kind: KindEnum}})
	require.NoError(t, err)
	assert.Equal(t, "status: enum\n", string(out))
}

func TestCast_YAML_Invalid(t *testing.T) {
	var decls Declarations

	err := yaml.Unmarshal([]byte("status: [enum]\n"), &decls)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 1")
}
