package render

import (
	"strings"
	"testing"

	"github.com/hexops/autogold/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shapegen/internal/infer"
	"shapegen/internal/parser"
)

func inferString(t *testing.T, input string) *infer.Type {
	t.Helper()
	v, err := parser.ParseString(input)
	require.NoError(t, err)
	return infer.New().Infer(v)
}

func TestRender_DefaultPrimitives(t *testing.T) {
	r := New(Options{})

	tests := []struct {
		input string
		want  string
	}{
		{input: `true`, want: "bool"},
		{input: `42`, want: "int64"},
		{input: `2.5`, want: "float64"},
		{input: `"hi"`, want: "string"},
		{input: `null`, want: "?unknown"},
		{input: `[]`, want: "[]unknown"},
		{input: `[1, "x"]`, want: "[]any"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, r.RenderString(inferString(t, tt.input)))
	}
}

func TestRender_CustomSpellings(t *testing.T) {
	r := New(Options{
		String:  "str",
		Integer: "i64",
		Float:   "f64",
		Bool:    "boolean",
		Any:     "mixed",
		Unknown: "nothing",
	})

	assert.Equal(t, "str", r.RenderString(inferString(t, `"x"`)))
	assert.Equal(t, "i64", r.RenderString(inferString(t, `1`)))
	assert.Equal(t, "f64", r.RenderString(inferString(t, `1.5`)))
	assert.Equal(t, "boolean", r.RenderString(inferString(t, `false`)))
	assert.Equal(t, "[]mixed", r.RenderString(inferString(t, `[1, "x"]`)))
	assert.Equal(t, "?nothing", r.RenderString(inferString(t, `null`)))
}

func TestRender_PartialOverrideKeepsOtherDefaults(t *testing.T) {
	r := New(Options{Integer: "i64"})
	assert.Equal(t, "i64", r.RenderString(inferString(t, `1`)))
	assert.Equal(t, "string", r.RenderString(inferString(t, `"x"`)))
}

func TestRender_PrefixesBindTightly(t *testing.T) {
	r := New(Options{})

	// Sequence and optional prefixes attach directly to the child with no
	// intervening whitespace.
	assert.Equal(t, "[][]int64", r.RenderString(inferString(t, `[[1], [2, 3]]`)))
	assert.Equal(t, "[]?float64", r.RenderString(inferString(t, `[1, 2, 3, 4.5, null]`)))
}

func TestRender_ObjectIndentation(t *testing.T) {
	r := New(Options{})
	got := r.RenderString(inferString(t, `{"int": 1, "float": 1.0, "bool": true, "array": [1, 2, 3, 4.5, null]}`))

	autogold.Expect(`{
    int: int64,
    float: float64,
    bool: bool,
    array: []?float64,
}`).Equal(t, got)
}

func TestRender_NestedObjects(t *testing.T) {
	r := New(Options{})
	got := r.RenderString(inferString(t, `{"user": {"name": "gordon", "tags": ["a", "b"]}, "ok": true}`))

	autogold.Expect(`{
    user: {
        name: string,
        tags: []string,
    },
    ok: bool,
}`).Equal(t, got)
}

func TestRender_EmptyObject(t *testing.T) {
	r := New(Options{})
	assert.Equal(t, "{\n}", r.RenderString(inferString(t, `{}`)))
}

func TestRender_EscapesNonBareIdentifiers(t *testing.T) {
	r := New(Options{})
	got := r.RenderString(inferString(t, `{"1st": 1, "type": "x", "dash-ed": true, "with space": null, "ok_name": 2}`))

	autogold.Expect(`{
    @"1st": int64,
    @"type": string,
    @"dash-ed": bool,
    @"with space": ?unknown,
    ok_name: int64,
}`).Equal(t, got)
}

func TestRender_EscapesQuotesAndBackslashes(t *testing.T) {
	r := New(Options{})
	got := r.RenderString(inferString(t, `{"he\"llo": 1, "back\\slash": 2}`))

	autogold.Expect(`{
    @"he\"llo": int64,
    @"back\\slash": int64,
}`).Equal(t, got)
}

func TestRender_Deterministic(t *testing.T) {
	r := New(Options{})
	typ := inferString(t, `{"b": [1.5, null], "a": {"x": "y"}}`)

	first := r.RenderString(typ)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, r.RenderString(typ), "repeated renders must be byte-identical")
	}
}

func TestRender_WriterAndDecl(t *testing.T) {
	r := New(Options{})
	typ := inferString(t, `{"n": 1}`)

	var sb strings.Builder
	require.NoError(t, r.Render(&sb, typ))
	assert.Equal(t, "{\n    n: int64,\n}", sb.String())

	sb.Reset()
	require.NoError(t, r.RenderDecl(&sb, "Root", typ))
	assert.Equal(t, "const Root = {\n    n: int64,\n};\n", sb.String())
}

func TestRender_FieldNamingOverrides(t *testing.T) {
	r := New(Options{
		PascalCaseFields: true,
		FieldMappings:    map[string]string{"user_id": "UserID"},
	})
	got := r.RenderString(inferString(t, `{"user_id": 1, "first_name": "g"}`))

	autogold.Expect(`{
    UserID: int64,
    FirstName: string,
}`).Equal(t, got)
}

func TestIsBareIdentifier(t *testing.T) {
	bare := []string{"a", "_", "snake_case", "CamelCase", "x9", "_0"}
	for _, name := range bare {
		assert.True(t, isBareIdentifier(name), name)
	}

	escaped := []string{"", "1st", "type", "func", "dash-ed", "with space", "dotted.name", "quo\"te", "ünicode"}
	for _, name := range escaped {
		assert.False(t, isBareIdentifier(name), name)
	}
}
