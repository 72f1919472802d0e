package expr

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReference(t *testing.T) {
	require.Equal(t, "{{3.data}}", Reference(3, "data"))
}

func TestContainsExpression(t *testing.T) {
	require.True(t, ContainsExpression("{{1.data}}"))
	require.True(t, ContainsExpression("prefix {{2.body}} suffix"))
	require.False(t, ContainsExpression("hello"))
	require.False(t, ContainsExpression(""))
	require.False(t, ContainsExpression(42))
	require.False(t, ContainsExpression(nil))
}

func TestParse(t *testing.T) {
	exprs := Parse("order {{1.data}} sent to {{2.channel}}")
	require.Len(t, exprs, 2)
	require.Equal(t, MapperExpr{Raw: "{{1.data}}", Module: "1", Path: "data"}, exprs[0])
	require.Equal(t, MapperExpr{Raw: "{{2.channel}}", Module: "2", Path: "channel"}, exprs[1])
}

func TestParseSkipsMalformedTokens(t *testing.T) {
	require.Empty(t, Parse("{{nodotinside}}"))
	require.Empty(t, Parse("no tokens here"))
}

func TestResolve(t *testing.T) {
	outputs := map[string]any{
		"1": map[string]any{"data": "new order", "meta": map[string]any{"id": 42}},
	}
	require.Equal(t, "got: new order", Resolve("got: {{1.data}}", outputs))
	require.Equal(t, "id 42", Resolve("id {{1.meta.id}}", outputs))
	// unresolvable tokens are left in place
	require.Equal(t, "{{9.data}}", Resolve("{{9.data}}", outputs))
	require.Equal(t, "{{1.missing}}", Resolve("{{1.missing}}", outputs))
}

func TestResolveMapper(t *testing.T) {
	outputs := map[string]any{"1": map[string]any{"data": "hello"}}
	mapper := map[string]any{
		"text":    "{{1.data}}",
		"channel": "#general",
		"nested":  map[string]any{"inner": "{{1.data}}"},
		"list":    []any{"{{1.data}}", 5},
	}
	resolved := ResolveMapper(mapper, outputs)
	require.Equal(t, "hello", resolved["text"])
	require.Equal(t, "#general", resolved["channel"])
	require.Equal(t, "hello", resolved["nested"].(map[string]any)["inner"])
	require.Equal(t, "hello", resolved["list"].([]any)[0])
	require.Equal(t, 5, resolved["list"].([]any)[1])
}
