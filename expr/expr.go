package expr

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/oliveagle/jsonpath"
)

var tokenPattern = regexp.MustCompile(`\{\{(.*?)\}\}`)

// MapperExpr is one {{module.path}} reference inside a mapper value.
type MapperExpr struct {
	Raw    string
	Module string
	Path   string
}

// Reference builds the canonical expression string referencing another
// module's output field.
func Reference(moduleId int, field string) string {
	return fmt.Sprintf("{{%d.%s}}", moduleId, field)
}

// ContainsExpression reports whether a value already carries a {{...}}
// token. Auto-fix uses this as its idempotence guard: an expression is never
// re-wrapped.
func ContainsExpression(value any) bool {
	s, ok := value.(string)
	if !ok {
		return false
	}
	return tokenPattern.MatchString(s)
}

// Parse extracts every {{module.path}} token from a mapper value.
func Parse(value string) []MapperExpr {
	tokens := tokenPattern.FindAllString(value, -1)
	exprs := make([]MapperExpr, 0, len(tokens))
	for _, token := range tokens {
		inner := strings.TrimSuffix(strings.TrimPrefix(token, "{{"), "}}")
		inner = strings.TrimSpace(inner)
		module, path, found := strings.Cut(inner, ".")
		if !found || module == "" || path == "" {
			continue
		}
		exprs = append(exprs, MapperExpr{Raw: token, Module: module, Path: path})
	}
	return exprs
}

// Resolve substitutes every expression token in value with the matching
// field from outputs, keyed by module id. Unresolvable tokens are left in
// place so a partial sample still previews cleanly.
func Resolve(value string, outputs map[string]any) string {
	resolved := value
	for _, e := range Parse(value) {
		data, ok := outputs[e.Module]
		if !ok {
			continue
		}
		lookup, err := jsonpath.JsonPathLookup(data, "$."+e.Path)
		if err != nil {
			continue
		}
		resolved = strings.ReplaceAll(resolved, e.Raw, fmt.Sprintf("%v", lookup))
	}
	return resolved
}

// ResolveMapper previews a whole mapper against sample module outputs,
// resolving string values and recursing into nested maps and lists.
func ResolveMapper(mapper map[string]any, outputs map[string]any) map[string]any {
	result := make(map[string]any, len(mapper))
	for k, v := range mapper {
		result[k] = resolveValue(v, outputs)
	}
	return result
}

func resolveValue(v any, outputs map[string]any) any {
	switch val := v.(type) {
	case string:
		return Resolve(val, outputs)
	case map[string]any:
		return ResolveMapper(val, outputs)
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = resolveValue(item, outputs)
		}
		return out
	default:
		return v
	}
}
