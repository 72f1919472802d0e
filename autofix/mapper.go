package autofix

import (
	"fmt"
	"strings"

	"github.com/flowport/flowport/expr"
	"github.com/flowport/flowport/model"
)

// dataTokens marks parameter keys that carry payload data between modules.
// Matching is case insensitive substring.
var dataTokens = []string{
	"data", "body", "content", "message", "text", "value",
	"input", "payload", "item", "record", "fields",
}

func keyCarriesData(key string) bool {
	lower := strings.ToLower(key)
	for _, token := range dataTokens {
		if strings.Contains(lower, token) {
			return true
		}
	}
	return false
}

// mapperFixes synthesizes a mapper for every non-trigger module that lacks
// one: the module's parameters are copied and any data-carrying key is
// rewired to the immediately preceding module's output. Values that already
// hold a {{...}} expression are never re-wrapped, and empty values are left
// alone, so repeated runs produce nothing new.
//
// The fix is medium confidence when at least one key was rewired (a real
// data flow inference) and low confidence when the mapper is a plain copy.
func mapperFixes(s *model.MakeScenario, finalIds []int) []candidate {
	var out []candidate
	for i := 1; i < len(s.Flow); i++ {
		mod := s.Flow[i]
		if mod.Mapper != nil || len(mod.Parameters) == 0 {
			continue
		}
		prevId := finalIds[i-1]
		mapper := make(map[string]any, len(mod.Parameters))
		rewired := 0
		for key, value := range mod.Parameters {
			str, isString := value.(string)
			if keyCarriesData(key) && isString && str != "" && !expr.ContainsExpression(str) {
				mapper[key] = expr.Reference(prevId, "data")
				rewired++
				continue
			}
			mapper[key] = value
		}
		confidence := model.FIX_CONFIDENCE_LOW
		description := "copy parameters into mapper"
		if rewired > 0 {
			confidence = model.FIX_CONFIDENCE_MEDIUM
			description = fmt.Sprintf("map %d data field(s) from module %d's output", rewired, prevId)
		}
		index := i
		out = append(out, candidate{
			op: model.FixOperation{
				Module:      mod.Module,
				ModuleIndex: i,
				Field:       "mapper",
				Type:        model.FIX_TYPE_MAPPER,
				Before:      nil,
				After:       mapper,
				Confidence:  confidence,
				Description: description,
			},
			apply: func(s *model.MakeScenario) { s.Flow[index].Mapper = mapper },
		})
	}
	return out
}
