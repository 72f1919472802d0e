package transform

import (
	"strings"
	"unicode"

	"github.com/flowport/flowport/model"
)

// AppSlug derives the vendor neutral app slug from a dotted vendor type
// identifier: the namespace prefix and any trailing "Trigger" suffix are
// stripped, the remainder is converted from camelCase to kebab-case.
// "n8n-nodes-base.googleSheetsTrigger" becomes "google-sheets".
func AppSlug(vendorType string) string {
	t := vendorType
	if idx := strings.LastIndex(t, "."); idx >= 0 {
		t = t[idx+1:]
	}
	t = strings.TrimSuffix(t, "Trigger")
	return camelToKebab(t)
}

func camelToKebab(s string) string {
	var b strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

type triggerRule int

const ruleNone triggerRule = 0
const ruleIndex triggerRule = 1
const ruleTypeSubstring triggerRule = 2
const ruleNameSubstring triggerRule = 3
const ruleWebhookSubstring triggerRule = 4

// classifyTrigger applies the trigger heuristics in fixed priority order:
// declared index first, then type substring, then display name substring,
// then webhook substring. The first matching rule wins.
func classifyTrigger(index int, vendorType string, displayName string) (bool, triggerRule) {
	if index == 0 {
		return true, ruleIndex
	}
	if strings.Contains(strings.ToLower(vendorType), "trigger") {
		return true, ruleTypeSubstring
	}
	if strings.Contains(strings.ToLower(displayName), "trigger") {
		return true, ruleNameSubstring
	}
	if strings.Contains(strings.ToLower(vendorType), "webhook") {
		return true, ruleWebhookSubstring
	}
	return false, ruleNone
}

var logicSlugs = map[string]bool{
	"if":               true,
	"switch":           true,
	"merge":            true,
	"filter":           true,
	"router":           true,
	"no-op":            true,
	"split-in-batches": true,
}

func classifyKind(index int, vendorType string, displayName string) model.NodeKind {
	if isTrigger, _ := classifyTrigger(index, vendorType, displayName); isTrigger {
		return model.NODE_KIND_TRIGGER
	}
	if logicSlugs[AppSlug(vendorType)] {
		return model.NODE_KIND_LOGIC
	}
	return model.NODE_KIND_ACTION
}

// isLogicModule recognizes flow-format routing and filtering modules, e.g.
// "builtin:BasicRouter".
func isLogicModule(module string) bool {
	lower := strings.ToLower(module)
	return strings.Contains(lower, "router") || strings.Contains(lower, "filter")
}
