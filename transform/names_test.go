package transform

import (
	"testing"

	"github.com/flowport/flowport/model"
	"github.com/stretchr/testify/require"
)

func TestAppSlug(t *testing.T) {
	for scenario, tc := range map[string]struct {
		vendorType string
		want       string
	}{
		"namespace and trigger suffix": {"n8n-nodes-base.googleSheetsTrigger", "google-sheets"},
		"plain action":                 {"n8n-nodes-base.slack", "slack"},
		"camel case":                   {"n8n-nodes-base.httpRequest", "http-request"},
		"no namespace":                 {"webhook", "webhook"},
		"logic node":                   {"n8n-nodes-base.if", "if"},
		"split in batches":             {"n8n-nodes-base.splitInBatches", "split-in-batches"},
	} {
		t.Run(scenario, func(t *testing.T) {
			require.Equal(t, tc.want, AppSlug(tc.vendorType))
		})
	}
}

// The trigger heuristics apply in a fixed priority order: index first, then
// type substring, then name substring, then webhook substring.
func TestClassifyTriggerPriorityOrder(t *testing.T) {
	isTrigger, rule := classifyTrigger(0, "n8n-nodes-base.slack", "Send Message")
	require.True(t, isTrigger)
	require.Equal(t, ruleIndex, rule)

	isTrigger, rule = classifyTrigger(3, "n8n-nodes-base.slackTrigger", "Slack Trigger")
	require.True(t, isTrigger)
	require.Equal(t, ruleTypeSubstring, rule)

	isTrigger, rule = classifyTrigger(3, "n8n-nodes-base.slack", "My Trigger")
	require.True(t, isTrigger)
	require.Equal(t, ruleNameSubstring, rule)

	isTrigger, rule = classifyTrigger(3, "n8n-nodes-base.webhook", "Incoming")
	require.True(t, isTrigger)
	require.Equal(t, ruleWebhookSubstring, rule)

	isTrigger, rule = classifyTrigger(3, "n8n-nodes-base.slack", "Send Message")
	require.False(t, isTrigger)
	require.Equal(t, ruleNone, rule)
}

func TestClassifyKind(t *testing.T) {
	require.Equal(t, model.NODE_KIND_TRIGGER, classifyKind(0, "n8n-nodes-base.slack", "Send"))
	require.Equal(t, model.NODE_KIND_LOGIC, classifyKind(2, "n8n-nodes-base.if", "Check"))
	require.Equal(t, model.NODE_KIND_LOGIC, classifyKind(2, "n8n-nodes-base.switch", "Route"))
	require.Equal(t, model.NODE_KIND_ACTION, classifyKind(2, "n8n-nodes-base.slack", "Send"))
	// "shopify" contains "if" but is not a logic node
	require.Equal(t, model.NODE_KIND_ACTION, classifyKind(2, "n8n-nodes-base.shopify", "Create Order"))
}
