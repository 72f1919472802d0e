package transform

import (
	"testing"

	"github.com/flowport/flowport/model"
	"github.com/stretchr/testify/require"
)

func sampleN8nWorkflow() *model.N8nWorkflow {
	return &model.N8nWorkflow{
		Name: "notify",
		Nodes: []model.N8nNode{
			{
				Id:          "a",
				Name:        "Webhook",
				Type:        "n8n-nodes-base.webhook",
				TypeVersion: 1,
				Position:    []float64{100, 100},
				Parameters:  map[string]any{"path": "incoming"},
			},
			{
				Id:          "b",
				Name:        "Check",
				Type:        "n8n-nodes-base.if",
				TypeVersion: 1,
				Position:    []float64{400, 100},
				Parameters:  map[string]any{},
			},
			{
				Id:          "c",
				Name:        "Slack",
				Type:        "n8n-nodes-base.slack",
				TypeVersion: 1,
				Position:    []float64{700, 100},
				Parameters:  map[string]any{"channel": "#general"},
			},
		},
		Connections: map[string]map[string][][]model.N8nConnectionRef{
			"Webhook": {"main": {{{Node: "Check", Type: "main", Index: 0}}}},
			"Check":   {"main": {{{Node: "Slack", Type: "main", Index: 0}}}},
		},
	}
}

func TestN8nToCanonical(t *testing.T) {
	graph := N8nToCanonical(sampleN8nWorkflow())

	require.Equal(t, "notify", graph.Name)
	require.Len(t, graph.Nodes, 3)
	require.Equal(t, model.NODE_KIND_TRIGGER, graph.Nodes[0].Kind)
	require.Equal(t, "webhook", graph.Nodes[0].App)
	require.Equal(t, model.NODE_KIND_LOGIC, graph.Nodes[1].Kind)
	require.Equal(t, model.NODE_KIND_ACTION, graph.Nodes[2].Kind)
	require.Equal(t, "slack", graph.Nodes[2].App)
	require.Equal(t, model.Position{X: 100, Y: 100}, graph.Nodes[0].Position)
	require.Equal(t, []model.CanvasConnection{
		{Source: "a", Target: "b"},
		{Source: "b", Target: "c"},
	}, graph.Connections)
}

func TestN8nToCanonicalDropsUnknownNameReferences(t *testing.T) {
	wf := sampleN8nWorkflow()
	wf.Connections["Webhook"]["main"][0] = append(wf.Connections["Webhook"]["main"][0],
		model.N8nConnectionRef{Node: "Ghost", Type: "main", Index: 0})
	wf.Connections["Phantom"] = map[string][][]model.N8nConnectionRef{
		"main": {{{Node: "Slack", Type: "main", Index: 0}}},
	}

	graph := N8nToCanonical(wf)
	// best effort: unresolvable names are dropped, not errors
	require.Len(t, graph.Connections, 2)
}

// Round trip through the canonical model preserves node identity, types and
// edges when display names are unique.
func TestN8nRoundTrip(t *testing.T) {
	original := sampleN8nWorkflow()
	back := CanonicalToN8n(N8nToCanonical(original))

	require.Equal(t, original.Name, back.Name)
	require.Len(t, back.Nodes, len(original.Nodes))
	for i, node := range original.Nodes {
		require.Equal(t, node.Id, back.Nodes[i].Id)
		require.Equal(t, node.Name, back.Nodes[i].Name)
		require.Equal(t, node.Type, back.Nodes[i].Type)
		require.Equal(t, node.Position, back.Nodes[i].Position)
	}
	require.Len(t, back.Connections, 2)
	require.Equal(t, "Check", back.Connections["Webhook"]["main"][0][0].Node)
	require.Equal(t, "Slack", back.Connections["Check"]["main"][0][0].Node)
}

func TestCanonicalToN8nDefaults(t *testing.T) {
	graph := &model.WorkflowGraph{
		Nodes: []model.CanvasNode{
			{Id: "n1", Kind: model.NODE_KIND_TRIGGER, App: "webhook"},
		},
	}
	wf := CanonicalToN8n(graph)
	require.Equal(t, "Untitled Workflow", wf.Name)
	require.Equal(t, "n1", wf.Nodes[0].Name)
	require.Equal(t, float64(1), wf.Nodes[0].TypeVersion)
	require.Equal(t, "webhook", wf.Nodes[0].Type)
}
