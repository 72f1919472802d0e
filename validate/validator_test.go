package validate

import (
	"testing"

	"github.com/flowport/flowport/model"
	"github.com/flowport/flowport/transform"
	"github.com/stretchr/testify/require"
)

func linearGraph(ids ...string) *model.WorkflowGraph {
	graph := model.EmptyGraph()
	for i, id := range ids {
		kind := model.NODE_KIND_ACTION
		if i == 0 {
			kind = model.NODE_KIND_TRIGGER
		}
		graph.Nodes = append(graph.Nodes, model.CanvasNode{Id: id, Kind: kind, App: "app"})
	}
	for i := 0; i+1 < len(ids); i++ {
		graph.Connections = append(graph.Connections, model.CanvasConnection{Source: ids[i], Target: ids[i+1]})
	}
	return graph
}

func TestValidateEmptyGraphIsValid(t *testing.T) {
	result := Validate(model.EmptyGraph(), transform.FORMAT_N8N)
	require.True(t, result.IsValid)
	require.Empty(t, result.Errors)
	require.Empty(t, result.Warnings)
}

func TestValidateMissingTrigger(t *testing.T) {
	graph := model.EmptyGraph()
	graph.Nodes = append(graph.Nodes, model.CanvasNode{Id: "a", Kind: model.NODE_KIND_ACTION})
	result := Validate(graph, transform.FORMAT_N8N)
	require.False(t, result.IsValid)
	require.Len(t, result.Errors, 1)
	require.Contains(t, result.Errors[0].Message, "trigger")
}

func TestValidateDuplicateIds(t *testing.T) {
	graph := linearGraph("a", "b")
	graph.Nodes = append(graph.Nodes, model.CanvasNode{Id: "a", Kind: model.NODE_KIND_ACTION})
	result := Validate(graph, transform.FORMAT_N8N)
	require.False(t, result.IsValid)
	// exactly one error per duplicate id
	dupErrors := 0
	for _, issue := range result.Errors {
		if issue.Field == "id" {
			dupErrors++
			require.Equal(t, "a", issue.NodeId)
		}
	}
	require.Equal(t, 1, dupErrors)
}

func TestValidateDanglingConnection(t *testing.T) {
	graph := linearGraph("a", "b")
	graph.Connections = append(graph.Connections, model.CanvasConnection{Source: "b", Target: "ghost"})
	result := Validate(graph, transform.FORMAT_N8N)
	require.False(t, result.IsValid)
	require.Len(t, result.Errors, 1)
	require.Equal(t, "ghost", result.Errors[0].NodeId)
	require.Equal(t, "target", result.Errors[0].Field)
}

func TestValidateOrphanWarning(t *testing.T) {
	graph := linearGraph("a", "b")
	graph.Nodes = append(graph.Nodes, model.CanvasNode{Id: "c", Kind: model.NODE_KIND_ACTION})
	result := Validate(graph, transform.FORMAT_N8N)
	require.True(t, result.IsValid)
	require.Len(t, result.Warnings, 1)
	require.Equal(t, "c", result.Warnings[0].NodeId)
}

func TestValidateSingleNodeHasNoOrphanWarning(t *testing.T) {
	graph := model.EmptyGraph()
	graph.Nodes = append(graph.Nodes, model.CanvasNode{Id: "a", Kind: model.NODE_KIND_TRIGGER})
	result := Validate(graph, transform.FORMAT_N8N)
	require.True(t, result.IsValid)
	require.Empty(t, result.Warnings)
}

// A cycle is a warning, never an error: some platforms tolerate loop back
// edges.
func TestValidateCycleIsWarningOnly(t *testing.T) {
	graph := linearGraph("a", "b", "c")
	graph.Connections = append(graph.Connections, model.CanvasConnection{Source: "c", Target: "a"})
	result := Validate(graph, transform.FORMAT_N8N)
	require.True(t, result.HasCircular)
	require.Empty(t, result.Errors)
	require.True(t, result.IsValid)
	require.Len(t, result.Warnings, 1)
	require.Contains(t, result.Warnings[0].Message, "cycle")
}

func TestValidateMakeFanInWarning(t *testing.T) {
	graph := linearGraph("a", "b", "c")
	graph.Connections = append(graph.Connections, model.CanvasConnection{Source: "a", Target: "c"})
	result := Validate(graph, transform.FORMAT_MAKE)
	require.True(t, result.IsValid)
	found := false
	for _, warning := range result.Warnings {
		if warning.NodeId == "c" {
			found = true
			require.Contains(t, warning.Message, "multiple inputs")
		}
	}
	require.True(t, found)
}

func TestValidateZapierLinearity(t *testing.T) {
	// a strictly linear chain has no branching errors
	graph := linearGraph("a", "b", "c")
	result := Validate(graph, transform.FORMAT_ZAPIER)
	require.Empty(t, result.Errors)

	// one node with out-degree 2 yields exactly one branching error for it
	graph.Nodes = append(graph.Nodes, model.CanvasNode{Id: "d", Kind: model.NODE_KIND_ACTION})
	graph.Connections = append(graph.Connections, model.CanvasConnection{Source: "a", Target: "d"})
	result = Validate(graph, transform.FORMAT_ZAPIER)
	branchErrors := 0
	for _, issue := range result.Errors {
		if issue.NodeId == "a" {
			branchErrors++
			require.Contains(t, issue.Message, "branches to multiple nodes")
		}
	}
	require.Equal(t, 1, branchErrors)
}

func TestValidateZapierLogicNodeWarning(t *testing.T) {
	graph := linearGraph("a", "b")
	graph.Nodes[1].Kind = model.NODE_KIND_LOGIC
	result := Validate(graph, transform.FORMAT_ZAPIER)
	require.Len(t, result.Warnings, 1)
	require.Equal(t, "b", result.Warnings[0].NodeId)
}

func TestValidateNeverPanicsOnNil(t *testing.T) {
	result := Validate(nil, transform.FORMAT_N8N)
	require.True(t, result.IsValid)
}
