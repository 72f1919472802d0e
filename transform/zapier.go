package transform

import (
	"strings"

	"github.com/flowport/flowport/model"
	"github.com/google/uuid"
)

// ZapierToCanonical converts a step-format workflow into the canonical
// model: index zero is the trigger, everything else an action, connections
// form a strict sequential chain. Steps without an id get a generated one so
// the canonical graph invariant holds.
func ZapierToCanonical(wf *model.ZapierWorkflow) *model.WorkflowGraph {
	graph := model.EmptyGraph()
	graph.Name = wf.Title
	for i, step := range wf.Steps {
		kind := model.NODE_KIND_ACTION
		if i == 0 {
			kind = model.NODE_KIND_TRIGGER
		}
		id := step.Id
		if id == "" {
			id = uuid.NewString()
		}
		displayName := step.Event
		if displayName == "" {
			displayName = step.App
		}
		vendorType := step.App
		if step.App != "" && step.Event != "" {
			vendorType = step.App + "." + step.Event
		}
		params := step.Params
		if params == nil {
			params = map[string]any{}
		}
		graph.Nodes = append(graph.Nodes, model.CanvasNode{
			Id:          id,
			Kind:        kind,
			App:         step.App,
			DisplayName: displayName,
			Position:    model.Position{X: 100 + 300*float64(i), Y: 100},
			Parameters:  params,
			VendorType:  vendorType,
		})
	}
	for i := 0; i+1 < len(graph.Nodes); i++ {
		graph.Connections = append(graph.Connections, model.CanvasConnection{
			Source: graph.Nodes[i].Id,
			Target: graph.Nodes[i+1].Id,
		})
	}
	return graph
}

// CanonicalToZapier flattens the graph into an ordered step list. The
// validator's linearity rule must pass before this export is meaningful; the
// transformer itself stays best effort and emits nodes in graph order.
func CanonicalToZapier(graph *model.WorkflowGraph) *model.ZapierWorkflow {
	wf := &model.ZapierWorkflow{
		Title: graph.Name,
		Steps: []model.ZapierStep{},
	}
	if wf.Title == "" {
		wf.Title = "Untitled Workflow"
	}
	for _, node := range graph.Nodes {
		wf.Steps = append(wf.Steps, model.ZapierStep{
			Id:     node.Id,
			App:    node.App,
			Event:  zapierEvent(node),
			Params: node.Parameters,
		})
	}
	return wf
}

func zapierEvent(node model.CanvasNode) string {
	if idx := strings.LastIndex(node.VendorType, "."); idx >= 0 && idx+1 < len(node.VendorType) {
		return node.VendorType[idx+1:]
	}
	if node.DisplayName != "" {
		return strings.ToLower(strings.ReplaceAll(node.DisplayName, " ", "_"))
	}
	return node.App
}
