package validate

import (
	"fmt"

	"github.com/flowport/flowport/model"
	"github.com/flowport/flowport/transform"
)

// Validate runs the platform agnostic structural checks in a fixed order and
// layers the target platform's topology rules on top. It always returns a
// result and never panics; an empty graph is valid.
func Validate(graph *model.WorkflowGraph, target transform.Format) *model.ValidationResult {
	result := model.NewValidationResult()
	if graph == nil {
		return result
	}
	checkTrigger(graph, result)
	checkDuplicateIds(graph, result)
	checkConnections(graph, result)
	checkOrphans(graph, result)
	checkCycles(graph, result)
	switch target {
	case transform.FORMAT_N8N:
		// full DAG support, no extra rules
	case transform.FORMAT_MAKE:
		checkMakeFanIn(graph, result)
	case transform.FORMAT_ZAPIER:
		checkZapierLinearity(graph, result)
	}
	return result
}

func checkTrigger(graph *model.WorkflowGraph, result *model.ValidationResult) {
	if len(graph.Nodes) == 0 {
		return
	}
	for _, node := range graph.Nodes {
		if node.Kind == model.NODE_KIND_TRIGGER {
			return
		}
	}
	result.AddError(model.ValidationIssue{Message: "workflow has no trigger node"})
}

func checkDuplicateIds(graph *model.WorkflowGraph, result *model.ValidationResult) {
	counts := make(map[string]int, len(graph.Nodes))
	for _, node := range graph.Nodes {
		counts[node.Id]++
	}
	reported := map[string]bool{}
	for _, node := range graph.Nodes {
		if counts[node.Id] > 1 && !reported[node.Id] {
			reported[node.Id] = true
			result.AddError(model.ValidationIssue{
				Message: fmt.Sprintf("duplicate node id %q", node.Id),
				NodeId:  node.Id,
				Field:   "id",
			})
		}
	}
}

func checkConnections(graph *model.WorkflowGraph, result *model.ValidationResult) {
	ids := make(map[string]bool, len(graph.Nodes))
	for _, node := range graph.Nodes {
		ids[node.Id] = true
	}
	for _, conn := range graph.Connections {
		if !ids[conn.Source] {
			result.AddError(model.ValidationIssue{
				Message: fmt.Sprintf("connection references missing source node %q", conn.Source),
				NodeId:  conn.Source,
				Field:   "source",
			})
		}
		if !ids[conn.Target] {
			result.AddError(model.ValidationIssue{
				Message: fmt.Sprintf("connection references missing target node %q", conn.Target),
				NodeId:  conn.Target,
				Field:   "target",
			})
		}
	}
}

func checkOrphans(graph *model.WorkflowGraph, result *model.ValidationResult) {
	if len(graph.Nodes) <= 1 {
		return
	}
	touched := map[string]bool{}
	for _, conn := range graph.Connections {
		touched[conn.Source] = true
		touched[conn.Target] = true
	}
	for _, node := range graph.Nodes {
		if node.Kind != model.NODE_KIND_TRIGGER && !touched[node.Id] {
			result.AddWarning(model.ValidationIssue{
				Message: fmt.Sprintf("node %q is not connected to the workflow", node.Id),
				NodeId:  node.Id,
			})
		}
	}
}

type dfsColor int

const colorWhite dfsColor = 0
const colorGrey dfsColor = 1
const colorBlack dfsColor = 2

// checkCycles runs a depth first search with a recursion stack. A cycle is a
// warning, not an error: some platforms tolerate loop back edges.
func checkCycles(graph *model.WorkflowGraph, result *model.ValidationResult) {
	adjacency := make(map[string][]string, len(graph.Nodes))
	for _, conn := range graph.Connections {
		adjacency[conn.Source] = append(adjacency[conn.Source], conn.Target)
	}
	colors := make(map[string]dfsColor, len(graph.Nodes))
	for _, node := range graph.Nodes {
		colors[node.Id] = colorWhite
	}
	var visit func(id string) bool
	visit = func(id string) bool {
		colors[id] = colorGrey
		for _, next := range adjacency[id] {
			color, known := colors[next]
			if !known {
				continue
			}
			if color == colorGrey {
				return true
			}
			if color == colorWhite && visit(next) {
				return true
			}
		}
		colors[id] = colorBlack
		return false
	}
	for _, node := range graph.Nodes {
		if colors[node.Id] == colorWhite && visit(node.Id) {
			result.HasCircular = true
			result.AddWarning(model.ValidationIssue{Message: "workflow contains a cycle"})
			return
		}
	}
}

func checkMakeFanIn(graph *model.WorkflowGraph, result *model.ValidationResult) {
	for _, node := range graph.Nodes {
		if graph.InDegree(node.Id) > 1 {
			result.AddWarning(model.ValidationIssue{
				Message: fmt.Sprintf("node %q receives multiple inputs, which may require manual adjustment", node.Id),
				NodeId:  node.Id,
			})
		}
	}
}

func checkZapierLinearity(graph *model.WorkflowGraph, result *model.ValidationResult) {
	for _, node := range graph.Nodes {
		if graph.OutDegree(node.Id) > 1 {
			result.AddError(model.ValidationIssue{
				Message: fmt.Sprintf("node %q branches to multiple nodes, but the platform only supports linear workflows", node.Id),
				NodeId:  node.Id,
			})
		}
		if graph.InDegree(node.Id) > 1 {
			result.AddError(model.ValidationIssue{
				Message: fmt.Sprintf("node %q receives multiple inputs, but the platform only supports linear workflows", node.Id),
				NodeId:  node.Id,
			})
		}
		if node.Kind == model.NODE_KIND_LOGIC {
			result.AddWarning(model.ValidationIssue{
				Message: fmt.Sprintf("node %q uses conditional logic, which the platform supports only in a limited form", node.Id),
				NodeId:  node.Id,
			})
		}
	}
}
