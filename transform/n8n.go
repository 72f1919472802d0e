package transform

import (
	"sort"

	"github.com/flowport/flowport/logger"
	"github.com/flowport/flowport/model"
	"go.uber.org/zap"
)

const n8nMainSlot string = "main"

// N8nToCanonical converts a graph-format workflow into the canonical model.
// The vendor adjacency map addresses nodes by display name; references to
// names that match no node are dropped rather than reported, so a partial
// document still yields a best effort graph. The validator catches genuinely
// dangling ids afterwards.
func N8nToCanonical(wf *model.N8nWorkflow) *model.WorkflowGraph {
	graph := model.EmptyGraph()
	graph.Name = wf.Name
	nameToId := make(map[string]string, len(wf.Nodes))
	for i, n := range wf.Nodes {
		node := model.CanvasNode{
			Id:               n.Id,
			Kind:             classifyKind(i, n.Type, n.Name),
			App:              AppSlug(n.Type),
			DisplayName:      n.Name,
			Parameters:       n.Parameters,
			Credentials:      n.Credentials,
			VendorType:       n.Type,
			TypeVersion:      n.TypeVersion,
			Disabled:         n.Disabled,
			Notes:            n.Notes,
			ContinueOnFail:   n.ContinueOnFail,
			RetryOnFail:      n.RetryOnFail,
			MaxTries:         n.MaxTries,
			WaitBetweenTries: n.WaitBetweenTries,
		}
		if len(n.Position) >= 2 {
			node.Position = model.Position{X: n.Position[0], Y: n.Position[1]}
		}
		if node.Parameters == nil {
			node.Parameters = map[string]any{}
		}
		nameToId[n.Name] = node.Id
		graph.Nodes = append(graph.Nodes, node)
	}
	for srcName, slots := range wf.Connections {
		srcId, ok := nameToId[srcName]
		if !ok {
			logger.Debug("dropping connection from unknown node", zap.String("source", srcName))
			continue
		}
		for _, groups := range slots {
			for _, group := range groups {
				for _, ref := range group {
					tgtId, ok := nameToId[ref.Node]
					if !ok {
						logger.Debug("dropping connection to unknown node", zap.String("target", ref.Node))
						continue
					}
					graph.Connections = append(graph.Connections, model.CanvasConnection{Source: srcId, Target: tgtId})
				}
			}
		}
	}
	// adjacency map iteration order is not stable
	sort.Slice(graph.Connections, func(i, j int) bool {
		a, b := graph.Connections[i], graph.Connections[j]
		if a.Source != b.Source {
			return a.Source < b.Source
		}
		return a.Target < b.Target
	})
	return graph
}

// CanonicalToN8n is the inverse mapping. Connections are keyed by the source
// node's display name because that is how the vendor format addresses nodes.
// Precondition: display names are unique within the graph; duplicate names
// make name based connection resolution ambiguous on re-import.
func CanonicalToN8n(graph *model.WorkflowGraph) *model.N8nWorkflow {
	wf := &model.N8nWorkflow{
		Name:        graph.Name,
		Nodes:       []model.N8nNode{},
		Connections: map[string]map[string][][]model.N8nConnectionRef{},
	}
	if wf.Name == "" {
		wf.Name = "Untitled Workflow"
	}
	idToName := make(map[string]string, len(graph.Nodes))
	for _, node := range graph.Nodes {
		name := node.DisplayName
		if name == "" {
			name = node.Id
		}
		idToName[node.Id] = name
		vendorType := node.VendorType
		if vendorType == "" {
			vendorType = node.App
		}
		typeVersion := node.TypeVersion
		if typeVersion == 0 {
			typeVersion = 1
		}
		wf.Nodes = append(wf.Nodes, model.N8nNode{
			Id:               node.Id,
			Name:             name,
			Type:             vendorType,
			TypeVersion:      typeVersion,
			Position:         []float64{node.Position.X, node.Position.Y},
			Parameters:       node.Parameters,
			Credentials:      node.Credentials,
			Disabled:         node.Disabled,
			Notes:            node.Notes,
			ContinueOnFail:   node.ContinueOnFail,
			RetryOnFail:      node.RetryOnFail,
			MaxTries:         node.MaxTries,
			WaitBetweenTries: node.WaitBetweenTries,
		})
	}
	for _, conn := range graph.Connections {
		srcName, srcOk := idToName[conn.Source]
		tgtName, tgtOk := idToName[conn.Target]
		if !srcOk || !tgtOk {
			continue
		}
		slots, ok := wf.Connections[srcName]
		if !ok {
			slots = map[string][][]model.N8nConnectionRef{n8nMainSlot: {{}}}
			wf.Connections[srcName] = slots
		}
		slots[n8nMainSlot][0] = append(slots[n8nMainSlot][0], model.N8nConnectionRef{
			Node:  tgtName,
			Type:  n8nMainSlot,
			Index: 0,
		})
	}
	return wf
}
