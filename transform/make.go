package transform

import (
	"strconv"
	"strings"

	"github.com/flowport/flowport/model"
)

// MakeToCanonical converts a flow-format scenario into the canonical model.
// The scenario is strictly sequential, so the first module is the trigger
// (no content heuristic) and connections form the chain module[i] →
// module[i+1]. Positions come from a synthesized linear layout, not from the
// scenario's designer coordinates, which use a different coordinate space.
func MakeToCanonical(scenario *model.MakeScenario) *model.WorkflowGraph {
	graph := model.EmptyGraph()
	graph.Name = scenario.Name
	for i, mod := range scenario.Flow {
		kind := model.NODE_KIND_ACTION
		if i == 0 {
			kind = model.NODE_KIND_TRIGGER
		} else if isLogicModule(mod.Module) {
			kind = model.NODE_KIND_LOGIC
		}
		id := strconv.Itoa(mod.Id)
		if mod.Id == 0 {
			id = "module-" + strconv.Itoa(i+1)
		}
		params := mod.Parameters
		if params == nil {
			params = map[string]any{}
		}
		graph.Nodes = append(graph.Nodes, model.CanvasNode{
			Id:          id,
			Kind:        kind,
			App:         makeApp(mod.Module),
			DisplayName: makeDisplayName(mod.Module),
			Position:    model.Position{X: 100 + 300*float64(i), Y: 100},
			Parameters:  params,
			VendorType:  mod.Module,
			TypeVersion: float64(mod.Version),
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

// CanonicalToMake flattens the graph into a sequential module chain in node
// order. This is lossy for branching or merging graphs; the validator's
// fan-in warning flags those before export.
func CanonicalToMake(graph *model.WorkflowGraph) *model.MakeScenario {
	scenario := &model.MakeScenario{
		Name: graph.Name,
		Flow: []model.MakeModule{},
	}
	if scenario.Name == "" {
		scenario.Name = "Untitled Workflow"
	}
	for i, node := range graph.Nodes {
		module := node.VendorType
		if module == "" {
			module = node.App
		}
		version := int(node.TypeVersion)
		if version == 0 {
			version = 1
		}
		scenario.Flow = append(scenario.Flow, model.MakeModule{
			Id:         i + 1,
			Module:     module,
			Version:    version,
			Parameters: node.Parameters,
			Metadata: &model.MakeModuleMetadata{
				Designer: &model.MakeDesigner{X: 150 * float64(i), Y: 0},
			},
		})
	}
	instant := false
	if len(scenario.Flow) > 0 {
		instant = model.IsInstantModule(scenario.Flow[0].Module)
	}
	scenario.Metadata = &model.MakeMetadata{
		Instant:  instant,
		Version:  1,
		Scenario: model.DefaultMakeScenarioSettings(len(scenario.Flow)),
		Designer: &model.MakeMetadataDesigner{Orphans: []any{}},
		Zone:     model.MAKE_DEFAULT_ZONE,
		Notes:    []string{},
	}
	return scenario
}

// makeApp extracts the app slug from a module identifier such as
// "slack:CreateMessage".
func makeApp(module string) string {
	app, _, _ := strings.Cut(module, ":")
	return strings.ToLower(app)
}

func makeDisplayName(module string) string {
	_, event, found := strings.Cut(module, ":")
	if !found || event == "" {
		return module
	}
	return event
}
