package model

type NodeKind string

const NODE_KIND_TRIGGER NodeKind = "trigger"
const NODE_KIND_ACTION NodeKind = "action"
const NODE_KIND_LOGIC NodeKind = "logic"

type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// CanvasNode is the vendor neutral node every transformer targets.
// Id must be unique within a graph; the validator enforces it.
type CanvasNode struct {
	Id               string         `json:"id"`
	Kind             NodeKind       `json:"type"`
	App              string         `json:"app"`
	DisplayName      string         `json:"action"`
	Position         Position       `json:"position"`
	Parameters       map[string]any `json:"parameters"`
	Credentials      map[string]any `json:"credentials,omitempty"`
	VendorType       string         `json:"nodeType,omitempty"`
	TypeVersion      float64        `json:"typeVersion,omitempty"`
	Disabled         bool           `json:"disabled,omitempty"`
	Notes            string         `json:"notes,omitempty"`
	ContinueOnFail   bool           `json:"continueOnFail,omitempty"`
	RetryOnFail      bool           `json:"retryOnFail,omitempty"`
	MaxTries         int            `json:"maxTries,omitempty"`
	WaitBetweenTries int            `json:"waitBetweenTries,omitempty"`
}

type CanvasConnection struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

type WorkflowGraph struct {
	Name        string             `json:"name,omitempty"`
	Nodes       []CanvasNode       `json:"nodes"`
	Connections []CanvasConnection `json:"connections"`
}

func EmptyGraph() *WorkflowGraph {
	return &WorkflowGraph{
		Nodes:       []CanvasNode{},
		Connections: []CanvasConnection{},
	}
}

func (g *WorkflowGraph) NodeById(id string) (*CanvasNode, bool) {
	for i := range g.Nodes {
		if g.Nodes[i].Id == id {
			return &g.Nodes[i], true
		}
	}
	return nil, false
}

func (g *WorkflowGraph) InDegree(id string) int {
	count := 0
	for _, conn := range g.Connections {
		if conn.Target == id {
			count++
		}
	}
	return count
}

func (g *WorkflowGraph) OutDegree(id string) int {
	count := 0
	for _, conn := range g.Connections {
		if conn.Source == id {
			count++
		}
	}
	return count
}
