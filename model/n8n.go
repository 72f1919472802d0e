package model

// N8nWorkflow is the graph-format wire shape. Connections are keyed by the
// source node's display name, then by output slot, each slot holding groups
// of connection targets.
type N8nWorkflow struct {
	Name        string                                     `json:"name"`
	Nodes       []N8nNode                                  `json:"nodes"`
	Connections map[string]map[string][][]N8nConnectionRef `json:"connections"`
	Active      bool                                       `json:"active,omitempty"`
	Settings    map[string]any                             `json:"settings,omitempty"`
}

type N8nNode struct {
	Id               string         `json:"id"`
	Name             string         `json:"name"`
	Type             string         `json:"type"`
	TypeVersion      float64        `json:"typeVersion,omitempty"`
	Position         []float64      `json:"position"`
	Parameters       map[string]any `json:"parameters"`
	Credentials      map[string]any `json:"credentials,omitempty"`
	Disabled         bool           `json:"disabled,omitempty"`
	Notes            string         `json:"notes,omitempty"`
	ContinueOnFail   bool           `json:"continueOnFail,omitempty"`
	RetryOnFail      bool           `json:"retryOnFail,omitempty"`
	MaxTries         int            `json:"maxTries,omitempty"`
	WaitBetweenTries int            `json:"waitBetweenTries,omitempty"`
}

type N8nConnectionRef struct {
	Node  string `json:"node"`
	Type  string `json:"type"`
	Index int    `json:"index"`
}
