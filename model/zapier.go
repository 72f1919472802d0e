package model

// ZapierWorkflow is the step-format wire shape: a strictly ordered step list.
type ZapierWorkflow struct {
	Title string       `json:"title"`
	Steps []ZapierStep `json:"steps"`
}

type ZapierStep struct {
	Id     string         `json:"id"`
	App    string         `json:"app"`
	Event  string         `json:"event"`
	Params map[string]any `json:"params,omitempty"`
}
