package model

import "time"

// StoredWorkflow is a canonical graph persisted between editing sessions.
type StoredWorkflow struct {
	Id        string        `json:"id"`
	Name      string        `json:"name"`
	Graph     WorkflowGraph `json:"graph"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}
