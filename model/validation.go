package model

type ValidationIssue struct {
	Message string `json:"message"`
	NodeId  string `json:"nodeId,omitempty"`
	Field   string `json:"field,omitempty"`
}

type ValidationResult struct {
	IsValid     bool              `json:"isValid"`
	Errors      []ValidationIssue `json:"errors"`
	Warnings    []ValidationIssue `json:"warnings"`
	HasCircular bool              `json:"hasCircular,omitempty"`
}

func NewValidationResult() *ValidationResult {
	return &ValidationResult{
		IsValid:  true,
		Errors:   []ValidationIssue{},
		Warnings: []ValidationIssue{},
	}
}

func (vr *ValidationResult) AddError(issue ValidationIssue) {
	vr.Errors = append(vr.Errors, issue)
	vr.IsValid = false
}

func (vr *ValidationResult) AddWarning(issue ValidationIssue) {
	vr.Warnings = append(vr.Warnings, issue)
}
