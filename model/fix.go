package model

import "fmt"

type FixType string

const FIX_TYPE_METADATA FixType = "metadata"
const FIX_TYPE_MAPPER FixType = "mapper"
const FIX_TYPE_MODULE_IDS FixType = "module-ids"
const FIX_TYPE_COORDINATES FixType = "coordinates"
const FIX_TYPE_VERSION FixType = "version"
const FIX_TYPE_SCENARIO_SETTINGS FixType = "scenario-settings"
const FIX_TYPE_ROUTER_ROUTES FixType = "router-routes"
const FIX_TYPE_PARAMETERS FixType = "parameters"
const FIX_TYPE_ZONE FixType = "zone"

func AllFixTypes() []FixType {
	return []FixType{
		FIX_TYPE_METADATA,
		FIX_TYPE_MAPPER,
		FIX_TYPE_MODULE_IDS,
		FIX_TYPE_COORDINATES,
		FIX_TYPE_VERSION,
		FIX_TYPE_SCENARIO_SETTINGS,
		FIX_TYPE_ROUTER_ROUTES,
		FIX_TYPE_PARAMETERS,
		FIX_TYPE_ZONE,
	}
}

type FixConfidence string

const FIX_CONFIDENCE_HIGH FixConfidence = "high"
const FIX_CONFIDENCE_MEDIUM FixConfidence = "medium"
const FIX_CONFIDENCE_LOW FixConfidence = "low"

func AllFixConfidences() []FixConfidence {
	return []FixConfidence{FIX_CONFIDENCE_HIGH, FIX_CONFIDENCE_MEDIUM, FIX_CONFIDENCE_LOW}
}

// Rank orders confidence levels for threshold filtering; higher is more
// certain.
func (c FixConfidence) Rank() int {
	switch c {
	case FIX_CONFIDENCE_HIGH:
		return 2
	case FIX_CONFIDENCE_MEDIUM:
		return 1
	default:
		return 0
	}
}

type FixOperation struct {
	Module      string        `json:"module"`
	ModuleIndex int           `json:"moduleIndex"`
	Field       string        `json:"field"`
	Type        FixType       `json:"type"`
	Before      any           `json:"before"`
	After       any           `json:"after"`
	Confidence  FixConfidence `json:"confidence"`
	Description string        `json:"description"`
}

type FixReport struct {
	TotalFixes   int                   `json:"totalFixes"`
	ByType       map[FixType]int       `json:"byType"`
	ByConfidence map[FixConfidence]int `json:"byConfidence"`
	Fixes        []FixOperation        `json:"fixes"`
	Summary      string                `json:"summary"`
}

// NewFixReport aggregates an ordered fix list, defaulting every type and
// confidence bucket to zero so absent keys never read as missing.
func NewFixReport(fixes []FixOperation) *FixReport {
	if fixes == nil {
		fixes = []FixOperation{}
	}
	report := &FixReport{
		TotalFixes:   len(fixes),
		ByType:       make(map[FixType]int),
		ByConfidence: make(map[FixConfidence]int),
		Fixes:        fixes,
	}
	for _, t := range AllFixTypes() {
		report.ByType[t] = 0
	}
	for _, c := range AllFixConfidences() {
		report.ByConfidence[c] = 0
	}
	for _, fix := range fixes {
		report.ByType[fix.Type]++
		report.ByConfidence[fix.Confidence]++
	}
	report.Summary = fmt.Sprintf("%d fixes (%d high, %d medium, %d low confidence)",
		report.TotalFixes,
		report.ByConfidence[FIX_CONFIDENCE_HIGH],
		report.ByConfidence[FIX_CONFIDENCE_MEDIUM],
		report.ByConfidence[FIX_CONFIDENCE_LOW])
	return report
}

type AutoFixResult struct {
	Success            bool              `json:"success"`
	FixedScenario      *MakeScenario     `json:"fixedScenario,omitempty"`
	OriginalValidation *ValidationResult `json:"originalValidation,omitempty"`
	ValidationResult   *ValidationResult `json:"validationResult,omitempty"`
	FixReport          *FixReport        `json:"fixReport"`
	Error              string            `json:"error,omitempty"`
}
