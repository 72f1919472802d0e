package model

import "strings"

const MAKE_DEFAULT_ZONE string = "eu2.make.com"

// MakeScenario is the flow-format wire shape: an ordered module list plus a
// rich metadata block. Pointer fields distinguish "absent" from "zero" so the
// auto-fix engine can tell what is actually missing.
type MakeScenario struct {
	Name     string        `json:"name"`
	Flow     []MakeModule  `json:"flow"`
	Metadata *MakeMetadata `json:"metadata,omitempty"`
}

// MakeModule's Parameters field stays un-omitted and Routes is a pointer so
// that a repaired scenario survives a JSON round trip without reverting to
// "absent": auto-fix must stay idempotent across serialization.
type MakeModule struct {
	Id         int                 `json:"id"`
	Module     string              `json:"module"`
	Version    int                 `json:"version,omitempty"`
	Parameters map[string]any      `json:"parameters"`
	Mapper     map[string]any      `json:"mapper,omitempty"`
	Metadata   *MakeModuleMetadata `json:"metadata,omitempty"`
	Routes     *[]MakeRoute        `json:"routes,omitempty"`
}

type MakeModuleMetadata struct {
	Designer *MakeDesigner `json:"designer,omitempty"`
}

type MakeDesigner struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// MakeRoute carries nested route flows verbatim. Transformers do not descend
// into routes; router semantics are unspecified upstream.
type MakeRoute struct {
	Flow []MakeModule `json:"flow,omitempty"`
}

type MakeMetadata struct {
	Instant   bool                  `json:"instant"`
	Version   int                   `json:"version,omitempty"`
	Scenario  *MakeScenarioSettings `json:"scenario,omitempty"`
	Designer  *MakeMetadataDesigner `json:"designer,omitempty"`
	Zone      string                `json:"zone,omitempty"`
	Notes     []string              `json:"notes"`
	CreatedBy string                `json:"created_by,omitempty"`
	CreatedAt string                `json:"created_at,omitempty"`
}

type MakeScenarioSettings struct {
	Roundtrips            int  `json:"roundtrips"`
	MaxErrors             int  `json:"maxErrors"`
	AutoCommit            bool `json:"autoCommit"`
	AutoCommitTriggerLast bool `json:"autoCommitTriggerLast"`
	Sequential            bool `json:"sequential"`
	Slots                 any  `json:"slots"`
	Confidential          bool `json:"confidential"`
	Dataloss              bool `json:"dataloss"`
	DLQ                   bool `json:"dlq"`
	FreshVariables        bool `json:"freshVariables"`
}

type MakeMetadataDesigner struct {
	Orphans []any `json:"orphans"`
}

// DefaultMakeScenarioSettings returns the settings block Make's importer
// expects when a scenario carries none.
func DefaultMakeScenarioSettings(flowLength int) *MakeScenarioSettings {
	return &MakeScenarioSettings{
		Roundtrips:            flowLength,
		MaxErrors:             3,
		AutoCommit:            true,
		AutoCommitTriggerLast: true,
		Sequential:            false,
		Slots:                 nil,
		Confidential:          false,
		Dataloss:              false,
		DLQ:                   false,
		FreshVariables:        false,
	}
}

// IsInstantModule reports whether a module identifier names a webhook style
// entry point, which makes the scenario an instant one.
func IsInstantModule(module string) bool {
	lower := strings.ToLower(module)
	return strings.Contains(lower, "webhook") || strings.HasPrefix(lower, "gateway")
}
