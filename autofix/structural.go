package autofix

import (
	"fmt"
	"strings"

	"github.com/flowport/flowport/model"
)

// Structural fixes fill fields that have exactly one correct value; they all
// carry high confidence.

func moduleIdFixes(s *model.MakeScenario, finalIds []int) []candidate {
	var out []candidate
	for i := range s.Flow {
		if s.Flow[i].Id == finalIds[i] {
			continue
		}
		index := i
		out = append(out, candidate{
			op: model.FixOperation{
				Module:      s.Flow[i].Module,
				ModuleIndex: i,
				Field:       "id",
				Type:        model.FIX_TYPE_MODULE_IDS,
				Before:      s.Flow[i].Id,
				After:       finalIds[i],
				Confidence:  model.FIX_CONFIDENCE_HIGH,
				Description: fmt.Sprintf("renumber module at index %d to id %d", i, finalIds[i]),
			},
			apply: func(s *model.MakeScenario) { s.Flow[index].Id = finalIds[index] },
		})
	}
	return out
}

func versionFixes(s *model.MakeScenario) []candidate {
	var out []candidate
	for i := range s.Flow {
		if s.Flow[i].Version != 0 {
			continue
		}
		index := i
		out = append(out, candidate{
			op: model.FixOperation{
				Module:      s.Flow[i].Module,
				ModuleIndex: i,
				Field:       "version",
				Type:        model.FIX_TYPE_VERSION,
				Before:      nil,
				After:       1,
				Confidence:  model.FIX_CONFIDENCE_HIGH,
				Description: "default module version to 1",
			},
			apply: func(s *model.MakeScenario) { s.Flow[index].Version = 1 },
		})
	}
	return out
}

func parameterFixes(s *model.MakeScenario) []candidate {
	var out []candidate
	for i := range s.Flow {
		if s.Flow[i].Parameters != nil {
			continue
		}
		index := i
		out = append(out, candidate{
			op: model.FixOperation{
				Module:      s.Flow[i].Module,
				ModuleIndex: i,
				Field:       "parameters",
				Type:        model.FIX_TYPE_PARAMETERS,
				Before:      nil,
				After:       map[string]any{},
				Confidence:  model.FIX_CONFIDENCE_HIGH,
				Description: "add empty parameters block",
			},
			apply: func(s *model.MakeScenario) { s.Flow[index].Parameters = map[string]any{} },
		})
	}
	return out
}

func coordinateFixes(s *model.MakeScenario) []candidate {
	var out []candidate
	for i := range s.Flow {
		if s.Flow[i].Metadata != nil && s.Flow[i].Metadata.Designer != nil {
			continue
		}
		index := i
		designer := model.MakeDesigner{X: 150 * float64(i), Y: 0}
		out = append(out, candidate{
			op: model.FixOperation{
				Module:      s.Flow[i].Module,
				ModuleIndex: i,
				Field:       "metadata.designer",
				Type:        model.FIX_TYPE_COORDINATES,
				Before:      nil,
				After:       designer,
				Confidence:  model.FIX_CONFIDENCE_HIGH,
				Description: fmt.Sprintf("place module at x=%d on the designer canvas", 150*i),
			},
			apply: func(s *model.MakeScenario) {
				d := designer
				if s.Flow[index].Metadata == nil {
					s.Flow[index].Metadata = &model.MakeModuleMetadata{}
				}
				s.Flow[index].Metadata.Designer = &d
			},
		})
	}
	return out
}

func ensureMetadata(s *model.MakeScenario) *model.MakeMetadata {
	if s.Metadata == nil {
		s.Metadata = &model.MakeMetadata{}
	}
	return s.Metadata
}

func metadataFixes(s *model.MakeScenario) []candidate {
	var out []candidate
	instant := len(s.Flow) > 0 && model.IsInstantModule(s.Flow[0].Module)
	if s.Metadata == nil || s.Metadata.Instant != instant {
		var before any
		if s.Metadata != nil {
			before = s.Metadata.Instant
		}
		out = append(out, candidate{
			op: model.FixOperation{
				Field:       "metadata.instant",
				Type:        model.FIX_TYPE_METADATA,
				Before:      before,
				After:       instant,
				Confidence:  model.FIX_CONFIDENCE_HIGH,
				Description: fmt.Sprintf("set instant to %t based on the first module", instant),
			},
			apply: func(s *model.MakeScenario) { ensureMetadata(s).Instant = instant },
		})
	}
	if s.Metadata == nil || s.Metadata.Notes == nil {
		out = append(out, candidate{
			op: model.FixOperation{
				Field:       "metadata.notes",
				Type:        model.FIX_TYPE_METADATA,
				Before:      nil,
				After:       []string{},
				Confidence:  model.FIX_CONFIDENCE_HIGH,
				Description: "add empty notes list",
			},
			apply: func(s *model.MakeScenario) { ensureMetadata(s).Notes = []string{} },
		})
	}
	if s.Metadata == nil || s.Metadata.Designer == nil || s.Metadata.Designer.Orphans == nil {
		out = append(out, candidate{
			op: model.FixOperation{
				Field:       "metadata.designer.orphans",
				Type:        model.FIX_TYPE_METADATA,
				Before:      nil,
				After:       []any{},
				Confidence:  model.FIX_CONFIDENCE_HIGH,
				Description: "add empty designer orphans list",
			},
			apply: func(s *model.MakeScenario) {
				meta := ensureMetadata(s)
				if meta.Designer == nil {
					meta.Designer = &model.MakeMetadataDesigner{}
				}
				meta.Designer.Orphans = []any{}
			},
		})
	}
	return out
}

func scenarioSettingsFixes(s *model.MakeScenario) []candidate {
	if s.Metadata != nil && s.Metadata.Scenario != nil {
		return nil
	}
	settings := model.DefaultMakeScenarioSettings(len(s.Flow))
	return []candidate{{
		op: model.FixOperation{
			Field:       "metadata.scenario",
			Type:        model.FIX_TYPE_SCENARIO_SETTINGS,
			Before:      nil,
			After:       settings,
			Confidence:  model.FIX_CONFIDENCE_HIGH,
			Description: "add default scenario settings block",
		},
		apply: func(s *model.MakeScenario) { ensureMetadata(s).Scenario = settings },
	}}
}

func zoneFixes(s *model.MakeScenario) []candidate {
	if s.Metadata != nil && s.Metadata.Zone != "" {
		return nil
	}
	return []candidate{{
		op: model.FixOperation{
			Field:       "metadata.zone",
			Type:        model.FIX_TYPE_ZONE,
			Before:      nil,
			After:       model.MAKE_DEFAULT_ZONE,
			Confidence:  model.FIX_CONFIDENCE_HIGH,
			Description: "default zone to " + model.MAKE_DEFAULT_ZONE,
		},
		apply: func(s *model.MakeScenario) { ensureMetadata(s).Zone = model.MAKE_DEFAULT_ZONE },
	}}
}

// routerRouteFixes normalizes a router module's absent routes field to an
// empty list. Nested route flows are never synthesized; router semantics are
// unspecified upstream, so this stays a low confidence normalization.
func routerRouteFixes(s *model.MakeScenario) []candidate {
	var out []candidate
	for i := range s.Flow {
		if !strings.Contains(strings.ToLower(s.Flow[i].Module), "router") {
			continue
		}
		if s.Flow[i].Routes != nil {
			continue
		}
		index := i
		out = append(out, candidate{
			op: model.FixOperation{
				Module:      s.Flow[i].Module,
				ModuleIndex: i,
				Field:       "routes",
				Type:        model.FIX_TYPE_ROUTER_ROUTES,
				Before:      nil,
				After:       []model.MakeRoute{},
				Confidence:  model.FIX_CONFIDENCE_LOW,
				Description: "normalize router routes to an empty list",
			},
			apply: func(s *model.MakeScenario) {
				routes := []model.MakeRoute{}
				s.Flow[index].Routes = &routes
			},
		})
	}
	return out
}
