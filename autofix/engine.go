package autofix

import (
	"fmt"

	"github.com/flowport/flowport/logger"
	"github.com/flowport/flowport/model"
	"github.com/flowport/flowport/transform"
	"github.com/flowport/flowport/util"
	"github.com/flowport/flowport/validate"
	"go.uber.org/zap"
)

// FixOptions controls which candidate repairs are applied. The zero value
// applies every fix at any confidence with no cap.
type FixOptions struct {
	// DryRun computes the full fix set and report without touching the
	// scenario.
	DryRun bool `json:"dryRun,omitempty"`
	// ConfidenceThreshold keeps only fixes at or above the given level.
	ConfidenceThreshold model.FixConfidence `json:"confidenceThreshold,omitempty"`
	// MaxFixes caps how many fixes one call applies; 0 means unlimited.
	// Callers use it to converge incrementally over repeated calls.
	MaxFixes int `json:"maxFixes,omitempty"`
	// FixTypes restricts repairs to the given subset; empty means all.
	FixTypes []model.FixType `json:"fixTypes,omitempty"`
}

// candidate pairs a reportable fix operation with the mutation that applies
// it. Candidates are only generated for fields that are actually missing or
// wrong, which is what makes the engine idempotent.
type candidate struct {
	op    model.FixOperation
	apply func(s *model.MakeScenario)
}

// AutoFix repairs an incomplete Make scenario into import ready form. It
// always operates on a deep copy; the caller's scenario is never mutated.
// Internal faults are reported through the Error field with Success false so
// the caller can fall back to the original scenario.
func AutoFix(scenario *model.MakeScenario, opts FixOptions) *model.AutoFixResult {
	result := &model.AutoFixResult{FixReport: model.NewFixReport(nil)}
	if scenario == nil {
		result.Error = "scenario is nil"
		return result
	}
	working, err := util.DeepCopy(*scenario)
	if err != nil {
		result.Error = fmt.Sprintf("scenario cannot be deep copied: %v", err)
		logger.Error("auto-fix fault", zap.Error(err))
		return result
	}
	result.OriginalValidation = validate.Validate(transform.MakeToCanonical(working), transform.FORMAT_MAKE)

	threshold := opts.ConfidenceThreshold
	if threshold == "" {
		threshold = model.FIX_CONFIDENCE_LOW
	}
	enabled := enabledTypes(opts.FixTypes)

	selected := []candidate{}
	for _, c := range collectCandidates(working, enabled) {
		if !enabled[c.op.Type] {
			continue
		}
		if c.op.Confidence.Rank() < threshold.Rank() {
			continue
		}
		selected = append(selected, c)
	}
	if opts.MaxFixes > 0 && len(selected) > opts.MaxFixes {
		selected = selected[:opts.MaxFixes]
	}

	ops := make([]model.FixOperation, 0, len(selected))
	for _, c := range selected {
		if !opts.DryRun {
			c.apply(working)
		}
		ops = append(ops, c.op)
	}

	result.Success = true
	result.FixedScenario = working
	result.FixReport = model.NewFixReport(ops)
	revalidated := validate.Validate(transform.MakeToCanonical(working), transform.FORMAT_MAKE)
	result.ValidationResult = revalidated
	logger.Info("auto-fix complete",
		zap.String("scenario", working.Name),
		zap.Int("fixes", result.FixReport.TotalFixes),
		zap.Bool("dryRun", opts.DryRun))
	return result
}

func enabledTypes(requested []model.FixType) map[model.FixType]bool {
	enabled := map[model.FixType]bool{}
	if len(requested) == 0 {
		for _, t := range model.AllFixTypes() {
			enabled[t] = true
		}
		return enabled
	}
	for _, t := range requested {
		enabled[t] = true
	}
	return enabled
}

// collectCandidates gathers every applicable repair in a stable order:
// structural defaults first, data flow inference last. Module id projection
// happens up front so mapper references point at the ids modules will have
// after renumbering.
func collectCandidates(s *model.MakeScenario, enabled map[model.FixType]bool) []candidate {
	finalIds := projectedIds(s, enabled[model.FIX_TYPE_MODULE_IDS])
	var out []candidate
	out = append(out, moduleIdFixes(s, finalIds)...)
	out = append(out, versionFixes(s)...)
	out = append(out, parameterFixes(s)...)
	out = append(out, coordinateFixes(s)...)
	out = append(out, metadataFixes(s)...)
	out = append(out, scenarioSettingsFixes(s)...)
	out = append(out, zoneFixes(s)...)
	out = append(out, routerRouteFixes(s)...)
	out = append(out, mapperFixes(s, finalIds)...)
	return out
}

// projectedIds returns the id each module will carry once module id fixes
// are applied: sequential 1..N when renumbering is enabled, the current ids
// otherwise.
func projectedIds(s *model.MakeScenario, renumber bool) []int {
	ids := make([]int, len(s.Flow))
	for i, mod := range s.Flow {
		if renumber {
			ids[i] = i + 1
			continue
		}
		ids[i] = mod.Id
	}
	return ids
}
