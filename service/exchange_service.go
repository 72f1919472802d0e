package service

import (
	"context"
	"errors"

	"github.com/flowport/flowport/autofix"
	"github.com/flowport/flowport/logger"
	"github.com/flowport/flowport/model"
	"github.com/flowport/flowport/transform"
	"github.com/flowport/flowport/validate"
	"go.uber.org/zap"
)

const DEFAULT_MAX_FIX_ROUNDS int = 10

// ValidationOracle is a network backed validator for the n8n path. Its
// findings are trusted verbatim and merged into the local result. The
// default no-op oracle leaves local validation authoritative.
type ValidationOracle interface {
	Validate(ctx context.Context, workflow *model.N8nWorkflow, profile string) (*model.ValidationResult, error)
}

// ExchangeService orchestrates detect → transform → validate → auto-fix.
// The result cache is injected, never package state, so independent callers
// stay isolated and the service itself holds no mutable graph state.
type ExchangeService struct {
	cache  *validate.ResultCache
	oracle ValidationOracle
}

func NewExchangeService(cache *validate.ResultCache, oracle ValidationOracle) *ExchangeService {
	return &ExchangeService{
		cache:  cache,
		oracle: oracle,
	}
}

func (s *ExchangeService) Detect(payload []byte) transform.Format {
	return transform.Detect(payload)
}

func (s *ExchangeService) Import(payload []byte, declared transform.Format) transform.Result {
	return transform.ToCanonical(payload, declared)
}

func (s *ExchangeService) Export(graph *model.WorkflowGraph, target transform.Format) ([]byte, error) {
	return transform.FromCanonical(graph, target)
}

// Validate runs the structural validator, consulting the result cache keyed
// by content fingerprint first. For the n8n target an oracle, when present,
// contributes additional findings; an unreachable oracle degrades to local
// validation only.
func (s *ExchangeService) Validate(ctx context.Context, graph *model.WorkflowGraph, target transform.Format) *model.ValidationResult {
	key := validate.Fingerprint(graph, target)
	if s.cache != nil {
		if cached, ok := s.cache.Get(key); ok {
			return cached
		}
	}
	result := validate.Validate(graph, target)
	if target == transform.FORMAT_N8N && s.oracle != nil {
		oracleResult, err := s.oracle.Validate(ctx, transform.CanonicalToN8n(graph), "default")
		if err != nil {
			logger.Warn("validation oracle unavailable", zap.Error(err))
		} else if oracleResult != nil {
			for _, issue := range oracleResult.Errors {
				result.AddError(issue)
			}
			for _, issue := range oracleResult.Warnings {
				result.AddWarning(issue)
			}
		}
	}
	if s.cache != nil {
		s.cache.Put(key, *result)
	}
	return result
}

func (s *ExchangeService) AutoFix(scenario *model.MakeScenario, opts autofix.FixOptions) *model.AutoFixResult {
	return autofix.AutoFix(scenario, opts)
}

// FixUntilClean calls AutoFix repeatedly until a round applies no fixes or
// maxRounds is reached, returning the converged scenario and the per round
// reports. With a MaxFixes cap in opts this is the incremental convergence
// loop.
func (s *ExchangeService) FixUntilClean(scenario *model.MakeScenario, opts autofix.FixOptions, maxRounds int) (*model.MakeScenario, []*model.FixReport, error) {
	if maxRounds <= 0 {
		maxRounds = DEFAULT_MAX_FIX_ROUNDS
	}
	current := scenario
	reports := []*model.FixReport{}
	for round := 0; round < maxRounds; round++ {
		result := autofix.AutoFix(current, opts)
		if !result.Success {
			return current, reports, errors.New(result.Error)
		}
		reports = append(reports, result.FixReport)
		current = result.FixedScenario
		if result.FixReport.TotalFixes == 0 {
			break
		}
	}
	return current, reports, nil
}
