package transform

import (
	"fmt"

	"github.com/flowport/flowport/logger"
	"github.com/flowport/flowport/model"
	"github.com/flowport/flowport/util"
	"go.uber.org/zap"
)

// Transformer is the closed set of vendor codecs. Adding a vendor means
// adding a type here and a case to transformerFor; there is no string keyed
// fallthrough to miss.
type Transformer interface {
	Format() Format
	ToCanonical(payload []byte) (*model.WorkflowGraph, error)
	FromCanonical(graph *model.WorkflowGraph) ([]byte, error)
}

type n8nTransformer struct{}

func (n8nTransformer) Format() Format { return FORMAT_N8N }

func (n8nTransformer) ToCanonical(payload []byte) (*model.WorkflowGraph, error) {
	wf, err := util.NewJsonEncoderDecoder[model.N8nWorkflow]().Decode(payload)
	if err != nil {
		return nil, err
	}
	return N8nToCanonical(wf), nil
}

func (n8nTransformer) FromCanonical(graph *model.WorkflowGraph) ([]byte, error) {
	return util.NewJsonEncoderDecoder[model.N8nWorkflow]().Encode(*CanonicalToN8n(graph))
}

type makeTransformer struct{}

func (makeTransformer) Format() Format { return FORMAT_MAKE }

func (makeTransformer) ToCanonical(payload []byte) (*model.WorkflowGraph, error) {
	scenario, err := util.NewJsonEncoderDecoder[model.MakeScenario]().Decode(payload)
	if err != nil {
		return nil, err
	}
	return MakeToCanonical(scenario), nil
}

func (makeTransformer) FromCanonical(graph *model.WorkflowGraph) ([]byte, error) {
	return util.NewJsonEncoderDecoder[model.MakeScenario]().Encode(*CanonicalToMake(graph))
}

type zapierTransformer struct{}

func (zapierTransformer) Format() Format { return FORMAT_ZAPIER }

func (zapierTransformer) ToCanonical(payload []byte) (*model.WorkflowGraph, error) {
	wf, err := util.NewJsonEncoderDecoder[model.ZapierWorkflow]().Decode(payload)
	if err != nil {
		return nil, err
	}
	return ZapierToCanonical(wf), nil
}

func (zapierTransformer) FromCanonical(graph *model.WorkflowGraph) ([]byte, error) {
	return util.NewJsonEncoderDecoder[model.ZapierWorkflow]().Encode(*CanonicalToZapier(graph))
}

func transformerFor(format Format) (Transformer, bool) {
	switch format {
	case FORMAT_N8N:
		return n8nTransformer{}, true
	case FORMAT_MAKE:
		return makeTransformer{}, true
	case FORMAT_ZAPIER:
		return zapierTransformer{}, true
	default:
		return nil, false
	}
}

// Result carries a transformed graph plus what the payload turned out to be.
type Result struct {
	Graph    *model.WorkflowGraph `json:"graph"`
	Format   Format               `json:"format"`
	Warnings []string             `json:"warnings,omitempty"`
}

// ToCanonical detects the payload's format and converts it. When a declared
// format disagrees with the detected one the detected format wins and a
// warning is emitted: content over label. Undetectable or malformed input
// yields an empty graph, never an error.
func ToCanonical(payload []byte, declared Format) Result {
	detected := Detect(payload)
	result := Result{Format: detected}
	if declared != "" && declared != FORMAT_UNKNOWN && declared != detected {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("declared format %q does not match detected format %q, using detected", declared, detected))
		logger.Warn("format label mismatch",
			zap.String("declared", string(declared)),
			zap.String("detected", string(detected)))
	}
	tr, ok := transformerFor(detected)
	if !ok {
		logger.Error("payload matches no known vendor format")
		result.Graph = model.EmptyGraph()
		return result
	}
	graph, err := tr.ToCanonical(payload)
	if err != nil {
		logger.Error("transform fault", zap.String("format", string(detected)), zap.Error(err))
		result.Graph = model.EmptyGraph()
		return result
	}
	result.Graph = graph
	return result
}

// FromCanonical serializes the graph into the target vendor schema.
func FromCanonical(graph *model.WorkflowGraph, target Format) ([]byte, error) {
	tr, ok := transformerFor(target)
	if !ok {
		return nil, fmt.Errorf("unsupported target format %q", target)
	}
	return tr.FromCanonical(graph)
}
