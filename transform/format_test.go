package transform

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDetect(t *testing.T) {
	for scenario, tc := range map[string]struct {
		payload string
		want    Format
	}{
		"graph format":                {`{"name":"wf","nodes":[],"connections":{}}`, FORMAT_N8N},
		"flow format":                 {`{"name":"sc","flow":[]}`, FORMAT_MAKE},
		"step format":                 {`{"title":"zap","steps":[]}`, FORMAT_ZAPIER},
		"empty object":                {`{}`, FORMAT_UNKNOWN},
		"nodes without connections":   {`{"nodes":[]}`, FORMAT_UNKNOWN},
		"connections as array":        {`{"nodes":[],"connections":[]}`, FORMAT_UNKNOWN},
		"not json":                    {`not json at all`, FORMAT_UNKNOWN},
		"top level array":             {`[1,2,3]`, FORMAT_UNKNOWN},
		"flow as object":              {`{"flow":{}}`, FORMAT_UNKNOWN},
		"format tag is never trusted": {`{"format":"n8n"}`, FORMAT_UNKNOWN},
	} {
		t.Run(scenario, func(t *testing.T) {
			require.Equal(t, tc.want, Detect([]byte(tc.payload)))
		})
	}
}

func TestToCanonicalUnknownYieldsEmptyGraph(t *testing.T) {
	result := ToCanonical([]byte(`{"something":"else"}`), "")
	require.Equal(t, FORMAT_UNKNOWN, result.Format)
	require.NotNil(t, result.Graph)
	require.Empty(t, result.Graph.Nodes)
	require.Empty(t, result.Graph.Connections)
}

func TestToCanonicalDetectedFormatWinsOverLabel(t *testing.T) {
	result := ToCanonical([]byte(`{"name":"sc","flow":[{"id":1,"module":"slack:CreateMessage"}]}`), FORMAT_N8N)
	require.Equal(t, FORMAT_MAKE, result.Format)
	require.Len(t, result.Warnings, 1)
	require.Contains(t, result.Warnings[0], "detected")
	require.Len(t, result.Graph.Nodes, 1)
}

func TestToCanonicalMatchingLabelEmitsNoWarning(t *testing.T) {
	result := ToCanonical([]byte(`{"name":"sc","flow":[]}`), FORMAT_MAKE)
	require.Equal(t, FORMAT_MAKE, result.Format)
	require.Empty(t, result.Warnings)
}

func TestFromCanonicalUnknownTarget(t *testing.T) {
	_, err := FromCanonical(nil, FORMAT_UNKNOWN)
	require.Error(t, err)
}
