package validate

import (
	"testing"

	"github.com/flowport/flowport/model"
	"github.com/flowport/flowport/transform"
	"github.com/stretchr/testify/require"
)

func TestFingerprintIsOrderIndependent(t *testing.T) {
	a := &model.WorkflowGraph{
		Nodes: []model.CanvasNode{{Id: "x"}, {Id: "y"}},
		Connections: []model.CanvasConnection{
			{Source: "x", Target: "y"},
		},
	}
	b := &model.WorkflowGraph{
		Nodes: []model.CanvasNode{{Id: "y"}, {Id: "x"}},
		Connections: []model.CanvasConnection{
			{Source: "x", Target: "y"},
		},
	}
	require.Equal(t, Fingerprint(a, transform.FORMAT_N8N), Fingerprint(b, transform.FORMAT_N8N))
}

func TestFingerprintVariesByPlatformAndContent(t *testing.T) {
	graph := &model.WorkflowGraph{Nodes: []model.CanvasNode{{Id: "x"}}}
	require.NotEqual(t,
		Fingerprint(graph, transform.FORMAT_N8N),
		Fingerprint(graph, transform.FORMAT_ZAPIER))

	other := &model.WorkflowGraph{Nodes: []model.CanvasNode{{Id: "z"}}}
	require.NotEqual(t,
		Fingerprint(graph, transform.FORMAT_N8N),
		Fingerprint(other, transform.FORMAT_N8N))
}

func TestResultCacheEvictsOldest(t *testing.T) {
	cache := NewResultCache(2)
	cache.Put("k1", model.ValidationResult{IsValid: true})
	cache.Put("k2", model.ValidationResult{IsValid: true})
	cache.Put("k3", model.ValidationResult{IsValid: false})

	require.Equal(t, 2, cache.Len())
	_, found := cache.Get("k1")
	require.False(t, found)
	result, found := cache.Get("k3")
	require.True(t, found)
	require.False(t, result.IsValid)
}

func TestResultCacheOverwriteDoesNotGrow(t *testing.T) {
	cache := NewResultCache(2)
	cache.Put("k1", model.ValidationResult{IsValid: true})
	cache.Put("k1", model.ValidationResult{IsValid: false})
	require.Equal(t, 1, cache.Len())
	result, found := cache.Get("k1")
	require.True(t, found)
	require.False(t, result.IsValid)
}
