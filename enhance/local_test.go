package enhance

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalEnhancerExpandsAbbreviations(t *testing.T) {
	enhancer := NewLocalEnhancer()

	got, err := enhancer.Enhance(context.Background(), "ml engineer with k8s")
	require.NoError(t, err)
	assert.Contains(t, got, "ml engineer with k8s")
	assert.Contains(t, got, "machine learning")
	assert.Contains(t, got, "kubernetes")
}

func TestLocalEnhancerUnknownQueryUnchanged(t *testing.T) {
	enhancer := NewLocalEnhancer()

	got, err := enhancer.Enhance(context.Background(), "senior gardener")
	require.NoError(t, err)
	assert.Equal(t, "senior gardener", got)
}

func TestLocalEnhancerNoDuplicateExpansions(t *testing.T) {
	enhancer := NewLocalEnhancer()

	got, err := enhancer.Enhance(context.Background(), "js js developer")
	require.NoError(t, err)
	assert.Equal(t, "js js developer javascript", got)
}

func TestLocalEnhancerSkipsAlreadyPresentTerms(t *testing.T) {
	enhancer := NewLocalEnhancer()

	got, err := enhancer.Enhance(context.Background(), "ml and machine learning expert")
	require.NoError(t, err)
	assert.Equal(t, "ml and machine learning expert", got)
}

func TestLocalEnhancerStripsPunctuation(t *testing.T) {
	enhancer := NewLocalEnhancer()

	got, err := enhancer.Enhance(context.Background(), "qa, automation")
	require.NoError(t, err)
	assert.Contains(t, got, "quality assurance")
}

func TestLocalEnhancerDeterministic(t *testing.T) {
	enhancer := NewLocalEnhancer()

	first, err := enhancer.Enhance(context.Background(), "devops with aws")
	require.NoError(t, err)
	second, err := enhancer.Enhance(context.Background(), "devops with aws")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
