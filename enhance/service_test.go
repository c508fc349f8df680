package enhance

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubEnhancer allows behavior injection in service tests.
type stubEnhancer struct {
	fn       func(ctx context.Context, query string) (string, error)
	strategy Strategy
}

func (s *stubEnhancer) Enhance(ctx context.Context, query string) (string, error) {
	return s.fn(ctx, query)
}

func (s *stubEnhancer) Strategy() Strategy {
	return s.strategy
}

func TestServiceDefaultsToNoop(t *testing.T) {
	svc := NewService()

	assert.Equal(t, StrategyNone, svc.ActiveStrategy())
	assert.Equal(t, "golang developer", svc.Enhance(context.Background(), "golang developer"))
}

func TestServiceUsesActiveStrategy(t *testing.T) {
	svc := NewService()
	svc.SetStrategy(&stubEnhancer{
		strategy: StrategyCustom,
		fn: func(_ context.Context, query string) (string, error) {
			return query + " plus synonyms", nil
		},
	})

	assert.Equal(t, StrategyCustom, svc.ActiveStrategy())
	assert.Equal(t, "qa engineer plus synonyms", svc.Enhance(context.Background(), "qa engineer"))
}

func TestServiceFallsBackOnError(t *testing.T) {
	svc := NewService()
	svc.SetStrategy(&stubEnhancer{
		strategy: StrategyOpenAI,
		fn: func(_ context.Context, _ string) (string, error) {
			return "", errors.New("remote unavailable")
		},
	})

	got := svc.Enhance(context.Background(), "python backend")
	assert.Equal(t, "python backend", got)
}

func TestServiceFallsBackOnTimeout(t *testing.T) {
	svc := NewService(WithTimeout(20 * time.Millisecond))
	svc.SetStrategy(&stubEnhancer{
		strategy: StrategyGemini,
		fn: func(ctx context.Context, query string) (string, error) {
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(5 * time.Second):
				return query + " too late", nil
			}
		},
	})

	start := time.Now()
	got := svc.Enhance(context.Background(), "devops lead")
	assert.Equal(t, "devops lead", got)
	assert.Less(t, time.Since(start), time.Second)
}

func TestServiceFallsBackOnEmptyResult(t *testing.T) {
	svc := NewService()
	svc.SetStrategy(&stubEnhancer{
		strategy: StrategyCustom,
		fn: func(_ context.Context, _ string) (string, error) {
			return "", nil
		},
	})

	assert.Equal(t, "data engineer", svc.Enhance(context.Background(), "data engineer"))
}

func TestServiceRuntimeSwap(t *testing.T) {
	svc := NewService()
	svc.SetStrategy(NewLocalEnhancer())
	require.Equal(t, StrategyLocal, svc.ActiveStrategy())

	svc.SetStrategy(NewNoopEnhancer())
	assert.Equal(t, StrategyNone, svc.ActiveStrategy())
	assert.Equal(t, "k8s admin", svc.Enhance(context.Background(), "k8s admin"))
}

func TestParseStrategy(t *testing.T) {
	tests := []struct {
		in   string
		want Strategy
	}{
		{"none", StrategyNone},
		{"", StrategyNone},
		{"OpenAI", StrategyOpenAI},
		{" gemini ", StrategyGemini},
		{"custom", StrategyCustom},
		{"local", StrategyLocal},
	}
	for _, tt := range tests {
		got, err := ParseStrategy(tt.in)
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got)
	}

	_, err := ParseStrategy("anthropic-v9")
	assert.ErrorIs(t, err, ErrUnknownStrategy)
}
