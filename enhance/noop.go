package enhance

import "context"

// NoopEnhancer returns queries unchanged. It is the default strategy and the
// fallback target for every other strategy's failure path.
type NoopEnhancer struct{}

// NewNoopEnhancer creates the pass-through enhancer.
func NewNoopEnhancer() *NoopEnhancer {
	return &NoopEnhancer{}
}

// Enhance returns the query as-is.
func (e *NoopEnhancer) Enhance(_ context.Context, query string) (string, error) {
	return query, nil
}

// Strategy returns StrategyNone.
func (e *NoopEnhancer) Strategy() Strategy {
	return StrategyNone
}
