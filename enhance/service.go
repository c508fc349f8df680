// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package enhance

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"
)

// DefaultTimeout bounds a single enhancement call, network included.
const DefaultTimeout = 5 * time.Second

// Service holds the process-wide active enhancement strategy. The strategy
// can be swapped at runtime without a restart; in-flight calls using the
// previous strategy run to completion.
type Service struct {
	active  atomic.Pointer[activeEnhancer]
	timeout time.Duration
	logger  *slog.Logger
}

type activeEnhancer struct {
	enhancer Enhancer
}

// ServiceOption is a functional option for configuring a Service.
type ServiceOption func(*Service)

// WithTimeout overrides the per-call enhancement timeout.
func WithTimeout(d time.Duration) ServiceOption {
	return func(s *Service) {
		if d > 0 {
			s.timeout = d
		}
	}
}

// WithLogger sets the logger used for enhancement outcomes.
func WithLogger(logger *slog.Logger) ServiceOption {
	return func(s *Service) {
		s.logger = logger.With("component", "enhance-service")
	}
}

// NewService creates a Service with the pass-through strategy active.
func NewService(opts ...ServiceOption) *Service {
	s := &Service{
		timeout: DefaultTimeout,
		logger:  slog.Default().With("component", "enhance-service"),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.active.Store(&activeEnhancer{enhancer: NewNoopEnhancer()})
	return s
}

// SetStrategy atomically replaces the active enhancement strategy.
func (s *Service) SetStrategy(enhancer Enhancer) {
	s.active.Store(&activeEnhancer{enhancer: enhancer})
	s.logger.Info("enhancement strategy changed", "strategy", enhancer.Strategy())
}

// ActiveStrategy returns the name of the currently active strategy.
func (s *Service) ActiveStrategy() Strategy {
	return s.active.Load().enhancer.Strategy()
}

// Enhance runs the active strategy against the query under a bounded
// timeout. Any failure, timeout included, falls back to the original query;
// enhancement never fails a search.
func (s *Service) Enhance(ctx context.Context, query string) string {
	enhancer := s.active.Load().enhancer
	strategy := enhancer.Strategy()

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	enhanced, err := enhancer.Enhance(ctx, query)
	if err != nil {
		s.logger.Warn("enhancement failed, using original query",
			"strategy", strategy,
			"fallback", true,
			"err", err)
		return query
	}
	if enhanced == "" {
		enhanced = query
	}

	s.logger.Debug("query enhanced",
		"strategy", strategy,
		"fallback", false,
		"original_length", len(query),
		"enhanced_length", len(enhanced))
	return enhanced
}
