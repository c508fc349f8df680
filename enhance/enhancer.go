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


// Package enhance rewrites raw search queries into richer ones before they
// are embedded. Enhancement is a quality optimization, never a hard
// dependency: every failure path falls back to the original query.
package enhance

import (
	"context"
	"fmt"
	"strings"
)

// Enhancer transforms a raw search query into an enhanced query string.
// Implementations must be thread-safe for concurrent use.
type Enhancer interface {
	// Enhance returns the enhanced form of the query. Implementations that
	// perform network I/O must honor ctx cancellation. A returned error
	// means the caller should use the original query instead.
	Enhance(ctx context.Context, query string) (string, error)

	// Strategy identifies which enhancement strategy this enhancer implements.
	Strategy() Strategy
}

// Strategy names an enhancement variant.
type Strategy string

const (
	// StrategyNone is the identity pass-through.
	StrategyNone Strategy = "none"

	// StrategyOpenAI enhances via an OpenAI-compatible chat API.
	StrategyOpenAI Strategy = "openai"

	// StrategyGemini enhances via the Google Gemini API.
	StrategyGemini Strategy = "gemini"

	// StrategyCustom enhances via a user-supplied HTTP endpoint.
	StrategyCustom Strategy = "custom"

	// StrategyLocal enhances with a built-in synonym and abbreviation table,
	// no network involved.
	StrategyLocal Strategy = "local"
)

// ParseStrategy maps a strategy name to a Strategy, case-insensitively.
func ParseStrategy(name string) (Strategy, error) {
	switch Strategy(strings.ToLower(strings.TrimSpace(name))) {
	case StrategyNone, "":
		return StrategyNone, nil
	case StrategyOpenAI:
		return StrategyOpenAI, nil
	case StrategyGemini:
		return StrategyGemini, nil
	case StrategyCustom:
		return StrategyCustom, nil
	case StrategyLocal:
		return StrategyLocal, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// buildPrompt produces the instruction given to remote LLM strategies.
func buildPrompt(query string) string {
	return fmt.Sprintf(`You are a resume search expert. Enhance the following search query to improve vector search results for finding relevant resumes.

Original query: %q

Guidelines:
1. Expand abbreviations and acronyms
2. Add relevant synonyms and related terms
3. Include both technical and soft skills variations
4. Keep it concise but comprehensive
5. Focus on searchable keywords

Return only the enhanced query, no explanations.

Enhanced query:`, query)
}
