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


package core

import (
	"fmt"
	"strings"
)

// validTransitions encodes the pipeline state machine. StatusFailed is
// reachable from any non-terminal state; a failed document re-enters at
// StatusReceived on re-trigger.
var validTransitions = map[Status][]Status{
	StatusReceived:  {StatusParsing, StatusFailed},
	StatusParsing:   {StatusParsed, StatusFailed},
	StatusParsed:    {StatusEmbedding, StatusFailed},
	StatusEmbedding: {StatusIndexed, StatusFailed},
	StatusIndexed:   {StatusReceived}, // re-processing refresh
	StatusFailed:    {StatusReceived}, // manual or scheduled re-trigger
}

// ValidateStatus validates that a Status has a known value.
func ValidateStatus(s Status) error {
	if s < StatusReceived || s > StatusFailed {
		return fmt.Errorf("%w: value %d", ErrInvalidStatus, s)
	}
	return nil
}

// CanTransition reports whether the state machine permits moving from one
// status to another. Retrying a failing stage re-enters the same status,
// which is always permitted.
func CanTransition(from, to Status) bool {
	if from == to {
		return true
	}
	for _, next := range validTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// ValidateCandidateRecord validates a CandidateRecord according to domain rules.
//
// Validation rules:
//   - Id must be non-zero (content-hashed at ingestion)
//   - Status must be a known value
//   - FailureReason is only meaningful when Status is StatusFailed
//   - Vector is present if and only if Status is StatusIndexed
//
// NOT validated (legitimately absent):
//   - All CandidateFields (every extraction heuristic may find nothing)
//   - RawText (an empty document extracts to empty text)
func ValidateCandidateRecord(record *CandidateRecord) error {
	if record == nil {
		return fmt.Errorf("%w: record is nil", ErrInvalidRecord)
	}
	if record.Id == 0 {
		return fmt.Errorf("%w: zero id", ErrInvalidRecord)
	}
	if err := ValidateStatus(record.Status); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRecord, err)
	}
	if record.Status == StatusIndexed && len(record.Vector) == 0 {
		return fmt.Errorf("%w: indexed record without vector", ErrInvalidRecord)
	}
	if record.Status != StatusIndexed && len(record.Vector) != 0 {
		return fmt.Errorf("%w: vector present in status %s", ErrInvalidRecord, record.Status)
	}
	if record.FailureReason != "" && record.Status != StatusFailed {
		return fmt.Errorf("%w: failure reason present in status %s", ErrInvalidRecord, record.Status)
	}
	return nil
}

// ValidateSearchQuery validates a SearchQuery according to domain rules.
func ValidateSearchQuery(query *SearchQuery) error {
	if query == nil {
		return fmt.Errorf("%w: query is nil", ErrInvalidQuery)
	}
	if query.Text == "" {
		return fmt.Errorf("%w: empty query text", ErrInvalidQuery)
	}
	if query.Limit <= 0 {
		return fmt.Errorf("%w: limit must be positive", ErrInvalidQuery)
	}
	if query.SimilarityThreshold < 0 || query.SimilarityThreshold > 1 {
		return fmt.Errorf("%w: threshold %f out of [0,1]", ErrInvalidQuery, query.SimilarityThreshold)
	}
	return nil
}

// SplitFullName splits a full name into first and last components.
// The first token is the first name; all remaining tokens joined are the
// last name. A single-token name yields an empty last name.
func SplitFullName(fullName string) (first, last string) {
	tokens := strings.Fields(fullName)
	if len(tokens) == 0 {
		return "", ""
	}
	first = tokens[0]
	if len(tokens) > 1 {
		last = strings.Join(tokens[1:], " ")
	}
	return first, last
}
