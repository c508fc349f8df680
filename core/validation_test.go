package core

import (
	"errors"
	"testing"
)

func TestCanTransition(t *testing.T) {
	allowed := [][2]Status{
		{StatusReceived, StatusParsing},
		{StatusParsing, StatusParsed},
		{StatusParsed, StatusEmbedding},
		{StatusEmbedding, StatusIndexed},
		{StatusReceived, StatusFailed},
		{StatusParsing, StatusFailed},
		{StatusParsed, StatusFailed},
		{StatusEmbedding, StatusFailed},
		{StatusFailed, StatusReceived},
		{StatusIndexed, StatusReceived},
		{StatusParsing, StatusParsing}, // retry re-enters the same stage
	}
	for _, pair := range allowed {
		if !CanTransition(pair[0], pair[1]) {
			t.Errorf("expected %s -> %s to be allowed", pair[0], pair[1])
		}
	}

	denied := [][2]Status{
		{StatusReceived, StatusIndexed},
		{StatusParsed, StatusIndexed},
		{StatusIndexed, StatusFailed},
		{StatusFailed, StatusIndexed},
		{StatusParsing, StatusReceived},
	}
	for _, pair := range denied {
		if CanTransition(pair[0], pair[1]) {
			t.Errorf("expected %s -> %s to be denied", pair[0], pair[1])
		}
	}
}

func TestValidateCandidateRecord(t *testing.T) {
	valid := &CandidateRecord{
		Id:     IDFromContent([]byte("doc")),
		Status: StatusIndexed,
		Vector: []float32{0.1, 0.2},
	}
	if err := ValidateCandidateRecord(valid); err != nil {
		t.Fatalf("expected valid record, got %v", err)
	}

	// All optional fields absent is valid for a non-indexed record.
	empty := &CandidateRecord{Id: 1, Status: StatusReceived}
	if err := ValidateCandidateRecord(empty); err != nil {
		t.Fatalf("expected empty fields to be valid, got %v", err)
	}

	tests := []struct {
		name   string
		record *CandidateRecord
	}{
		{"nil record", nil},
		{"zero id", &CandidateRecord{Status: StatusReceived}},
		{"unknown status", &CandidateRecord{Id: 1, Status: Status(42)}},
		{"indexed without vector", &CandidateRecord{Id: 1, Status: StatusIndexed}},
		{"vector before indexed", &CandidateRecord{Id: 1, Status: StatusParsed, Vector: []float32{1}}},
		{"reason without failure", &CandidateRecord{Id: 1, Status: StatusParsed, FailureReason: "boom"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := ValidateCandidateRecord(tt.record); !errors.Is(err, ErrInvalidRecord) {
				t.Errorf("expected ErrInvalidRecord, got %v", err)
			}
		})
	}
}

func TestValidateSearchQuery(t *testing.T) {
	valid := &SearchQuery{Text: "python developer", Limit: 10, SimilarityThreshold: 0.5}
	if err := ValidateSearchQuery(valid); err != nil {
		t.Fatalf("expected valid query, got %v", err)
	}

	tests := []struct {
		name  string
		query *SearchQuery
	}{
		{"nil query", nil},
		{"empty text", &SearchQuery{Limit: 10}},
		{"zero limit", &SearchQuery{Text: "q"}},
		{"negative threshold", &SearchQuery{Text: "q", Limit: 1, SimilarityThreshold: -0.1}},
		{"threshold above one", &SearchQuery{Text: "q", Limit: 1, SimilarityThreshold: 1.5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := ValidateSearchQuery(tt.query); !errors.Is(err, ErrInvalidQuery) {
				t.Errorf("expected ErrInvalidQuery, got %v", err)
			}
		})
	}
}
