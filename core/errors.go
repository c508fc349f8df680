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

import "errors"

// Domain errors shared across the pipeline. Package-specific errors live in
// their own packages; these are the ones that cross package boundaries.
var (
	// ErrInvalidRecord indicates a CandidateRecord failed validation.
	ErrInvalidRecord = errors.New("invalid candidate record")

	// ErrInvalidQuery indicates a SearchQuery failed validation.
	ErrInvalidQuery = errors.New("invalid search query")

	// ErrInvalidStatus indicates an invalid Status value.
	ErrInvalidStatus = errors.New("invalid status")

	// ErrInvalidTransition indicates a status transition the pipeline does
	// not permit.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrEmptyRawText indicates the RawText field was unset when required.
	ErrEmptyRawText = errors.New("raw text cannot be empty")

	// ErrEmbeddingModelMismatch indicates vectors from a different embedding
	// model than the one the index was built with. This is a configuration
	// error and is never retried; run a full reindex instead.
	ErrEmbeddingModelMismatch = errors.New("embedding model mismatch")
)
