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


package resumatch

import (
	"io"
	"log/slog"

	"github.com/poiesic/resumatch/ai"
	"github.com/poiesic/resumatch/ai/openai"
	"github.com/poiesic/resumatch/enhance"
	"github.com/poiesic/resumatch/pipeline"
	"github.com/poiesic/resumatch/reindex"
	"github.com/poiesic/resumatch/search"
	"github.com/poiesic/resumatch/storage"
	"github.com/poiesic/resumatch/storage/badger"
)

// Database bundles the storage backend, the embedding provider, and the
// query enhancement service, and builds the pipeline, searcher, and
// reindexer over them. It is the entry point for embedding the system in a
// host application.
type Database struct {
	backend     *badger.Backend
	candidates  storage.CandidateRepository
	blobs       storage.BlobStore
	manifests   storage.ManifestRepository
	provider    ai.Provider
	enhancement *enhance.Service
	logger      *slog.Logger
}

// DatabaseOption configures a Database.
type DatabaseOption func(*databaseOptions)

type databaseOptions struct {
	aiConfig *ai.Config
	inMemory bool
}

// WithAIConfig sets the embedding provider configuration.
// Default is ai.DefaultConfig().
func WithAIConfig(config *ai.Config) DatabaseOption {
	return func(o *databaseOptions) {
		if config != nil {
			o.aiConfig = config
		}
	}
}

// WithInMemory opens the store without touching disk. Data is lost on Close.
func WithInMemory() DatabaseOption {
	return func(o *databaseOptions) {
		o.inMemory = true
	}
}

// NewDatabase opens the store at filePath and connects the embedding provider.
func NewDatabase(filePath string, opts ...DatabaseOption) (*Database, error) {
	options := &databaseOptions{
		aiConfig: ai.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(options)
	}

	backend, err := badger.OpenBackend(filePath, options.inMemory)
	if err != nil {
		return nil, err
	}

	provider, err := openai.NewProvider(options.aiConfig)
	if err != nil {
		backend.Close()
		return nil, err
	}

	return &Database{
		backend:     backend,
		candidates:  badger.NewCandidateRepository(backend),
		blobs:       badger.NewBlobRepository(backend),
		manifests:   badger.NewManifestRepository(backend),
		provider:    provider,
		enhancement: enhance.NewService(),
		logger:      slog.Default(),
	}, nil
}

func (db *Database) Close() error {
	if err := db.provider.Close(); err != nil {
		db.logger.Error("error closing AI provider", "err", err)
	}

	if err := db.backend.Close(); err != nil {
		db.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

func (db *Database) CandidateRepository() storage.CandidateRepository {
	return db.candidates
}

func (db *Database) BlobStore() storage.BlobStore {
	return db.blobs
}

func (db *Database) ManifestRepository() storage.ManifestRepository {
	return db.manifests
}

// Enhancement returns the shared query enhancement service. Changing its
// strategy takes effect for all searchers created from this database.
func (db *Database) Enhancement() *enhance.Service {
	return db.enhancement
}

func (db *Database) NewPipeline(opts ...pipeline.Option) (*pipeline.Pipeline, error) {
	return pipeline.NewPipeline(db.candidates, db.blobs, db.manifests, db.provider, opts...)
}

func (db *Database) NewSearcher(opts ...search.Option) (*search.Searcher, error) {
	opts = append([]search.Option{search.WithEnhancement(db.enhancement)}, opts...)
	return search.NewSearcher(db.candidates, db.manifests, db.provider, opts...)
}

func (db *Database) NewReindexer(config *reindex.Config, progress io.Writer) (*reindex.Reindexer, error) {
	return reindex.NewReindexer(db.candidates, db.manifests, db.provider, config, progress)
}
