package badger

import (
	"context"
	"testing"

	"github.com/poiesic/resumatch/core"
)

func TestManifestRoundtrip(t *testing.T) {
	_, _, manifestRepo, backend, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer backend.Close()

	ctx := context.Background()

	// No manifest saved yet
	loaded, err := manifestRepo.LoadManifest(ctx)
	if err != nil {
		t.Fatalf("Failed to load manifest: %v", err)
	}
	if loaded != nil {
		t.Fatal("Expected nil manifest before first save")
	}

	manifest := &core.IndexManifest{
		EmbeddingModel: "embeddinggemma",
		Dimensions:     768,
	}
	if err := manifestRepo.SaveManifest(ctx, manifest); err != nil {
		t.Fatalf("Failed to save manifest: %v", err)
	}

	loaded, err = manifestRepo.LoadManifest(ctx)
	if err != nil {
		t.Fatalf("Failed to load manifest: %v", err)
	}
	if loaded == nil {
		t.Fatal("Expected manifest after save")
	}
	if loaded.EmbeddingModel != "embeddinggemma" || loaded.Dimensions != 768 {
		t.Fatalf("Manifest roundtrip mismatch: %+v", loaded)
	}
	if loaded.UpdatedAt.IsZero() {
		t.Fatal("Expected UpdatedAt to be set")
	}
}

func TestManifestReplace(t *testing.T) {
	_, _, manifestRepo, backend, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer backend.Close()

	ctx := context.Background()

	first := &core.IndexManifest{EmbeddingModel: "model-a", Dimensions: 384}
	if err := manifestRepo.SaveManifest(ctx, first); err != nil {
		t.Fatalf("Failed to save manifest: %v", err)
	}

	second := &core.IndexManifest{EmbeddingModel: "model-b", Dimensions: 1536}
	if err := manifestRepo.SaveManifest(ctx, second); err != nil {
		t.Fatalf("Failed to save manifest: %v", err)
	}

	loaded, err := manifestRepo.LoadManifest(ctx)
	if err != nil {
		t.Fatalf("Failed to load manifest: %v", err)
	}
	if loaded.EmbeddingModel != "model-b" || loaded.Dimensions != 1536 {
		t.Fatalf("Expected replaced manifest, got %+v", loaded)
	}
}
