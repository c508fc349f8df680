package search

import (
	"github.com/poiesic/resumatch/core"
	"github.com/poiesic/resumatch/enhance"
)

// SearchMonitor provides hooks to observe the search process.
// Implement this interface to track intermediate steps and results during search.
type SearchMonitor interface {
	Start(query string)
	AfterEnhancement(strategy enhance.Strategy, enhanced string)
	AfterEmbedding(dimensions int)
	Finish(results []*core.SearchResult)
}

// noopMonitor is a no-op implementation of SearchMonitor
type noopMonitor struct{}

var _ SearchMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)                                 {}
func (n *noopMonitor) AfterEnhancement(_ enhance.Strategy, _ string)  {}
func (n *noopMonitor) AfterEmbedding(_ int)                           {}
func (n *noopMonitor) Finish(_ []*core.SearchResult)                  {}
