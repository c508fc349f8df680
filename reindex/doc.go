// Package reindex rebuilds the vector index with the current embedding
// model. Every indexed document is re-embedded from its stored text and the
// index manifest is updated once the rebuild completes, after which searches
// with the new model are accepted.
package reindex
