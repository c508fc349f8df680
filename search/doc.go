// Package search provides semantic similarity search over indexed candidate
// records. A query is optionally enhanced, embedded with the same model the
// index was built with, and matched against stored vectors by cosine
// similarity.
package search
