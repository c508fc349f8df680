// Package pipeline orchestrates resume document processing: accepting
// uploads, extracting text, parsing candidate fields, and computing
// embedding vectors on a worker pool.
//
// Each document moves through the statuses received, parsing, parsed,
// embedding, and indexed, with the current status persisted after every
// stage. Failures record their reason on the document; failed documents can
// be re-triggered and re-enter the pipeline from the start.
package pipeline
