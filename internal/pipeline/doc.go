// Package pipeline runs the fetch, translate and aggregate steps that turn the
// Font Squirrel font list into a source document.
//
// Records are handled one at a time, spaced by a fixed delay. A record that
// cannot be translated is counted and skipped; a failed fetch yields an empty
// document. Only context cancellation aborts a run.
package pipeline
