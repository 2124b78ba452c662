// Package sourcefile persists generated source documents.
//
// Writes go to a sibling temp file that is renamed over the target, so readers
// never observe a partial file. The rename happens under an advisory flock so
// two runs targeting the same path cannot interleave.
package sourcefile
