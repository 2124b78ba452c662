// Package translate maps raw Font Squirrel records into catalog entries.
//
// Translation is pure: the same record and options always produce the same
// outcome. Fields the upstream API does not provide (weights, coverage,
// popularity) are inferred with simple heuristics, and records that cannot be
// mapped come back as a Skip rather than an error so one bad record never
// aborts a run.
package translate
