// Package fontsquirrel provides the minimal Font Squirrel API client used to
// build the font source file.
//
// The client issues one GET against the font list endpoint and returns the
// raw, loosely typed records. Record exposes typed accessors that treat absent
// and null values alike and report wrong-typed values as errors, so the
// translator can skip a malformed record with a reason instead of guessing.
// Options let tests supply their own HTTP client or User-Agent.
package fontsquirrel
