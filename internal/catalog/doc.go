// Package catalog defines the FontGet source file schema written by
// fontsources: the source_info header, font entries, and variants.
//
// It also owns entry key derivation, which must stay a pure function of the
// family name, and the canonical JSON encoding used for both the output file
// and the fonts digest reported after each run.
package catalog
