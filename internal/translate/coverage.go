package translate

import (
	"strings"

	"fontsources/internal/catalog"
)

const (
	basicLatinRange    = "U+0000-00FF"
	extendedLatinRange = "U+0100-017F"
)

// Font Squirrel does not report coverage. Every font is assumed to cover
// Basic Latin; Latin-script classifications also get Latin Extended-A.
func latinScript(classification string) bool {
	lower := catalog.Lower(classification)
	for _, hint := range []string{"latin", "sans", "serif"} {
		if strings.Contains(lower, hint) {
			return true
		}
	}
	return false
}

// UnicodeRanges estimates the covered code point ranges from a classification.
func UnicodeRanges(classification string) []string {
	ranges := []string{basicLatinRange}
	if latinScript(classification) {
		ranges = append(ranges, extendedLatinRange)
	}
	return ranges
}

// Languages estimates supported languages from a classification.
func Languages(classification string) []string {
	languages := []string{"Latin"}
	if latinScript(classification) {
		languages = append(languages, "Latin Extended")
	}
	return languages
}
