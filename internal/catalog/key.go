package catalog

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultKeyPrefix tags entries that came from Font Squirrel.
const DefaultKeyPrefix = "squirrel"

var slugReplacer = strings.NewReplacer(" ", "-", "_", "-")

// Lower applies full Unicode lower-casing.
func Lower(s string) string {
	return cases.Lower(language.Und).String(s)
}

// Slug lower-cases a family name and replaces spaces and underscores with
// hyphens. "Open Sans" and "Open_Sans" both become "open-sans".
func Slug(family string) string {
	return slugReplacer.Replace(Lower(family))
}

// Key derives the entry key for a family name as "<prefix>.<slug>". An empty
// prefix selects DefaultKeyPrefix.
func Key(prefix, family string) string {
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}
	return prefix + "." + Slug(family)
}
