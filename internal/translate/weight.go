package translate

import (
	"strings"

	"fontsources/internal/catalog"
)

// Weight rules are ordered so that compound names win over the simple names
// they contain ("extrabold" before "bold", "extralight" before "light").
var weightRules = []struct {
	tokens []string
	weight int
}{
	{[]string{"thin", "hairline"}, 100},
	{[]string{"extralight", "ultralight"}, 200},
	{[]string{"light"}, 300},
	{[]string{"regular", "normal"}, 400},
	{[]string{"medium"}, 500},
	{[]string{"semibold", "demibold"}, 600},
	{[]string{"extrabold", "ultrabold"}, 800},
	{[]string{"bold"}, 700},
	{[]string{"black", "heavy"}, 900},
}

const defaultWeight = 400

var separatorStripper = strings.NewReplacer(" ", "", "-", "", "_", "")

// ParseWeight infers a numeric CSS weight from a variant name. Matching is
// case-insensitive and ignores spaces, hyphens and underscores. Unknown names
// map to 400.
func ParseWeight(name string) int {
	folded := separatorStripper.Replace(catalog.Lower(name))
	for _, rule := range weightRules {
		for _, token := range rule.tokens {
			if strings.Contains(folded, token) {
				return rule.weight
			}
		}
	}
	return defaultWeight
}

// ParseStyle returns "italic" for names mentioning italic or oblique.
func ParseStyle(name string) string {
	lower := catalog.Lower(name)
	if strings.Contains(lower, "italic") || strings.Contains(lower, "oblique") {
		return catalog.StyleItalic
	}
	return catalog.StyleNormal
}
