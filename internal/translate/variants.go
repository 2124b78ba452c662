package translate

import (
	"strings"

	"fontsources/internal/catalog"
	"fontsources/internal/fontsquirrel"
)

const defaultVariantName = "Regular"

type variantPattern struct {
	name   string
	weight int
	style  string
}

// Synthesized when a record carries no file list.
var variantPatterns = []variantPattern{
	{"Regular", 400, catalog.StyleNormal},
	{"Bold", 700, catalog.StyleNormal},
	{"Italic", 400, catalog.StyleItalic},
	{"Bold Italic", 700, catalog.StyleItalic},
	{"Light", 300, catalog.StyleNormal},
	{"Medium", 500, catalog.StyleNormal},
	{"Semi Bold", 600, catalog.StyleNormal},
	{"Extra Bold", 800, catalog.StyleNormal},
	{"Black", 900, catalog.StyleNormal},
}

// Variants builds the variant list for a record. An explicit font_files list
// yields one variant per file that carries a ttf or otf URL; otherwise the
// standard pattern table is synthesized under the site's download path. The
// result never exceeds catalog.MaxVariants.
func (t *Translator) Variants(rec fontsquirrel.Record, family, urlName string) ([]catalog.Variant, error) {
	files, err := rec.Records("font_files")
	if err != nil {
		return nil, err
	}

	var variants []catalog.Variant
	if len(files) > 0 {
		variants, err = fileVariants(files)
		if err != nil {
			return nil, err
		}
	} else {
		variants = t.synthesize(family, urlName)
	}

	if len(variants) > catalog.MaxVariants {
		variants = variants[:catalog.MaxVariants]
	}
	return variants, nil
}

func fileVariants(files []fontsquirrel.Record) ([]catalog.Variant, error) {
	variants := make([]catalog.Variant, 0, len(files))
	for _, file := range files {
		r := newReader(file)
		name := r.str("name")
		ttf := r.str("ttf_url")
		otf := r.str("otf_url")
		if r.failed() {
			return nil, *r.err
		}
		if name == "" {
			name = defaultVariantName
		}

		urls := make(map[string]string, 2)
		if ttf != "" {
			urls["ttf"] = ttf
		}
		if otf != "" {
			urls["otf"] = otf
		}
		if len(urls) == 0 {
			continue
		}
		variants = append(variants, catalog.Variant{
			Name:    name,
			Weight:  ParseWeight(name),
			Style:   ParseStyle(name),
			Subsets: []string{"latin"},
			Files:   urls,
		})
	}
	return variants, nil
}

func (t *Translator) synthesize(family, urlName string) []catalog.Variant {
	base := t.siteURL + "/fonts/download/" + urlName + "/"
	variants := make([]catalog.Variant, 0, len(variantPatterns))
	for _, p := range variantPatterns {
		variants = append(variants, catalog.Variant{
			Name:    family + " " + p.name,
			Weight:  p.weight,
			Style:   p.style,
			Subsets: []string{"latin"},
			Files: map[string]string{
				"ttf": base + strings.ReplaceAll(strings.ToLower(p.name), " ", "-"),
			},
		})
	}
	return variants
}
