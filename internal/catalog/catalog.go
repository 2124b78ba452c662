package catalog

import "time"

// SampleText is the preview sentence attached to every entry.
const SampleText = "The quick brown fox jumps over the lazy dog"

// MaxVariants caps the number of variants kept per font.
const MaxVariants = 5

// Font styles.
const (
	StyleNormal = "normal"
	StyleItalic = "italic"
)

// Variant is a single weight/style of a family with its download URLs keyed by
// format ("ttf", "otf").
type Variant struct {
	Name    string            `json:"name"`
	Weight  int               `json:"weight"`
	Style   string            `json:"style"`
	Subsets []string          `json:"subsets"`
	Files   map[string]string `json:"files"`
}

// FontEntry is one family in the generated source file.
type FontEntry struct {
	Name          string    `json:"name"`
	Family        string    `json:"family"`
	License       string    `json:"license"`
	LicenseURL    string    `json:"license_url"`
	Designer      string    `json:"designer"`
	Foundry       string    `json:"foundry"`
	Version       string    `json:"version"`
	Description   string    `json:"description"`
	Categories    []string  `json:"categories"`
	Tags          []string  `json:"tags"`
	Popularity    int       `json:"popularity"`
	LastModified  string    `json:"last_modified"`
	MetadataURL   string    `json:"metadata_url"`
	SourceURL     string    `json:"source_url"`
	Variants      []Variant `json:"variants"`
	UnicodeRanges []string  `json:"unicode_ranges"`
	Languages     []string  `json:"languages"`
	SampleText    string    `json:"sample_text"`
}

// SourceInfo is the header of a source file.
type SourceInfo struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	URL         string    `json:"url"`
	APIEndpoint string    `json:"api_endpoint"`
	Version     string    `json:"version"`
	LastUpdated time.Time `json:"last_updated"`
	TotalFonts  int       `json:"total_fonts"`
}

// SourceDocument is the complete generated file: a header plus every entry
// keyed by Key(family).
type SourceDocument struct {
	SourceInfo SourceInfo           `json:"source_info"`
	Fonts      map[string]FontEntry `json:"fonts"`
}

// NewDocument returns an empty document carrying the given header. TotalFonts
// and LastUpdated are filled in by Seal.
func NewDocument(info SourceInfo) *SourceDocument {
	info.TotalFonts = 0
	return &SourceDocument{
		SourceInfo: info,
		Fonts:      make(map[string]FontEntry),
	}
}

// Put stores entry under key and reports whether an earlier entry was replaced.
func (d *SourceDocument) Put(key string, entry FontEntry) bool {
	_, replaced := d.Fonts[key]
	d.Fonts[key] = entry
	return replaced
}

// Seal stamps the header with the completion time and entry count.
func (d *SourceDocument) Seal(now time.Time) {
	d.SourceInfo.LastUpdated = now.UTC()
	d.SourceInfo.TotalFonts = len(d.Fonts)
}
