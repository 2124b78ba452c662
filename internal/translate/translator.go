package translate

import (
	"fmt"
	"strings"

	"fontsources/internal/catalog"
	"fontsources/internal/fontsquirrel"
)

const (
	defaultSiteURL = "https://www.fontsquirrel.com"
	defaultLicense = "Unknown"
	defaultVersion = "1.0"
	otherCategory  = "Other"
)

// Options configures a Translator.
type Options struct {
	// SiteURL is the base for metadata, source and synthesized download URLs.
	SiteURL string
	// KeyPrefix is prepended to every entry key.
	KeyPrefix string
}

// Translator maps raw Font Squirrel records onto catalog entries.
type Translator struct {
	siteURL   string
	keyPrefix string
}

// New returns a Translator with defaults applied to empty options.
func New(opts Options) *Translator {
	site := strings.TrimRight(strings.TrimSpace(opts.SiteURL), "/")
	if site == "" {
		site = defaultSiteURL
	}
	prefix := strings.TrimSpace(opts.KeyPrefix)
	if prefix == "" {
		prefix = catalog.DefaultKeyPrefix
	}
	return &Translator{siteURL: site, keyPrefix: prefix}
}

// Transform maps one record. It never panics: unexpected failures become a
// SkipPanic outcome.
func (t *Translator) Transform(rec fontsquirrel.Record) (out Outcome) {
	defer func() {
		if r := recover(); r != nil {
			out = skipped(SkipPanic, rec.FamilyName(), fmt.Errorf("%v", r))
		}
	}()

	if err := rec.Err(); err != nil {
		return skipped(SkipMalformed, "", err)
	}

	family, err := rec.String("family_name")
	if err != nil {
		return skipped(SkipMalformed, "", err)
	}
	family = strings.TrimSpace(family)
	if family == "" {
		return skipped(SkipMissingFamily, "", nil)
	}

	entry, err := t.entry(rec, family)
	if err != nil {
		return skipped(SkipMalformed, family, err)
	}
	return Outcome{Key: catalog.Key(t.keyPrefix, family), Entry: entry}
}

func (t *Translator) entry(rec fontsquirrel.Record, family string) (*catalog.FontEntry, error) {
	r := newReader(rec)

	license := r.object("license")
	licenseName := license.str("name")
	if licenseName == "" {
		licenseName = defaultLicense
	}
	licenseURL := license.str("url")

	designer := r.str("designer")
	foundry := r.str("foundry")

	classification := r.object("classification").str("name")
	isFree := r.flag("is_free")

	description := r.str("description")
	if description == "" {
		description = r.str("short_description")
	}

	version := r.str("version")
	if version == "" {
		version = defaultVersion
	}

	lastModified := NormalizeTimestamp(r.str("updated_at"))
	urlName := r.str("family_urlname")
	if r.failed() {
		return nil, *r.err
	}
	if strings.TrimSpace(urlName) == "" {
		urlName = URLName(family)
	}

	variants, err := t.Variants(rec, family, urlName)
	if err != nil {
		return nil, err
	}
	popularity, err := Popularity(rec)
	if err != nil {
		return nil, err
	}

	return &catalog.FontEntry{
		Name:          family,
		Family:        family,
		License:       licenseName,
		LicenseURL:    licenseURL,
		Designer:      designer,
		Foundry:       foundry,
		Version:       version,
		Description:   description,
		Categories:    Categories(classification),
		Tags:          Tags(classification, isFree),
		Popularity:    popularity,
		LastModified:  lastModified,
		MetadataURL:   t.siteURL + "/api/familyinfo/" + urlName,
		SourceURL:     t.siteURL + "/fonts/" + urlName,
		Variants:      variants,
		UnicodeRanges: UnicodeRanges(classification),
		Languages:     Languages(classification),
		SampleText:    catalog.SampleText,
	}, nil
}

// URLName derives the URL-safe family name used when the record has no
// family_urlname: lower-cased with spaces replaced by hyphens.
func URLName(family string) string {
	return strings.ReplaceAll(catalog.Lower(family), " ", "-")
}

// Categories returns the single-entry category list, or an empty list when
// the classification is absent or "Other".
func Categories(classification string) []string {
	if classification == "" || classification == otherCategory {
		return []string{}
	}
	return []string{classification}
}

// Tags returns the classification tag (if any) followed by exactly one of
// "free" or "commercial".
func Tags(classification string, isFree bool) []string {
	tags := make([]string, 0, 2)
	if classification != "" {
		tags = append(tags, strings.ReplaceAll(catalog.Lower(classification), " ", "-"))
	}
	if isFree {
		return append(tags, "free")
	}
	return append(tags, "commercial")
}

// reader accumulates the first accessor error so field extraction reads
// top to bottom. Nested readers share the parent's error slot.
type reader struct {
	rec fontsquirrel.Record
	err *error
}

func newReader(rec fontsquirrel.Record) *reader {
	var err error
	return &reader{rec: rec, err: &err}
}

func (r *reader) failed() bool { return *r.err != nil }

func (r *reader) str(key string) string {
	if r.failed() || r.rec == nil {
		return ""
	}
	s, err := r.rec.String(key)
	if err != nil {
		*r.err = err
	}
	return s
}

func (r *reader) flag(key string) bool {
	if r.failed() || r.rec == nil {
		return false
	}
	b, err := r.rec.Flag(key)
	if err != nil {
		*r.err = err
	}
	return b
}

func (r *reader) object(key string) *reader {
	child := &reader{err: r.err}
	if r.failed() || r.rec == nil {
		return child
	}
	obj, err := r.rec.Object(key)
	if err != nil {
		*r.err = err
	}
	child.rec = obj
	return child
}
