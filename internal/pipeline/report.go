package pipeline

import (
	"time"

	"fontsources/internal/translate"
)

// SkippedRecord describes one record that produced no entry.
type SkippedRecord struct {
	Index  int                  `json:"index"`
	Family string               `json:"family,omitempty"`
	Reason translate.SkipReason `json:"reason"`
	Error  string               `json:"error,omitempty"`
}

// Report summarizes a translate run. Processed counts records that produced an
// entry, duplicates included, so Processed plus Skipped equals Fetched.
type Report struct {
	RunID       string          `json:"run_id"`
	Endpoint    string          `json:"endpoint,omitempty"`
	Fetched     int             `json:"fetched"`
	Processed   int             `json:"processed"`
	Skipped     int             `json:"skipped"`
	Duplicates  int             `json:"duplicates"`
	TotalFonts  int             `json:"total_fonts"`
	Skips       []SkippedRecord `json:"skips"`
	FetchError  string          `json:"fetch_error,omitempty"`
	FontsDigest string          `json:"fonts_digest"`
	StartedAt   time.Time       `json:"started_at"`
	FinishedAt  time.Time       `json:"finished_at"`
	Elapsed     time.Duration   `json:"-"`
	ElapsedText string          `json:"elapsed"`

	// FetchErr is the absorbed fetch failure, if any.
	FetchErr error `json:"-"`
}

// FetchFailed reports whether the font list could not be retrieved. The
// written document is empty in that case, same as a legitimately empty list.
func (r Report) FetchFailed() bool {
	return r.FetchErr != nil
}

func (r *Report) recordSkip(index int, skip *translate.Skip) {
	r.Skipped++
	entry := SkippedRecord{Index: index, Family: skip.Family, Reason: skip.Reason}
	if skip.Err != nil {
		entry.Error = skip.Err.Error()
	}
	r.Skips = append(r.Skips, entry)
}
