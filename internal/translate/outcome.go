package translate

import (
	"fmt"

	"fontsources/internal/catalog"
)

// SkipReason classifies why a record produced no entry.
type SkipReason string

const (
	SkipMissingFamily SkipReason = "missing_family"
	SkipMalformed     SkipReason = "malformed_record"
	SkipPanic         SkipReason = "panic"
)

// Skip describes a record that was dropped.
type Skip struct {
	Reason SkipReason
	Family string
	Err    error
}

func (s *Skip) Error() string {
	family := s.Family
	if family == "" {
		family = "unknown"
	}
	if s.Err == nil {
		return fmt.Sprintf("skip %s: %s", family, s.Reason)
	}
	return fmt.Sprintf("skip %s: %s: %v", family, s.Reason, s.Err)
}

func (s *Skip) Unwrap() error { return s.Err }

// Outcome is the result of translating one record: either an entry with its
// key, or a skip.
type Outcome struct {
	Key   string
	Entry *catalog.FontEntry
	Skip  *Skip
}

// OK reports whether the record produced an entry.
func (o Outcome) OK() bool {
	return o.Skip == nil && o.Entry != nil
}

func skipped(reason SkipReason, family string, err error) Outcome {
	return Outcome{Skip: &Skip{Reason: reason, Family: family, Err: err}}
}
