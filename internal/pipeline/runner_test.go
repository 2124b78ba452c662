package pipeline_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"fontsources/internal/catalog"
	"fontsources/internal/fontsquirrel"
	"fontsources/internal/pipeline"
	"fontsources/internal/translate"
)

type stubLister struct {
	records []fontsquirrel.Record
	err     error
	calls   int
}

func (s *stubLister) FetchFonts(context.Context) ([]fontsquirrel.Record, error) {
	s.calls++
	return s.records, s.err
}

type panicTransformer struct{}

func (panicTransformer) Transform(fontsquirrel.Record) translate.Outcome {
	panic("boom")
}

var fixedTime = time.Date(2026, 10, 19, 9, 30, 0, 0, time.UTC)

func newRunner(lister fontsquirrel.Lister, opts pipeline.Options) *pipeline.Runner {
	if opts.Clock == nil {
		opts.Clock = func() time.Time { return fixedTime }
	}
	if opts.Source.Name == "" {
		opts.Source = catalog.SourceInfo{
			Name:        "Font Squirrel",
			Description: "Free and commercial fonts from Font Squirrel",
			URL:         "https://www.fontsquirrel.com",
			APIEndpoint: "https://www.fontsquirrel.com/api/fontlist/all",
			Version:     "1.0",
		}
	}
	return pipeline.NewRunner(lister, translate.New(translate.Options{}), opts)
}

func TestRunTranslatesRecord(t *testing.T) {
	lister := &stubLister{records: []fontsquirrel.Record{
		{"family_name": "Test Font", "is_free": true, "designer": "Jane"},
	}}
	doc, report, err := newRunner(lister, pipeline.Options{}).Run(context.Background())
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if doc.SourceInfo.TotalFonts != 1 || report.TotalFonts != 1 {
		t.Fatalf("expected one font, got header=%d report=%d", doc.SourceInfo.TotalFonts, report.TotalFonts)
	}
	if !doc.SourceInfo.LastUpdated.Equal(fixedTime) {
		t.Fatalf("unexpected last_updated %v", doc.SourceInfo.LastUpdated)
	}

	entry, ok := doc.Fonts["squirrel.test-font"]
	if !ok {
		t.Fatalf("expected squirrel.test-font, got keys %v", keys(doc))
	}
	if diff := cmp.Diff([]string{"free"}, entry.Tags); diff != "" {
		t.Fatalf("tags mismatch (-want +got):\n%s", diff)
	}
	if len(entry.Variants) != 5 {
		t.Fatalf("expected 5 variants, got %d", len(entry.Variants))
	}
	for _, v := range entry.Variants {
		if diff := cmp.Diff([]string{"latin"}, v.Subsets); diff != "" {
			t.Fatalf("subsets mismatch (-want +got):\n%s", diff)
		}
	}
	if entry.Popularity != 80 {
		t.Fatalf("expected popularity 80, got %d", entry.Popularity)
	}
	if report.RunID == "" || report.FontsDigest == "" {
		t.Fatalf("expected run id and digest, got %+v", report)
	}
	if report.Fetched != 1 || report.Processed != 1 || report.Skipped != 0 {
		t.Fatalf("unexpected counts %+v", report)
	}
}

func TestRunEmptyListProducesEmptyDocument(t *testing.T) {
	lister := &stubLister{records: []fontsquirrel.Record{}}
	doc, report, err := newRunner(lister, pipeline.Options{}).Run(context.Background())
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if doc.SourceInfo.TotalFonts != 0 || len(doc.Fonts) != 0 {
		t.Fatalf("expected empty document, got %+v", doc.SourceInfo)
	}
	if doc.SourceInfo.Name != "Font Squirrel" {
		t.Fatalf("expected header to be kept, got %+v", doc.SourceInfo)
	}
	if report.FetchFailed() {
		t.Fatal("empty list must not be reported as a fetch failure")
	}
}

func TestRunAbsorbsFetchFailure(t *testing.T) {
	lister := &stubLister{err: errors.New("connection refused")}
	doc, report, err := newRunner(lister, pipeline.Options{}).Run(context.Background())
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if len(doc.Fonts) != 0 || doc.SourceInfo.TotalFonts != 0 {
		t.Fatalf("expected empty document, got %d fonts", len(doc.Fonts))
	}
	if !report.FetchFailed() || report.FetchError != "connection refused" {
		t.Fatalf("expected fetch failure on report, got %+v", report)
	}
}

func TestRunReturnsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	lister := &stubLister{records: []fontsquirrel.Record{{"family_name": "A"}}}
	_, _, err := newRunner(lister, pipeline.Options{}).Run(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestRunCountsSkipsAndDuplicates(t *testing.T) {
	lister := &stubLister{records: []fontsquirrel.Record{
		{"family_name": "Alpha", "designer": "First"},
		{},
		{"family_name": "Broken", "license": "MIT"},
		{"family_name": "alpha", "designer": "Second"},
		{"family_name": "Beta"},
	}}
	var progress []pipeline.Progress
	doc, report, err := newRunner(lister, pipeline.Options{
		OnProgress: func(p pipeline.Progress) { progress = append(progress, p) },
	}).Run(context.Background())
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	if report.Processed != 3 || report.Skipped != 2 || report.Duplicates != 1 {
		t.Fatalf("unexpected counts %+v", report)
	}
	if report.Processed+report.Skipped != report.Fetched {
		t.Fatalf("processed and skipped do not add up to fetched: %+v", report)
	}
	if doc.SourceInfo.TotalFonts != 2 || len(doc.Fonts) != 2 {
		t.Fatalf("expected two entries, got %d", len(doc.Fonts))
	}
	if got := doc.Fonts["squirrel.alpha"].Designer; got != "Second" {
		t.Fatalf("expected later duplicate to win, got designer %q", got)
	}

	wantSkips := []pipeline.SkippedRecord{
		{Index: 1, Reason: translate.SkipMissingFamily},
		{Index: 2, Family: "Broken", Reason: translate.SkipMalformed},
	}
	if diff := cmp.Diff(wantSkips, report.Skips, cmpopts.IgnoreFields(pipeline.SkippedRecord{}, "Error")); diff != "" {
		t.Fatalf("skips mismatch (-want +got):\n%s", diff)
	}

	if len(progress) != 5 || progress[4].Done != 5 || progress[4].Total != 5 || progress[4].Skipped != 2 {
		t.Fatalf("unexpected progress events %+v", progress)
	}
}

func TestRunSkipsNonObjectListElements(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"family_name":"Good Font","is_free":true}, 42, "oops"]`))
	}))
	t.Cleanup(server.Close)

	client, err := fontsquirrel.New(server.URL)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	doc, report, err := newRunner(client, pipeline.Options{}).Run(context.Background())
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if report.FetchFailed() {
		t.Fatalf("mixed list must not fail the fetch: %v", report.FetchErr)
	}
	if len(doc.Fonts) != 1 || doc.SourceInfo.TotalFonts != 1 {
		t.Fatalf("expected one font, got %d", len(doc.Fonts))
	}
	if _, ok := doc.Fonts["squirrel.good-font"]; !ok {
		t.Fatalf("missing good font, got keys %v", keys(doc))
	}
	if report.Fetched != 3 || report.Processed != 1 || report.Skipped != 2 {
		t.Fatalf("unexpected counts %+v", report)
	}
	wantSkips := []pipeline.SkippedRecord{
		{Index: 1, Reason: translate.SkipMalformed},
		{Index: 2, Reason: translate.SkipMalformed},
	}
	if diff := cmp.Diff(wantSkips, report.Skips, cmpopts.IgnoreFields(pipeline.SkippedRecord{}, "Error")); diff != "" {
		t.Fatalf("skips mismatch (-want +got):\n%s", diff)
	}
}

func TestRunRecoversTransformerPanic(t *testing.T) {
	lister := &stubLister{records: []fontsquirrel.Record{{"family_name": "Boom"}}}
	runner := pipeline.NewRunner(lister, panicTransformer{}, pipeline.Options{})
	doc, report, err := runner.Run(context.Background())
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if len(doc.Fonts) != 0 {
		t.Fatalf("expected no entries, got %d", len(doc.Fonts))
	}
	if report.Skipped != 1 || report.Skips[0].Reason != translate.SkipPanic || report.Skips[0].Family != "Boom" {
		t.Fatalf("unexpected skips %+v", report.Skips)
	}
}

func TestRunIsRepeatable(t *testing.T) {
	records := []fontsquirrel.Record{
		{"family_name": "Zeta", "classification": map[string]any{"name": "Serif"}},
		{"family_name": "Alpha", "is_free": true},
	}
	first, firstReport, err := newRunner(&stubLister{records: records}, pipeline.Options{}).Run(context.Background())
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	second, secondReport, err := newRunner(&stubLister{records: records}, pipeline.Options{}).Run(context.Background())
	if err != nil {
		t.Fatalf("second run: %v", err)
	}

	if firstReport.RunID == secondReport.RunID {
		t.Fatal("expected distinct run ids")
	}
	if firstReport.FontsDigest != secondReport.FontsDigest {
		t.Fatalf("digests differ: %s vs %s", firstReport.FontsDigest, secondReport.FontsDigest)
	}
	a, err := catalog.Encode(first)
	if err != nil {
		t.Fatalf("encode first: %v", err)
	}
	b, err := catalog.Encode(second)
	if err != nil {
		t.Fatalf("encode second: %v", err)
	}
	if string(a) != string(b) {
		t.Fatal("expected byte-identical documents")
	}
}

func TestRunPacesRecords(t *testing.T) {
	lister := &stubLister{records: []fontsquirrel.Record{
		{"family_name": "A"}, {"family_name": "B"}, {"family_name": "C"},
	}}
	runner := newRunner(lister, pipeline.Options{Delay: 20 * time.Millisecond})
	start := time.Now()
	if _, _, err := runner.Run(context.Background()); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if elapsed := time.Since(start); elapsed < 35*time.Millisecond {
		t.Fatalf("expected paced run, finished in %v", elapsed)
	}
}

func keys(doc *catalog.SourceDocument) []string {
	out := make([]string, 0, len(doc.Fonts))
	for k := range doc.Fonts {
		out = append(out, k)
	}
	return out
}
