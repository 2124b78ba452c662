package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/hako/durafmt"
	"golang.org/x/time/rate"

	"fontsources/internal/catalog"
	"fontsources/internal/fontsquirrel"
	"fontsources/internal/logging"
	"fontsources/internal/translate"
)

// Transformer maps one raw record to an outcome.
type Transformer interface {
	Transform(rec fontsquirrel.Record) translate.Outcome
}

// Progress is reported after every record.
type Progress struct {
	Done    int
	Total   int
	Skipped int
	Family  string
}

// Options configures a Runner.
type Options struct {
	// Source is the header template for the generated document.
	Source catalog.SourceInfo
	// Delay is the minimum spacing between records. Zero disables pacing.
	Delay time.Duration
	// Logger receives run logs. Nil discards them.
	Logger *slog.Logger
	// Clock overrides time.Now, mainly for tests.
	Clock func() time.Time
	// OnProgress is called after each record when set.
	OnProgress func(Progress)
}

// Runner fetches the upstream list and aggregates translated entries into a
// source document. A Runner is not safe for concurrent use.
type Runner struct {
	lister      fontsquirrel.Lister
	transformer Transformer
	source      catalog.SourceInfo
	delay       time.Duration
	logger      *slog.Logger
	now         func() time.Time
	onProgress  func(Progress)
}

// NewRunner constructs a Runner.
func NewRunner(lister fontsquirrel.Lister, transformer Transformer, opts Options) *Runner {
	now := opts.Clock
	if now == nil {
		now = time.Now
	}
	return &Runner{
		lister:      lister,
		transformer: transformer,
		source:      opts.Source,
		delay:       max(opts.Delay, 0),
		logger:      logging.NewComponentLogger(opts.Logger, "pipeline"),
		now:         now,
		onProgress:  opts.OnProgress,
	}
}

// Run performs one full translation. Fetch failures are absorbed: the result
// is the empty document and Report.FetchErr carries the cause. The returned
// error is non-nil only when ctx ends or the runner is misconfigured.
func (r *Runner) Run(ctx context.Context) (*catalog.SourceDocument, Report, error) {
	if r.lister == nil || r.transformer == nil {
		return nil, Report{}, errors.New("pipeline runner requires a lister and a transformer")
	}

	started := r.now()
	report := Report{
		RunID:     uuid.NewString(),
		StartedAt: started.UTC(),
		Endpoint:  r.source.APIEndpoint,
		Skips:     []SkippedRecord{},
	}
	ctx = logging.WithRunID(ctx, report.RunID)
	logger := logging.WithContext(ctx, r.logger)
	doc := catalog.NewDocument(r.source)

	logger.Info("fetching font list", logging.String("endpoint", r.source.APIEndpoint))
	records, err := r.lister.FetchFonts(ctx)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, report, ctxErr
		}
		report.FetchErr = err
		report.FetchError = err.Error()
		logging.WarnWithContext(logger, "font list fetch failed",
			"fetch_failed",
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "check network access and source.api_endpoint"),
			logging.String(logging.FieldImpact, "output will contain no fonts"),
		)
	}
	report.Fetched = len(records)
	if len(records) == 0 {
		if err == nil {
			logger.Info("font list is empty")
		}
		return r.finish(logger, doc, report, started)
	}

	logger.Info("processing fonts", logging.Int("count", len(records)))
	pacer := newPacer(r.delay)
	for i, rec := range records {
		if err := pacer.Wait(ctx); err != nil {
			return nil, report, fmt.Errorf("record %d: %w", i, err)
		}

		out := r.transform(rec)
		if out.Skip != nil {
			report.recordSkip(i, out.Skip)
			r.logSkip(logger, i, out.Skip)
		} else {
			report.Processed++
			if doc.Put(out.Key, *out.Entry) {
				report.Duplicates++
				logger.Debug("duplicate font key, keeping later record",
					logging.String(logging.FieldFontKey, out.Key),
					logging.Int("index", i))
			}
		}

		if r.onProgress != nil {
			r.onProgress(Progress{
				Done:    i + 1,
				Total:   len(records),
				Skipped: report.Skipped,
				Family:  rec.FamilyName(),
			})
		}
	}

	return r.finish(logger, doc, report, started)
}

func (r *Runner) transform(rec fontsquirrel.Record) (out translate.Outcome) {
	defer func() {
		if p := recover(); p != nil {
			out = translate.Outcome{Skip: &translate.Skip{
				Reason: translate.SkipPanic,
				Family: rec.FamilyName(),
				Err:    fmt.Errorf("%v", p),
			}}
		}
	}()
	out = r.transformer.Transform(rec)
	if out.Skip == nil && out.Entry == nil {
		out.Skip = &translate.Skip{
			Reason: translate.SkipMalformed,
			Family: rec.FamilyName(),
			Err:    errors.New("transform returned no entry"),
		}
	}
	return out
}

func (r *Runner) logSkip(logger *slog.Logger, index int, skip *translate.Skip) {
	attrs := []logging.Attr{
		logging.Int("index", index),
		logging.String("reason", string(skip.Reason)),
	}
	if skip.Family != "" {
		attrs = append(attrs, logging.String(logging.FieldFamily, skip.Family))
	}
	if skip.Reason == translate.SkipMissingFamily {
		logger.Debug("skipping record without family name", logging.Args(attrs...)...)
		return
	}
	attrs = append(attrs,
		logging.Error(skip.Err),
		logging.String(logging.FieldErrorHint, "inspect the upstream record"),
		logging.String(logging.FieldImpact, "font omitted from output"),
	)
	logging.WarnWithContext(logger, "skipping font record", "record_skipped", attrs...)
}

func (r *Runner) finish(logger *slog.Logger, doc *catalog.SourceDocument, report Report, started time.Time) (*catalog.SourceDocument, Report, error) {
	finished := r.now()
	doc.Seal(finished)

	digest, err := doc.FontsDigest()
	if err != nil {
		return nil, report, err
	}

	report.TotalFonts = doc.SourceInfo.TotalFonts
	report.FontsDigest = digest
	report.FinishedAt = finished.UTC()
	report.Elapsed = finished.Sub(started)
	report.ElapsedText = durafmt.Parse(report.Elapsed).LimitFirstN(2).String()

	logger.Info("translation complete",
		logging.Int("fonts", report.TotalFonts),
		logging.Int("processed", report.Processed),
		logging.Int("skipped", report.Skipped),
		logging.Int("duplicates", report.Duplicates),
		logging.String("elapsed", report.ElapsedText),
		logging.String("fonts_digest", report.FontsDigest),
	)
	return doc, report, nil
}

// newPacer spaces records by delay. The first Wait returns immediately.
func newPacer(delay time.Duration) *rate.Limiter {
	if delay <= 0 {
		return rate.NewLimiter(rate.Inf, 1)
	}
	return rate.NewLimiter(rate.Every(delay), 1)
}
