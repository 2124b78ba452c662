package main

import (
	"io"
	"log/slog"
	"time"

	"github.com/schollz/progressbar/v3"

	"fontsources/internal/logging"
	"fontsources/internal/pipeline"
)

// progressReporter draws a bar on a terminal and falls back to sampled log
// lines otherwise.
type progressReporter struct {
	out     io.Writer
	logger  *slog.Logger
	sampler *logging.ProgressSampler
	tty     bool
	bar     *progressbar.ProgressBar
}

func newProgressReporter(out io.Writer, logger *slog.Logger, every int) *progressReporter {
	return &progressReporter{
		out:     out,
		logger:  logger,
		sampler: logging.NewProgressSampler(every),
		tty:     isTerminal(out),
	}
}

func (p *progressReporter) Update(progress pipeline.Progress) {
	if p.tty {
		if p.bar == nil {
			p.bar = progressbar.NewOptions(progress.Total,
				progressbar.OptionSetWriter(p.out),
				progressbar.OptionSetDescription("translating"),
				progressbar.OptionShowCount(),
				progressbar.OptionThrottle(100*time.Millisecond),
				progressbar.OptionClearOnFinish(),
			)
		}
		_ = p.bar.Set(progress.Done)
		return
	}
	if p.logger != nil && p.sampler.ShouldLog(progress.Done, progress.Total) {
		p.logger.Info("translate progress",
			logging.Int("done", progress.Done),
			logging.Int("total", progress.Total),
			logging.Int("skipped", progress.Skipped),
			logging.String(logging.FieldFamily, progress.Family))
	}
}

func (p *progressReporter) Finish() {
	if p.bar != nil {
		_ = p.bar.Finish()
	}
}
