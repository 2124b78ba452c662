package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"fontsources/internal/catalog"
	"fontsources/internal/config"
	"fontsources/internal/fontsquirrel"
	"fontsources/internal/logging"
	"fontsources/internal/pipeline"
	"fontsources/internal/sourcefile"
	"fontsources/internal/translate"
)

type translateSummary struct {
	Output string `json:"output"`
	pipeline.Report
}

func newTranslateCommand(ctx *commandContext) *cobra.Command {
	var outputPath string
	var endpoint string
	var delay time.Duration
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "translate",
		Short: "Fetch the Font Squirrel catalog and write the FontGet source file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}
			defer func() {
				if cerr := ctx.closeLogger(); cerr != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "close log file: %v\n", cerr)
				}
			}()

			output := cfg.Output.Path
			if strings.TrimSpace(outputPath) != "" {
				output, err = config.ExpandPath(strings.TrimSpace(outputPath))
				if err != nil {
					return fmt.Errorf("resolve output path: %w", err)
				}
			}
			apiEndpoint := cfg.Source.APIEndpoint
			if strings.TrimSpace(endpoint) != "" {
				apiEndpoint = strings.TrimSpace(endpoint)
			}
			recordDelay := cfg.RecordDelay()
			if cmd.Flags().Changed("delay") {
				if delay < 0 {
					return errors.New("--delay must not be negative")
				}
				recordDelay = delay
			}

			client, err := fontsquirrel.New(apiEndpoint,
				fontsquirrel.WithUserAgent(cfg.HTTP.UserAgent),
				fontsquirrel.WithTimeout(cfg.RequestTimeout()),
			)
			if err != nil {
				return err
			}

			runCtx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			progress := newProgressReporter(cmd.ErrOrStderr(), logger, cfg.Pipeline.ProgressEvery)
			runner := pipeline.NewRunner(client,
				translate.New(translate.Options{
					SiteURL:   cfg.Source.SiteURL,
					KeyPrefix: cfg.Source.KeyPrefix,
				}),
				pipeline.Options{
					Source: catalog.SourceInfo{
						Name:        cfg.Source.Name,
						Description: cfg.Source.Description,
						URL:         cfg.Source.SiteURL,
						APIEndpoint: client.Endpoint(),
						Version:     cfg.Source.Version,
					},
					Delay:      recordDelay,
					Logger:     logger,
					OnProgress: progress.Update,
				},
			)

			doc, report, err := runner.Run(runCtx)
			progress.Finish()
			if err != nil {
				return err
			}

			if err := sourcefile.Write(runCtx, output, doc); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			logger.Info("source file written",
				logging.String("path", output),
				logging.Int("fonts", report.TotalFonts),
				logging.String(logging.FieldRunID, report.RunID))

			if jsonOut {
				return writeJSON(cmd, translateSummary{Output: output, Report: report})
			}
			printTranslateSummary(cmd, output, report)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file (defaults to output.path)")
	cmd.Flags().StringVar(&endpoint, "endpoint", "", "Font list endpoint (defaults to source.api_endpoint)")
	cmd.Flags().DurationVar(&delay, "delay", 0, "Pause between records, e.g. 100ms (defaults to pipeline.record_delay_ms)")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Print the run report as JSON")
	return cmd
}

func printTranslateSummary(cmd *cobra.Command, output string, report pipeline.Report) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Wrote %d fonts to %s\n", report.TotalFonts, output)
	fmt.Fprintf(out, "Processed %d, skipped %d, duplicates %d in %s\n",
		report.Processed, report.Skipped, report.Duplicates, report.ElapsedText)
	if report.FetchFailed() {
		fmt.Fprintf(out, "Warning: font list fetch failed (%s); the catalog is empty\n", report.FetchError)
	}
	fmt.Fprintf(out, "Fonts digest: %s\n", report.FontsDigest)
}
