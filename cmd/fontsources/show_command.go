package main

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"fontsources/internal/catalog"
	"fontsources/internal/config"
	"fontsources/internal/sourcefile"
)

type showOutput struct {
	Path       string             `json:"path"`
	SourceInfo catalog.SourceInfo `json:"source_info"`
	Fonts      []showFont         `json:"fonts"`
	Truncated  bool               `json:"truncated"`
}

type showFont struct {
	Key string `json:"key"`
	catalog.FontEntry
}

func newShowCommand(ctx *commandContext) *cobra.Command {
	var path string
	var limit int
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Display a generated source file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			target := cfg.Output.Path
			if strings.TrimSpace(path) != "" {
				target, err = config.ExpandPath(strings.TrimSpace(path))
				if err != nil {
					return fmt.Errorf("resolve path: %w", err)
				}
			}
			if limit < 0 {
				return fmt.Errorf("--limit must not be negative")
			}

			doc, err := sourcefile.Read(target)
			if err != nil {
				return err
			}

			keys := make([]string, 0, len(doc.Fonts))
			for key := range doc.Fonts {
				keys = append(keys, key)
			}
			slices.Sort(keys)
			truncated := limit > 0 && len(keys) > limit
			if truncated {
				keys = keys[:limit]
			}

			if jsonOut {
				fonts := make([]showFont, 0, len(keys))
				for _, key := range keys {
					fonts = append(fonts, showFont{Key: key, FontEntry: doc.Fonts[key]})
				}
				return writeJSON(cmd, showOutput{
					Path:       target,
					SourceInfo: doc.SourceInfo,
					Fonts:      fonts,
					Truncated:  truncated,
				})
			}

			out := cmd.OutOrStdout()
			info := doc.SourceInfo
			fmt.Fprintf(out, "Source:       %s (v%s)\n", info.Name, info.Version)
			fmt.Fprintf(out, "Endpoint:     %s\n", info.APIEndpoint)
			fmt.Fprintf(out, "Last updated: %s\n", info.LastUpdated.Format(time.RFC3339))
			fmt.Fprintf(out, "Total fonts:  %d\n", info.TotalFonts)
			if len(keys) == 0 {
				return nil
			}

			rows := make([][]string, 0, len(keys))
			for _, key := range keys {
				entry := doc.Fonts[key]
				rows = append(rows, []string{
					key,
					entry.Name,
					entry.License,
					strconv.Itoa(entry.Popularity),
					strconv.Itoa(len(entry.Variants)),
					strings.Join(entry.Tags, ", "),
				})
			}
			fmt.Fprintln(out)
			fmt.Fprintln(out, renderTable(
				[]string{"Key", "Name", "License", "Popularity", "Variants", "Tags"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignRight, alignLeft},
			))
			if truncated {
				fmt.Fprintf(out, "Showing %d of %d fonts (use --limit 0 for all)\n", len(keys), len(doc.Fonts))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&path, "path", "p", "", "Source file to read (defaults to output.path)")
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum fonts to list; 0 lists all")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Print as JSON")
	return cmd
}
