package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"outflow/internal/cli"
	"outflow/internal/format"
	"outflow/internal/ofximport"
)

func importCmd() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "import [files...]",
		Short: "Import expenses from OFX/QFX bank statements",
		Long: `Import debit transactions from OFX or QFX (Quicken) files exported
from your bank. Imported expenses land in the Other category; use
'outflow edit' to recategorize them.

Examples:
  outflow import ~/Downloads/checking_jan.qfx
  outflow import ~/Downloads/*.qfx --dry-run`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			// Expand globs and collect all files
			var allFiles []string
			for _, pattern := range args {
				matches, err := filepath.Glob(pattern)
				if err != nil {
					return fmt.Errorf("invalid pattern %s: %w", pattern, err)
				}
				if len(matches) == 0 {
					if _, err := os.Stat(pattern); err == nil {
						allFiles = append(allFiles, pattern)
					} else {
						slog.Warn("No files found matching pattern", "pattern", pattern)
					}
				} else {
					allFiles = append(allFiles, matches...)
				}
			}
			if len(allFiles) == 0 {
				return fmt.Errorf("no files found to import")
			}

			parser := ofximport.NewParser()
			seen := make(map[string]bool)
			var records []ofximport.Record

			for _, path := range allFiles {
				f, err := os.Open(path)
				if err != nil {
					slog.Error("Failed to open file", "file", path, "error", err)
					continue
				}

				parsed, err := parser.ParseFile(ctx, f)
				_ = f.Close()
				if err != nil {
					slog.Error("Failed to parse OFX file", "file", path, "error", err)
					continue
				}

				added := 0
				for _, rec := range parsed {
					// FITID dedupe across files in the same run
					if rec.FITID != "" && seen[rec.FITID] {
						continue
					}
					seen[rec.FITID] = true
					records = append(records, rec)
					added++
				}
				slog.Info("Parsed statement", "file", filepath.Base(path), "expenses", added)
			}

			if len(records) == 0 {
				fmt.Fprintln(out, cli.SubtleStyle.Render("No debit transactions found."))
				return nil
			}

			if dryRun {
				fmt.Fprintln(out, cli.FormatTitle(fmt.Sprintf("Would import %d expenses", len(records))))
				w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
				for _, rec := range records {
					fmt.Fprintf(w, "%s\t%s\t%s\n",
						format.Day(rec.Draft.Date),
						rec.Draft.Description,
						format.Currency(rec.Draft.Amount))
				}
				return w.Flush()
			}

			l, store, err := initLedger(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			bar := progressbar.Default(int64(len(records)), "importing")
			imported := 0
			for _, rec := range records {
				if _, err := l.Add(ctx, rec.Draft); err != nil {
					slog.Warn("Skipping invalid transaction", "fitid", rec.FITID, "error", err)
				} else {
					imported++
				}
				_ = bar.Add(1)
			}
			_ = bar.Finish()

			fmt.Fprintln(out, cli.FormatSuccess(fmt.Sprintf(
				"Imported %d expenses from %d files", imported, len(allFiles))))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&dryRun, "dry-run", "d", false, "preview import without saving")

	return cmd
}
