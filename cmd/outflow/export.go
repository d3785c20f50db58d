package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"outflow/internal/cli"
	"outflow/internal/export"
	"outflow/internal/query"
)

func exportCmd() *cobra.Command {
	var (
		outputFlag   string
		categoryFlag string
		fromFlag     string
		toFlag       string
		searchFlag   string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export expenses to a CSV file",
		Long: `Export expenses to a CSV file. The same filter flags as 'list'
apply, and rows come out in display order (most recent first).

The default file name is expenses-<today>.csv in the current directory.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			filter, err := buildFilter(categoryFlag, fromFlag, toFlag, searchFlag)
			if err != nil {
				return err
			}

			l, store, err := initLedger(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			l.SetFilter(filter)
			visible := query.ApplyFilter(l.Records(), l.Filter())

			path := outputFlag
			if path == "" {
				path = export.Filename(timeNow())
			}

			if err := os.WriteFile(path, []byte(export.ToCSV(visible)), 0600); err != nil {
				return fmt.Errorf("failed to write export: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(fmt.Sprintf(
				"Exported %d expenses to %s", len(visible), path)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "output file (default expenses-<today>.csv)")
	cmd.Flags().StringVarP(&categoryFlag, "category", "c", "", "only this category")
	cmd.Flags().StringVar(&fromFlag, "from", "", "start date, inclusive (YYYY-MM-DD)")
	cmd.Flags().StringVar(&toFlag, "to", "", "end date, inclusive (YYYY-MM-DD)")
	cmd.Flags().StringVarP(&searchFlag, "search", "s", "", "case-insensitive search over description and category")

	return cmd
}
