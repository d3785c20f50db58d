package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"outflow/internal/cli"
	"outflow/internal/format"
	"outflow/internal/query"
)

func statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show spending statistics",
		Long: `Show spending statistics over the whole collection: total and
current-month spending, record count, and a per-category breakdown.
Stats ignore list filters.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			l, store, err := initLedger(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			stats := query.ComputeStats(l.Records(), timeNow())
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, cli.FormatTitle("Spending"))
			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "Total\t%s\n", cli.AmountStyle.Render(format.Currency(stats.TotalSpending)))
			fmt.Fprintf(w, "This month\t%s\n", cli.AmountStyle.Render(format.Currency(stats.MonthSpending)))
			fmt.Fprintf(w, "Expenses\t%d\n", stats.Count)
			if stats.TopCategory != "" {
				fmt.Fprintf(w, "Top category\t%s\n", stats.TopCategory)
			} else {
				fmt.Fprintf(w, "Top category\t%s\n", cli.SubtleStyle.Render("none"))
			}
			if err := w.Flush(); err != nil {
				return err
			}

			if len(stats.CategoryOrder) == 0 {
				return nil
			}

			fmt.Fprintln(out)
			fmt.Fprintln(out, cli.FormatTitle("By category"))
			w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			for _, c := range stats.CategoryOrder {
				share := query.CategoryShare(stats, c)
				fmt.Fprintf(w, "%s\t%s\t%s\n",
					c,
					format.Currency(stats.CategoryTotals[c]),
					cli.SubtleStyle.Render(share.StringFixed(1)+"%"))
			}
			return w.Flush()
		},
	}
}
