package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"outflow/internal/cli"
	"outflow/internal/format"
	"outflow/internal/model"
	"outflow/internal/query"
)

func listCmd() *cobra.Command {
	var (
		categoryFlag string
		fromFlag     string
		toFlag       string
		searchFlag   string
		idsFlag      bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List expenses, most recent first",
		Long: `List expenses, most recent first. Filters combine: every flag you
set narrows the result further.

Examples:
  outflow list
  outflow list --category Food
  outflow list --from 2024-02-01 --to 2024-02-29
  outflow list --search grocer`,
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

			out := cmd.OutOrStdout()
			if len(visible) == 0 {
				if len(l.Records()) == 0 {
					fmt.Fprintln(out, cli.SubtleStyle.Render("No expenses yet. Record one with 'outflow add'."))
				} else {
					fmt.Fprintln(out, cli.SubtleStyle.Render("No expenses match the current filters."))
				}
				return nil
			}

			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			if idsFlag {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					cli.HeaderStyle.Render("ID"),
					cli.HeaderStyle.Render("Date"),
					cli.HeaderStyle.Render("Category"),
					cli.HeaderStyle.Render("Description"),
					cli.HeaderStyle.Render("Amount"))
				for _, e := range visible {
					fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
						e.ID, format.Day(e.Date), e.Category, e.Description,
						format.Currency(e.Amount))
				}
			} else {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
					cli.HeaderStyle.Render("Date"),
					cli.HeaderStyle.Render("Category"),
					cli.HeaderStyle.Render("Description"),
					cli.HeaderStyle.Render("Amount"))
				for _, e := range visible {
					fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
						format.Day(e.Date), e.Category, e.Description,
						format.Currency(e.Amount))
				}
			}
			if err := w.Flush(); err != nil {
				return err
			}

			fmt.Fprintln(out, cli.SubtleStyle.Render(
				fmt.Sprintf("%d of %d expenses shown", len(visible), len(l.Records()))))
			return nil
		},
	}

	cmd.Flags().StringVarP(&categoryFlag, "category", "c", "", "only this category")
	cmd.Flags().StringVar(&fromFlag, "from", "", "start date, inclusive (YYYY-MM-DD)")
	cmd.Flags().StringVar(&toFlag, "to", "", "end date, inclusive (YYYY-MM-DD)")
	cmd.Flags().StringVarP(&searchFlag, "search", "s", "", "case-insensitive search over description and category")
	cmd.Flags().BoolVar(&idsFlag, "ids", false, "include record identifiers (for edit/delete)")

	return cmd
}

// buildFilter converts raw flag values into filter criteria. Unset
// flags put no constraint on their dimension.
func buildFilter(category, from, to, search string) (model.Filter, error) {
	var f model.Filter

	if category != "" {
		parsed, err := model.ParseCategory(category)
		if err != nil {
			return f, fmt.Errorf("%w (see 'outflow categories')", err)
		}
		f.Category = &parsed
	}

	if from != "" {
		parsed, err := model.ParseDate(from)
		if err != nil {
			return f, err
		}
		f.Start = &parsed
	}

	if to != "" {
		parsed, err := model.ParseDate(to)
		if err != nil {
			return f, err
		}
		f.End = &parsed
	}

	f.Search = search
	return f, nil
}
