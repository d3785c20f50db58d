package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"outflow/internal/cli"
	"outflow/internal/format"
)

func deleteCmd() *cobra.Command {
	var yesFlag bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an expense",
		Long: `Delete the expense with the given identifier. Deleting an unknown
identifier is not an error, so re-running a delete is safe.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id := args[0]

			l, store, err := initLedger(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			expense, ok := l.Get(id)
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), cli.SubtleStyle.Render(
					"No expense with id "+id+"; nothing to do."))
				return nil
			}

			if !yesFlag {
				prompt := fmt.Sprintf("Delete %s for %s (%s)?",
					format.Currency(expense.Amount), expense.Description, format.Day(expense.Date))
				if !cli.Confirm(cmd.InOrStdin(), cmd.OutOrStdout(), prompt) {
					fmt.Fprintln(cmd.OutOrStdout(), cli.SubtleStyle.Render("Kept."))
					return nil
				}
			}

			l.Remove(ctx, id)
			fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess("Deleted "+id))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yesFlag, "yes", "y", false, "skip the confirmation prompt")

	return cmd
}
