package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"outflow/internal/cli"
	"outflow/internal/common"
	"outflow/internal/format"
	"outflow/internal/model"
)

func editCmd() *cobra.Command {
	var (
		amountFlag      string
		categoryFlag    string
		descriptionFlag string
		dateFlag        string
	)

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit an existing expense",
		Long: `Edit an existing expense. Only the flags you set change; the
record is then replaced whole, keyed by its identifier. Find
identifiers with 'outflow list --ids'.`,
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
				return common.NewUserError("no expense with id "+id, common.ErrNotFound)
			}

			if amountFlag != "" {
				amount, err := format.ParseAmount(amountFlag)
				if err != nil {
					return err
				}
				expense.Amount = amount
			}
			if categoryFlag != "" {
				category, err := model.ParseCategory(categoryFlag)
				if err != nil {
					return fmt.Errorf("%w (see 'outflow categories')", err)
				}
				expense.Category = category
			}
			if descriptionFlag != "" {
				expense.Description = descriptionFlag
			}
			if dateFlag != "" {
				date, err := model.ParseDate(dateFlag)
				if err != nil {
					return err
				}
				expense.Date = date
			}

			if err := l.Update(ctx, expense); err != nil {
				return renderValidation(cmd, err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(fmt.Sprintf(
				"Updated %s: %s, %s, %s",
				expense.ID,
				format.Currency(expense.Amount),
				expense.Category,
				format.Day(expense.Date),
			)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&amountFlag, "amount", "a", "", "new amount")
	cmd.Flags().StringVarP(&categoryFlag, "category", "c", "", "new category")
	cmd.Flags().StringVarP(&descriptionFlag, "description", "m", "", "new description")
	cmd.Flags().StringVarP(&dateFlag, "date", "d", "", "new date (YYYY-MM-DD)")

	return cmd
}
