package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"outflow/internal/cli"
	"outflow/internal/format"
	"outflow/internal/model"
)

func addCmd() *cobra.Command {
	var (
		amountFlag      string
		categoryFlag    string
		descriptionFlag string
		dateFlag        string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a new expense",
		Long: `Record a new expense.

Examples:
  outflow add --amount 12.50 --category Food --description "Lunch"
  outflow add -a 89.99 -c Bills -m "Internet" -d 2024-02-01`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			draft, err := buildDraft(amountFlag, categoryFlag, descriptionFlag, dateFlag)
			if err != nil {
				return err
			}

			l, store, err := initLedger(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			expense, err := l.Add(ctx, draft)
			if err != nil {
				return renderValidation(cmd, err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(fmt.Sprintf(
				"Recorded %s for %s (%s, %s)",
				format.Currency(expense.Amount),
				expense.Description,
				expense.Category,
				format.Day(expense.Date),
			)))
			fmt.Fprintln(cmd.OutOrStdout(), cli.SubtleStyle.Render("id: "+expense.ID))
			return nil
		},
	}

	cmd.Flags().StringVarP(&amountFlag, "amount", "a", "", "amount spent, e.g. 12.50")
	cmd.Flags().StringVarP(&categoryFlag, "category", "c", "", "category (see 'outflow categories')")
	cmd.Flags().StringVarP(&descriptionFlag, "description", "m", "", "what the money went to")
	cmd.Flags().StringVarP(&dateFlag, "date", "d", "", "date (YYYY-MM-DD, default today)")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("category")
	_ = cmd.MarkFlagRequired("description")

	return cmd
}

// buildDraft converts raw flag values into a draft. Parse failures on
// amount, category, and date surface here; the remaining invariants are
// checked by the ledger's validation.
func buildDraft(amount, category, description, date string) (model.Draft, error) {
	var draft model.Draft

	if amount != "" {
		parsed, err := format.ParseAmount(amount)
		if err != nil {
			return draft, err
		}
		draft.Amount = parsed
	}

	if category != "" {
		parsed, err := model.ParseCategory(category)
		if err != nil {
			return draft, fmt.Errorf("%w (see 'outflow categories')", err)
		}
		draft.Category = parsed
	}

	draft.Description = description

	if date == "" {
		draft.Date = model.DateOf(timeNow())
	} else {
		parsed, err := model.ParseDate(date)
		if err != nil {
			return draft, err
		}
		draft.Date = parsed
	}

	return draft, nil
}

// renderValidation prints field-level validation messages and returns a
// terse error so the process exits non-zero without repeating them.
func renderValidation(cmd *cobra.Command, err error) error {
	var verrs model.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	for _, fe := range verrs {
		fmt.Fprintln(cmd.ErrOrStderr(), cli.FormatError(fe.Field+": "+fe.Message))
	}
	return errors.New("expense not saved")
}
