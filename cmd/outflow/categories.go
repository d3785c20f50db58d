package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"outflow/internal/model"
)

func categoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the expense categories",
		Long:  `List the fixed set of categories an expense can belong to.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, c := range model.Categories() {
				fmt.Fprintln(cmd.OutOrStdout(), c)
			}
			return nil
		},
	}
}
