package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCatalogCommand(ctx *commandContext) *cobra.Command {
	catalogCmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect the species catalog",
	}
	catalogCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List every species the identifier can return",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := ctx.catalog()
			if err != nil {
				return err
			}

			species := cat.ListAll()
			rows := make([][]string, 0, len(species))
			for _, s := range species {
				rows = append(rows, []string{s.Key, s.Name, string(s.Type), string(s.Rarity), s.ScientificName})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Key", "Name", "Type", "Rarity", "Scientific name"},
				rows,
				nil,
			))
			fmt.Fprintf(cmd.OutOrStdout(), "%d species\n", len(species))
			return nil
		},
	})
	return catalogCmd
}
