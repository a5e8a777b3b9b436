package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/dimitrije/critterdex-api/internal/models"
	"github.com/spf13/cobra"
)

const stampLayout = "2006-01-02 15:04"

func newCollectionCommand(ctx *commandContext) *cobra.Command {
	collectionCmd := &cobra.Command{
		Use:   "collection",
		Short: "Inspect and manage the persisted collection",
	}

	collectionCmd.AddCommand(newCollectionListCommand(ctx))
	collectionCmd.AddCommand(newCollectionStatsCommand(ctx))
	collectionCmd.AddCommand(newCollectionRemoveCommand(ctx))
	collectionCmd.AddCommand(newCollectionClearCommand(ctx))

	return collectionCmd
}

func newCollectionListCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List collected animals, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, closeFn, err := ctx.openCollection(cmd.Context(), false)
			if err != nil {
				return err
			}
			defer closeFn()

			printAnimals(cmd.OutOrStdout(), store.Snapshot())
			return nil
		},
	}
}

func printAnimals(out io.Writer, animals []models.CapturedAnimal) {
	if len(animals) == 0 {
		fmt.Fprintln(out, "Collection is empty")
		return
	}
	rows := make([][]string, 0, len(animals))
	for _, a := range animals {
		location := a.Location
		if location == "" {
			location = "-"
		}
		rows = append(rows, []string{
			a.ID,
			a.Name,
			string(a.Rarity),
			a.CapturedAt.Local().Format(stampLayout),
			location,
		})
	}
	fmt.Fprintln(out, renderTable(
		[]string{"ID", "Name", "Rarity", "Captured", "Location"},
		rows,
		nil,
	))
}

func newCollectionStatsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Summarize the collection",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, closeFn, err := ctx.openCollection(cmd.Context(), false)
			if err != nil {
				return err
			}
			defer closeFn()

			stats := store.Stats()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Total:   %d\n", stats.Total)
			fmt.Fprintf(out, "Species: %d\n", stats.UniqueKeys)
			fmt.Fprintf(out, "Types:   %d\n", stats.UniqueTypes)

			rows := make([][]string, 0, len(models.Rarities))
			for _, r := range models.Rarities {
				rows = append(rows, []string{string(r), strconv.Itoa(stats.ByRarity[r])})
			}
			fmt.Fprintln(out, renderTable([]string{"Rarity", "Count"}, rows, []columnAlignment{alignLeft, alignRight}))
			return nil
		},
	}
}

func newCollectionRemoveCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Release an animal from the collection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, closeFn, err := ctx.openCollection(cmd.Context(), true)
			if err != nil {
				return err
			}
			defer closeFn()

			id := args[0]
			animal, err := store.Get(id)
			if err != nil {
				return err
			}
			if err := store.Remove(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s (%s)\n", animal.Name, id)
			return nil
		},
	}
}

func newCollectionClearCommand(ctx *commandContext) *cobra.Command {
	var confirmed bool
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove every animal from the collection",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !confirmed {
				return errors.New("refusing to clear the collection without --yes")
			}
			store, closeFn, err := ctx.openCollection(cmd.Context(), true)
			if err != nil {
				return err
			}
			defer closeFn()

			count := len(store.Snapshot())
			if err := store.Clear(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Cleared %d animals\n", count)
			return nil
		},
	}
	cmd.Flags().BoolVar(&confirmed, "yes", false, "Confirm clearing the collection")
	return cmd
}
