package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var driverFlag string
	var keyFlag string

	ctx := newCommandContext(&driverFlag, &keyFlag)

	rootCmd := &cobra.Command{
		Use:           "critterdex-admin",
		Short:         "Inspect and maintain the critterdex collection",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVar(&driverFlag, "driver", "", "Storage driver (postgres, sqlite, file, memory); defaults to STORAGE_DRIVER")
	rootCmd.PersistentFlags().StringVar(&keyFlag, "key", "", "Collection record key; defaults to COLLECTION_KEY")

	rootCmd.AddCommand(newCatalogCommand(ctx))
	rootCmd.AddCommand(newCollectionCommand(ctx))

	return rootCmd
}
