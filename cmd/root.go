package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "petgen [command]",
	Short: "Cymbal Pets demo dataset generator: synthesize retail data, load to warehouse",
	Long: `Generates a fake but internally consistent retail dataset for the fictional
Cymbal Pets pet-supply business (products, stores, suppliers, customers, employees,
orders, order items, pet profiles, support cases) and publishes it as newline-delimited
JSON snapshots plus a truncate-and-load into Postgres warehouse tables.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		panic(err)
	}
}
