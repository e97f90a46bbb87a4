package main

import (
	"fmt"

	"github.com/jacksmith/stores/internal/cli"
	"github.com/jacksmith/stores/internal/ops"
	"github.com/spf13/cobra"
)

var specificCmd = &cobra.Command{
	Use:   "specific",
	Short: "Find stores open 24/7 with short and Ukrainian phone numbers",
	Long: `List stores that meet all of these conditions:
- working hours are "24/7" (any case)
- at least one phone number is shorter than 5 characters
- at least one phone number starts with 380`,
	Args: cobra.NoArgs,
	RunE: runSpecific,
}

func init() {
	rootCmd.AddCommand(specificCmd)
}

func runSpecific(cmd *cobra.Command, args []string) error {
	_, res, err := openCatalog()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	results := ops.Specific(res.Catalog)
	if len(results) == 0 {
		fmt.Fprintln(out, cli.Yellow("No stores match all conditions."))
		return nil
	}
	cli.RenderStoreTable(out, results)
	return nil
}
