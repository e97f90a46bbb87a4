package main

import (
	"fmt"

	"github.com/jacksmith/stores/internal/cli"
	"github.com/jacksmith/stores/internal/ops"
	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search <keyword>",
	Short: "Search stores by keyword",
	Long: `Search for stores by keyword.

Performs a case-insensitive substring search in:
- Store names
- Addresses
- Specializations

An empty keyword ("") lists every store.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	keyword := args[0]

	_, res, err := openCatalog()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	results := ops.Search(res.Catalog, keyword)
	if len(results) == 0 {
		fmt.Fprintln(out, cli.Yellow((&cli.NotFoundError{Type: "store", ID: keyword}).Error()))
		return nil
	}
	cli.RenderStoreTable(out, results)
	return nil
}
