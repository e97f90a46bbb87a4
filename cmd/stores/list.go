package main

import (
	"fmt"

	"github.com/jacksmith/stores/internal/cli"
	"github.com/jacksmith/stores/internal/ops"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stores",
	Long: `List every store in the catalog as a table.

Use --sort to order the listing by name, city (the first word of the
address) or specialization. Any unique prefix of the key works. Sorting
here only affects the output; the file keeps its order.

Examples:
  stores list
  stores list --sort=city
  stores list -s spec`,
	Args: cobra.NoArgs,
	RunE: runList,
}

var listSort string

func init() {
	listCmd.Flags().StringVarP(&listSort, "sort", "s", "", "sort by name, city or specialization")
	listCmd.RegisterFlagCompletionFunc("sort", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return sortKeyNames(), cobra.ShellCompDirectiveNoFileComp
	})
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	_, res, err := openCatalog()
	if err != nil {
		return err
	}
	c := res.Catalog

	if listSort != "" {
		key, err := resolveSortKey(listSort)
		if err != nil {
			return err
		}
		if err := ops.Sort(c, key); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	if c.Len() == 0 {
		fmt.Fprintln(out, "No stores.")
		return nil
	}
	cli.RenderStoreTable(out, c.Stores())
	return nil
}

func sortKeyNames() []string {
	names := make([]string, len(ops.SortKeys))
	for i, k := range ops.SortKeys {
		names[i] = string(k)
	}
	return names
}

// resolveSortKey matches a full or abbreviated sort key.
func resolveSortKey(input string) (ops.SortKey, error) {
	name, err := cli.MatchChoice(input, sortKeyNames())
	if err != nil {
		return "", err
	}
	return ops.SortKey(name), nil
}
