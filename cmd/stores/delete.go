package main

import (
	"fmt"

	"github.com/jacksmith/stores/internal/cli"
	"github.com/jacksmith/stores/internal/ops"
	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete stores by name",
	Long: `Delete every store whose name matches, ignoring case, and save.

No match is not an error and leaves the file untouched.

Examples:
  stores delete Silpo
  stores delete "corner shop"`,
	Args: cobra.ExactArgs(1),
	RunE: runDelete,
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}

func runDelete(cmd *cobra.Command, args []string) error {
	name := args[0]

	st, res, err := openCatalog()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	removed := ops.DeleteByName(res.Catalog, name)
	if removed == 0 {
		fmt.Fprintln(out, cli.Yellow((&cli.NotFoundError{Type: "store", ID: name}).Error()))
		return nil
	}

	if err := st.Save(res.Catalog); err != nil {
		return err
	}
	fmt.Fprintf(out, "Deleted %d store(s) named %q.\n", removed, name)
	return nil
}
