package main

import (
	"fmt"

	"github.com/jacksmith/stores/internal/model"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new store",
	Long: `Add a store to the end of the catalog and save.

Repeat --phone to attach several numbers; they keep the order given.

Examples:
  stores add --name=Silpo --address="Kyiv Khreshchatyk 1" --specialization=Grocery --hours=24/7
  stores add --name=ATB --address=Dnipro --hours=8-23 --phone=380671234567 --phone=1234`,
	Args: cobra.NoArgs,
	RunE: runAdd,
}

var (
	addName           string
	addAddress        string
	addSpecialization string
	addHours          string
	addPhones         []string
)

func init() {
	addCmd.Flags().StringVar(&addName, "name", "", "store name (required)")
	addCmd.Flags().StringVar(&addAddress, "address", "", "address; the first word is used as the city")
	addCmd.Flags().StringVar(&addSpecialization, "specialization", "", "what the store sells")
	addCmd.Flags().StringVar(&addHours, "hours", "", `working hours, e.g. "9-18" or "24/7"`)
	addCmd.Flags().StringArrayVar(&addPhones, "phone", nil, "phone number (can be repeated)")
	addCmd.MarkFlagRequired("name")
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	st, res, err := openCatalog()
	if err != nil {
		return err
	}

	store := model.NewStore(addName, addAddress, addSpecialization, addHours)
	for _, p := range addPhones {
		store.AddPhone(p)
	}
	res.Catalog.Add(store)

	if err := st.Save(res.Catalog); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Store added.")
	return nil
}
