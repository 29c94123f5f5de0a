package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"timetable-optimizer/internal/catalog"
)

func init() {
	catalogCmd.AddCommand(catalogValidateCmd)
	rootCmd.AddCommand(catalogCmd)
}

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect lecture catalog CSV files",
}

var catalogValidateCmd = &cobra.Command{
	Use:   "validate PATH",
	Short: "Parse a lecture catalog CSV and report what would be loaded",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		store := catalog.Load(path)

		lectures := store.Lectures()
		if !store.Loaded() {
			return fmt.Errorf("%s did not yield any usable lecture rows", path)
		}

		fmt.Printf("%s: %d lectures loaded\n", path, len(lectures))
		for _, lec := range lectures {
			fmt.Printf("  %-16s %-24s credit=%.1f  %s\n", lec.ID, lec.Name, lec.Credit, lec.TimeRoom)
		}
		return nil
	},
}
