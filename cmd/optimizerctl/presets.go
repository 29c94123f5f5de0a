package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"timetable-optimizer/config"
)

func init() {
	presetsCmd.AddCommand(presetsListCmd)
	rootCmd.AddCommand(presetsCmd)
}

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "Inspect named weight presets",
}

var presetsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the presets available from presets.toml",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("file")
		if err := config.LoadPresets(path); err != nil {
			return err
		}

		if len(config.Presets) == 0 {
			fmt.Println("no presets loaded")
			return nil
		}

		for name, prefs := range config.Presets {
			fmt.Printf("%-16s target_credits=%.1f max_candidates=%d total_reads=%d\n",
				name, prefs.TargetCredits, prefs.MaxCandidates, prefs.TotalReads)
		}
		return nil
	},
}

func init() {
	presetsListCmd.Flags().String("file", config.PresetsPath, "path to presets.toml")
}
