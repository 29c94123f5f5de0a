// Command optimizerctl is the operator CLI for the timetable optimizer
// server: start it in the foreground, validate a catalog CSV without
// starting a server, or list the named weight presets available to
// /api/optimize callers.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "optimizerctl",
	Short: "Operate the timetable optimizer server",
}
