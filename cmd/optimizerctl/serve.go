package main

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"timetable-optimizer/internal/app"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the optimizer HTTP server in the foreground",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := app.Run(); err != nil {
			log.Error().Err(err).Msg("server exited with error")
			return err
		}
		return nil
	},
}
