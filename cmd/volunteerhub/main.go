package main

import (
	"os"

	"github.com/spf13/cobra"

	"volunteerhub/internal/interfaces/cli/migrate"
	"volunteerhub/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "volunteerhub",
		Short: "VolunteerHub - volunteer coordination service",
		Long:  `VolunteerHub runs the volunteer coordination API: events, enrollment and announcements.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
