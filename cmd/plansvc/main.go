package main

import (
	"os"

	"github.com/spf13/cobra"

	"plansvc/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "plansvc",
		Short: "Subscription plan service",
		Long:  `HTTP service managing tiered subscription plans and their description features.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
