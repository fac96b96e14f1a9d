package main

import (
	"os"

	"github.com/Miegu/Space-Architects/internal/observability"
	"github.com/Miegu/Space-Architects/internal/server"
	"github.com/spf13/cobra"
)

func main() {
	var catalogPath string

	rootCmd := &cobra.Command{
		Use:   "habplanner",
		Short: "Space habitat layout validation and compliance scoring engine",
	}
	rootCmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "path to a room catalog YAML (defaults to the built-in catalog)")

	rootCmd.AddCommand(validateCmd(&catalogPath))
	rootCmd.AddCommand(scoreCmd(&catalogPath))
	rootCmd.AddCommand(roomsCmd(&catalogPath))
	rootCmd.AddCommand(serveCmd(&catalogPath))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func validateCmd(catalogPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [project-path]",
		Short: "Validate a habitat scenario against the room catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runValidate(*catalogPath, args[0])
		},
	}
}

func scoreCmd(catalogPath *string) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "score [project-path]",
		Short: "Score a habitat layout and print recommendations",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runScore(*catalogPath, args[0], jsonOut)
		},
	}
	cmd.Flags().BoolVar(&jsonOut, "json", false, "emit the full report as JSON")
	return cmd
}

func roomsCmd(catalogPath *string) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "rooms",
		Short: "List the room types in the catalog",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runRooms(*catalogPath, jsonOut)
		},
	}
	cmd.Flags().BoolVar(&jsonOut, "json", false, "emit the catalog as JSON")
	return cmd
}

func serveCmd(catalogPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the configurator HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			cat, err := loadCatalog(*catalogPath)
			if err != nil {
				return err
			}

			cfg := server.LoadConfig()
			server.SetupLogging(cfg)

			metrics, err := observability.NewCollector(nil)
			if err != nil {
				return err
			}
			return server.New(cfg, cat, metrics).Start()
		},
	}
}
