package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/warehouse/config"
	"github.com/shashiranjanraj/warehouse/pkg/logger"

	// Migrations register themselves from init().
	_ "github.com/shashiranjanraj/warehouse/database/migrations"
)

var (
	configPath string
	envPath    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "warehouse",
	Short:         "Warehouse inventory service",
	Long:          "Serves the product, supplier and storage inventory API and manages its database.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultJSONPath, "path to app.json")
	rootCmd.PersistentFlags().StringVar(&envPath, "env-file", config.DefaultEnvPath, "path to .env")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(routeListCmd)

	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(migrateRollbackCmd)
	rootCmd.AddCommand(migrateStatusCmd)
	rootCmd.AddCommand(seedCmd)
}

// loadConfig reads configuration and configures the logger from it.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadFrom(configPath, envPath)
	if err != nil {
		return nil, err
	}
	logger.Setup(cfg.App.IsProduction(), cfg.App.LogLevel)
	return cfg, nil
}
