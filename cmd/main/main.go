// Package main is the command line entry point for rendering, serving and
// deploying the chamber and career pathways sites.
package main

import (
	"fmt"
	"os"

	"chamber/sites/internal/config"
	"chamber/sites/internal/container"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:          "sites",
	Short:        "Chamber and career pathways site renderer",
	Long:         "Renders the chamber directory and career pathways pages from their HTML shells and JSON data, serves them, builds static snapshots and deploys them to S3.",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config.yaml (default ./config.yaml)")
}

// newContainer loads configuration and wires every component
func newContainer() (*container.Container, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	cfg.ApplyLogging()
	log.Info("Configuration loaded successfully")

	app, err := container.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize container: %w", err)
	}
	return app, nil
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
