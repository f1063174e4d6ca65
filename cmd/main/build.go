package main

import (
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var buildOutput string

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Render every page to the output directory",
	Long:  "Renders every page as a first-time visitor would see it and copies the remaining site files into the output directory.",
	RunE:  runBuild,
}

func init() {
	buildCmd.Flags().StringVarP(&buildOutput, "out", "o", "", "Output directory (overrides site.output)")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, _ []string) error {
	app, err := newContainer()
	if err != nil {
		return err
	}
	defer app.Close()

	if buildOutput != "" {
		app.Config.Site.Output = buildOutput
	}

	result, err := app.Builder().Build(cmd.Context(), time.Now())
	if err != nil {
		return err
	}
	log.Infof("Build finished: %d pages, %d assets", result.Pages, result.Assets)
	return nil
}
