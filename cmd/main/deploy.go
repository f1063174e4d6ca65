package main

import (
	"time"

	"github.com/spf13/cobra"
)

var (
	deployBucket string
	deploySkip   bool
)

var deployCmd = &cobra.Command{
	Use:   "deploy",
	Short: "Build the sites and upload the output directory to S3",
	RunE:  runDeploy,
}

func init() {
	deployCmd.Flags().StringVarP(&deployBucket, "bucket", "b", "", "S3 bucket (overrides deploy.bucket)")
	deployCmd.Flags().BoolVar(&deploySkip, "skip-build", false, "Upload the existing output directory without rebuilding")
	rootCmd.AddCommand(deployCmd)
}

func runDeploy(cmd *cobra.Command, _ []string) error {
	app, err := newContainer()
	if err != nil {
		return err
	}
	defer app.Close()

	if !deploySkip {
		if _, err := app.Builder().Build(cmd.Context(), time.Now()); err != nil {
			return err
		}
	}

	deployer, err := app.Deployer(cmd.Context(), deployBucket)
	if err != nil {
		return err
	}
	_, err = deployer.Deploy(cmd.Context(), app.Fs, app.Config.Site.Output)
	return err
}
