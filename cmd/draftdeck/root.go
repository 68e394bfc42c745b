package main

import (
	"github.com/spf13/cobra"

	"github.com/draftdeck/draftdeck/internal/api"
	"github.com/draftdeck/draftdeck/version"
)

var (
	cfgFile      string
	homeDir      string
	outputFormat string
)

var rootCmd = &cobra.Command{
	Use:   "draftdeck",
	Short: "Generate, review, and publish social media post drafts",
	Long: `draftdeck turns a single prompt into a batch of social media post
drafts, classified by platform, and publishes the ones you approve.

The workflow:
  - Generate drafts from a prompt (short posts go to Twitter/X, long
    posts to LinkedIn)
  - Review pending drafts, edit content where needed
  - Approve a draft to publish it to its platform
  - Prompts are logged so the good ones can be reused and refined`,
	Version: version.GitRelease,
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default: ./config.yaml or ~/.draftdeck/config.yaml)",
	)
	rootCmd.PersistentFlags().StringVar(
		&homeDir, "home", "", "draftdeck home directory (default: ~/.draftdeck)",
	)
	rootCmd.PersistentFlags().StringVarP(
		&outputFormat, "output", "o", "yaml", "output format: yaml or json",
	)

	// Set output format before any command runs
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		api.SetOutputFormat(outputFormat)
	}

	rootCmd.AddCommand(versionCmd)
}
