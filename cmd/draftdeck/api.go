package main

import (
	"github.com/spf13/cobra"

	"github.com/draftdeck/draftdeck/internal/server/endpoints"
)

var serverURL string

var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "Commands that call the running server",
	Long: `API commands call the running draftdeck server via HTTP.

These commands require a running server (draftdeck serve).
Use --server to specify a custom server URL.

Examples:
  draftdeck api health                       # Check server health
  draftdeck api posts generate -p "..."      # Generate drafts from a prompt
  draftdeck api posts pending                # List pending drafts
  draftdeck api posts approve <id>           # Publish an approved draft
  draftdeck api prompts latest               # Show the latest prompt`,
}

var postsCmd = &cobra.Command{
	Use:   "posts",
	Short: "Post draft commands",
}

var promptsCmd = &cobra.Command{
	Use:   "prompts",
	Short: "Prompt log commands",
}

// getServerURL returns the server URL at runtime (after flag parsing).
func getServerURL() string {
	return serverURL
}

func init() {
	// Add --server flag to api command (persistent so all subcommands inherit it)
	apiCmd.PersistentFlags().StringVar(
		&serverURL, "server", "http://localhost:8080", "Server URL",
	)

	// Health endpoints at top level of api
	apiCmd.AddCommand((&endpoints.HealthEndpoint{}).Command(getServerURL))
	apiCmd.AddCommand((&endpoints.ReadyEndpoint{}).Command(getServerURL))
	apiCmd.AddCommand((&endpoints.StatusEndpoint{}).Command(getServerURL))
	apiCmd.AddCommand((&endpoints.SwaggerEndpoint{}).Command(getServerURL))

	// Posts as subcommand group
	for _, ep := range endpoints.PostCommands() {
		postsCmd.AddCommand(ep.Command(getServerURL))
	}

	// Prompts as subcommand group
	for _, ep := range endpoints.PromptCommands() {
		promptsCmd.AddCommand(ep.Command(getServerURL))
	}

	apiCmd.AddCommand(postsCmd)
	apiCmd.AddCommand(promptsCmd)
	rootCmd.AddCommand(apiCmd)
}
