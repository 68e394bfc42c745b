package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/draftdeck/draftdeck/internal/config"
	"github.com/draftdeck/draftdeck/internal/defra"
	"github.com/draftdeck/draftdeck/internal/home"
	"github.com/draftdeck/draftdeck/internal/server"
	"github.com/draftdeck/draftdeck/internal/server/endpoints"
)

var (
	serveHost string
	servePort string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the draftdeck server",
	Long: `Start the draftdeck HTTP server.

This starts both the HTTP API server and the DefraDB container.
When the server shuts down (via Ctrl+C or SIGTERM), DefraDB is also stopped.

Configuration is read from ~/.draftdeck/config.yaml (created on first run)
and hot-reloaded when the file changes. Provider credentials use
${ENV_VAR} references resolved from the environment or a .env file.

Examples:
  draftdeck serve                    # Start on default port 8080
  draftdeck serve --port 3000        # Start on custom port
  draftdeck serve --host 0.0.0.0     # Bind to all interfaces`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		// Set up logger
		logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))

		// Get home directory
		h, err := home.New(homeDir)
		if err != nil {
			return err
		}
		if err := h.EnsureExists(); err != nil {
			return err
		}

		// Write a default config on first run
		if cfgFile == "" && !h.ConfigExists() {
			if err := config.WriteDefault(h.ConfigPath()); err != nil {
				return err
			}
			logger.Info("wrote default config", "path", h.ConfigPath())
		}

		// Load config with hot reload
		cfgMgr, err := config.NewManager(cfgFile)
		if err != nil {
			return err
		}
		cfgMgr.WatchConfig()

		// Ensure defradb data directory exists
		defraDataPath := h.DefraDataPath()
		if err := os.MkdirAll(defraDataPath, 0755); err != nil {
			return err
		}

		defraCfg := cfgMgr.Get().Defra

		// Create server
		srv, err := server.New(server.Config{
			Host:          serveHost,
			Port:          servePort,
			DefraDataPath: defraDataPath,
			DefraConfig: defra.DockerConfig{
				ContainerName: defraCfg.ContainerName,
				Image:         defraCfg.Image,
				HostPort:      defraCfg.Port,
			},
			ConfigManager:   cfgMgr,
			SwaggerSpecPath: endpoints.GetSwaggerSpecPath(),
			Logger:          logger,
		})
		if err != nil {
			return err
		}

		// Start server (blocks until shutdown)
		return srv.Start(ctx)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveHost, "host", "127.0.0.1", "Host to bind to")
	serveCmd.Flags().StringVar(&servePort, "port", "8080", "Port to listen on")

	rootCmd.AddCommand(serveCmd)
}
