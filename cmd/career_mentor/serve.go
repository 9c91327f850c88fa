package main

import (
	"fmt"

	"github.com/jonathan/career-mentor/internal/config"
	"github.com/jonathan/career-mentor/internal/server"
	"github.com/spf13/cobra"
)

var (
	servePort     int
	serveProvider string
	serveModel    string
	serveConfig   string
	serveAPIKey   string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server with the web UI",
	Long:  `Start an HTTP server that exposes the career mentor JSON API and serves the embedded web UI at /.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default 8080)")
	serveCmd.Flags().StringVar(&serveProvider, "provider", "", "LLM provider: gemini or openai (default gemini)")
	serveCmd.Flags().StringVar(&serveModel, "model", "", "Override the default model for the provider")
	serveCmd.Flags().StringVar(&serveConfig, "config", "", "Path to JSON config file")
	serveCmd.Flags().StringVar(&serveAPIKey, "api-key", "", "Seed the session API key (overrides env var)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	fileCfg, err := loadFileConfig(serveConfig)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Flags win over the config file; the config file wins over defaults
	merged := config.Config{
		Provider: serveProvider,
		Model:    serveModel,
		APIKey:   serveAPIKey,
		Port:     servePort,
	}
	merged = merged.MergeWithDefaults(fileCfg)
	merged = merged.MergeWithDefaults(config.Config{Provider: "gemini", Port: 8080})

	// The key is optional at startup: users can store one at runtime
	// through the UI or PUT /v1/session/key.
	apiKey := resolveAPIKey(merged.APIKey, merged.Provider)

	srv, err := server.New(server.Config{
		Port:     merged.Port,
		Provider: merged.Provider,
		Model:    merged.Model,
		APIKey:   apiKey,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
