// Package main provides the entry point for the AI Career Mentor.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "career_mentor",
	Short: "AI Career Mentor",
	Long:  "AI Career Mentor suggests career paths and generates interview questions using a hosted LLM, via an HTTP server with a web UI or one-shot CLI commands.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
