// Package main provides the entry point for the jobfit CLI and API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "jobfit",
	Short: "Job posting fit scorer",
	Long:  "jobfit scores job postings against a stored career profile, producing a 0-100 fit score with a per-criterion breakdown and a plain-language interpretation.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
