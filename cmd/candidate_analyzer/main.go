// Package main provides the entry point for the candidate analyzer CLI and API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "candidate_analyzer",
	Short: "Candidate portfolio analyzer",
	Long:  "Candidate analyzer scrapes portfolio websites, GitHub and social profiles, matches candidate skills against job requirements, and produces a scored qualification report.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
