// Package main provides the entry point for the roster reconciler CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "roster_agent",
	Short: "Student hardship roster reconciliation",
	Long:  "Roster Reconciler joins a master student roster against independently formatted hardship category spreadsheets and reports which students appear in which categories.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
