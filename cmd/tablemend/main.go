// Package main provides the entry point for the tablemend CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tablemend",
	Short: "Constraint violation detection and repair generation for tables",
	Long:  "tablemend checks a table instance against its declared per-column constraints (primary key, unique, not null, foreign key, type) and enumerates minimal-change candidate repairs for the violations it finds.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
