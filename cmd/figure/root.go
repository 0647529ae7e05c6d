package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "figure",
	Short: "figure is a runtime value inspector",
	Long:  `figure inspects structured values (JSON or YAML documents) and prints a bounded, cycle-safe description of their type, shape and contents.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("format", "text", "Output format: text, tree, json or yaml")
	rootCmd.PersistentFlags().String("name", "", "Name to report for the inspected value")
	rootCmd.PersistentFlags().String("config", "", "Path to an inspection options file (YAML)")
	rootCmd.PersistentFlags().Int("sample-size", 0, "Maximum elements inspected per container before sampling")
	rootCmd.PersistentFlags().Bool("include-reserved", false, "Include unexported and underscore-prefixed members")
	rootCmd.PersistentFlags().StringToInt("depth", nil, "Per-category depth limit, e.g. --depth mapping=2")
}
