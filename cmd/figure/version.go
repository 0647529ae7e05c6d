package main

import (
	"fmt"

	"github.com/aretw0/figure"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of figure",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("figure version %s\n", figure.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
