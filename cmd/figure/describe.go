package main

import (
	"os"

	"github.com/aretw0/figure"
	"github.com/spf13/cobra"
)

var describeCmd = &cobra.Command{
	Use:   "describe [file]",
	Short: "Inspect a document and print a summary alongside the structure",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := ""
		if len(args) == 1 {
			path = args[0]
		}

		value, err := loadValue(path)
		if err != nil {
			return err
		}

		opts, format, name, err := resolveOptions(cmd)
		if err != nil {
			return err
		}

		node := figure.Describe(os.Stdout, value, name, format, opts)
		if node.Failed() {
			os.Exit(1)
		}
		return nil
	},
	Args: cobra.MaximumNArgs(1),
}

func init() {
	rootCmd.AddCommand(describeCmd)
}
