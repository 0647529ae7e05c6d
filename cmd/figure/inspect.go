package main

import (
	"os"

	"github.com/aretw0/figure"
	"github.com/aretw0/figure/pkg/render"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [file]",
	Short: "Inspect a JSON or YAML document and print its structure",
	Long:  `Inspect decodes the given document (or stdin) and prints the full inspection result in the chosen format.`,
	Args:  cobra.MaximumNArgs(1),
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

		node := figure.Inspect(value, name, opts)
		render.Print(os.Stdout, node, format)
		if node.Failed() {
			os.Exit(1)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
