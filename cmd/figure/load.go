package main

import (
	"fmt"
	"io"
	"os"

	"github.com/aretw0/figure/internal/cli"
	"github.com/aretw0/figure/pkg/inspect"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// loadValue reads a YAML or JSON document from a file, or from stdin when
// path is empty or "-", and decodes it into a generic value tree.
func loadValue(path string) (any, error) {
	var data []byte
	var err error

	if path == "" || path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	// YAML is a superset of JSON, so one decoder covers both.
	var value any
	if err := yaml.Unmarshal(data, &value); err != nil {
		return nil, fmt.Errorf("parse input: %w", err)
	}
	return value, nil
}

// resolveOptions merges the options file (when given) with flag
// overrides. Flags win over the file; the file's format wins over the
// flag default only when the flag was not set explicitly.
func resolveOptions(cmd *cobra.Command) (inspect.Options, string, string, error) {
	flags := cmd.Flags()

	var opts inspect.Options
	format, _ := flags.GetString("format")

	if configPath, _ := flags.GetString("config"); configPath != "" {
		fileOpts, fileFormat, err := cli.LoadOptions(configPath)
		if err != nil {
			return inspect.Options{}, "", "", err
		}
		opts = fileOpts
		if fileFormat != "" && !flags.Changed("format") {
			format = fileFormat
		}
	}

	if flags.Changed("sample-size") {
		opts.SampleSize, _ = flags.GetInt("sample-size")
	}
	if flags.Changed("include-reserved") {
		opts.IncludeReserved, _ = flags.GetBool("include-reserved")
	}
	if flags.Changed("depth") {
		limits, _ := flags.GetStringToInt("depth")
		opts.DepthLimits = make(map[inspect.Category]int, len(limits))
		for name, limit := range limits {
			cat, err := inspect.ParseCategory(name)
			if err != nil {
				return inspect.Options{}, "", "", err
			}
			opts.DepthLimits[cat] = limit
		}
	}

	name, _ := flags.GetString("name")
	return opts, format, name, nil
}
