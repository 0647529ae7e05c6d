// Package cli holds the shared plumbing for the figure command tree:
// loading inspection options from a config file and merging flag
// overrides.
package cli

import (
	"fmt"
	"os"

	"github.com/aretw0/figure/pkg/inspect"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// OptionsFile is the on-disk shape of an inspection config. It uses
// "mapstructure" tags so the generic YAML document decodes into it.
type OptionsFile struct {
	// DepthLimits maps category names ("mapping", "sequence", "tuple_like",
	// "set_like", ...) to recursion limits.
	DepthLimits     map[string]int `json:"depth_limits" mapstructure:"depth_limits"`
	IncludeReserved bool           `json:"include_reserved" mapstructure:"include_reserved"`
	SampleSize      int            `json:"sample_size" mapstructure:"sample_size"`

	// Format is the default presenter ("text", "tree", "json", "yaml").
	Format string `json:"format" mapstructure:"format"`
}

// LoadOptions reads an options file and converts it into engine options
// plus the configured output format ("" when the file does not set one).
func LoadOptions(path string) (inspect.Options, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return inspect.Options{}, "", fmt.Errorf("read options file: %w", err)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return inspect.Options{}, "", fmt.Errorf("parse options file: %w", err)
	}

	var file OptionsFile
	if err := mapstructure.Decode(raw, &file); err != nil {
		return inspect.Options{}, "", fmt.Errorf("decode options file: %w", err)
	}

	opts, err := file.ToOptions()
	if err != nil {
		return inspect.Options{}, "", err
	}
	return opts, file.Format, nil
}

// ToOptions converts the file shape into engine options, validating
// category names.
func (f OptionsFile) ToOptions() (inspect.Options, error) {
	opts := inspect.Options{
		IncludeReserved: f.IncludeReserved,
		SampleSize:      f.SampleSize,
	}

	if f.DepthLimits != nil {
		opts.DepthLimits = make(map[inspect.Category]int, len(f.DepthLimits))
		for name, limit := range f.DepthLimits {
			cat, err := inspect.ParseCategory(name)
			if err != nil {
				return inspect.Options{}, fmt.Errorf("depth_limits: %w", err)
			}
			opts.DepthLimits[cat] = limit
		}
	}

	return opts, nil
}
