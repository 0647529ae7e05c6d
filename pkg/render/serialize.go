package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/aretw0/figure/pkg/inspect"
	"gopkg.in/yaml.v3"
)

// Supported output format identifiers.
const (
	FormatText = "text"
	FormatTree = "tree"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// JSON serializes the result tree as indented JSON.
func JSON(n *inspect.Node) (string, error) {
	data, err := json.MarshalIndent(n, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal inspection result: %w", err)
	}
	return string(data), nil
}

// YAML serializes the result tree as YAML.
func YAML(n *inspect.Node) (string, error) {
	data, err := yaml.Marshal(n)
	if err != nil {
		return "", fmt.Errorf("marshal inspection result: %w", err)
	}
	return string(data), nil
}

// Print writes the result tree to w in the requested format. An unknown
// format is reported as a plain message on w; the node is left untouched
// either way.
func Print(w io.Writer, n *inspect.Node, format string) {
	switch format {
	case FormatText:
		Text(w, n)
	case FormatTree:
		Tree(w, n)
	case FormatJSON:
		s, err := JSON(n)
		if err != nil {
			fmt.Fprintf(w, "Serialization error: %v\n", err)
			return
		}
		fmt.Fprintln(w, s)
	case FormatYAML:
		s, err := YAML(n)
		if err != nil {
			fmt.Fprintf(w, "Serialization error: %v\n", err)
			return
		}
		fmt.Fprint(w, s)
	default:
		fmt.Fprintf(w, "Unsupported output format: %s\n", format)
	}
}
