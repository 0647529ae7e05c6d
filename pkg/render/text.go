package render

import (
	"fmt"
	"io"

	"github.com/aretw0/figure/pkg/inspect"
)

// Text writes the result tree as indented plain text.
func Text(w io.Writer, n *inspect.Node) {
	writeText(w, n, "")
}

func writeText(w io.Writer, n *inspect.Node, indent string) {
	if n == nil {
		return
	}
	fmt.Fprintf(w, "%s%s (%s from %s)\n", indent, n.Name, typeLabel(n), moduleLabel(n))

	if n.Circular {
		fmt.Fprintf(w, "%s  <circular reference>\n", indent)
		return
	}
	if n.Truncated {
		fmt.Fprintf(w, "%s  <max depth reached>\n", indent)
		return
	}

	if n.Scalar != nil {
		fmt.Fprintf(w, "%s  Value: %v\n", indent, n.Scalar)
	}
	for _, entry := range n.Mapping {
		fmt.Fprintf(w, "%s  %s:\n", indent, entry.Key)
		writeText(w, entry.Value, indent+"    ")
	}
	for i, item := range n.Sequence {
		fmt.Fprintf(w, "%s  [%d]:\n", indent, i)
		writeText(w, item, indent+"    ")
	}
	if len(n.Namespace) > 0 {
		fmt.Fprintf(w, "%s  Namespace contents:\n", indent)
		for _, m := range n.Namespace {
			fmt.Fprintf(w, "%s    %s: %s\n", indent, m.Name, m.Type.Name)
		}
	}
	if len(n.TypeMembers) > 0 {
		fmt.Fprintf(w, "%s  Type contents:\n", indent)
		for _, m := range n.TypeMembers {
			fmt.Fprintf(w, "%s    %s: %s\n", indent, m.Name, m.Type.Name)
		}
	}
	if n.Signature != "" {
		fmt.Fprintf(w, "%s  Signature: %s\n", indent, n.Signature)
	}
	if n.Deferred != nil {
		fmt.Fprintf(w, "%s  Deferred: %s (%s)\n", indent, n.Deferred.Kind, n.Deferred.Label)
	}
	for _, field := range n.Fields {
		fmt.Fprintf(w, "%s  %s:\n", indent, field.Name)
		writeText(w, field.Value, indent+"    ")
	}
	if n.Opaque != "" {
		fmt.Fprintf(w, "%s  Repr: %s\n", indent, n.Opaque)
	}
	if n.Custom != nil {
		fmt.Fprintf(w, "%s  Custom rendering: %v\n", indent, n.Custom)
	}
	if n.Error != "" {
		fmt.Fprintf(w, "%s  Error: %s\n", indent, n.Error)
	}
}

func typeLabel(n *inspect.Node) string {
	if n.Type == nil || n.Type.Name == "" {
		return "unknown type"
	}
	return n.Type.Name
}

func moduleLabel(n *inspect.Node) string {
	if n.Type == nil || n.Type.Module == "" {
		return "unknown module"
	}
	return n.Type.Module
}
