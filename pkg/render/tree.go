package render

import (
	"fmt"
	"io"
	"os"

	"github.com/aretw0/figure/pkg/inspect"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// treeStyle colors the tree presentation. The zero value renders plain
// text, which is what non-terminal writers get.
type treeStyle struct {
	profile termenv.Profile
}

func styleFor(w io.Writer) treeStyle {
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return treeStyle{profile: termenv.EnvColorProfile()}
	}
	return treeStyle{profile: termenv.Ascii}
}

func (s treeStyle) typ(text string) string {
	return termenv.String(text).Foreground(s.profile.Color("#818cf8")).String()
}

func (s treeStyle) marker(text string) string {
	return termenv.String(text).Foreground(s.profile.Color("#fb7185")).String()
}

// Tree writes the result tree with box-drawing connectors, colored when w
// is a terminal.
func Tree(w io.Writer, n *inspect.Node) {
	writeTree(w, n, "", styleFor(w))
}

func writeTree(w io.Writer, n *inspect.Node, indent string, style treeStyle) {
	if n == nil {
		return
	}
	fmt.Fprintf(w, "%s├─ %s (%s)\n", indent, n.Name, style.typ(typeLabel(n)))

	if n.Circular {
		fmt.Fprintf(w, "%s│  └─ %s\n", indent, style.marker("<circular reference>"))
		return
	}
	if n.Truncated {
		fmt.Fprintf(w, "%s│  └─ %s\n", indent, style.marker("<max depth reached>"))
		return
	}

	if n.Scalar != nil {
		fmt.Fprintf(w, "%s│  └─ Value: %v\n", indent, n.Scalar)
	}
	for _, entry := range n.Mapping {
		fmt.Fprintf(w, "%s│  ├─ %s:\n", indent, entry.Key)
		writeTree(w, entry.Value, indent+"│  │  ", style)
	}
	for i, item := range n.Sequence {
		fmt.Fprintf(w, "%s│  ├─ [%d]:\n", indent, i)
		writeTree(w, item, indent+"│  │  ", style)
	}
	if len(n.Namespace) > 0 {
		fmt.Fprintf(w, "%s│  └─ Namespace contents:\n", indent)
		for _, m := range n.Namespace {
			fmt.Fprintf(w, "%s│     └─ %s: %s\n", indent, m.Name, m.Type.Name)
		}
	}
	if len(n.TypeMembers) > 0 {
		fmt.Fprintf(w, "%s│  └─ Type contents:\n", indent)
		for _, m := range n.TypeMembers {
			fmt.Fprintf(w, "%s│     └─ %s: %s\n", indent, m.Name, m.Type.Name)
		}
	}
	if n.Signature != "" {
		fmt.Fprintf(w, "%s│  └─ Signature: %s\n", indent, n.Signature)
	}
	if n.Deferred != nil {
		fmt.Fprintf(w, "%s│  └─ Deferred: %s (%s)\n", indent, n.Deferred.Kind, n.Deferred.Label)
	}
	if len(n.Fields) > 0 {
		fmt.Fprintf(w, "%s│  └─ Attributes:\n", indent)
		for _, field := range n.Fields {
			writeTree(w, field.Value, indent+"│     ", style)
		}
	}
	if n.Opaque != "" {
		fmt.Fprintf(w, "%s│  └─ Repr: %s\n", indent, n.Opaque)
	}
	if n.Custom != nil {
		fmt.Fprintf(w, "%s│  └─ Custom rendering: %v\n", indent, n.Custom)
	}
	if n.Error != "" {
		fmt.Fprintf(w, "%s│  └─ %s\n", indent, style.marker("Error: "+n.Error))
	}
}
