package figure

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"reflect"

	"github.com/aretw0/figure/internal/presentation/tui"
	"github.com/aretw0/figure/pkg/inspect"
	"github.com/aretw0/figure/pkg/registry"
	"github.com/aretw0/figure/pkg/render"
	"golang.org/x/term"
)

// Inspect walks a value and returns its result tree. See pkg/inspect for
// the traversal semantics; this is the library-level entry point.
func Inspect(v any, name string, opts inspect.Options) *inspect.Node {
	return inspect.Inspect(v, name, opts)
}

// RegisterRenderer registers a custom renderer for exactly the given
// runtime type on the shared default registry. Inject a caller-owned
// registry.Registry through Options.Renderers to avoid process-wide state.
func RegisterRenderer(t reflect.Type, fn registry.RenderFunc) {
	registry.Default().Register(t, fn)
}

// RegisterRendererFor registers a renderer for the runtime type of the
// given specimen value.
func RegisterRendererFor(specimen any, fn registry.RenderFunc) {
	registry.Default().RegisterFor(specimen, fn)
}

// Describe inspects a value and prints a report to w: a short analysis of
// the value, the detailed structure in the requested format, and the
// inspection metadata. It returns the result tree so callers can keep
// working with it.
func Describe(w io.Writer, v any, name string, format string, opts inspect.Options) *inspect.Node {
	if w == nil {
		w = os.Stdout
	}
	if format == "" {
		format = render.FormatText
	}

	node := Inspect(v, name, opts)

	summary := render.Summary(v, node)
	if isTerminal(w) {
		if rendered, err := tui.NewRenderer()(summary); err == nil {
			summary = rendered
		}
	}
	fmt.Fprint(w, summary)
	fmt.Fprintln(w)

	if node.Failed() {
		fmt.Fprintln(w, node.Error)
		return node
	}

	fmt.Fprintln(w, "Detailed inspection result:")
	render.Print(w, node, format)

	if node.Meta != nil {
		meta, err := json.MarshalIndent(node.Meta, "", "  ")
		if err == nil {
			fmt.Fprintln(w, "\nMetadata:")
			fmt.Fprintln(w, string(meta))
		}
	}

	return node
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
