/*
Package figure is a runtime value inspector: it turns an arbitrary
in-memory value into a structured, serializable snapshot of its type,
shape and contents, suitable for debugging or logging.

The traversal is bounded in three ways: per-category depth limits, cycle
detection along the current path, and uniform sampling of oversized
containers. Inspection never mutates the value, never invokes callables or
thunks, and never receives from channels.

# Usage

	package main

	import (
		"os"

		"github.com/aretw0/figure"
		"github.com/aretw0/figure/pkg/inspect"
		"github.com/aretw0/figure/pkg/render"
	)

	func main() {
		value := map[string]any{
			"a": 1,
			"b": []int{2, 3, 4},
			"c": map[string]int{"d": 5},
		}

		node := figure.Inspect(value, "example_var", inspect.Options{})
		render.Print(os.Stdout, node, render.FormatTree)
	}

A fault during traversal never panics through Inspect: the returned node
carries an Error field instead, and the fault is logged once through the
configured slog logger.

Custom renderers augment how values of a specific runtime type appear:

	figure.RegisterRendererFor(MyType{}, func(v any) any {
		return v.(MyType).ShortString()
	})

The renderer output is attached alongside the node's structural content,
not instead of it.
*/
package figure
