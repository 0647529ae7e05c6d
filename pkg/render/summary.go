package render

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/aretw0/figure/pkg/inspect"
)

// Summary builds a short markdown analysis of an inspected value: its
// type plus the category-appropriate headline facts (length, keys,
// signature). It complements the detailed tree rather than replacing it.
func Summary(v any, n *inspect.Node) string {
	var b strings.Builder

	name := inspect.DefaultName
	if n != nil && n.Name != "" {
		name = n.Name
	}
	if n != nil && n.Failed() {
		name = n.VariableName
	}

	fmt.Fprintf(&b, "## Analysis of variable `%s`\n\n", name)

	if n != nil && n.Failed() {
		fmt.Fprintf(&b, "- **Error**: %s\n", n.Error)
		return b.String()
	}

	cat, info := inspect.Classify(v)
	fmt.Fprintf(&b, "- **Type**: %s (%s)\n", info.Name, info.Module)

	switch cat {
	case inspect.Primitive:
		fmt.Fprintf(&b, "- **Value**: %v\n", v)
	case inspect.Temporal:
		fmt.Fprintf(&b, "- **Value**: %v\n", v)
	case inspect.Sequence, inspect.TupleLike:
		rv := containerValue(v)
		fmt.Fprintf(&b, "- **Length**: %d\n", rv.Len())
		fmt.Fprintf(&b, "- **First elements**: %s\n", firstElements(rv))
	case inspect.SetLike:
		rv := containerValue(v)
		fmt.Fprintf(&b, "- **Length**: %d\n", rv.Len())
		fmt.Fprintf(&b, "- **First elements**: %s\n", firstKeys(rv))
	case inspect.Mapping:
		rv := containerValue(v)
		fmt.Fprintf(&b, "- **Keys**: %d\n", rv.Len())
		fmt.Fprintf(&b, "- **First keys**: %s\n", firstKeys(rv))
	case inspect.Callable:
		fmt.Fprintf(&b, "- **Signature**: %s\n", info.Signature)
	case inspect.DeferredLike:
		if n != nil && n.Deferred != nil {
			fmt.Fprintf(&b, "- **Deferred**: %s (%s)\n", n.Deferred.Kind, n.Deferred.Label)
		}
	case inspect.NamespaceLike:
		if n != nil {
			fmt.Fprintf(&b, "- **Members**: %d\n", len(n.Namespace))
		}
	case inspect.TypeObject:
		if n != nil {
			fmt.Fprintf(&b, "- **Members**: %d\n", len(n.TypeMembers))
		}
	case inspect.Object:
		if n != nil {
			fmt.Fprintf(&b, "- **Fields**: %d\n", len(n.Fields))
		}
	}

	if n != nil && n.Circular {
		b.WriteString("\n> Note: circular reference detected in the structure.\n")
	}

	return b.String()
}

const summaryElements = 5

func containerValue(v any) reflect.Value {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer && !rv.IsNil() {
		rv = rv.Elem()
	}
	return rv
}

func firstElements(rv reflect.Value) string {
	limit := rv.Len()
	if limit > summaryElements {
		limit = summaryElements
	}
	parts := make([]string, 0, limit)
	for i := 0; i < limit; i++ {
		parts = append(parts, fmt.Sprint(rv.Index(i).Interface()))
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func firstKeys(rv reflect.Value) string {
	keys := rv.MapKeys()
	if len(keys) > summaryElements {
		keys = keys[:summaryElements]
	}
	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		parts = append(parts, fmt.Sprint(key.Interface()))
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
