package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/aretw0/figure/pkg/inspect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// variantNodes covers every node content variant, terminal markers
// included. Presenters must handle each without panicking.
func variantNodes() map[string]*inspect.Node {
	info := &inspect.TypeInfo{Name: "thing", Module: "example"}
	return map[string]*inspect.Node{
		"scalar":   {Name: "x", Type: info, Scalar: 42},
		"circular": {Name: "x", Circular: true},
		"truncated": {
			Name: "x", Truncated: true, TruncatedType: "map[string]any",
		},
		"mapping": {
			Name: "m", Type: info,
			Mapping: []inspect.MapEntry{
				{Key: `"a"`, Value: &inspect.Node{Name: `m["a"]`, Type: info, Scalar: 1}},
			},
		},
		"sequence": {
			Name: "xs", Type: info,
			Sequence: []*inspect.Node{{Name: "xs[0]", Type: info, Scalar: "v"}},
		},
		"namespace": {
			Name: "ns", Type: info,
			Namespace: []inspect.Member{{Name: "Exported", Type: *info}},
		},
		"type members": {
			Name: "t", Type: info,
			TypeMembers: []inspect.Member{{Name: "Field", Type: *info}},
		},
		"signature": {Name: "fn", Type: info, Signature: "func(int) error"},
		"deferred": {
			Name: "ch", Type: info,
			Deferred: &inspect.DeferredInfo{Kind: "pending", Label: "chan int"},
		},
		"fields": {
			Name: "obj", Type: info,
			Fields: []inspect.FieldEntry{
				{Name: "A", Value: &inspect.Node{Name: "A", Type: info, Scalar: true}},
			},
		},
		"null scalar": {Name: "x", Type: info, Scalar: inspect.Null{}},
		"opaque":      {Name: "z", Type: info, Opaque: "(1+2i)"},
		"custom": {Name: "c", Type: info, Scalar: 1, Custom: "rendered"},
		"error":  {Error: "boom", VariableName: "x"},
		"no type info": {Name: "x", Scalar: 1},
	}
}

func TestTextHandlesEveryVariant(t *testing.T) {
	for name, node := range variantNodes() {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			assert.NotPanics(t, func() { Text(&buf, node) })
		})
	}
}

func TestTreeHandlesEveryVariant(t *testing.T) {
	for name, node := range variantNodes() {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			assert.NotPanics(t, func() { Tree(&buf, node) })
		})
	}
}

func TestTextOutput(t *testing.T) {
	node := &inspect.Node{
		Name: "m",
		Type: &inspect.TypeInfo{Name: "map[string]int", Module: "builtin"},
		Mapping: []inspect.MapEntry{
			{Key: `"a"`, Value: &inspect.Node{
				Name:   `m["a"]`,
				Type:   &inspect.TypeInfo{Name: "int", Module: "builtin"},
				Scalar: 1,
			}},
		},
	}

	var buf bytes.Buffer
	Text(&buf, node)
	out := buf.String()

	assert.Contains(t, out, "m (map[string]int from builtin)")
	assert.Contains(t, out, `"a":`)
	assert.Contains(t, out, "Value: 1")
}

func TestTextMarkers(t *testing.T) {
	var buf bytes.Buffer
	Text(&buf, &inspect.Node{Name: "x", Circular: true})
	assert.Contains(t, buf.String(), "<circular reference>")

	buf.Reset()
	Text(&buf, &inspect.Node{Name: "x", Truncated: true, TruncatedType: "int"})
	assert.Contains(t, buf.String(), "<max depth reached>")
}

func TestTreeOutputIsPlainForNonTerminals(t *testing.T) {
	node := inspect.Inspect([]int{1, 2}, "xs", inspect.Options{})

	var buf bytes.Buffer
	Tree(&buf, node)
	out := buf.String()

	assert.Contains(t, out, "├─ xs")
	assert.Contains(t, out, "│  ├─ [0]:")
	assert.NotContains(t, out, "\x1b[", "buffer output must carry no ANSI escapes")
}

func TestNullScalarRenders(t *testing.T) {
	node := inspect.Inspect(nil, "nothing", inspect.Options{})

	var buf bytes.Buffer
	Text(&buf, node)
	assert.Contains(t, buf.String(), "Value: nil")

	out, err := JSON(node)
	require.NoError(t, err)
	assert.Contains(t, out, `"value": null`)

	out, err = YAML(node)
	require.NoError(t, err)
	assert.Contains(t, out, "value: null")
}

func TestJSONRoundTrip(t *testing.T) {
	node := inspect.Inspect(map[string]any{"a": []int{1, 2}}, "m", inspect.Options{})

	out, err := JSON(node)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, "m", decoded["name"])
	assert.NotNil(t, decoded["metadata"])
}

func TestYAMLSerialization(t *testing.T) {
	node := inspect.Inspect([]string{"a"}, "xs", inspect.Options{})

	out, err := YAML(node)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, "xs", decoded["name"])
}

func TestPrintDispatch(t *testing.T) {
	node := inspect.Inspect(1, "x", inspect.Options{})

	for _, format := range []string{FormatText, FormatTree, FormatJSON, FormatYAML} {
		var buf bytes.Buffer
		Print(&buf, node, format)
		assert.NotEmpty(t, buf.String(), "format %s produced no output", format)
	}
}

func TestPrintUnsupportedFormat(t *testing.T) {
	node := inspect.Inspect(1, "x", inspect.Options{})

	var buf bytes.Buffer
	Print(&buf, node, "xml")

	assert.Contains(t, buf.String(), "Unsupported output format: xml")
	assert.False(t, node.Failed(), "an unsupported format must not damage the node")
}

func TestSummary(t *testing.T) {
	t.Run("sequence", func(t *testing.T) {
		xs := []int{1, 2, 3, 4, 5, 6, 7}
		node := inspect.Inspect(xs, "xs", inspect.Options{})

		out := Summary(xs, node)
		assert.Contains(t, out, "`xs`")
		assert.Contains(t, out, "**Length**: 7")
		assert.Contains(t, out, "[1, 2, 3, 4, 5]")
	})

	t.Run("mapping", func(t *testing.T) {
		m := map[string]int{"a": 1}
		node := inspect.Inspect(m, "m", inspect.Options{})

		out := Summary(m, node)
		assert.Contains(t, out, "**Keys**: 1")
	})

	t.Run("primitive", func(t *testing.T) {
		node := inspect.Inspect(42, "x", inspect.Options{})
		out := Summary(42, node)
		assert.Contains(t, out, "**Value**: 42")
	})

	t.Run("callable", func(t *testing.T) {
		fn := func(int) error { return nil }
		node := inspect.Inspect(fn, "fn", inspect.Options{})
		out := Summary(fn, node)
		assert.Contains(t, out, "**Signature**: func(int) error")
	})

	t.Run("error result", func(t *testing.T) {
		node := &inspect.Node{Error: "boom", VariableName: "bad"}
		out := Summary(nil, node)
		assert.Contains(t, out, "`bad`")
		assert.Contains(t, out, "**Error**: boom")
		assert.False(t, strings.Contains(out, "**Type**"))
	})
}
