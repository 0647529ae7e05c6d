package inspect

import (
	"math/rand"
	"reflect"
	"testing"
	"time"

	"github.com/aretw0/figure/internal/logging"
	"github.com/aretw0/figure/pkg/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInspectScalarPassthrough(t *testing.T) {
	node := Inspect(42, "x", Options{})

	require.False(t, node.Failed())
	assert.Equal(t, "x", node.Name)
	assert.EqualValues(t, 42, node.Scalar)
	assert.Empty(t, node.Mapping)
	assert.Empty(t, node.Sequence)
	assert.Empty(t, node.Fields)
	require.NotNil(t, node.Type)
	assert.Equal(t, "int", node.Type.Name)
}

func TestInspectDefaultName(t *testing.T) {
	node := Inspect("hello", "", Options{})
	assert.Equal(t, DefaultName, node.Name)
}

func TestInspectTemporalNormalization(t *testing.T) {
	ts := time.Date(2024, 6, 1, 12, 30, 0, 0, time.UTC)
	node := Inspect(ts, "when", Options{})

	require.False(t, node.Failed())
	assert.Equal(t, ts.Format(time.RFC3339Nano), node.Scalar)
}

func TestInspectMetadataStampedOnRoot(t *testing.T) {
	node := Inspect([]int{1, 2}, "xs", Options{})

	require.NotNil(t, node.Meta)
	assert.NotEmpty(t, node.Meta.Timestamp)
	assert.NotEmpty(t, node.Meta.GoVersion)
	assert.NotEmpty(t, node.Meta.Platform)

	// Children are never stamped.
	require.Len(t, node.Sequence, 2)
	assert.Nil(t, node.Sequence[0].Meta)
}

func TestInspectMappingNaming(t *testing.T) {
	node := Inspect(map[string]int{"a": 1}, "m", Options{})

	require.Len(t, node.Mapping, 1)
	entry := node.Mapping[0]
	assert.Equal(t, `"a"`, entry.Key)
	assert.Equal(t, `m["a"]`, entry.Value.Name)
	assert.EqualValues(t, 1, entry.Value.Scalar)
}

func TestInspectSequenceNaming(t *testing.T) {
	node := Inspect([]string{"a", "b"}, "xs", Options{})

	require.Len(t, node.Sequence, 2)
	assert.Equal(t, "xs[0]", node.Sequence[0].Name)
	assert.Equal(t, "xs[1]", node.Sequence[1].Name)
}

func TestInspectSetLike(t *testing.T) {
	set := map[string]struct{}{"a": {}, "b": {}}
	node := Inspect(set, "set", Options{})

	// Set members surface as sequence content over the keys.
	assert.Empty(t, node.Mapping)
	require.Len(t, node.Sequence, 2)
	values := []any{node.Sequence[0].Scalar, node.Sequence[1].Scalar}
	assert.ElementsMatch(t, []any{"a", "b"}, values)
}

func TestInspectCycleSafety(t *testing.T) {
	m := map[string]any{}
	m["self"] = m

	node := Inspect(m, "m", Options{})

	require.False(t, node.Failed())
	require.Len(t, node.Mapping, 1)
	child := node.Mapping[0].Value
	assert.True(t, child.Circular)
	assert.Nil(t, child.Type)
	assert.Empty(t, child.Mapping)
}

type linked struct {
	Label string
	Next  *linked
}

func TestInspectCycleSafetyThroughPointers(t *testing.T) {
	a := &linked{Label: "a"}
	b := &linked{Label: "b", Next: a}
	a.Next = b

	node := Inspect(a, "ring", Options{})

	require.False(t, node.Failed())
	// ring -> Next (b) -> Next (a again) must terminate in a marker.
	require.Len(t, node.Fields, 2)
	next := node.Fields[1].Value
	require.Len(t, next.Fields, 2)
	assert.True(t, next.Fields[1].Value.Circular)
}

func TestInspectSharedSubstructureIsNotCircular(t *testing.T) {
	shared := []int{1, 2}
	v := []any{shared, shared}

	node := Inspect(v, "v", Options{})

	require.Len(t, node.Sequence, 2)
	for _, child := range node.Sequence {
		assert.False(t, child.Circular, "path-scoped detection must allow siblings to share values")
		assert.Len(t, child.Sequence, 2)
	}
}

func TestInspectDepthTruncation(t *testing.T) {
	nested := map[string]any{}
	current := nested
	for i := 0; i < 4; i++ {
		next := map[string]any{}
		current["k"] = next
		current = next
	}
	current["k"] = "leaf"

	node := Inspect(nested, "deep", Options{
		DepthLimits: map[Category]int{Mapping: 2},
	})

	require.False(t, node.Failed())

	// Depth 1 and 2 expand, depth 3 is a marker with no content.
	level1 := node.Mapping[0].Value
	require.Len(t, level1.Mapping, 1)
	level2 := level1.Mapping[0].Value
	require.Len(t, level2.Mapping, 1)
	level3 := level2.Mapping[0].Value
	assert.True(t, level3.Truncated)
	assert.NotEmpty(t, level3.TruncatedType)
	assert.Empty(t, level3.Mapping)
	assert.Empty(t, level3.Sequence)
}

func TestInspectSamplingBound(t *testing.T) {
	xs := make([]int, 1000)
	for i := range xs {
		xs[i] = i
	}

	node := Inspect(xs, "xs", Options{
		SampleSize: 10,
		Rand:       rand.New(rand.NewSource(1)),
	})

	require.Len(t, node.Sequence, 10)
	// Sampled nodes are renamed by sample position, not source index.
	assert.Equal(t, "xs[0]", node.Sequence[0].Name)
	assert.Equal(t, "xs[9]", node.Sequence[9].Name)
}

func TestInspectMappingSamplingBound(t *testing.T) {
	m := make(map[int]int, 1000)
	for i := 0; i < 1000; i++ {
		m[i] = i
	}

	node := Inspect(m, "m", Options{
		SampleSize: 10,
		Rand:       rand.New(rand.NewSource(1)),
	})

	require.False(t, node.Failed())
	assert.Len(t, node.Mapping, 10)
}

func TestInspectSetSamplingBound(t *testing.T) {
	set := make(map[int]struct{}, 1000)
	for i := 0; i < 1000; i++ {
		set[i] = struct{}{}
	}

	node := Inspect(set, "set", Options{
		SampleSize: 10,
		Rand:       rand.New(rand.NewSource(1)),
	})

	require.False(t, node.Failed())
	assert.Len(t, node.Sequence, 10)
	assert.Empty(t, node.Mapping)
}

func TestInspectSamplingIsSeedable(t *testing.T) {
	xs := make([]int, 500)
	for i := range xs {
		xs[i] = i
	}

	first := Inspect(xs, "xs", Options{SampleSize: 5, Rand: rand.New(rand.NewSource(7))})
	second := Inspect(xs, "xs", Options{SampleSize: 5, Rand: rand.New(rand.NewSource(7))})

	require.Len(t, first.Sequence, 5)
	for i := range first.Sequence {
		assert.Equal(t, first.Sequence[i].Scalar, second.Sequence[i].Scalar)
	}
}

type withHidden struct {
	Value  int
	hidden int
}

func TestInspectReservedNameFiltering(t *testing.T) {
	v := withHidden{Value: 1, hidden: 2}

	node := Inspect(v, "obj", Options{})
	require.Len(t, node.Fields, 1)
	assert.Equal(t, "Value", node.Fields[0].Name)

	node = Inspect(v, "obj", Options{IncludeReserved: true})
	require.Len(t, node.Fields, 2)
	assert.Equal(t, "hidden", node.Fields[1].Name)
	assert.EqualValues(t, 2, node.Fields[1].Value.Scalar)
}

func TestInspectCallable(t *testing.T) {
	fn := func(a int, b string) error { return nil }
	node := Inspect(fn, "fn", Options{})

	assert.Equal(t, "func(int, string) error", node.Signature)
}

func TestInspectDeferredChannel(t *testing.T) {
	ch := make(chan int)
	node := Inspect(ch, "ch", Options{})

	require.NotNil(t, node.Deferred)
	assert.Equal(t, "pending", node.Deferred.Kind)
	assert.Equal(t, "chan int", node.Deferred.Label)
}

func TestInspectDeferredThunk(t *testing.T) {
	thunk := func() int { return 1 }
	node := Inspect(thunk, "thunk", Options{})

	require.NotNil(t, node.Deferred)
	assert.Equal(t, "factory", node.Deferred.Kind)
	assert.NotEmpty(t, node.Deferred.Label)
	assert.Empty(t, node.Signature)
}

func TestInspectNeverReceivesFromChannel(t *testing.T) {
	ch := make(chan int, 1)
	ch <- 42

	done := make(chan struct{})
	go func() {
		Inspect(ch, "ch", Options{})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("inspection blocked on a channel")
	}
	assert.Len(t, ch, 1, "inspection must not drain the channel")
}

type testNamespace struct{}

func (testNamespace) NamespaceName() string { return "testns" }

func (testNamespace) NamespaceMembers() map[string]any {
	return map[string]any{
		"Exported": 1,
		"_hidden":  2,
	}
}

func TestInspectNamespace(t *testing.T) {
	node := Inspect(testNamespace{}, "ns", Options{})

	require.Len(t, node.Namespace, 1)
	assert.Equal(t, "Exported", node.Namespace[0].Name)
	assert.Equal(t, "int", node.Namespace[0].Type.Name)
	require.NotNil(t, node.Type)
	assert.Equal(t, "testns", node.Type.Module, "the declared namespace name must be surfaced")

	node = Inspect(testNamespace{}, "ns", Options{IncludeReserved: true})
	assert.Len(t, node.Namespace, 2)
}

func TestInspectTypeObject(t *testing.T) {
	type sample struct {
		A int
		b string
	}
	node := Inspect(reflect.TypeOf(sample{}), "t", Options{})

	require.Len(t, node.TypeMembers, 1)
	assert.Equal(t, "A", node.TypeMembers[0].Name)
	assert.Empty(t, node.Fields, "type objects are enumerated shallowly")
}

func TestInspectOpaqueFallback(t *testing.T) {
	node := Inspect(complex(1, 2), "z", Options{})

	assert.NotEmpty(t, node.Opaque)
	assert.Nil(t, node.Scalar)
}

type temperature struct {
	Celsius float64
}

func TestInspectCustomRendererOverlay(t *testing.T) {
	reg := registry.New()
	reg.RegisterFor(temperature{}, func(v any) any {
		return v.(temperature).Celsius
	})

	node := Inspect(temperature{Celsius: 21.5}, "temp", Options{Renderers: reg})

	assert.Equal(t, 21.5, node.Custom)
	// The overlay does not replace the structural content.
	require.Len(t, node.Fields, 1)
	assert.Equal(t, "Celsius", node.Fields[0].Name)
}

func TestInspectRendererExactTypeMatch(t *testing.T) {
	reg := registry.New()
	reg.RegisterFor(temperature{}, func(v any) any { return "rendered" })

	// A pointer to the registered type must not match.
	node := Inspect(&temperature{Celsius: 1}, "temp", Options{Renderers: reg})
	assert.Nil(t, node.Custom)
}

func TestInspectErrorContainment(t *testing.T) {
	reg := registry.New()
	reg.RegisterFor(temperature{}, func(v any) any {
		panic("renderer exploded")
	})

	node := Inspect(temperature{}, "temp", Options{
		Renderers: reg,
		Logger:    logging.NewNop(),
	})

	require.True(t, node.Failed())
	assert.Contains(t, node.Error, "temp")
	assert.Contains(t, node.Error, "renderer exploded")
	assert.Equal(t, "temp", node.VariableName)
	assert.Nil(t, node.Meta, "failed inspections carry no metadata")
}

func TestInspectNil(t *testing.T) {
	node := Inspect(nil, "nothing", Options{})

	require.False(t, node.Failed())
	require.NotNil(t, node.Type)
	assert.Equal(t, "nil", node.Type.Name)
	assert.Equal(t, Null{}, node.Scalar)
}

func TestInspectNilPointer(t *testing.T) {
	var p *int
	node := Inspect(p, "p", Options{})

	require.False(t, node.Failed())
	assert.Equal(t, Null{}, node.Scalar)
	assert.Empty(t, node.Fields)
}

func TestDynamicDepthLimit(t *testing.T) {
	tests := []struct {
		size int
		want int
	}{
		{0, 7},
		{99, 7},
		{100, 6},
		{300, 4},
		{600, 1},
		{10000, 1},
	}

	for _, tt := range tests {
		if got := dynamicDepthLimit(tt.size); got != tt.want {
			t.Errorf("dynamicDepthLimit(%d) = %d, want %d", tt.size, got, tt.want)
		}
	}
}

func TestInspectTermination(t *testing.T) {
	// A wide, deep but finite structure terminates within its limits.
	v := map[string]any{
		"xs": []any{1, "two", 3.0, true, nil},
		"m":  map[string]any{"inner": []int{1, 2, 3}},
		"t":  time.Now(),
	}

	node := Inspect(v, "v", Options{})
	require.False(t, node.Failed())
	assert.Len(t, node.Mapping, 3)
}
