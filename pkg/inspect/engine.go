package inspect

import (
	"fmt"
	"math/rand"
	"reflect"
	"runtime"
	"sort"
	"strconv"
	"time"
)

// Inspector walks arbitrary values and produces bounded, cycle-safe
// result trees. It is safe for concurrent use as long as the renderer
// registry is not mutated mid-traversal.
type Inspector struct {
	opts Options
}

// New creates an Inspector with resolved options.
func New(opts Options) *Inspector {
	return &Inspector{opts: opts.withDefaults()}
}

// Inspect is a convenience for a one-off traversal with the given options.
func Inspect(v any, name string, opts Options) *Node {
	return New(opts).Inspect(v, name)
}

// Inspect walks v and returns its result tree. Traversal never panics
// through this boundary: any fault while building the tree is logged once
// and converted into a node whose Error field is set. On success the root
// carries the inspection metadata.
func (in *Inspector) Inspect(v any, name string) *Node {
	if name == "" {
		name = DefaultName
	}

	node := in.run(v, name)
	if !node.Failed() {
		meta := Stamp()
		node.Meta = &meta
	}
	return node
}

// run executes the traversal inside the failure boundary.
func (in *Inspector) run(v any, name string) (node *Node) {
	defer func() {
		if r := recover(); r != nil {
			msg := fmt.Sprintf("error occurred while inspecting %s: %v", name, r)
			in.opts.Logger.Error("inspection failed", "variable", name, "err", r)
			node = &Node{Error: msg, VariableName: name}
		}
	}()

	w := &walker{
		opts: in.opts,
		seen: make(map[identity]struct{}),
	}
	return w.walk(reflect.ValueOf(v), name, 0)
}

// identity names a reference value for cycle detection. Only values that
// can alias an ancestor (pointers, maps, slices, channels) are tracked.
type identity struct {
	addr uintptr
	typ  reflect.Type
}

type walker struct {
	opts Options
	seen map[identity]struct{}
}

// walk builds the node for one value. The seen set is path-scoped: an
// entry is removed when the subtree below it has been built, so shared
// acyclic substructure is inspected at every position it is reachable
// from, while true ancestor cycles terminate in a circular marker.
func (w *walker) walk(rv reflect.Value, name string, depth int) *Node {
	if id, ok := identityOf(rv); ok {
		if _, onPath := w.seen[id]; onPath {
			return &Node{Name: name, Circular: true}
		}
		w.seen[id] = struct{}{}
		defer delete(w.seen, id)
	}

	cat, elem, info := classify(rv)

	if depth > w.depthLimit(cat, elem) {
		return &Node{Name: name, Truncated: true, TruncatedType: info.Name}
	}

	node := &Node{Name: name, Type: &info}
	w.applyRenderer(node, rv)

	switch cat {
	case Mapping:
		w.walkMapping(node, elem, name, depth)
	case Sequence, TupleLike:
		w.walkSequence(node, elem, name, depth)
	case SetLike:
		w.walkSet(node, elem, name, depth)
	case NamespaceLike:
		node.Namespace = namespaceMembers(elem, w.opts.IncludeReserved)
	case TypeObject:
		node.TypeMembers = typeMembers(elem.Interface().(reflect.Type), w.opts.IncludeReserved)
	case Callable:
		node.Signature = info.Signature
	case DeferredLike:
		node.Deferred = deferredInfo(elem)
	case Object:
		w.walkObject(node, elem, depth)
	case Primitive:
		node.Scalar = scalarOf(elem)
	case Temporal:
		node.Scalar = temporalString(elem)
	case OpaqueValue:
		node.Opaque = safeRepr(elem)
	}

	return node
}

// depthLimit resolves the effective recursion limit for a value: the
// configured per-category limit when one exists, otherwise a dynamic limit
// that shrinks with container size, otherwise a fixed 5.
func (w *walker) depthLimit(cat Category, elem reflect.Value) int {
	if limit, ok := w.opts.DepthLimits[cat]; ok {
		return limit
	}
	switch cat {
	case Mapping, Sequence, TupleLike, SetLike:
		return dynamicDepthLimit(elem.Len())
	default:
		return 5
	}
}

// dynamicDepthLimit trades depth for breadth: clamp(7 - size/100, 1, 10).
func dynamicDepthLimit(size int) int {
	limit := 7 - size/100
	if limit < 1 {
		return 1
	}
	if limit > 10 {
		return 10
	}
	return limit
}

// applyRenderer attaches the output of a registered custom renderer, if
// one matches the value's exact dynamic type.
func (w *walker) applyRenderer(node *Node, rv reflect.Value) {
	for rv.Kind() == reflect.Interface && !rv.IsNil() {
		rv = rv.Elem()
	}
	if !rv.IsValid() || !rv.CanInterface() {
		return
	}
	if fn := w.opts.Renderers.Lookup(rv.Type()); fn != nil {
		node.Custom = fn(rv.Interface())
	}
}

func (w *walker) walkMapping(node *Node, m reflect.Value, name string, depth int) {
	keys := m.MapKeys()
	keys = w.sample(keys)

	node.Mapping = make([]MapEntry, 0, len(keys))
	for _, key := range keys {
		keyRepr := safeRepr(key)
		child := w.walk(m.MapIndex(key), name+"["+keyRepr+"]", depth+1)
		node.Mapping = append(node.Mapping, MapEntry{Key: keyRepr, Value: child})
	}
}

func (w *walker) walkSequence(node *Node, seq reflect.Value, name string, depth int) {
	n := seq.Len()
	if n <= w.opts.SampleSize {
		node.Sequence = make([]*Node, 0, n)
		for i := 0; i < n; i++ {
			node.Sequence = append(node.Sequence, w.walk(seq.Index(i), indexed(name, i), depth+1))
		}
		return
	}

	idxs := w.perm(n)[:w.opts.SampleSize]
	node.Sequence = make([]*Node, 0, len(idxs))
	for i, idx := range idxs {
		node.Sequence = append(node.Sequence, w.walk(seq.Index(idx), indexed(name, i), depth+1))
	}
}

// walkSet inspects the members of a set-like map. Members are the keys;
// the struct{} values carry no information.
func (w *walker) walkSet(node *Node, set reflect.Value, name string, depth int) {
	keys := w.sample(set.MapKeys())

	node.Sequence = make([]*Node, 0, len(keys))
	for i, key := range keys {
		node.Sequence = append(node.Sequence, w.walk(key, indexed(name, i), depth+1))
	}
}

func (w *walker) walkObject(node *Node, obj reflect.Value, depth int) {
	t := obj.Type()
	node.Fields = make([]FieldEntry, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !w.includeField(field) {
			continue
		}
		child := w.walk(obj.Field(i), field.Name, depth+1)
		node.Fields = append(node.Fields, FieldEntry{Name: field.Name, Value: child})
	}
}

func (w *walker) includeField(field reflect.StructField) bool {
	return field.IsExported() || w.opts.IncludeReserved
}

// sample reduces an oversized element set to exactly SampleSize elements,
// chosen uniformly without replacement. Sampled-out elements are omitted
// silently.
func (w *walker) sample(elems []reflect.Value) []reflect.Value {
	if len(elems) <= w.opts.SampleSize {
		return elems
	}
	sampled := make([]reflect.Value, 0, w.opts.SampleSize)
	for _, idx := range w.perm(len(elems))[:w.opts.SampleSize] {
		sampled = append(sampled, elems[idx])
	}
	return sampled
}

func (w *walker) perm(n int) []int {
	if w.opts.Rand != nil {
		return w.opts.Rand.Perm(n)
	}
	return rand.Perm(n)
}

func indexed(name string, i int) string {
	return name + "[" + strconv.Itoa(i) + "]"
}

// identityOf returns the cycle-detection key for a value. Non-reference
// values cannot alias an ancestor and report ok=false.
func identityOf(rv reflect.Value) (identity, bool) {
	for rv.Kind() == reflect.Interface && !rv.IsNil() {
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.UnsafePointer:
		if rv.IsNil() {
			return identity{}, false
		}
		return identity{addr: rv.Pointer(), typ: rv.Type()}, true
	default:
		return identity{}, false
	}
}

// scalarOf extracts a primitive through the reflect kind accessors, which
// work for unexported fields too.
func scalarOf(rv reflect.Value) any {
	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint()
	case reflect.Float32, reflect.Float64:
		return rv.Float()
	case reflect.String:
		return rv.String()
	default:
		// nil pointers, nil interfaces and invalid values.
		return Null{}
	}
}

func temporalString(rv reflect.Value) string {
	if !rv.CanInterface() {
		return safeRepr(rv)
	}
	return rv.Interface().(time.Time).Format(time.RFC3339Nano)
}

// deferredInfo describes a unit of work without touching it: channels are
// never received from and thunks are never invoked.
func deferredInfo(rv reflect.Value) *DeferredInfo {
	if rv.Kind() == reflect.Chan {
		return &DeferredInfo{Kind: "pending", Label: rv.Type().String()}
	}

	label := "unnamed"
	if !rv.IsNil() {
		if fn := runtime.FuncForPC(rv.Pointer()); fn != nil && fn.Name() != "" {
			label = fn.Name()
		}
	}
	return &DeferredInfo{Kind: "factory", Label: label}
}

// namespaceMembers enumerates a Namespace shallowly: member names and type
// info only, no recursion into member values.
func namespaceMembers(rv reflect.Value, includeReserved bool) []Member {
	ns := rv.Interface().(Namespace)
	contents := ns.NamespaceMembers()

	members := make([]Member, 0, len(contents))
	for name, v := range contents {
		if !includeReserved && reservedName(name) {
			continue
		}
		members = append(members, Member{Name: name, Type: typeInfoOf(v)})
	}
	sort.Slice(members, func(i, j int) bool { return members[i].Name < members[j].Name })
	return members
}

// typeMembers enumerates a type object shallowly: its methods and, for
// struct types, its fields.
func typeMembers(t reflect.Type, includeReserved bool) []Member {
	var members []Member
	for i := 0; i < t.NumMethod(); i++ {
		m := t.Method(i)
		if !includeReserved && !m.IsExported() {
			continue
		}
		members = append(members, Member{Name: m.Name, Type: typeInfoFor(m.Type)})
	}
	if t.Kind() == reflect.Struct {
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if !includeReserved && !f.IsExported() {
				continue
			}
			members = append(members, Member{Name: f.Name, Type: typeInfoFor(f.Type)})
		}
	}
	sort.Slice(members, func(i, j int) bool { return members[i].Name < members[j].Name })
	return members
}

// reservedName reports whether a namespace member name uses the
// implementation-reserved prefix.
func reservedName(name string) bool {
	return name == "" || name[0] == '_'
}

// safeRepr converts any value to a display string without letting a
// String/Format fault propagate.
func safeRepr(rv reflect.Value) (repr string) {
	defer func() {
		if recover() != nil {
			repr = "<unprintable value of type " + typeName(rv.Type()) + ">"
		}
	}()

	if !rv.IsValid() {
		return "nil"
	}
	if rv.Kind() == reflect.String {
		return strconv.Quote(rv.String())
	}
	if !rv.CanInterface() {
		return "<" + rv.Type().String() + ">"
	}
	return fmt.Sprint(rv.Interface())
}
