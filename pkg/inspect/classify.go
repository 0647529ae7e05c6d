package inspect

import (
	"fmt"
	"reflect"
	"time"
)

// Category is the classifier's top-level bucket for a value's shape. The
// set is closed: the engine switches over it exhaustively and never probes
// value shape anywhere else.
type Category int

const (
	// Primitive covers booleans, integers, floats, strings and nil.
	Primitive Category = iota
	// Temporal covers time.Time values, rendered as RFC 3339 strings.
	Temporal
	// Mapping covers maps with meaningful element values.
	Mapping
	// Sequence covers slices.
	Sequence
	// TupleLike covers arrays (fixed-shape positional containers).
	TupleLike
	// SetLike covers maps with struct{} elements, the conventional Go set.
	SetLike
	// Callable covers funcs, except zero-argument producers.
	Callable
	// TypeObject covers reflect.Type values.
	TypeObject
	// NamespaceLike covers values implementing the Namespace interface.
	NamespaceLike
	// DeferredLike covers channels and zero-argument single-result funcs:
	// work that has not produced its value yet.
	DeferredLike
	// Object covers any other struct, inspected field by field.
	Object
	// OpaqueValue covers everything else; rendered as a best-effort string.
	OpaqueValue
)

var categoryNames = map[Category]string{
	Primitive:     "primitive",
	Temporal:      "temporal",
	Mapping:       "mapping",
	Sequence:      "sequence",
	TupleLike:     "tuple_like",
	SetLike:       "set_like",
	Callable:      "callable",
	TypeObject:    "type_object",
	NamespaceLike: "namespace",
	DeferredLike:  "deferred",
	Object:        "object",
	OpaqueValue:   "opaque",
}

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return fmt.Sprintf("category(%d)", int(c))
}

// ParseCategory converts a category name (as used in configuration files)
// back into a Category.
func ParseCategory(name string) (Category, error) {
	for c, n := range categoryNames {
		if n == name {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown category: %s", name)
}

// SignatureUnavailable substitutes for a callable signature that could not
// be determined.
const SignatureUnavailable = "signature unavailable"

// TypeInfo is the lightweight type description attached to every node.
type TypeInfo struct {
	Name      string `json:"type_name" yaml:"type_name"`
	Module    string `json:"module" yaml:"module"`
	Signature string `json:"signature,omitempty" yaml:"signature,omitempty"`
}

// Namespace is the describe-yourself capability for namespace-like values.
// Go has no first-class module objects, so anything that wants to be
// inspected as a namespace exposes its members explicitly. The declared
// name replaces the package path in the node's type info.
type Namespace interface {
	NamespaceName() string
	NamespaceMembers() map[string]any
}

// Classify determines the semantic category of a value and extracts its
// type information. It is pure and never fails: signature extraction
// problems degrade to SignatureUnavailable instead of propagating.
func Classify(v any) (Category, TypeInfo) {
	cat, _, info := classify(reflect.ValueOf(v))
	return cat, info
}

// classify is the engine-facing variant: it additionally returns the value
// with pointers and interfaces dereferenced, so traversal descends into
// the pointee while type info still names the runtime type the caller
// held. Interface-backed categories (TypeObject, NamespaceLike) are only
// reachable for values reflection lets us re-box.
func classify(rv reflect.Value) (Category, reflect.Value, TypeInfo) {
	if !rv.IsValid() {
		return Primitive, rv, TypeInfo{Name: "nil", Module: "builtin"}
	}
	if rv.CanInterface() {
		switch v := rv.Interface().(type) {
		case reflect.Type:
			return TypeObject, rv, TypeInfo{Name: typeName(v), Module: "reflect"}
		case Namespace:
			info := typeInfoFor(reflect.TypeOf(v))
			if name := namespaceLabel(v); name != "" {
				info.Module = name
			}
			return NamespaceLike, rv, info
		}
	}
	return classifyValue(rv)
}

func classifyValue(rv reflect.Value) (Category, reflect.Value, TypeInfo) {
	if !rv.IsValid() {
		return Primitive, rv, TypeInfo{Name: "nil", Module: "builtin"}
	}

	info := typeInfoFor(rv.Type())

	elem := rv
	for elem.Kind() == reflect.Pointer || elem.Kind() == reflect.Interface {
		if elem.IsNil() {
			return Primitive, elem, info
		}
		elem = elem.Elem()
	}

	if elem.Type() == timeType {
		return Temporal, elem, info
	}

	switch elem.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.String:
		return Primitive, elem, info
	case reflect.Map:
		if isSetLike(elem.Type()) {
			return SetLike, elem, info
		}
		return Mapping, elem, info
	case reflect.Slice:
		return Sequence, elem, info
	case reflect.Array:
		return TupleLike, elem, info
	case reflect.Chan:
		return DeferredLike, elem, info
	case reflect.Func:
		info.Signature = signatureOf(elem.Type())
		if isFactory(elem.Type()) {
			return DeferredLike, elem, info
		}
		return Callable, elem, info
	case reflect.Struct:
		return Object, elem, info
	default:
		return OpaqueValue, elem, info
	}
}

var timeType = reflect.TypeOf(time.Time{})

// namespaceLabel asks a namespace for its declared name. A panicking
// implementation degrades to an empty label instead of propagating.
func namespaceLabel(ns Namespace) (name string) {
	defer func() { _ = recover() }()
	return ns.NamespaceName()
}

// isSetLike reports whether t is a map used as a set, i.e. with an empty
// struct element type.
func isSetLike(t reflect.Type) bool {
	elem := t.Elem()
	return elem.Kind() == reflect.Struct && elem.NumField() == 0
}

// isFactory reports whether t is a thunk: no arguments, a single result.
// Such funcs describe deferred work rather than behavior, so they classify
// as DeferredLike instead of Callable.
func isFactory(t reflect.Type) bool {
	return t.NumIn() == 0 && t.NumOut() == 1
}

func signatureOf(t reflect.Type) (sig string) {
	defer func() {
		if recover() != nil {
			sig = SignatureUnavailable
		}
	}()
	if t == nil {
		return SignatureUnavailable
	}
	return t.String()
}

// typeInfoFor builds the lightweight descriptor for a reflect type. The
// fields are descriptive only and never drive control flow.
func typeInfoFor(t reflect.Type) TypeInfo {
	if t == nil {
		return TypeInfo{Name: "nil", Module: "builtin"}
	}
	info := TypeInfo{Name: typeName(t), Module: t.PkgPath()}
	if info.Module == "" {
		info.Module = "builtin"
	}
	if t.Kind() == reflect.Func {
		info.Signature = signatureOf(t)
	}
	return info
}

// typeName prefers the declared name and falls back to the full type
// expression for unnamed types (map[string]int, []byte, ...).
func typeName(t reflect.Type) string {
	if name := t.Name(); name != "" {
		return name
	}
	return t.String()
}

// typeInfoOf is the member-enumeration helper: shallow type info for an
// arbitrary value, matching what Classify would report.
func typeInfoOf(v any) TypeInfo {
	_, info := Classify(v)
	return info
}
