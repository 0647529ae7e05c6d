package inspect

// Node is one entry in an inspection result tree, describing one value at
// one traversal position. Exactly one content field is populated per node;
// Custom is an overlay that may accompany any of them.
type Node struct {
	Name string    `json:"name" yaml:"name"`
	Type *TypeInfo `json:"type_info,omitempty" yaml:"type_info,omitempty"`

	// Terminal markers. A marked node carries no content fields.
	Circular      bool   `json:"circular_reference,omitempty" yaml:"circular_reference,omitempty"`
	Truncated     bool   `json:"max_depth_reached,omitempty" yaml:"max_depth_reached,omitempty"`
	TruncatedType string `json:"truncated_type,omitempty" yaml:"truncated_type,omitempty"`

	// Content fields, mutually exclusive.
	Scalar      any           `json:"value,omitempty" yaml:"value,omitempty"`
	Mapping     []MapEntry    `json:"mapping,omitempty" yaml:"mapping,omitempty"`
	Sequence    []*Node       `json:"sequence,omitempty" yaml:"sequence,omitempty"`
	Namespace   []Member      `json:"namespace_contents,omitempty" yaml:"namespace_contents,omitempty"`
	TypeMembers []Member      `json:"type_contents,omitempty" yaml:"type_contents,omitempty"`
	Signature   string        `json:"signature,omitempty" yaml:"signature,omitempty"`
	Deferred    *DeferredInfo `json:"deferred,omitempty" yaml:"deferred,omitempty"`
	Fields      []FieldEntry  `json:"attributes,omitempty" yaml:"attributes,omitempty"`
	Opaque      string        `json:"repr,omitempty" yaml:"repr,omitempty"`

	// Custom holds the output of a registered renderer, alongside the
	// node's regular content.
	Custom any `json:"custom_rendering,omitempty" yaml:"custom_rendering,omitempty"`

	// Root-only fields.
	Meta         *Metadata `json:"metadata,omitempty" yaml:"metadata,omitempty"`
	Error        string    `json:"error,omitempty" yaml:"error,omitempty"`
	VariableName string    `json:"variable_name,omitempty" yaml:"variable_name,omitempty"`
}

// Null is the scalar recorded when the inspected value itself is nil. It
// distinguishes "the value is nil" from "this node has no scalar content":
// presenters print it as nil and both serializers emit a null.
type Null struct{}

func (Null) String() string { return "nil" }

func (Null) MarshalJSON() ([]byte, error) { return []byte("null"), nil }

func (Null) MarshalYAML() (any, error) { return nil, nil }

// MapEntry is one key/value pair of a mapping node, in iteration order.
type MapEntry struct {
	Key   string `json:"key" yaml:"key"`
	Value *Node  `json:"value" yaml:"value"`
}

// FieldEntry is one named field of an object node, in declaration order.
type FieldEntry struct {
	Name  string `json:"name" yaml:"name"`
	Value *Node  `json:"value" yaml:"value"`
}

// Member describes one member of a namespace or type object: name and type
// information only, never the member's value.
type Member struct {
	Name string   `json:"name" yaml:"name"`
	Type TypeInfo `json:"type_info" yaml:"type_info"`
}

// DeferredInfo describes a unit of work that has not produced its value
// yet. Kind is "pending" for in-flight sources (channels) and "factory"
// for thunks that have not been invoked.
type DeferredInfo struct {
	Kind  string `json:"kind" yaml:"kind"`
	Label string `json:"label" yaml:"label"`
}

// Failed reports whether the node is the structured error result returned
// when traversal hit a fatal fault.
func (n *Node) Failed() bool {
	return n != nil && n.Error != ""
}
