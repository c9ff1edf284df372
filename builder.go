package streamjson

// builderFrameKind tags a builder stack frame by the kind of container it
// is filling.
type builderFrameKind byte

const (
	builderFrameObject builderFrameKind = iota
	builderFrameArray
)

// builderFrame is the statically-typed stand-in for the reference's
// setter closure: a dispatch on kind rather than a captured function.
type builderFrame struct {
	kind builderFrameKind
	m    map[string]Value
	arr  *[]Value
	key  string
}

// ObjectBuilder incrementally builds an in-memory Value tree from basic
// events using a stack of container frames, exactly one per open
// start_map/start_array. It is the B component and can be driven directly
// by callers that already have a basic event stream.
type ObjectBuilder struct {
	root    Value
	started bool
	stack   []*builderFrame
}

// NewObjectBuilder returns an empty builder.
func NewObjectBuilder() *ObjectBuilder {
	return &ObjectBuilder{}
}

// Event feeds one basic event into the builder.
func (b *ObjectBuilder) Event(kind EventKind, value Value) error {
	b.started = true

	switch kind {
	case EventStartMap:
		m := make(map[string]Value)
		b.insert(Value{Kind: ValueMap, Map: m})
		b.stack = append(b.stack, &builderFrame{kind: builderFrameObject, m: m})

	case EventStartArray:
		arr := make([]Value, 0)
		b.insert(Value{Kind: ValueArray, Array: &arr})
		b.stack = append(b.stack, &builderFrame{kind: builderFrameArray, arr: &arr})

	case EventEndMap, EventEndArray:
		b.stack = b.stack[:len(b.stack)-1]

	case EventMapKey:
		top := b.stack[len(b.stack)-1]
		top.key = value.Str

	case EventNull:
		b.insert(Value{Kind: ValueNull})

	case EventBoolean:
		b.insert(Value{Kind: ValueBool, Bool: value.Bool})

	case EventNumber:
		b.insert(Value{Kind: ValueNumber, Number: value.Number})

	case EventString:
		b.insert(Value{Kind: ValueString, Str: value.Str})
	}

	return nil
}

// insert hands value to the setter represented by the current top frame,
// or to the root slot if the builder has no open container. Duplicate
// object keys resolve last-write-wins via plain map assignment.
func (b *ObjectBuilder) insert(v Value) {
	if len(b.stack) == 0 {
		b.root = v
		return
	}

	top := b.stack[len(b.stack)-1]
	switch top.kind {
	case builderFrameObject:
		top.m[top.key] = v
	case builderFrameArray:
		*top.arr = append(*top.arr, v)
	}
}

// Value returns the root value built so far and whether the tree is
// complete (every opened container has been closed). A scalar-only
// document is complete after its single event.
func (b *ObjectBuilder) Value() (Value, bool) {
	return b.root, b.started && len(b.stack) == 0
}
