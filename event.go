package streamjson

import (
	"math/big"

	"github.com/gibsn/streamjson/internal/bignum"
)

// EventKind is one of the closed set of lexical/syntactic event kinds
// produced by the basic event stream.
type EventKind byte

const (
	EventNull EventKind = iota
	EventBoolean
	EventNumber
	EventString
	EventMapKey
	EventStartMap
	EventEndMap
	EventStartArray
	EventEndArray
)

func (k EventKind) String() string {
	switch k {
	case EventNull:
		return "null"
	case EventBoolean:
		return "boolean"
	case EventNumber:
		return "number"
	case EventString:
		return "string"
	case EventMapKey:
		return "map_key"
	case EventStartMap:
		return "start_map"
	case EventEndMap:
		return "end_map"
	case EventStartArray:
		return "start_array"
	case EventEndArray:
		return "end_array"
	}
	return "unknown"
}

func (k EventKind) isContainerStart() bool {
	return k == EventStartMap || k == EventStartArray
}

func (k EventKind) isContainerEnd() bool {
	return k == EventEndMap || k == EventEndArray
}

// NumberKind distinguishes plain int64 numbers from ones that needed a
// bigger representation.
type NumberKind byte

const (
	NumberInt NumberKind = iota
	NumberBigInt
	NumberDecimal
)

// Number is the tagged numeric value produced by the number helper: an
// integer (native or arbitrary-precision) or an arbitrary-precision
// decimal, chosen in a value-preserving way from the original lexeme.
type Number struct {
	Kind    NumberKind
	Int     int64
	BigInt  *big.Int
	Decimal bignum.Decimal
	Raw     string
}

// String returns the original numeric lexeme text, unchanged.
func (n Number) String() string {
	return n.Raw
}

// ValueKind tags the variant held by a Value.
type ValueKind byte

const (
	ValueNone ValueKind = iota
	ValueNull
	ValueBool
	ValueNumber
	ValueString
	ValueMap
	ValueArray
)

// Value is the payload of an event or a materialized subtree. Structural
// events (start_map, end_map, start_array, end_array) carry ValueNone.
type Value struct {
	Kind   ValueKind
	Bool   bool
	Number Number
	Str    string
	Map    map[string]Value
	Array  *[]Value
}

// BasicEvent is a flat (kind, value) token with no path context.
type BasicEvent struct {
	Kind  EventKind
	Value Value
}

// PrefixedEvent annotates a BasicEvent with the dotted path of its
// containing context.
type PrefixedEvent struct {
	Prefix string
	Kind   EventKind
	Value  Value
}

// BasicEventSource is anything that can be pulled for one BasicEvent at a
// time, terminating with io.EOF.
type BasicEventSource interface {
	Next() (BasicEvent, error)
}

// PrefixedEventSource is the PrefixedEvent analogue of BasicEventSource.
type PrefixedEventSource interface {
	Next() (PrefixedEvent, error)
}
