package streamjson

import (
	"io"
	"strings"
)

// pathSegment is one entry of the path tracker's stack. A pending segment
// is the placeholder pushed by start_map before its first key is known;
// join skips it, exactly mirroring the reference's ambient None.
type pathSegment struct {
	pending bool
	text    string
}

// PathTracker wraps a BasicEventSource and annotates each event with the
// dotted path of its containing context. It is the T component.
type PathTracker struct {
	src   BasicEventSource
	stack []pathSegment
}

// NewPathTracker wraps src.
func NewPathTracker(src BasicEventSource) *PathTracker {
	return &PathTracker{src: src}
}

// Parse builds the full pipeline down to the prefixed event stream.
func Parse(r io.Reader, opts ...Option) *PathTracker {
	return NewPathTracker(BasicParse(r, opts...))
}

func joinSegments(segs []pathSegment) string {
	if len(segs) == 0 {
		return ""
	}
	parts := make([]string, 0, len(segs))
	for _, s := range segs {
		if s.pending {
			continue
		}
		parts = append(parts, s.text)
	}
	return strings.Join(parts, ".")
}

// Next returns the next prefixed event.
func (t *PathTracker) Next() (PrefixedEvent, error) {
	ev, err := t.src.Next()
	if err != nil {
		return PrefixedEvent{}, err
	}

	var prefix string

	switch ev.Kind {
	case EventStartMap:
		prefix = joinSegments(t.stack)
		t.stack = append(t.stack, pathSegment{pending: true})

	case EventMapKey:
		prefix = joinSegments(t.stack[:len(t.stack)-1])
		t.stack[len(t.stack)-1] = pathSegment{text: ev.Value.Str}

	case EventEndMap:
		t.stack = t.stack[:len(t.stack)-1]
		prefix = joinSegments(t.stack)

	case EventStartArray:
		prefix = joinSegments(t.stack)
		t.stack = append(t.stack, pathSegment{text: "item"})

	case EventEndArray:
		t.stack = t.stack[:len(t.stack)-1]
		prefix = joinSegments(t.stack)

	default:
		prefix = joinSegments(t.stack)
	}

	return PrefixedEvent{Prefix: prefix, Kind: ev.Kind, Value: ev.Value}, nil
}
