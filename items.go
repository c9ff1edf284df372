package streamjson

import "io"

// Selector scans a prefixed event stream for a target prefix and yields
// one fully materialized Value per match. It is the S component.
type Selector struct {
	src    PrefixedEventSource
	prefix string
}

// NewSelector wraps src, matching events whose prefix equals prefix.
func NewSelector(src PrefixedEventSource, prefix string) *Selector {
	return &Selector{src: src, prefix: prefix}
}

// Items builds the full pipeline down to materialized subtrees at prefix.
func Items(r io.Reader, prefix string, opts ...Option) *Selector {
	return NewSelector(Parse(r, opts...), prefix)
}

// Next scans forward until a value at the target prefix is found and
// returns it, or io.EOF once the input is exhausted.
func (s *Selector) Next() (Value, error) {
	for {
		ev, err := s.src.Next()
		if err != nil {
			return Value{}, err
		}
		if ev.Prefix != s.prefix {
			continue
		}

		switch {
		case ev.Kind.isContainerStart():
			return buildSubtree(s.src, ev)
		case ev.Kind == EventMapKey, ev.Kind.isContainerEnd():
			continue
		default:
			return ev.Value, nil
		}
	}
}

// KVPair is one (key, value) member yielded by KVItems.
type KVPair struct {
	Key   string
	Value Value
}

// KVSelector scans for the direct members of the object located at a
// target prefix, yielding one (key, value) pair per member. This is the
// ijson kvitems() feature recovered in SPEC_FULL.md section 6: distinct
// from Selector, which yields the container at prefix as a whole.
type KVSelector struct {
	src    PrefixedEventSource
	prefix string
}

// NewKVSelector wraps src, matching map_key events whose prefix equals
// prefix.
func NewKVSelector(src PrefixedEventSource, prefix string) *KVSelector {
	return &KVSelector{src: src, prefix: prefix}
}

// KVItems builds the full pipeline down to the (key, value) members of
// the object at prefix.
func KVItems(r io.Reader, prefix string, opts ...Option) *KVSelector {
	return NewKVSelector(Parse(r, opts...), prefix)
}

// Next returns the next (key, value) member, or io.EOF once exhausted.
func (s *KVSelector) Next() (KVPair, error) {
	for {
		ev, err := s.src.Next()
		if err != nil {
			return KVPair{}, err
		}
		if ev.Prefix != s.prefix || ev.Kind != EventMapKey {
			continue
		}

		key := ev.Value.Str
		valEv, err := s.src.Next()
		if err != nil {
			return KVPair{}, err
		}

		val, err := buildSubtree(s.src, valEv)
		if err != nil {
			return KVPair{}, err
		}
		return KVPair{Key: key, Value: val}, nil
	}
}

// buildSubtree materializes the value starting at first: itself if it is
// already a scalar, or the full tree rooted at its start_map/start_array
// once the matching close has been consumed.
func buildSubtree(src PrefixedEventSource, first PrefixedEvent) (Value, error) {
	if !first.Kind.isContainerStart() {
		return first.Value, nil
	}

	b := NewObjectBuilder()
	b.Event(first.Kind, first.Value)

	depth := 1
	for depth > 0 {
		ev, err := src.Next()
		if err != nil {
			return Value{}, err
		}
		b.Event(ev.Kind, ev.Value)

		switch {
		case ev.Kind.isContainerStart():
			depth++
		case ev.Kind.isContainerEnd():
			depth--
		}
	}

	v, _ := b.Value()
	return v, nil
}
