package streamjson

import "io"

// Parser is the P component: it drives a Lexer and emits the basic event
// stream, validating grammar and classifying errors along the way.
//
// Recursion through nested arrays/objects is realised as an explicit
// stack of pending actions rather than Go call-stack recursion, so a
// single Next() call always returns after producing exactly one event
// (or a terminal error/io.EOF). See SPEC_FULL.md's design notes.
type Parser struct {
	lex  *Lexer
	cfg  Config
	stack []action

	started  bool
	finished bool
	err      error
}

type actionKind byte

const (
	actTopValue actionKind = iota
	actArrayFirst
	actArrayElement
	actArrayAfterValue
	actObjectFirst
	actObjectKey
	actObjectColon
	actObjectValue
	actObjectAfterValue
	actTrailing
)

type action struct {
	kind actionKind
}

// NewParser builds a Parser reading lexemes from lex.
func NewParser(lex *Lexer, cfg Config) *Parser {
	return &Parser{lex: lex, cfg: cfg}
}

// BasicParse builds the full pipeline down to the basic event stream:
// Lexer + Parser over r.
func BasicParse(r io.Reader, opts ...Option) *Parser {
	cfg := buildConfig(opts)
	return NewParser(NewLexer(r, cfg), cfg)
}

// Next returns the next basic event, or io.EOF once the document (and any
// additional top-level values, if enabled) is exhausted.
func (p *Parser) Next() (BasicEvent, error) {
	if p.err != nil {
		return BasicEvent{}, p.err
	}

	for {
		if len(p.stack) == 0 {
			if p.finished {
				p.err = io.EOF
				return BasicEvent{}, io.EOF
			}
			p.stack = append(p.stack, action{actTopValue})
		}

		a := p.stack[len(p.stack)-1]
		p.stack = p.stack[:len(p.stack)-1]

		ev, again, err := p.step(a)
		if err != nil {
			if err != io.EOF {
				p.err = err
			}
			return BasicEvent{}, err
		}
		if again {
			continue
		}
		return ev, nil
	}
}

func (p *Parser) push(kinds ...actionKind) {
	for _, k := range kinds {
		p.stack = append(p.stack, action{k})
	}
}

func (p *Parser) nextLexeme() (Lexeme, error) {
	return p.lex.Next()
}

// step executes one pending action. again=true means no event was
// produced and the caller should keep looping (e.g. a ':' was consumed).
func (p *Parser) step(a action) (ev BasicEvent, again bool, err error) {
	switch a.kind {
	case actTopValue:
		lex, err := p.nextLexeme()
		if err != nil {
			return BasicEvent{}, false, toIncomplete(err)
		}
		p.started = true
		p.push(actTrailing)
		ev, err := p.parseValue(lex)
		return ev, false, err

	case actArrayFirst, actArrayElement:
		lex, err := p.nextLexeme()
		if err != nil {
			return BasicEvent{}, false, toIncomplete(err)
		}
		if lex.Kind == LexemeStruct && lex.Text == "]" {
			if a.kind == actArrayElement {
				return BasicEvent{}, false, malformed("trailing comma before ']'", lex)
			}
			return BasicEvent{Kind: EventEndArray}, false, nil
		}
		p.push(actArrayAfterValue)
		ev, err = p.parseValue(lex)
		return ev, false, err

	case actArrayAfterValue:
		lex, err := p.nextLexeme()
		if err != nil {
			return BasicEvent{}, false, toIncomplete(err)
		}
		switch {
		case lex.Kind == LexemeStruct && lex.Text == "]":
			return BasicEvent{Kind: EventEndArray}, false, nil
		case lex.Kind == LexemeStruct && lex.Text == ",":
			p.push(actArrayElement)
			return BasicEvent{}, true, nil
		default:
			return BasicEvent{}, false, malformed("expected ',' or ']'", lex)
		}

	case actObjectFirst, actObjectKey:
		lex, err := p.nextLexeme()
		if err != nil {
			return BasicEvent{}, false, toIncomplete(err)
		}
		if lex.Kind == LexemeStruct && lex.Text == "}" {
			if a.kind == actObjectKey {
				return BasicEvent{}, false, malformed("trailing comma before '}'", lex)
			}
			return BasicEvent{Kind: EventEndMap}, false, nil
		}
		if lex.Kind != LexemeString {
			return BasicEvent{}, false, malformed("expected string key", lex)
		}
		key, err := decodeString(lex.Text[1 : len(lex.Text)-1])
		if err != nil {
			return BasicEvent{}, false, err
		}
		p.push(actObjectColon)
		return BasicEvent{Kind: EventMapKey, Value: Value{Kind: ValueString, Str: key}}, false, nil

	case actObjectColon:
		lex, err := p.nextLexeme()
		if err != nil {
			return BasicEvent{}, false, toIncomplete(err)
		}
		if !(lex.Kind == LexemeStruct && lex.Text == ":") {
			return BasicEvent{}, false, malformed("expected ':'", lex)
		}
		p.push(actObjectAfterValue, actObjectValue)
		return BasicEvent{}, true, nil

	case actObjectValue:
		lex, err := p.nextLexeme()
		if err != nil {
			return BasicEvent{}, false, toIncomplete(err)
		}
		ev, err = p.parseValue(lex)
		return ev, false, err

	case actObjectAfterValue:
		lex, err := p.nextLexeme()
		if err != nil {
			return BasicEvent{}, false, toIncomplete(err)
		}
		switch {
		case lex.Kind == LexemeStruct && lex.Text == "}":
			return BasicEvent{Kind: EventEndMap}, false, nil
		case lex.Kind == LexemeStruct && lex.Text == ",":
			p.push(actObjectKey)
			return BasicEvent{}, true, nil
		default:
			return BasicEvent{}, false, malformed("expected ',' or '}'", lex)
		}

	case actTrailing:
		lex, err := p.nextLexeme()
		if err == io.EOF {
			p.finished = true
			return BasicEvent{}, false, io.EOF
		}
		if err != nil {
			return BasicEvent{}, false, err
		}
		if !p.cfg.MultipleValues {
			return BasicEvent{}, false, malformed("Additional data", lex)
		}
		p.push(actTrailing)
		ev, err = p.parseValue(lex)
		return ev, false, err
	}

	panic("streamjson: unreachable action kind")
}

// parseValue dispatches on a lexeme that is expected to start a value. It
// either emits a scalar event directly or, for containers, pushes the
// continuation that will drive the container's contents and emits the
// matching start_* event.
func (p *Parser) parseValue(lex Lexeme) (BasicEvent, error) {
	switch {
	case lex.Kind == LexemeStruct && lex.Text == "[":
		p.push(actArrayFirst)
		return BasicEvent{Kind: EventStartArray}, nil

	case lex.Kind == LexemeStruct && lex.Text == "{":
		p.push(actObjectFirst)
		return BasicEvent{Kind: EventStartMap}, nil

	case lex.Kind == LexemeBareword && lex.Text == "null":
		return BasicEvent{Kind: EventNull, Value: Value{Kind: ValueNull}}, nil

	case lex.Kind == LexemeBareword && lex.Text == "true":
		return BasicEvent{Kind: EventBoolean, Value: Value{Kind: ValueBool, Bool: true}}, nil

	case lex.Kind == LexemeBareword && lex.Text == "false":
		return BasicEvent{Kind: EventBoolean, Value: Value{Kind: ValueBool, Bool: false}}, nil

	case lex.Kind == LexemeString:
		s, err := decodeString(lex.Text[1 : len(lex.Text)-1])
		if err != nil {
			return BasicEvent{}, err
		}
		return BasicEvent{Kind: EventString, Value: Value{Kind: ValueString, Str: s}}, nil

	case lex.Kind == LexemeBareword:
		n, err := parseNumber(lex.Text)
		if err != nil {
			return BasicEvent{}, malformed(err.Error(), lex)
		}
		return BasicEvent{Kind: EventNumber, Value: Value{Kind: ValueNumber, Number: n}}, nil

	default:
		return BasicEvent{}, malformed("unexpected token", lex)
	}
}

// toIncomplete turns a clean lexer EOF into IncompleteJsonError when it
// occurs where the grammar still expects more input. A lexer-level error
// (already a *JsonError/*IncompleteJsonError) passes through unchanged.
func toIncomplete(err error) error {
	if err == io.EOF {
		return incomplete("unexpected end of JSON input")
	}
	return err
}
