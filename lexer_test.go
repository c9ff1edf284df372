package streamjson

import (
	"io"
	"strings"
	"testing"
)

type lexerOutputToken struct {
	text string
	kind LexemeKind
}

type lexerTestCase struct {
	input  string
	output []lexerOutputToken
}

func TestLexer(t *testing.T) {
	testcases := []lexerTestCase{
		{
			input: `{"hello":"world"}`,
			output: []lexerOutputToken{
				{"{", LexemeStruct},
				{`"hello"`, LexemeString},
				{":", LexemeStruct},
				{`"world"`, LexemeString},
				{"}", LexemeStruct},
			},
		},
		{
			input: `[1, 2.5, -3, 1e2]`,
			output: []lexerOutputToken{
				{"[", LexemeStruct},
				{"1", LexemeBareword},
				{",", LexemeStruct},
				{"2.5", LexemeBareword},
				{",", LexemeStruct},
				{"-3", LexemeBareword},
				{",", LexemeStruct},
				{"1e2", LexemeBareword},
				{"]", LexemeStruct},
			},
		},
		{
			input: `{"ua": "\"SomeUA\""}`,
			output: []lexerOutputToken{
				{"{", LexemeStruct},
				{`"ua"`, LexemeString},
				{":", LexemeStruct},
				{`"\"SomeUA\""`, LexemeString},
				{"}", LexemeStruct},
			},
		},
		{
			input: `true false null`,
			output: []lexerOutputToken{
				{"true", LexemeBareword},
				{"false", LexemeBareword},
				{"null", LexemeBareword},
			},
		},
	}

	for _, testcase := range testcases {
		l := NewLexer(strings.NewReader(testcase.input), Config{BufSize: 4})

		found := 0
		for {
			lex, err := l.Next()
			if err != nil {
				if err == io.EOF {
					break
				}
				t.Fatalf("testcase %q: %v", testcase.input, err)
			}

			if found >= len(testcase.output) {
				t.Fatalf("testcase %q: unexpected extra lexeme %q", testcase.input, lex.Text)
			}

			want := testcase.output[found]
			if lex.Text != want.text || lex.Kind != want.kind {
				t.Errorf("testcase %q: token %d: got (%q, %v), want (%q, %v)",
					testcase.input, found, lex.Text, lex.Kind, want.text, want.kind)
			}
			found++
		}

		if found != len(testcase.output) {
			t.Errorf("testcase %q: expected %d tokens, got %d", testcase.input, len(testcase.output), found)
		}
	}
}

func TestLexerOffsets(t *testing.T) {
	input := `{"a":1,"b":2}`
	l := NewLexer(strings.NewReader(input), Config{BufSize: 2})

	var offsets []uint64
	for {
		lex, err := l.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		offsets = append(offsets, lex.Offset)
		if got := input[lex.Offset : int(lex.Offset)+len(lex.Text)]; got != lex.Text {
			t.Errorf("offset %d: input slice %q != lexeme text %q", lex.Offset, got, lex.Text)
		}
	}
}

func TestLexerFails(t *testing.T) {
	testcases := []string{
		`"unterminated`,
		"\"bad\xffutf8\"",
	}

	for _, input := range testcases {
		l := NewLexer(strings.NewReader(input), Config{BufSize: 64})

		var lastErr error
		for {
			_, err := l.Next()
			if err != nil {
				lastErr = err
				break
			}
		}

		if lastErr == nil || lastErr == io.EOF {
			t.Errorf("testcase %q: expected an error, got %v", input, lastErr)
		}
	}
}

func TestLexerBufSizeIndependence(t *testing.T) {
	input := `{"docs":[{"n":null,"b":false,"i":0,"d":0.5,"s":"hello"}]}`

	var reference []Lexeme
	for bufSize := 1; bufSize <= len(input)+1; bufSize++ {
		l := NewLexer(strings.NewReader(input), Config{BufSize: bufSize})

		var got []Lexeme
		for {
			lex, err := l.Next()
			if err == io.EOF {
				break
			}
			if err != nil {
				t.Fatalf("bufSize=%d: unexpected error: %v", bufSize, err)
			}
			got = append(got, lex)
		}

		if reference == nil {
			reference = got
			continue
		}
		if len(got) != len(reference) {
			t.Fatalf("bufSize=%d: got %d lexemes, want %d", bufSize, len(got), len(reference))
		}
		for i := range got {
			if got[i] != reference[i] {
				t.Errorf("bufSize=%d: lexeme %d = %+v, want %+v", bufSize, i, got[i], reference[i])
			}
		}
	}
}

func TestLexerSplitMultibyte(t *testing.T) {
	input := `"` + strings.Repeat("с", 20) + `"`
	for bufSize := 1; bufSize <= 5; bufSize++ {
		l := NewLexer(strings.NewReader(input), Config{BufSize: bufSize})
		lex, err := l.Next()
		if err != nil {
			t.Fatalf("bufSize=%d: unexpected error: %v", bufSize, err)
		}
		if lex.Text != input {
			t.Errorf("bufSize=%d: got %q, want %q", bufSize, lex.Text, input)
		}
	}
}

func TestLexerKeywordStraddlingBufSize(t *testing.T) {
	input := `false`
	l := NewLexer(strings.NewReader(input), Config{BufSize: len(input)})
	lex, err := l.Next()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lex.Text != "false" {
		t.Errorf("got %q, want %q", lex.Text, "false")
	}
}
