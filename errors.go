package streamjson

import "fmt"

// JsonError reports that the input violated JSON grammar or lexical rules.
// It carries the offending lexeme's text and absolute byte offset when
// those are known.
type JsonError struct {
	Msg       string
	Lexeme    string
	HasLexeme bool
	Offset    uint64
	Err       error
}

func (e *JsonError) Error() string {
	if e.HasLexeme {
		return fmt.Sprintf("streamjson: %s: %q at offset %d", e.Msg, e.Lexeme, e.Offset)
	}
	return fmt.Sprintf("streamjson: %s", e.Msg)
}

func (e *JsonError) Unwrap() error {
	return e.Err
}

// IncompleteJsonError reports that the input ended before a lexeme, a
// container, or the top-level value was complete.
type IncompleteJsonError struct {
	*JsonError
}

func malformed(msg string, lex Lexeme) *JsonError {
	return &JsonError{Msg: msg, Lexeme: lex.Text, HasLexeme: true, Offset: lex.Offset}
}

func malformedf(offset uint64, format string, args ...interface{}) *JsonError {
	return &JsonError{Msg: fmt.Sprintf(format, args...), Offset: offset}
}

func incomplete(msg string) *IncompleteJsonError {
	return &IncompleteJsonError{JsonError: &JsonError{Msg: msg}}
}

func incompleteAt(msg string, offset uint64) *IncompleteJsonError {
	return &IncompleteJsonError{JsonError: &JsonError{Msg: msg, Offset: offset}}
}
