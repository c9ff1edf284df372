package streamjson

// LexemeKind classifies the text carried by a Lexeme.
type LexemeKind byte

const (
	// LexemeStruct is a single structural character: { } [ ] , :
	LexemeStruct LexemeKind = iota
	// LexemeString is a quoted string, quotes included, escapes raw.
	LexemeString
	// LexemeBareword is an unquoted run that must resolve to a number
	// or one of the JSON keywords true/false/null.
	LexemeBareword
)

// Lexeme is the smallest textually meaningful unit yielded by the Lexer.
type Lexeme struct {
	Offset uint64
	Text   string
	Kind   LexemeKind
}

func isWhitespace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r':
		return true
	}
	return false
}

// isStructChar reports whether c is one of the JSON structural characters.
func isStructChar(c byte) bool {
	switch c {
	case '{', '}', '[', ']', ',', ':':
		return true
	}
	return false
}

// isBarewordChar reports whether c can appear inside a number or keyword
// lexeme, per the lenient character class this lexer scans with. Lexical
// validation of the resulting spelling (is it really "true", a valid
// number, ...) is left to the syntactic driver and the number helper.
func isBarewordChar(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	case c == '+', c == '-', c == '.':
		return true
	}
	return false
}

func isHexDigit(c byte) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case c >= 'a' && c <= 'f':
		return true
	case c >= 'A' && c <= 'F':
		return true
	}
	return false
}
