package streamjson

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf16"
)

// decodeString turns the body of a quoted string lexeme (quotes already
// stripped) into its decoded text value, per the escape rules in
// SPEC_FULL.md section 1 (spec.md 4.2). Strings with no backslash are
// returned unchanged without allocating.
func decodeString(raw string) (string, error) {
	if !strings.ContainsRune(raw, '\\') {
		return raw, nil
	}

	var b strings.Builder
	b.Grow(len(raw))

	for i := 0; i < len(raw); {
		c := raw[i]
		if c != '\\' {
			b.WriteByte(c)
			i++
			continue
		}

		i++
		if i >= len(raw) {
			// Lexer guarantees a string lexeme never ends on a dangling
			// backslash; treat defensively as a literal backslash.
			b.WriteByte('\\')
			break
		}

		e := raw[i]
		switch e {
		case 'b':
			b.WriteByte('\b')
			i++
		case 'f':
			b.WriteByte('\f')
			i++
		case 'n':
			b.WriteByte('\n')
			i++
		case 'r':
			b.WriteByte('\r')
			i++
		case 't':
			b.WriteByte('\t')
			i++
		case '"':
			b.WriteByte('"')
			i++
		case '\\':
			b.WriteByte('\\')
			i++
		case '/':
			b.WriteByte('/')
			i++
		case 'u':
			i++
			r1, err := parseHex4(raw, i)
			if err != nil {
				return "", err
			}
			i += 4

			if utf16.IsSurrogate(r1) {
				if i+6 <= len(raw) && raw[i] == '\\' && raw[i+1] == 'u' {
					if r2, err := parseHex4(raw, i+2); err == nil {
						if combined := utf16.DecodeRune(r1, r2); combined != unicode.ReplacementChar {
							b.WriteRune(combined)
							i += 6
							continue
						}
					}
				}
				b.WriteRune(unicode.ReplacementChar)
				continue
			}

			b.WriteRune(r1)
		default:
			// Lenient pass-through for any other escaped character.
			b.WriteByte(e)
			i++
		}
	}

	return b.String(), nil
}

func parseHex4(s string, start int) (rune, error) {
	if start+4 > len(s) {
		return 0, &JsonError{Msg: "truncated \\u escape"}
	}
	hx := s[start : start+4]
	for i := 0; i < len(hx); i++ {
		if !isHexDigit(hx[i]) {
			return 0, &JsonError{Msg: "invalid hex digit in \\u escape", Lexeme: hx, HasLexeme: true}
		}
	}
	v, err := strconv.ParseUint(hx, 16, 32)
	if err != nil {
		return 0, &JsonError{Msg: "invalid \\u escape", Lexeme: hx, HasLexeme: true, Err: err}
	}
	return rune(v), nil
}
