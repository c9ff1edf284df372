package streamjson

import (
	"math/big"
	"strconv"

	"github.com/gibsn/streamjson/internal/bignum"
)

// parseNumber classifies a numeric lexeme as an integer or an
// arbitrary-precision decimal in a value-preserving way: "1" is an
// integer, "1.0" and "1e2" are decimals, even though the latter has an
// integral value.
//
// A leading '+' is rejected: the lexer's character class accepts it (it
// also accepts stray 'e'/'E' runs that never form a valid number), but
// JSON numbers only ever have a leading '-'. See DESIGN.md's resolved open
// questions.
func parseNumber(text string) (Number, error) {
	if text == "" {
		return Number{}, &JsonError{Msg: "empty numeric lexeme"}
	}
	if text[0] == '+' {
		return Number{}, &JsonError{Msg: "leading '+' is not valid JSON", Lexeme: text, HasLexeme: true}
	}

	if isIntegerLexeme(text) {
		if i, err := strconv.ParseInt(text, 10, 64); err == nil {
			return Number{Kind: NumberInt, Int: i, Raw: text}, nil
		}

		bi, ok := new(big.Int).SetString(text, 10)
		if !ok {
			return Number{}, &JsonError{Msg: "invalid integer lexeme", Lexeme: text, HasLexeme: true}
		}
		return Number{Kind: NumberBigInt, BigInt: bi, Raw: text}, nil
	}

	dec, err := bignum.Parse(text)
	if err != nil {
		return Number{}, &JsonError{Msg: "invalid numeric lexeme", Lexeme: text, HasLexeme: true, Err: err}
	}
	return Number{Kind: NumberDecimal, Decimal: dec, Raw: text}, nil
}

// isIntegerLexeme reports whether text is a bare (optionally negative)
// run of digits, with no fraction or exponent part.
func isIntegerLexeme(text string) bool {
	i := 0
	if text[i] == '-' {
		i++
	}
	if i >= len(text) {
		return false
	}
	for ; i < len(text); i++ {
		if text[i] < '0' || text[i] > '9' {
			return false
		}
	}
	return true
}
