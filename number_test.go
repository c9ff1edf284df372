package streamjson

import "testing"

func TestParseNumberInteger(t *testing.T) {
	n, err := parseNumber("123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n.Kind != NumberInt || n.Int != 123 {
		t.Errorf("got %+v, want integer 123", n)
	}

	n, err = parseNumber("-45")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n.Kind != NumberInt || n.Int != -45 {
		t.Errorf("got %+v, want integer -45", n)
	}
}

func TestParseNumberBigInteger(t *testing.T) {
	n, err := parseNumber("123456789012345678901234567890")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n.Kind != NumberBigInt || n.BigInt == nil {
		t.Errorf("got %+v, want a big integer", n)
	}
}

func TestParseNumberDecimal(t *testing.T) {
	testcases := []string{"1.0", "0.5", "1e2", "1.0e+2", "-3.14"}
	for _, in := range testcases {
		n, err := parseNumber(in)
		if err != nil {
			t.Errorf("parseNumber(%q): unexpected error: %v", in, err)
			continue
		}
		if n.Kind != NumberDecimal {
			t.Errorf("parseNumber(%q) = %+v, want a decimal", in, n)
		}
		if n.Decimal.String() != in {
			t.Errorf("parseNumber(%q).Decimal.String() = %q, want %q", in, n.Decimal.String(), in)
		}
	}
}

func TestParseNumberRejectsLeadingPlus(t *testing.T) {
	if _, err := parseNumber("+1"); err == nil {
		t.Errorf("expected leading '+' to be rejected")
	}
}

func TestParseNumberRejectsGarbage(t *testing.T) {
	if _, err := parseNumber("1.2.3"); err == nil {
		t.Errorf("expected malformed numeric lexeme to be rejected")
	}
}
