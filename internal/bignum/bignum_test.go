package bignum

import "testing"

func TestParseAndString(t *testing.T) {
	testcases := []string{"1.0", "0.5", "1e2", "-3.14159", "1.0e+2"}
	for _, raw := range testcases {
		d, err := Parse(raw)
		if err != nil {
			t.Errorf("Parse(%q): unexpected error: %v", raw, err)
			continue
		}
		if d.String() != raw {
			t.Errorf("Parse(%q).String() = %q, want %q", raw, d.String(), raw)
		}
	}
}

func TestParseInvalid(t *testing.T) {
	if _, err := Parse("1.2.3"); err == nil {
		t.Errorf("expected an error for malformed decimal text")
	}
}

func TestFloat64(t *testing.T) {
	d, err := Parse("0.5")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := d.Float64(); got != 0.5 {
		t.Errorf("Float64() = %v, want 0.5", got)
	}
}
