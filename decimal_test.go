package fixmath

import "errors"
import "testing"

import "github.com/shopspring/decimal"

func TestParse(t *testing.T) {
	tests := []struct {
		in  string
		out int32
	}{
		{"0", 0}, {"3.5", 3500}, {"-2.5", -2500}, {"1e-3", 1},
		{"3.14159", 3141}, {"-3.14159", -3141}, {"0.0009", 0},
		{"-0.0019", -1}, {"0.00099", 0}, {"12", 12000}, {"1.2e3", 1200000},
		{"2147483.647", MaxRaw}, {"-2147483.648", MinRaw},
		{"1e-400", 0}, {"-0", 0},
	}

	for i, test := range tests {
		got, err := Parse(test.in)
		if err != nil {
			t.Fatalf("test #%d: Parse(%q) unexpected error: %v", i, test.in, err)
		}
		if got.Raw() != test.out {
			t.Fatalf("test #%d: Parse(%q) expected raw %d, got %d", i, test.in, test.out, got.Raw())
		}
	}
}

func TestParseErrors(t *testing.T) {
	for _, text := range []string{"2147483.648", "-2147483.649", "1e10", "-1e400", "99999999999999"} {
		if _, err := Parse(text); !errors.Is(err, ErrOverflow) {
			t.Fatalf("Parse(%q): expected overflow, got %v", text, err)
		}
	}
	for _, text := range []string{"", "abc", "1.2.3", "--1"} {
		_, err := Parse(text)
		if err == nil || errors.Is(err, ErrOverflow) {
			t.Fatalf("Parse(%q): expected syntax error, got %v", text, err)
		}
	}

	func() {
		defer func() {
			if recover() == nil { t.Fatalf("expected MustParse to panic") }
		}()
		MustParse("nope")
	}()
}

func TestDecimalRoundTrip(t *testing.T) {
	for _, raw := range []int32{0, 1, -1, 3142, -500, MaxRaw, MinRaw} {
		value := FromRaw(raw)
		dec := value.ToDecimal()
		if dec.String() != value.String() {
			t.Fatalf("ToDecimal(%d) = %s, expected %s", raw, dec, value)
		}
		back, err := FromDecimal(dec)
		if err != nil || back != value {
			t.Fatalf("FromDecimal(%s) = %s, %v", dec, back, err)
		}
	}

	third := decimal.NewFromInt(1).Div(decimal.NewFromInt(3))
	if got, _ := FromDecimal(third); got.Raw() != 333 {
		t.Fatalf("FromDecimal(1/3) expected raw 333, got %d", got.Raw())
	}
}
