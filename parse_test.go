package money

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			input string
			want  string
		}{
			// Symbol resolution, priority table.
			{"$100", "USD 100.00"},
			{"¥100", "JPY 100"},
			{"£9.99", "GBP 9.99"},
			{"€9.99", "EUR 9.99"},
			{"₿0.5", "BTC 0.50000000"},
			{"kr75", "SEK 75.00"},
			{"A$12", "AUD 12.00"},
			{"HK$12", "HKD 12.00"},
			{"R$12", "BRL 12.00"},
			// Signs, including symbol-adjacent ones.
			{"-$10", "USD -10.00"},
			{"$-10", "USD -10.00"},
			{"+$10", "USD 10.00"},
			{"$+10", "USD 10.00"},
			{"-$-10", "USD 10.00"},
			// Codes before and after, case-insensitive.
			{"USD 12.34", "USD 12.34"},
			{"12.34 usd", "USD 12.34"},
			{"eur 5", "EUR 5.00"},
			{"100 JPY", "JPY 100"},
			// Sub-units.
			{"100 sat", "BTC 0.00000100"},
			{"100 sats", "BTC 0.00000100"},
			{"1 satoshi", "BTC 0.00000001"},
			{"250 cents", "USD 2.50"},
			{"5 gwei", "ETH 0.000000005000000000"},
			{"1 wei", "ETH 0.000000000000000001"},
			{"3 lamports", "SOL 0.000000003"},
			{"15 pence", "GBP 0.15"},
			// Grouping, US and EU.
			{"$1,234.56", "USD 1234.56"},
			{"1.234,56 €", "EUR 1234.56"},
			{"1,234,567.89 USD", "USD 1234567.89"},
			{"1.234.567,89 EUR", "EUR 1234567.89"},
			{"1,234 USD", "USD 1234.00"},
			{"1.234 USD", "USD 1.234"},
			// Scientific notation, normalized at string level.
			{"1.23E+5 USD", "USD 123000.00"},
			{"1.23e5 USD", "USD 123000.00"},
			{"5E-7 BTC", "BTC 0.00000050"},
			{"1e2 JPY", "JPY 100"},
			// Fractions round-trip rational amounts.
			{"USD 1/3", "USD 1/3"},
			{"-1/3 USD", "USD -1/3"},
			// Bare numbers fall back to the configured default currency.
			{"19.99", "USD 19.99"},
		}
		for _, tt := range tests {
			got, err := Parse(tt.input)
			if err != nil {
				t.Errorf("Parse(%q) failed: %v", tt.input, err)
				continue
			}
			if got.String() != tt.want {
				t.Errorf("Parse(%q) = %q, want %q", tt.input, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			input string
			kind  error
		}{
			"empty":          {"", ErrParse},
			"blank":          {"   ", ErrParse},
			"text":           {"hello", ErrParse},
			"two points":     {"1.2.3 USD", ErrParse},
			"bad grouping 1": {"1,23.45 USD", ErrParse},
			"bad grouping 2": {"1,23,45 USD", ErrParse},
			"bad grouping 3": {"1234,567.89 USD", ErrParse},
			"bad exponent":   {"1.2E USD", ErrParse},
			"huge exponent":  {"1E99999 USD", ErrParse},
			"unknown code":   {"10 XYZ", ErrUnknownCurrency},
			"zero fraction":  {"1/0 USD", ErrParse},
		}
		for name, tt := range tests {
			_, err := Parse(tt.input)
			if !errors.Is(err, tt.kind) {
				t.Errorf("%v: Parse(%q) = %v, want %v", name, tt.input, err, tt.kind)
			}
		}
	})
}

func TestParseIn(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			input, curr, want string
		}{
			{"12.34", "USD", "USD 12.34"},
			{"100", "JPY", "JPY 100"},
			{"1.23E+5", "USD", "USD 123000.00"},
			{"$12.34", "USD", "USD 12.34"},
			{"100 sat", "BTC", "BTC 0.00000100"},
		}
		for _, tt := range tests {
			got, err := ParseIn(tt.input, tt.curr)
			if err != nil {
				t.Errorf("ParseIn(%q, %q) failed: %v", tt.input, tt.curr, err)
				continue
			}
			if got.String() != tt.want {
				t.Errorf("ParseIn(%q, %q) = %q, want %q", tt.input, tt.curr, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		if _, err := ParseIn("€10", "USD"); !errors.Is(err, ErrCurrencyMismatch) {
			t.Errorf("ParseIn(%q, %q) = %v, want ErrCurrencyMismatch", "€10", "USD", err)
		}
		if _, err := ParseIn("10", "XYZ"); !errors.Is(err, ErrUnknownCurrency) {
			t.Errorf("ParseIn(%q, %q) = %v, want ErrUnknownCurrency", "10", "XYZ", err)
		}
	})
}

func TestMustParse(t *testing.T) {
	t.Run("panic", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Error("MustParse(\"bogus\") did not panic")
			}
		}()
		MustParse("bogus")
	})
}

func TestParse_ExponentPrecision(t *testing.T) {
	// Exponents are applied by shifting the decimal point in the digit
	// string, so extreme shifts keep every digit.
	got, err := Parse("1.5E-70 BTC")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	fp, ok := got.Amount().FixedPoint()
	if !ok {
		t.Fatal("amount is not fixed-point")
	}
	if fp.Decimals() != 71 {
		t.Errorf("decimals = %v, want 71", fp.Decimals())
	}
	if fp.Sign() == 0 {
		t.Error("amount collapsed to zero")
	}
}
