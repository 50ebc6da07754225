package money

import (
	"errors"
	"testing"
)

func TestMoney_MinMax(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		a, b := MustParse("USD 1.00"), MustParse("USD 2.00")
		if got, _ := a.Min(b); !got.Equal(a) {
			t.Errorf("%q.Min(%q) = %q, want %q", a, b, got, a)
		}
		if got, _ := a.Max(b); !got.Equal(b) {
			t.Errorf("%q.Max(%q) = %q, want %q", a, b, got, b)
		}
	})

	t.Run("error", func(t *testing.T) {
		a, b := MustParse("USD 1.00"), MustParse("USD 1.00").mustIn("EUR")
		if _, err := a.Min(b); !errors.Is(err, ErrCurrencyMismatch) {
			t.Errorf("Min across currencies = %v, want ErrCurrencyMismatch", err)
		}
	})
}

func TestMoney_Clamp(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			m, lo, hi, want string
		}{
			{"USD 5.00", "USD 1.00", "USD 10.00", "USD 5.00"},
			{"USD 0.50", "USD 1.00", "USD 10.00", "USD 1.00"},
			{"USD 15.00", "USD 1.00", "USD 10.00", "USD 10.00"},
			{"USD 1.00", "USD 1.00", "USD 10.00", "USD 1.00"},
		}
		for _, tt := range tests {
			m := MustParse(tt.m)
			got, err := m.Clamp(MustParse(tt.lo), MustParse(tt.hi))
			if err != nil {
				t.Errorf("%q.Clamp(%q, %q) failed: %v", m, tt.lo, tt.hi, err)
				continue
			}
			if got.String() != tt.want {
				t.Errorf("%q.Clamp(%q, %q) = %q, want %q", m, tt.lo, tt.hi, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		m := MustParse("USD 5.00")
		_, err := m.Clamp(MustParse("USD 10.00"), MustParse("USD 1.00"))
		if !errors.Is(err, ErrInvalidInput) {
			t.Errorf("Clamp with swapped bounds = %v, want ErrInvalidInput", err)
		}
	})
}

func TestMoney_BoundsFromStrings(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		m := MustParse("USD 5.00")
		if got, err := m.AtLeastString("7.50"); err != nil || got.String() != "USD 7.50" {
			t.Errorf("AtLeastString = %q, %v, want USD 7.50", got, err)
		}
		if got, err := m.AtMostString("2.50"); err != nil || got.String() != "USD 2.50" {
			t.Errorf("AtMostString = %q, %v, want USD 2.50", got, err)
		}
		if got, err := m.ClampString("1.00", "4.00"); err != nil || got.String() != "USD 4.00" {
			t.Errorf("ClampString = %q, %v, want USD 4.00", got, err)
		}
	})

	t.Run("error", func(t *testing.T) {
		m := MustParse("USD 5.00")
		if _, err := m.AtLeastString("bogus"); !errors.Is(err, ErrParse) {
			t.Errorf("AtLeastString(bogus) = %v, want ErrParse", err)
		}
	})
}
