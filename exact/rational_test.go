package exact

import (
	"errors"
	"math/big"
	"testing"
)

func TestNewRational(t *testing.T) {
	if _, err := NewRational(big.NewInt(1), big.NewInt(0)); !errors.Is(err, ErrDivisionByZero) {
		t.Errorf("NewRational(1, 0) error = %v, want %v", err, ErrDivisionByZero)
	}
	r, err := NewRational(big.NewInt(3), big.NewInt(-6))
	if err != nil {
		t.Fatalf("NewRational(3, -6) failed: %v", err)
	}
	if got := r.Simplify().String(); got != "-1/2" {
		t.Errorf("NewRational(3, -6).Simplify() = %q, want %q", got, "-1/2")
	}
}

func TestRational_Arithmetic(t *testing.T) {
	tests := []struct {
		op         string
		a, b, c, d int64
		want       string
	}{
		{"add", 1, 2, 1, 3, "5/6"},
		{"add", 1, 2, -1, 2, "0/1"},
		{"sub", 1, 2, 1, 3, "1/6"},
		{"sub", 1, 3, 1, 2, "-1/6"},
		{"mul", 2, 3, 3, 4, "1/2"},
		{"mul", -2, 3, 3, 2, "-1/1"},
		{"div", 1, 2, 1, 4, "2/1"},
		{"div", 3, 5, -3, 5, "-1/1"},
	}
	for _, tt := range tests {
		a := NewRationalFromInt64(tt.a, tt.b)
		b := NewRationalFromInt64(tt.c, tt.d)
		var (
			got Rational
			err error
		)
		switch tt.op {
		case "add":
			got = a.Add(b)
		case "sub":
			got = a.Sub(b)
		case "mul":
			got = a.Mul(b)
		case "div":
			got, err = a.Div(b)
		}
		if err != nil {
			t.Errorf("%v/%v %s %v/%v failed: %v", tt.a, tt.b, tt.op, tt.c, tt.d, err)
			continue
		}
		if s := got.Simplify().String(); s != tt.want {
			t.Errorf("%v/%v %s %v/%v = %q, want %q", tt.a, tt.b, tt.op, tt.c, tt.d, s, tt.want)
		}
	}
}

func TestRational_DivByZero(t *testing.T) {
	a := NewRationalFromInt64(1, 2)
	zero := NewRationalFromInt64(0, 5)
	if _, err := a.Div(zero); !errors.Is(err, ErrDivisionByZero) {
		t.Errorf("Div by zero error = %v, want %v", err, ErrDivisionByZero)
	}
}

func TestRational_Cmp(t *testing.T) {
	tests := []struct {
		a, b, c, d int64
		want       int
	}{
		{1, 2, 2, 4, 0},
		{1, 2, 1, 3, 1},
		{1, 3, 1, 2, -1},
		{-1, 2, 1, -2, 0}, // sign carried by either part
		{1, -2, 1, 3, -1},
	}
	for _, tt := range tests {
		a := NewRationalFromInt64(tt.a, tt.b)
		b := NewRationalFromInt64(tt.c, tt.d)
		if got := a.Cmp(b); got != tt.want {
			t.Errorf("(%v/%v).Cmp(%v/%v) = %v, want %v", tt.a, tt.b, tt.c, tt.d, got, tt.want)
		}
	}
}

func TestRational_DecimalString(t *testing.T) {
	tests := []struct {
		p, q      int64
		precision int
		want      string
	}{
		{1, 2, 10, "0.5"},
		{3, 2, 10, "1.5"},
		{1, 3, 5, "0.33333"},
		{2, 3, 5, "0.66666"},
		{1, 7, 7, "0.1428571"},
		{-1, 2, 10, "-0.5"},
		{5, 1, 10, "5"},
		{0, 3, 10, "0"},
		{1, 3, 0, "0"},
		{22, 7, 3, "3.142"},
	}
	for _, tt := range tests {
		r := NewRationalFromInt64(tt.p, tt.q)
		if got := r.DecimalString(tt.precision); got != tt.want {
			t.Errorf("(%v/%v).DecimalString(%v) = %q, want %q", tt.p, tt.q, tt.precision, got, tt.want)
		}
	}
}

// The decimal expansion of a rational must agree byte-for-byte with the
// fixed-point rendering of the same value at the precision the expansion
// actually needs.
func TestRational_DecimalStringMatchesFixedPoint(t *testing.T) {
	tests := []string{"1.5", "-0.05", "123.456", "0.875", "42"}
	for _, s := range tests {
		f := MustParseFixedPoint(s)
		r := f.Rat()
		if got := r.DecimalString(f.Decimals()); got != f.Trim(0).String() {
			t.Errorf("Rat(%q).DecimalString(%v) = %q, want %q", s, f.Decimals(), got, f.Trim(0))
		}
	}
}

func TestRational_ToFixedPoint(t *testing.T) {
	t.Run("precision budget", func(t *testing.T) {
		tests := []struct {
			p, q      int64
			precision int
			mode      RoundingMode
			want      string
		}{
			{1, 2, 5, HalfExpand, "0.5"},
			{1, 3, 5, HalfExpand, "0.33333"},
			{2, 3, 5, HalfExpand, "0.66667"},
			{2, 3, 5, Trunc, "0.66666"},
			{1, 7, 4, HalfEven, "0.1429"},
			{-1, 3, 3, HalfExpand, "-0.333"},
			{5, 4, 6, HalfExpand, "1.25"},
		}
		for _, tt := range tests {
			r := NewRationalFromInt64(tt.p, tt.q)
			got, err := r.ToFixedPoint(NarrowOptions{MaxPrecision: tt.precision}, tt.mode)
			if err != nil {
				t.Errorf("(%v/%v).ToFixedPoint(%v, %v) failed: %v", tt.p, tt.q, tt.precision, tt.mode, err)
				continue
			}
			if got.String() != tt.want {
				t.Errorf("(%v/%v).ToFixedPoint(%v, %v) = %q, want %q", tt.p, tt.q, tt.precision, tt.mode, got, tt.want)
			}
		}
	})

	t.Run("bit budget", func(t *testing.T) {
		r := NewRationalFromInt64(1, 3)
		f, err := r.ToFixedPoint(NarrowOptions{MaxBits: 64}, HalfEven)
		if err != nil {
			t.Fatalf("ToFixedPoint(MaxBits: 64) failed: %v", err)
		}
		if f.coef().BitLen() > 64 {
			t.Errorf("amount has %v bits, budget is 64", f.coef().BitLen())
		}
		if f.IsZero() {
			t.Errorf("narrowed 1/3 to zero")
		}
		// The retained digits must all be 3s.
		s := f.String()
		if s[:4] != "0.33" {
			t.Errorf("narrowed 1/3 = %q", s)
		}
	})

	t.Run("error", func(t *testing.T) {
		r := NewRationalFromInt64(1, 3)
		tests := map[string]NarrowOptions{
			"both":     {MaxPrecision: 5, MaxBits: 64},
			"neither":  {},
			"negative": {MaxPrecision: -1},
		}
		for name, o := range tests {
			t.Run(name, func(t *testing.T) {
				if _, err := r.ToFixedPoint(o, HalfExpand); !errors.Is(err, ErrInvalidBudget) {
					t.Errorf("ToFixedPoint(%+v) error = %v, want %v", o, err, ErrInvalidBudget)
				}
			})
		}
	})
}

func TestRational_BitSize(t *testing.T) {
	r := NewRationalFromInt64(255, 16) // 8 + 5 bits
	if got := r.BitSize(); got != 13 {
		t.Errorf("(255/16).BitSize() = %v, want 13", got)
	}
}
