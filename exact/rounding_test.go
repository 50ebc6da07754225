package exact

import (
	"math/big"
	"testing"
)

func TestRoundingMode_String(t *testing.T) {
	tests := []struct {
		mode RoundingMode
		want string
	}{
		{HalfExpand, "halfExpand"},
		{HalfEven, "halfEven"},
		{HalfCeil, "halfCeil"},
		{HalfFloor, "halfFloor"},
		{HalfTrunc, "halfTrunc"},
		{Ceil, "ceil"},
		{Floor, "floor"},
		{Trunc, "trunc"},
		{Expand, "expand"},
	}
	for _, tt := range tests {
		if got := tt.mode.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", int(tt.mode), got, tt.want)
		}
		got, err := ParseRoundingMode(tt.want)
		if err != nil {
			t.Errorf("ParseRoundingMode(%q) failed: %v", tt.want, err)
			continue
		}
		if got != tt.mode {
			t.Errorf("ParseRoundingMode(%q) = %v, want %v", tt.want, got, tt.mode)
		}
	}
}

func TestParseRoundingMode_Unknown(t *testing.T) {
	if _, err := ParseRoundingMode("nearest"); err == nil {
		t.Errorf("ParseRoundingMode(%q) did not fail", "nearest")
	}
}

func TestRoundQuotient(t *testing.T) {
	// value = sign * (quo + rem/div)
	tests := []struct {
		quo, rem, div int64
		neg           bool
		mode          RoundingMode
		want          int64
	}{
		// 2.5 rounded to an integer under every mode
		{2, 5, 10, false, Ceil, 3},
		{2, 5, 10, false, Floor, 2},
		{2, 5, 10, false, Trunc, 2},
		{2, 5, 10, false, Expand, 3},
		{2, 5, 10, false, HalfEven, 2},
		{2, 5, 10, false, HalfExpand, 3},
		{2, 5, 10, false, HalfCeil, 3},
		{2, 5, 10, false, HalfFloor, 2},
		{2, 5, 10, false, HalfTrunc, 2},
		// 3.5: halfEven picks the even neighbor
		{3, 5, 10, false, HalfEven, 4},
		{3, 5, 10, false, HalfExpand, 4},
		// -2.5
		{2, 5, 10, true, Ceil, -2},
		{2, 5, 10, true, Floor, -3},
		{2, 5, 10, true, Trunc, -2},
		{2, 5, 10, true, Expand, -3},
		{2, 5, 10, true, HalfEven, -2},
		{2, 5, 10, true, HalfExpand, -3},
		{2, 5, 10, true, HalfCeil, -2},
		{2, 5, 10, true, HalfFloor, -3},
		// below the midpoint nothing steps among half modes
		{7, 4, 10, false, HalfExpand, 7},
		{7, 4, 10, false, HalfCeil, 7},
		{7, 4, 10, true, HalfFloor, -7},
		// above the midpoint every half mode steps
		{7, 6, 10, false, HalfTrunc, 8},
		{7, 6, 10, true, HalfCeil, -8},
		// any non-zero remainder steps the directed modes
		{7, 1, 10, false, Ceil, 8},
		{7, 1, 10, true, Floor, -8},
		{7, 1, 10, false, Expand, 8},
		// zero remainder never steps, for any mode
		{7, 0, 10, false, Ceil, 7},
		{7, 0, 10, false, Expand, 7},
		{7, 0, 10, true, Floor, -7},
		{7, 0, 10, false, HalfExpand, 7},
		{7, 0, 10, false, HalfEven, 7},
	}
	for _, tt := range tests {
		got := roundQuotient(big.NewInt(tt.quo), big.NewInt(tt.rem), big.NewInt(tt.div), tt.neg, tt.mode)
		if got.Int64() != tt.want {
			t.Errorf("roundQuotient(%v, %v, %v, %v, %v) = %v, want %v",
				tt.quo, tt.rem, tt.div, tt.neg, tt.mode, got, tt.want)
		}
	}
}

func TestTwoFiveFactors(t *testing.T) {
	tests := []struct {
		n           int64
		twos, fives int
		ok          bool
	}{
		{1, 0, 0, true},
		{2, 1, 0, true},
		{4, 2, 0, true},
		{5, 0, 1, true},
		{8, 3, 0, true},
		{10, 1, 1, true},
		{100, 2, 2, true},
		{-40, 3, 1, true},
		{3, 0, 0, false},
		{6, 1, 0, false},
		{7, 0, 0, false},
		{30, 1, 1, false},
		{0, 0, 0, false},
	}
	for _, tt := range tests {
		twos, fives, ok := TwoFiveFactors(big.NewInt(tt.n))
		if twos != tt.twos || fives != tt.fives || ok != tt.ok {
			t.Errorf("TwoFiveFactors(%v) = (%v, %v, %v), want (%v, %v, %v)",
				tt.n, twos, fives, ok, tt.twos, tt.fives, tt.ok)
		}
	}
}
