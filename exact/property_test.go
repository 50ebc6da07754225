package exact

import (
	"testing"

	"github.com/shopspring/decimal"
	"pgregory.net/rapid"
)

// drawFixedPoint generates a fixed-point number with a bounded but
// representative amount and decimal count.
func drawFixedPoint(t *rapid.T, label string) FixedPoint {
	amount := rapid.Int64().Draw(t, label+"_amount")
	decimals := rapid.IntRange(0, 12).Draw(t, label+"_decimals")
	return NewFixedPointFromInt64(amount, decimals)
}

func TestProperty_FixedPointStringRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		f := drawFixedPoint(t, "f")
		back, err := ParseFixedPoint(f.String())
		if err != nil {
			t.Fatalf("ParseFixedPoint(%q) failed: %v", f.String(), err)
		}
		if back.coef().Cmp(f.coef()) != 0 || back.Decimals() != f.Decimals() {
			t.Fatalf("round-trip failed: %q -> (%v, %v)", f, back.coef(), back.Decimals())
		}
	})
}

// Addition and multiplication must agree with an independent
// arbitrary-precision decimal implementation.
func TestProperty_ArithmeticOracle(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := drawFixedPoint(t, "a")
		b := drawFixedPoint(t, "b")

		oa, err := decimal.NewFromString(a.String())
		if err != nil {
			t.Fatalf("oracle rejected %q: %v", a, err)
		}
		ob, err := decimal.NewFromString(b.String())
		if err != nil {
			t.Fatalf("oracle rejected %q: %v", b, err)
		}

		sum := a.Add(b)
		if osum := oa.Add(ob); !osum.Equal(decimal.RequireFromString(sum.String())) {
			t.Fatalf("%q + %q = %q, oracle says %q", a, b, sum, osum)
		}
		diff := a.Sub(b)
		if odiff := oa.Sub(ob); !odiff.Equal(decimal.RequireFromString(diff.String())) {
			t.Fatalf("%q - %q = %q, oracle says %q", a, b, diff, odiff)
		}
		prod := a.Mul(b)
		if oprod := oa.Mul(ob); !oprod.Equal(decimal.RequireFromString(prod.String())) {
			t.Fatalf("%q * %q = %q, oracle says %q", a, b, prod, oprod)
		}
	})
}

func TestProperty_CmpConsistentWithSub(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := drawFixedPoint(t, "a")
		b := drawFixedPoint(t, "b")
		if got, want := a.Cmp(b), a.Sub(b).Sign(); got != want {
			t.Fatalf("%q.Cmp(%q) = %v, but Sub sign is %v", a, b, got, want)
		}
	})
}

// A rational built from a fixed-point number must narrow back to an equal
// fixed-point number under any precision budget at least as wide as the
// original.
func TestProperty_RationalNarrowRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		f := drawFixedPoint(t, "f")
		r := f.Rat()
		back, err := r.ToFixedPoint(NarrowOptions{MaxPrecision: f.Decimals() + 1}, HalfEven)
		if err != nil {
			t.Fatalf("ToFixedPoint failed for %q: %v", f, err)
		}
		if !back.Equal(f) {
			t.Fatalf("narrowing %q through a rational produced %q", f, back)
		}
	})
}

// Rescaling down with any mode moves the value by less than one unit in the
// target scale, and exact rescaling preserves the value.
func TestProperty_RescaleRoundBounded(t *testing.T) {
	modes := []RoundingMode{
		HalfExpand, HalfEven, HalfCeil, HalfFloor, HalfTrunc, Ceil, Floor, Trunc, Expand,
	}
	rapid.Check(t, func(t *rapid.T) {
		f := drawFixedPoint(t, "f")
		target := rapid.IntRange(0, 12).Draw(t, "target")
		mode := modes[rapid.IntRange(0, len(modes)-1).Draw(t, "mode")]

		g, err := f.RescaleRound(target, mode)
		if err != nil {
			t.Fatalf("RescaleRound(%v, %v) failed for %q: %v", target, mode, f, err)
		}
		if target >= f.Decimals() {
			if !g.Equal(f) {
				t.Fatalf("padding %q to %v decimals changed the value to %q", f, target, g)
			}
			return
		}
		ulp := NewFixedPointFromInt64(1, target)
		if diff := g.Sub(f).Abs(); diff.Cmp(ulp) >= 0 {
			t.Fatalf("rounding %q to %v decimals (%v) moved by %q", f, target, mode, diff)
		}
	})
}
