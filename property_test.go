package money

import (
	"testing"

	"pgregory.net/rapid"

	"github.com/exactvalues/money/exact"
)

// drawMoney generates a fixed-point amount in one of a few currencies with
// differing scales.
func drawMoney(t *rapid.T) Money {
	curr := rapid.SampledFrom([]Currency{USD, EUR, JPY, OMR, BTC}).Draw(t, "curr")
	units := rapid.Int64().Draw(t, "units")
	decimals := rapid.IntRange(0, 10).Draw(t, "decimals")
	f := exact.NewFixedPointFromInt64(units, decimals)
	return NewFromFixedPoint(curr, f)
}

func TestMoney_PropertyStringRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		m := drawMoney(t)
		got, err := Parse(m.String())
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", m, err)
		}
		if !got.Equal(m) {
			t.Fatalf("Parse(%q) = %q", m, got)
		}
	})
}

func TestMoney_PropertyAllocationConservation(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		m := drawMoney(t)
		n := rapid.IntRange(1, 8).Draw(t, "n")
		ratios := make([]int64, n)
		for i := range ratios {
			ratios[i] = rapid.Int64Range(0, 1000).Draw(t, "ratio")
		}
		nonZero := false
		for _, r := range ratios {
			nonZero = nonZero || r > 0
		}
		if !nonZero {
			ratios[0] = 1
		}
		shares, err := m.Allocate(ratios)
		if err != nil {
			t.Fatalf("%q.Allocate(%v) failed: %v", m, ratios, err)
		}
		sum := m.Zero()
		for _, s := range shares {
			sum, err = sum.Add(s)
			if err != nil {
				t.Fatalf("summing failed: %v", err)
			}
		}
		if !sum.Equal(m) {
			t.Fatalf("%q.Allocate(%v) sums to %q", m, ratios, sum)
		}
	})
}

func TestMoney_PropertyAddSubInverse(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := drawMoney(t)
		b := NewFromFixedPoint(a.Curr(), exact.NewFixedPointFromInt64(
			rapid.Int64().Draw(t, "units"),
			rapid.IntRange(0, 10).Draw(t, "decimals")))
		sum, err := a.Add(b)
		if err != nil {
			t.Fatalf("Add failed: %v", err)
		}
		back, err := sum.Sub(b)
		if err != nil {
			t.Fatalf("Sub failed: %v", err)
		}
		if !back.Equal(a) {
			t.Fatalf("(%q + %q) - %q = %q", a, b, b, back)
		}
	})
}

func TestMoney_PropertyDivRoundBounded(t *testing.T) {
	// DivRound never drifts more than one minor unit from the exact
	// rational quotient.
	rapid.Check(t, func(t *rapid.T) {
		m := drawMoney(t)
		d := exact.NewFixedPointFromInt64(rapid.Int64Range(1, 1_000_000).Draw(t, "divisor"), 0)
		got, err := m.DivRound(d, exact.HalfExpand)
		if err != nil {
			t.Fatalf("DivRound failed: %v", err)
		}
		quotient, err := m.Amount().Rational().Div(d.Rat())
		if err != nil {
			t.Fatalf("rational division failed: %v", err)
		}
		diff := got.Amount().Rational().Sub(quotient)
		ulp := exact.NewRationalFromInt64(1, 1)
		for i := 0; i < m.Curr().Scale(); i++ {
			half, err := ulp.Div(exact.NewRationalFromInt64(10, 1))
			if err != nil {
				t.Fatalf("scaling ulp failed: %v", err)
			}
			ulp = half
		}
		if diff.Sign() < 0 {
			diff = diff.Neg()
		}
		if diff.Cmp(ulp) > 0 {
			t.Fatalf("%q.DivRound(%v) = %q, off by more than one unit", m, d, got)
		}
	})
}

func TestMoney_PropertyJSONRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		m := drawMoney(t)
		data, err := m.MarshalJSON()
		if err != nil {
			t.Fatalf("MarshalJSON failed: %v", err)
		}
		var got Money
		if err := got.UnmarshalJSON(data); err != nil {
			t.Fatalf("UnmarshalJSON(%s) failed: %v", data, err)
		}
		if !got.Equal(m) {
			t.Fatalf("round trip of %q = %q", m, got)
		}
	})
}
