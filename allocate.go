package money

import (
	"fmt"
	"math/big"
	"sort"

	"github.com/exactvalues/money/exact"
)

// AllocOption adjusts how [Money.Allocate] and [Money.Distribute] split an
// amount.
type AllocOption func(*allocOptions)

type allocOptions struct {
	separateChange bool
}

// WithSeparateChange makes the split operate on the amount truncated to
// the canonical scale of the currency and append the sub-unit remainder as
// one extra trailing element. Without it, an amount carrying precision
// below the currency scale is still split exactly, at its own precision.
func WithSeparateChange() AllocOption {
	return func(o *allocOptions) { o.separateChange = true }
}

// Allocate splits the amount between the parties in proportion to the
// given ratios, without gaining or losing a single digit: the results
// always sum back to exactly m.
//
// Each party receives the floor of its proportional share; the leftover
// units are then handed out one by one to the parties whose shares were
// rounded down the most, earliest party first on ties. This is the
// largest-remainder method.
//
// Allocate returns an error if no ratios are given, any ratio is
// negative, all ratios are zero, or the amount is held in rational form
// with a non-terminating expansion.
func (m Money) Allocate(ratios []int64, opts ...AllocOption) ([]Money, error) {
	var o allocOptions
	for _, opt := range opts {
		opt(&o)
	}
	if len(ratios) == 0 {
		return nil, &Error{
			Kind:       ErrInvalidInput,
			Op:         "allocate",
			Message:    "no ratios given",
			Suggestion: "supply at least one ratio",
			Example:    "m.Allocate([]int64{1, 2, 1})",
		}
	}
	total := new(big.Int)
	for _, r := range ratios {
		if r < 0 {
			return nil, &Error{
				Kind:       ErrInvalidInput,
				Op:         "allocate",
				Message:    fmt.Sprintf("negative ratio %d", r),
				Suggestion: "use non-negative ratios",
			}
		}
		total.Add(total, big.NewInt(r))
	}
	if total.Sign() == 0 {
		return nil, &Error{
			Kind:       ErrInvalidInput,
			Op:         "allocate",
			Message:    "all ratios are zero",
			Suggestion: "make at least one ratio positive",
		}
	}

	target := m
	var change Money
	if o.separateChange {
		target, change = m.Concretize()
	}
	units, decimals, err := target.exactUnits()
	if err != nil {
		return nil, err
	}

	shares := allocateUnits(units, ratios, total)
	res := make([]Money, len(ratios), len(ratios)+1)
	for i, u := range shares {
		f, err := exact.NewFixedPoint(u, decimals)
		if err != nil {
			return nil, fmt.Errorf("allocating %v: %w", m, err)
		}
		res[i] = newMoney(m.curr, AmountFromFixedPoint(f))
	}
	if o.separateChange {
		res = append(res, change)
	}
	return res, nil
}

// Distribute splits the amount into n equal parts, following the same
// rules as [Money.Allocate] with all ratios equal to one. Parts that end
// up one unit larger come first.
func (m Money) Distribute(n int, opts ...AllocOption) ([]Money, error) {
	if n < 1 {
		return nil, &Error{
			Kind:       ErrInvalidInput,
			Op:         "distribute",
			Message:    fmt.Sprintf("cannot distribute into %d parts", n),
			Suggestion: "distribute into one or more parts",
		}
	}
	ratios := make([]int64, n)
	for i := range ratios {
		ratios[i] = 1
	}
	return m.Allocate(ratios, opts...)
}

// exactUnits returns the amount as an integer count of units at some
// decimal position, together with that position. A rational amount with a
// non-terminating expansion has no such form and is rejected.
func (m Money) exactUnits() (*big.Int, int, error) {
	if fp, ok := m.amt.FixedPoint(); ok {
		return fp.Amount(), fp.Decimals(), nil
	}
	r := m.amt.Rational().Simplify()
	twos, fives, ok := exact.TwoFiveFactors(r.Den())
	if !ok {
		return nil, 0, &Error{
			Kind:       ErrInvalidInput,
			Op:         "allocate",
			Message:    fmt.Sprintf("amount %v does not terminate in decimal form", m),
			Suggestion: "round the amount before splitting it",
			Example:    "m.Round(exact.HalfExpand)",
		}
	}
	decimals := max(twos, fives)
	if s := m.curr.Scale(); decimals < s {
		decimals = s
	}
	f, err := r.RoundTo(decimals, exact.Trunc)
	if err != nil {
		return nil, 0, fmt.Errorf("allocating %v: %w", m, err)
	}
	return f.Amount(), f.Decimals(), nil
}

// allocateUnits splits an integer unit count between parties by the
// largest-remainder method. units may be negative; the split happens on
// the magnitude and the sign is reapplied.
func allocateUnits(units *big.Int, ratios []int64, total *big.Int) []*big.Int {
	neg := units.Sign() < 0
	abs := new(big.Int).Abs(units)

	shares := make([]*big.Int, len(ratios))
	rems := make([]*big.Int, len(ratios))
	left := new(big.Int).Set(abs)
	for i, r := range ratios {
		p := new(big.Int).Mul(abs, big.NewInt(r))
		q, rem := new(big.Int).QuoRem(p, total, new(big.Int))
		shares[i], rems[i] = q, rem
		left.Sub(left, q)
	}

	// Leftover units go to the largest remainders, earliest index first
	// on ties. left is always smaller than len(ratios).
	order := make([]int, len(ratios))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return rems[order[a]].Cmp(rems[order[b]]) > 0
	})
	for i := 0; left.Sign() > 0; i++ {
		shares[order[i]].Add(shares[order[i]], oneUnit)
		left.Sub(left, oneUnit)
	}

	if neg {
		for _, s := range shares {
			s.Neg(s)
		}
	}
	return shares
}

var oneUnit = big.NewInt(1)
