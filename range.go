package money

import (
	"fmt"
	"strings"
)

// PriceRange is a closed interval [Min, Max] of monetary amounts in a
// single currency.
//
// PriceRange is immutable and safe for concurrent use by multiple
// goroutines.
type PriceRange struct {
	min Money
	max Money
}

// NewPriceRange returns the interval [lo, hi].
//
// NewPriceRange returns an error if the bounds are denominated in
// different currencies or lo > hi.
func NewPriceRange(lo, hi Money) (PriceRange, error) {
	c, err := lo.Cmp(hi)
	if err != nil {
		return PriceRange{}, err
	}
	if c > 0 {
		return PriceRange{}, &Error{
			Kind:       ErrInvalidInput,
			Op:         "newRange",
			Message:    fmt.Sprintf("lower bound %v exceeds upper bound %v", lo, hi),
			Suggestion: "swap the bounds",
		}
	}
	return PriceRange{min: lo, max: hi}, nil
}

// ParsePriceRange parses an interval written as two money strings joined
// by a dash, e.g. "$50 - $100". Each bound is parsed with [Parse]. Bounds
// in different currencies are rejected.
func ParsePriceRange(s string) (PriceRange, error) {
	// A spaced dash is preferred so that negative bounds stay parseable.
	lo, hi, ok := strings.Cut(s, " - ")
	if !ok {
		lo, hi, ok = strings.Cut(s, "-")
	}
	if !ok {
		return PriceRange{}, parseErr(s, "missing range separator",
			"write the range as two amounts joined by a dash", `"$50 - $100"`)
	}
	l, err := Parse(strings.TrimSpace(lo))
	if err != nil {
		return PriceRange{}, fmt.Errorf("parsing lower bound: %w", err)
	}
	h, err := Parse(strings.TrimSpace(hi))
	if err != nil {
		return PriceRange{}, fmt.Errorf("parsing upper bound: %w", err)
	}
	if !l.SameCurr(h) {
		// "$50 - 100" leaves the upper bound symbol-less; inherit the
		// lower bound's currency when the upper parsed as the default.
		reh, rerr := ParseIn(strings.TrimSpace(hi), l.Curr().Code())
		if rerr != nil {
			return PriceRange{}, errMismatch("parseRange", l.Curr(), h.Curr())
		}
		h = reh
	}
	return NewPriceRange(l, h)
}

// Min returns the lower bound.
func (r PriceRange) Min() Money {
	return r.min
}

// Max returns the upper bound.
func (r PriceRange) Max() Money {
	return r.max
}

// Span returns the width of the interval: Max - Min.
func (r PriceRange) Span() Money {
	s, _ := r.max.Sub(r.min)
	return s
}

// Contains returns true if m lies within the interval, bounds included.
//
// Contains returns an error if m is denominated in another currency.
func (r PriceRange) Contains(m Money) (bool, error) {
	lo, err := m.Cmp(r.min)
	if err != nil {
		return false, err
	}
	hi, err := m.Cmp(r.max)
	if err != nil {
		return false, err
	}
	return lo >= 0 && hi <= 0, nil
}

// IsAbove returns true if m lies strictly above the interval.
func (r PriceRange) IsAbove(m Money) (bool, error) {
	c, err := m.Cmp(r.max)
	if err != nil {
		return false, err
	}
	return c > 0, nil
}

// IsBelow returns true if m lies strictly below the interval.
func (r PriceRange) IsBelow(m Money) (bool, error) {
	c, err := m.Cmp(r.min)
	if err != nil {
		return false, err
	}
	return c < 0, nil
}

// Overlaps returns true if the two intervals share at least one point.
func (r PriceRange) Overlaps(o PriceRange) (bool, error) {
	a, err := r.min.Cmp(o.max)
	if err != nil {
		return false, err
	}
	b, err := o.min.Cmp(r.max)
	if err != nil {
		return false, err
	}
	return a <= 0 && b <= 0, nil
}

// Intersect returns the overlap of the two intervals.
//
// Intersect returns an error if the currencies differ or the intervals do
// not overlap.
func (r PriceRange) Intersect(o PriceRange) (PriceRange, error) {
	ok, err := r.Overlaps(o)
	if err != nil {
		return PriceRange{}, err
	}
	if !ok {
		return PriceRange{}, &Error{
			Kind:       ErrInvalidInput,
			Op:         "intersect",
			Message:    fmt.Sprintf("ranges %v and %v do not overlap", r, o),
			Suggestion: "check Overlaps before intersecting",
		}
	}
	lo, err := r.min.Max(o.min)
	if err != nil {
		return PriceRange{}, err
	}
	hi, err := r.max.Min(o.max)
	if err != nil {
		return PriceRange{}, err
	}
	return NewPriceRange(lo, hi)
}

// Union returns the smallest interval covering both intervals, including
// any gap between them.
func (r PriceRange) Union(o PriceRange) (PriceRange, error) {
	lo, err := r.min.Min(o.min)
	if err != nil {
		return PriceRange{}, err
	}
	hi, err := r.max.Max(o.max)
	if err != nil {
		return PriceRange{}, err
	}
	return NewPriceRange(lo, hi)
}

// Split cuts the interval into n consecutive sub-ranges whose spans sum
// exactly to the span of the original. The span is divided with
// [Money.Distribute], so the wider sub-ranges come first and no sub-unit
// is gained or lost.
func (r PriceRange) Split(n int) ([]PriceRange, error) {
	spans, err := r.Span().Distribute(n)
	if err != nil {
		return nil, err
	}
	out := make([]PriceRange, n)
	lo := r.min
	for i, span := range spans {
		hi, err := lo.Add(span)
		if err != nil {
			return nil, err
		}
		out[i] = PriceRange{min: lo, max: hi}
		lo = hi
	}
	return out, nil
}

// String implements the [fmt.Stringer] interface and renders the range as
// "USD 50.00 - USD 100.00".
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (r PriceRange) String() string {
	return r.min.String() + " - " + r.max.String()
}
