package money

import "fmt"

// Min returns the smaller of two amounts.
//
// Min returns an error if the amounts are denominated in different
// currencies.
func (m Money) Min(b Money) (Money, error) {
	c, err := m.Cmp(b)
	if err != nil {
		return Money{}, err
	}
	if c <= 0 {
		return m, nil
	}
	return b, nil
}

// Max returns the larger of two amounts.
//
// Max returns an error if the amounts are denominated in different
// currencies.
func (m Money) Max(b Money) (Money, error) {
	c, err := m.Cmp(b)
	if err != nil {
		return Money{}, err
	}
	if c >= 0 {
		return m, nil
	}
	return b, nil
}

// AtLeast returns m raised to the floor if it is below it:
// max(m, floor).
//
// AtLeast returns an error if the amounts are denominated in different
// currencies.
func (m Money) AtLeast(floor Money) (Money, error) {
	return m.Max(floor)
}

// AtMost returns m lowered to the ceiling if it is above it:
// min(m, ceiling).
//
// AtMost returns an error if the amounts are denominated in different
// currencies.
func (m Money) AtMost(ceiling Money) (Money, error) {
	return m.Min(ceiling)
}

// Clamp returns m limited to the inclusive range [lo, hi].
//
// Clamp returns an error if the currencies differ or lo > hi.
func (m Money) Clamp(lo, hi Money) (Money, error) {
	c, err := lo.Cmp(hi)
	if err != nil {
		return Money{}, err
	}
	if c > 0 {
		return Money{}, &Error{
			Kind:       ErrInvalidInput,
			Op:         "clamp",
			Message:    fmt.Sprintf("lower bound %v exceeds upper bound %v", lo, hi),
			Suggestion: "swap the bounds",
		}
	}
	r, err := m.AtLeast(lo)
	if err != nil {
		return Money{}, err
	}
	return r.AtMost(hi)
}

// boundFromString parses a bound written as a plain number in the
// currency of the receiver.
func (m Money) boundFromString(s string) (Money, error) {
	return ParseIn(s, m.curr.Code())
}

// AtLeastString is like [Money.AtLeast] with the floor given as a string
// parsed in the currency of m.
func (m Money) AtLeastString(floor string) (Money, error) {
	b, err := m.boundFromString(floor)
	if err != nil {
		return Money{}, err
	}
	return m.AtLeast(b)
}

// AtMostString is like [Money.AtMost] with the ceiling given as a string
// parsed in the currency of m.
func (m Money) AtMostString(ceiling string) (Money, error) {
	b, err := m.boundFromString(ceiling)
	if err != nil {
		return Money{}, err
	}
	return m.AtMost(b)
}

// ClampString is like [Money.Clamp] with the bounds given as strings
// parsed in the currency of m.
func (m Money) ClampString(lo, hi string) (Money, error) {
	l, err := m.boundFromString(lo)
	if err != nil {
		return Money{}, err
	}
	h, err := m.boundFromString(hi)
	if err != nil {
		return Money{}, err
	}
	return m.Clamp(l, h)
}
