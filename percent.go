package money

import (
	"fmt"
	"strings"

	"github.com/exactvalues/money/exact"
)

// percentFactor converts a percentage given as a fixed-point number
// ("8.25" meaning 8.25%) to the factor 0.0825.
func percentFactor(p exact.FixedPoint) exact.FixedPoint {
	f, _ := exact.NewFixedPoint(p.Amount(), p.Decimals()+2)
	return f
}

// parsePercent reads a percentage string; the trailing percent sign is
// optional, so "8.25%" and "8.25" both mean 8.25 percent.
func parsePercent(s string) (exact.FixedPoint, error) {
	trimmed := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "%"))
	f, err := exact.ParseFixedPoint(trimmed)
	if err != nil {
		return exact.FixedPoint{}, parseErr(s, "invalid percentage",
			"write the percentage as a decimal number with an optional percent sign",
			`"8.25%"`)
	}
	return f, nil
}

// AddPercent returns m increased by p percent, exactly:
// m * (1 + p/100). The result carries the full precision of the product.
func (m Money) AddPercent(p exact.FixedPoint) Money {
	changed, _ := m.Add(m.Mul(percentFactor(p)))
	return changed
}

// SubPercent returns m decreased by p percent, exactly:
// m * (1 - p/100).
func (m Money) SubPercent(p exact.FixedPoint) Money {
	changed, _ := m.Sub(m.Mul(percentFactor(p)))
	return changed
}

// AddPercentString is like [Money.AddPercent] with the percentage given
// as a string: m.AddPercentString("8.25%"). Chain [Money.Round] to round
// the result to the scale of the currency.
//
// AddPercentString returns an error if the string is not a valid
// percentage.
func (m Money) AddPercentString(s string) (Money, error) {
	p, err := parsePercent(s)
	if err != nil {
		return Money{}, err
	}
	return m.AddPercent(p), nil
}

// SubPercentString is like [Money.SubPercent] with the percentage given
// as a string.
//
// SubPercentString returns an error if the string is not a valid
// percentage.
func (m Money) SubPercentString(s string) (Money, error) {
	p, err := parsePercent(s)
	if err != nil {
		return Money{}, err
	}
	return m.SubPercent(p), nil
}

// AddPercentRound is like [Money.AddPercent] with the result rounded to
// the scale of the currency.
func (m Money) AddPercentRound(p exact.FixedPoint, mode exact.RoundingMode) Money {
	return m.AddPercent(p).Round(mode)
}

// SubPercentRound is like [Money.SubPercent] with the result rounded to
// the scale of the currency.
func (m Money) SubPercentRound(p exact.FixedPoint, mode exact.RoundingMode) Money {
	return m.SubPercent(p).Round(mode)
}

// ExtractPercent returns the p-percent portion contained in m, treating
// m as a gross amount: it solves m = base * (1 + p/100) and returns
// m - base, the exact markup or tax inside the total. For the tax on a
// net sub-total, multiply by a percent string instead: m.MulString("8.25%").
//
// ExtractPercent returns an error if p is -100, which would divide by
// zero.
func (m Money) ExtractPercent(p exact.FixedPoint) (Money, error) {
	base, err := m.RemovePercent(p)
	if err != nil {
		return Money{}, err
	}
	return m.Sub(base)
}

// ExtractPercentRound is like [Money.ExtractPercent] with the result
// rounded to the scale of the currency.
func (m Money) ExtractPercentRound(p exact.FixedPoint, mode exact.RoundingMode) (Money, error) {
	e, err := m.ExtractPercent(p)
	if err != nil {
		return Money{}, err
	}
	return e.RoundTo(m.curr.Scale(), mode)
}

// RemovePercent undoes a percentage markup: it returns the amount x such
// that x increased by p percent equals m, computed exactly as
// m / (1 + p/100). Use it to back a tax out of a gross total.
//
// RemovePercent returns an error if p is -100, which would divide by
// zero.
func (m Money) RemovePercent(p exact.FixedPoint) (Money, error) {
	denom := exact.NewFixedPointFromInt64(1, 0).Add(percentFactor(p))
	if denom.IsZero() {
		return Money{}, &Error{
			Kind:       ErrDivisionByZero,
			Op:         "removePercent",
			Message:    "markup of -100% cannot be removed",
			Suggestion: "use a markup greater than -100%",
		}
	}
	q, err := m.amt.Rational().Div(denom.Rat())
	if err != nil {
		return Money{}, fmt.Errorf("removing %v%% from %v: %w", p, m, err)
	}
	return newMoney(m.curr, AmountFromRational(q)), nil
}

// RemovePercentRound is like [Money.RemovePercent] with the result rounded
// to the scale of the currency.
func (m Money) RemovePercentRound(p exact.FixedPoint, mode exact.RoundingMode) (Money, error) {
	r, err := m.RemovePercent(p)
	if err != nil {
		return Money{}, err
	}
	return r.RoundTo(m.curr.Scale(), mode)
}
