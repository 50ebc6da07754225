package money

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/exactvalues/money/exact"
)

// Money represents a monetary amount: a currency together with an exact
// numeric value. Its zero value corresponds to "XXX 0", where [XXX]
// indicates an unknown currency.
// Money is immutable and therefore safe for concurrent use by multiple
// goroutines.
//
// Every binary operation on two Money values requires both operands to be
// denominated in the same currency; a mismatch is reported as
// [ErrCurrencyMismatch] and is never silently coerced.
type Money struct {
	curr Currency
	amt  Amount
}

// newMoney wraps an amount, zero-padding fixed-point values to at least the
// scale of the currency.
func newMoney(c Currency, a Amount) Money {
	if fp, ok := a.FixedPoint(); ok {
		a = AmountFromFixedPoint(fp.Pad(c.Scale()))
	}
	return Money{curr: c, amt: a}
}

// New returns a monetary amount equal to amount / 10^decimals in the given
// currency. If the decimal count is less than the scale of the currency,
// the result is zero-padded to the right.
//
// New returns an error if the currency code is not valid or decimals is
// negative.
func New(curr string, amount int64, decimals int) (Money, error) {
	c, err := ParseCurr(curr)
	if err != nil {
		return Money{}, fmt.Errorf("parsing currency: %w", err)
	}
	f, err := exact.NewFixedPoint(big.NewInt(amount), decimals)
	if err != nil {
		return Money{}, fmt.Errorf("converting amount: %w", err)
	}
	return newMoney(c, AmountFromFixedPoint(f)), nil
}

// MustNew is like [New] but panics if the amount cannot be constructed.
// It simplifies safe initialization of global variables holding monetary
// amounts.
func MustNew(curr string, amount int64, decimals int) Money {
	m, err := New(curr, amount, decimals)
	if err != nil {
		panic(fmt.Sprintf("New(%q, %v, %v) failed: %v", curr, amount, decimals, err))
	}
	return m
}

// NewFromFixedPoint returns a monetary amount with the given currency and
// fixed-point value.
func NewFromFixedPoint(c Currency, f exact.FixedPoint) Money {
	return newMoney(c, AmountFromFixedPoint(f))
}

// NewFromRational returns a monetary amount with the given currency and
// exact rational value. The value is kept in rational form until it is
// explicitly rounded.
func NewFromRational(c Currency, r exact.Rational) Money {
	return newMoney(c, AmountFromRational(r))
}

// NewFromMinorUnits converts an integer representing minor units of a
// currency (cents, satoshis, fens) to a monetary amount.
//
// NewFromMinorUnits returns an error if the currency code is not valid.
func NewFromMinorUnits(curr string, units int64) (Money, error) {
	c, err := ParseCurr(curr)
	if err != nil {
		return Money{}, fmt.Errorf("parsing currency: %w", err)
	}
	f := exact.NewFixedPointFromInt64(units, c.Scale())
	return newMoney(c, AmountFromFixedPoint(f)), nil
}

// NewFromFloat64 converts a float to a monetary amount, validating the
// literal against the default configuration.
// See [NewFromFloat64WithConfig] for the validation rules.
func NewFromFloat64(curr string, amount float64) (Money, error) {
	return NewFromFloat64WithConfig(CurrentConfig(), curr, amount)
}

// NewFromFloat64WithConfig converts a float to a monetary amount.
// The float is first rendered to its shortest exact decimal form; it never
// participates in arithmetic. Depending on cfg.NumberInputMode, a literal
// with more fractional digits than cfg.PrecisionWarningThreshold is
// accepted silently ([InputSilent]), logged and accepted ([InputWarn]), or
// rejected with [ErrPrecisionLoss] ([InputError]). [InputNever] rejects
// every float input.
//
// NewFromFloat64WithConfig also returns an error if the currency code is
// not valid or the float is NaN or infinite.
func NewFromFloat64WithConfig(cfg Config, curr string, amount float64) (Money, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return Money{}, &Error{
			Kind:       ErrInvalidInput,
			Op:         "newFromFloat64",
			Message:    fmt.Sprintf("special value %v", amount),
			Suggestion: "supply a finite number",
		}
	}
	s := strconv.FormatFloat(amount, 'f', -1, 64)
	if err := cfg.checkLiteral("newFromFloat64", s); err != nil {
		return Money{}, err
	}
	m, err := ParseIn(s, curr)
	if err != nil {
		return Money{}, fmt.Errorf("converting float: %w", err)
	}
	return m, nil
}

// Curr returns the currency of the amount.
func (m Money) Curr() Currency {
	return m.curr
}

// Amount returns the numeric value of the amount.
func (m Money) Amount() Amount {
	return m.amt
}

// Sign returns:
//
//	-1 if m < 0
//	 0 if m = 0
//	+1 if m > 0
func (m Money) Sign() int {
	return m.amt.Sign()
}

// IsZero returns:
//
//	true  if m = 0
//	false otherwise
func (m Money) IsZero() bool {
	return m.amt.IsZero()
}

// IsNeg returns:
//
//	true  if m < 0
//	false otherwise
func (m Money) IsNeg() bool {
	return m.Sign() < 0
}

// IsPos returns:
//
//	true  if m > 0
//	false otherwise
func (m Money) IsPos() bool {
	return m.Sign() > 0
}

// Abs returns the absolute value of the amount.
func (m Money) Abs() Money {
	return Money{curr: m.curr, amt: m.amt.Abs()}
}

// Neg returns an amount with the opposite sign.
func (m Money) Neg() Money {
	return Money{curr: m.curr, amt: m.amt.Neg()}
}

// Zero returns an amount with a value of 0 in the same currency.
func (m Money) Zero() Money {
	return newMoney(m.curr, AmountFromFixedPoint(exact.NewFixedPointFromInt64(0, m.curr.Scale())))
}

// SameCurr returns true if both amounts are denominated in the same
// currency, compared by code.
func (m Money) SameCurr(b Money) bool {
	return m.curr.Code() == b.curr.Code()
}

// addAmounts adds (or subtracts) two amounts, staying in fixed-point form
// when both operands are fixed-point and promoting to rational otherwise.
func addAmounts(a, b Amount, subtract bool) Amount {
	if fa, ok := a.FixedPoint(); ok {
		if fb, ok := b.FixedPoint(); ok {
			if subtract {
				return AmountFromFixedPoint(fa.Sub(fb))
			}
			return AmountFromFixedPoint(fa.Add(fb))
		}
	}
	ra, rb := a.Rational(), b.Rational()
	if subtract {
		return AmountFromRational(ra.Sub(rb))
	}
	return AmountFromRational(ra.Add(rb))
}

// Add returns the exact sum of amounts m and b.
//
// Add returns an error if the amounts are denominated in different
// currencies.
func (m Money) Add(b Money) (Money, error) {
	if !m.SameCurr(b) {
		return Money{}, errMismatch("add", m.curr, b.curr)
	}
	return newMoney(m.curr, addAmounts(m.amt, b.amt, false)), nil
}

// Sub returns the exact difference between amounts m and b.
//
// Sub returns an error if the amounts are denominated in different
// currencies.
func (m Money) Sub(b Money) (Money, error) {
	if !m.SameCurr(b) {
		return Money{}, errMismatch("subtract", m.curr, b.curr)
	}
	return newMoney(m.curr, addAmounts(m.amt, b.amt, true)), nil
}

// Mul returns the exact product of m and factor f.
// The result carries the full precision of the product; use [Money.MulRound]
// or [Money.Round] to narrow it to the scale of the currency.
// Multiplication never requires a rounding mode.
func (m Money) Mul(f exact.FixedPoint) Money {
	if fp, ok := m.amt.FixedPoint(); ok {
		return newMoney(m.curr, AmountFromFixedPoint(fp.Mul(f)))
	}
	return newMoney(m.curr, AmountFromRational(m.amt.Rational().Mul(f.Rat())))
}

// MulInt64 returns the exact product of m and the integer n.
func (m Money) MulInt64(n int64) Money {
	return m.Mul(exact.NewFixedPointFromInt64(n, 0))
}

// MulString returns the product of m and a factor given as a decimal string
// ("1.5") or a percentage string ("8.25%", meaning a factor of 0.0825).
//
// MulString returns an error if the string cannot be parsed.
func (m Money) MulString(s string) (Money, error) {
	f, err := parseFactor("multiply", s)
	if err != nil {
		return Money{}, err
	}
	return m.Mul(f), nil
}

// MulRound returns the product of m and factor f, rounded to the scale of
// the currency with the given mode.
func (m Money) MulRound(f exact.FixedPoint, mode exact.RoundingMode) Money {
	p := m.Mul(f)
	r, _ := p.RoundTo(m.curr.Scale(), mode)
	return r
}

// Div returns the exact quotient of m and divisor d.
//
// The divisor's mantissa is factored into powers of 2 and 5. If it contains
// any other prime factor and the amount is held in fixed-point form, the
// quotient does not terminate in base 10 and Div returns
// [ErrDivisionRequiresRounding]: use [Money.DivRound] instead.
// Amounts already held in rational form divide exactly regardless of the
// divisor.
//
// Div returns [ErrDivisionByZero] if the divisor is zero.
func (m Money) Div(d exact.FixedPoint) (Money, error) {
	if d.IsZero() {
		return Money{}, &Error{
			Kind:       ErrDivisionByZero,
			Op:         "divide",
			Message:    "divisor is zero",
			Suggestion: "check the divisor before dividing",
		}
	}
	if fp, ok := m.amt.FixedPoint(); ok {
		mant := d.Amount()
		twos, fives, ok := exact.TwoFiveFactors(mant)
		if !ok {
			return Money{}, errNeedsRounding("divide", d.String())
		}
		extra := max(twos, fives)
		num := fp.Amount()
		num.Mul(num, pow10Int(d.Decimals()+extra))
		num.Quo(num, mant)
		f, err := exact.NewFixedPoint(num, fp.Decimals()+extra)
		if err != nil {
			return Money{}, fmt.Errorf("computing [%v / %v]: %w", m, d, err)
		}
		return newMoney(m.curr, AmountFromFixedPoint(f)), nil
	}
	q, err := m.amt.Rational().Div(d.Rat())
	if err != nil {
		return Money{}, fmt.Errorf("computing [%v / %v]: %w", m, d, err)
	}
	return newMoney(m.curr, AmountFromRational(q)), nil
}

// DivInt64 returns the exact quotient of m and the integer n,
// following the same rules as [Money.Div].
func (m Money) DivInt64(n int64) (Money, error) {
	return m.Div(exact.NewFixedPointFromInt64(n, 0))
}

// DivRound returns the quotient of m and divisor d, computed exactly in
// rational form and then rounded to the scale of the currency with the
// given mode.
//
// DivRound returns [ErrDivisionByZero] if the divisor is zero.
func (m Money) DivRound(d exact.FixedPoint, mode exact.RoundingMode) (Money, error) {
	if d.IsZero() {
		return Money{}, &Error{
			Kind:       ErrDivisionByZero,
			Op:         "divide",
			Message:    "divisor is zero",
			Suggestion: "check the divisor before dividing",
		}
	}
	q, err := m.amt.Rational().Div(d.Rat())
	if err != nil {
		return Money{}, fmt.Errorf("computing [%v / %v]: %w", m, d, err)
	}
	f, err := q.RoundTo(m.curr.Scale(), mode)
	if err != nil {
		return Money{}, fmt.Errorf("computing [%v / %v]: %w", m, d, err)
	}
	return newMoney(m.curr, AmountFromFixedPoint(f)), nil
}

// Round returns the amount rounded to the scale of its currency.
// The zero value of [exact.RoundingMode] is half-away-from-zero, the usual
// commercial rounding.
func (m Money) Round(mode exact.RoundingMode) Money {
	r, _ := m.RoundTo(m.curr.Scale(), mode)
	return r
}

// RoundTo returns the amount rounded to the given number of digits after
// the decimal point, then zero-padded back to the scale of its currency.
// Rounding always demotes a rational amount to fixed-point form.
//
// RoundTo returns an error if decimals is negative.
func (m Money) RoundTo(decimals int, mode exact.RoundingMode) (Money, error) {
	if decimals < 0 {
		return Money{}, &Error{
			Kind:       ErrInvalidInput,
			Op:         "round",
			Message:    fmt.Sprintf("negative decimal count %d", decimals),
			Suggestion: "round to zero or more decimals",
		}
	}
	var f exact.FixedPoint
	if fp, ok := m.amt.FixedPoint(); ok {
		f, _ = fp.RescaleRound(decimals, mode)
	} else {
		var err error
		f, err = m.amt.Rational().RoundTo(decimals, mode)
		if err != nil {
			return Money{}, fmt.Errorf("rounding %v: %w", m, err)
		}
	}
	return newMoney(m.curr, AmountFromFixedPoint(f)), nil
}

// Concretize splits the amount into a value truncated to the canonical
// scale of its currency and the exact remainder, such that
// value + remainder equals the original amount.
func (m Money) Concretize() (value, remainder Money) {
	v, _ := m.RoundTo(m.curr.Scale(), exact.Trunc)
	r := newMoney(m.curr, addAmounts(m.amt, v.amt, true))
	return v, r
}

// hasDigitsBelow reports whether the amount has non-zero digits more than
// offset places after the decimal point, checked via modulo against the
// scaled denominator.
func (m Money) hasDigitsBelow(offset int) bool {
	r := m.amt.Rational().Simplify()
	p := r.Num()
	p.Abs(p)
	p.Mul(p, pow10Int(offset))
	return p.Mod(p, r.Den()).Sign() != 0
}

// HasChange returns true if the amount has a non-zero fractional part.
func (m Money) HasChange() bool {
	return m.hasDigitsBelow(0)
}

// HasSubUnits returns true if the amount has non-zero digits below the
// canonical scale of its currency, i.e. precision finer than the smallest
// minor unit.
func (m Money) HasSubUnits() bool {
	return m.hasDigitsBelow(m.curr.Scale())
}

// Cmp compares amounts numerically and returns:
//
//	-1 if m < b
//	 0 if m = b
//	+1 if m > b
//
// Cmp returns an error if the amounts are denominated in different
// currencies.
func (m Money) Cmp(b Money) (int, error) {
	if !m.SameCurr(b) {
		return 0, errMismatch("compare", m.curr, b.curr)
	}
	return m.amt.Cmp(b.amt), nil
}

// Equal returns true if both amounts are denominated in the same currency
// and their decimal expansions agree to 50 fractional digits.
// Mixed fixed-point and rational representations of the same value are
// considered equal, unless [Config.StrictPrecision] is set, in which case
// both operands must also share the same representation form.
func (m Money) Equal(b Money) bool {
	if !m.SameCurr(b) {
		return false
	}
	if CurrentConfig().StrictPrecision {
		return m.amt.IsRational() == b.amt.IsRational() && m.amt.Cmp(b.amt) == 0
	}
	return m.amt.Equal(b.amt)
}

// String implements the [fmt.Stringer] interface and returns the currency
// code followed by the numeric value, e.g. "USD 5.67".
// Amounts held in rational form are rendered as fractions, e.g. "USD 1/3";
// see [Money.Display] for locale-aware formatting.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (m Money) String() string {
	return m.curr.Code() + " " + m.amt.String()
}

// pow10Int returns 10^n as a big integer. n must not be negative.
func pow10Int(n int) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)
}

// parseFactor parses a multiplication factor: either a decimal string or a
// percentage string, where "8.25%" denotes the factor 0.0825.
func parseFactor(op, s string) (exact.FixedPoint, error) {
	if p, ok := strings.CutSuffix(s, "%"); ok {
		f, err := exact.ParseFixedPoint(p)
		if err != nil {
			return exact.FixedPoint{}, &Error{
				Kind:       ErrParse,
				Op:         op,
				Message:    fmt.Sprintf("malformed percentage %q", s),
				Suggestion: "use a decimal number followed by a percent sign",
				Example:    `"8.25%"`,
			}
		}
		return exact.NewFixedPoint(f.Amount(), f.Decimals()+2)
	}
	f, err := exact.ParseFixedPoint(s)
	if err != nil {
		return exact.FixedPoint{}, &Error{
			Kind:       ErrParse,
			Op:         op,
			Message:    fmt.Sprintf("malformed factor %q", s),
			Suggestion: "use a decimal number or a percentage",
			Example:    `"1.5" or "8.25%"`,
		}
	}
	return f, nil
}
