package exact

import (
	"fmt"
	"math/big"
	"strings"
)

// Rational is an exact fraction p/q of two arbitrary-precision integers.
// The zero value is the numeric value 0 (0/1).
// Rational is immutable and therefore safe for concurrent use by multiple
// goroutines; every operation returns a new value.
//
// Operations do not reduce the fraction automatically: call
// [Rational.Simplify] to bring a value into canonical form, where
// gcd(|p|, |q|) = 1, the sign is carried by p, and q > 0.
// Comparison and zero checks normalize internally and do not require
// a prior Simplify.
type Rational struct {
	p *big.Int // numerator; nil means 0
	q *big.Int // denominator; nil means 1
}

// NewRational returns the fraction p/q.
// Both integers are copied, so the caller keeps ownership of the arguments.
//
// NewRational returns an error if q is zero.
func NewRational(p, q *big.Int) (Rational, error) {
	if q.Sign() == 0 {
		return Rational{}, fmt.Errorf("creating rational %v/0: %w", p, ErrDivisionByZero)
	}
	return Rational{p: new(big.Int).Set(p), q: new(big.Int).Set(q)}, nil
}

// NewRationalFromInt64 returns the fraction p/q.
// NewRationalFromInt64 panics if q is zero.
func NewRationalFromInt64(p, q int64) Rational {
	r, err := NewRational(big.NewInt(p), big.NewInt(q))
	if err != nil {
		panic(fmt.Sprintf("NewRationalFromInt64(%v, %v) failed: %v", p, q, err))
	}
	return r
}

// num returns the numerator without copying. The result must never be mutated.
func (r Rational) num() *big.Int {
	if r.p == nil {
		return new(big.Int)
	}
	return r.p
}

// den returns the denominator without copying. The result must never be mutated.
func (r Rational) den() *big.Int {
	if r.q == nil {
		return oneInt
	}
	return r.q
}

// Num returns a copy of the numerator.
func (r Rational) Num() *big.Int {
	return new(big.Int).Set(r.num())
}

// Den returns a copy of the denominator.
func (r Rational) Den() *big.Int {
	return new(big.Int).Set(r.den())
}

// Sign returns:
//
//	-1 if r < 0
//	 0 if r = 0
//	+1 if r > 0
func (r Rational) Sign() int {
	return r.num().Sign() * r.den().Sign()
}

// IsZero returns:
//
//	true  if r = 0
//	false otherwise
func (r Rational) IsZero() bool {
	return r.num().Sign() == 0
}

// Neg returns a rational with the opposite sign.
func (r Rational) Neg() Rational {
	return Rational{p: new(big.Int).Neg(r.num()), q: new(big.Int).Set(r.den())}
}

// Add returns the sum of r and s, computed over the common denominator:
// (p1*q2 + p2*q1) / (q1*q2). The result is not reduced.
func (r Rational) Add(s Rational) Rational {
	p := new(big.Int).Mul(r.num(), s.den())
	p.Add(p, new(big.Int).Mul(s.num(), r.den()))
	q := new(big.Int).Mul(r.den(), s.den())
	return Rational{p: p, q: q}
}

// Sub returns the difference between r and s, computed over the common
// denominator: (p1*q2 - p2*q1) / (q1*q2). The result is not reduced.
func (r Rational) Sub(s Rational) Rational {
	p := new(big.Int).Mul(r.num(), s.den())
	p.Sub(p, new(big.Int).Mul(s.num(), r.den()))
	q := new(big.Int).Mul(r.den(), s.den())
	return Rational{p: p, q: q}
}

// Mul returns the product (p1*p2) / (q1*q2). The result is not reduced.
func (r Rational) Mul(s Rational) Rational {
	p := new(big.Int).Mul(r.num(), s.num())
	q := new(big.Int).Mul(r.den(), s.den())
	return Rational{p: p, q: q}
}

// Div returns the quotient of r and s, computed as multiplication by the
// reciprocal of s. The result is not reduced.
//
// Div returns an error if the numerator of s is zero.
func (r Rational) Div(s Rational) (Rational, error) {
	if s.num().Sign() == 0 {
		return Rational{}, fmt.Errorf("computing [%v / %v]: %w", r, s, ErrDivisionByZero)
	}
	p := new(big.Int).Mul(r.num(), s.den())
	q := new(big.Int).Mul(r.den(), s.num())
	return Rational{p: p, q: q}, nil
}

// Simplify returns the canonical form of r: the fraction is reduced by the
// greatest common divisor, the sign is carried by the numerator, and the
// denominator is positive.
func (r Rational) Simplify() Rational {
	p := new(big.Int).Set(r.num())
	q := new(big.Int).Set(r.den())
	if q.Sign() < 0 {
		p.Neg(p)
		q.Neg(q)
	}
	if p.Sign() == 0 {
		return Rational{p: p, q: big.NewInt(1)}
	}
	gcd := new(big.Int).GCD(nil, nil, new(big.Int).Abs(p), q)
	if gcd.Cmp(oneInt) != 0 {
		p.Quo(p, gcd)
		q.Quo(q, gcd)
	}
	return Rational{p: p, q: q}
}

// Cmp compares r and s numerically and returns:
//
//	-1 if r < s
//	 0 if r = s
//	+1 if r > s
func (r Rational) Cmp(s Rational) int {
	x := new(big.Int).Mul(r.num(), s.den())
	y := new(big.Int).Mul(s.num(), r.den())
	d := x.Sub(x, y)
	sign := r.den().Sign() * s.den().Sign()
	return d.Sign() * sign
}

// Equal returns true if r and s denote the same numeric value.
func (r Rational) Equal(s Rational) bool {
	return r.Cmp(s) == 0
}

// BitSize returns the combined size of the numerator and denominator in
// bits. It is used for budget accounting when narrowing a rational to a
// fixed-point number.
func (r Rational) BitSize() int {
	return r.num().BitLen() + r.den().BitLen()
}

// String implements the [fmt.Stringer] interface and returns the fraction
// in "p/q" form without reducing it.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (r Rational) String() string {
	return r.num().String() + "/" + r.den().String()
}

// DecimalString returns the decimal expansion of r with up to precision
// fractional digits, computed by digit-by-digit long division.
// The expansion stops early if the remainder reaches zero, so terminating
// decimals are rendered exactly without trailing zeros.
// Digits beyond the precision are truncated, not rounded.
//
// DecimalString panics if precision is negative.
func (r Rational) DecimalString(precision int) string {
	if precision < 0 {
		panic(fmt.Sprintf("DecimalString(%d): negative precision", precision))
	}
	c := r.Simplify()
	p := new(big.Int).Abs(c.num())
	q := c.den()

	var b strings.Builder
	if c.num().Sign() < 0 {
		b.WriteByte('-')
	}

	quo, rem := new(big.Int).QuoRem(p, q, new(big.Int))
	b.WriteString(quo.String())
	if rem.Sign() == 0 || precision == 0 {
		return b.String()
	}

	b.WriteByte('.')
	digit, next := new(big.Int), new(big.Int)
	for i := 0; i < precision && rem.Sign() != 0; i++ {
		rem.Mul(rem, tenInt)
		digit.QuoRem(rem, q, next)
		rem, next = next, rem
		b.WriteByte(byte(digit.Int64()) + '0')
	}
	return b.String()
}

// NarrowOptions bounds the conversion of a rational to a fixed-point number.
// Exactly one of the two budgets must be positive:
//
//   - MaxPrecision limits the number of fractional digits of the result.
//   - MaxBits limits the total size of the result's amount in bits.
type NarrowOptions struct {
	MaxPrecision int
	MaxBits      int
}

// ToFixedPoint converts r to a fixed-point number bounded by the given
// budget, rounding the final digit with the given mode.
// If the expansion terminates within the budget, the result is exact and
// trailing zeros are trimmed.
//
// ToFixedPoint returns an error if the options specify both budgets,
// neither budget, or a budget that is not positive.
func (r Rational) ToFixedPoint(o NarrowOptions, mode RoundingMode) (FixedPoint, error) {
	switch {
	case o.MaxPrecision != 0 && o.MaxBits != 0:
		return FixedPoint{}, fmt.Errorf("narrowing %v: both budgets given: %w", r, ErrInvalidBudget)
	case o.MaxPrecision == 0 && o.MaxBits == 0:
		return FixedPoint{}, fmt.Errorf("narrowing %v: no budget given: %w", r, ErrInvalidBudget)
	case o.MaxPrecision < 0 || o.MaxBits < 0:
		return FixedPoint{}, fmt.Errorf("narrowing %v: negative budget: %w", r, ErrInvalidBudget)
	}

	c := r.Simplify()
	if o.MaxPrecision > 0 {
		return c.narrowToPrecision(o.MaxPrecision, mode), nil
	}

	// Bit budget: pick the fractional digit count that keeps the scaled
	// amount within MaxBits, then shrink if the estimate overshoots.
	// log10(2) ~ 30103/100000.
	digits := (o.MaxBits - c.num().BitLen() + c.den().BitLen()) * 30103 / 100000
	if digits < 0 {
		digits = 0
	}
	f := c.narrowToPrecision(digits, mode)
	for f.coef().BitLen() > o.MaxBits && digits > 0 {
		digits--
		f = c.narrowToPrecision(digits, mode)
	}
	return f, nil
}

// RoundTo returns the fixed-point number closest to r with exactly decimals
// fractional digits, rounding with the given mode. Unlike
// [Rational.ToFixedPoint], the result is not trimmed: its decimal count is
// always the requested one.
//
// RoundTo returns an error if decimals is negative.
func (r Rational) RoundTo(decimals int, mode RoundingMode) (FixedPoint, error) {
	if decimals < 0 {
		return FixedPoint{}, fmt.Errorf("rounding %v to %d decimals: %w", r, decimals, ErrNegativeDecimals)
	}
	c := r.Simplify()
	num := new(big.Int).Mul(new(big.Int).Abs(c.num()), pow10(decimals))
	quo, rem := new(big.Int).QuoRem(num, c.den(), new(big.Int))
	amt := roundQuotient(quo, rem, c.den(), c.num().Sign() < 0, mode)
	return FixedPoint{amount: amt, decimals: decimals}, nil
}

// narrowToPrecision converts the reduced rational c to a fixed-point number
// with at most precision fractional digits.
func (c Rational) narrowToPrecision(precision int, mode RoundingMode) FixedPoint {
	num := new(big.Int).Mul(new(big.Int).Abs(c.num()), pow10(precision))
	quo, rem := new(big.Int).QuoRem(num, c.den(), new(big.Int))
	amt := roundQuotient(quo, rem, c.den(), c.num().Sign() < 0, mode)
	f := FixedPoint{amount: amt, decimals: precision}
	if rem.Sign() == 0 {
		f = f.Trim(0)
	}
	return f
}
