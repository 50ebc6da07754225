package exact

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// FixedPoint is an arbitrary-precision decimal number equal to
// amount / 10^decimals.
// The zero value is the numeric value 0 with 0 decimals.
// FixedPoint is immutable and therefore safe for concurrent use by
// multiple goroutines; every operation returns a new value.
//
// Two fixed-point numbers are numerically equal if they denote the same
// value after rescaling to a common number of decimals, so 1.5 and 1.50
// are equal even though their representations differ.
// Use [FixedPoint.Cmp] or [FixedPoint.Equal] for value comparison.
type FixedPoint struct {
	amount   *big.Int // scaled integer amount; nil means 0
	decimals int      // number of digits after the decimal point
}

var (
	// ErrDivisionByZero is returned when a divisor is zero.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrNegativeDecimals is returned when a decimal count is negative.
	ErrNegativeDecimals = errors.New("negative decimal count")
	// ErrInvalidNumber is returned when a string does not represent
	// a valid decimal number.
	ErrInvalidNumber = errors.New("invalid decimal number")
	// ErrExponentRange is returned when a decimal exponent is too large
	// to materialize.
	ErrExponentRange = errors.New("exponent out of range")
	// ErrInvalidBudget is returned when a narrowing request does not specify
	// exactly one of the precision and bit budgets, or specifies a budget
	// that is not positive.
	ErrInvalidBudget = errors.New("invalid narrowing budget")
)

// maxExponent bounds the exponents accepted while parsing.
// Exponents beyond it would materialize unreasonably large integers.
const maxExponent = 10_000

// NewFixedPoint returns a fixed-point number equal to amount / 10^decimals.
// The amount is copied, so the caller keeps ownership of the argument.
//
// NewFixedPoint returns an error if decimals is negative.
func NewFixedPoint(amount *big.Int, decimals int) (FixedPoint, error) {
	if decimals < 0 {
		return FixedPoint{}, fmt.Errorf("creating fixed-point with %d decimals: %w", decimals, ErrNegativeDecimals)
	}
	return FixedPoint{amount: new(big.Int).Set(amount), decimals: decimals}, nil
}

// NewFixedPointFromInt64 returns a fixed-point number equal to
// amount / 10^decimals.
// NewFixedPointFromInt64 panics if decimals is negative.
func NewFixedPointFromInt64(amount int64, decimals int) FixedPoint {
	f, err := NewFixedPoint(big.NewInt(amount), decimals)
	if err != nil {
		panic(fmt.Sprintf("NewFixedPointFromInt64(%v, %v) failed: %v", amount, decimals, err))
	}
	return f
}

// ParseFixedPoint converts a string to a fixed-point number.
// The input string must be in one of the following formats:
//
//	1.234
//	-1234
//	+0.000001234
//	1.83e5
//	0.22E-9
//
// The number of decimals of the result equals the number of fractional
// digits in the input, adjusted by the exponent; a negative adjusted count
// is materialized as trailing zeros in the amount.
// Digits are accumulated with integer operations only.
//
// ParseFixedPoint returns an error if the string is not a valid decimal
// number or if the exponent is out of range.
func ParseFixedPoint(s string) (FixedPoint, error) {
	var (
		pos     int
		width   = len(s)
		neg     bool
		coef    = new(big.Int)
		digit   = new(big.Int)
		scale   int
		hascoef bool
		eneg    bool
		exp     int
		hasexp  bool
		hase    bool
	)

	// Sign
	switch {
	case pos == width:
		// skip
	case s[pos] == '-':
		neg = true
		pos++
	case s[pos] == '+':
		pos++
	}

	// Integer
	for pos < width && s[pos] >= '0' && s[pos] <= '9' {
		hascoef = true
		coef.Mul(coef, tenInt)
		coef.Add(coef, digit.SetInt64(int64(s[pos]-'0')))
		pos++
	}

	// Fraction
	if pos < width && s[pos] == '.' {
		pos++
		for pos < width && s[pos] >= '0' && s[pos] <= '9' {
			hascoef = true
			coef.Mul(coef, tenInt)
			coef.Add(coef, digit.SetInt64(int64(s[pos]-'0')))
			scale++
			pos++
		}
	}

	// Exponential part
	if pos < width && (s[pos] == 'e' || s[pos] == 'E') {
		hase = true
		pos++
		switch {
		case pos == width:
			// skip
		case s[pos] == '-':
			eneg = true
			pos++
		case s[pos] == '+':
			pos++
		}
		for pos < width && s[pos] >= '0' && s[pos] <= '9' {
			exp = exp*10 + int(s[pos]-'0')
			if exp > maxExponent {
				return FixedPoint{}, fmt.Errorf("parsing %q: %w", s, ErrExponentRange)
			}
			hasexp = true
			pos++
		}
	}

	if pos != width {
		return FixedPoint{}, fmt.Errorf("parsing %q: invalid character %q: %w", s, s[pos], ErrInvalidNumber)
	}
	if !hascoef {
		return FixedPoint{}, fmt.Errorf("parsing %q: no digits: %w", s, ErrInvalidNumber)
	}
	if hase && !hasexp {
		return FixedPoint{}, fmt.Errorf("parsing %q: no exponent digits: %w", s, ErrInvalidNumber)
	}

	if eneg {
		scale += exp
	} else {
		scale -= exp
	}
	if scale < 0 {
		coef.Mul(coef, pow10(-scale))
		scale = 0
	}
	if neg {
		coef.Neg(coef)
	}
	return FixedPoint{amount: coef, decimals: scale}, nil
}

// MustParseFixedPoint is like [ParseFixedPoint] but panics if the string
// cannot be parsed.
// It simplifies safe initialization of global variables holding fixed-point
// numbers.
func MustParseFixedPoint(s string) FixedPoint {
	f, err := ParseFixedPoint(s)
	if err != nil {
		panic(fmt.Sprintf("MustParseFixedPoint(%q) failed: %v", s, err))
	}
	return f
}

// coef returns the scaled integer amount without copying.
// The result must never be mutated.
func (f FixedPoint) coef() *big.Int {
	if f.amount == nil {
		return new(big.Int)
	}
	return f.amount
}

// Amount returns a copy of the scaled integer amount.
func (f FixedPoint) Amount() *big.Int {
	return new(big.Int).Set(f.coef())
}

// Decimals returns the number of digits after the decimal point.
func (f FixedPoint) Decimals() int {
	return f.decimals
}

// Sign returns:
//
//	-1 if f < 0
//	 0 if f = 0
//	+1 if f > 0
func (f FixedPoint) Sign() int {
	return f.coef().Sign()
}

// IsZero returns:
//
//	true  if f = 0
//	false otherwise
func (f FixedPoint) IsZero() bool {
	return f.Sign() == 0
}

// IsNeg returns:
//
//	true  if f < 0
//	false otherwise
func (f FixedPoint) IsNeg() bool {
	return f.Sign() < 0
}

// IsInt returns true if there are no non-zero digits after the decimal point.
func (f FixedPoint) IsInt() bool {
	if f.decimals == 0 {
		return true
	}
	rem := new(big.Int).Rem(f.coef(), pow10(f.decimals))
	return rem.Sign() == 0
}

// Neg returns a fixed-point number with the opposite sign.
func (f FixedPoint) Neg() FixedPoint {
	return FixedPoint{amount: new(big.Int).Neg(f.coef()), decimals: f.decimals}
}

// Abs returns the absolute value of f.
func (f FixedPoint) Abs() FixedPoint {
	return FixedPoint{amount: new(big.Int).Abs(f.coef()), decimals: f.decimals}
}

// Rescale returns a fixed-point number with the given number of decimals.
// Scaling up pads the amount with zeros and is always exact; scaling down
// truncates the discarded digits. See also [FixedPoint.RescaleRound].
//
// Rescale returns an error if decimals is negative.
func (f FixedPoint) Rescale(decimals int) (FixedPoint, error) {
	return f.RescaleRound(decimals, Trunc)
}

// RescaleRound returns a fixed-point number with the given number of
// decimals, rounding any discarded digits with the given mode.
//
// RescaleRound returns an error if decimals is negative.
func (f FixedPoint) RescaleRound(decimals int, mode RoundingMode) (FixedPoint, error) {
	if decimals < 0 {
		return FixedPoint{}, fmt.Errorf("rescaling to %d decimals: %w", decimals, ErrNegativeDecimals)
	}
	switch {
	case decimals == f.decimals:
		return f, nil
	case decimals > f.decimals:
		amt := new(big.Int).Mul(f.coef(), pow10(decimals-f.decimals))
		return FixedPoint{amount: amt, decimals: decimals}, nil
	default:
		div := pow10(f.decimals - decimals)
		abs := new(big.Int).Abs(f.coef())
		quo, rem := new(big.Int).QuoRem(abs, div, new(big.Int))
		amt := roundQuotient(quo, rem, div, f.Sign() < 0, mode)
		return FixedPoint{amount: amt, decimals: decimals}, nil
	}
}

// Pad returns a fixed-point number zero-padded to at least the given number
// of decimals. Padding never loses precision.
func (f FixedPoint) Pad(decimals int) FixedPoint {
	if decimals <= f.decimals {
		return f
	}
	g, _ := f.Rescale(decimals)
	return g
}

// Trim returns a fixed-point number with trailing zeros removed,
// down to at least the given number of decimals.
func (f FixedPoint) Trim(decimals int) FixedPoint {
	if decimals < 0 {
		decimals = 0
	}
	amt := new(big.Int).Set(f.coef())
	d := f.decimals
	rem := new(big.Int)
	for d > decimals {
		quo, _ := new(big.Int).QuoRem(amt, tenInt, rem)
		if rem.Sign() != 0 {
			break
		}
		amt.Set(quo)
		d--
	}
	return FixedPoint{amount: amt, decimals: d}
}

// align rescales a and b to their common (maximum) number of decimals and
// returns the scaled amounts together with that number.
func align(a, b FixedPoint) (x, y *big.Int, decimals int) {
	decimals = max(a.decimals, b.decimals)
	x = new(big.Int).Set(a.coef())
	if a.decimals < decimals {
		x.Mul(x, pow10(decimals-a.decimals))
	}
	y = new(big.Int).Set(b.coef())
	if b.decimals < decimals {
		y.Mul(y, pow10(decimals-b.decimals))
	}
	return x, y, decimals
}

// Add returns the sum of f and g.
// Both operands are rescaled to their common number of decimals first,
// so addition is always exact.
func (f FixedPoint) Add(g FixedPoint) FixedPoint {
	x, y, d := align(f, g)
	return FixedPoint{amount: x.Add(x, y), decimals: d}
}

// Sub returns the difference between f and g.
// Both operands are rescaled to their common number of decimals first,
// so subtraction is always exact.
func (f FixedPoint) Sub(g FixedPoint) FixedPoint {
	x, y, d := align(f, g)
	return FixedPoint{amount: x.Sub(x, y), decimals: d}
}

// Mul returns the product of f and g.
// The result carries the summed decimals of both operands and is
// therefore exact; round or rescale it explicitly when a narrower
// representation is needed.
func (f FixedPoint) Mul(g FixedPoint) FixedPoint {
	amt := new(big.Int).Mul(f.coef(), g.coef())
	return FixedPoint{amount: amt, decimals: f.decimals + g.decimals}
}

// MulInt64 returns the product of f and the integer n.
func (f FixedPoint) MulInt64(n int64) FixedPoint {
	amt := new(big.Int).Mul(f.coef(), big.NewInt(n))
	return FixedPoint{amount: amt, decimals: f.decimals}
}

// Cmp compares f and g numerically and returns:
//
//	-1 if f < g
//	 0 if f = g
//	+1 if f > g
//
// The comparison rescales both operands to a common number of decimals and
// compares integers; it never goes through floating point.
func (f FixedPoint) Cmp(g FixedPoint) int {
	x, y, _ := align(f, g)
	return x.Cmp(y)
}

// Equal returns true if f and g denote the same numeric value,
// regardless of their decimal counts.
func (f FixedPoint) Equal(g FixedPoint) bool {
	return f.Cmp(g) == 0
}

// Less returns true if f is numerically smaller than g.
func (f FixedPoint) Less(g FixedPoint) bool {
	return f.Cmp(g) < 0
}

// String implements the [fmt.Stringer] interface and returns a plain decimal
// string with exactly [FixedPoint.Decimals] fractional digits.
// The digits are assembled with integer division and modulo; the conversion
// never goes through floating point.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (f FixedPoint) String() string {
	abs := new(big.Int).Abs(f.coef())
	digits := abs.String()

	var b strings.Builder
	b.Grow(len(digits) + f.decimals + 3)
	if f.Sign() < 0 {
		b.WriteByte('-')
	}
	switch {
	case f.decimals == 0:
		b.WriteString(digits)
	case len(digits) > f.decimals:
		b.WriteString(digits[:len(digits)-f.decimals])
		b.WriteByte('.')
		b.WriteString(digits[len(digits)-f.decimals:])
	default:
		b.WriteString("0.")
		for i := 0; i < f.decimals-len(digits); i++ {
			b.WriteByte('0')
		}
		b.WriteString(digits)
	}
	return b.String()
}

// Rat returns the exact rational representation of f.
func (f FixedPoint) Rat() Rational {
	return Rational{p: new(big.Int).Set(f.coef()), q: pow10(f.decimals)}
}

// Int64 returns the whole and fractional parts of f as int64 values such
// that f = whole + frac / 10^decimals.
// It returns false if either part does not fit in an int64.
func (f FixedPoint) Int64() (whole, frac int64, ok bool) {
	div := pow10(f.decimals)
	q, r := new(big.Int).QuoRem(f.coef(), div, new(big.Int))
	if !q.IsInt64() || !r.IsInt64() {
		return 0, 0, false
	}
	return q.Int64(), r.Int64(), true
}

// fixedPointJSON is the wire representation of a fixed-point number.
// Both fields are decimal-integer strings: native JSON numbers are never
// used, so no precision is lost in interchange.
type fixedPointJSON struct {
	Amount   string `json:"amount"`
	Decimals string `json:"decimals"`
}

// MarshalJSON implements the [json.Marshaler] interface.
// The amount and decimal count are serialized as decimal-integer strings.
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (f FixedPoint) MarshalJSON() ([]byte, error) {
	return json.Marshal(fixedPointJSON{
		Amount:   f.coef().String(),
		Decimals: strconv.Itoa(f.decimals),
	})
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (f *FixedPoint) UnmarshalJSON(data []byte) error {
	var w fixedPointJSON
	if err := json.Unmarshal(data, &w); err != nil {
		return fmt.Errorf("unmarshaling %T: %w", FixedPoint{}, err)
	}
	amt, ok := new(big.Int).SetString(w.Amount, 10)
	if !ok {
		return fmt.Errorf("unmarshaling %T: amount %q: %w", FixedPoint{}, w.Amount, ErrInvalidNumber)
	}
	dec, err := strconv.Atoi(w.Decimals)
	if err != nil {
		return fmt.Errorf("unmarshaling %T: decimals %q: %w", FixedPoint{}, w.Decimals, ErrInvalidNumber)
	}
	if dec < 0 {
		return fmt.Errorf("unmarshaling %T: %w", FixedPoint{}, ErrNegativeDecimals)
	}
	f.amount = amt
	f.decimals = dec
	return nil
}
