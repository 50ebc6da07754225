package exact

import (
	"errors"
	"fmt"
	"math/big"
)

// RoundingMode determines how a quotient is adjusted when a division or
// rescale operation cannot be represented exactly.
// The zero value is [HalfExpand], which corresponds to the commercial
// rounding used wherever a mode is required but not specified.
type RoundingMode int

const (
	// HalfExpand rounds to the nearest value; ties are rounded away from zero.
	HalfExpand RoundingMode = iota
	// HalfEven rounds to the nearest value; ties are rounded to the nearest
	// even quotient (banker's rounding).
	HalfEven
	// HalfCeil rounds to the nearest value; ties are rounded toward positive infinity.
	HalfCeil
	// HalfFloor rounds to the nearest value; ties are rounded toward negative infinity.
	HalfFloor
	// HalfTrunc rounds to the nearest value; ties are rounded toward zero.
	HalfTrunc
	// Ceil rounds toward positive infinity.
	Ceil
	// Floor rounds toward negative infinity.
	Floor
	// Trunc rounds toward zero.
	Trunc
	// Expand rounds away from zero.
	Expand
)

var errUnknownRoundingMode = errors.New("unknown rounding mode")

var roundingModeNames = map[RoundingMode]string{
	HalfExpand: "halfExpand",
	HalfEven:   "halfEven",
	HalfCeil:   "halfCeil",
	HalfFloor:  "halfFloor",
	HalfTrunc:  "halfTrunc",
	Ceil:       "ceil",
	Floor:      "floor",
	Trunc:      "trunc",
	Expand:     "expand",
}

// String implements the [fmt.Stringer] interface.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (m RoundingMode) String() string {
	if s, ok := roundingModeNames[m]; ok {
		return s
	}
	return fmt.Sprintf("RoundingMode(%d)", int(m))
}

// ParseRoundingMode converts a string to a rounding mode.
// The match is case-sensitive and accepts the same names produced
// by [RoundingMode.String].
func ParseRoundingMode(s string) (RoundingMode, error) {
	for m, name := range roundingModeNames {
		if name == s {
			return m, nil
		}
	}
	return HalfExpand, fmt.Errorf("%w %q", errUnknownRoundingMode, s)
}

// roundQuotient adjusts the magnitude of a truncated quotient according to
// the rounding mode and returns the signed result.
//
// quo and rem are the magnitudes of the truncated quotient and its remainder,
// divisor is the magnitude of the divisor, and neg is the sign of the true
// (untruncated) result. A zero remainder never triggers an adjustment,
// regardless of the mode.
//
// Every division and rescale in this package, and every rounding performed by
// the money package, funnels through this function, so all call sites agree
// on tie-breaking behavior.
func roundQuotient(quo, rem, divisor *big.Int, neg bool, mode RoundingMode) *big.Int {
	res := new(big.Int).Abs(quo)
	if rem.Sign() != 0 {
		if stepsAway(res, rem, divisor, neg, mode) {
			res.Add(res, oneInt)
		}
	}
	if neg && res.Sign() != 0 {
		res.Neg(res)
	}
	return res
}

// stepsAway reports whether the magnitude of the truncated quotient must be
// incremented. quo, rem and divisor are magnitudes; rem is known to be non-zero.
func stepsAway(quo, rem, divisor *big.Int, neg bool, mode RoundingMode) bool {
	switch mode {
	case Trunc:
		return false
	case Expand:
		return true
	case Ceil:
		// Toward positive infinity: away from zero only for positive values.
		return !neg
	case Floor:
		// Toward negative infinity: away from zero only for negative values.
		return neg
	}

	// Half modes compare twice the remainder against the divisor.
	double := new(big.Int).Lsh(rem, 1)
	switch double.CmpAbs(divisor) {
	case -1:
		return false
	case +1:
		return true
	}

	// Exact tie.
	switch mode {
	case HalfExpand:
		return true
	case HalfTrunc:
		return false
	case HalfCeil:
		return !neg
	case HalfFloor:
		return neg
	case HalfEven:
		return quo.Bit(0) == 1
	}
	return false
}

var (
	oneInt  = big.NewInt(1)
	twoInt  = big.NewInt(2)
	fiveInt = big.NewInt(5)
	tenInt  = big.NewInt(10)
)

// pow10 returns 10^n as a new big integer. n must not be negative.
func pow10(n int) *big.Int {
	return new(big.Int).Exp(tenInt, big.NewInt(int64(n)), nil)
}

// TwoFiveFactors factors n into 2^twos * 5^fives * rest and reports whether
// rest is 1, i.e. whether n divides a power of ten. The sign of n is ignored.
// TwoFiveFactors returns ok = false for zero.
//
// Divisions whose divisor mantissa passes this test terminate in base 10 and
// can be performed without a rounding mode.
func TwoFiveFactors(n *big.Int) (twos, fives int, ok bool) {
	if n.Sign() == 0 {
		return 0, 0, false
	}
	rest := new(big.Int).Abs(n)
	r := new(big.Int)
	for {
		q, m := new(big.Int).QuoRem(rest, twoInt, r)
		if m.Sign() != 0 {
			break
		}
		rest = q
		twos++
	}
	for {
		q, m := new(big.Int).QuoRem(rest, fiveInt, r)
		if m.Sign() != 0 {
			break
		}
		rest = q
		fives++
	}
	return twos, fives, rest.Cmp(oneInt) == 0
}
