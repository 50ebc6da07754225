package money

import (
	"github.com/exactvalues/money/exact"
)

// equalityDigits is the number of decimal digits compared when checking
// equality across mixed fixed-point and rational representations.
const equalityDigits = 50

// Amount is the numeric value of a monetary amount: either an exact
// fixed-point decimal or an exact rational number.
// The zero value is the fixed-point number 0.
//
// Money operations switch exhaustively on the representation, promoting to
// rational where precision must be preserved (conversion, non-terminating
// division) and demoting back to fixed-point only on request.
type Amount struct {
	rational bool
	fp       exact.FixedPoint
	rat      exact.Rational
}

// AmountFromFixedPoint wraps a fixed-point number.
func AmountFromFixedPoint(f exact.FixedPoint) Amount {
	return Amount{fp: f}
}

// AmountFromRational wraps a rational number.
func AmountFromRational(r exact.Rational) Amount {
	return Amount{rational: true, rat: r}
}

// IsRational returns true if the amount is held in rational form.
func (a Amount) IsRational() bool {
	return a.rational
}

// FixedPoint returns the fixed-point representation of the amount.
// It returns false if the amount is held in rational form; use
// [Amount.Rational] or a rounding operation to obtain a decimal value.
func (a Amount) FixedPoint() (exact.FixedPoint, bool) {
	if a.rational {
		return exact.FixedPoint{}, false
	}
	return a.fp, true
}

// Rational returns the exact rational representation of the amount.
// The promotion from fixed-point form is lossless.
func (a Amount) Rational() exact.Rational {
	if a.rational {
		return a.rat
	}
	return a.fp.Rat()
}

// Sign returns:
//
//	-1 if a < 0
//	 0 if a = 0
//	+1 if a > 0
func (a Amount) Sign() int {
	if a.rational {
		return a.rat.Sign()
	}
	return a.fp.Sign()
}

// IsZero returns:
//
//	true  if a = 0
//	false otherwise
func (a Amount) IsZero() bool {
	return a.Sign() == 0
}

// Neg returns an amount with the opposite sign.
func (a Amount) Neg() Amount {
	if a.rational {
		return AmountFromRational(a.rat.Neg())
	}
	return AmountFromFixedPoint(a.fp.Neg())
}

// Abs returns the absolute value of the amount.
func (a Amount) Abs() Amount {
	if a.Sign() < 0 {
		return a.Neg()
	}
	return a
}

// Cmp compares amounts numerically and returns:
//
//	-1 if a < b
//	 0 if a = b
//	+1 if a > b
//
// Mixed representations are compared exactly via their rational forms.
func (a Amount) Cmp(b Amount) int {
	if !a.rational && !b.rational {
		return a.fp.Cmp(b.fp)
	}
	return a.Rational().Cmp(b.Rational())
}

// Equal returns true if the decimal expansions of a and b agree to
// 50 fractional digits. For fixed-point pairs this coincides with exact
// numeric equality.
func (a Amount) Equal(b Amount) bool {
	if !a.rational && !b.rational {
		return a.fp.Cmp(b.fp) == 0
	}
	return a.Rational().DecimalString(equalityDigits) == b.Rational().DecimalString(equalityDigits)
}

// String returns the fixed-point decimal string, or the "p/q" fraction for
// amounts held in rational form.
func (a Amount) String() string {
	if a.rational {
		return a.rat.Simplify().String()
	}
	return a.fp.String()
}
