package money

import (
	"errors"
	"fmt"
)

// Sentinel errors for the conditions reported by this package.
// Use [errors.Is] to classify an error regardless of the context
// wrapped around it.
var (
	// ErrParse indicates unparseable or malformed numeric or currency text.
	ErrParse = errors.New("parse error")
	// ErrUnknownCurrency indicates an unrecognized currency code, symbol,
	// or sub-unit name.
	ErrUnknownCurrency = errors.New("unknown currency")
	// ErrCurrencyMismatch indicates an operation between two values
	// denominated in different currencies.
	ErrCurrencyMismatch = errors.New("currency mismatch")
	// ErrDivisionByZero indicates a zero divisor or a zero rate.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrDivisionRequiresRounding indicates a division whose divisor has
	// prime factors other than 2 and 5 and therefore does not terminate
	// in base 10, performed without a rounding mode.
	ErrDivisionRequiresRounding = errors.New("division requires rounding")
	// ErrInvalidInput indicates structurally invalid arguments, such as
	// empty or negative allocation ratios or inverted clamp bounds.
	ErrInvalidInput = errors.New("invalid input")
	// ErrPrecisionLoss indicates a numeric literal input that cannot be
	// represented without losing precision, reported when the configured
	// input mode forbids such inputs.
	ErrPrecisionLoss = errors.New("precision loss")
	// ErrValidation indicates a malformed wire representation.
	ErrValidation = errors.New("validation error")
)

// Error is the detailed error value returned by fallible operations.
// It carries a machine-readable kind (one of the package sentinels, matched
// with [errors.Is]), the name of the operation that failed, and a
// human-readable remediation suggestion, optionally with a worked example.
type Error struct {
	Kind       error  // one of the sentinel errors above
	Op         string // the operation that failed, e.g. "add"
	Message    string // what went wrong
	Suggestion string // how to fix it
	Example    string // a worked example, where one helps
}

// Error implements the error interface.
func (e *Error) Error() string {
	s := e.Op + ": " + e.Message
	if e.Suggestion != "" {
		s += " (" + e.Suggestion + ")"
	}
	if e.Example != "" {
		s += "; for example: " + e.Example
	}
	return s
}

// Unwrap returns the sentinel kind, making the error matchable
// with [errors.Is].
func (e *Error) Unwrap() error {
	return e.Kind
}

// errMismatch builds the error for an operation between two currencies,
// naming the operation and both codes.
func errMismatch(op string, a, b Currency) error {
	return &Error{
		Kind:       ErrCurrencyMismatch,
		Op:         op,
		Message:    fmt.Sprintf("cannot %s %s and %s", op, a.Code(), b.Code()),
		Suggestion: "convert both values to the same currency first",
	}
}

// errNeedsRounding builds the error for a non-terminating division performed
// without a rounding mode.
func errNeedsRounding(op string, divisor string) error {
	return &Error{
		Kind:       ErrDivisionRequiresRounding,
		Op:         op,
		Message:    fmt.Sprintf("divisor %s contains factors other than 2 and 5, so the quotient does not terminate in base 10", divisor),
		Suggestion: "supply a rounding mode",
		Example:    "m.DivRound(d, exact.HalfExpand)",
	}
}
