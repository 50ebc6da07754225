/*
Package money implements exact monetary values in various currencies.
All arithmetic is performed on arbitrary-precision integers from the
[exact] package; no operation ever routes a value through floating point,
so results are bit-for-bit reproducible and never lose a digit silently.

# Features

  - Immutable monetary values, ensuring safe usage across multiple goroutines
  - Exact fixed-point and rational amounts of unbounded magnitude
  - Nine rounding modes, with half-away-from-zero as the default
  - Proportional allocation that conserves the total to the last unit
  - Parsing of human-written money strings, including symbols, grouping,
    scientific notation, and sub-units such as satoshis and cents
  - Exchange rates and prices with exact cross-rate composition

# Representation

A [Money] combines a [Currency] with an [Amount]. The Currency is an
integer index into in-memory arrays holding code, symbol, scale, and name.
The Amount is a closed union of two exact forms: a fixed-point number (a
scaled big integer plus a decimal count) and a rational number (a pair of
big integers). Operations stay in fixed-point form while the result is
exactly representable there and promote to rational form otherwise; a
value only moves back to fixed-point when the caller rounds it.

# Exactness

Addition, subtraction, and multiplication are always exact. Division is
exact when the divisor's mantissa factors into powers of 2 and 5 only;
any other divisor produces a non-terminating decimal, and [Money.Div]
rejects it with [ErrDivisionRequiresRounding] rather than round behind
the caller's back. [Money.DivRound] performs the same division through an
exact rational and rounds once, at the end.

# Errors

Every fallible operation returns an error value carrying a machine-
readable kind (see [ErrParse], [ErrCurrencyMismatch], and friends), a
human-readable message, and a remediation suggestion. Semantic errors
such as a currency mismatch always surface to the caller; the package
never coerces currencies or truncates silently. Constructors prefixed
with Must panic instead of returning an error, which simplifies the safe
initialization of global variables.
*/
package money
