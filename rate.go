package money

import (
	"fmt"
	"time"

	"github.com/exactvalues/money/exact"
)

// invertBitBudget bounds the fixed-point form of an inverted rate.
// Reciprocals of terminating decimals rarely terminate, so [ExchangeRate.Invert]
// narrows through a rational at this total-bit budget.
const invertBitBudget = 256

// ExchangeRate represents a positive conversion rate between two
// currencies: one unit of the base currency buys Rate units of the quote
// currency. The zero value is not a valid rate; use [NewExchRate].
//
// ExchangeRate is immutable and safe for concurrent use by multiple
// goroutines.
type ExchangeRate struct {
	base  Currency
	quote Currency
	rate  exact.FixedPoint
	at    time.Time
	src   string
}

// NewExchRate returns a rate between the given currencies.
//
// NewExchRate returns an error if the rate is not positive or the two
// currencies are the same.
func NewExchRate(base, quote Currency, rate exact.FixedPoint) (ExchangeRate, error) {
	if rate.Sign() <= 0 {
		return ExchangeRate{}, &Error{
			Kind:       ErrInvalidInput,
			Op:         "newRate",
			Message:    fmt.Sprintf("rate %v is not positive", rate),
			Suggestion: "supply a rate greater than zero",
		}
	}
	if base.Code() == quote.Code() {
		return ExchangeRate{}, &Error{
			Kind:       ErrInvalidInput,
			Op:         "newRate",
			Message:    fmt.Sprintf("base and quote are both %v", base),
			Suggestion: "use two distinct currencies",
		}
	}
	return ExchangeRate{base: base, quote: quote, rate: rate}, nil
}

// MustNewExchRate is like [NewExchRate] but panics on error.
// It simplifies safe initialization of global variables holding rates.
func MustNewExchRate(base, quote Currency, rate exact.FixedPoint) ExchangeRate {
	r, err := NewExchRate(base, quote, rate)
	if err != nil {
		panic(fmt.Sprintf("NewExchRate(%v, %v, %v) failed: %v", base, quote, rate, err))
	}
	return r
}

// ParseExchRate parses a rate from its currency codes and a decimal
// string, e.g. ParseExchRate("EUR", "USD", "1.0813").
func ParseExchRate(base, quote, rate string) (ExchangeRate, error) {
	b, err := ParseCurr(base)
	if err != nil {
		return ExchangeRate{}, fmt.Errorf("parsing base: %w", err)
	}
	q, err := ParseCurr(quote)
	if err != nil {
		return ExchangeRate{}, fmt.Errorf("parsing quote: %w", err)
	}
	f, err := exact.ParseFixedPoint(rate)
	if err != nil {
		return ExchangeRate{}, fmt.Errorf("parsing rate: %w", err)
	}
	return NewExchRate(b, q, f)
}

// WithTime returns a copy of the rate stamped with an observation time.
func (r ExchangeRate) WithTime(t time.Time) ExchangeRate {
	r.at = t
	return r
}

// WithSource returns a copy of the rate tagged with the name of the
// venue or feed it came from.
func (r ExchangeRate) WithSource(src string) ExchangeRate {
	r.src = src
	return r
}

// Base returns the currency being priced.
func (r ExchangeRate) Base() Currency {
	return r.base
}

// Quote returns the currency the base is priced in.
func (r ExchangeRate) Quote() Currency {
	return r.quote
}

// Rate returns the numeric rate.
func (r ExchangeRate) Rate() exact.FixedPoint {
	return r.rate
}

// Time returns the observation time, or the zero time if none was set.
func (r ExchangeRate) Time() time.Time {
	return r.at
}

// Source returns the feed name, or "" if none was set.
func (r ExchangeRate) Source() string {
	return r.src
}

// CanConvert returns true if the rate can be used to convert the given
// currency, i.e. the currency matches either leg.
func (r ExchangeRate) CanConvert(c Currency) bool {
	code := c.Code()
	return code == r.base.Code() || code == r.quote.Code()
}

// Invert returns the reciprocal rate, quoting the quote currency in units
// of the base. The reciprocal of a terminating decimal usually does not
// terminate, so the result is computed as an exact rational and then
// narrowed to fixed-point form within a 256-bit budget.
func (r ExchangeRate) Invert() (ExchangeRate, error) {
	if r.rate.IsZero() {
		return ExchangeRate{}, &Error{
			Kind:       ErrDivisionByZero,
			Op:         "invert",
			Message:    "rate is zero",
			Suggestion: "construct rates through NewExchRate, which rejects zero",
		}
	}
	recip, err := exact.NewRationalFromInt64(1, 1).Div(r.rate.Rat())
	if err != nil {
		return ExchangeRate{}, fmt.Errorf("inverting %v: %w", r, err)
	}
	f, err := recip.ToFixedPoint(exact.NarrowOptions{MaxBits: invertBitBudget}, exact.HalfEven)
	if err != nil {
		return ExchangeRate{}, fmt.Errorf("inverting %v: %w", r, err)
	}
	inv := r
	inv.base, inv.quote, inv.rate = r.quote, r.base, f
	return inv, nil
}

// Mul composes two rates into a cross rate. The rates must share exactly
// one currency: A/B * B/C yields A/C and A/B * C/A yields C/B, where X/Y
// denotes a rate with base X and quote Y.
//
// Mul returns an error naming both currency pairs if the rates share no
// currency, and an error if they describe the same pair.
func (r ExchangeRate) Mul(o ExchangeRate) (ExchangeRate, error) {
	product := r.rate.Rat().Mul(o.rate.Rat())
	switch {
	case r.quote.Code() == o.base.Code() && r.base.Code() != o.quote.Code():
		return composeRate(r.base, o.quote, product)
	case o.quote.Code() == r.base.Code() && o.base.Code() != r.quote.Code():
		return composeRate(o.base, r.quote, product)
	}
	return ExchangeRate{}, &Error{
		Kind: ErrCurrencyMismatch,
		Op:   "multiply",
		Message: fmt.Sprintf("rates %v/%v and %v/%v do not chain",
			r.base, r.quote, o.base, o.quote),
		Suggestion: "multiply rates that share exactly one currency",
		Example:    "EUR/USD * USD/JPY = EUR/JPY",
	}
}

func composeRate(base, quote Currency, product exact.Rational) (ExchangeRate, error) {
	f, err := product.ToFixedPoint(exact.NarrowOptions{MaxBits: invertBitBudget}, exact.HalfEven)
	if err != nil {
		return ExchangeRate{}, fmt.Errorf("composing %v/%v: %w", base, quote, err)
	}
	return NewExchRate(base, quote, f)
}

// AverageRates returns the equal-weight mean of the given rates. All rates
// must reference the same currency pair; a rate quoted in the opposite
// direction is inverted on the fly. The mean is computed with exact
// rational division, so averaging any number of rates is exact, whatever
// the prime factors of the count.
func AverageRates(rates ...ExchangeRate) (ExchangeRate, error) {
	if len(rates) == 0 {
		return ExchangeRate{}, &Error{
			Kind:       ErrInvalidInput,
			Op:         "average",
			Message:    "no rates given",
			Suggestion: "supply at least one rate",
		}
	}
	base, quote := rates[0].base, rates[0].quote
	sum := exact.NewRationalFromInt64(0, 1)
	for _, r := range rates {
		v := r.rate.Rat()
		switch {
		case r.base.Code() == base.Code() && r.quote.Code() == quote.Code():
		case r.base.Code() == quote.Code() && r.quote.Code() == base.Code():
			var err error
			v, err = exact.NewRationalFromInt64(1, 1).Div(v)
			if err != nil {
				return ExchangeRate{}, fmt.Errorf("averaging: inverting %v: %w", r, err)
			}
		default:
			return ExchangeRate{}, &Error{
				Kind: ErrCurrencyMismatch,
				Op:   "average",
				Message: fmt.Sprintf("rate %v/%v does not reference the pair %v/%v",
					r.base, r.quote, base, quote),
				Suggestion: "average rates quoting the same two currencies",
			}
		}
		sum = sum.Add(v)
	}
	mean, err := sum.Div(exact.NewRationalFromInt64(int64(len(rates)), 1))
	if err != nil {
		return ExchangeRate{}, fmt.Errorf("averaging: %w", err)
	}
	f, err := mean.ToFixedPoint(exact.NarrowOptions{MaxBits: invertBitBudget}, exact.HalfEven)
	if err != nil {
		return ExchangeRate{}, fmt.Errorf("averaging: %w", err)
	}
	return NewExchRate(base, quote, f)
}

// Spread derives symmetric bid and ask rates from a mid rate:
// bid = rate - rate*s/2 and ask = rate + rate*s/2, where s is the spread
// given either as a percentage string ("0.5%") or a decimal string
// ("0.005").
func (r ExchangeRate) Spread(s string) (bid, ask ExchangeRate, err error) {
	f, err := parseFactor("spread", s)
	if err != nil {
		return ExchangeRate{}, ExchangeRate{}, err
	}
	if f.Sign() < 0 {
		return ExchangeRate{}, ExchangeRate{}, &Error{
			Kind:       ErrInvalidInput,
			Op:         "spread",
			Message:    fmt.Sprintf("negative spread %v", f),
			Suggestion: "use a non-negative spread",
		}
	}
	half, err := exact.NewFixedPoint(f.Amount(), f.Decimals()+1)
	if err != nil {
		return ExchangeRate{}, ExchangeRate{}, fmt.Errorf("spreading %v: %w", r, err)
	}
	// s/2 computed as (s*5)/10 keeps the value in fixed-point form.
	half = half.MulInt64(5)
	delta := r.rate.Mul(half)
	bid, err = NewExchRate(r.base, r.quote, r.rate.Sub(delta))
	if err != nil {
		return ExchangeRate{}, ExchangeRate{}, fmt.Errorf("spreading %v: %w", r, err)
	}
	ask, err = NewExchRate(r.base, r.quote, r.rate.Add(delta))
	if err != nil {
		return ExchangeRate{}, ExchangeRate{}, fmt.Errorf("spreading %v: %w", r, err)
	}
	return bid, ask, nil
}

// String implements the [fmt.Stringer] interface and renders the rate as
// "EUR/USD 1.0813".
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (r ExchangeRate) String() string {
	return r.base.Code() + "/" + r.quote.Code() + " " + r.rate.String()
}

// Convert exchanges a monetary amount using the given rate. The currency
// of m must match one leg of the rate; the amount is multiplied by the
// ratio of the other leg to the matching leg, computed as an exact
// rational so that no precision is lost whatever the rate's digits.
// The result stays in rational form until it is rounded.
//
// Convert returns an error if the currency of m matches neither leg.
func Convert(m Money, r ExchangeRate) (Money, error) {
	ratio := r.rate.Rat()
	var target Currency
	switch m.curr.Code() {
	case r.base.Code():
		target = r.quote
	case r.quote.Code():
		target = r.base
		var err error
		ratio, err = exact.NewRationalFromInt64(1, 1).Div(ratio)
		if err != nil {
			return Money{}, fmt.Errorf("converting %v with %v: %w", m, r, err)
		}
	default:
		return Money{}, &Error{
			Kind: ErrCurrencyMismatch,
			Op:   "convert",
			Message: fmt.Sprintf("amount in %v does not match rate %v/%v",
				m.curr, r.base, r.quote),
			Suggestion: "use a rate with the amount's currency on one leg",
		}
	}
	return newMoney(target, AmountFromRational(m.amt.Rational().Mul(ratio))), nil
}
