package money

import (
	"fmt"
	"strings"
	"time"

	"github.com/exactvalues/money/exact"
)

// AssetAmount is one leg of a [Price]: a quantity of some named asset.
// The asset is a free-form ticker ("BTC", "AAPL", "XAU") and need not be a
// currency.
type AssetAmount struct {
	Asset  string
	Amount exact.FixedPoint
}

func (a AssetAmount) String() string {
	return a.Amount.String() + " " + a.Asset
}

// Price is a ratio between two asset quantities: the first leg per the
// second leg, e.g. 65000 USD per 1 BTC. Unlike [ExchangeRate] it is not
// restricted to known currencies.
//
// Price is immutable and safe for concurrent use by multiple goroutines.
type Price struct {
	first  AssetAmount
	second AssetAmount
	at     time.Time
}

// NewPrice returns a price quoting the first asset quantity per the
// second.
//
// NewPrice returns an error if either asset name is empty or either
// quantity is zero.
func NewPrice(first, second AssetAmount) (Price, error) {
	for _, leg := range []AssetAmount{first, second} {
		if strings.TrimSpace(leg.Asset) == "" {
			return Price{}, &Error{
				Kind:       ErrInvalidInput,
				Op:         "newPrice",
				Message:    "empty asset name",
				Suggestion: "name both assets",
			}
		}
		if leg.Amount.IsZero() {
			return Price{}, &Error{
				Kind:       ErrInvalidInput,
				Op:         "newPrice",
				Message:    fmt.Sprintf("zero quantity of %s", leg.Asset),
				Suggestion: "use non-zero quantities on both legs",
			}
		}
	}
	return Price{first: first, second: second}, nil
}

// MustNewPrice is like [NewPrice] but panics on error.
func MustNewPrice(first, second AssetAmount) Price {
	p, err := NewPrice(first, second)
	if err != nil {
		panic(fmt.Sprintf("NewPrice(%v, %v) failed: %v", first, second, err))
	}
	return p
}

// WithTime returns a copy of the price stamped with an observation time.
func (p Price) WithTime(t time.Time) Price {
	p.at = t
	return p
}

// First returns the quoted leg.
func (p Price) First() AssetAmount {
	return p.first
}

// Second returns the unit leg.
func (p Price) Second() AssetAmount {
	return p.second
}

// Time returns the observation time, or the zero time if none was set.
func (p Price) Time() time.Time {
	return p.at
}

// AsRatio returns the exact ratio of the first leg to the second.
func (p Price) AsRatio() exact.Rational {
	r, _ := p.first.Amount.Rat().Div(p.second.Amount.Rat())
	return r
}

// Mul scales the quoted leg by a factor, leaving the unit leg untouched.
func (p Price) Mul(f exact.FixedPoint) Price {
	p.first.Amount = p.first.Amount.Mul(f)
	return p
}

// Div divides the quoted leg by a divisor, leaving the unit leg
// untouched. Like [Money.Div], a divisor whose mantissa carries prime
// factors other than 2 and 5 makes the quotient non-terminating; such a
// division is rejected with [ErrDivisionRequiresRounding].
func (p Price) Div(d exact.FixedPoint) (Price, error) {
	if d.IsZero() {
		return Price{}, &Error{
			Kind:       ErrDivisionByZero,
			Op:         "divide",
			Message:    "divisor is zero",
			Suggestion: "check the divisor before dividing",
		}
	}
	twos, fives, ok := exact.TwoFiveFactors(d.Amount())
	if !ok {
		return Price{}, errNeedsRounding("divide", d.String())
	}
	extra := max(twos, fives)
	n := p.first.Amount.Amount()
	n.Mul(n, pow10Int(d.Decimals()+extra))
	n.Quo(n, d.Amount())
	f, err := exact.NewFixedPoint(n, p.first.Amount.Decimals()+extra)
	if err != nil {
		return Price{}, fmt.Errorf("dividing %v: %w", p, err)
	}
	p.first.Amount = f
	return p, nil
}

// MulPrice chains two prices through their shared asset:
// A/B * B/C yields A/C and A/B * C/A yields C/B, where X/Y denotes a
// price quoting X per Y.
//
// MulPrice returns an error naming both asset pairs if the prices share
// no asset.
func (p Price) MulPrice(o Price) (Price, error) {
	switch {
	case p.second.Asset == o.first.Asset && p.first.Asset != o.second.Asset:
		// A/B * B/C: quantities multiply leg-wise once the shared
		// asset amounts are cross-cancelled through the ratio.
		return chainPrice(p.first.Asset, o.second.Asset, p.AsRatio().Mul(o.AsRatio()))
	case o.second.Asset == p.first.Asset && o.first.Asset != p.second.Asset:
		return chainPrice(o.first.Asset, p.second.Asset, o.AsRatio().Mul(p.AsRatio()))
	}
	return Price{}, &Error{
		Kind: ErrInvalidInput,
		Op:   "multiply",
		Message: fmt.Sprintf("prices %s/%s and %s/%s share no asset",
			p.first.Asset, p.second.Asset, o.first.Asset, o.second.Asset),
		Suggestion: "multiply prices that share exactly one asset",
		Example:    "USD/BTC * BTC/ETH = USD/ETH",
	}
}

// chainPrice renders a composed ratio as a price quoting ratio units of
// the first asset per one unit of the second.
func chainPrice(first, second string, ratio exact.Rational) (Price, error) {
	f, err := ratio.ToFixedPoint(exact.NarrowOptions{MaxBits: invertBitBudget}, exact.HalfEven)
	if err != nil {
		return Price{}, fmt.Errorf("composing %s/%s: %w", first, second, err)
	}
	return NewPrice(
		AssetAmount{Asset: first, Amount: f},
		AssetAmount{Asset: second, Amount: exact.NewFixedPointFromInt64(1, 0)},
	)
}

// String implements the [fmt.Stringer] interface and renders the price as
// "65000.00 USD per 1 BTC".
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (p Price) String() string {
	return p.first.String() + " per " + p.second.String()
}

// ConvertByPrice exchanges a monetary amount using a price whose legs are
// currency codes. The currency of m must match one leg; the amount is
// multiplied by the ratio of the other leg to the matching leg, computed
// as an exact rational.
//
// ConvertByPrice returns an error if the currency of m matches neither
// leg or the other leg is not a known currency.
func ConvertByPrice(m Money, p Price) (Money, error) {
	var other AssetAmount
	var ratio exact.Rational
	switch m.curr.Code() {
	case strings.ToUpper(p.first.Asset):
		other = p.second
		ratio, _ = p.second.Amount.Rat().Div(p.first.Amount.Rat())
	case strings.ToUpper(p.second.Asset):
		other = p.first
		ratio, _ = p.first.Amount.Rat().Div(p.second.Amount.Rat())
	default:
		return Money{}, &Error{
			Kind: ErrCurrencyMismatch,
			Op:   "convert",
			Message: fmt.Sprintf("amount in %v does not match price %s/%s",
				m.curr, p.first.Asset, p.second.Asset),
			Suggestion: "use a price with the amount's currency on one leg",
		}
	}
	target, err := ParseCurr(other.Asset)
	if err != nil {
		return Money{}, fmt.Errorf("converting %v: %w", m, err)
	}
	return newMoney(target, AmountFromRational(m.amt.Rational().Mul(ratio))), nil
}
