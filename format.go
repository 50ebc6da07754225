package money

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/exactvalues/money/exact"
)

// Display renders the amount for humans: currency symbol, digits grouped
// in thousands, and the value rounded to the scale of the currency with
// the configured default rounding mode.
//
// The grouping convention follows the configured default locale:
//
//	en-US  $1,234.56
//	de-DE  1.234,56 $
//
// A currency without a symbol is shown by its code. For an exact,
// machine-readable rendering use [Money.String].
func (m Money) Display() string {
	cfg := CurrentConfig()
	return m.display(cfg.DefaultLocale, cfg.DefaultRoundingMode)
}

// DisplayIn is like [Money.Display] with an explicit locale, "en-US" or
// "de-DE".
func (m Money) DisplayIn(locale string) string {
	return m.display(locale, CurrentConfig().DefaultRoundingMode)
}

func (m Money) display(locale string, mode exact.RoundingMode) string {
	r := m.Round(mode)
	fp, _ := r.amt.FixedPoint()

	group, decimal, after := byte(','), byte('.'), false
	if strings.EqualFold(locale, "de-DE") {
		group, decimal, after = '.', ',', true
	}

	s := fp.String()
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	intPart, fracPart, _ := strings.Cut(s, ".")

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	sym := m.curr.Symbol()
	if sym == "" {
		sym = m.curr.Code()
	}
	if !after {
		b.WriteString(sym)
	}
	writeGrouped(&b, intPart, group)
	if fracPart != "" {
		b.WriteByte(decimal)
		b.WriteString(fracPart)
	}
	if after {
		b.WriteByte(' ')
		b.WriteString(sym)
	}
	return b.String()
}

// writeGrouped writes digits with a separator every three digits from the
// right.
func writeGrouped(b *strings.Builder, digits string, sep byte) {
	lead := len(digits) % 3
	if lead == 0 {
		lead = 3
	}
	if lead > len(digits) {
		lead = len(digits)
	}
	b.WriteString(digits[:lead])
	for i := lead; i < len(digits); i += 3 {
		b.WriteByte(sep)
		b.WriteString(digits[i : i+3])
	}
}

// DisplayUnit renders the amount as a count of a named sub-unit of its
// currency, such as "100 sats" or "250 cents". The unit name is matched
// the way the parser matches it, singular or plural. Precision below the
// sub-unit is kept as a decimal fraction: "0.5 sats".
//
// DisplayUnit returns an error if the name is not a known sub-unit or
// belongs to a different currency.
func (m Money) DisplayUnit(name string) (string, error) {
	curr, unit, ok := findSubUnit(name)
	if !ok {
		return "", &Error{
			Kind:       ErrUnknownCurrency,
			Op:         "display",
			Message:    fmt.Sprintf("unknown sub-unit %q", name),
			Suggestion: "use a unit the currency defines, see Currency.SubUnits",
		}
	}
	if curr != m.curr {
		return "", &Error{
			Kind:       ErrCurrencyMismatch,
			Op:         "display",
			Message:    fmt.Sprintf("%q is a unit of %s, not %s", name, curr.Code(), m.curr.Code()),
			Suggestion: "pick a unit of the value's own currency",
		}
	}
	fp, ok := m.amt.FixedPoint()
	if !ok {
		r := m.Round(CurrentConfig().DefaultRoundingMode)
		fp, _ = r.amt.FixedPoint()
	}
	var u exact.FixedPoint
	if d := fp.Decimals() - unit.Offset; d >= 0 {
		u, _ = exact.NewFixedPoint(fp.Amount(), d)
	} else {
		u, _ = exact.NewFixedPoint(new(big.Int).Mul(fp.Amount(), pow10Int(-d)), 0)
	}
	u = u.Trim(0)
	label := unit.Plural
	if u.Abs().Cmp(exact.NewFixedPointFromInt64(1, 0)) == 0 {
		label = unit.Name
	}
	return u.String() + " " + label, nil
}

// DisplayOpts adjusts [Money.DisplayWith]. The zero value renders like
// [Money.Display] in the default locale, with the currency code instead
// of its symbol and the amount at the scale of the currency.
type DisplayOpts struct {
	Locale          string             // "en-US" (default) or "de-DE"
	MaxDecimals     int                // cap on fractional digits; 0 keeps the currency scale
	MinDecimals     int                // zero-pad to at least this many fractional digits
	PreferSymbol    bool               // "$" rather than "USD" where a symbol exists
	ExcludeCurrency bool               // render the bare number
	Mode            exact.RoundingMode // rounding for narrowed digits, halfExpand by default
}

// DisplayWith renders the amount for humans with explicit formatting
// options, covering the cases the [Money.Display] shorthand does not.
func (m Money) DisplayWith(o DisplayOpts) string {
	locale := o.Locale
	if locale == "" {
		locale = CurrentConfig().DefaultLocale
	}
	decimals := m.curr.Scale()
	if o.MaxDecimals > 0 && o.MaxDecimals < decimals {
		decimals = o.MaxDecimals
	}
	r, _ := m.RoundTo(decimals, o.Mode)
	fp, _ := r.amt.FixedPoint()
	if decimals < m.curr.Scale() {
		fp = fp.Trim(decimals)
	}
	if o.MinDecimals > fp.Decimals() {
		fp = fp.Pad(o.MinDecimals)
	}

	group, decimal, after := byte(','), byte('.'), false
	if strings.EqualFold(locale, "de-DE") {
		group, decimal, after = '.', ',', true
	}

	s := fp.String()
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	intPart, fracPart, _ := strings.Cut(s, ".")

	// A symbol sits flush against the digits, an alphabetic code is
	// separated by a space.
	mark, sep := "", ""
	if !o.ExcludeCurrency {
		mark, sep = m.curr.Code(), " "
		if o.PreferSymbol && m.curr.Symbol() != "" {
			mark, sep = m.curr.Symbol(), ""
		}
	}

	// The sign precedes a flush symbol ("-$1,234.56") but follows a
	// spaced code ("USD -1,234.56"), matching [Money.Display] and
	// [Money.String] respectively.
	var b strings.Builder
	switch {
	case after:
		if neg {
			b.WriteByte('-')
		}
	case mark != "" && sep == "":
		if neg {
			b.WriteByte('-')
		}
		b.WriteString(mark)
	default:
		if mark != "" {
			b.WriteString(mark)
			b.WriteString(sep)
		}
		if neg {
			b.WriteByte('-')
		}
	}
	writeGrouped(&b, intPart, group)
	if fracPart != "" {
		b.WriteByte(decimal)
		b.WriteString(fracPart)
	}
	if mark != "" && after {
		b.WriteByte(' ')
		b.WriteString(mark)
	}
	return b.String()
}

// compactSteps are the thresholds for [Money.DisplayCompact], largest
// first.
var compactSteps = []struct {
	suffix string
	zeros  int
}{
	{"B", 9},
	{"M", 6},
	{"K", 3},
}

// DisplayCompact renders the amount in abbreviated form with one decimal
// digit and a magnitude suffix: "$1.2K", "$3.5M", "$1.1B". Amounts below
// one thousand render like [Money.Display].
func (m Money) DisplayCompact() string {
	sign := ""
	abs := m.Abs()
	if m.IsNeg() {
		sign = "-"
	}
	sym := m.curr.Symbol()
	if sym == "" {
		sym = m.curr.Code()
	}
	for _, step := range compactSteps {
		limit := NewFromFixedPoint(m.curr, powTen(step.zeros))
		if c, _ := abs.Cmp(limit); c >= 0 {
			// Powers of ten always divide exactly.
			scaled, _ := abs.Div(powTen(step.zeros))
			r, _ := scaled.RoundTo(1, exact.HalfExpand)
			fp, _ := r.amt.FixedPoint()
			f, _ := fp.RescaleRound(1, exact.Trunc)
			return sign + sym + f.String() + step.suffix
		}
	}
	return m.Display()
}

// powTen returns 10^zeros as a fixed-point number.
func powTen(zeros int) exact.FixedPoint {
	f, _ := exact.ParseFixedPoint("1" + strings.Repeat("0", zeros))
	return f
}

// Format implements the [fmt.Formatter] interface:
//
//	%v, %s  currency code and value: "USD 12.34"
//	%q      the same, quoted:        "\"USD 12.34\""
//	%f      value only:              "12.34"
//	%c      currency code only:      "USD"
//
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (m Money) Format(state fmt.State, verb rune) {
	switch verb {
	case 'v', 's':
		fmt.Fprint(state, m.String())
	case 'q':
		fmt.Fprintf(state, "%q", m.String())
	case 'f':
		fmt.Fprint(state, m.amt.String())
	case 'c':
		fmt.Fprint(state, m.curr.Code())
	default:
		fmt.Fprintf(state, "%%!%c(money.Money=%s)", verb, m.String())
	}
}
