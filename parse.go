package money

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/exactvalues/money/exact"
)

// symbolPriority resolves currency symbols that are shared between several
// currencies to their most common holder. A shared symbol without a
// priority entry cannot be parsed and requires the currency code instead.
var symbolPriority = map[string]Currency{
	"$":  USD, // also CLP, MXN
	"¥":  JPY, // also CNY
	"kr": SEK, // also NOK, DKK
}

// parseErr builds a parse error for the given input.
func parseErr(s, msg, suggestion, example string) error {
	return &Error{
		Kind:       ErrParse,
		Op:         "parse",
		Message:    fmt.Sprintf("parsing %q: %s", s, msg),
		Suggestion: suggestion,
		Example:    example,
	}
}

// Parse converts a human-written money string to a monetary amount.
//
// The currency is taken from a symbol ("$12.34"), an ISO or crypto code
// before or after the number ("USD 12.34", "12.34 usd"), or a sub-unit
// name ("100 sat", "250 cents"). If none is present, the configured
// default currency applies.
//
// The number itself may use US grouping ("1,234.56") or European grouping
// ("1.234,56"), and may carry a decimal exponent ("1.23E+5"), which is
// applied by shifting the decimal point before any digits are interpreted.
func Parse(s string) (Money, error) {
	return parseWith(s, CurrentConfig().DefaultCurrency, false)
}

// ParseIn is like [Parse] but resolves symbol-less inputs against the
// given currency instead of the configured default. An input that names a
// different currency is rejected.
func ParseIn(s, curr string) (Money, error) {
	c, err := ParseCurr(curr)
	if err != nil {
		return Money{}, fmt.Errorf("parsing currency: %w", err)
	}
	return parseWith(s, c, true)
}

// MustParse is like [Parse] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding monetary
// amounts.
func MustParse(s string) Money {
	m, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("Parse(%q) failed: %v", s, err))
	}
	return m
}

// parseWith parses s in the context of currency c. If enforce is set, a
// currency named by the input must match c.
func parseWith(s string, c Currency, enforce bool) (Money, error) {
	input := s
	s = strings.TrimSpace(s)
	if s == "" {
		return Money{}, parseErr(input, "empty input", "supply a non-empty money string", `"$12.34"`)
	}

	neg := false
	detected := XXX
	offset := 0

	// Leading sign, possibly before the symbol as in "-$10".
	s, neg = cutSign(s, neg)

	// Leading currency symbol.
	if sym := matchSymbol(s); sym != "" {
		curr, ok := resolveSymbol(sym)
		if !ok {
			return Money{}, parseErr(input,
				fmt.Sprintf("ambiguous currency symbol %q", sym),
				"use the ISO currency code instead",
				`"12.34 NOK"`)
		}
		detected = curr
		s = strings.TrimSpace(s[len(sym):])
		// "$-10" carries the sign after the symbol.
		s, neg = cutSign(s, neg)
	}

	// Leading currency code, as in "USD 12.34".
	if detected == XXX {
		if head, rest, ok := strings.Cut(s, " "); ok {
			if curr, err := ParseCurr(head); err == nil {
				detected = curr
				s = strings.TrimSpace(rest)
				s, neg = cutSign(s, neg)
			} else if looksLikeCode(head) {
				if _, _, ok := findSubUnit(head); !ok {
					return Money{}, err
				}
			}
		}
	}

	// Trailing currency code or sub-unit name, as in "12.34 usd" and
	// "100 sats".
	if i := strings.LastIndexByte(s, ' '); i >= 0 && detected == XXX {
		word := strings.TrimSpace(s[i+1:])
		if curr, err := ParseCurr(word); err == nil {
			detected = curr
			s = strings.TrimSpace(s[:i])
		} else if curr, unit, ok := findSubUnit(word); ok {
			detected = curr
			offset = unit.Offset
			s = strings.TrimSpace(s[:i])
		} else if matchSymbol(word) == word {
			curr, ok := resolveSymbol(word)
			if !ok {
				return Money{}, parseErr(input,
					fmt.Sprintf("ambiguous currency symbol %q", word),
					"use the ISO currency code instead",
					`"12.34 NOK"`)
			}
			detected = curr
			s = strings.TrimSpace(s[:i])
		} else if looksLikeCode(word) {
			// "10 XYZ" names a currency the table does not know;
			// report that rather than a generic parse failure.
			return Money{}, err
		}
	}

	if detected != XXX {
		if enforce && detected.Code() != c.Code() {
			return Money{}, errMismatch("parse", c, detected)
		}
		c = detected
	}

	// "1/3" round-trips an amount held in rational form.
	if ps, qs, ok := strings.Cut(s, "/"); ok {
		r, err := parseFraction(input, ps, qs)
		if err != nil {
			return Money{}, err
		}
		if neg {
			r = r.Neg()
		}
		return newMoney(c, AmountFromRational(r)), nil
	}

	digits, err := normalizeNumber(input, s)
	if err != nil {
		return Money{}, err
	}
	f, err := exact.ParseFixedPoint(digits)
	if err != nil {
		return Money{}, parseErr(input, "malformed number", "write the amount as digits with an optional decimal part", `"1234.56"`)
	}
	if offset > 0 {
		var rerr error
		f, rerr = exact.NewFixedPoint(f.Amount(), f.Decimals()+offset)
		if rerr != nil {
			return Money{}, fmt.Errorf("parsing %q: %w", input, rerr)
		}
	}
	if neg {
		f = f.Neg()
	}
	return newMoney(c, AmountFromFixedPoint(f)), nil
}

// looksLikeCode reports whether a word is shaped like a currency code:
// three or four ASCII letters.
func looksLikeCode(s string) bool {
	if len(s) < 3 || len(s) > 4 {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < 'A' || c > 'Z') && (c < 'a' || c > 'z') {
			return false
		}
	}
	return true
}

// parseFraction parses the "p/q" rendering of a rational amount.
func parseFraction(input, ps, qs string) (exact.Rational, error) {
	p, okP := new(big.Int).SetString(strings.TrimSpace(ps), 10)
	q, okQ := new(big.Int).SetString(strings.TrimSpace(qs), 10)
	if !okP || !okQ {
		return exact.Rational{}, parseErr(input, "malformed fraction",
			"write the fraction as two integers separated by a slash", `"1/3"`)
	}
	r, err := exact.NewRational(p, q)
	if err != nil {
		return exact.Rational{}, parseErr(input, "fraction has a zero denominator",
			"use a non-zero denominator", `"1/3"`)
	}
	return r, nil
}

// cutSign strips one leading sign character and folds it into neg.
func cutSign(s string, neg bool) (string, bool) {
	if rest, ok := strings.CutPrefix(s, "-"); ok {
		return strings.TrimSpace(rest), !neg
	}
	if rest, ok := strings.CutPrefix(s, "+"); ok {
		return strings.TrimSpace(rest), neg
	}
	return s, neg
}

// matchSymbol returns the longest known currency symbol prefixing s, so
// that "R$" wins over "R" and "HK$" over "$". It returns "" if no symbol
// matches.
func matchSymbol(s string) string {
	best := ""
	for _, sym := range symbolLookup {
		if sym != "" && strings.HasPrefix(s, sym) && len(sym) > len(best) {
			best = sym
		}
	}
	return best
}

// resolveSymbol maps a currency symbol to a currency. A symbol used by a
// single currency resolves to it; a shared symbol resolves through
// [symbolPriority] or not at all.
func resolveSymbol(sym string) (Currency, bool) {
	if c, ok := symbolPriority[sym]; ok {
		return c, true
	}
	found, count := XXX, 0
	for c, s := range symbolLookup {
		if s == sym {
			found, count = Currency(c), count+1
		}
	}
	return found, count == 1
}

// normalizeNumber turns a human-written number into plain machine form:
// grouping separators removed, the decimal separator written as a point,
// and any exponent applied by shifting the decimal point. input is the
// original string, used only for error reporting.
//
// Separator roles are inferred from the text itself. A separator kind that
// appears once with a non-3-digit group after it is the decimal separator;
// one that repeats is a grouping separator and every group it delimits
// must have exactly three digits. When both kinds appear, the later one is
// the decimal separator and must appear exactly once.
func normalizeNumber(input, s string) (string, error) {
	mantissa, exp, err := splitExponent(input, s)
	if err != nil {
		return "", err
	}

	commas := strings.Count(mantissa, ",")
	points := strings.Count(mantissa, ".")
	group, decimal := byte(0), byte(0)
	switch {
	case commas > 0 && points > 0:
		lastComma := strings.LastIndexByte(mantissa, ',')
		lastPoint := strings.LastIndexByte(mantissa, '.')
		if lastComma > lastPoint {
			group, decimal = '.', ','
		} else {
			group, decimal = ',', '.'
		}
		if strings.Count(mantissa, string(decimal)) != 1 {
			return "", parseErr(input, "repeated decimal separator",
				"use one decimal separator and group thousands with the other kind", `"1,234.56" or "1.234,56"`)
		}
	case commas > 1:
		group = ','
	case points > 1:
		group = '.'
	case commas == 1:
		// A lone comma before a three-digit tail reads as US
		// thousands ("1,234"); any other tail reads as an EU decimal
		// separator ("1,5").
		if tail := mantissa[strings.IndexByte(mantissa, ',')+1:]; len(tail) == 3 && allDigits(tail) {
			group = ','
		} else {
			decimal = ','
		}
	case points == 1:
		decimal = '.'
	}

	intPart, fracPart := mantissa, ""
	if decimal != 0 {
		intPart, fracPart, _ = strings.Cut(mantissa, string(decimal))
	}
	if group != 0 {
		groups := strings.Split(intPart, string(group))
		for i, g := range groups {
			if i == 0 {
				if g == "" || len(g) > 3 {
					return "", groupingErr(input)
				}
				continue
			}
			if len(g) != 3 {
				return "", groupingErr(input)
			}
		}
		intPart = strings.Join(groups, "")
	}
	if !allDigits(intPart) || !allDigits(fracPart) || intPart == "" && fracPart == "" {
		return "", parseErr(input, "malformed number",
			"write the amount as digits with an optional decimal part", `"1234.56"`)
	}
	return shiftPoint(intPart, fracPart, exp), nil
}

func groupingErr(input string) error {
	return parseErr(input, "malformed digit grouping",
		"group thousands in blocks of exactly three digits", `"1,234,567.89"`)
}

// splitExponent separates a trailing exponent clause ("E+5") from the
// mantissa and parses it.
func splitExponent(input, s string) (mantissa string, exp int, err error) {
	i := strings.IndexAny(s, "eE")
	if i < 0 {
		return s, 0, nil
	}
	mantissa, tail := s[:i], s[i+1:]
	sign := 1
	if rest, ok := strings.CutPrefix(tail, "-"); ok {
		sign, tail = -1, rest
	} else if rest, ok := strings.CutPrefix(tail, "+"); ok {
		tail = rest
	}
	if tail == "" || !allDigits(tail) || len(tail) > 4 {
		return "", 0, parseErr(input, "malformed exponent",
			"write the exponent as E followed by an optional sign and digits", `"1.23E+5"`)
	}
	for _, r := range tail {
		exp = exp*10 + int(r-'0')
	}
	return mantissa, sign * exp, nil
}

// shiftPoint applies a base-10 exponent to a digit string by moving the
// decimal point, zero-padding as needed. The result never uses exponent
// notation.
func shiftPoint(intPart, fracPart string, exp int) string {
	digits := intPart + fracPart
	point := len(intPart) + exp
	switch {
	case point >= len(digits):
		return digits + strings.Repeat("0", point-len(digits))
	case point <= 0:
		return "0." + strings.Repeat("0", -point) + digits
	default:
		return digits[:point] + "." + digits[point:]
	}
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
