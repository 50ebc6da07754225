package money

import (
	"database/sql/driver"
	"fmt"
	"strings"
)

//go:generate go run scripts/currency/codegen.go

// Currency represents a currency in the global financial system, including
// a small set of crypto assets alongside the ISO 4217 currencies.
// The zero value is [XXX], which indicates an unknown currency.
//
// Currency is implemented as an integer index into in-memory arrays that
// store the code, scale, symbol, and name of each currency.
// This design ensures safe concurrency for multiple goroutines accessing
// the same Currency value.
//
// When persisting a currency value, use the alphabetic code returned by the
// [Currency.Code] method, rather than the integer index, as the mapping
// between index and currency may change in future versions.
type Currency uint8

// ParseCurr converts a string to a currency.
// The input string must be an alphabetic code in any case ("USD", "usd",
// "Btc") or an ISO 4217 numeric code ("840").
//
// ParseCurr returns [ErrUnknownCurrency] if the string does not represent
// a supported currency.
func ParseCurr(curr string) (Currency, error) {
	if c, ok := currLookup[curr]; ok {
		return c, nil
	}
	if c, ok := currLookup[strings.ToUpper(curr)]; ok {
		return c, nil
	}
	return XXX, &Error{
		Kind:       ErrUnknownCurrency,
		Op:         "parseCurrency",
		Message:    fmt.Sprintf("no currency with code %q", curr),
		Suggestion: "use a supported alphabetic or numeric code",
		Example:    `ParseCurr("USD")`,
	}
}

// MustParseCurr is like [ParseCurr] but panics if the string cannot be
// parsed. It simplifies safe initialization of global variables holding
// currencies.
func MustParseCurr(curr string) Currency {
	c, err := ParseCurr(curr)
	if err != nil {
		panic(fmt.Sprintf("ParseCurr(%q) failed: %v", curr, err))
	}
	return c
}

// String implements the [fmt.Stringer] interface and returns the
// alphabetic code.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (c Currency) String() string {
	return c.Code()
}

// Format implements the [fmt.Formatter] interface:
//
//	%v, %s, %c  the alphabetic code: "USD"
//	%q          the same, quoted:    "\"USD\""
//
// A width pads the code with spaces, on the left by default and on the
// right with the '-' flag.
//
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (c Currency) Format(state fmt.State, verb rune) {
	s := c.Code()
	switch verb {
	case 'v', 's', 'c':
	case 'q':
		s = `"` + s + `"`
	default:
		fmt.Fprintf(state, "%%!%c(money.Currency=%s)", verb, s)
		return
	}
	if w, ok := state.Width(); ok && w > len(s) {
		pad := strings.Repeat(" ", w-len(s))
		if state.Flag('-') {
			s += pad
		} else {
			s = pad + s
		}
	}
	fmt.Fprint(state, s)
}

// Code returns the alphabetic code of the currency: the ISO 4217 3-letter
// code for fiat currencies, or the conventional ticker for crypto assets.
func (c Currency) Code() string {
	return codeLookup[c]
}

// Num returns the 3-digit numeric code assigned by ISO 4217, or an empty
// string for currencies outside the standard.
func (c Currency) Num() string {
	return numLookup[c]
}

// Name returns the English name of the currency.
func (c Currency) Name() string {
	return nameLookup[c]
}

// Symbol returns the conventional currency sign, e.g. "$" for [USD].
// The symbol may be shared between currencies; see [Parse] for the
// disambiguation rules.
func (c Currency) Symbol() string {
	return symbolLookup[c]
}

// Scale returns the canonical number of digits after the decimal point:
// 2 for [USD] (cents), 0 for [JPY], 8 for [BTC] (satoshis), and so on.
func (c Currency) Scale() int {
	return int(scaleLookup[c])
}

// IsISO4217 returns true if the currency is part of the ISO 4217 standard.
// Crypto assets such as [BTC] return false.
func (c Currency) IsISO4217() bool {
	return isoLookup[c]
}

// SubUnit describes a named fractional denomination of a currency at a
// fixed decimal offset from the base unit, such as the cent (2) for USD or
// the satoshi (8) for BTC.
type SubUnit struct {
	Name   string // singular, lower case
	Plural string
	Offset int // decimal places below one base unit
}

var subUnitLookup = map[Currency][]SubUnit{
	USD: {{Name: "cent", Plural: "cents", Offset: 2}},
	EUR: {{Name: "cent", Plural: "cents", Offset: 2}},
	GBP: {{Name: "penny", Plural: "pence", Offset: 2}},
	OMR: {{Name: "baisa", Plural: "baisa", Offset: 3}},
	BTC: {
		{Name: "satoshi", Plural: "satoshis", Offset: 8},
		{Name: "sat", Plural: "sats", Offset: 8},
	},
	ETH: {
		{Name: "gwei", Plural: "gwei", Offset: 9},
		{Name: "wei", Plural: "wei", Offset: 18},
	},
	SOL: {{Name: "lamport", Plural: "lamports", Offset: 9}},
}

// SubUnits returns the named fractional denominations of the currency,
// or nil if it has none.
func (c Currency) SubUnits() []SubUnit {
	units, ok := subUnitLookup[c]
	if !ok {
		return nil
	}
	out := make([]SubUnit, len(units))
	copy(out, units)
	return out
}

// subUnitOrder fixes the resolution order for sub-unit names shared by
// several currencies, so that "cent" always resolves to USD.
var subUnitOrder = []Currency{USD, EUR, GBP, OMR, BTC, ETH, SOL}

// findSubUnit resolves a sub-unit name, accepting singular and plural forms
// and a trailing "s" as a fallback pluralization.
func findSubUnit(name string) (Currency, SubUnit, bool) {
	name = strings.ToLower(name)
	for _, curr := range subUnitOrder {
		units := subUnitLookup[curr]
		for _, u := range units {
			if name == u.Name || name == u.Plural || name == u.Name+"s" {
				return curr, u, true
			}
		}
	}
	return XXX, SubUnit{}, false
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// See also constructor [ParseCurr].
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (c *Currency) UnmarshalJSON(text []byte) error {
	if string(text) == "null" {
		return nil
	}
	if len(text) >= 2 && text[0] == '"' && text[len(text)-1] == '"' {
		text = text[1 : len(text)-1]
	}
	var err error
	*c, err = ParseCurr(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", XXX, err)
	}
	return nil
}

// MarshalJSON implements the [json.Marshaler] interface.
// MarshalJSON always returns the alphabetic code.
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (c Currency) MarshalJSON() ([]byte, error) {
	text := make([]byte, 0, len(c.Code())+2)
	text = append(text, '"')
	text = append(text, c.Code()...)
	text = append(text, '"')
	return text, nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// See also constructor [ParseCurr].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (c *Currency) UnmarshalText(text []byte) error {
	var err error
	*c, err = ParseCurr(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", XXX, err)
	}
	return nil
}

// MarshalText implements the [encoding.TextMarshaler] interface.
// MarshalText always returns the alphabetic code.
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (c Currency) MarshalText() ([]byte, error) {
	return []byte(c.Code()), nil
}

// Scan implements the [sql.Scanner] interface.
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (c *Currency) Scan(value any) error {
	var err error
	switch value := value.(type) {
	case string:
		*c, err = ParseCurr(value)
	case []byte:
		*c, err = ParseCurr(string(value))
	case nil:
		err = fmt.Errorf("%T does not support null values, use %T or *%T", XXX, NullCurrency{}, XXX)
	default:
		err = fmt.Errorf("type %T is not supported", value)
	}
	if err != nil {
		err = fmt.Errorf("converting from %T to %T: %w", value, XXX, err)
	}
	return err
}

// Value implements the [driver.Valuer] interface.
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (c Currency) Value() (driver.Value, error) {
	return c.Code(), nil
}

// NullCurrency represents a currency that can be null.
// Its zero value is null.
// NullCurrency is not thread-safe.
type NullCurrency struct {
	Currency Currency
	Valid    bool
}

// Scan implements the [sql.Scanner] interface.
// See also method [Currency.Scan].
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (n *NullCurrency) Scan(value any) error {
	if value == nil {
		n.Currency = XXX
		n.Valid = false
		return nil
	}
	n.Valid = true
	return n.Currency.Scan(value)
}

// Value implements the [driver.Valuer] interface.
// See also method [Currency.Value].
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (n NullCurrency) Value() (driver.Value, error) {
	if !n.Valid {
		return nil, nil
	}
	return n.Currency.Value()
}
