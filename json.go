package money

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/exactvalues/money/exact"
)

// moneyJSON is the wire form of Money. The amount is one of:
//
//	"12.34"                           decimal string
//	{"p": "1", "q": "3"}              exact rational
//	{"amount": "1234", "decimals": 2} scaled integer
//
// Big integers always travel as decimal strings: native JSON numbers lose
// digits past the float64 mantissa.
type moneyJSON struct {
	Currency string          `json:"currency"`
	Amount   json.RawMessage `json:"amount"`
}

type rationalJSON struct {
	P string `json:"p"`
	Q string `json:"q"`
}

type scaledJSON struct {
	Amount   string `json:"amount"`
	Decimals int    `json:"decimals"`
}

func validationErr(msg, suggestion, example string) error {
	return &Error{
		Kind:       ErrValidation,
		Op:         "unmarshal",
		Message:    msg,
		Suggestion: suggestion,
		Example:    example,
	}
}

// MarshalJSON implements the [json.Marshaler] interface. Fixed-point
// amounts serialize as decimal strings, rational amounts as {"p", "q"}
// objects; the round trip through [Money.UnmarshalJSON] reproduces the
// exact value.
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (m Money) MarshalJSON() ([]byte, error) {
	var amount any
	if fp, ok := m.amt.FixedPoint(); ok {
		amount = fp.String()
	} else {
		r := m.amt.Rational().Simplify()
		amount = rationalJSON{P: r.Num().String(), Q: r.Den().String()}
	}
	raw, err := json.Marshal(amount)
	if err != nil {
		return nil, err
	}
	return json.Marshal(moneyJSON{Currency: m.curr.Code(), Amount: raw})
}

// UnmarshalJSON implements the [json.Unmarshaler] interface. All three
// amount forms described under [Money.MarshalJSON] are accepted, plus the
// scaled-integer form {"amount", "decimals"}.
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (m *Money) UnmarshalJSON(data []byte) error {
	var w moneyJSON
	if err := json.Unmarshal(data, &w); err != nil {
		return validationErr(
			fmt.Sprintf("malformed money document: %v", err),
			"supply an object with currency and amount fields",
			`{"currency": "USD", "amount": "12.34"}`)
	}
	if w.Currency == "" {
		return validationErr("missing currency",
			"supply the currency as a code string",
			`{"currency": "USD", "amount": "12.34"}`)
	}
	c, err := ParseCurr(w.Currency)
	if err != nil {
		return err
	}
	if len(w.Amount) == 0 {
		return validationErr("missing amount",
			"supply the amount as a decimal string, a {p, q} fraction, or an {amount, decimals} pair",
			`{"currency": "USD", "amount": "12.34"}`)
	}
	a, err := unmarshalAmount(w.Amount)
	if err != nil {
		return err
	}
	*m = newMoney(c, a)
	return nil
}

// unmarshalAmount decodes the amount leg of the wire form, dispatching on
// its JSON shape.
func unmarshalAmount(raw json.RawMessage) (Amount, error) {
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return Amount{}, validationErr(
				fmt.Sprintf("malformed amount string: %v", err),
				"write the amount as a decimal string", `"12.34"`)
		}
		f, err := exact.ParseFixedPoint(s)
		if err != nil {
			return Amount{}, validationErr(
				fmt.Sprintf("malformed decimal %q", s),
				"write the amount as a decimal string", `"12.34"`)
		}
		return AmountFromFixedPoint(f), nil
	}

	var probe map[string]json.RawMessage
	if err := json.Unmarshal(raw, &probe); err != nil {
		return Amount{}, validationErr(
			"amount is neither a string nor an object",
			"write the amount as a decimal string, a {p, q} fraction, or an {amount, decimals} pair",
			`{"p": "1", "q": "3"}`)
	}

	if _, ok := probe["p"]; ok {
		var rj rationalJSON
		if err := json.Unmarshal(raw, &rj); err != nil {
			return Amount{}, validationErr(
				fmt.Sprintf("malformed fraction: %v", err),
				"write numerator and denominator as decimal strings",
				`{"p": "1", "q": "3"}`)
		}
		p, ok := new(big.Int).SetString(rj.P, 10)
		if !ok {
			return Amount{}, validationErr(
				fmt.Sprintf("malformed numerator %q", rj.P),
				"write numerator and denominator as decimal strings",
				`{"p": "1", "q": "3"}`)
		}
		q, ok := new(big.Int).SetString(rj.Q, 10)
		if !ok {
			return Amount{}, validationErr(
				fmt.Sprintf("malformed denominator %q", rj.Q),
				"write numerator and denominator as decimal strings",
				`{"p": "1", "q": "3"}`)
		}
		r, err := exact.NewRational(p, q)
		if err != nil {
			return Amount{}, validationErr(
				"fraction has a zero denominator",
				"use a non-zero denominator", `{"p": "1", "q": "3"}`)
		}
		return AmountFromRational(r), nil
	}

	var sj scaledJSON
	if err := json.Unmarshal(raw, &sj); err != nil || sj.Amount == "" {
		return Amount{}, validationErr(
			"unrecognized amount object",
			"write the amount as a decimal string, a {p, q} fraction, or an {amount, decimals} pair",
			`{"amount": "1234", "decimals": 2}`)
	}
	n, ok := new(big.Int).SetString(sj.Amount, 10)
	if !ok {
		return Amount{}, validationErr(
			fmt.Sprintf("malformed scaled integer %q", sj.Amount),
			"write the scaled amount as a decimal-integer string",
			`{"amount": "1234", "decimals": 2}`)
	}
	f, err := exact.NewFixedPoint(n, sj.Decimals)
	if err != nil {
		return Amount{}, validationErr(
			fmt.Sprintf("invalid decimal count %d", sj.Decimals),
			"use zero or more decimals",
			`{"amount": "1234", "decimals": 2}`)
	}
	return AmountFromFixedPoint(f), nil
}

// MarshalText implements the [encoding.TextMarshaler] interface, using the
// same "USD 12.34" form as [Money.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (m Money) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (m *Money) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Value implements the [driver.Valuer] interface, storing the amount in
// its "USD 12.34" string form.
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (m Money) Value() (driver.Value, error) {
	return m.String(), nil
}

// Scan implements the [sql.Scanner] interface.
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (m *Money) Scan(value any) error {
	switch v := value.(type) {
	case string:
		return m.UnmarshalText([]byte(v))
	case []byte:
		return m.UnmarshalText(v)
	default:
		return fmt.Errorf("incompatible type %T for money value", value)
	}
}
