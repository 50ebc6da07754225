package money

import (
	"errors"
	"fmt"
	"testing"

	"github.com/exactvalues/money/exact"
)

func TestMoney_Display(t *testing.T) {
	tests := []struct {
		m, locale, want string
	}{
		{"USD 1234.56", "en-US", "$1,234.56"},
		{"USD 1234.56", "de-DE", "1.234,56 $"},
		{"USD 1234567.89", "en-US", "$1,234,567.89"},
		{"USD -1234.56", "en-US", "-$1,234.56"},
		{"JPY 1234567", "en-US", "¥1,234,567"},
		{"EUR 0.99", "en-US", "€0.99"},
		{"EUR 1234.56", "de-DE", "1.234,56 €"},
		{"SEK 75.00", "en-US", "kr75.00"},
		{"USD 1.00", "en-US", "$1.00"},
		{"BTC 0.00000100", "en-US", "₿0.00000100"},
	}
	for _, tt := range tests {
		m := MustParse(tt.m)
		if got := m.DisplayIn(tt.locale); got != tt.want {
			t.Errorf("%q.DisplayIn(%q) = %q, want %q", m, tt.locale, got, tt.want)
		}
	}
}

func TestMoney_DisplayRounds(t *testing.T) {
	// Display narrows to the currency scale with the configured mode.
	m := MustParse("USD 12.345")
	if got := m.Display(); got != "$12.35" {
		t.Errorf("%q.Display() = %q, want %q", m, got, "$12.35")
	}
	third := NewFromRational(USD, exact.NewRationalFromInt64(1, 3))
	if got := third.Display(); got != "$0.33" {
		t.Errorf("%q.Display() = %q, want %q", third, got, "$0.33")
	}
}

func TestMoney_DisplayCompact(t *testing.T) {
	tests := []struct {
		m, want string
	}{
		{"USD 1234.56", "$1.2K"},
		{"USD 3500000.00", "$3.5M"},
		{"USD 1100000000.00", "$1.1B"},
		{"USD -1234.56", "-$1.2K"},
		{"USD 999.99", "$999.99"},
		{"JPY 45000", "¥45.0K"},
	}
	for _, tt := range tests {
		m := MustParse(tt.m)
		if got := m.DisplayCompact(); got != tt.want {
			t.Errorf("%q.DisplayCompact() = %q, want %q", m, got, tt.want)
		}
	}
}

func TestMoney_DisplayWith(t *testing.T) {
	tests := []struct {
		m    string
		opts DisplayOpts
		want string
	}{
		{"USD 1234.56", DisplayOpts{}, "USD 1,234.56"},
		{"USD 1234.56", DisplayOpts{PreferSymbol: true}, "$1,234.56"},
		{"USD 1234.56", DisplayOpts{ExcludeCurrency: true}, "1,234.56"},
		{"USD 1234.56", DisplayOpts{MaxDecimals: 1}, "USD 1,234.6"},
		{"USD 1234.56", DisplayOpts{MaxDecimals: 1, Mode: exact.Trunc}, "USD 1,234.5"},
		{"USD 1234.56", DisplayOpts{MinDecimals: 4}, "USD 1,234.5600"},
		{"JPY 1500", DisplayOpts{MinDecimals: 2}, "JPY 1,500.00"},
		{"USD 1234.56", DisplayOpts{Locale: "de-DE", PreferSymbol: true}, "1.234,56 $"},
		{"USD -1234.56", DisplayOpts{PreferSymbol: true}, "-$1,234.56"},
		{"USD -1234.56", DisplayOpts{}, "USD -1,234.56"},
		{"USD -1234.56", DisplayOpts{ExcludeCurrency: true}, "-1,234.56"},
		{"USD -1234.56", DisplayOpts{Locale: "de-DE"}, "-1.234,56 USD"},
	}
	for _, tt := range tests {
		m := MustParse(tt.m)
		if got := m.DisplayWith(tt.opts); got != tt.want {
			t.Errorf("%q.DisplayWith(%+v) = %q, want %q", m, tt.opts, got, tt.want)
		}
	}
}

func TestMoney_DisplayUnit(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			m, unit, want string
		}{
			{"BTC 0.00000100", "sat", "100 sats"},
			{"BTC 0.00000100", "satoshi", "100 satoshis"},
			{"BTC 0.00000001", "satoshi", "1 satoshi"},
			{"BTC 0.000000005", "sat", "0.5 sats"},
			{"USD 2.50", "cent", "250 cents"},
			{"USD 0.01", "cents", "1 cent"},
			{"USD -0.01", "cent", "-1 cent"},
			{"GBP 0.02", "pence", "2 pence"},
			{"ETH 1.5", "gwei", "1500000000 gwei"},
		}
		for _, tt := range tests {
			m := MustParse(tt.m)
			got, err := m.DisplayUnit(tt.unit)
			if err != nil {
				t.Errorf("%q.DisplayUnit(%q) failed: %v", m, tt.unit, err)
				continue
			}
			if got != tt.want {
				t.Errorf("%q.DisplayUnit(%q) = %q, want %q", m, tt.unit, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		m := MustParse("USD 1.00")
		if _, err := m.DisplayUnit("bogus"); !errors.Is(err, ErrUnknownCurrency) {
			t.Errorf("DisplayUnit(%q) error = %v, want %v", "bogus", err, ErrUnknownCurrency)
		}
		if _, err := m.DisplayUnit("sat"); !errors.Is(err, ErrCurrencyMismatch) {
			t.Errorf("DisplayUnit(%q) error = %v, want %v", "sat", err, ErrCurrencyMismatch)
		}
	})
}

func TestMoney_Format(t *testing.T) {
	m := MustParse("USD 12.34")
	tests := []struct {
		format, want string
	}{
		{"%v", "USD 12.34"},
		{"%s", "USD 12.34"},
		{"%q", `"USD 12.34"`},
		{"%f", "12.34"},
		{"%c", "USD"},
		{"%d", "%!d(money.Money=USD 12.34)"},
	}
	for _, tt := range tests {
		if got := fmt.Sprintf(tt.format, m); got != tt.want {
			t.Errorf("Sprintf(%q, %q) = %q, want %q", tt.format, m, got, tt.want)
		}
	}
}
