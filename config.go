package money

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/exactvalues/money/exact"
)

// InputMode controls how lossy numeric inputs, such as floats with long
// fractional expansions, are handled by the constructors.
type InputMode int

const (
	// InputWarn accepts the input and logs a warning.
	InputWarn InputMode = iota
	// InputError rejects the input with [ErrPrecisionLoss].
	InputError
	// InputSilent accepts the input without logging.
	InputSilent
	// InputNever rejects every float input regardless of precision.
	InputNever
)

var inputModeNames = map[InputMode]string{
	InputWarn:   "warn",
	InputError:  "error",
	InputSilent: "silent",
	InputNever:  "never",
}

// String implements the [fmt.Stringer] interface.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (im InputMode) String() string {
	if name, ok := inputModeNames[im]; ok {
		return name
	}
	return fmt.Sprintf("InputMode(%d)", int(im))
}

// ParseInputMode converts a string to an input mode.
// The input is case-insensitive.
func ParseInputMode(s string) (InputMode, error) {
	for im, name := range inputModeNames {
		if strings.EqualFold(s, name) {
			return im, nil
		}
	}
	return 0, fmt.Errorf("unknown input mode %q", s)
}

// UnmarshalYAML implements the [yaml.Unmarshaler] interface.
//
// [yaml.Unmarshaler]: https://pkg.go.dev/gopkg.in/yaml.v3#Unmarshaler
func (im *InputMode) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	m, err := ParseInputMode(s)
	if err != nil {
		return err
	}
	*im = m
	return nil
}

// Config carries package-wide defaults for constructors, rounding, and
// formatting. The zero value is not useful; start from [DefaultConfig].
type Config struct {
	// NumberInputMode controls how floats with long fractional
	// expansions are handled. The default is [InputWarn].
	NumberInputMode InputMode `yaml:"number_input_mode"`

	// PrecisionWarningThreshold is the number of fractional digits a
	// float literal may carry before NumberInputMode applies.
	// The default is 12.
	PrecisionWarningThreshold int `yaml:"precision_warning_threshold"`

	// DefaultRoundingMode is used when an operation rounds without an
	// explicit mode. The default is [exact.HalfExpand].
	DefaultRoundingMode exact.RoundingMode `yaml:"default_rounding_mode"`

	// DefaultCurrency is assumed by [Parse] when the input carries no
	// currency indication. The default is USD.
	DefaultCurrency Currency `yaml:"default_currency"`

	// DefaultLocale selects the digit grouping convention used by
	// [Money.Display]: "en-US" or "de-DE". The default is "en-US".
	DefaultLocale string `yaml:"default_locale"`

	// StrictPrecision, when set, makes [Money.Equal] require identical
	// representations rather than equal 50-digit expansions.
	StrictPrecision bool `yaml:"strict_precision"`
}

// DefaultConfig returns the configuration the package starts with.
func DefaultConfig() Config {
	return Config{
		NumberInputMode:           InputWarn,
		PrecisionWarningThreshold: 12,
		DefaultRoundingMode:       exact.HalfExpand,
		DefaultCurrency:           USD,
		DefaultLocale:             "en-US",
	}
}

var (
	configMu      sync.RWMutex
	currentConfig = DefaultConfig()
)

// CurrentConfig returns the configuration currently in effect.
func CurrentConfig() Config {
	configMu.RLock()
	defer configMu.RUnlock()
	return currentConfig
}

// SetDefaultConfig replaces the package-wide configuration.
func SetDefaultConfig(cfg Config) {
	configMu.Lock()
	defer configMu.Unlock()
	currentConfig = cfg
}

// ResetDefaultConfig restores the configuration returned by
// [DefaultConfig].
func ResetDefaultConfig() {
	SetDefaultConfig(DefaultConfig())
}

// WithConfig runs fn with cfg in effect and restores the previous
// configuration afterwards, even if fn panics.
func WithConfig(cfg Config, fn func()) {
	prev := CurrentConfig()
	SetDefaultConfig(cfg)
	defer SetDefaultConfig(prev)
	fn()
}

// UnmarshalYAML implements the [yaml.Unmarshaler] interface.
// Missing fields keep their defaults.
//
// [yaml.Unmarshaler]: https://pkg.go.dev/gopkg.in/yaml.v3#Unmarshaler
func (c *Config) UnmarshalYAML(value *yaml.Node) error {
	type plain struct {
		NumberInputMode           *InputMode `yaml:"number_input_mode"`
		PrecisionWarningThreshold *int       `yaml:"precision_warning_threshold"`
		DefaultRoundingMode       *string    `yaml:"default_rounding_mode"`
		DefaultCurrency           *string    `yaml:"default_currency"`
		DefaultLocale             *string    `yaml:"default_locale"`
		StrictPrecision           *bool      `yaml:"strict_precision"`
	}
	var p plain
	if err := value.Decode(&p); err != nil {
		return err
	}
	*c = DefaultConfig()
	if p.NumberInputMode != nil {
		c.NumberInputMode = *p.NumberInputMode
	}
	if p.PrecisionWarningThreshold != nil {
		c.PrecisionWarningThreshold = *p.PrecisionWarningThreshold
	}
	if p.DefaultRoundingMode != nil {
		mode, err := exact.ParseRoundingMode(*p.DefaultRoundingMode)
		if err != nil {
			return err
		}
		c.DefaultRoundingMode = mode
	}
	if p.DefaultCurrency != nil {
		curr, err := ParseCurr(*p.DefaultCurrency)
		if err != nil {
			return err
		}
		c.DefaultCurrency = curr
	}
	if p.DefaultLocale != nil {
		c.DefaultLocale = *p.DefaultLocale
	}
	if p.StrictPrecision != nil {
		c.StrictPrecision = *p.StrictPrecision
	}
	return nil
}

// LoadConfig reads a YAML configuration file, overlays any MONEY_*
// environment variables on top of it, and returns the result without
// installing it. Pass the result to [SetDefaultConfig] to make it the
// package default.
//
// Recognized environment variables:
//
//	MONEY_NUMBER_INPUT_MODE
//	MONEY_PRECISION_WARNING_THRESHOLD
//	MONEY_DEFAULT_ROUNDING_MODE
//	MONEY_DEFAULT_CURRENCY
//	MONEY_DEFAULT_LOCALE
//	MONEY_STRICT_PRECISION
//
// A ".env" file in the working directory, if present, is loaded first.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing config: %w", err)
		}
	}
	_ = godotenv.Load()
	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v, ok := os.LookupEnv("MONEY_NUMBER_INPUT_MODE"); ok {
		m, err := ParseInputMode(v)
		if err != nil {
			return fmt.Errorf("MONEY_NUMBER_INPUT_MODE: %w", err)
		}
		c.NumberInputMode = m
	}
	if v, ok := os.LookupEnv("MONEY_PRECISION_WARNING_THRESHOLD"); ok {
		var n int
		if _, err := fmt.Sscanf(v, "%d", &n); err != nil || n < 0 {
			return fmt.Errorf("MONEY_PRECISION_WARNING_THRESHOLD: invalid value %q", v)
		}
		c.PrecisionWarningThreshold = n
	}
	if v, ok := os.LookupEnv("MONEY_DEFAULT_ROUNDING_MODE"); ok {
		m, err := exact.ParseRoundingMode(v)
		if err != nil {
			return fmt.Errorf("MONEY_DEFAULT_ROUNDING_MODE: %w", err)
		}
		c.DefaultRoundingMode = m
	}
	if v, ok := os.LookupEnv("MONEY_DEFAULT_CURRENCY"); ok {
		curr, err := ParseCurr(v)
		if err != nil {
			return fmt.Errorf("MONEY_DEFAULT_CURRENCY: %w", err)
		}
		c.DefaultCurrency = curr
	}
	if v, ok := os.LookupEnv("MONEY_DEFAULT_LOCALE"); ok {
		c.DefaultLocale = v
	}
	if v, ok := os.LookupEnv("MONEY_STRICT_PRECISION"); ok {
		c.StrictPrecision = strings.EqualFold(v, "true") || v == "1"
	}
	return nil
}

// log is the package logger. Warnings about lossy inputs are the only
// thing the package ever logs.
var log = logrus.WithField("component", "money")

// checkLiteral validates the shortest decimal rendering of a float against
// the configured input mode.
func (c Config) checkLiteral(op, s string) error {
	switch c.NumberInputMode {
	case InputNever:
		return &Error{
			Kind:       ErrPrecisionLoss,
			Op:         op,
			Message:    "float input is disabled by configuration",
			Suggestion: "construct the amount from a string or integer instead",
			Example:    `money.Parse("19.99 USD")`,
		}
	case InputSilent:
		return nil
	}
	frac := 0
	if i := strings.IndexByte(s, '.'); i >= 0 {
		frac = len(s) - i - 1
	}
	if frac <= c.PrecisionWarningThreshold {
		return nil
	}
	if c.NumberInputMode == InputError {
		return &Error{
			Kind:       ErrPrecisionLoss,
			Op:         op,
			Message:    fmt.Sprintf("literal %q carries %d fractional digits, threshold is %d", s, frac, c.PrecisionWarningThreshold),
			Suggestion: "construct the amount from a string or integer instead",
			Example:    `money.Parse("19.99 USD")`,
		}
	}
	log.WithFields(logrus.Fields{
		"op":      op,
		"literal": s,
		"digits":  frac,
	}).Warn("float literal exceeds precision threshold")
	return nil
}
