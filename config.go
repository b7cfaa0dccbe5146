package folio

import (
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/shopspring/decimal"
)

// Config is the user-editable portfolio configuration: base currency,
// target allocations for the rebalancer and ATR band parameters.
//
// Decimal fields are written as TOML strings to keep them exact:
//
//	base_currency = "USD"
//	rebalance_threshold = "0.05"
//	atr_period = 14
//	atr_multiplier = "2"
//
//	[target_allocations]
//	AAPL = "0.30"
//	MSFT = "0.20"
type Config struct {
	BaseCurrency       string                     `toml:"base_currency"`
	TargetAllocations  map[string]decimal.Decimal `toml:"target_allocations"`
	RebalanceThreshold decimal.Decimal            `toml:"rebalance_threshold"`
	AtrPeriod          int                        `toml:"atr_period"`
	AtrMultiplier      decimal.Decimal            `toml:"atr_multiplier"`
}

// DefaultConfig returns the configuration used when no file is present:
// USD base, 5% rebalance threshold, 14-day ATR with a 2x band.
func DefaultConfig() *Config {
	return &Config{
		BaseCurrency:       "USD",
		RebalanceThreshold: decimal.RequireFromString("0.05"),
		AtrPeriod:          14,
		AtrMultiplier:      decimal.NewFromInt(2),
	}
}

// DecodeConfig reads a TOML configuration, filling missing fields from
// the defaults.
func DecodeConfig(r io.Reader) (*Config, error) {
	cfg := DefaultConfig()
	if err := toml.NewDecoder(r).Decode(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadConfig reads the configuration file at path. A missing file is not
// an error: the defaults apply.
func LoadConfig(path string) (*Config, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening config %q: %w", path, err)
	}
	defer f.Close()
	cfg, err := DecodeConfig(f)
	if err != nil {
		return nil, fmt.Errorf("config %q: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects configurations the engines cannot work with.
func (c *Config) Validate() error {
	if c.BaseCurrency == "" {
		return fmt.Errorf("base_currency must be set")
	}
	if c.RebalanceThreshold.IsNegative() {
		return fmt.Errorf("rebalance_threshold must not be negative, got %s", c.RebalanceThreshold)
	}
	if c.AtrPeriod <= 0 {
		return fmt.Errorf("atr_period must be positive, got %d", c.AtrPeriod)
	}
	if !c.AtrMultiplier.IsPositive() {
		return fmt.Errorf("atr_multiplier must be positive, got %s", c.AtrMultiplier)
	}
	for symbol, w := range c.TargetAllocations {
		if w.IsNegative() || w.GreaterThan(one) {
			return fmt.Errorf("target allocation for %s must be within [0, 1], got %s", symbol, w)
		}
	}
	return nil
}
