// SPDX-License-Identifier: MIT
// Package: assoc/hashtable
//
// config.go - TOML-backed table configuration.
//
// Example file:
//
//	bin_count       = 16
//	max_load_factor = 0.75
//	strategy        = "default"   # or "constant"
//	constant_bin    = 3           # used by "constant" only
//
// Missing keys keep DefaultConfig values.

package hashtable

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/assoc/hashfn"
)

// Strategy names accepted in Config.Strategy.
const (
	StrategyDefault  = "default"
	StrategyConstant = "constant"
)

// Config describes a table in a form that can be read from TOML.
type Config struct {
	BinCount      int     `toml:"bin_count"`
	MaxLoadFactor float64 `toml:"max_load_factor"`
	// Strategy is "default" (Chaining / Probing) or "constant".
	Strategy    string `toml:"strategy"`
	ConstantBin int    `toml:"constant_bin"`
}

// DefaultConfig returns the defaults used when a field is left out.
func DefaultConfig() Config {
	return Config{
		BinCount:      DefaultBinCount,
		MaxLoadFactor: DefaultMaxLoadFactor,
		Strategy:      StrategyDefault,
	}
}

// DecodeConfig parses TOML text on top of DefaultConfig and validates it.
func DecodeConfig(data string) (Config, error) {
	c := DefaultConfig()
	if _, err := toml.Decode(data, &c); err != nil {
		return Config{}, fmt.Errorf("DecodeConfig: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, fmt.Errorf("DecodeConfig: %w", err)
	}
	return c, nil
}

// LoadConfig reads a TOML file on top of DefaultConfig and validates it.
func LoadConfig(path string) (Config, error) {
	c := DefaultConfig()
	if _, err := toml.DecodeFile(path, &c); err != nil {
		return Config{}, fmt.Errorf("LoadConfig(%s): %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, fmt.Errorf("LoadConfig(%s): %w", path, err)
	}
	return c, nil
}

// Validate checks the numeric ranges and the strategy name.
func (c Config) Validate() error {
	if c.BinCount <= 0 {
		return fmt.Errorf("bin_count=%d: %w", c.BinCount, ErrInvalidBinCount)
	}
	if !(c.MaxLoadFactor > 0 && c.MaxLoadFactor < 1) {
		return fmt.Errorf("max_load_factor=%v: %w", c.MaxLoadFactor, ErrInvalidLoadFactor)
	}
	switch c.Strategy {
	case "", StrategyDefault, StrategyConstant:
		return nil
	}
	return fmt.Errorf("strategy=%q: %w", c.Strategy, ErrUnknownStrategy)
}

// Options converts the numeric fields into constructor options.
func (c Config) Options() []Option {
	return []Option{WithBinCount(c.BinCount), WithMaxLoadFactor(c.MaxLoadFactor)}
}

// NewChainedFromConfig builds a Chained table from c. Extra options (for
// example WithLogger) are applied after the config.
func NewChainedFromConfig[K comparable, V any](c Config, opts ...Option) (*Chained[K, V], error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("NewChainedFromConfig: %w", err)
	}
	var h hashfn.Hasher[K] = hashfn.Chaining[K]()
	if c.Strategy == StrategyConstant {
		h = hashfn.Constant[K](c.ConstantBin)
	}
	return NewChained[K, V](h, append(c.Options(), opts...)...)
}

// NewOpenFromConfig builds an Open table from c. Extra options are applied
// after the config.
func NewOpenFromConfig[K comparable, V any](c Config, opts ...Option) (*Open[K, V], error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("NewOpenFromConfig: %w", err)
	}
	var p hashfn.Prober[K] = hashfn.Probing[K]()
	if c.Strategy == StrategyConstant {
		p = hashfn.Constant[K](c.ConstantBin)
	}
	return NewOpen[K, V](p, append(c.Options(), opts...)...)
}
