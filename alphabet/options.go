package alphabet

import (
	"fmt"
	"slices"

	"github.com/arloliu/symseq/errs"
	"github.com/arloliu/symseq/internal/options"
)

// Config holds the construction settings of a List.
type Config struct {
	name       string
	complement []string
	symbolSize int // 0 means derive from the symbols
	maxSize    int
}

// Option is a functional option for configuring NewList.
type Option = options.Option[*Config]

func newConfig() *Config {
	return &Config{maxSize: DefaultMaxSize}
}

func (c *Config) apply(opts ...Option) error {
	return options.Apply(c, opts...)
}

// WithName sets the name shown by List.String.
func WithName(name string) Option {
	return options.NoError(func(c *Config) {
		c.name = name
	})
}

// WithSymbolSize sets the number of runes per symbol. Every symbol must have exactly this length.
func WithSymbolSize(n int) Option {
	return options.New(func(c *Config) error {
		if n < 1 {
			return fmt.Errorf("%w: %d", errs.ErrInvalidSymbolSize, n)
		}
		c.symbolSize = n

		return nil
	})
}

// WithMaxSize declares the number of symbols the alphabet may hold over its lifetime.
// Default is DefaultMaxSize.
func WithMaxSize(n int) Option {
	return options.New(func(c *Config) error {
		if n < 1 {
			return fmt.Errorf("%w: %d", errs.ErrInvalidMaxSize, n)
		}
		c.maxSize = n

		return nil
	})
}

// WithComplement sets the complement mapping, aligned with the symbols.
func WithComplement(mapping []string) Option {
	return options.NoError(func(c *Config) {
		c.complement = slices.Clone(mapping)
	})
}
