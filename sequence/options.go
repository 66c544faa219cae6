package sequence

import (
	"fmt"

	"github.com/arloliu/symseq/errs"
	"github.com/arloliu/symseq/format"
	"github.com/arloliu/symseq/internal/options"
)

// Config holds the construction settings of a Sequence.
type Config struct {
	encoderType format.EncoderType
	capacity    int
	circular    bool
}

// Option is a functional option for configuring New and FromEncoder.
type Option = options.Option[*Config]

func newConfig(opts ...Option) (*Config, error) {
	cfg := &Config{encoderType: format.TypeIndex}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}

// WithEncoderType selects the encoder New builds for the alphabet.
// Default is format.TypeIndex. FromEncoder ignores it.
func WithEncoderType(typ format.EncoderType) Option {
	return options.New(func(c *Config) error {
		if !typ.IsValid() {
			return fmt.Errorf("%w: %s", errs.ErrInvalidEncoderType, typ)
		}
		c.encoderType = typ

		return nil
	})
}

// WithCircular marks the sequence as circular. Default is false.
func WithCircular(circular bool) Option {
	return options.NoError(func(c *Config) {
		c.circular = circular
	})
}

// WithCapacity pre-allocates room for n symbols.
func WithCapacity(n int) Option {
	return options.NoError(func(c *Config) {
		c.capacity = max(n, 0)
	})
}
