package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	size  int
	name  string
	calls []string
}

func withSize(n int) Option[*testConfig] {
	return New(func(c *testConfig) error {
		if n <= 0 {
			return errors.New("size must be positive")
		}
		c.size = n
		c.calls = append(c.calls, "size")

		return nil
	})
}

func withName(name string) Option[*testConfig] {
	return NoError(func(c *testConfig) {
		c.name = name
		c.calls = append(c.calls, "name")
	})
}

func TestApply(t *testing.T) {
	cfg := &testConfig{}

	err := Apply(cfg, withSize(4), withName("dna"))
	require.NoError(t, err)
	require.Equal(t, 4, cfg.size)
	require.Equal(t, "dna", cfg.name)
	require.Equal(t, []string{"size", "name"}, cfg.calls)
}

func TestApply_NoOptions(t *testing.T) {
	cfg := &testConfig{size: 7}

	require.NoError(t, Apply(cfg))
	require.Equal(t, 7, cfg.size)
	require.Empty(t, cfg.calls)
}

func TestApply_StopsAtFirstError(t *testing.T) {
	cfg := &testConfig{}

	err := Apply(cfg, withName("first"), withSize(0), withName("second"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "size must be positive")
	require.Equal(t, "first", cfg.name)
	require.Equal(t, []string{"name"}, cfg.calls)
}

func TestApply_SkipsNil(t *testing.T) {
	cfg := &testConfig{}

	var nilOpt Option[*testConfig]
	require.NoError(t, Apply(cfg, nilOpt, withSize(2)))
	require.Equal(t, 2, cfg.size)
}

func TestApply_LastWins(t *testing.T) {
	cfg := &testConfig{}

	require.NoError(t, Apply(cfg, withSize(1), withSize(3)))
	require.Equal(t, 3, cfg.size)
}
