package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/embedserve/embedserve/core/config"
)

// Env-dependent tests must not run in parallel with each other, so this file
// does not use t.Parallel().

type serverConfig struct {
	Addr  string `env:"TEST_SERVE_ADDR" envDefault:":8080"`
	Index string `env:"TEST_SERVE_INDEX" envDefault:"index.html"`
}

type requiredConfig struct {
	Token string `env:"TEST_SERVE_REQUIRED_TOKEN,required"`
}

func TestLoadDefaults(t *testing.T) {
	var cfg serverConfig
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "index.html", cfg.Index)
}

func TestLoadCachesPerType(t *testing.T) {
	var first serverConfig
	require.NoError(t, config.Load(&first))

	// Changing the environment after the first load must not change the
	// cached value.
	t.Setenv("TEST_SERVE_ADDR", ":9999")

	var second serverConfig
	require.NoError(t, config.Load(&second))
	assert.Equal(t, first, second)
}

func TestLoadRequiredMissing(t *testing.T) {
	var cfg requiredConfig
	err := config.Load(&cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse environment")
}

func TestMustLoadPanicsOnError(t *testing.T) {
	assert.Panics(t, func() {
		var cfg requiredConfig
		config.MustLoad(&cfg)
	})
}
