package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "typescript", cfg.Dialect)
	assert.Equal(t, "", cfg.Output)
	assert.False(t, cfg.JSONLogs)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("TYPEPORT_DIALECT", "flow")
	t.Setenv("TYPEPORT_OUTPUT", "types.js")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "flow", cfg.Dialect)
	assert.Equal(t, "types.js", cfg.Output)
}
