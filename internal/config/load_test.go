package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "item-api", cfg.App.Name)
	assert.Equal(t, "0.1.0", cfg.App.Version)
	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8000, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Server.LogLevel)
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	t.Setenv("ITEMAPI_SERVER_PORT", "9000")
	t.Setenv("ITEMAPI_SERVER_LOG_LEVEL", "debug")
	t.Setenv("ITEMAPI_APP_ENVIRONMENT", "production")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, "production", cfg.App.Environment)
	// Untouched keys keep their defaults
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "port out of range", key: "ITEMAPI_SERVER_PORT", value: "70000"},
		{name: "zero port", key: "ITEMAPI_SERVER_PORT", value: "0"},
		{name: "unknown log level", key: "ITEMAPI_SERVER_LOG_LEVEL", value: "verbose"},
		{name: "unknown environment", key: "ITEMAPI_APP_ENVIRONMENT", value: "qa"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(tc.key, tc.value)

			cfg, err := Load()
			assert.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}
