package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitConfig_Defaults(t *testing.T) {
	config, err := InitConfig()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", config.ServerHost)
	assert.Equal(t, 8000, config.ServerPort)
	assert.Equal(t, "data/antistress.db", config.DatabaseDbPath)
	assert.Equal(t, "info", config.LogLevel)
}

func TestInitConfig_EnvironmentOverrides(t *testing.T) {
	t.Setenv("ANTISTRESS_SERVER_PORT", "9090")
	t.Setenv("ANTISTRESS_DATABASE_DB_PATH", "/tmp/override.db")

	config, err := InitConfig()
	require.NoError(t, err)

	assert.Equal(t, 9090, config.ServerPort)
	assert.Equal(t, "/tmp/override.db", config.DatabaseDbPath)
}
