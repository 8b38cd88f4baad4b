package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, DefaultSecretKey, cfg.SecretKey)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
	assert.True(t, cfg.InsecureSecret())
	assert.NotEmpty(t, cfg.DBConn)
}

func TestNewConfig_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("SECRET_KEY", "s3cr3t")
	t.Setenv("SESSION_TTL", "30m")
	t.Setenv("DB_CONN", "host=db port=5432 user=u password=p dbname=d sslmode=disable")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "s3cr3t", cfg.SecretKey)
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
	assert.False(t, cfg.InsecureSecret())
}

func TestNewConfig_InvalidTTL(t *testing.T) {
	t.Setenv("SESSION_TTL", "soon")

	_, err := NewConfig()
	require.Error(t, err)
}
