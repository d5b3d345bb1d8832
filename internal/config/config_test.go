package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ahwlsqja/paygate-verifier/pkg/timestamp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:3002", cfg.Server.Addr())
	assert.Equal(t, 10*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 30*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "development", cfg.Server.Environment)
	assert.False(t, cfg.Server.IsProduction())
	assert.Equal(t, int64(1<<20), cfg.Server.MaxBodyBytes)
	assert.Equal(t, uint64(300), cfg.Signature.ExpirySeconds)
	assert.Equal(t, uint64(60), cfg.Signature.ClockSkewSeconds)
}

// The envconfig default tags cannot reference constants, so keep them in step
// with the validator's own defaults here.
func TestLoad_DefaultsMatchTimestampPolicy(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, timestamp.DefaultMaxAge, cfg.Signature.ExpirySeconds)
	assert.Equal(t, timestamp.DefaultMaxSkew, cfg.Signature.ClockSkewSeconds)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "8081")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("MAX_REQUEST_BODY_BYTES", "2048")
	t.Setenv("SIGNATURE_EXPIRY_SECONDS", "120")
	t.Setenv("SIGNATURE_CLOCK_SKEW_SECONDS", "5")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8081, cfg.Server.Port)
	assert.True(t, cfg.Server.IsProduction())
	assert.Equal(t, int64(2048), cfg.Server.MaxBodyBytes)
	assert.Equal(t, uint64(120), cfg.Signature.ExpirySeconds)
	assert.Equal(t, uint64(5), cfg.Signature.ClockSkewSeconds)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"zero body limit", "MAX_REQUEST_BODY_BYTES", "0"},
		{"negative body limit", "MAX_REQUEST_BODY_BYTES", "-1"},
		{"non-numeric body limit", "MAX_REQUEST_BODY_BYTES", "lots"},
		{"negative expiry", "SIGNATURE_EXPIRY_SECONDS", "-5"},
		{"port out of range", "SERVER_PORT", "70000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestLoad_DotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("SIGNATURE_EXPIRY_SECONDS=42\nSERVER_PORT=9000\n"), 0o600))
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	// Process environment wins over .env
	t.Setenv("SERVER_PORT", "9001")
	// godotenv sets variables it loads; restore them after the test
	t.Setenv("SIGNATURE_EXPIRY_SECONDS", "")
	require.NoError(t, os.Unsetenv("SIGNATURE_EXPIRY_SECONDS"))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, uint64(42), cfg.Signature.ExpirySeconds)
	assert.Equal(t, 9001, cfg.Server.Port)
}
