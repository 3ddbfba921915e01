package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func envFrom(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(nil, envFrom(nil))
	require.NoError(t, err)
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_Precedence(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "campus.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
http:
  addr: ":7000"
  read_timeout: 5s
log:
  level: debug
metrics:
  enabled: false
cors:
  allowed_origins: ["https://campus.example"]
`), 0o600))

	cfg, err := Load(
		[]string{"--config", path, "--log-level", "warn"},
		envFrom(map[string]string{"PORT": "9090", "CAMPUS_LOG_LEVEL": "error"}),
	)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.HTTP.Addr, "env overrides file")
	assert.Equal(t, 5*time.Second, cfg.HTTP.ReadTimeout, "file overrides default")
	assert.Equal(t, 15*time.Second, cfg.HTTP.WriteTimeout, "untouched default")
	assert.Equal(t, "warn", cfg.Log.Level, "flag overrides env")
	assert.False(t, cfg.Metrics.Enabled)
	assert.Equal(t, []string{"https://campus.example"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_ConfigPathFromEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  development: true\n"), 0o600))

	cfg, err := Load(nil, envFrom(map[string]string{"CAMPUS_CONFIG": path}))
	require.NoError(t, err)
	assert.True(t, cfg.Log.Development)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load([]string{"--no-such-flag"}, envFrom(nil))
	assert.Error(t, err)

	_, err = Load([]string{"--config", filepath.Join(t.TempDir(), "missing.yaml")}, envFrom(nil))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("unknown_key: 1\n"), 0o600))
	_, err = Load([]string{"--config", path}, envFrom(nil))
	assert.Error(t, err, "unknown fields are rejected")

	_, err = Load(nil, envFrom(map[string]string{"CAMPUS_METRICS_ENABLED": "maybe"}))
	assert.ErrorContains(t, err, "CAMPUS_METRICS_ENABLED")
}

func TestValidate_AggregatesErrors(t *testing.T) {
	cfg := Default()
	cfg.HTTP.Addr = ""
	cfg.HTTP.IdleTimeout = 0
	cfg.Log.Level = "chatty"
	cfg.Metrics.Path = "metrics"

	err := cfg.Validate()
	require.Error(t, err)
	assert.Len(t, multierr.Errors(err), 4)
}
