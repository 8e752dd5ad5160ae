package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.False(t, cfg.AuthEnabled())
	assert.Empty(t, cfg.Patterns.Paths)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sealstack.yaml")
	data := `
server:
  addr: ":9090"
  api_keys:
    sk-test: ci
  shutdown_timeout: 5s
patterns:
  paths:
    - extra.yaml
  disable_embedded: true
logging:
  level: debug
  development: true
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, map[string]string{"sk-test": "ci"}, cfg.Server.APIKeys)
	assert.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, []string{"extra.yaml"}, cfg.Patterns.Paths)
	assert.True(t, cfg.Patterns.DisableEmbedded)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.True(t, cfg.Logging.Development)
	assert.True(t, cfg.AuthEnabled())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoad_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [not a map"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_InvalidLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lvl.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging:\n  level: loud\n"), 0o644))

	_, err := Load(path)
	assert.ErrorContains(t, err, "logging.level")
}

func TestLoggingConfig_NewLogger(t *testing.T) {
	logger, err := Default().Logging.NewLogger()
	require.NoError(t, err)
	logger.Info("config logger smoke test")
	_ = logger.Sync()

	_, err = LoggingConfig{Level: "whisper"}.NewLogger()
	assert.Error(t, err)
}
