package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_DevelopmentDefaults(t *testing.T) {
	t.Setenv("ENVIRONMENT", "")
	t.Setenv("PORT", "")
	t.Setenv("CONFIG_FILE", "/nonexistent/config.yaml")

	cfg, err := New()
	require.NoError(t, err)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "127.0.0.1", cfg.ServerHost)
	assert.Equal(t, 4600, cfg.ServerPort)
	assert.Equal(t, "./seed/books.json", cfg.SeedFilePath)
	assert.NotEmpty(t, cfg.Hostname)
}

func TestNew_TestEnvironment(t *testing.T) {
	t.Setenv("ENVIRONMENT", "test")
	t.Setenv("CONFIG_FILE", "/nonexistent/config.yaml")

	cfg, err := New()
	require.NoError(t, err)
	assert.Equal(t, "test", cfg.Environment)
	assert.Equal(t, 0, cfg.ServerPort)
	assert.Empty(t, cfg.SeedFilePath)
}

func TestNew_WithConfigFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	configContent := `
server_port: 8080
seed_file_path: /data/books.json
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))

	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("CONFIG_FILE", configPath)

	cfg, err := New()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.ServerPort)
	assert.Equal(t, "/data/books.json", cfg.SeedFilePath)
	assert.Equal(t, "0.0.0.0", cfg.ServerHost)
}

func TestNew_EnvVarOverridesConfigFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("server_port: 8080\n"), 0644))

	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("CONFIG_FILE", configPath)
	t.Setenv("SHELFMARK_SERVER_PORT", "9090")

	cfg, err := New()
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.ServerPort)
}

func TestNew_InvalidPort(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("CONFIG_FILE", "/nonexistent/config.yaml")
	t.Setenv("SHELFMARK_SERVER_PORT", "70000")

	cfg, err := New()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid server_port")
}
