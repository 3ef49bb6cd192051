package renter

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/koustreak/SiaRi/internal/errs"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "renterd.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfigFile(t, `
api_addr: https://renterd.example.com:9980/api
password: test-password
timeout: 90s
insecure_skip_verify: true
debug: true
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "https://renterd.example.com:9980/api", cfg.APIAddr)
	assert.Equal(t, "test-password", cfg.Password)
	assert.Equal(t, 90*time.Second, cfg.Timeout)
	assert.True(t, cfg.InsecureSkipVerify)
	assert.True(t, cfg.Debug)
}

func TestLoadConfigDefaults(t *testing.T) {
	path := writeConfigFile(t, `
api_addr: http://localhost:9980/api
password: test-password
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, time.Duration(0), cfg.Timeout)
	assert.False(t, cfg.InsecureSkipVerify)
	assert.False(t, cfg.Debug)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yml"))
	assert.True(t, errs.IsInvalidInput(err))
}

func TestLoadConfigBadYAML(t *testing.T) {
	path := writeConfigFile(t, "api_addr: [unclosed")
	_, err := LoadConfig(path)
	assert.True(t, errs.IsInvalidData(err))
}

func TestLoadConfigBadTimeout(t *testing.T) {
	path := writeConfigFile(t, `
api_addr: http://localhost:9980/api
password: test-password
timeout: soon
`)
	_, err := LoadConfig(path)
	assert.True(t, errs.IsInvalidData(err))
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig("http://localhost:9980/api", "secret")
	assert.Equal(t, "http://localhost:9980/api", cfg.APIAddr)
	assert.Equal(t, "secret", cfg.Password)
	assert.Equal(t, time.Duration(0), cfg.Timeout)
}
