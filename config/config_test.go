package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testYAML = `
env:
  env: test
  serviceName: atlas
  debug: true
  log:
    pretty: false
    level: debug
http:
  port: 8000
  timeouts:
    readTimeout: 10s
    writeTimeout: 15s
secretKey:
  access: test-secret
auth:
  bcryptCost: 4
storage:
  bucketUrl: file:///tmp/atlas-uploads
  publicBaseUrl: http://localhost:8000/uploads
qrcode:
  size: 256
  errorCorrectionLevel: M
  shareBaseUrl: http://localhost:3000
`

func writeConfigFile(t *testing.T, name string) {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name+".yaml"), []byte(testYAML), 0o600))
	t.Chdir(dir)
}

func TestLoadWithEnv(t *testing.T) {
	writeConfigFile(t, "test")

	cfg, err := LoadWithEnv[Config]("test")
	require.NoError(t, err)

	assert.Equal(t, "atlas", cfg.Env.ServiceName)
	assert.True(t, cfg.Env.Debug)
	assert.Equal(t, 8000, cfg.HTTP.Port)
	assert.Equal(t, 10*time.Second, cfg.HTTP.Timeouts.ReadTimeout)
	assert.Equal(t, 15*time.Second, cfg.HTTP.Timeouts.WriteTimeout)
	assert.Equal(t, "test-secret", cfg.SecretKey.Access)
	require.NotNil(t, cfg.Auth)
	assert.Equal(t, 4, cfg.Auth.BcryptCost)
	require.NotNil(t, cfg.Storage)
	assert.Equal(t, "http://localhost:8000/uploads", cfg.Storage.PublicBaseURL)
	require.NotNil(t, cfg.QRCode)
	assert.Equal(t, "M", cfg.QRCode.ErrorCorrectionLevel)
}

func TestLoadWithEnv_EnvOverride(t *testing.T) {
	writeConfigFile(t, "test")
	t.Setenv("SECRETKEY_ACCESS", "from-env")
	t.Setenv("HTTP_PORT", "9100")

	cfg, err := LoadWithEnv[Config]("test")
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.SecretKey.Access)
	assert.Equal(t, 9100, cfg.HTTP.Port)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
