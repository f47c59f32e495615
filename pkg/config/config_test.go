package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 34145, cfg.Server.Port)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Empty(t, cfg.Server.StaticDir)
	assert.Equal(t, "0.0.0.0:34145", cfg.Server.Addr())

	level, err := cfg.Log.ZerologLevel()
	require.NoError(t, err)
	assert.Equal(t, zerolog.InfoLevel, level)

	loc, err := cfg.Report.Location()
	require.NoError(t, err)
	assert.Equal(t, time.Local, loc)
}

func TestLoad_ValidYAML_PopulatesAllFields(t *testing.T) {
	// Given
	dir := t.TempDir()
	path := filepath.Join(dir, "livecost.yaml")
	content := `server:
  host: "127.0.0.1"
  port: 8080
  shutdown_timeout: "3s"
  static_dir: "./static"
log:
  level: "debug"
  pretty: true
report:
  timezone: "Asia/Shanghai"`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	// When
	cfg, err := Load(path)

	// Then
	require.NoError(t, err)
	assert.Equal(t, Config{
		Server: ServerConfig{
			Host:            "127.0.0.1",
			Port:            8080,
			ShutdownTimeout: 3 * time.Second,
			StaticDir:       "./static",
		},
		Log:    LogConfig{Level: "debug", Pretty: true},
		Report: ReportConfig{Timezone: "Asia/Shanghai"},
	}, *cfg)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("LIVECOST_SERVER_HOST", "localhost")
	t.Setenv("LIVECOST_LOG_LEVEL", "warn")
	t.Setenv("PORT", "9000")

	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, "localhost", cfg.Server.Host)
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoad_PrefixedPortWinsOverPORT(t *testing.T) {
	t.Setenv("LIVECOST_SERVER_PORT", "7000")
	t.Setenv("PORT", "9000")

	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, 7000, cfg.Server.Port)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "port out of range", env: map[string]string{"LIVECOST_SERVER_PORT": "70000"}},
		{name: "unknown log level", env: map[string]string{"LIVECOST_LOG_LEVEL": "loud"}},
		{name: "unknown timezone", env: map[string]string{"LIVECOST_REPORT_TIMEZONE": "Mars/Olympus"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load("")
			assert.Error(t, err)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
