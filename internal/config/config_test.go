package config

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, FormatText, cfg.Format)
	assert.Equal(t, 0, cfg.Workers)
	assert.False(t, cfg.Verify)
	assert.Equal(t, 65536, cfg.VerifyLimit)
	assert.Empty(t, cfg.MetricsFile)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("XORSAT_LOG_LEVEL", "debug")
	t.Setenv("XORSAT_FORMAT", "yaml")
	t.Setenv("XORSAT_WORKERS", "3")
	t.Setenv("XORSAT_VERIFY", "true")
	t.Setenv("XORSAT_VERIFY_LIMIT", "10")
	t.Setenv("XORSAT_METRICS_FILE", "/tmp/xorsat.prom")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, Config{
		LogLevel:    "debug",
		Format:      FormatYAML,
		Workers:     3,
		Verify:      true,
		VerifyLimit: 10,
		MetricsFile: "/tmp/xorsat.prom",
	}, cfg)

	lvl, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, lvl)
}

func TestLoadRejectsMalformedValues(t *testing.T) {
	t.Setenv("XORSAT_WORKERS", "many")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env")
}

func TestValidate(t *testing.T) {
	base := Config{LogLevel: "info", Format: FormatText}

	cases := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(*Config) {}, ""},
		{"format is case insensitive", func(c *Config) { c.Format = "YAML" }, ""},
		{"unknown format", func(c *Config) { c.Format = "json" }, "unknown output format"},
		{"unknown level", func(c *Config) { c.LogLevel = "loud" }, "log level"},
		{"negative workers", func(c *Config) { c.Workers = -1 }, "negative worker count"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := base
			tc.mutate(&c)
			err := c.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}
