package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/airroutes/config"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "airroutes.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := config.Default()
	assert.Equal(t, "routes.dat", cfg.Data.Path)
	assert.False(t, cfg.Data.Strict)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "auto", cfg.Logging.Format)
	assert.Zero(t, cfg.Query.MaxHops)
	assert.Empty(t, cfg.Query.Avoid)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_EmptyPath(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_OverlaysFile(t *testing.T) {
	path := writeFile(t, `
data:
  path: /srv/openflights/routes.dat
  strict: true
query:
  max_hops: 3
  avoid: [SVO, DME]
logging:
  level: debug
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/srv/openflights/routes.dat", cfg.Data.Path)
	assert.True(t, cfg.Data.Strict)
	assert.Equal(t, 3, cfg.Query.MaxHops)
	assert.Equal(t, []string{"SVO", "DME"}, cfg.Query.Avoid)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "auto", cfg.Logging.Format, "unset keys keep defaults")
	assert.NoError(t, cfg.Validate())
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read")

	_, err = config.Load(writeFile(t, "data: [unclosed"))
	assert.ErrorContains(t, err, "failed to parse")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"empty data path", func(c *config.Config) { c.Data.Path = "" }},
		{"unknown level", func(c *config.Config) { c.Logging.Level = "loud" }},
		{"negative max hops", func(c *config.Config) { c.Query.MaxHops = -1 }},
		{"blank avoided airport", func(c *config.Config) { c.Query.Avoid = []string{"SVO", ""} }},
		{"unknown format", func(c *config.Config) { c.Logging.Format = "xml" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			tt.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), config.ErrInvalid)
		})
	}
}
