package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 150, cfg.Plot.DPI)
	assert.Equal(t, 5.0, cfg.Plot.ScatterSize)
	assert.Equal(t, 6.0, cfg.Plot.PathWidth)
	assert.Equal(t, 4.2, cfg.Plot.PathHeight)
	assert.Equal(t, 0.0, cfg.Plot.Magnification)
	assert.False(t, cfg.Log.JSON)

	require.NoError(t, Validate(cfg))
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tauviz.toml")
	content := `
[plot]
dpi = 300
scatter_size = 4.0

[log]
json = true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	// Explicit values override, defaults fill the rest
	assert.Equal(t, 300, cfg.Plot.DPI)
	assert.Equal(t, 4.0, cfg.Plot.ScatterSize)
	assert.Equal(t, 6.0, cfg.Plot.PathWidth)
	assert.True(t, cfg.Log.JSON)
}

func TestLoadFromFile_InvalidValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tauviz.toml")
	require.NoError(t, os.WriteFile(path, []byte("[plot]\ndpi = 7\n"), 0o644))

	_, err := LoadFromFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "plot.dpi")
}

func TestLoadFromFile_Missing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "defaults are valid",
			mutate: func(*Config) {},
		},
		{
			name:    "dpi too small",
			mutate:  func(c *Config) { c.Plot.DPI = 10 },
			wantErr: "plot.dpi",
		},
		{
			name:    "dpi too large",
			mutate:  func(c *Config) { c.Plot.DPI = 5000 },
			wantErr: "plot.dpi",
		},
		{
			name:    "nonpositive figure size",
			mutate:  func(c *Config) { c.Plot.PathWidth = 0 },
			wantErr: "plot.path_width",
		},
		{
			name:    "negative magnification",
			mutate:  func(c *Config) { c.Plot.Magnification = -1 },
			wantErr: "plot.magnification",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := Validate(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestWriteDefault_RoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".tauviz", "config.toml")

	require.NoError(t, WriteDefault(path))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestWriteDefault_RefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[plot]\n"), 0o644))

	err := WriteDefault(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}
