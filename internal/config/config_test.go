package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "zoneval.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "EPSG:25832", cfg.CRS)
	assert.Equal(t, 10.0, cfg.Filter.MinDisplacementM)
	assert.Equal(t, 70.0, cfg.Filter.MaxDisplacementM)
	assert.Equal(t, 0.75, cfg.Classify.DominanceThreshold)
	assert.Equal(t, 2.0, cfg.Detect.PrismRadiusM)
	assert.Equal(t, 2.0, cfg.Detect.PETThresholdS)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
crs: EPSG:32633
port: ":9090"
data:
  points: ./data/points.geojson
  focus: ./data/focus.geojson
detect:
  prism_radius_m: 3
  prism_window_s: 2
  pet_threshold_s: 1.5
compare:
  quadrat_nx: 5
  quadrat_ny: 4
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "EPSG:32633", cfg.CRS)
	assert.Equal(t, ":9090", cfg.Port)
	assert.Equal(t, "./data/points.geojson", cfg.Data.Points)
	assert.Equal(t, 3.0, cfg.Detect.PrismRadiusM)
	assert.Equal(t, 1.5, cfg.Detect.PETThresholdS)
	assert.Equal(t, 5, cfg.Compare.QuadratNX)
	assert.Equal(t, 4, cfg.Compare.QuadratNY)

	// unset fields keep their defaults
	assert.Equal(t, 0.75, cfg.Classify.DominanceThreshold)
	assert.Equal(t, 1.0, cfg.Compare.GridCellSizeM)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("PORT", ":7070")
	t.Setenv("DB_PATH", "/tmp/override.db")
	t.Setenv("JWT_SECRET", "sekrit")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ":7070", cfg.Port)
	assert.Equal(t, "/tmp/override.db", cfg.DBPath)
	assert.Equal(t, "sekrit", cfg.JWTSecret)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("/nonexistent/zoneval.yaml")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty crs", func(c *Config) { c.CRS = "" }},
		{"inverted displacement window", func(c *Config) { c.Filter.MaxDisplacementM = 5 }},
		{"zero dominance threshold", func(c *Config) { c.Classify.DominanceThreshold = 0 }},
		{"dominance threshold above one", func(c *Config) { c.Classify.DominanceThreshold = 1.1 }},
		{"negative prism radius", func(c *Config) { c.Detect.PrismRadiusM = -1 }},
		{"zero prism window", func(c *Config) { c.Detect.PrismWindowS = 0 }},
		{"zero pet threshold", func(c *Config) { c.Detect.PETThresholdS = 0 }},
		{"zero grid cell size", func(c *Config) { c.Compare.GridCellSizeM = 0 }},
		{"zero quadrat axis", func(c *Config) { c.Compare.QuadratNX = 0 }},
		{"zero kde bandwidth", func(c *Config) { c.Compare.KDEBandwidthM = 0 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}

	assert.NoError(t, Default().Validate())
}
