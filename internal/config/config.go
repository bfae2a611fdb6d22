package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DataConfig lists the input dataset paths. All geometries must already be
// in the shared projected CRS; the core never transforms coordinates.
type DataConfig struct {
	Points string `yaml:"points"`
	Lines  string `yaml:"lines"`
	Zones  string `yaml:"zones"`
	Focus  string `yaml:"focus"`
}

// FilterConfig bounds trajectory displacement; both bounds are exclusive.
type FilterConfig struct {
	MinDisplacementM float64 `yaml:"min_displacement_m"`
	MaxDisplacementM float64 `yaml:"max_displacement_m"`
}

// ClassifyConfig holds classifier parameters.
type ClassifyConfig struct {
	DominanceThreshold float64 `yaml:"dominance_threshold"`
}

// DetectConfig holds the detector thresholds.
type DetectConfig struct {
	PrismRadiusM  float64 `yaml:"prism_radius_m"`
	PrismWindowS  float64 `yaml:"prism_window_s"`
	PETThresholdS float64 `yaml:"pet_threshold_s"`
}

// CompareConfig holds the spatial comparison parameters.
type CompareConfig struct {
	GridCellSizeM float64 `yaml:"grid_cell_size_m"`
	QuadratNX     int     `yaml:"quadrat_nx"`
	QuadratNY     int     `yaml:"quadrat_ny"`
	KDEBandwidthM float64 `yaml:"kde_bandwidth_m"`
	KDECellSizeM  float64 `yaml:"kde_cell_size_m"`
	JitterSeed    int64   `yaml:"jitter_seed"`
}

// Config is the root configuration for the evaluation pipeline and the
// results API.
type Config struct {
	CRS       string `yaml:"crs"`
	Port      string `yaml:"port"`
	DBPath    string `yaml:"db_path"`
	JWTSecret string `yaml:"jwt_secret"`

	Data     DataConfig     `yaml:"data"`
	Filter   FilterConfig   `yaml:"filter"`
	Classify ClassifyConfig `yaml:"classify"`
	Detect   DetectConfig   `yaml:"detect"`
	Compare  CompareConfig  `yaml:"compare"`
}

// Default returns a config with the reference thresholds.
func Default() *Config {
	return &Config{
		CRS:    "EPSG:25832",
		Port:   ":8080",
		DBPath: "./data/zoneval.db",
		Filter: FilterConfig{
			MinDisplacementM: 10,
			MaxDisplacementM: 70,
		},
		Classify: ClassifyConfig{
			DominanceThreshold: 0.75,
		},
		Detect: DetectConfig{
			PrismRadiusM:  2,
			PrismWindowS:  2,
			PETThresholdS: 2,
		},
		Compare: CompareConfig{
			GridCellSizeM: 1,
			QuadratNX:     10,
			QuadratNY:     10,
			KDEBandwidthM: 1.5,
			KDECellSizeM:  0.5,
			JitterSeed:    1,
		},
	}
}

// Load reads the YAML config file, applies environment overrides for
// PORT, DB_PATH and JWT_SECRET, and validates the result.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if port := os.Getenv("PORT"); port != "" {
		cfg.Port = port
	}
	if dbPath := os.Getenv("DB_PATH"); dbPath != "" {
		cfg.DBPath = dbPath
	}
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		cfg.JWTSecret = secret
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate fails fast on thresholds outside the documented input domain, so
// invalid parameters never reach the geometric primitives.
func (c *Config) Validate() error {
	if c.CRS == "" {
		return fmt.Errorf("crs must be set")
	}
	if c.Filter.MinDisplacementM < 0 || c.Filter.MaxDisplacementM <= c.Filter.MinDisplacementM {
		return fmt.Errorf("invalid displacement window (%.1f, %.1f)",
			c.Filter.MinDisplacementM, c.Filter.MaxDisplacementM)
	}
	if c.Classify.DominanceThreshold <= 0 || c.Classify.DominanceThreshold > 1 {
		return fmt.Errorf("dominance_threshold must be in (0, 1], got %v", c.Classify.DominanceThreshold)
	}
	if c.Detect.PrismRadiusM <= 0 {
		return fmt.Errorf("prism_radius_m must be positive, got %v", c.Detect.PrismRadiusM)
	}
	if c.Detect.PrismWindowS <= 0 {
		return fmt.Errorf("prism_window_s must be positive, got %v", c.Detect.PrismWindowS)
	}
	if c.Detect.PETThresholdS <= 0 {
		return fmt.Errorf("pet_threshold_s must be positive, got %v", c.Detect.PETThresholdS)
	}
	if c.Compare.GridCellSizeM <= 0 {
		return fmt.Errorf("grid_cell_size_m must be positive, got %v", c.Compare.GridCellSizeM)
	}
	if c.Compare.QuadratNX < 1 || c.Compare.QuadratNY < 1 {
		return fmt.Errorf("quadrat grid must be at least 1x1, got %dx%d",
			c.Compare.QuadratNX, c.Compare.QuadratNY)
	}
	if c.Compare.KDEBandwidthM <= 0 {
		return fmt.Errorf("kde_bandwidth_m must be positive, got %v", c.Compare.KDEBandwidthM)
	}
	if c.Compare.KDECellSizeM <= 0 {
		return fmt.Errorf("kde_cell_size_m must be positive, got %v", c.Compare.KDECellSizeM)
	}
	return nil
}
