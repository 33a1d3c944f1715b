package config

import (
	"github.com/quantalab/tauviz/errors"
)

// DPI bounds for raster output. Below 36 the figures are unreadable;
// above 1200 the files get enormous with no visible gain.
const (
	MinDPI = 36
	MaxDPI = 1200
)

// Validate checks a configuration for values that would produce broken
// figures, so the failure happens at startup rather than at save time.
func Validate(cfg *Config) error {
	if cfg.Plot.DPI < MinDPI || cfg.Plot.DPI > MaxDPI {
		return errors.Newf("plot.dpi %d out of range (%d-%d)", cfg.Plot.DPI, MinDPI, MaxDPI)
	}

	sizes := map[string]float64{
		"plot.scatter_size": cfg.Plot.ScatterSize,
		"plot.path_width":   cfg.Plot.PathWidth,
		"plot.path_height":  cfg.Plot.PathHeight,
		"plot.band_width":   cfg.Plot.BandWidth,
		"plot.band_height":  cfg.Plot.BandHeight,
	}
	for key, size := range sizes {
		if size <= 0 {
			return errors.Newf("%s must be positive, got %g", key, size)
		}
	}

	if cfg.Plot.Magnification < 0 {
		return errors.Newf("plot.magnification must be >= 0, got %g", cfg.Plot.Magnification)
	}

	return nil
}
