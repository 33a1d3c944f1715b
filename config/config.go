// Package config loads tauviz configuration with viper.
//
// Precedence (lowest to highest): built-in defaults, /etc/tauviz/config.toml,
// ~/.tauviz/config.toml, a tauviz.toml found by walking up from the working
// directory, then TAUVIZ_* environment variables.
package config

// Config is the tauviz configuration tree.
type Config struct {
	Plot PlotConfig `mapstructure:"plot" toml:"plot"`
	Log  LogConfig  `mapstructure:"log" toml:"log"`
}

// PlotConfig controls figure geometry and raster resolution.
type PlotConfig struct {
	DPI           int     `mapstructure:"dpi" toml:"dpi"`                     // raster resolution for PNG output
	ScatterSize   float64 `mapstructure:"scatter_size" toml:"scatter_size"`   // scatter figure edge, inches
	PathWidth     float64 `mapstructure:"path_width" toml:"path_width"`       // path tau figure width, inches
	PathHeight    float64 `mapstructure:"path_height" toml:"path_height"`     // path tau figure height, inches
	BandWidth     float64 `mapstructure:"band_width" toml:"band_width"`       // band structure width, inches
	BandHeight    float64 `mapstructure:"band_height" toml:"band_height"`     // band structure height, inches
	Magnification float64 `mapstructure:"magnification" toml:"magnification"` // linewidth envelope factor; 0 derives from particle type
}

// LogConfig controls log output format.
type LogConfig struct {
	JSON bool `mapstructure:"json" toml:"json"`
}
