package config

import (
	"github.com/spf13/viper"
)

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	// Figure geometry matches the figures the upstream tooling produces
	v.SetDefault("plot.dpi", 150)
	v.SetDefault("plot.scatter_size", 5.0)
	v.SetDefault("plot.path_width", 6.0)
	v.SetDefault("plot.path_height", 4.2)
	v.SetDefault("plot.band_width", 5.5)
	v.SetDefault("plot.band_height", 5.0)
	v.SetDefault("plot.magnification", 0.0) // 0 = derive from particle type

	v.SetDefault("log.json", false)
}

// Default returns the built-in configuration with no files or environment
// applied.
func Default() *Config {
	v := viper.New()
	SetDefaults(v)

	var cfg Config
	// Unmarshal of pure defaults cannot fail
	_ = v.Unmarshal(&cfg)
	return &cfg
}
