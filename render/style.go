// Package render builds the diagnostic charts: lifetime scatter plots and
// high-symmetry path plots, written as PNG or PDF next to the input.
package render

import (
	"image/color"

	"github.com/quantalab/tauviz/spectra"
)

// Plot colors. RoyalBlue for primary series, a translucent cyan for the
// linewidth envelope, grey for reference rules.
var (
	royalBlue = color.NRGBA{R: 0x41, G: 0x69, B: 0xE1, A: 0xFF}
	shadeCyan = color.NRGBA{R: 0x62, G: 0xE4, B: 0xE5, A: 0x80}
	ruleGrey  = color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xFF}
)

// WinterPalette returns n colors along a blue-to-green gradient, used to
// distinguish bands on path plots.
func WinterPalette(n int) []color.Color {
	colors := make([]color.Color, n)
	for i := range colors {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		colors[i] = color.NRGBA{
			R: 0,
			G: uint8(255 * t),
			B: uint8(255 * (1 - t/2)),
			A: 0xFF,
		}
	}
	return colors
}

// Magnification returns the factor applied to linewidths when drawing the
// envelope around bands. Phonon linewidths are far smaller than the band
// energies, so they get a larger factor to stay visible.
func Magnification(particleType string) float64 {
	if particleType == spectra.ParticlePhonon {
		return 10
	}
	return 5
}

// Options controls figure geometry and raster resolution. Zero values fall
// back to the defaults; see DefaultOptions.
type Options struct {
	DPI           int     // raster resolution for PNG output
	ScatterSize   float64 // scatter figure edge, inches (square)
	PathWidth     float64 // path tau figure width, inches
	PathHeight    float64 // path tau figure height, inches
	BandWidth     float64 // band structure figure width, inches
	BandHeight    float64 // band structure figure height, inches
	Magnification float64 // linewidth envelope factor; 0 derives from particle type
}

// DefaultOptions returns the standard figure geometry.
func DefaultOptions() Options {
	return Options{
		DPI:         150,
		ScatterSize: 5,
		PathWidth:   6,
		PathHeight:  4.2,
		BandWidth:   5.5,
		BandHeight:  5,
	}
}

// withDefaults fills zero fields from DefaultOptions.
func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.DPI <= 0 {
		o.DPI = def.DPI
	}
	if o.ScatterSize <= 0 {
		o.ScatterSize = def.ScatterSize
	}
	if o.PathWidth <= 0 {
		o.PathWidth = def.PathWidth
	}
	if o.PathHeight <= 0 {
		o.PathHeight = def.PathHeight
	}
	if o.BandWidth <= 0 {
		o.BandWidth = def.BandWidth
	}
	if o.BandHeight <= 0 {
		o.BandHeight = def.BandHeight
	}
	return o
}

// magnificationFor resolves the envelope factor for a particle type,
// honoring an explicit override.
func (o Options) magnificationFor(particleType string) float64 {
	if o.Magnification > 0 {
		return o.Magnification
	}
	return Magnification(particleType)
}
