package render

import (
	"path/filepath"
	"strings"
)

// Plot-type suffixes appended to the input's base name.
const (
	SuffixTauPNG   = "tau.png"
	SuffixGammaPNG = "gamma.png"
	SuffixTauPDF   = "tau.pdf"
)

// OutputPath derives an output image path from an input document path by
// replacing the input's extension with a plot-type suffix:
//
//	OutputPath("runs/si.json", "tau.png") == "runs/si.tau.png"
func OutputPath(input, suffix string) string {
	base := strings.TrimSuffix(input, filepath.Ext(input))
	return base + "." + suffix
}
