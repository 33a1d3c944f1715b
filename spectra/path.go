package spectra

import (
	"github.com/quantalab/tauviz/errors"
)

// PatchZeros replaces zero samples in a per-band series with the nearest
// preceding nonzero sample, falling back to the following sample at the
// start of the path. Zero relaxation times come from states where the
// calculation left the value undefined; carrying the neighbor through keeps
// the plotted line continuous on a log axis.
//
// Returns the patched series (the input is not modified) and the number of
// samples patched. A series with no nonzero sample at all cannot be patched.
func PatchZeros(y []float64) ([]float64, int, error) {
	patched := make([]float64, len(y))
	copy(patched, y)

	nonzero := false
	for _, v := range patched {
		if v != 0 {
			nonzero = true
			break
		}
	}
	if !nonzero {
		return nil, 0, errors.Wrap(errors.ErrEmptySeries, "not enough points in path")
	}

	count := 0
	for i, v := range patched {
		if v != 0 {
			continue
		}
		if i > 0 && patched[i-1] != 0 {
			patched[i] = patched[i-1]
		} else {
			// Start of the path: take the next nonzero sample
			for j := i + 1; j < len(patched); j++ {
				if patched[j] != 0 {
					patched[i] = patched[j]
					break
				}
			}
		}
		count++
	}

	return patched, count, nil
}
