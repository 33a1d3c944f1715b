package render

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"

	"github.com/quantalab/tauviz/errors"
)

// LogLimits computes log-scale axis limits for a series: the minimum and
// maximum of the positive values, rounded down and up to the nearest power
// of ten. Nonpositive values cannot appear on a log axis and are ignored.
func LogLimits(values []float64) (float64, float64, error) {
	positive := make([]float64, 0, len(values))
	for _, v := range values {
		if v > 0 {
			positive = append(positive, v)
		}
	}
	if len(positive) == 0 {
		return 0, 0, errors.Wrap(errors.ErrEmptySeries, "no positive values for log axis")
	}

	lo := math.Pow(10, math.Floor(math.Log10(floats.Min(positive))))
	hi := math.Pow(10, math.Ceil(math.Log10(floats.Max(positive))))
	if lo == hi {
		// Every value sits exactly on one power of ten; open up a decade
		hi = lo * 10
	}
	return lo, hi, nil
}

// pathTicker places X ticks at the high-symmetry positions only, labeled
// with the point names (Gamma, X, L, ...).
type pathTicker struct {
	positions []float64
	labels    []string
}

var _ plot.Ticker = pathTicker{}

func (t pathTicker) Ticks(min, max float64) []plot.Tick {
	ticks := make([]plot.Tick, 0, len(t.positions))
	for i, pos := range t.positions {
		if pos < min || pos > max {
			continue
		}
		ticks = append(ticks, plot.Tick{Value: pos, Label: t.labels[i]})
	}
	return ticks
}
