package render

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/quantalab/tauviz/errors"
	"github.com/quantalab/tauviz/spectra"
)

// Lifetimes renders the per-state scatter plots for one calculation:
// relaxation time versus energy and linewidth versus energy, both on a log
// Y axis. Output files are written next to the input document and their
// paths returned.
func Lifetimes(inputPath string, calc *spectra.Calculation, opts Options) ([]string, error) {
	opts = opts.withDefaults()
	doc := calc.Document()
	energies := calc.ShiftedEnergies()

	series := []struct {
		values []float64
		label  string
		suffix string
	}{
		{calc.FlatTau(), fmt.Sprintf("τ_%s [%s]", doc.ParticleType, doc.RelaxationTimeUnit), SuffixTauPNG},
		{calc.FlatLinewidths(), fmt.Sprintf("Γ_%s [%s]", doc.ParticleType, doc.LinewidthsUnit), SuffixGammaPNG},
	}

	outputs := make([]string, 0, len(series))
	for _, s := range series {
		p, err := scatterPlot(energies, s.values, doc.EnergyUnit, s.label, doc.IsPhonon())
		if err != nil {
			return nil, errors.Wrapf(err, "failed to build %s plot", s.suffix)
		}

		out := OutputPath(inputPath, s.suffix)
		if err := savePNG(p, opts.ScatterSize, opts.ScatterSize, opts.DPI, out); err != nil {
			return nil, err
		}
		outputs = append(outputs, out)
	}

	return outputs, nil
}

// scatterPlot builds one energy-vs-quantity scatter with log-scale Y.
// Nonpositive values cannot be drawn on a log axis and are dropped.
func scatterPlot(energies, values []float64, energyUnit, yLabel string, phonon bool) (*plot.Plot, error) {
	pts := make(plotter.XYs, 0, len(values))
	for i, v := range values {
		if v > 0 {
			pts = append(pts, plotter.XY{X: energies[i], Y: v})
		}
	}
	if len(pts) == 0 {
		return nil, errors.Wrap(errors.ErrEmptySeries, "no positive values to plot")
	}

	ymin, ymax, err := LogLimits(values)
	if err != nil {
		return nil, err
	}

	p := plot.New()
	p.X.Label.Text = fmt.Sprintf("Energy [%s]", energyUnit)
	p.Y.Label.Text = yLabel
	p.X.Label.TextStyle.Font.Size = vg.Points(12)
	p.Y.Label.TextStyle.Font.Size = vg.Points(12)

	p.Y.Scale = plot.LogScale{}
	p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	p.Y.Min = ymin
	p.Y.Max = ymax

	// Phonon energies are nonnegative; pin the axis at zero
	if phonon {
		p.X.Min = 0
	}

	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create scatter")
	}
	scatter.GlyphStyle.Shape = draw.CircleGlyph{}
	scatter.GlyphStyle.Radius = vg.Points(2.5)
	scatter.GlyphStyle.Color = royalBlue
	p.Add(scatter)

	return p, nil
}
