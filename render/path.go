package render

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/quantalab/tauviz/errors"
	"github.com/quantalab/tauviz/spectra"
)

// PathTau renders the per-band relaxation times along a high-symmetry path,
// one colored line per band on a log Y axis with grey rules at the
// high-symmetry points. The output PDF is written next to the relaxation
// times input and its path returned.
func PathTau(tauInput string, calc *spectra.Calculation, path *spectra.PathDocument, opts Options) (string, error) {
	opts = opts.withDefaults()
	points := path.WavevectorIndices

	if len(calc.Tau) != len(points) {
		return "", errors.Newf(
			"relaxation times cover %d wavevectors but the path has %d; the two documents describe different paths",
			len(calc.Tau), len(points))
	}
	nbands := len(calc.Tau[0])

	p := plot.New()
	p.Y.Label.Text = fmt.Sprintf("τ_%s [%s]", calc.Document().ParticleType, calc.Document().RelaxationTimeUnit)
	p.Y.Label.TextStyle.Font.Size = vg.Points(12)
	p.Y.Scale = plot.LogScale{}
	p.Y.Tick.Marker = plot.LogTicks{Prec: -1}

	bandColors := WinterPalette(nbands)
	all := make([]float64, 0, len(points)*nbands)

	for ib := 0; ib < nbands; ib++ {
		y, _, err := spectra.PatchZeros(spectra.Column(calc.Tau, ib))
		if err != nil {
			return "", errors.Wrapf(err, "band #%d", ib+1)
		}
		all = append(all, y...)

		line, err := plotter.NewLine(makeXYs(points, y))
		if err != nil {
			return "", errors.Wrapf(err, "failed to create line for band #%d", ib+1)
		}
		line.LineStyle.Color = bandColors[ib]
		p.Add(line)
		p.Legend.Add(fmt.Sprintf("band #%d", ib+1), line)
	}

	ymin, ymax, err := LogLimits(all)
	if err != nil {
		return "", err
	}
	p.Y.Min = ymin
	p.Y.Max = ymax
	p.X.Min = points[0]
	p.X.Max = points[len(points)-1]

	decoratePathAxis(p, path, ymin, ymax)
	p.Legend.Top = true

	out := OutputPath(tauInput, SuffixTauPDF)
	if err := savePDF(p, opts.PathWidth, opts.PathHeight, out); err != nil {
		return "", err
	}
	return out, nil
}

// Bands renders the band structure along the path with a shaded envelope of
// ± magnification×linewidth around each band. For electrons the energies are
// shifted by the chemical potential and a dashed rule marks the Fermi level.
// The output PDF is written next to the band-structure input.
func Bands(bandInput string, calc *spectra.Calculation, path *spectra.PathDocument, opts Options) (string, error) {
	opts = opts.withDefaults()
	points := path.WavevectorIndices
	nbands := path.NumBands()

	if len(calc.Linewidths) != len(points) {
		return "", errors.Newf(
			"linewidths cover %d wavevectors but the path has %d; the two documents describe different paths",
			len(calc.Linewidths), len(points))
	}
	if nbands > len(calc.Linewidths[0]) {
		return "", errors.Newf(
			"path has %d bands but linewidths only cover %d",
			nbands, len(calc.Linewidths[0]))
	}

	mag := opts.magnificationFor(path.ParticleType)
	electron := path.ParticleType != spectra.ParticlePhonon

	shift := 0.0
	energyLabel := "Energy"
	if electron {
		shift = calc.ChemicalPotential
		energyLabel = "E-E_F"
	}

	p := plot.New()
	p.Y.Label.Text = fmt.Sprintf("%s ± %g·linewidth [%s]", energyLabel, mag, path.EnergyUnit)
	p.Y.Label.TextStyle.Font.Size = vg.Points(14)

	ymin := floats.Min(path.Energies[0]) - shift
	ymax := floats.Max(path.Energies[0]) - shift

	for ib := 0; ib < nbands; ib++ {
		energies := spectra.Column(path.Energies, ib)
		floats.AddConst(-shift, energies)
		widths := spectra.Column(calc.Linewidths, ib)

		upper := make([]float64, len(energies))
		lower := make([]float64, len(energies))
		for i := range energies {
			upper[i] = energies[i] + widths[i]*mag
			lower[i] = energies[i] - widths[i]*mag
		}
		ymin = math.Min(ymin, floats.Min(lower))
		ymax = math.Max(ymax, floats.Max(upper))

		envelope, err := plotter.NewPolygon(envelopeXYs(points, upper, lower))
		if err != nil {
			return "", errors.Wrapf(err, "failed to create envelope for band #%d", ib+1)
		}
		envelope.Color = shadeCyan
		envelope.LineStyle.Color = color.Transparent
		p.Add(envelope)

		line, err := plotter.NewLine(makeXYs(points, energies))
		if err != nil {
			return "", errors.Wrapf(err, "failed to create line for band #%d", ib+1)
		}
		line.LineStyle.Color = royalBlue
		p.Add(line)
	}

	p.X.Min = points[0]
	p.X.Max = points[len(points)-1]
	p.Y.Min = ymin
	p.Y.Max = ymax

	decoratePathAxis(p, path, ymin, ymax)

	// Reference rule at zero energy; dashed Fermi level for electrons
	zero, err := plotter.NewLine(plotter.XYs{
		{X: points[0], Y: 0},
		{X: points[len(points)-1], Y: 0},
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to create zero rule")
	}
	zero.LineStyle.Color = ruleGrey
	if electron {
		zero.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}
	}
	p.Add(zero)

	out := OutputPath(bandInput, SuffixTauPDF)
	if err := savePDF(p, opts.BandWidth, opts.BandHeight, out); err != nil {
		return "", err
	}
	return out, nil
}

// decoratePathAxis installs the high-symmetry tick labels and the grey
// vertical rules marking each high-symmetry point.
func decoratePathAxis(p *plot.Plot, path *spectra.PathDocument, ymin, ymax float64) {
	p.X.Tick.Marker = pathTicker{positions: path.HighSymIndices, labels: path.HighSymLabels}
	p.X.Tick.Label.Font.Size = vg.Points(12)
	p.Y.Tick.Label.Font.Size = vg.Points(12)

	for _, pos := range path.HighSymIndices {
		rule, err := plotter.NewLine(plotter.XYs{{X: pos, Y: ymin}, {X: pos, Y: ymax}})
		if err != nil {
			continue
		}
		rule.LineStyle.Color = ruleGrey
		p.Add(rule)
	}
}

// makeXYs pairs x and y series into plotter points.
func makeXYs(x, y []float64) plotter.XYs {
	pts := make(plotter.XYs, len(x))
	for i := range x {
		pts[i] = plotter.XY{X: x[i], Y: y[i]}
	}
	return pts
}

// envelopeXYs builds the closed polygon for a shaded band envelope: the
// upper edge forward, then the lower edge back.
func envelopeXYs(x, upper, lower []float64) plotter.XYs {
	pts := make(plotter.XYs, 0, 2*len(x))
	for i := range x {
		pts = append(pts, plotter.XY{X: x[i], Y: upper[i]})
	}
	for i := len(x) - 1; i >= 0; i-- {
		pts = append(pts, plotter.XY{X: x[i], Y: lower[i]})
	}
	return pts
}
