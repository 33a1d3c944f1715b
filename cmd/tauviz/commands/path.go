package commands

import (
	"github.com/spf13/cobra"

	"github.com/quantalab/tauviz/display"
	"github.com/quantalab/tauviz/errors"
	"github.com/quantalab/tauviz/logger"
	"github.com/quantalab/tauviz/render"
	"github.com/quantalab/tauviz/spectra"
)

var (
	pathCalc  int
	pathWatch bool
)

// PathCmd represents the path command
var PathCmd = &cobra.Command{
	Use:   "path TAUFILE BANDFILE [CALC]",
	Short: "Plot relaxation times and bands along a high-symmetry path",
	Long: `path — Relaxation times and band structure along a high-symmetry path.

Loads a lifetimes JSON document and a band-structure path document computed
on the same wavevector path, selects one calculation, and writes two PDFs:

  <TAUFILE base>.tau.pdf   per-band relaxation times along the path
  <BANDFILE base>.tau.pdf  bands with a shaded ± linewidth envelope

High-symmetry points are marked with grey rules and labeled ticks. For
electrons the bands are shifted by the chemical potential and a dashed rule
marks the Fermi level.

Examples:
  tauviz path relaxation_times.json path_bands.json
  tauviz path relaxation_times.json path_bands.json 1
  tauviz path relaxation_times.json path_bands.json --watch`,
	Args: cobra.RangeArgs(2, 3),
	RunE: runPath,
}

func init() {
	PathCmd.Flags().IntVarP(&pathCalc, "calc", "c", 0, "Calculation index to plot")
	PathCmd.Flags().BoolVarP(&pathWatch, "watch", "w", false, "Re-render when an input changes")
}

func runPath(cmd *cobra.Command, args []string) error {
	tauInput, bandInput := args[0], args[1]
	calcIndex, err := calcIndexFromArgs(args, 2, pathCalc)
	if err != nil {
		return err
	}

	opts, err := renderOptions()
	if err != nil {
		return err
	}

	renderOnce := func() error {
		doc, err := spectra.LoadLifetimes(tauInput)
		if err != nil {
			return err
		}
		calc, err := doc.Calculation(calcIndex)
		if err != nil {
			return err
		}
		pathDoc, err := spectra.LoadPath(bandInput)
		if err != nil {
			return err
		}

		display.CalculationInfo(calc)

		tauOut, err := render.PathTau(tauInput, calc, pathDoc, opts)
		if err != nil {
			return errors.Wrap(err, "failed to render path relaxation times")
		}
		bandOut, err := render.Bands(bandInput, calc, pathDoc, opts)
		if err != nil {
			return errors.Wrap(err, "failed to render band structure")
		}

		logger.Infow("[calc] Rendered path plots",
			"input", tauInput,
			"bands", pathDoc.NumBands(),
			"points", len(pathDoc.WavevectorIndices))
		display.PlotReport(tauOut, bandOut)
		return nil
	}

	if err := renderOnce(); err != nil {
		return err
	}

	if pathWatch {
		return watchAndBlock(renderOnce, tauInput, bandInput)
	}
	return nil
}
