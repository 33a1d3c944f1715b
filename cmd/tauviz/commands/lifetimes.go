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
	lifetimesCalc  int
	lifetimesWatch bool
)

// LifetimesCmd represents the lifetimes command
var LifetimesCmd = &cobra.Command{
	Use:   "lifetimes FILE [CALC]",
	Short: "Plot relaxation times and linewidths versus energy",
	Long: `lifetimes — Scatter plots of per-state relaxation times and linewidths.

Loads a lifetimes JSON document, selects one calculation (a temperature and
chemical potential pair), and writes two plots next to the input:

  <FILE base>.tau.png    relaxation time versus energy
  <FILE base>.gamma.png  linewidth versus energy

Energies are shifted by the calculation's chemical potential. Both plots use
a log Y axis with limits rounded to the enclosing powers of ten.

Examples:
  tauviz lifetimes epa_relaxation_times.json       # first calculation
  tauviz lifetimes epa_relaxation_times.json 2     # third calculation
  tauviz lifetimes relaxation_times.json --watch   # re-render on change`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runLifetimes,
}

func init() {
	LifetimesCmd.Flags().IntVarP(&lifetimesCalc, "calc", "c", 0, "Calculation index to plot")
	LifetimesCmd.Flags().BoolVarP(&lifetimesWatch, "watch", "w", false, "Re-render when the input changes")
}

func runLifetimes(cmd *cobra.Command, args []string) error {
	input := args[0]
	calcIndex, err := calcIndexFromArgs(args, 1, lifetimesCalc)
	if err != nil {
		return err
	}

	opts, err := renderOptions()
	if err != nil {
		return err
	}

	renderOnce := func() error {
		doc, err := spectra.LoadLifetimes(input)
		if err != nil {
			return err
		}
		calc, err := doc.Calculation(calcIndex)
		if err != nil {
			return err
		}

		display.CalculationInfo(calc)

		outputs, err := render.Lifetimes(input, calc, opts)
		if err != nil {
			return errors.Wrap(err, "failed to render lifetime plots")
		}

		logger.Infow("[calc] Rendered lifetime plots",
			"input", input,
			"temperature", calc.Temperature)
		display.PlotReport(outputs...)
		return nil
	}

	if err := renderOnce(); err != nil {
		return err
	}

	if lifetimesWatch {
		return watchAndBlock(renderOnce, input)
	}
	return nil
}
