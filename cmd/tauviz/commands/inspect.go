package commands

import (
	"github.com/spf13/cobra"

	"github.com/quantalab/tauviz/display"
	"github.com/quantalab/tauviz/spectra"
)

var inspectJSON bool

// InspectCmd represents the inspect command
var InspectCmd = &cobra.Command{
	Use:   "inspect FILE",
	Short: "Summarize a lifetimes document",
	Long: `inspect — Summarize a lifetimes JSON document.

Shows the particle type, units, and the available calculations with their
temperatures and chemical potentials, so the right CALC index can be picked
for the plot commands.

Examples:
  tauviz inspect relaxation_times.json
  tauviz inspect relaxation_times.json --json`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	InspectCmd.Flags().BoolVarP(&inspectJSON, "json", "j", false, "Output summary as JSON")
}

// documentSummary is the machine-readable form of the inspect output.
type documentSummary struct {
	Path               string    `json:"path"`
	ParticleType       string    `json:"particle_type"`
	Calculations       int       `json:"calculations"`
	Temperatures       []float64 `json:"temperatures"`
	ChemicalPotentials []float64 `json:"chemical_potentials"`
	EnergyUnit         string    `json:"energy_unit"`
	RelaxationTimeUnit string    `json:"relaxation_time_unit"`
	LinewidthsUnit     string    `json:"linewidths_unit"`
}

func runInspect(cmd *cobra.Command, args []string) error {
	input := args[0]

	doc, err := spectra.LoadLifetimes(input)
	if err != nil {
		return err
	}

	if inspectJSON {
		return display.OutputJSON(documentSummary{
			Path:               input,
			ParticleType:       doc.ParticleType,
			Calculations:       doc.NumCalculations(),
			Temperatures:       doc.Temperatures,
			ChemicalPotentials: doc.ChemicalPotentials,
			EnergyUnit:         doc.EnergyUnit,
			RelaxationTimeUnit: doc.RelaxationTimeUnit,
			LinewidthsUnit:     doc.LinewidthsUnit,
		})
	}

	return display.DocumentSummary(input, doc)
}
