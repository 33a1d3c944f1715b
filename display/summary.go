package display

import (
	"fmt"
	"strconv"

	"github.com/pterm/pterm"

	"github.com/quantalab/tauviz/spectra"
)

// DocumentSummary prints a human-readable overview of a lifetimes document:
// particle type, units, and one row per calculation.
func DocumentSummary(path string, doc *spectra.LifetimesDocument) error {
	pterm.DefaultHeader.Printf("Lifetimes document: %s", path)
	pterm.Println()

	pterm.Info.Printf("Particle type: %s", doc.ParticleType)
	pterm.Info.Printf("Calculations:  %d", doc.NumCalculations())
	pterm.Info.Printf("Units: energy [%s], relaxation time [%s], linewidth [%s]",
		doc.EnergyUnit, doc.RelaxationTimeUnit, doc.LinewidthsUnit)
	pterm.Println()

	rows := pterm.TableData{
		{"calc", fmt.Sprintf("temperature [%s]", doc.TemperatureUnit),
			fmt.Sprintf("chemical potential [%s]", doc.ChemicalPotentialUnit)},
	}
	for i := 0; i < doc.NumCalculations(); i++ {
		rows = append(rows, []string{
			strconv.Itoa(i),
			strconv.FormatFloat(doc.Temperatures[i], 'g', -1, 64),
			strconv.FormatFloat(doc.ChemicalPotentials[i], 'g', -1, 64),
		})
	}

	return pterm.DefaultTable.WithHasHeader().WithData(rows).Render()
}

// CalculationInfo prints the temperature and chemical potential of the
// selected calculation before rendering, matching what users expect to see
// to confirm they picked the right index.
func CalculationInfo(calc *spectra.Calculation) {
	doc := calc.Document()
	pterm.Info.Printf("Calculation temperature: %g %s, chemical potential: %g %s",
		calc.Temperature, doc.TemperatureUnit,
		calc.ChemicalPotential, doc.ChemicalPotentialUnit)
}

// PlotReport prints one success line per written output file.
func PlotReport(outputs ...string) {
	for _, out := range outputs {
		pterm.Success.Printf("Wrote %s", out)
	}
}
