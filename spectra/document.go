// Package spectra holds the JSON documents produced by transport
// calculations: per-state relaxation times, linewidths, and band energies,
// indexed by (calculation, wavevector, band). Documents are read once and
// never mutated.
package spectra

import (
	"strconv"

	"gonum.org/v1/gonum/floats"

	"github.com/quantalab/tauviz/errors"
)

// Particle types as written by the upstream calculation.
const (
	ParticleElectron = "electron"
	ParticlePhonon   = "phonon"
)

// Grid is a per-state quantity indexed (calculation, wavevector, band).
// Entries may be null in the source JSON (acoustic phonon modes at the
// Gamma point have no defined relaxation time); those read as zero.
type Grid [][][]*float64

// NumCalcs returns the number of calculations (outermost index) in the grid.
func (g Grid) NumCalcs() int {
	return len(g)
}

// At returns the (wavevector, band) plane for one calculation,
// with null entries replaced by zero.
func (g Grid) At(iCalc int) [][]float64 {
	plane := make([][]float64, len(g[iCalc]))
	for ik, row := range g[iCalc] {
		plane[ik] = make([]float64, len(row))
		for ib, v := range row {
			if v != nil {
				plane[ik][ib] = *v
			}
		}
	}
	return plane
}

// Flatten concatenates the rows of a (wavevector, band) plane into a single
// series, wavevector-major.
func Flatten(plane [][]float64) []float64 {
	n := 0
	for _, row := range plane {
		n += len(row)
	}
	flat := make([]float64, 0, n)
	for _, row := range plane {
		flat = append(flat, row...)
	}
	return flat
}

// Column extracts one band from a (wavevector, band) plane.
func Column(plane [][]float64, ib int) []float64 {
	col := make([]float64, len(plane))
	for ik, row := range plane {
		col[ik] = row[ib]
	}
	return col
}

// LifetimesDocument is the JSON output of a lifetimes calculation.
// Required keys are checked at load time; see LoadLifetimes.
type LifetimesDocument struct {
	RelaxationTimes       Grid      `json:"relaxationTimes"`
	Energies              Grid      `json:"energies"`
	Linewidths            Grid      `json:"linewidths"`
	ChemicalPotentials    []float64 `json:"chemicalPotentials"`
	Temperatures          []float64 `json:"temperatures"`
	ParticleType          string    `json:"particleType"`
	EnergyUnit            string    `json:"energyUnit"`
	RelaxationTimeUnit    string    `json:"relaxationTimeUnit"`
	LinewidthsUnit        string    `json:"linewidthsUnit"`
	TemperatureUnit       string    `json:"temperatureUnit"`
	ChemicalPotentialUnit string    `json:"chemicalPotentialUnit"`
}

// NumCalculations returns how many (temperature, chemical potential) pairs
// the document holds.
func (d *LifetimesDocument) NumCalculations() int {
	return d.RelaxationTimes.NumCalcs()
}

// IsPhonon reports whether the document describes phonon states.
func (d *LifetimesDocument) IsPhonon() bool {
	return d.ParticleType == ParticlePhonon
}

// PathDocument is the JSON output of a band-structure calculation along a
// high-symmetry path. Energies are indexed (wavevector, band).
type PathDocument struct {
	HighSymLabels     []string    `json:"highSymLabels"`
	HighSymIndices    []float64   `json:"highSymIndices"`
	WavevectorIndices []float64   `json:"wavevectorIndices"`
	Energies          [][]float64 `json:"energies"`
	ParticleType      string      `json:"particleType"`
	EnergyUnit        string      `json:"energyUnit"`
}

// NumBands returns the number of bands along the path.
func (d *PathDocument) NumBands() int {
	if len(d.Energies) == 0 {
		return 0
	}
	return len(d.Energies[0])
}

// Calculation is the view of a lifetimes document at one calculation index:
// the (wavevector, band) planes plus that calculation's temperature and
// chemical potential.
type Calculation struct {
	Index             int
	Temperature       float64
	ChemicalPotential float64
	Tau               [][]float64
	Linewidths        [][]float64
	Energies          [][]float64

	doc *LifetimesDocument
}

// Calculation selects one calculation by index. The index must be within
// [0, NumCalculations).
func (d *LifetimesDocument) Calculation(index int) (*Calculation, error) {
	n := d.NumCalculations()
	if index < 0 || index >= n {
		return nil, errors.NewInvalidArgumentError(
			"calc index %d out of range, document has %d calculations (valid: 0-%d)",
			index, n, n-1)
	}

	return &Calculation{
		Index:             index,
		Temperature:       d.Temperatures[index],
		ChemicalPotential: d.ChemicalPotentials[index],
		Tau:               d.RelaxationTimes.At(index),
		Linewidths:        d.Linewidths.At(index),
		Energies:          d.Energies.At(index),
		doc:               d,
	}, nil
}

// Document returns the document this calculation was selected from.
func (c *Calculation) Document() *LifetimesDocument {
	return c.doc
}

// FlatTau returns the relaxation times as a single flattened series.
func (c *Calculation) FlatTau() []float64 {
	return Flatten(c.Tau)
}

// FlatLinewidths returns the linewidths as a single flattened series.
func (c *Calculation) FlatLinewidths() []float64 {
	return Flatten(c.Linewidths)
}

// ShiftedEnergies returns the flattened energies shifted by the chemical
// potential, so electron plots are centered on the Fermi level.
func (c *Calculation) ShiftedEnergies() []float64 {
	flat := Flatten(c.Energies)
	floats.AddConst(-c.ChemicalPotential, flat)
	return flat
}

// ParseCalcIndex converts a positional CALC argument to an integer index.
// A non-integer value is an invalid-argument error, not a panic.
func ParseCalcIndex(arg string) (int, error) {
	index, err := strconv.Atoi(arg)
	if err != nil {
		return 0, errors.NewInvalidArgumentError("calc index must be an integer, got %q", arg)
	}
	return index, nil
}
