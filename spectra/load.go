package spectra

import (
	"encoding/json"
	"os"

	"github.com/quantalab/tauviz/errors"
)

// Keys that must be present in a lifetimes document. Their absence almost
// always means a different kind of output file was passed by mistake.
var lifetimesRequiredKeys = []string{
	"relaxationTimes",
	"energies",
	"linewidths",
	"chemicalPotentials",
	"temperatures",
	"particleType",
}

// Keys that must be present in a band-structure path document.
var pathRequiredKeys = []string{
	"highSymLabels",
	"highSymIndices",
	"wavevectorIndices",
	"energies",
}

// LoadLifetimes reads and validates a lifetimes document from disk.
func LoadLifetimes(path string) (*LifetimesDocument, error) {
	raw, err := readDocument(path, lifetimesRequiredKeys)
	if err != nil {
		return nil, err
	}

	var doc LifetimesDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, errors.Wrapf(err, "failed to decode lifetimes document %s", path)
	}

	n := doc.NumCalculations()
	if len(doc.Temperatures) != n || len(doc.ChemicalPotentials) != n {
		return nil, errors.Newf(
			"inconsistent document %s: %d calculations but %d temperatures and %d chemical potentials",
			path, n, len(doc.Temperatures), len(doc.ChemicalPotentials))
	}
	if err := validateGrids(path, &doc); err != nil {
		return nil, err
	}

	return &doc, nil
}

// validateGrids checks that the three per-state grids describe the same set
// of states: same calculation count, same wavevector count per calculation,
// and a uniform band count per wavevector. Everything downstream indexes the
// grids in lockstep, so a ragged document must be rejected here.
func validateGrids(path string, doc *LifetimesDocument) error {
	n := doc.RelaxationTimes.NumCalcs()
	if doc.Energies.NumCalcs() != n || doc.Linewidths.NumCalcs() != n {
		return errors.Newf(
			"inconsistent document %s: %d calculations of relaxation times but %d of energies and %d of linewidths",
			path, n, doc.Energies.NumCalcs(), doc.Linewidths.NumCalcs())
	}

	for iCalc := 0; iCalc < n; iCalc++ {
		nk := len(doc.RelaxationTimes[iCalc])
		if nk == 0 {
			return errors.Newf(
				"inconsistent document %s: calculation %d has no wavevectors", path, iCalc)
		}
		if len(doc.Energies[iCalc]) != nk || len(doc.Linewidths[iCalc]) != nk {
			return errors.Newf(
				"inconsistent document %s: calculation %d has %d wavevectors of relaxation times but %d of energies and %d of linewidths",
				path, iCalc, nk, len(doc.Energies[iCalc]), len(doc.Linewidths[iCalc]))
		}

		nb := len(doc.RelaxationTimes[iCalc][0])
		for ik := 0; ik < nk; ik++ {
			if len(doc.RelaxationTimes[iCalc][ik]) != nb ||
				len(doc.Energies[iCalc][ik]) != nb ||
				len(doc.Linewidths[iCalc][ik]) != nb {
				return errors.Newf(
					"inconsistent document %s: calculation %d wavevector %d does not have %d bands in every grid",
					path, iCalc, ik, nb)
			}
		}
	}

	return nil
}

// LoadPath reads and validates a band-structure path document from disk.
func LoadPath(path string) (*PathDocument, error) {
	raw, err := readDocument(path, pathRequiredKeys)
	if err != nil {
		return nil, err
	}

	var doc PathDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, errors.Wrapf(err, "failed to decode path document %s", path)
	}

	if len(doc.WavevectorIndices) == 0 {
		return nil, errors.Newf("inconsistent document %s: path has no wavevectors", path)
	}
	if len(doc.WavevectorIndices) != len(doc.Energies) {
		return nil, errors.Newf(
			"inconsistent document %s: %d wavevectors but %d energy rows",
			path, len(doc.WavevectorIndices), len(doc.Energies))
	}
	for ik, row := range doc.Energies {
		if len(row) != doc.NumBands() {
			return nil, errors.Newf(
				"inconsistent document %s: energy row %d has %d bands, expected %d",
				path, ik, len(row), doc.NumBands())
		}
	}
	if len(doc.HighSymLabels) != len(doc.HighSymIndices) {
		return nil, errors.Newf(
			"inconsistent document %s: %d high-symmetry labels but %d indices",
			path, len(doc.HighSymLabels), len(doc.HighSymIndices))
	}

	return &doc, nil
}

// readDocument loads a JSON object and checks that the required keys exist.
// Key presence is checked on the raw object so that a key explicitly set to
// an empty array is distinguishable from a key that is absent.
func readDocument(path string, requiredKeys []string) ([]byte, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}

	var keys map[string]json.RawMessage
	if err := json.Unmarshal(raw, &keys); err != nil {
		return nil, errors.Wrapf(err, "%s is not a JSON object", path)
	}

	for _, key := range requiredKeys {
		if _, ok := keys[key]; !ok {
			return nil, errors.Wrapf(errors.NewMissingKeyError(key), "invalid document %s", path)
		}
	}

	return raw, nil
}
