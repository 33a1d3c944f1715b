// Package testing provides shared fixture helpers for tauviz tests.
package testing

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

// WriteJSON marshals v and writes it to path.
func WriteJSON(t *testing.T, path string, v interface{}) {
	t.Helper()

	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("Failed to marshal fixture: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("Failed to write fixture %s: %v", path, err)
	}
}

// LifetimesFixture returns a minimal valid lifetimes document as a map:
// two calculations, six wavevectors, two bands, with one null relaxation
// time (an undefined state at the zone center). The wavevector count matches
// PathFixture so the two can be combined in path-plot tests.
func LifetimesFixture(particleType string) map[string]interface{} {
	return map[string]interface{}{
		"relaxationTimes": [][][]interface{}{
			{
				{nil, 12.5}, {8.1, 6.6}, {4.2, 3.9},
				{3.5, 3.1}, {2.9, 2.4}, {2.2, 1.8},
			},
			{
				{nil, 10.0}, {7.0, 5.5}, {3.3, 2.8},
				{2.6, 2.2}, {2.0, 1.7}, {1.5, 1.2},
			},
		},
		"linewidths": [][][]interface{}{
			{
				{0.02, 0.03}, {0.04, 0.05}, {0.06, 0.07},
				{0.08, 0.09}, {0.10, 0.11}, {0.12, 0.13},
			},
			{
				{0.03, 0.04}, {0.05, 0.06}, {0.07, 0.08},
				{0.09, 0.10}, {0.11, 0.12}, {0.13, 0.14},
			},
		},
		"energies": [][][]interface{}{
			{
				{0.1, 1.2}, {0.3, 1.4}, {0.5, 1.6},
				{0.7, 1.8}, {0.5, 1.6}, {0.2, 1.3},
			},
			{
				{0.1, 1.2}, {0.3, 1.4}, {0.5, 1.6},
				{0.7, 1.8}, {0.5, 1.6}, {0.2, 1.3},
			},
		},
		"chemicalPotentials":    []float64{0.6, 0.65},
		"temperatures":          []float64{300.0, 600.0},
		"particleType":          particleType,
		"energyUnit":            "eV",
		"relaxationTimeUnit":    "fs",
		"linewidthsUnit":        "eV",
		"temperatureUnit":       "K",
		"chemicalPotentialUnit": "eV",
	}
}

// PathFixture returns a minimal valid band-structure path document:
// six wavevectors, two bands, high-symmetry points at both ends and the
// middle of the path.
func PathFixture() map[string]interface{} {
	return map[string]interface{}{
		"highSymLabels":     []string{"Gamma", "X", "L"},
		"highSymIndices":    []float64{0, 3, 5},
		"wavevectorIndices": []float64{0, 1, 2, 3, 4, 5},
		"energies": [][]float64{
			{0.1, 1.2}, {0.3, 1.4}, {0.5, 1.6},
			{0.7, 1.8}, {0.5, 1.6}, {0.2, 1.3},
		},
		"particleType": "electron",
		"energyUnit":   "eV",
	}
}

// WriteLifetimesFixture writes a lifetimes fixture into dir and returns its path.
func WriteLifetimesFixture(t *testing.T, dir, particleType string) string {
	t.Helper()

	path := filepath.Join(dir, "relaxation_times.json")
	WriteJSON(t, path, LifetimesFixture(particleType))
	return path
}

// WritePathFixture writes a band-structure path fixture into dir and returns its path.
func WritePathFixture(t *testing.T, dir string) string {
	t.Helper()

	path := filepath.Join(dir, "path_bandstructure.json")
	WriteJSON(t, path, PathFixture())
	return path
}
