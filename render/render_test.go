package render_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tauviztest "github.com/quantalab/tauviz/internal/testing"
	"github.com/quantalab/tauviz/render"
	"github.com/quantalab/tauviz/spectra"
)

func loadCalc(t *testing.T, dir, particleType string) (string, *spectra.Calculation) {
	t.Helper()

	input := tauviztest.WriteLifetimesFixture(t, dir, particleType)
	doc, err := spectra.LoadLifetimes(input)
	require.NoError(t, err)
	calc, err := doc.Calculation(0)
	require.NoError(t, err)
	return input, calc
}

func assertFileWritten(t *testing.T, path string) {
	t.Helper()

	info, err := os.Stat(path)
	require.NoError(t, err, "expected output file %s", path)
	assert.Greater(t, info.Size(), int64(0), "output file %s is empty", path)
}

func TestLifetimes_WritesBothPlots(t *testing.T) {
	dir := t.TempDir()
	input, calc := loadCalc(t, dir, spectra.ParticleElectron)

	outputs, err := render.Lifetimes(input, calc, render.Options{})
	require.NoError(t, err)
	require.Len(t, outputs, 2)

	assert.Equal(t, filepath.Join(dir, "relaxation_times.tau.png"), outputs[0])
	assert.Equal(t, filepath.Join(dir, "relaxation_times.gamma.png"), outputs[1])
	for _, out := range outputs {
		assertFileWritten(t, out)
	}
}

func TestLifetimes_Phonon(t *testing.T) {
	dir := t.TempDir()
	input, calc := loadCalc(t, dir, spectra.ParticlePhonon)

	outputs, err := render.Lifetimes(input, calc, render.Options{DPI: 72})
	require.NoError(t, err)
	for _, out := range outputs {
		assertFileWritten(t, out)
	}
}

func TestPathTau_WritesPDF(t *testing.T) {
	dir := t.TempDir()
	input, calc := loadCalc(t, dir, spectra.ParticleElectron)
	pathDoc, err := spectra.LoadPath(tauviztest.WritePathFixture(t, dir))
	require.NoError(t, err)

	out, err := render.PathTau(input, calc, pathDoc, render.Options{})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "relaxation_times.tau.pdf"), out)
	assertFileWritten(t, out)
}

func TestPathTau_MismatchedPath(t *testing.T) {
	dir := t.TempDir()
	input, calc := loadCalc(t, dir, spectra.ParticleElectron)

	fixture := tauviztest.PathFixture()
	fixture["wavevectorIndices"] = []float64{0, 1, 2}
	fixture["energies"] = [][]float64{{0.1, 1.2}, {0.3, 1.4}, {0.5, 1.6}}
	fixture["highSymIndices"] = []float64{0, 1, 2}
	shortPath := filepath.Join(dir, "short_path.json")
	tauviztest.WriteJSON(t, shortPath, fixture)

	pathDoc, err := spectra.LoadPath(shortPath)
	require.NoError(t, err)

	_, err = render.PathTau(input, calc, pathDoc, render.Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "different paths")
}

func TestBands_WritesPDF(t *testing.T) {
	dir := t.TempDir()
	_, calc := loadCalc(t, dir, spectra.ParticleElectron)
	bandInput := tauviztest.WritePathFixture(t, dir)
	pathDoc, err := spectra.LoadPath(bandInput)
	require.NoError(t, err)

	out, err := render.Bands(bandInput, calc, pathDoc, render.Options{})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "path_bandstructure.tau.pdf"), out)
	assertFileWritten(t, out)
}
