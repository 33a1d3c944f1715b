package commands

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantalab/tauviz/errors"
	tauviztest "github.com/quantalab/tauviz/internal/testing"
	"github.com/quantalab/tauviz/spectra"
)

func TestLifetimesCommand_Integration(t *testing.T) {
	dir := t.TempDir()
	input := tauviztest.WriteLifetimesFixture(t, dir, spectra.ParticleElectron)

	err := runLifetimes(LifetimesCmd, []string{input})
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(dir, "relaxation_times.tau.png"))
	assert.FileExists(t, filepath.Join(dir, "relaxation_times.gamma.png"))
}

func TestLifetimesCommand_PositionalCalcIndex(t *testing.T) {
	dir := t.TempDir()
	input := tauviztest.WriteLifetimesFixture(t, dir, spectra.ParticleElectron)

	err := runLifetimes(LifetimesCmd, []string{input, "1"})
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "relaxation_times.tau.png"))
}

func TestLifetimesCommand_NonIntegerCalcIndex(t *testing.T) {
	dir := t.TempDir()
	input := tauviztest.WriteLifetimesFixture(t, dir, spectra.ParticleElectron)

	err := runLifetimes(LifetimesCmd, []string{input, "two"})
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgumentError(err))
}

func TestLifetimesCommand_CalcIndexOutOfRange(t *testing.T) {
	dir := t.TempDir()
	input := tauviztest.WriteLifetimesFixture(t, dir, spectra.ParticleElectron)

	err := runLifetimes(LifetimesCmd, []string{input, "5"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "out of range")
}

func TestLifetimesCommand_WrongFile(t *testing.T) {
	dir := t.TempDir()
	fixture := tauviztest.LifetimesFixture(spectra.ParticleElectron)
	delete(fixture, "relaxationTimes")
	input := filepath.Join(dir, "dos.json")
	tauviztest.WriteJSON(t, input, fixture)

	err := runLifetimes(LifetimesCmd, []string{input})
	require.Error(t, err)
	assert.True(t, errors.IsMissingKeyError(err))
	assert.Contains(t, errors.FlattenHints(err), "correct input JSON file")
}

func TestPathCommand_Integration(t *testing.T) {
	dir := t.TempDir()
	tauInput := tauviztest.WriteLifetimesFixture(t, dir, spectra.ParticleElectron)
	bandInput := tauviztest.WritePathFixture(t, dir)

	err := runPath(PathCmd, []string{tauInput, bandInput})
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(dir, "relaxation_times.tau.pdf"))
	assert.FileExists(t, filepath.Join(dir, "path_bandstructure.tau.pdf"))
}

func TestPathCommand_MissingBandFile(t *testing.T) {
	dir := t.TempDir()
	tauInput := tauviztest.WriteLifetimesFixture(t, dir, spectra.ParticleElectron)

	err := runPath(PathCmd, []string{tauInput, filepath.Join(dir, "missing.json")})
	assert.Error(t, err)
}

func TestInspectCommand_Integration(t *testing.T) {
	dir := t.TempDir()
	input := tauviztest.WriteLifetimesFixture(t, dir, spectra.ParticlePhonon)

	err := runInspect(InspectCmd, []string{input})
	assert.NoError(t, err)
}

func TestCalcIndexFromArgs(t *testing.T) {
	index, err := calcIndexFromArgs([]string{"file.json"}, 1, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, index, "flag value used when positional absent")

	index, err = calcIndexFromArgs([]string{"file.json", "7"}, 1, 3)
	require.NoError(t, err)
	assert.Equal(t, 7, index, "positional wins over flag")

	_, err = calcIndexFromArgs([]string{"file.json", "x"}, 1, 0)
	assert.Error(t, err)
}
