package spectra_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantalab/tauviz/errors"
	tauviztest "github.com/quantalab/tauviz/internal/testing"
	"github.com/quantalab/tauviz/spectra"
)

func loadFixture(t *testing.T, particleType string) *spectra.LifetimesDocument {
	t.Helper()
	path := tauviztest.WriteLifetimesFixture(t, t.TempDir(), particleType)
	doc, err := spectra.LoadLifetimes(path)
	require.NoError(t, err)
	return doc
}

func TestCalculation(t *testing.T) {
	doc := loadFixture(t, spectra.ParticleElectron)

	calc, err := doc.Calculation(1)
	require.NoError(t, err)

	assert.Equal(t, 1, calc.Index)
	assert.Equal(t, 600.0, calc.Temperature)
	assert.Equal(t, 0.65, calc.ChemicalPotential)
	assert.Same(t, doc, calc.Document())
	assert.Len(t, calc.Tau, 6)
}

func TestCalculation_IndexOutOfRange(t *testing.T) {
	doc := loadFixture(t, spectra.ParticleElectron)

	for _, index := range []int{-1, 2, 100} {
		_, err := doc.Calculation(index)
		require.Error(t, err, "index %d", index)
		assert.True(t, errors.IsInvalidArgumentError(err))
		assert.Contains(t, err.Error(), "out of range")
	}
}

func TestCalculation_Flattening(t *testing.T) {
	doc := loadFixture(t, spectra.ParticleElectron)

	calc, err := doc.Calculation(0)
	require.NoError(t, err)

	tau := calc.FlatTau()
	require.Len(t, tau, 12)
	// Wavevector-major order: (ik=0, ib=0), (ik=0, ib=1), (ik=1, ib=0), ...
	assert.Equal(t, 0.0, tau[0], "null entry flattens to zero")
	assert.Equal(t, 12.5, tau[1])
	assert.Equal(t, 8.1, tau[2])

	assert.Len(t, calc.FlatLinewidths(), 12)
}

func TestCalculation_ShiftedEnergies(t *testing.T) {
	doc := loadFixture(t, spectra.ParticleElectron)

	calc, err := doc.Calculation(0)
	require.NoError(t, err)

	shifted := calc.ShiftedEnergies()
	require.Len(t, shifted, 12)
	// First state: 0.1 eV - mu (0.6 eV)
	assert.InDelta(t, -0.5, shifted[0], 1e-12)
	assert.InDelta(t, 0.6, shifted[1], 1e-12)
}

func TestColumn(t *testing.T) {
	plane := [][]float64{{1, 2}, {3, 4}, {5, 6}}

	assert.Equal(t, []float64{1, 3, 5}, spectra.Column(plane, 0))
	assert.Equal(t, []float64{2, 4, 6}, spectra.Column(plane, 1))
}

func TestParseCalcIndex(t *testing.T) {
	index, err := spectra.ParseCalcIndex("3")
	require.NoError(t, err)
	assert.Equal(t, 3, index)

	_, err = spectra.ParseCalcIndex("abc")
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgumentError(err))
	assert.Contains(t, err.Error(), "integer")
}

func TestPatchZeros(t *testing.T) {
	tests := []struct {
		name        string
		in          []float64
		want        []float64
		wantPatched int
	}{
		{
			name:        "interior zero takes previous value",
			in:          []float64{5, 0, 3},
			want:        []float64{5, 5, 3},
			wantPatched: 1,
		},
		{
			name:        "leading zero takes next nonzero value",
			in:          []float64{0, 0, 7},
			want:        []float64{7, 7, 7},
			wantPatched: 2,
		},
		{
			name:        "no zeros untouched",
			in:          []float64{1, 2, 3},
			want:        []float64{1, 2, 3},
			wantPatched: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, patched, err := spectra.PatchZeros(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantPatched, patched)
		})
	}
}

func TestPatchZeros_AllZero(t *testing.T) {
	_, _, err := spectra.PatchZeros([]float64{0, 0, 0})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrEmptySeries))
	assert.Contains(t, err.Error(), "not enough points in path")
}

func TestPatchZeros_DoesNotMutateInput(t *testing.T) {
	in := []float64{5, 0, 3}
	_, _, err := spectra.PatchZeros(in)
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 0, 3}, in)
}
