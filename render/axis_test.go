package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantalab/tauviz/errors"
)

func TestLogLimits(t *testing.T) {
	tests := []struct {
		name    string
		values  []float64
		wantLo  float64
		wantHi  float64
		wantErr bool
	}{
		{
			name:   "rounds to enclosing powers of ten",
			values: []float64{0.3, 42, 870},
			wantLo: 0.1,
			wantHi: 1000,
		},
		{
			name:   "ignores zeros and negatives",
			values: []float64{0, -5, 2, 30},
			wantLo: 1,
			wantHi: 100,
		},
		{
			name:   "single decade opens up",
			values: []float64{1, 1, 1},
			wantLo: 1,
			wantHi: 10,
		},
		{
			name:    "no positive values",
			values:  []float64{0, -1},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lo, hi, err := LogLimits(tt.values)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, errors.ErrEmptySeries))
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.wantLo, lo, 1e-12)
			assert.InDelta(t, tt.wantHi, hi, 1e-12)
		})
	}
}

func TestPathTicker(t *testing.T) {
	ticker := pathTicker{
		positions: []float64{0, 3, 5},
		labels:    []string{"Gamma", "X", "L"},
	}

	ticks := ticker.Ticks(0, 5)
	require.Len(t, ticks, 3)
	assert.Equal(t, "Gamma", ticks[0].Label)
	assert.Equal(t, 3.0, ticks[1].Value)
	assert.Equal(t, "L", ticks[2].Label)

	// Positions outside the axis range are dropped
	ticks = ticker.Ticks(1, 4)
	require.Len(t, ticks, 1)
	assert.Equal(t, "X", ticks[0].Label)
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		input  string
		suffix string
		want   string
	}{
		{"epa_relaxation_times.json", SuffixTauPNG, "epa_relaxation_times.tau.png"},
		{"runs/si.json", SuffixGammaPNG, "runs/si.gamma.png"},
		{"path_bands.json", SuffixTauPDF, "path_bands.tau.pdf"},
		{"noext", SuffixTauPNG, "noext.tau.png"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, OutputPath(tt.input, tt.suffix))
	}
}
