package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculate_InvalidStop(t *testing.T) {
	t.Parallel()

	_, err := Calculate(Inputs{
		Balance:     10000,
		EntryPrice:  1.0850,
		StopLoss:    1.0850,
		RiskPercent: 0.5,
	}, DefaultLimits())

	assert.ErrorIs(t, err, ErrInvalidStop)
}

func TestCalculate_RiskCeiling(t *testing.T) {
	t.Parallel()

	// 1.5% requested against a 1% platform ceiling
	res, err := Calculate(Inputs{
		Balance:     10000,
		EntryPrice:  1.0850,
		StopLoss:    1.0820,
		RiskPercent: 1.5,
	}, DefaultLimits())

	assert.ErrorIs(t, err, ErrRiskCeiling)
	assert.Zero(t, res.PositionSize, "size must not be emitted on a ceiling breach")
	assert.Zero(t, res.RiskAmount)
}

func TestCalculate_AtCeilingIsAllowed(t *testing.T) {
	t.Parallel()

	res, err := Calculate(Inputs{
		Balance:     10000,
		EntryPrice:  1.0850,
		StopLoss:    1.0820,
		RiskPercent: 1.0,
	}, DefaultLimits())

	require.NoError(t, err)
	assert.InDelta(t, 100.0, res.RiskAmount, 1e-9)
}

func TestCalculate_Sizing(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		in       Inputs
		wantSize float64
		wantRisk float64
		wantPips float64
	}{
		{
			name:     "thirtyPipsHalfPercent",
			in:       Inputs{Balance: 10000, EntryPrice: 1.0850, StopLoss: 1.0820, RiskPercent: 0.5},
			wantSize: 0.17, // round2(50 / (30 * 10))
			wantRisk: 50,
			wantPips: 30,
		},
		{
			name:     "twentyPipsOnePercent",
			in:       Inputs{Balance: 10000, EntryPrice: 1.0850, StopLoss: 1.0830, RiskPercent: 1.0},
			wantSize: 0.50,
			wantRisk: 100,
			wantPips: 20,
		},
		{
			name:     "stopAboveEntryShort",
			in:       Inputs{Balance: 5000, EntryPrice: 1.0800, StopLoss: 1.0825, RiskPercent: 0.4},
			wantSize: 0.08, // round2(20 / 250)
			wantRisk: 20,
			wantPips: 25,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			res, err := Calculate(tt.in, DefaultLimits())
			require.NoError(t, err)
			assert.InDelta(t, tt.wantSize, res.PositionSize, 1e-9)
			assert.InDelta(t, tt.wantRisk, res.RiskAmount, 1e-9)
			assert.InDelta(t, tt.wantPips, res.PipsAtRisk, 1e-9)
		})
	}
}

func TestDefaultLimits(t *testing.T) {
	t.Parallel()

	l := DefaultLimits()
	assert.InDelta(t, 0.01, l.MaxTradeRisk, 1e-12)
	assert.InDelta(t, 0.1, l.MinRiskPercent, 1e-12)
	assert.InDelta(t, 1.5, l.MaxRiskPercent, 1e-12)
}
