package profile

import (
	"testing"

	"github.com/forexschool/riskmaster/ledger"
	"github.com/stretchr/testify/assert"
)

func TestAccumulatorApply(t *testing.T) {
	t.Parallel()

	acc := NewAccumulator(Default())

	p := acc.Apply(ledger.Closure{Outcome: ledger.Profit, ProfitAmount: 250})
	assert.InDelta(t, 10250.0, p.Capital, 1e-9)
	assert.Equal(t, 13, p.TotalTrades)

	p = acc.Apply(ledger.Closure{Outcome: ledger.Loss, ProfitAmount: -100})
	assert.InDelta(t, 10150.0, p.Capital, 1e-9)
	assert.Equal(t, 14, p.TotalTrades)
}

func TestAccumulatorLeavesBehavioralFieldsAlone(t *testing.T) {
	t.Parallel()

	start := Default()
	acc := NewAccumulator(start)
	acc.Apply(ledger.Closure{ProfitAmount: -300})

	got := acc.Profile()
	assert.Equal(t, start.RuleAdherenceRate, got.RuleAdherenceRate)
	assert.Equal(t, start.BehavioralScore, got.BehavioralScore)
	assert.Equal(t, start.MaxDrawdown, got.MaxDrawdown)
	assert.Equal(t, start.DailyLossLimit, got.DailyLossLimit)
	assert.Equal(t, start.Stage, got.Stage)
}

func TestCapitalSnapshot(t *testing.T) {
	t.Parallel()

	acc := NewAccumulator(Profile{Capital: 5000})
	assert.InDelta(t, 5000.0, acc.Capital(), 1e-9)
	acc.Apply(ledger.Closure{ProfitAmount: 125})
	assert.InDelta(t, 5125.0, acc.Capital(), 1e-9)
}
