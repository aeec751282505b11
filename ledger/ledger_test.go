package ledger

import (
	"testing"

	"github.com/forexschool/riskmaster/journal"
	"github.com/forexschool/riskmaster/market"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedClosures struct {
	closures []Closure
}

func (r *recordedClosures) OnTradeClosed(c Closure) {
	r.closures = append(r.closures, c)
}

func newLedger(t *testing.T) (*Ledger, *journal.Memory, *recordedClosures) {
	t.Helper()
	j := journal.NewMemory()
	l := New(j)
	rec := &recordedClosures{}
	l.SetClosureListener(rec)
	return l, j, rec
}

func longOrder() Order {
	return Order{
		Symbol:       "EURUSD",
		Bias:         market.Long,
		EntryPrice:   1.0850,
		StopLoss:     1.0800,
		TakeProfit:   1.0900,
		RiskPercent:  1.0,
		PositionSize: 0.20,
		Thesis:       "Sweep of Asia low into the 1H FVG, MSS confirmed on 1m.",
		Critique:     "What invalidates the sweep before your stop does?",
	}
}

func TestExecuteOpensTrade(t *testing.T) {
	t.Parallel()

	l, _, _ := newLedger(t)
	tr := l.Execute(longOrder())

	assert.NotEmpty(t, tr.ID)
	assert.Equal(t, StatusOpen, tr.Status)
	assert.False(t, tr.CreatedAt.IsZero())
	assert.Equal(t, 1, l.OpenCount())

	got, ok := l.Get(tr.ID)
	require.True(t, ok)
	assert.Equal(t, tr.ID, got.ID)
}

func TestLongStopHit(t *testing.T) {
	t.Parallel()

	l, j, rec := newLedger(t)
	tr := l.Execute(longOrder())

	// above both levels: nothing closes
	closures, err := l.OnPrice(1.0875, 10000)
	require.NoError(t, err)
	assert.Empty(t, closures)

	closures, err = l.OnPrice(1.0799, 10000)
	require.NoError(t, err)
	require.Len(t, closures, 1)

	c := closures[0]
	assert.Equal(t, tr.ID, c.TradeID)
	assert.Equal(t, Loss, c.Outcome)
	assert.InDelta(t, -100.0, c.ProfitAmount, 1e-9) // 1% of 10000, -1x
	assert.InDelta(t, 1.0799, c.ExitPrice, 1e-9)

	got, _ := l.Get(tr.ID)
	assert.Equal(t, StatusClosed, got.Status)
	assert.Equal(t, Loss, got.Outcome)
	assert.Zero(t, l.OpenCount())

	require.Len(t, rec.closures, 1)
	require.Len(t, j.Trades(), 1)
	assert.Equal(t, "LOSS", j.Trades()[0].Outcome)
}

func TestLongTargetHit(t *testing.T) {
	t.Parallel()

	l, _, _ := newLedger(t)
	l.Execute(longOrder())

	closures, err := l.OnPrice(1.0900, 10000)
	require.NoError(t, err)
	require.Len(t, closures, 1)
	assert.Equal(t, Profit, closures[0].Outcome)
	assert.InDelta(t, 250.0, closures[0].ProfitAmount, 1e-9) // 1% of 10000 x 2.5
}

func TestShortResolution(t *testing.T) {
	t.Parallel()

	l, _, _ := newLedger(t)
	l.Execute(Order{
		Symbol:      "GBPUSD",
		Bias:        market.Short,
		EntryPrice:  1.2700,
		StopLoss:    1.2730,
		TakeProfit:  1.2625,
		RiskPercent: 0.5,
	})

	// price rallies through the stop
	closures, err := l.OnPrice(1.2731, 10000)
	require.NoError(t, err)
	require.Len(t, closures, 1)
	assert.Equal(t, Loss, closures[0].Outcome)
	assert.InDelta(t, -50.0, closures[0].ProfitAmount, 1e-9)
}

func TestShortTargetHit(t *testing.T) {
	t.Parallel()

	l, _, _ := newLedger(t)
	l.Execute(Order{
		Symbol:      "GBPUSD",
		Bias:        market.Short,
		EntryPrice:  1.2700,
		StopLoss:    1.2730,
		TakeProfit:  1.2625,
		RiskPercent: 0.5,
	})

	closures, err := l.OnPrice(1.2620, 10000)
	require.NoError(t, err)
	require.Len(t, closures, 1)
	assert.Equal(t, Profit, closures[0].Outcome)
	assert.InDelta(t, 125.0, closures[0].ProfitAmount, 1e-9)
}

func TestSimultaneousHitTargetWins(t *testing.T) {
	t.Parallel()

	// Stop and target inverted relative to price so a single tick satisfies
	// both conditions at once. Target must take precedence.
	l, _, _ := newLedger(t)
	l.Execute(Order{
		Symbol:      "EURUSD",
		Bias:        market.Long,
		EntryPrice:  1.0850,
		StopLoss:    1.0900,
		TakeProfit:  1.0800,
		RiskPercent: 1.0,
	})

	closures, err := l.OnPrice(1.0850, 10000)
	require.NoError(t, err)
	require.Len(t, closures, 1)
	assert.Equal(t, Profit, closures[0].Outcome)
	assert.InDelta(t, 250.0, closures[0].ProfitAmount, 1e-9)
}

func TestCloseIsExactlyOnce(t *testing.T) {
	t.Parallel()

	l, j, rec := newLedger(t)
	l.Execute(longOrder())

	closures, err := l.OnPrice(1.0799, 10000)
	require.NoError(t, err)
	require.Len(t, closures, 1)

	// same resolving price again: the CLOSED trade must not re-fire
	closures, err = l.OnPrice(1.0799, 10000)
	require.NoError(t, err)
	assert.Empty(t, closures)

	assert.Len(t, rec.closures, 1)
	assert.Len(t, j.Trades(), 1)
}

func TestIndependentTradesResolveIndependently(t *testing.T) {
	t.Parallel()

	l, _, _ := newLedger(t)
	a := l.Execute(longOrder()) // stop 1.0800
	b := l.Execute(Order{
		Symbol:      "EURUSD",
		Bias:        market.Long,
		EntryPrice:  1.0850,
		StopLoss:    1.0700,
		TakeProfit:  1.0900,
		RiskPercent: 0.5,
	})

	closures, err := l.OnPrice(1.0795, 10000)
	require.NoError(t, err)
	require.Len(t, closures, 1, "only the tighter stop fires")
	assert.Equal(t, a.ID, closures[0].TradeID)

	gotB, _ := l.Get(b.ID)
	assert.Equal(t, StatusOpen, gotB.Status)
}

func TestProfitUsesCurrentCapital(t *testing.T) {
	t.Parallel()

	l, _, _ := newLedger(t)
	l.Execute(longOrder())

	// capital moved since execution; closure uses the capital handed in now
	closures, err := l.OnPrice(1.0900, 12000)
	require.NoError(t, err)
	require.Len(t, closures, 1)
	assert.InDelta(t, 300.0, closures[0].ProfitAmount, 1e-9)
}
