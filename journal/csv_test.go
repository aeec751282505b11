package journal

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecord() TradeRecord {
	open := time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)
	return TradeRecord{
		TradeID:      "01JD0000000000000000000000",
		Symbol:       "EURUSD",
		Bias:         "LONG",
		PositionSize: 0.17,
		RiskPercent:  0.5,
		EntryPrice:   1.0850,
		ExitPrice:    1.0820,
		OpenTime:     open,
		CloseTime:    open.Add(42 * time.Second),
		Outcome:      "LOSS",
		ProfitAmount: -50,
		Thesis:       "Sweep of Asia low, MSS on 1m, targeting the FVG above.",
		Critique:     "Which session's liquidity funds your exit?",
	}
}

func TestCSVJournalRoundTrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	tradesPath := filepath.Join(dir, "trades.csv")
	capitalPath := filepath.Join(dir, "capital.csv")

	j, err := NewCSV(tradesPath, capitalPath)
	require.NoError(t, err)

	require.NoError(t, j.RecordTrade(sampleRecord()))
	require.NoError(t, j.RecordCapital(CapitalSnapshot{
		Time:        time.Date(2026, 3, 2, 9, 31, 0, 0, time.UTC),
		Capital:     9950,
		TotalTrades: 13,
	}))
	require.NoError(t, j.Close())

	tf, err := os.Open(tradesPath)
	require.NoError(t, err)
	defer tf.Close()

	rows, err := csv.NewReader(tf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2, "header plus one trade")
	assert.Equal(t, "trade_id", rows[0][0])
	assert.Equal(t, "EURUSD", rows[1][1])
	assert.Equal(t, "LOSS", rows[1][9])
	assert.Equal(t, "-50.000000", rows[1][10])

	cf, err := os.Open(capitalPath)
	require.NoError(t, err)
	defer cf.Close()

	rows, err = csv.NewReader(cf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "13", rows[1][2])
}

func TestMemoryJournal(t *testing.T) {
	t.Parallel()

	m := NewMemory()
	require.NoError(t, m.RecordTrade(sampleRecord()))
	require.NoError(t, m.RecordCapital(CapitalSnapshot{Capital: 10250, TotalTrades: 1}))

	require.Len(t, m.Trades(), 1)
	assert.Equal(t, "EURUSD", m.Trades()[0].Symbol)
	require.Len(t, m.Capital(), 1)
	assert.NoError(t, m.Close())
}
