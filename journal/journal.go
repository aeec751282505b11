// Package journal records closed trades and capital snapshots for
// post-session review. It is write-only from the simulator's point of view:
// nothing in the trading core ever reads a journal back.
package journal

import "time"

// TradeRecord is one closed trade as it goes into the log.
type TradeRecord struct {
	TradeID      string
	Symbol       string
	Bias         string
	PositionSize float64
	RiskPercent  float64
	EntryPrice   float64
	ExitPrice    float64
	OpenTime     time.Time
	CloseTime    time.Time
	Outcome      string
	ProfitAmount float64
	Thesis       string
	Critique     string
}

// CapitalSnapshot is the account state after a closure was applied.
type CapitalSnapshot struct {
	Time        time.Time
	Capital     float64
	TotalTrades int
}

type Journal interface {
	RecordTrade(TradeRecord) error
	RecordCapital(CapitalSnapshot) error
	Close() error
}
