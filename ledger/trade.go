package ledger

import (
	"time"

	"github.com/forexschool/riskmaster/market"
)

// Status is the trade lifecycle state. There are exactly two: a trade is
// OPEN from execution until a price tick resolves it, then CLOSED forever.
type Status string

const (
	StatusOpen   Status = "OPEN"
	StatusClosed Status = "CLOSED"
)

// Outcome classifies a closed trade.
type Outcome string

const (
	Profit Outcome = "PROFIT"
	Loss   Outcome = "LOSS"
	// Breakeven is reserved. No transition produces it: resolution is always
	// a stop or target hit, never a flat exit.
	Breakeven Outcome = "BREAKEVEN"
)

// RewardMultiple is the payoff on a target hit, expressed as a multiple of
// the risked amount. A stop hit loses exactly 1x.
const RewardMultiple = 2.5

// Order is a finalized, reviewed trade request ready for execution. The
// proposal gate builds these; the ledger never sees an unreviewed order.
type Order struct {
	Symbol       string
	Bias         market.Bias
	EntryPrice   float64
	StopLoss     float64
	TakeProfit   float64
	RiskPercent  float64
	PositionSize float64
	Thesis       string
	Critique     string
}

// Trade is a ledger entry through its whole lifecycle. Exit fields are zero
// until the trade closes.
type Trade struct {
	ID           string
	CreatedAt    time.Time
	Symbol       string
	Bias         market.Bias
	EntryPrice   float64
	StopLoss     float64
	TakeProfit   float64
	RiskPercent  float64
	PositionSize float64
	Thesis       string
	Critique     string

	Status       Status
	ExitPrice    float64
	ClosedAt     time.Time
	Outcome      Outcome
	ProfitAmount float64
}

func (t *Trade) hitStop(price float64) bool {
	if t.Bias == market.Long {
		return price <= t.StopLoss
	}
	return price >= t.StopLoss
}

func (t *Trade) hitTarget(price float64) bool {
	if t.Bias == market.Long {
		return price >= t.TakeProfit
	}
	return price <= t.TakeProfit
}
