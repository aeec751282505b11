package risk

import (
	"errors"
	"math"

	"github.com/forexschool/riskmaster/market"
)

// ValuePerPip approximates the USD value of one pip for a standard lot.
// Good enough for the majors this simulator models; a real system would carry
// per-instrument metadata and quote conversion.
const ValuePerPip float64 = 10

var (
	// ErrInvalidStop means the stop sits on the entry, so no pip distance
	// exists to size against. User input error, surfaced inline.
	ErrInvalidStop = errors.New("risk: stop loss equals entry price")

	// ErrRiskCeiling means the requested risk amount exceeds the platform
	// ceiling. A soft policy violation: the caller is told, no size is
	// emitted, nothing crashes.
	ErrRiskCeiling = errors.New("risk: amount exceeds platform ceiling")
)

// Inputs are the parameters position sizing is derived from.
type Inputs struct {
	Balance     float64
	EntryPrice  float64
	StopLoss    float64
	RiskPercent float64 // 0.5 means 0.5%
}

// Result carries the sized position. PositionSize is in lots.
type Result struct {
	PositionSize float64
	RiskAmount   float64
	PipsAtRisk   float64
}

// Calculate derives position size from the risk the account is willing to
// take on the stop distance. Pure and stateless: callers recompute whenever
// any input changes.
//
//	size = round2(riskAmount / (pipsAtRisk * ValuePerPip))
func Calculate(in Inputs, limits Limits) (Result, error) {
	pips := market.Pips(in.EntryPrice, in.StopLoss)
	if pips <= 0 {
		return Result{}, ErrInvalidStop
	}

	riskAmount := in.Balance * (in.RiskPercent / 100)
	maxAllowed := in.Balance * limits.MaxTradeRisk
	if riskAmount > maxAllowed {
		return Result{}, ErrRiskCeiling
	}

	return Result{
		PositionSize: round2(riskAmount / (pips * ValuePerPip)),
		RiskAmount:   riskAmount,
		PipsAtRisk:   pips,
	}, nil
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
