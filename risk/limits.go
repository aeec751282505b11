package risk

// Limits holds the platform-wide risk policy.
type Limits struct {
	// MaxTradeRisk is the hard ceiling on risk per trade as a fraction of
	// account balance (0.01 means 1%). Exceeding it blocks position sizing.
	MaxTradeRisk float64

	// MinRiskPercent / MaxRiskPercent bound the risk slider exposed to the
	// user, expressed in percent (0.1 means 0.1%).
	MinRiskPercent float64
	MaxRiskPercent float64

	// Drawdown circuit breakers. Informational for now; the accumulator does
	// not yet enforce them.
	DailyDrawdownLimit  float64
	WeeklyDrawdownLimit float64
}

// DefaultLimits returns the platform policy used by the terminal.
func DefaultLimits() Limits {
	return Limits{
		MaxTradeRisk:        0.01,
		MinRiskPercent:      0.1,
		MaxRiskPercent:      1.5,
		DailyDrawdownLimit:  0.03,
		WeeklyDrawdownLimit: 0.06,
	}
}
