package academy

import (
	"fmt"
	"strings"

	"github.com/forexschool/riskmaster/market"
)

// Strategy is a playbook template the user can deploy into the trade
// terminal. Deployment pre-fills bias, thesis and stop/target distances; it
// never bypasses the mentor review gate.
type Strategy struct {
	Name              string
	Context           string
	Logic             string
	Entry             string
	Invalidation      string
	Expectancy        string
	DefaultBias       market.Bias
	SuggestedStopPips float64
}

// Strategies is the built-in playbook catalog.
var Strategies = []Strategy{
	{
		Name:              "The Liquidity Sweep (Reversal)",
		Context:           "Price approaches a major previous high/low where retail stop-losses are clustered.",
		Logic:             "Institutions push price just past the level to trigger stops, creating enough sell/buy side liquidity to fill their own counter-orders.",
		Entry:             "Wait for a 'Stop Hunt' (wick through level) followed by a strong displacement back into range.",
		Invalidation:      "A candle closing beyond the wick of the sweep.",
		Expectancy:        "High RR (1:3+), Win Rate ~45-55%.",
		DefaultBias:       market.Long,
		SuggestedStopPips: 25,
	},
	{
		Name:              "Session Imbalance (ICT/SMC)",
		Context:           "London or NY Open volatility spikes.",
		Logic:             "Initial move is often a 'Judas Swing' designed to trap traders. The real move follows a displacement that creates a Fair Value Gap (FVG).",
		Entry:             "Look for a Market Structure Shift (MSS) on 5m/15m charts after the first 30 mins of the session.",
		Invalidation:      "Price closes back through the anchor of the FVG.",
		Expectancy:        "Medium RR (1:2), Win Rate ~60%.",
		DefaultBias:       market.Short,
		SuggestedStopPips: 20,
	},
	{
		Name:              "Internal Range Liquidity (IRL)",
		Context:           "Trading inside a large Daily range after a sweep has occurred.",
		Logic:             "Price moves from External Liquidity (Old Highs/Lows) to Internal Liquidity (Gaps/Order Blocks).",
		Entry:             "Look for a return to a 15m FVG after a 1H liquidity raid.",
		Invalidation:      "A break of the most recent swing high/low.",
		Expectancy:        "High RR (1:4), Win Rate ~40%.",
		DefaultBias:       market.Long,
		SuggestedStopPips: 15,
	},
}

// StrategyByName looks a template up by name, case-insensitively.
func StrategyByName(name string) (Strategy, error) {
	needle := strings.ToLower(strings.TrimSpace(name))
	for _, s := range Strategies {
		if strings.ToLower(s.Name) == needle {
			return s, nil
		}
	}
	return Strategy{}, fmt.Errorf("unknown strategy: %s", name)
}
