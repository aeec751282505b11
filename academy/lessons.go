package academy

// Lesson is a static piece of curriculum. Content pairs a plain-language
// explanation with the professional use case, in the voice of the academy.
type Lesson struct {
	ID       string
	Stage    Stage
	Category string
	Title    string
	Content  string
	Locked   bool
}

// Lessons is the built-in curriculum, ordered by progression.
var Lessons = []Lesson{
	{
		ID:       "L-001",
		Stage:    StageFundamentals,
		Category: "The Foundation",
		Title:    "Forex 101: The Global Grocery Store",
		Content:  "LAYMAN TERMS: Imagine traveling from the USA to France. You swap Dollars for Euros. That is Forex. Trillions are swapped daily because companies need to pay for parts in different countries.\n\nPRO USE CASE: We buy a country's economy. If interest rates rise, that currency becomes a \"high-interest account,\" and everyone wants it.",
	},
	{
		ID:       "L-002",
		Stage:    StageFundamentals,
		Category: "The Foundation",
		Title:    "The Pip & The Lot",
		Content:  "LAYMAN TERMS: A \"Pip\" is a tiny price move. A \"Lot\" is the size of the box you are buying. 1 Micro Lot is $1,000 worth of currency.\n\nPRO USE CASE: Professionals calculate: \"I can lose $100. If my stop is 10 pips, what lot size makes 10 pips exactly $100?\" This is called Position Sizing.",
	},
	{
		ID:       "L-101",
		Stage:    StageFundamentals,
		Category: "Market Mechanics",
		Title:    "Market Structure: The River Flow",
		Content:  "LAYMAN TERMS: A river flows downhill. Pullbacks are splashes against rocks. A \"Break of Structure\" is when the river starts flowing uphill.\n\nPRO USE CASE: We look for Higher Highs and Higher Lows. If price breaks the last Higher Low, the uptrend is dead. We stop buying immediately.",
	},
	{
		ID:       "L-201",
		Stage:    StageLiquidityConcepts,
		Category: "Institutional Logic",
		Title:    "Stop Hunts: The Liquidity Trap",
		Content:  "LAYMAN TERMS: Banks need to buy millions. They need \"Sellers\" to provide them money. Where are people selling? At their \"Stop Losses\" below support. Banks push price through support to \"buy\" from your stops.\n\nPRO USE CASE: This is why price hits your stop and then goes your way. Learn to enter WHERE others get stopped out.",
	},
	{
		ID:       "L-301",
		Stage:    StagePatternMastery,
		Category: "Advanced Tactics",
		Title:    "Fair Value Gaps: The Vacuum",
		Content:  "LAYMAN TERMS: When a bank moves price fast, it skips levels. These \"holes\" are like vacuums. Price will be sucked back in to \"balance\" the market.\n\nPRO USE CASE: Identify a FVG on the 1-hour chart. When price returns to touch the edge of this gap, it is a high-probability entry.",
	},
	{
		ID:       "L-302",
		Stage:    StagePatternMastery,
		Category: "Advanced Tactics",
		Title:    "Order Blocks: Bank Footprints",
		Content:  "LAYMAN TERMS: Before price rockets up, banks push it down one last time to clear the way. That last \"Down\" candle is where their buy orders are sitting.\n\nPRO USE CASE: Mark the last bearish candle before a major bullish surge. When price returns weeks later, it will bounce as banks defend their base.",
	},
	{
		ID:       "L-401",
		Stage:    StageRiskEnforcement,
		Category: "Risk Mastery",
		Title:    "The Risk-of-Ruin",
		Content:  "LAYMAN TERMS: If you lose 50%, you need 100% just to break even. This is the \"Death Spiral.\" Risky 1% per trade means you can lose 10 times and still be in the game.\n\nPRO USE CASE: Use \"Fixed Ratio\" sizing. Only increase lots after your account grows by a set amount (e.g., $2,000 profit).",
	},
	{
		ID:       "L-501",
		Stage:    StageMaster,
		Category: "Expert Strategy",
		Title:    "Power of 3 (AMD)",
		Content:  "LAYMAN TERMS: Most days have 3 parts: 1. Accumulation (Sideways trap). 2. Manipulation (The fake out). 3. Distribution (The real move).\n\nPRO USE CASE: During the Asian session, we Accumulate. At London Open, we look for the Manipulation (Fake out). Enter on the reversal to catch the Daily Distribution.",
	},
}

// LessonsForStage returns the unlocked lessons available at the given stage.
func LessonsForStage(stage Stage) []Lesson {
	var out []Lesson
	for _, l := range Lessons {
		if l.Stage == stage && !l.Locked {
			out = append(out, l)
		}
	}
	return out
}
