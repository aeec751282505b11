package academy

// Stage is the learner's progression level. It feeds the mentor critique so
// feedback matches the concepts the user has been taught.
type Stage string

const (
	StageFundamentals      Stage = "Fundamentals"
	StageLiquidityConcepts Stage = "Liquidity & Flow"
	StagePatternMastery    Stage = "Pattern Mastery"
	StageRiskEnforcement   Stage = "Risk Enforcement"
	StageConsistencyDrills Stage = "Consistency Drills"
	StageLivePrep          Stage = "Live Prep"
	StageMaster            Stage = "Institutional Master"
)

// Stages lists all progression levels in order.
var Stages = []Stage{
	StageFundamentals,
	StageLiquidityConcepts,
	StagePatternMastery,
	StageRiskEnforcement,
	StageConsistencyDrills,
	StageLivePrep,
	StageMaster,
}
