// Package profile rolls closed-trade outcomes into cumulative account state.
package profile

import (
	"sync"

	"github.com/forexschool/riskmaster/academy"
	"github.com/forexschool/riskmaster/ledger"
)

// Profile is the learner's account state. Only Capital and TotalTrades mutate
// during a session; the behavioral fields are static inputs here. A richer
// system would recompute them from trade history.
type Profile struct {
	ID                string
	Name              string
	Stage             academy.Stage
	ExperienceLevel   int
	TotalTrades       int
	RuleAdherenceRate float64
	Capital           float64
	MaxDrawdown       float64
	DailyLossLimit    float64
	BehavioralScore   float64
}

// Default returns the fresh-session account.
func Default() Profile {
	return Profile{
		ID:                "u-1",
		Name:              "Forex Apprentice",
		Stage:             academy.StageFundamentals,
		ExperienceLevel:   42,
		TotalTrades:       12,
		RuleAdherenceRate: 98,
		Capital:           10000,
		MaxDrawdown:       1.2,
		DailyLossLimit:    300,
		BehavioralScore:   88,
	}
}

// Accumulator applies closure events to a profile, exactly once per closure.
// The ledger guarantees exactly-once emission; the accumulator just applies.
type Accumulator struct {
	mu      sync.Mutex
	profile Profile
}

func NewAccumulator(p Profile) *Accumulator {
	return &Accumulator{profile: p}
}

// Apply folds one closure into the account: capital moves by the signed
// profit amount and the trade count goes up by one.
func (a *Accumulator) Apply(c ledger.Closure) Profile {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.profile.Capital += c.ProfitAmount
	a.profile.TotalTrades++
	return a.profile
}

// Profile returns a snapshot of the current account state.
func (a *Accumulator) Profile() Profile {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.profile
}

// Capital returns the current account capital.
func (a *Accumulator) Capital() float64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.profile.Capital
}
