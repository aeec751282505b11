// Package mentor talks to the external critique service that gates trade
// execution. The critique is advisory text: the core never parses it, and a
// service failure is absorbed by substituting Fallback at the call site.
package mentor

import (
	"context"
	"errors"

	"github.com/forexschool/riskmaster/academy"
	"github.com/forexschool/riskmaster/market"
)

// Fallback is shown when the critique service is unreachable. The review gate
// prefers liveness over correctness: an offline mentor never blocks a trade.
const Fallback = "The mentor is currently unavailable. Review your rules: Is this within your risk limits? Does it follow your primary pattern?"

// Request carries the proposal context the mentor critiques.
type Request struct {
	Thesis     string
	Stage      academy.Stage
	Symbol     string
	Bias       market.Bias
	EntryPrice float64
	StopLoss   float64
	TakeProfit float64
}

// Reviewer produces a free-text critique of a trade thesis.
type Reviewer interface {
	Critique(ctx context.Context, req Request) (string, error)
}

// ErrOffline is returned by the Offline reviewer.
var ErrOffline = errors.New("mentor: reviewer offline")

// Offline is a Reviewer that always fails, forcing the fallback critique.
// Useful for demos and air-gapped runs.
type Offline struct{}

func (Offline) Critique(ctx context.Context, req Request) (string, error) {
	return "", ErrOffline
}
