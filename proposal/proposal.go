// Package proposal assembles candidate trades and enforces the review gate:
// no trade reaches the ledger without a mentor critique on record and a valid
// position size for the parameters being executed.
package proposal

import (
	"context"
	"errors"
	"fmt"

	"github.com/forexschool/riskmaster/academy"
	"github.com/forexschool/riskmaster/ledger"
	"github.com/forexschool/riskmaster/market"
	"github.com/forexschool/riskmaster/mentor"
	"github.com/forexschool/riskmaster/risk"
)

// MinThesisLength is the minimum thesis text length before a review can even
// be requested. Below it the critique service is never invoked.
const MinThesisLength = 20

// ReviewComplete replaces an empty critique so the gate can distinguish
// "reviewed" from "never reviewed".
const ReviewComplete = "Mentor logic evaluation complete."

var (
	// ErrThesisTooShort is a caller-level guard ahead of the review service.
	ErrThesisTooShort = fmt.Errorf("proposal: thesis must be at least %d characters", MinThesisLength)

	// ErrReviewMissing blocks finalization of an unreviewed proposal.
	ErrReviewMissing = errors.New("proposal: mentor review required before execution")

	// ErrNoPositionSize blocks finalization when the risk calculator has not
	// produced a positive size for the current parameters.
	ErrNoPositionSize = errors.New("proposal: no valid position size for current parameters")
)

// Proposal is an ephemeral, pre-execution candidate trade.
type Proposal struct {
	Symbol     string
	Bias       market.Bias
	EntryPrice float64
	StopLoss   float64
	TakeProfit float64
	Thesis     string
	Review     string
}

// PriceSource supplies the live market price entry gets pinned to at
// execution time. *market.Walker satisfies it.
type PriceSource interface {
	Price() float64
}

// Builder runs proposals through review and finalization.
type Builder struct {
	reviewer mentor.Reviewer
	prices   PriceSource
	limits   risk.Limits
}

func NewBuilder(reviewer mentor.Reviewer, prices PriceSource, limits risk.Limits) *Builder {
	return &Builder{reviewer: reviewer, prices: prices, limits: limits}
}

// RequestReview sends the proposal to the mentor and stores the critique on
// the proposal. A failing critique service is absorbed: the fallback text is
// stored instead and no error escapes, so an offline mentor never wedges the
// trade flow. Only a too-short thesis blocks the request.
func (b *Builder) RequestReview(ctx context.Context, p *Proposal, stage academy.Stage) error {
	if len(p.Thesis) < MinThesisLength {
		return ErrThesisTooShort
	}

	text, err := b.reviewer.Critique(ctx, mentor.Request{
		Thesis:     p.Thesis,
		Stage:      stage,
		Symbol:     p.Symbol,
		Bias:       p.Bias,
		EntryPrice: p.EntryPrice,
		StopLoss:   p.StopLoss,
		TakeProfit: p.TakeProfit,
	})
	if err != nil {
		text = mentor.Fallback
	}
	if text == "" {
		text = ReviewComplete
	}

	p.Review = text
	return nil
}

// Finalize converts a reviewed proposal into an executable order. The entry
// price is re-pinned to the live market price, not the value last typed
// during editing. All checks run before any mutation; on success the stored
// review is consumed so one proposal yields at most one execution.
func (b *Builder) Finalize(p *Proposal, balance, riskPercent float64) (ledger.Order, error) {
	if p.Review == "" {
		return ledger.Order{}, ErrReviewMissing
	}

	res, err := risk.Calculate(risk.Inputs{
		Balance:     balance,
		EntryPrice:  p.EntryPrice,
		StopLoss:    p.StopLoss,
		RiskPercent: riskPercent,
	}, b.limits)
	if err != nil || res.PositionSize <= 0 {
		return ledger.Order{}, ErrNoPositionSize
	}

	order := ledger.Order{
		Symbol:       p.Symbol,
		Bias:         p.Bias,
		EntryPrice:   b.prices.Price(),
		StopLoss:     p.StopLoss,
		TakeProfit:   p.TakeProfit,
		RiskPercent:  riskPercent,
		PositionSize: res.PositionSize,
		Thesis:       p.Thesis,
		Critique:     p.Review,
	}

	p.Review = ""
	return order, nil
}

// defaultStopDistance is used when a template does not suggest a stop (20 pips).
const defaultStopDistance = 0.0020

// Deploy pre-fills a proposal from an academy playbook template: bias and
// thesis come from the template, and stop/target are derived from the
// suggested stop distance at a fixed 2.5 reward:risk multiple in the bias
// direction. The review gate still applies to the result.
func Deploy(symbol string, tmpl academy.Strategy, price float64) Proposal {
	bias := tmpl.DefaultBias
	if bias == "" {
		bias = market.Long
	}

	stopDistance := defaultStopDistance
	if tmpl.SuggestedStopPips > 0 {
		stopDistance = tmpl.SuggestedStopPips / market.PipScale
	}

	p := Proposal{
		Symbol:     symbol,
		Bias:       bias,
		EntryPrice: price,
		Thesis:     fmt.Sprintf("STRATEGY DEPLOYED: %s. %s", tmpl.Name, tmpl.Context),
	}
	if bias == market.Long {
		p.StopLoss = market.RoundPrice(price - stopDistance)
		p.TakeProfit = market.RoundPrice(price + stopDistance*ledger.RewardMultiple)
	} else {
		p.StopLoss = market.RoundPrice(price + stopDistance)
		p.TakeProfit = market.RoundPrice(price - stopDistance*ledger.RewardMultiple)
	}
	return p
}
